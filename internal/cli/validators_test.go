package cli

import "testing"

func TestValidateOutputFormat(t *testing.T) {
	for _, format := range []string{"text", "json", "yaml"} {
		if err := ValidateOutputFormat(format); err != nil {
			t.Errorf("ValidateOutputFormat(%q) failed: %v", format, err)
		}
	}
	if err := ValidateOutputFormat("xml"); err == nil {
		t.Error("Expected error for unsupported format")
	}
}

func TestValidatePrefix(t *testing.T) {
	tests := []struct {
		prefix  string
		wantErr bool
	}{
		{"speakers", false},
		{"event_speakers", false},
		{"Speakers2", false},
		{"", true},
		{"event-speakers", true},
		{"speakers!", true},
		{"spea kers", true},
	}

	for _, tt := range tests {
		err := ValidatePrefix(tt.prefix)
		if tt.wantErr && err == nil {
			t.Errorf("ValidatePrefix(%q) expected error", tt.prefix)
		}
		if !tt.wantErr && err != nil {
			t.Errorf("ValidatePrefix(%q) failed: %v", tt.prefix, err)
		}
	}
}

func TestTruncateString(t *testing.T) {
	if got := TruncateString("short", 10); got != "short" {
		t.Errorf("TruncateString = %q, want %q", got, "short")
	}
	if got := TruncateString("a very long summary line", 10); got != "a very ..." {
		t.Errorf("TruncateString = %q, want %q", got, "a very ...")
	}
}
