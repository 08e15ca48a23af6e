package commands

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/formdeck/formdeck-cli/pkg/files"
	"github.com/formdeck/formdeck-cli/pkg/models"
)

func writeTestSnapshot(t *testing.T, mutate func(*files.Snapshot)) string {
	t.Helper()

	snapshot := &files.Snapshot{
		Prefix:   "speakers",
		Template: `<div class="field"><input id="speakers-__prefix__-name" name="speakers-__prefix__-name"></div>`,
		Options:  models.PanelSettings{Label: "Add speaker", CanOrder: true},
		State: &models.CollectionState{
			Forms: []models.FormRecord{
				{ID: 0, Position: 2, InstanceAsStr: "Keynote", Fields: map[string]string{"name": "Keynote"}},
				{ID: 1, Position: 1, InstanceAsStr: "Opening", Fields: map[string]string{"name": "Opening"}},
				{ID: 2, Position: 3, InstanceAsStr: "Closing", IsDeleted: true, Fields: map[string]string{"name": "Closing"}},
			},
			EmptyForm: models.FormRecord{Position: 1, Fields: map[string]string{"name": ""}},
		},
	}
	if mutate != nil {
		mutate(snapshot)
	}

	path := filepath.Join(t.TempDir(), "speakers.json")
	if err := files.WriteSnapshot(path, snapshot); err != nil {
		t.Fatalf("WriteSnapshot failed: %v", err)
	}
	return path
}

func TestValidateCommandValid(t *testing.T) {
	path := writeTestSnapshot(t, nil)

	cmd := NewValidateCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{path})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if !strings.Contains(out.String(), "valid") {
		t.Errorf("Expected valid verdict, got %q", out.String())
	}
}

func TestValidateCommandBrokenSnapshot(t *testing.T) {
	path := writeTestSnapshot(t, func(s *files.Snapshot) {
		s.State.Forms[1].Position = 2
	})

	cmd := NewValidateCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{path})

	if err := cmd.Execute(); err == nil {
		t.Error("Expected error for duplicate positions")
	}
	if !strings.Contains(out.String(), "share position") {
		t.Errorf("Expected problem in output, got %q", out.String())
	}
}

func TestValidateCommandBadPrefix(t *testing.T) {
	path := writeTestSnapshot(t, func(s *files.Snapshot) {
		s.Prefix = "event-speakers"
	})

	cmd := NewValidateCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{path})

	if err := cmd.Execute(); err == nil {
		t.Error("Expected error for hyphenated prefix")
	}
}

func TestValidateCommandMissingFile(t *testing.T) {
	cmd := NewValidateCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "missing.json")})

	err := cmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "formdeck init") {
		t.Errorf("Expected init hint, got %v", err)
	}
}

func TestShowCommandDisplayOrder(t *testing.T) {
	path := writeTestSnapshot(t, nil)

	cmd := NewShowCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{path})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("show failed: %v", err)
	}

	text := out.String()
	opening := strings.Index(text, "Opening")
	keynote := strings.Index(text, "Keynote")
	closing := strings.Index(text, "Closing")
	if opening < 0 || keynote < 0 || closing < 0 {
		t.Fatalf("Expected all summaries in output:\n%s", text)
	}
	if !(opening < keynote && keynote < closing) {
		t.Errorf("Expected position order with deleted last:\n%s", text)
	}
	if !strings.Contains(text, "deleted") {
		t.Errorf("Expected deleted flag in output:\n%s", text)
	}
}

func TestShowCommandJSON(t *testing.T) {
	path := writeTestSnapshot(t, nil)

	cmd := NewShowCommand()
	cmd.Flags().String("output", "json", "")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{path})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("show failed: %v", err)
	}

	var result ShowResult
	if err := json.Unmarshal(out.Bytes(), &result); err != nil {
		t.Fatalf("Output is not valid JSON: %v\n%s", err, out.String())
	}
	if len(result.Items) != 3 {
		t.Fatalf("Expected 3 items, got %d", len(result.Items))
	}
	if result.Items[0].Summary != "Opening" {
		t.Errorf("Expected Opening first, got %q", result.Items[0].Summary)
	}
}

func TestSyncCommand(t *testing.T) {
	path := writeTestSnapshot(t, nil)

	cmd := NewSyncCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{path})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("sync failed: %v", err)
	}

	text := out.String()
	if !strings.Contains(text, "speakers-TOTAL_FORMS = 2") {
		t.Errorf("Expected live count 2:\n%s", text)
	}
	if !strings.Contains(text, "speakers-ORDER = [2,1,3]") {
		t.Errorf("Expected order array:\n%s", text)
	}
	if !strings.Contains(text, "speakers-DELETE = [2]") {
		t.Errorf("Expected deleted ids:\n%s", text)
	}
}

func TestSyncCommandOrderingDisabled(t *testing.T) {
	path := writeTestSnapshot(t, func(s *files.Snapshot) {
		s.Options.CanOrder = false
	})

	cmd := NewSyncCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{path})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("sync failed: %v", err)
	}
	if strings.Contains(out.String(), "ORDER") {
		t.Errorf("Expected no order line when ordering is disabled:\n%s", out.String())
	}
}
