package cli

import (
	"fmt"
)

// ValidateOutputFormat validates the output format flag
func ValidateOutputFormat(format string) error {
	validFormats := []string{"text", "json", "yaml"}
	for _, valid := range validFormats {
		if format == valid {
			return nil
		}
	}
	return fmt.Errorf("invalid output format: %s (must be: text, json, or yaml)", format)
}

// ValidatePrefix validates a formset prefix. Element identifiers are
// built as prefix-id-field, with the hyphen as the separator, so the
// prefix itself must stay hyphen-free.
func ValidatePrefix(prefix string) error {
	if prefix == "" {
		return fmt.Errorf("formset prefix cannot be empty")
	}

	for _, r := range prefix {
		ok := r == '_' ||
			(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9')
		if !ok {
			return fmt.Errorf("formset prefix contains invalid character: %q", r)
		}
	}

	return nil
}
