package files

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/formdeck/formdeck-cli/pkg/models"
)

// Snapshot is the on-disk form of a card collection: the records plus
// the host template and prefix they were captured against.
type Snapshot struct {
	Prefix   string                  `json:"prefix"`
	Template string                  `json:"template"`
	Options  models.PanelSettings    `json:"options"`
	State    *models.CollectionState `json:"state"`
}

func ReadSnapshot(path string) (*Snapshot, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %s: %w", path, err)
	}

	var snapshot Snapshot
	if err := json.Unmarshal(content, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot JSON %s: %w", path, err)
	}
	if snapshot.State == nil {
		return nil, fmt.Errorf("snapshot %s has no state", path)
	}

	return &snapshot, nil
}

func WriteSnapshot(path string, snapshot *Snapshot) error {
	content, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot to JSON: %w", err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write snapshot %s: %w", path, err)
	}

	return nil
}

// Validate checks the structural rules every collection must hold:
// records indexed by their own id, positions forming a dense 1..n
// permutation, and (for nested collections) every depth at least 1.
func (s *Snapshot) Validate() error {
	forms := s.State.Forms

	for i, form := range forms {
		if form.ID != i {
			return fmt.Errorf("form at index %d carries id %d", i, form.ID)
		}
	}

	seen := make(map[int]int, len(forms))
	for _, form := range forms {
		if form.Position < 1 || form.Position > len(forms) {
			return fmt.Errorf("form %d position %d out of range 1..%d", form.ID, form.Position, len(forms))
		}
		if other, dup := seen[form.Position]; dup {
			return fmt.Errorf("forms %d and %d share position %d", other, form.ID, form.Position)
		}
		seen[form.Position] = form.ID
	}

	if s.Options.Nested {
		for _, form := range forms {
			if form.Depth < 1 {
				return fmt.Errorf("form %d has depth %d in a nested collection", form.ID, form.Depth)
			}
		}
	}

	return nil
}
