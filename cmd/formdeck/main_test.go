package main

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/formdeck/formdeck-cli/pkg/host"
)

func TestStarterSnapshotTemplateMatchesFieldIDs(t *testing.T) {
	snapshot := starterSnapshot()

	record := snapshot.State.NewRecord(0, 1, 0)
	record.Fields["title"] = "First card"

	fragment, err := host.Materialize(snapshot.Template, snapshot.Prefix, record, zerolog.Nop())
	if err != nil {
		t.Fatalf("Materialize failed: %v", err)
	}
	fragment.PushValues()

	markup, err := fragment.Render()
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(markup, `id="id_forms-0-title"`) {
		t.Fatalf("Expected substituted element id in markup:\n%s", markup)
	}
	if !strings.Contains(markup, `value="First card"`) {
		t.Errorf("Expected pushed value in markup:\n%s", markup)
	}

	harvested := fragment.HarvestValues()
	if harvested["title"] != "First card" {
		t.Errorf("HarvestValues()[%q] = %q, want %q", "title", harvested["title"], "First card")
	}
}
