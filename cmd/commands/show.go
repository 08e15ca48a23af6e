package commands

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/formdeck/formdeck-cli/internal/cli"
	"github.com/formdeck/formdeck-cli/pkg/models"
	"github.com/formdeck/formdeck-cli/pkg/tui"
)

// ShowItem is one card row in the show command's output
type ShowItem struct {
	ID       int    `json:"id"`
	Position int    `json:"position"`
	Depth    int    `json:"depth,omitempty"`
	Status   string `json:"status,omitempty"`
	Summary  string `json:"summary"`
}

// ShowResult is the structured output of the show command
type ShowResult struct {
	Snapshot string     `json:"snapshot"`
	Prefix   string     `json:"prefix"`
	Items    []ShowItem `json:"items"`
}

// NewShowCommand creates the show command
func NewShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show [snapshot]",
		Short: "Display a snapshot's cards",
		Long: `Display the cards of a snapshot in display order, with their
position, id, status flags and a one-line summary. Deleted cards are
listed after the live ones.

Examples:
  # Show the default snapshot
  formdeck show

  # Show a specific file, as JSON
  formdeck show speakers.json -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: runShow,
	}
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cli.NewCommandContext(args)
	outputFormat, _ := cmd.Flags().GetString("output")

	snapshot, err := ctx.LoadSnapshot()
	if err != nil {
		return err
	}

	header, err := tui.NewHeaderRenderer(nil, snapshot.Options.HeaderTemplate)
	if err != nil {
		return fmt.Errorf("invalid header template: %w", err)
	}

	forms := make([]models.FormRecord, len(snapshot.State.Forms))
	copy(forms, snapshot.State.Forms)
	sort.SliceStable(forms, func(i, j int) bool {
		return forms[i].Position < forms[j].Position
	})

	result := ShowResult{
		Snapshot: ctx.SnapshotPath,
		Prefix:   snapshot.Prefix,
		Items:    make([]ShowItem, 0, len(forms)),
	}
	for _, pass := range []bool{false, true} {
		for _, form := range forms {
			if form.IsDeleted != pass {
				continue
			}
			item := ShowItem{
				ID:       form.ID,
				Position: form.Position,
				Status:   statusFlags(form),
				Summary:  cli.TruncateString(header.Header(form), 60),
			}
			if snapshot.Options.Nested {
				item.Depth = form.Depth
			}
			result.Items = append(result.Items, item)
		}
	}

	switch outputFormat {
	case "json", "yaml":
		return cli.OutputResults(cmd.OutOrStdout(), outputFormat, result)
	default:
		return outputShowText(cmd, snapshot.Options.Nested, result)
	}
}

func outputShowText(cmd *cobra.Command, nested bool, result ShowResult) error {
	if len(result.Items) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: no cards\n", result.Snapshot)
		return nil
	}

	table := cli.NewTableFormatter(cmd.OutOrStdout())
	if nested {
		table.Header("POS", "ID", "DEPTH", "STATUS", "SUMMARY")
	} else {
		table.Header("POS", "ID", "STATUS", "SUMMARY")
	}
	for _, item := range result.Items {
		if nested {
			table.Row(strconv.Itoa(item.Position), strconv.Itoa(item.ID), strconv.Itoa(item.Depth), item.Status, item.Summary)
		} else {
			table.Row(strconv.Itoa(item.Position), strconv.Itoa(item.ID), item.Status, item.Summary)
		}
	}
	table.Flush()
	return nil
}

func statusFlags(form models.FormRecord) string {
	var flags []string
	if form.IsDeleted {
		flags = append(flags, "deleted")
	}
	if form.IsNew {
		flags = append(flags, "new")
	}
	if form.HasChanged && !form.IsNew {
		flags = append(flags, "changed")
	}
	if form.HasErrors() {
		flags = append(flags, "errors")
	}
	return strings.Join(flags, ",")
}
