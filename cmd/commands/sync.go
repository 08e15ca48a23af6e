package commands

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/formdeck/formdeck-cli/internal/cli"
	"github.com/formdeck/formdeck-cli/pkg/host"
	"github.com/formdeck/formdeck-cli/pkg/panel"
)

// SyncResult is the structured output of the sync command: the values
// the panel would push into the host form's management fields.
type SyncResult struct {
	Snapshot   string `json:"snapshot"`
	Prefix     string `json:"prefix"`
	TotalForms string `json:"totalForms"`
	SortOrder  string `json:"sortOrder,omitempty"`
	Deleted    string `json:"deleted"`
}

// NewSyncCommand creates the sync command
func NewSyncCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sync [snapshot]",
		Short: "Print the derived management field values",
		Long: `Print the values the panel keeps synchronized into the host form's
management fields: the live record count, the order array (when
ordering is enabled) and the deleted-id array.

Examples:
  # Derived values for the default snapshot
  formdeck sync

  # As JSON
  formdeck sync speakers.json -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSync,
	}
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx := cli.NewCommandContext(args)
	outputFormat, _ := cmd.Flags().GetString("output")

	snapshot, err := ctx.LoadSnapshot()
	if err != nil {
		return err
	}

	store := panel.NewStore()
	formset := &host.Formset{
		Prefix:   snapshot.Prefix,
		Template: snapshot.Template,
		CanOrder: snapshot.Options.CanOrder,
		Log:      zerolog.Nop(),
	}
	fields := &host.FieldValues{}
	store.Dispatch(panel.SetState{State: *snapshot.State})
	formset.Bind(store, fields)

	result := SyncResult{
		Snapshot:   ctx.SnapshotPath,
		Prefix:     snapshot.Prefix,
		TotalForms: fields.TotalForms,
		SortOrder:  fields.SortOrder,
		Deleted:    fields.Deleted,
	}

	switch outputFormat {
	case "json", "yaml":
		return cli.OutputResults(cmd.OutOrStdout(), outputFormat, result)
	default:
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s-TOTAL_FORMS = %s\n", result.Prefix, result.TotalForms)
		if snapshot.Options.CanOrder {
			fmt.Fprintf(out, "%s-ORDER = %s\n", result.Prefix, result.SortOrder)
		}
		fmt.Fprintf(out, "%s-DELETE = %s\n", result.Prefix, result.Deleted)
		return nil
	}
}
