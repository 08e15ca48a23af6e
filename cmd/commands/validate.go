package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/formdeck/formdeck-cli/internal/cli"
)

// ValidateResult is the structured output of the validate command
type ValidateResult struct {
	Snapshot string `json:"snapshot"`
	Forms    int    `json:"forms"`
	Valid    bool   `json:"valid"`
	Problem  string `json:"problem,omitempty"`
}

// NewValidateCommand creates the validate command
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [snapshot]",
		Short: "Check a snapshot's structural rules",
		Long: `Check a snapshot file against the structural rules every collection
must hold: records indexed by their own id, positions forming a dense
permutation, depths of at least 1 in nested collections, and a usable
formset prefix.

Examples:
  # Validate the default snapshot
  formdeck validate

  # Validate a specific file, as JSON
  formdeck validate speakers.json -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	ctx := cli.NewCommandContext(args)
	outputFormat, _ := cmd.Flags().GetString("output")

	snapshot, err := ctx.LoadSnapshot()
	if err != nil {
		return err
	}

	result := ValidateResult{
		Snapshot: ctx.SnapshotPath,
		Forms:    len(snapshot.State.Forms),
		Valid:    true,
	}
	if err := cli.ValidatePrefix(snapshot.Prefix); err != nil {
		result.Valid = false
		result.Problem = err.Error()
	} else if err := snapshot.Validate(); err != nil {
		result.Valid = false
		result.Problem = err.Error()
	}

	switch outputFormat {
	case "json", "yaml":
		if err := cli.OutputResults(cmd.OutOrStdout(), outputFormat, result); err != nil {
			return err
		}
	default:
		if result.Valid {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d forms, valid\n", result.Snapshot, result.Forms)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: invalid: %s\n", result.Snapshot, result.Problem)
		}
	}

	if !result.Valid {
		return fmt.Errorf("snapshot %s failed validation", ctx.SnapshotPath)
	}
	return nil
}
