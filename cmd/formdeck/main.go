package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/formdeck/formdeck-cli/cmd/commands"
	"github.com/formdeck/formdeck-cli/internal/cli"
	"github.com/formdeck/formdeck-cli/pkg/files"
	"github.com/formdeck/formdeck-cli/pkg/host"
	"github.com/formdeck/formdeck-cli/pkg/models"
	"github.com/formdeck/formdeck-cli/pkg/tui"
)

// Version is set during build with -ldflags
var version = "dev"

var (
	flagOutput  string
	flagQuiet   bool
	flagNoColor bool
	flagYes     bool
	flagDebug   bool
	flagNoSave  bool
)

var rootCmd = &cobra.Command{
	Use:   "formdeck [snapshot]",
	Short: "Terminal-based editor for ordered sub-form card collections",
	Long: `Formdeck is a terminal-based editor for the card collections an inline
form panel manages: ordered, optionally nested sub-forms that can be
added, edited, deleted and reordered, with the derived management
fields kept in sync the whole time. Collections are stored as plain
JSON snapshot files.`,
	Args: cobra.MaximumNArgs(1),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := cli.ValidateOutputFormat(flagOutput); err != nil {
			return err
		}
		cli.SetGlobalFlags(flagQuiet, flagNoColor, flagYes)
		return nil
	},
	RunE: runPanel,
}

func runPanel(cmd *cobra.Command, args []string) error {
	ctx := cli.NewCommandContext(args)
	settings := ctx.LoadSettingsWithDefault()

	snapshot, err := ctx.LoadSnapshot()
	if err != nil {
		return err
	}

	log, closer, err := host.NewLogger(settings.Debug.LogFile, settings.Debug.Enabled || flagDebug)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}
	if closer != nil {
		defer closer.Close()
	}

	opts := panelOptions(snapshot, settings)
	opts.Log = log

	model, err := tui.NewPanel(*snapshot.State, opts)
	if err != nil {
		return fmt.Errorf("failed to build panel: %w", err)
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("failed to start the terminal user interface: %w", err)
	}

	if flagNoSave {
		return nil
	}
	if panelModel, ok := final.(*tui.PanelModel); ok {
		snapshot.State = panelModel.State()
		if err := files.WriteSnapshot(ctx.SnapshotPath, snapshot); err != nil {
			return err
		}
		cli.PrintSuccess("Saved %s", ctx.SnapshotPath)
	}
	return nil
}

// panelOptions merges the snapshot's collection options over the user's
// configured defaults. The snapshot decides what the collection allows;
// settings keep the UI preferences.
func panelOptions(snapshot *files.Snapshot, settings *models.Settings) tui.Options {
	opts := tui.OptionsFromSettings(settings)
	opts.Prefix = snapshot.Prefix
	opts.Template = snapshot.Template

	collection := snapshot.Options
	if collection.Label != "" {
		opts.PanelLabel = collection.Label
	}
	opts.CanEdit = collection.EffectiveCanEdit()
	opts.CanDelete = collection.EffectiveCanDelete()
	opts.CanOrder = collection.CanOrder
	opts.Nested = collection.Nested
	if collection.HeaderTemplate != "" {
		opts.HeaderTemplate = collection.HeaderTemplate
	}
	return opts
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new Formdeck project",
	Long:  `Creates the .formdeck settings folder and a starter snapshot in the current directory`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to determine current directory: %w", err)
		}

		cli.PrintInfo("Initializing Formdeck project in %s...", cwd)

		if err := files.InitProjectStructure(); err != nil {
			return fmt.Errorf("failed to initialize project structure: %w", err)
		}
		if err := files.WriteSettings(models.DefaultSettings()); err != nil {
			return err
		}

		if _, err := os.Stat(files.DefaultSnapshotFile); err == nil {
			ok, err := cli.Confirm(fmt.Sprintf("%s already exists. Overwrite it?", files.DefaultSnapshotFile), false)
			if err != nil {
				return err
			}
			if !ok {
				cli.PrintInfo("Kept existing %s", files.DefaultSnapshotFile)
				return nil
			}
		}

		if err := files.WriteSnapshot(files.DefaultSnapshotFile, starterSnapshot()); err != nil {
			return err
		}

		cli.PrintSuccess("Created .formdeck settings and %s", files.DefaultSnapshotFile)
		cli.PrintInfo("Run 'formdeck' to open the panel.")
		return nil
	},
}

func starterSnapshot() *files.Snapshot {
	state := models.EmptyState()
	state.EmptyForm.Fields = map[string]string{"title": ""}
	return &files.Snapshot{
		Prefix: "id_forms",
		Template: `<div class="field">
  <label for="id_forms-__prefix__-title">Title</label>
  <div class="field-content"><input type="text" id="id_forms-__prefix__-title" name="forms-__prefix__-title"></div>
</div>`,
		Options: models.PanelSettings{Label: "Add", CanOrder: true},
		State:   &state,
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Formdeck",
	Long:  `Display the current version of the Formdeck CLI tool`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Formdeck version %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "text", "Output format (text, json, yaml)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress informational output")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&flagYes, "yes", "y", false, "Skip confirmation prompts")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Enable the debug log regardless of settings")
	rootCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not write the snapshot back on exit")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewShowCommand())
	rootCmd.AddCommand(commands.NewSyncCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
