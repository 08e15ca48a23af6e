package cli

import (
	"fmt"
	"os"

	"github.com/formdeck/formdeck-cli/pkg/files"
	"github.com/formdeck/formdeck-cli/pkg/models"
)

// CommandContext manages snapshot resolution and common command context
type CommandContext struct {
	SnapshotPath string
	Settings     *models.Settings
}

// NewCommandContext creates a new command context, resolving the snapshot
// path from the command arguments or falling back to the default file.
func NewCommandContext(args []string) *CommandContext {
	path := files.DefaultSnapshotFile
	if len(args) > 0 {
		path = args[0]
	}
	return &CommandContext{SnapshotPath: path}
}

// ValidateSnapshot ensures the snapshot file exists
func (c *CommandContext) ValidateSnapshot() error {
	if _, err := os.Stat(c.SnapshotPath); os.IsNotExist(err) {
		return fmt.Errorf("no snapshot found at %s. Run 'formdeck init' first", c.SnapshotPath)
	}
	return nil
}

// LoadSnapshot reads the resolved snapshot file
func (c *CommandContext) LoadSnapshot() (*files.Snapshot, error) {
	if err := c.ValidateSnapshot(); err != nil {
		return nil, err
	}
	return files.ReadSnapshot(c.SnapshotPath)
}

// LoadSettingsWithDefault loads settings or returns default if error
func (c *CommandContext) LoadSettingsWithDefault() *models.Settings {
	if c.Settings != nil {
		return c.Settings
	}

	settings, err := files.ReadSettings()
	if err != nil {
		// Use default settings if can't read
		settings = models.DefaultSettings()
	}

	c.Settings = settings
	return settings
}
