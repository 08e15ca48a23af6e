package files

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/formdeck/formdeck-cli/pkg/models"
)

const (
	FormdeckDir         = ".formdeck"
	SettingsFile        = "settings.yaml"
	DefaultSnapshotFile = "formdeck.json"
)

func InitProjectStructure() error {
	if err := os.MkdirAll(FormdeckDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", FormdeckDir, err)
	}
	return nil
}

// ReadSettings loads the settings file, returning defaults when no file
// has been written yet.
func ReadSettings() (*models.Settings, error) {
	settingsPath := filepath.Join(FormdeckDir, SettingsFile)

	content, err := os.ReadFile(settingsPath)
	if err != nil {
		if os.IsNotExist(err) {
			return models.DefaultSettings(), nil
		}
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	settings := models.DefaultSettings()
	if err := yaml.Unmarshal(content, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings YAML: %w", err)
	}

	return settings, nil
}

func WriteSettings(settings *models.Settings) error {
	if err := InitProjectStructure(); err != nil {
		return err
	}

	content, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings to YAML: %w", err)
	}

	settingsPath := filepath.Join(FormdeckDir, SettingsFile)
	if err := os.WriteFile(settingsPath, content, 0644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}

	return nil
}
