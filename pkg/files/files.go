package files

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/quillforge/sidekick/pkg/models"
)

const (
	SidekickDir  = ".sidekick"
	DocumentFile = "document.md"
	SettingsFile = "settings.yaml"
	ExportsDir   = "exports"
)

// InitWorkspace creates the .sidekick folder structure and writes the seed
// document and default settings. Existing files are left alone.
func InitWorkspace(seedDocument string) error {
	dirs := []string{
		SidekickDir,
		filepath.Join(SidekickDir, ExportsDir),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	docPath := filepath.Join(SidekickDir, DocumentFile)
	if _, err := os.Stat(docPath); os.IsNotExist(err) {
		if err := os.WriteFile(docPath, []byte(seedDocument), 0644); err != nil {
			return fmt.Errorf("failed to write seed document: %w", err)
		}
	}

	settingsPath := filepath.Join(SidekickDir, SettingsFile)
	if _, err := os.Stat(settingsPath); os.IsNotExist(err) {
		if err := WriteSettings(models.DefaultSettings()); err != nil {
			return err
		}
	}

	return nil
}

// WorkspaceExists reports whether the current directory holds a workspace.
func WorkspaceExists() bool {
	info, err := os.Stat(SidekickDir)
	return err == nil && info.IsDir()
}

// ReadDocument loads the working document from the workspace.
func ReadDocument() (string, error) {
	content, err := os.ReadFile(filepath.Join(SidekickDir, DocumentFile))
	if err != nil {
		return "", fmt.Errorf("failed to read document: %w", err)
	}
	return string(content), nil
}

// WriteDocument saves the working document to the workspace.
func WriteDocument(content string) error {
	path := filepath.Join(SidekickDir, DocumentFile)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	return nil
}

// ExportDocument writes a copy of the document under exports/ with the given
// filename.
func ExportDocument(filename, content string) (string, error) {
	path := filepath.Join(SidekickDir, ExportsDir, filename)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create exports directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to export document: %w", err)
	}
	return path, nil
}

// ReadSettings loads settings.yaml, falling back to defaults when the file
// does not exist.
func ReadSettings() (*models.Settings, error) {
	content, err := os.ReadFile(filepath.Join(SidekickDir, SettingsFile))
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

// WriteSettings saves settings.yaml to the workspace.
func WriteSettings(settings *models.Settings) error {
	content, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	path := filepath.Join(SidekickDir, SettingsFile)
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}
