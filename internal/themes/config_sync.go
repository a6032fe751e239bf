package themes

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	configurationFileExtensionConstant   = ".yml"
	configSyncDirectoryMissingMessage    = "configuration sync directory not configured"
	configSyncReadErrorTemplateConstant  = "unable to read %s: %w"
	configSyncParseErrorTemplateConstant = "unable to parse %s: %w"
	configSyncThemeErrorTemplateConstant = "%s: %w"
)

// ErrConfigSyncDirectoryMissing indicates ConfigSyncRegistry was built without a directory.
var ErrConfigSyncDirectoryMissing = errors.New(configSyncDirectoryMissingMessage)

type systemThemeDocument struct {
	Default string `yaml:"default"`
}

// ConfigSyncRegistry reads the active theme from an exported configuration directory.
type ConfigSyncRegistry struct {
	directory string
}

// NewConfigSyncRegistry constructs a registry rooted at directory.
func NewConfigSyncRegistry(directory string) (*ConfigSyncRegistry, error) {
	if len(directory) == 0 {
		return nil, ErrConfigSyncDirectoryMissing
	}
	return &ConfigSyncRegistry{directory: directory}, nil
}

// ConfigurationFilePath returns the path of the exported system.theme object.
func (registry *ConfigSyncRegistry) ConfigurationFilePath() string {
	return filepath.Join(registry.directory, SystemThemeConfigurationName+configurationFileExtensionConstant)
}

// ActiveTheme parses system.theme.yml on every call.
func (registry *ConfigSyncRegistry) ActiveTheme(executionContext context.Context) (ThemeName, error) {
	if contextError := executionContext.Err(); contextError != nil {
		return "", contextError
	}

	configurationFilePath := registry.ConfigurationFilePath()
	fileContents, readError := os.ReadFile(configurationFilePath)
	if readError != nil {
		return "", fmt.Errorf(configSyncReadErrorTemplateConstant, configurationFilePath, readError)
	}

	var document systemThemeDocument
	if parseError := yaml.Unmarshal(fileContents, &document); parseError != nil {
		return "", fmt.Errorf(configSyncParseErrorTemplateConstant, configurationFilePath, parseError)
	}

	themeName, themeError := normalizeThemeName(document.Default)
	if themeError != nil {
		return "", fmt.Errorf(configSyncThemeErrorTemplateConstant, configurationFilePath, themeError)
	}
	return themeName, nil
}
