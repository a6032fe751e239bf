package blocks

import (
	"strings"

	"github.com/temirov/soloblocks/internal/execshell"
	"github.com/temirov/soloblocks/internal/themes"
	pathutils "github.com/temirov/soloblocks/internal/utils/path"
)

const (
	configurationKeySeparatorConstant      = "."
	registryConfigurationKeyConstant       = "registry"
	configSyncDirectoryConfigurationKey    = "config_sync_dir"
	siteRootConfigurationKeyConstant       = "site_root"
	drushBinaryConfigurationKeyConstant    = "drush_binary"
	helperFunctionConfigurationKeyConstant = "helper_function"
	dryRunConfigurationKeyConstant         = "dry_run"
	defaultConfigSyncDirectoryConstant     = "config/sync"
)

var blocksConfigurationHomeExpander = pathutils.NewHomeExpander()

// CommandConfiguration captures persisted configuration for the block migration action.
type CommandConfiguration struct {
	Registry            string `mapstructure:"registry"`
	ConfigSyncDirectory string `mapstructure:"config_sync_dir"`
	SiteRoot            string `mapstructure:"site_root"`
	DrushBinary         string `mapstructure:"drush_binary"`
	HelperFunction      string `mapstructure:"helper_function"`
	DryRun              bool   `mapstructure:"dry_run"`
}

// DefaultCommandConfiguration returns baseline configuration values.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		Registry:            string(themes.RegistryKindConfigSync),
		ConfigSyncDirectory: defaultConfigSyncDirectoryConstant,
		DrushBinary:         string(execshell.CommandDrush),
		HelperFunction:      DefaultHelperFunction,
	}
}

// DefaultConfigurationValues exposes the defaults as Viper keys under prefix.
func DefaultConfigurationValues(prefix string) map[string]any {
	defaults := DefaultCommandConfiguration()
	keyPrefix := strings.TrimSpace(prefix)
	if len(keyPrefix) > 0 {
		keyPrefix += configurationKeySeparatorConstant
	}

	return map[string]any{
		keyPrefix + registryConfigurationKeyConstant:       defaults.Registry,
		keyPrefix + configSyncDirectoryConfigurationKey:    defaults.ConfigSyncDirectory,
		keyPrefix + siteRootConfigurationKeyConstant:       defaults.SiteRoot,
		keyPrefix + drushBinaryConfigurationKeyConstant:    defaults.DrushBinary,
		keyPrefix + helperFunctionConfigurationKeyConstant: defaults.HelperFunction,
		keyPrefix + dryRunConfigurationKeyConstant:         defaults.DryRun,
	}
}

// Sanitize trims values, expands home shortcuts, makes the site root and a
// relative drush binary absolute, and restores defaults for blanks.
func (configuration CommandConfiguration) Sanitize() CommandConfiguration {
	defaults := DefaultCommandConfiguration()
	sanitized := CommandConfiguration{
		Registry:            strings.TrimSpace(configuration.Registry),
		ConfigSyncDirectory: blocksConfigurationHomeExpander.Expand(configuration.ConfigSyncDirectory),
		SiteRoot:            pathutils.AbsolutePath(blocksConfigurationHomeExpander.Expand(configuration.SiteRoot)),
		DrushBinary:         pathutils.ExecutablePath(blocksConfigurationHomeExpander.Expand(configuration.DrushBinary)),
		HelperFunction:      strings.TrimSpace(configuration.HelperFunction),
		DryRun:              configuration.DryRun,
	}

	if len(sanitized.Registry) == 0 {
		sanitized.Registry = defaults.Registry
	}
	if len(sanitized.ConfigSyncDirectory) == 0 {
		sanitized.ConfigSyncDirectory = defaults.ConfigSyncDirectory
	}
	if len(sanitized.DrushBinary) == 0 {
		sanitized.DrushBinary = defaults.DrushBinary
	}
	if len(sanitized.HelperFunction) == 0 {
		sanitized.HelperFunction = defaults.HelperFunction
	}
	return sanitized
}
