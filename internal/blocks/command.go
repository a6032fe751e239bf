package blocks

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/temirov/soloblocks/internal/execshell"
	"github.com/temirov/soloblocks/internal/themes"
	"github.com/temirov/soloblocks/internal/utils"
	"github.com/temirov/soloblocks/internal/utils/flags"
)

const (
	migrateCommandUseConstant               = "migrate-blocks"
	describeCommandUseConstant              = "describe"
	describeCommandShortDescriptionConstant = "Print the Migrate Blocks action label and description"
	registryFlagNameConstant                = "registry"
	registryFlagUsageConstant               = "Theme registry used to read the active theme."
	configSyncDirectoryFlagNameConstant     = "config-sync-dir"
	configSyncDirectoryFlagUsageConstant    = "Configuration sync directory holding system.theme.yml."
	siteRootFlagNameConstant                = "site-root"
	siteRootFlagUsageConstant               = "Drupal site root passed to drush."
	drushBinaryFlagNameConstant             = "drush-binary"
	drushBinaryFlagUsageConstant            = "Path to the drush executable."
	dryRunFlagNameConstant                  = "dry-run"
	dryRunFlagUsageConstant                 = "Print the migration request instead of running it."
	describeOutputTemplateConstant          = "%s\n%s\n"
	migrationCommandErrorTemplateConstant   = "migrate blocks failed: %w"
	logMessageMigrationRequestedConstant    = "Block migration requested"
	logMessageMigrationCompletedConstant    = "Block migration completed"
	logMessageMigrationFailedConstant       = "Block migration failed"
	logFieldSourceThemeConstant             = "source_theme"
	logFieldTargetThemeConstant             = "target_theme"
	logFieldRegionConstant                  = "region"
	logFieldRegistryConstant                = "registry"
	logFieldDryRunConstant                  = "dry_run"
	logFieldConfigurationFileConstant       = "config_file"
)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// RegistryProvider constructs the theme registry for a configuration.
type RegistryProvider func(configuration CommandConfiguration, executor themes.CommandExecutor) (themes.ThemeRegistry, error)

// ExecutorProvider constructs the migration executor for a configuration.
type ExecutorProvider func(configuration CommandConfiguration, executor themes.CommandExecutor, output io.Writer) (MigrationExecutor, error)

// CommandBuilder assembles the migrate-blocks and describe Cobra commands.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider func() CommandConfiguration
	CommandExecutor       themes.CommandExecutor
	RegistryProvider      RegistryProvider
	ExecutorProvider      ExecutorProvider
}

// Build constructs the migrate-blocks command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:           migrateCommandUseConstant,
		Short:         ActionLabel,
		Long:          ActionDescription,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.NoArgs,
		RunE:          builder.runMigrate,
	}

	var dryRunEnabled bool

	command.Flags().String(registryFlagNameConstant, "", flags.ChoiceUsage(registryFlagUsageConstant, string(themes.RegistryKindConfigSync), string(themes.RegistryKindConfigSync), string(themes.RegistryKindDrush)))
	command.Flags().String(configSyncDirectoryFlagNameConstant, "", configSyncDirectoryFlagUsageConstant)
	command.Flags().String(siteRootFlagNameConstant, "", siteRootFlagUsageConstant)
	command.Flags().String(drushBinaryFlagNameConstant, "", drushBinaryFlagUsageConstant)
	flags.AddToggleFlag(command.Flags(), &dryRunEnabled, dryRunFlagNameConstant, false, dryRunFlagUsageConstant)

	return command, nil
}

// BuildDescribe constructs the describe command.
func (builder *CommandBuilder) BuildDescribe() (*cobra.Command, error) {
	return &cobra.Command{
		Use:           describeCommandUseConstant,
		Short:         describeCommandShortDescriptionConstant,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			_, writeError := fmt.Fprintf(command.OutOrStdout(), describeOutputTemplateConstant, ActionLabel, ActionDescription)
			return writeError
		},
	}, nil
}

// ResolveTrigger wires a Trigger for configuration. Plan output goes to output.
func (builder *CommandBuilder) ResolveTrigger(configuration CommandConfiguration, logger *zap.Logger, output io.Writer) (*Trigger, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	commandExecutor, executorError := builder.resolveCommandExecutor(logger)
	if executorError != nil {
		return nil, executorError
	}

	registry, registryError := builder.resolveRegistry(configuration, commandExecutor)
	if registryError != nil {
		return nil, registryError
	}

	migrationExecutor, migrationExecutorError := builder.resolveMigrationExecutor(configuration, commandExecutor, output)
	if migrationExecutorError != nil {
		return nil, migrationExecutorError
	}

	return NewTrigger(registry, newLoggingMigrationExecutor(migrationExecutor, logger)), nil
}

// ResolveConfiguration returns the sanitized configuration supplied by ConfigurationProvider.
func (builder *CommandBuilder) ResolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration()
	}
	return builder.ConfigurationProvider().Sanitize()
}

// ResolveLogger returns the provided logger or a no-op logger.
func (builder *CommandBuilder) ResolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}
	if logger := builder.LoggerProvider(); logger != nil {
		return logger
	}
	return zap.NewNop()
}

func (builder *CommandBuilder) runMigrate(command *cobra.Command, arguments []string) error {
	configuration := builder.parseOptions(command)

	logger := builder.ResolveLogger()
	contextAccessor := utils.NewCommandContextAccessor()
	if logLevel, available := contextAccessor.LogLevel(command.Context()); available && strings.EqualFold(logLevel, string(utils.LogLevelDebug)) {
		logger = logger.WithOptions(zap.IncreaseLevel(zapcore.DebugLevel))
	}
	logger = logger.With(
		zap.String(logFieldRegistryConstant, configuration.Registry),
		zap.Bool(logFieldDryRunConstant, configuration.DryRun),
	)
	if configurationFilePath, available := contextAccessor.ConfigurationFilePath(command.Context()); available && len(configurationFilePath) > 0 {
		logger = logger.With(zap.String(logFieldConfigurationFileConstant, configurationFilePath))
	}

	trigger, triggerError := builder.ResolveTrigger(configuration, logger, command.OutOrStdout())
	if triggerError != nil {
		return triggerError
	}

	if invokeError := trigger.Invoke(command.Context()); invokeError != nil {
		return fmt.Errorf(migrationCommandErrorTemplateConstant, invokeError)
	}
	return nil
}

func (builder *CommandBuilder) parseOptions(command *cobra.Command) CommandConfiguration {
	configuration := builder.ResolveConfiguration()
	if command == nil {
		return configuration
	}

	flagSet := command.Flags()
	if flagSet.Changed(registryFlagNameConstant) {
		configuration.Registry, _ = flagSet.GetString(registryFlagNameConstant)
	}
	if flagSet.Changed(configSyncDirectoryFlagNameConstant) {
		configuration.ConfigSyncDirectory, _ = flagSet.GetString(configSyncDirectoryFlagNameConstant)
	}
	if flagSet.Changed(siteRootFlagNameConstant) {
		configuration.SiteRoot, _ = flagSet.GetString(siteRootFlagNameConstant)
	}
	if flagSet.Changed(drushBinaryFlagNameConstant) {
		configuration.DrushBinary, _ = flagSet.GetString(drushBinaryFlagNameConstant)
	}
	if flagSet.Changed(dryRunFlagNameConstant) {
		configuration.DryRun, _ = flags.ParseToggle(flagSet.Lookup(dryRunFlagNameConstant).Value.String())
	}

	return configuration.Sanitize()
}

func (builder *CommandBuilder) resolveCommandExecutor(logger *zap.Logger) (themes.CommandExecutor, error) {
	if builder.CommandExecutor != nil {
		return builder.CommandExecutor, nil
	}
	return execshell.NewShellExecutor(logger, execshell.NewOSCommandRunner())
}

func (builder *CommandBuilder) resolveRegistry(configuration CommandConfiguration, commandExecutor themes.CommandExecutor) (themes.ThemeRegistry, error) {
	if builder.RegistryProvider != nil {
		return builder.RegistryProvider(configuration, commandExecutor)
	}
	return NewThemeRegistry(configuration, commandExecutor)
}

func (builder *CommandBuilder) resolveMigrationExecutor(configuration CommandConfiguration, commandExecutor themes.CommandExecutor, output io.Writer) (MigrationExecutor, error) {
	if builder.ExecutorProvider != nil {
		return builder.ExecutorProvider(configuration, commandExecutor, output)
	}
	return NewMigrationExecutor(configuration, commandExecutor, output)
}

// NewThemeRegistry builds the registry named by configuration.Registry.
func NewThemeRegistry(configuration CommandConfiguration, commandExecutor themes.CommandExecutor) (themes.ThemeRegistry, error) {
	registryKind, parseError := themes.ParseRegistryKind(configuration.Registry)
	if parseError != nil {
		return nil, parseError
	}

	switch registryKind {
	case themes.RegistryKindDrush:
		return themes.NewDrushRegistry(commandExecutor, configuration.DrushBinary, configuration.SiteRoot)
	default:
		return themes.NewConfigSyncRegistry(configuration.ConfigSyncDirectory)
	}
}

// NewMigrationExecutor builds the plan executor for dry runs and the drush executor otherwise.
func NewMigrationExecutor(configuration CommandConfiguration, commandExecutor themes.CommandExecutor, output io.Writer) (MigrationExecutor, error) {
	if configuration.DryRun {
		return NewPlanMigrationExecutor(output), nil
	}
	return NewDrushMigrationExecutor(commandExecutor, configuration.DrushBinary, configuration.SiteRoot, configuration.HelperFunction)
}
