package httpapi

import (
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	serveCommandUseConstant              = "serve"
	serveCommandShortDescriptionConstant = "Serve the Migrate Blocks action over HTTP"
	serveCommandLongDescriptionConstant  = "serve exposes GET and POST " + ActionPath + " so the Migrate Blocks action can be described and submitted over HTTP."
	addressFlagNameConstant              = "address"
	addressFlagUsageConstant             = "Address the HTTP server listens on."
	actionProviderMissingMessage         = "migrate blocks action provider not configured"
)

// ErrActionProviderMissing indicates the serve command has no action to expose.
var ErrActionProviderMissing = errors.New(actionProviderMissingMessage)

// ActionProvider builds the action served over HTTP.
type ActionProvider func(logger *zap.Logger) (MigrationAction, error)

// CommandBuilder assembles the serve Cobra command.
type CommandBuilder struct {
	LoggerProvider        func() *zap.Logger
	ConfigurationProvider func() ServerConfiguration
	ActionProvider        ActionProvider
}

// Build constructs the serve command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:           serveCommandUseConstant,
		Short:         serveCommandShortDescriptionConstant,
		Long:          serveCommandLongDescriptionConstant,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.NoArgs,
		RunE:          builder.runServe,
	}

	command.Flags().String(addressFlagNameConstant, "", addressFlagUsageConstant)

	return command, nil
}

func (builder *CommandBuilder) runServe(command *cobra.Command, arguments []string) error {
	if builder.ActionProvider == nil {
		return ErrActionProviderMissing
	}

	logger := zap.NewNop()
	if builder.LoggerProvider != nil {
		if providedLogger := builder.LoggerProvider(); providedLogger != nil {
			logger = providedLogger
		}
	}

	configuration := DefaultServerConfiguration()
	if builder.ConfigurationProvider != nil {
		configuration = builder.ConfigurationProvider()
	}
	if command.Flags().Changed(addressFlagNameConstant) {
		configuration.Address, _ = command.Flags().GetString(addressFlagNameConstant)
	}
	configuration = configuration.Sanitize()

	action, actionError := builder.ActionProvider(logger)
	if actionError != nil {
		return actionError
	}

	router := NewRouter(NewActionHandler(action, logger, ActionPath))
	server := NewServer(configuration, router, logger)

	signalContext, stop := signal.NotifyContext(command.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return server.ListenAndServe(signalContext)
}
