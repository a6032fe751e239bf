package themes

import (
	"context"
	"errors"
	"fmt"

	"github.com/temirov/soloblocks/internal/execshell"
	pathutils "github.com/temirov/soloblocks/internal/utils/path"
)

const (
	drushConfigGetCommandConstant         = "config:get"
	drushStringFormatFlagConstant         = "--format=string"
	drushRootFlagTemplateConstant         = "--root=%s"
	drushExecutorMissingMessage           = "drush command executor not configured"
	drushThemeLookupErrorTemplateConstant = "unable to read %s:%s through drush: %w"
)

// ErrDrushExecutorMissing indicates DrushRegistry was built without an executor.
var ErrDrushExecutorMissing = errors.New(drushExecutorMissingMessage)

// CommandExecutor runs external commands.
type CommandExecutor interface {
	Execute(executionContext context.Context, command execshell.ShellCommand) (execshell.ExecutionResult, error)
}

// DrushRegistry asks a live site for its active theme through drush.
type DrushRegistry struct {
	executor    CommandExecutor
	drushBinary execshell.CommandName
	siteRoot    string
}

// NewDrushRegistry constructs a registry; an empty binary falls back to drush on PATH.
// Relative site roots and binary paths are resolved against the working directory.
func NewDrushRegistry(executor CommandExecutor, drushBinary string, siteRoot string) (*DrushRegistry, error) {
	if executor == nil {
		return nil, ErrDrushExecutorMissing
	}
	binary := execshell.CommandName(pathutils.ExecutablePath(drushBinary))
	if len(binary) == 0 {
		binary = execshell.CommandDrush
	}
	return &DrushRegistry{executor: executor, drushBinary: binary, siteRoot: pathutils.AbsolutePath(siteRoot)}, nil
}

// ActiveTheme runs drush config:get system.theme default.
func (registry *DrushRegistry) ActiveTheme(executionContext context.Context) (ThemeName, error) {
	arguments := []string{drushConfigGetCommandConstant, SystemThemeConfigurationName, DefaultThemeConfigurationKey, drushStringFormatFlagConstant}
	if len(registry.siteRoot) > 0 {
		arguments = append(arguments, fmt.Sprintf(drushRootFlagTemplateConstant, registry.siteRoot))
	}

	executionResult, executionError := registry.executor.Execute(executionContext, execshell.ShellCommand{
		Name:    registry.drushBinary,
		Details: execshell.CommandDetails{Arguments: arguments, WorkingDirectory: registry.siteRoot},
	})
	if executionError != nil {
		return "", fmt.Errorf(drushThemeLookupErrorTemplateConstant, SystemThemeConfigurationName, DefaultThemeConfigurationKey, executionError)
	}

	return normalizeThemeName(executionResult.StandardOutput)
}
