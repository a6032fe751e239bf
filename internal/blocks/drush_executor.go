package blocks

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/temirov/soloblocks/internal/execshell"
	"github.com/temirov/soloblocks/internal/themes"
	pathutils "github.com/temirov/soloblocks/internal/utils/path"
)

const (
	// DefaultHelperFunction is the site procedure that performs the transfer.
	DefaultHelperFunction = "_solo_move_blocks_move_blocks_and_config_between_themes"

	drushPHPEvalCommandConstant           = "php:eval"
	drushRootFlagTemplateConstant         = "--root=%s"
	helperInvocationTemplateConstant      = "%s(%s, %s, %s);"
	phpSingleQuoteConstant                = "'"
	drushMigrationErrorTemplateConstant   = "block migration %s -> %s (%s) failed: %w"
	invalidHelperFunctionTemplateConstant = "invalid helper function name %q"
	migrationExecutorMissingMessage       = "drush command executor not configured"
	phpIdentifierPatternConstant          = `^[A-Za-z_][A-Za-z0-9_]*$`
)

var (
	// ErrMigrationCommandExecutorMissing indicates DrushMigrationExecutor was built without an executor.
	ErrMigrationCommandExecutorMissing = errors.New(migrationExecutorMissingMessage)

	phpIdentifierExpression = regexp.MustCompile(phpIdentifierPatternConstant)
	phpLiteralEscaper       = strings.NewReplacer(`\`, `\\`, `'`, `\'`)
)

// DrushMigrationExecutor calls the site's helper procedure through drush php:eval.
type DrushMigrationExecutor struct {
	executor       themes.CommandExecutor
	drushBinary    execshell.CommandName
	siteRoot       string
	helperFunction string
}

// NewDrushMigrationExecutor constructs the executor. Empty binary and helper
// names fall back to drush and DefaultHelperFunction. siteRoot is made absolute
// because it serves as both the working directory and --root.
func NewDrushMigrationExecutor(executor themes.CommandExecutor, drushBinary string, siteRoot string, helperFunction string) (*DrushMigrationExecutor, error) {
	if executor == nil {
		return nil, ErrMigrationCommandExecutorMissing
	}

	binary := execshell.CommandName(pathutils.ExecutablePath(drushBinary))
	if len(binary) == 0 {
		binary = execshell.CommandDrush
	}

	helper := strings.TrimSpace(helperFunction)
	if len(helper) == 0 {
		helper = DefaultHelperFunction
	}
	if !phpIdentifierExpression.MatchString(helper) {
		return nil, fmt.Errorf(invalidHelperFunctionTemplateConstant, helper)
	}

	return &DrushMigrationExecutor{
		executor:       executor,
		drushBinary:    binary,
		siteRoot:       pathutils.AbsolutePath(siteRoot),
		helperFunction: helper,
	}, nil
}

// MigrateBlocks runs the helper with the request's three arguments.
func (migrationExecutor *DrushMigrationExecutor) MigrateBlocks(executionContext context.Context, request MigrationRequest) error {
	arguments := []string{drushPHPEvalCommandConstant, migrationExecutor.HelperInvocation(request)}
	if len(migrationExecutor.siteRoot) > 0 {
		arguments = append(arguments, fmt.Sprintf(drushRootFlagTemplateConstant, migrationExecutor.siteRoot))
	}

	_, executionError := migrationExecutor.executor.Execute(executionContext, execshell.ShellCommand{
		Name:    migrationExecutor.drushBinary,
		Details: execshell.CommandDetails{Arguments: arguments, WorkingDirectory: migrationExecutor.siteRoot},
	})
	if executionError != nil {
		return fmt.Errorf(drushMigrationErrorTemplateConstant, request.SourceTheme, request.TargetTheme, request.Region, executionError)
	}
	return nil
}

// HelperInvocation renders the PHP statement evaluated by drush.
func (migrationExecutor *DrushMigrationExecutor) HelperInvocation(request MigrationRequest) string {
	return fmt.Sprintf(
		helperInvocationTemplateConstant,
		migrationExecutor.helperFunction,
		quotePHPString(string(request.SourceTheme)),
		quotePHPString(string(request.TargetTheme)),
		quotePHPString(string(request.Region)),
	)
}

func quotePHPString(value string) string {
	return phpSingleQuoteConstant + phpLiteralEscaper.Replace(value) + phpSingleQuoteConstant
}
