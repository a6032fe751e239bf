package execshell

import (
	"fmt"
	"strings"
)

const (
	startMessageTemplateConstant            = "Running %s%s"
	successMessageTemplateConstant          = "Completed %s%s"
	failureMessageTemplateConstant          = "%s%s failed with exit code %d%s"
	executionFailureMessageTemplateConstant = "%s%s failed: %v"
	workingDirectorySuffixTemplateConstant  = " (in %s)"
	standardErrorSuffixTemplateConstant     = ": %s"
	argumentSeparatorConstant               = " "
)

func describeCommand(command ShellCommand) string {
	commandParts := append([]string{string(command.Name)}, command.Details.Arguments...)
	return strings.Join(commandParts, argumentSeparatorConstant)
}

func workingDirectorySuffix(command ShellCommand) string {
	if len(command.Details.WorkingDirectory) == 0 {
		return ""
	}
	return fmt.Sprintf(workingDirectorySuffixTemplateConstant, command.Details.WorkingDirectory)
}

func trimmedStandardError(result ExecutionResult) string {
	return strings.TrimSpace(result.StandardError)
}

func formatStartMessage(command ShellCommand) string {
	return fmt.Sprintf(startMessageTemplateConstant, describeCommand(command), workingDirectorySuffix(command))
}

func formatSuccessMessage(command ShellCommand) string {
	return fmt.Sprintf(successMessageTemplateConstant, describeCommand(command), workingDirectorySuffix(command))
}

func formatFailureMessage(command ShellCommand, result ExecutionResult) string {
	standardErrorSuffix := ""
	if standardError := trimmedStandardError(result); len(standardError) > 0 {
		standardErrorSuffix = fmt.Sprintf(standardErrorSuffixTemplateConstant, standardError)
	}
	return fmt.Sprintf(failureMessageTemplateConstant, describeCommand(command), workingDirectorySuffix(command), result.ExitCode, standardErrorSuffix)
}

func formatExecutionFailureMessage(command ShellCommand, failure error) string {
	return fmt.Sprintf(executionFailureMessageTemplateConstant, describeCommand(command), workingDirectorySuffix(command), failure)
}
