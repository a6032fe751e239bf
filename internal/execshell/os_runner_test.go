package execshell_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/soloblocks/internal/execshell"
)

const testShellExecutableConstant = execshell.CommandName("sh")

func TestOSCommandRunnerCapturesOutputAndExitCode(testInstance *testing.T) {
	runner := execshell.NewOSCommandRunner()

	executionResult, runError := runner.Run(context.Background(), execshell.ShellCommand{
		Name: testShellExecutableConstant,
		Details: execshell.CommandDetails{
			Arguments:            []string{"-c", "echo \"$SOLO_THEME\"; echo failure >&2; exit 3"},
			EnvironmentVariables: map[string]string{"SOLO_THEME": "bartik"},
		},
	})
	require.NoError(testInstance, runError)
	require.Equal(testInstance, 3, executionResult.ExitCode)
	require.Equal(testInstance, "bartik\n", executionResult.StandardOutput)
	require.Equal(testInstance, "failure\n", executionResult.StandardError)
}

func TestOSCommandRunnerUsesWorkingDirectoryAndStandardInput(testInstance *testing.T) {
	workingDirectory := testInstance.TempDir()
	runner := execshell.NewOSCommandRunner()

	executionResult, runError := runner.Run(context.Background(), execshell.ShellCommand{
		Name: testShellExecutableConstant,
		Details: execshell.CommandDetails{
			Arguments:        []string{"-c", "pwd -P >/dev/null && cat"},
			WorkingDirectory: workingDirectory,
			StandardInput:    []byte("footer_menu"),
		},
	})
	require.NoError(testInstance, runError)
	require.Zero(testInstance, executionResult.ExitCode)
	require.Equal(testInstance, "footer_menu", executionResult.StandardOutput)
}

func TestOSCommandRunnerReportsMissingExecutable(testInstance *testing.T) {
	runner := execshell.NewOSCommandRunner()

	_, runError := runner.Run(context.Background(), execshell.ShellCommand{Name: "solo-blocks-missing-executable"})
	require.Error(testInstance, runError)
}
