package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/temirov/soloblocks/internal/blocks"
	"github.com/temirov/soloblocks/internal/utils"
)

const (
	testSystemThemeFileNameConstant       = "system.theme.yml"
	testSystemThemeContentTemplate        = "default: %s\nadmin: claro\n"
	testConfigurationFileNameConstant     = "config.yaml"
	testConfigurationContentTemplate      = "common:\n  log_level: %s\n  log_format: structured\ntools:\n  blocks:\n    config_sync_dir: %s\n    dry_run: true\n  server:\n    address: 127.0.0.1:9090\n    read_timeout: 3s\n"
	testActiveThemeConstant               = "bartik"
	testPlanLineTemplate                  = "migrate blocks: %s -> solo (region footer_menu)\n"
	testMigrationCompletedLogConstant     = "Block migration completed"
	testUnsupportedLogLevelConstant       = "verbose"
	testLoggerCreationErrorFragment       = "unable to create logger"
	testExpectedServerAddressConstant     = "127.0.0.1:9090"
	testExpectedServerReadTimeoutConstant = 3 * time.Second
)

func newTestApplication(testInstance *testing.T, logOutput *bytes.Buffer) (*Application, *bytes.Buffer) {
	testInstance.Helper()

	application := NewApplication()
	application.loggerFactory = utils.NewLoggerFactoryWithWriter(logOutput)

	commandOutput := &bytes.Buffer{}
	application.rootCommand.SetOut(commandOutput)
	application.rootCommand.SetErr(commandOutput)
	return application, commandOutput
}

func writeConfigSyncDirectory(testInstance *testing.T, activeTheme string) string {
	testInstance.Helper()

	configSyncDirectory := testInstance.TempDir()
	themeFilePath := filepath.Join(configSyncDirectory, testSystemThemeFileNameConstant)
	require.NoError(testInstance, os.WriteFile(themeFilePath, []byte(fmt.Sprintf(testSystemThemeContentTemplate, activeTheme)), 0o600))
	return configSyncDirectory
}

func writeConfigurationFile(testInstance *testing.T, logLevel string, configSyncDirectory string) string {
	testInstance.Helper()

	configurationPath := filepath.Join(testInstance.TempDir(), testConfigurationFileNameConstant)
	configurationContent := fmt.Sprintf(testConfigurationContentTemplate, logLevel, configSyncDirectory)
	require.NoError(testInstance, os.WriteFile(configurationPath, []byte(configurationContent), 0o600))
	return configurationPath
}

func TestApplicationDescribeCommand(testInstance *testing.T) {
	application, commandOutput := newTestApplication(testInstance, &bytes.Buffer{})
	application.rootCommand.SetArgs([]string{"describe"})

	require.NoError(testInstance, application.Execute())
	require.Equal(testInstance, blocks.ActionLabel+"\n"+blocks.ActionDescription+"\n", commandOutput.String())
}

func TestApplicationMigrateBlocksDryRun(testInstance *testing.T) {
	testCases := []struct {
		name        string
		activeTheme string
	}{
		{name: "default_theme", activeTheme: testActiveThemeConstant},
		{name: "already_solo", activeTheme: "solo"},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf("%d_%s", testCaseIndex, testCase.name), func(subtest *testing.T) {
			logOutput := &bytes.Buffer{}
			application, commandOutput := newTestApplication(subtest, logOutput)
			configSyncDirectory := writeConfigSyncDirectory(subtest, testCase.activeTheme)
			configurationPath := writeConfigurationFile(subtest, string(utils.LogLevelInfo), configSyncDirectory)

			application.rootCommand.SetArgs([]string{"--config", configurationPath, "migrate-blocks"})

			require.NoError(subtest, application.Execute())
			require.Equal(subtest, fmt.Sprintf(testPlanLineTemplate, testCase.activeTheme), commandOutput.String())
			require.Contains(subtest, logOutput.String(), testMigrationCompletedLogConstant)
		})
	}
}

func TestApplicationFlagsOverrideConfiguration(testInstance *testing.T) {
	logOutput := &bytes.Buffer{}
	application, commandOutput := newTestApplication(testInstance, logOutput)
	configurationPath := writeConfigurationFile(testInstance, string(utils.LogLevelInfo), writeConfigSyncDirectory(testInstance, "olivero"))
	overrideDirectory := writeConfigSyncDirectory(testInstance, testActiveThemeConstant)

	application.rootCommand.SetArgs([]string{
		"--config", configurationPath,
		"--log-level", string(utils.LogLevelError),
		"migrate-blocks",
		"--config-sync-dir", overrideDirectory,
	})

	require.NoError(testInstance, application.Execute())
	require.Equal(testInstance, fmt.Sprintf(testPlanLineTemplate, testActiveThemeConstant), commandOutput.String())
	require.Equal(testInstance, string(utils.LogLevelError), application.configuration.Common.LogLevel)
	require.NotContains(testInstance, logOutput.String(), testMigrationCompletedLogConstant)
}

func TestApplicationLoadsServerConfiguration(testInstance *testing.T) {
	application, _ := newTestApplication(testInstance, &bytes.Buffer{})
	configurationPath := writeConfigurationFile(testInstance, string(utils.LogLevelInfo), testInstance.TempDir())

	application.rootCommand.SetArgs([]string{"--config", configurationPath, "describe"})

	require.NoError(testInstance, application.Execute())
	require.Equal(testInstance, configurationPath, application.configurationMetadata.ConfigFileUsed)
	require.Equal(testInstance, testExpectedServerAddressConstant, application.configuration.Tools.Server.Address)
	require.Equal(testInstance, testExpectedServerReadTimeoutConstant, application.configuration.Tools.Server.ReadTimeout)
	require.Equal(testInstance, blocks.DefaultHelperFunction, application.configuration.Tools.Blocks.HelperFunction)
}

func TestApplicationRejectsUnsupportedLogLevel(testInstance *testing.T) {
	application, _ := newTestApplication(testInstance, &bytes.Buffer{})
	application.rootCommand.SetArgs([]string{"--log-level", testUnsupportedLogLevelConstant, "describe"})

	executionError := application.Execute()
	require.Error(testInstance, executionError)
	require.Contains(testInstance, executionError.Error(), testLoggerCreationErrorFragment)
}

func TestEmbeddedDefaultConfiguration(testInstance *testing.T) {
	configurationData, configurationType := EmbeddedDefaultConfiguration()
	require.Equal(testInstance, configurationTypeConstant, configurationType)
	require.Contains(testInstance, string(configurationData), blocks.DefaultHelperFunction)
}
