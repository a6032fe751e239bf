package utils_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/soloblocks/internal/utils"
)

func TestCommandContextAccessorRoundTrip(testInstance *testing.T) {
	accessor := utils.NewCommandContextAccessor()

	_, available := accessor.LogLevel(context.Background())
	require.False(testInstance, available)

	executionContext := accessor.WithConfigurationFilePath(context.Background(), "/etc/solo-blocks/config.yaml")
	executionContext = accessor.WithLogLevel(executionContext, string(utils.LogLevelDebug))

	configurationFilePath, pathAvailable := accessor.ConfigurationFilePath(executionContext)
	require.True(testInstance, pathAvailable)
	require.Equal(testInstance, "/etc/solo-blocks/config.yaml", configurationFilePath)

	logLevel, levelAvailable := accessor.LogLevel(executionContext)
	require.True(testInstance, levelAvailable)
	require.Equal(testInstance, string(utils.LogLevelDebug), logLevel)
}
