package httpapi_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/temirov/soloblocks/internal/httpapi"
)

func TestServeCommandRequiresActionProvider(testInstance *testing.T) {
	builder := httpapi.CommandBuilder{LoggerProvider: zap.NewNop}
	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)
	command.SetArgs([]string{})

	require.ErrorIs(testInstance, command.Execute(), httpapi.ErrActionProviderMissing)
}

func TestServeCommandReportsInvalidAddress(testInstance *testing.T) {
	builder := httpapi.CommandBuilder{
		ActionProvider: func(*zap.Logger) (httpapi.MigrationAction, error) {
			return nil, nil
		},
	}
	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)
	command.SetArgs([]string{"--address", "256.0.0.1:-1"})

	require.Error(testInstance, command.Execute())
}
