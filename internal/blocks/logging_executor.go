package blocks

import (
	"context"

	"go.uber.org/zap"
)

type loggingMigrationExecutor struct {
	delegate MigrationExecutor
	logger   *zap.Logger
}

func newLoggingMigrationExecutor(delegate MigrationExecutor, logger *zap.Logger) MigrationExecutor {
	return &loggingMigrationExecutor{delegate: delegate, logger: logger}
}

func (executor *loggingMigrationExecutor) MigrateBlocks(executionContext context.Context, request MigrationRequest) error {
	requestFields := []zap.Field{
		zap.String(logFieldSourceThemeConstant, string(request.SourceTheme)),
		zap.String(logFieldTargetThemeConstant, string(request.TargetTheme)),
		zap.String(logFieldRegionConstant, string(request.Region)),
	}

	executor.logger.Info(logMessageMigrationRequestedConstant, requestFields...)

	if migrationError := executor.delegate.MigrateBlocks(executionContext, request); migrationError != nil {
		executor.logger.Warn(logMessageMigrationFailedConstant, append(requestFields, zap.Error(migrationError))...)
		return migrationError
	}

	executor.logger.Info(logMessageMigrationCompletedConstant, requestFields...)
	return nil
}
