package blocks

import (
	"context"
	"fmt"
	"io"
)

const planLineTemplateConstant = "migrate blocks: %s -> %s (region %s)\n"

// PlanMigrationExecutor reports requests without contacting the site.
type PlanMigrationExecutor struct {
	writer io.Writer
}

// NewPlanMigrationExecutor writes one line per request to writer.
func NewPlanMigrationExecutor(writer io.Writer) *PlanMigrationExecutor {
	if writer == nil {
		writer = io.Discard
	}
	return &PlanMigrationExecutor{writer: writer}
}

// MigrateBlocks prints the request.
func (planExecutor *PlanMigrationExecutor) MigrateBlocks(_ context.Context, request MigrationRequest) error {
	_, writeError := fmt.Fprintf(planExecutor.writer, planLineTemplateConstant, request.SourceTheme, request.TargetTheme, request.Region)
	return writeError
}
