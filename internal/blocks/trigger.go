package blocks

import (
	"context"

	"github.com/temirov/soloblocks/internal/themes"
)

const (
	// FormIdentifier names the action for host surfaces.
	FormIdentifier = "solo_move_blocks_form"
	// ActionLabel is the label of the submit control.
	ActionLabel = "Migrate Blocks"
	// ActionDescription explains the action to the operator.
	ActionDescription = "Use this form to migrate blocks from the default theme to the solo theme."

	// TargetThemeSolo is the theme that receives the migrated blocks.
	TargetThemeSolo themes.ThemeName = "solo"
	// RegionFooterMenu is the placement region passed to the executor.
	RegionFooterMenu RegionName = "footer_menu"
)

// RegionName identifies a block placement region.
type RegionName string

// MigrationRequest is built once per invocation and handed to the executor.
type MigrationRequest struct {
	SourceTheme themes.ThemeName
	TargetTheme themes.ThemeName
	Region      RegionName
}

// MigrationExecutor moves block placements and configuration between themes.
type MigrationExecutor interface {
	MigrateBlocks(executionContext context.Context, request MigrationRequest) error
}

// Trigger is the stateless "Migrate Blocks" action.
type Trigger struct {
	registry themes.ThemeRegistry
	executor MigrationExecutor
}

// NewTrigger wires the action to its collaborators.
func NewTrigger(registry themes.ThemeRegistry, executor MigrationExecutor) *Trigger {
	return &Trigger{registry: registry, executor: executor}
}

// FormIdentifier returns the constant action identifier.
func (trigger *Trigger) FormIdentifier() string {
	return FormIdentifier
}

// Label returns the constant submit label.
func (trigger *Trigger) Label() string {
	return ActionLabel
}

// Describe returns the constant action description.
func (trigger *Trigger) Describe() string {
	return ActionDescription
}

// Invoke reads the active theme and calls the executor exactly once with
// (active theme, solo, footer_menu). There is no guard against the active
// theme already being solo. Collaborator errors are returned untouched; a
// registry failure leaves the executor uncalled.
func (trigger *Trigger) Invoke(executionContext context.Context) error {
	activeTheme, registryError := trigger.registry.ActiveTheme(executionContext)
	if registryError != nil {
		return registryError
	}

	return trigger.executor.MigrateBlocks(executionContext, NewMigrationRequest(activeTheme))
}

// NewMigrationRequest builds the request the action sends for sourceTheme.
func NewMigrationRequest(sourceTheme themes.ThemeName) MigrationRequest {
	return MigrationRequest{
		SourceTheme: sourceTheme,
		TargetTheme: TargetThemeSolo,
		Region:      RegionFooterMenu,
	}
}
