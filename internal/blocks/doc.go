// Package blocks implements the "Migrate Blocks" action that moves block
// placements and their configuration from the active theme into the solo
// theme's footer_menu region.
//
// Trigger reads the active theme and hands a MigrationRequest to a
// MigrationExecutor. The executor that performs the transfer belongs to the
// site: DrushMigrationExecutor invokes the site's helper procedure through
// drush, and PlanMigrationExecutor only reports what would be requested.
package blocks
