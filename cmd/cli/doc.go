// Package cli constructs the solo-blocks command-line interface, wiring the
// Cobra command hierarchy, the Viper configuration loader with its embedded
// defaults, and zap logging around the Migrate Blocks action.
package cli
