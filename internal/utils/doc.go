// Package utils exposes reusable helpers consumed by multiple commands.
//
// It houses the Viper-backed ConfigurationLoader, the zap LoggerFactory and
// the CommandContextAccessor used to pass resolved settings through Cobra
// command contexts.
package utils
