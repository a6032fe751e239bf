package httpapi

import (
	"strings"
	"time"
)

const (
	configurationKeySeparatorConstant       = "."
	addressConfigurationKeyConstant         = "address"
	readTimeoutConfigurationKeyConstant     = "read_timeout"
	writeTimeoutConfigurationKeyConstant    = "write_timeout"
	shutdownTimeoutConfigurationKeyConstant = "shutdown_timeout"
	defaultAddressConstant                  = "127.0.0.1:8080"
	defaultReadTimeoutConstant              = 10 * time.Second
	defaultWriteTimeoutConstant             = 5 * time.Minute
	defaultShutdownTimeoutConstant          = 10 * time.Second
)

// ServerConfiguration captures persisted configuration for the HTTP surface.
type ServerConfiguration struct {
	Address         string        `mapstructure:"address"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// DefaultServerConfiguration returns baseline server settings.
func DefaultServerConfiguration() ServerConfiguration {
	return ServerConfiguration{
		Address:         defaultAddressConstant,
		ReadTimeout:     defaultReadTimeoutConstant,
		WriteTimeout:    defaultWriteTimeoutConstant,
		ShutdownTimeout: defaultShutdownTimeoutConstant,
	}
}

// DefaultConfigurationValues exposes the defaults as Viper keys under prefix.
func DefaultConfigurationValues(prefix string) map[string]any {
	defaults := DefaultServerConfiguration()
	keyPrefix := strings.TrimSpace(prefix)
	if len(keyPrefix) > 0 {
		keyPrefix += configurationKeySeparatorConstant
	}
	return map[string]any{
		keyPrefix + addressConfigurationKeyConstant:         defaults.Address,
		keyPrefix + readTimeoutConfigurationKeyConstant:     defaults.ReadTimeout.String(),
		keyPrefix + writeTimeoutConfigurationKeyConstant:    defaults.WriteTimeout.String(),
		keyPrefix + shutdownTimeoutConfigurationKeyConstant: defaults.ShutdownTimeout.String(),
	}
}

// Sanitize restores defaults for blank or non-positive values.
func (configuration ServerConfiguration) Sanitize() ServerConfiguration {
	defaults := DefaultServerConfiguration()
	sanitized := configuration
	sanitized.Address = strings.TrimSpace(configuration.Address)
	if len(sanitized.Address) == 0 {
		sanitized.Address = defaults.Address
	}
	if sanitized.ReadTimeout <= 0 {
		sanitized.ReadTimeout = defaults.ReadTimeout
	}
	if sanitized.WriteTimeout <= 0 {
		sanitized.WriteTimeout = defaults.WriteTimeout
	}
	if sanitized.ShutdownTimeout <= 0 {
		sanitized.ShutdownTimeout = defaults.ShutdownTimeout
	}
	return sanitized
}
