package themes

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

const (
	// SystemThemeConfigurationName is the configuration object holding theme selection.
	SystemThemeConfigurationName = "system.theme"
	// DefaultThemeConfigurationKey is the key of the active front-end theme.
	DefaultThemeConfigurationKey = "default"

	emptyThemeMessageConstant           = "active theme is not configured"
	unsupportedRegistryTemplateConstant = "unsupported theme registry %q"
	registryKindConfigSyncConstant      = "config-sync"
	registryKindDrushConstant           = "drush"
)

// ThemeName identifies a presentation theme.
type ThemeName string

// String returns the theme machine name.
func (themeName ThemeName) String() string {
	return string(themeName)
}

// ThemeRegistry reports the currently active theme.
type ThemeRegistry interface {
	ActiveTheme(executionContext context.Context) (ThemeName, error)
}

// RegistryKind selects a ThemeRegistry implementation.
type RegistryKind string

// Supported registry kinds.
const (
	RegistryKindConfigSync RegistryKind = registryKindConfigSyncConstant
	RegistryKindDrush      RegistryKind = registryKindDrushConstant
)

// ErrActiveThemeMissing indicates the registry holds no active theme value.
var ErrActiveThemeMissing = errors.New(emptyThemeMessageConstant)

// ParseRegistryKind normalizes a configured registry name.
func ParseRegistryKind(rawValue string) (RegistryKind, error) {
	switch RegistryKind(strings.ToLower(strings.TrimSpace(rawValue))) {
	case RegistryKindConfigSync:
		return RegistryKindConfigSync, nil
	case RegistryKindDrush:
		return RegistryKindDrush, nil
	default:
		return "", fmt.Errorf(unsupportedRegistryTemplateConstant, rawValue)
	}
}

func normalizeThemeName(rawValue string) (ThemeName, error) {
	trimmedValue := strings.TrimSpace(rawValue)
	if len(trimmedValue) == 0 {
		return "", ErrActiveThemeMissing
	}
	return ThemeName(trimmedValue), nil
}
