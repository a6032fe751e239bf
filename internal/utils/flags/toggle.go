package flags

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

const (
	toggleTypeName            = "toggle"
	toggleTrueLiteral         = "true"
	toggleParseErrorTemplate  = "invalid toggle value %q"
	toggleEnabledPlaceholder  = "<YES|no>"
	toggleDisabledPlaceholder = "<yes|NO>"
	toggleUsageTemplate       = "%s %s"
)

var toggleLiterals = map[string]bool{
	"true":  true,
	"yes":   true,
	"on":    true,
	"y":     true,
	"1":     true,
	"t":     true,
	"false": false,
	"no":    false,
	"off":   false,
	"n":     false,
	"0":     false,
	"f":     false,
}

type toggleValue struct {
	target *bool
}

// AddToggleFlag registers a boolean flag that also accepts yes/no and on/off values.
// A bare flag enables the toggle.
func AddToggleFlag(flagSet *pflag.FlagSet, target *bool, name string, defaultValue bool, usage string) {
	if flagSet == nil || target == nil || len(name) == 0 {
		return
	}

	*target = defaultValue
	flagSet.Var(&toggleValue{target: target}, name, toggleUsage(usage, defaultValue))
	if registeredFlag := flagSet.Lookup(name); registeredFlag != nil {
		registeredFlag.NoOptDefVal = toggleTrueLiteral
	}
}

// ParseToggle interprets a toggle literal.
func ParseToggle(rawValue string) (bool, error) {
	parsedValue, known := toggleLiterals[strings.ToLower(strings.TrimSpace(rawValue))]
	if !known {
		return false, fmt.Errorf(toggleParseErrorTemplate, rawValue)
	}
	return parsedValue, nil
}

func toggleUsage(description string, defaultValue bool) string {
	placeholder := toggleDisabledPlaceholder
	if defaultValue {
		placeholder = toggleEnabledPlaceholder
	}
	return fmt.Sprintf(toggleUsageTemplate, strings.TrimSpace(description), placeholder)
}

func (value *toggleValue) String() string {
	if value == nil || value.target == nil {
		return strconv.FormatBool(false)
	}
	return strconv.FormatBool(*value.target)
}

func (value *toggleValue) Set(rawValue string) error {
	parsedValue, parseError := ParseToggle(rawValue)
	if parseError != nil {
		return parseError
	}
	*value.target = parsedValue
	return nil
}

func (value *toggleValue) Type() string {
	return toggleTypeName
}
