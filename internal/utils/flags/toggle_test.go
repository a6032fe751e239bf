package flags_test

import (
	"fmt"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/temirov/soloblocks/internal/utils/flags"
)

const testToggleFlagNameConstant = "dry-run"

func TestAddToggleFlag(testInstance *testing.T) {
	testCases := []struct {
		name          string
		defaultValue  bool
		arguments     []string
		expectedValue bool
		expectError   bool
	}{
		{name: "default_retained", defaultValue: true, arguments: []string{}, expectedValue: true},
		{name: "bare_flag_enables", arguments: []string{"--dry-run"}, expectedValue: true},
		{name: "yes_literal", arguments: []string{"--dry-run=yes"}, expectedValue: true},
		{name: "off_literal", defaultValue: true, arguments: []string{"--dry-run=OFF"}, expectedValue: false},
		{name: "unknown_literal", arguments: []string{"--dry-run=maybe"}, expectError: true},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf("%d_%s", testCaseIndex, testCase.name), func(subtest *testing.T) {
			flagSet := pflag.NewFlagSet(testCase.name, pflag.ContinueOnError)
			var toggleTarget bool
			flags.AddToggleFlag(flagSet, &toggleTarget, testToggleFlagNameConstant, testCase.defaultValue, "Print only.")

			parseError := flagSet.Parse(testCase.arguments)
			if testCase.expectError {
				require.Error(subtest, parseError)
				return
			}
			require.NoError(subtest, parseError)
			require.Equal(subtest, testCase.expectedValue, toggleTarget)
		})
	}
}

func TestToggleUsagePlaceholder(testInstance *testing.T) {
	flagSet := pflag.NewFlagSet("usage", pflag.ContinueOnError)
	var toggleTarget bool
	flags.AddToggleFlag(flagSet, &toggleTarget, testToggleFlagNameConstant, false, "Print only.")

	registeredFlag := flagSet.Lookup(testToggleFlagNameConstant)
	require.NotNil(testInstance, registeredFlag)
	require.Equal(testInstance, "Print only. <yes|NO>", registeredFlag.Usage)
	require.Equal(testInstance, "toggle", registeredFlag.Value.Type())
}

func TestParseToggle(testInstance *testing.T) {
	parsedValue, parseError := flags.ParseToggle(" Y ")
	require.NoError(testInstance, parseError)
	require.True(testInstance, parsedValue)

	_, parseError = flags.ParseToggle("")
	require.Error(testInstance, parseError)
}
