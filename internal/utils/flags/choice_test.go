package flags_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/soloblocks/internal/utils/flags"
)

func TestChoiceUsage(testInstance *testing.T) {
	testCases := []struct {
		name          string
		description   string
		defaultChoice string
		choices       []string
		expectedUsage string
	}{
		{
			name:          "default_highlighted",
			description:   "Theme registry.",
			defaultChoice: "config-sync",
			choices:       []string{"config-sync", "drush"},
			expectedUsage: "Theme registry. `<CONFIG-SYNC|drush>`",
		},
		{
			name:          "duplicates_and_blanks_dropped",
			description:   "Log format.",
			defaultChoice: "console",
			choices:       []string{"structured", " ", "Structured", "console"},
			expectedUsage: "Log format. `<structured|CONSOLE>`",
		},
		{
			name:          "placeholder_only",
			defaultChoice: "missing",
			choices:       []string{"drush"},
			expectedUsage: "`<drush>`",
		},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf("%d_%s", testCaseIndex, testCase.name), func(subtest *testing.T) {
			require.Equal(subtest, testCase.expectedUsage, flags.ChoiceUsage(testCase.description, testCase.defaultChoice, testCase.choices...))
		})
	}
}
