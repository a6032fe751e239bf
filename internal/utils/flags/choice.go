package flags

import (
	"fmt"
	"strings"
)

const (
	choiceOpenLiteral   = "<"
	choiceCloseLiteral  = ">"
	choiceJoinLiteral   = "|"
	choiceUsageTemplate = "%s `%s`"
	choiceOnlyTemplate  = "`%s`"
)

// ChoiceUsage renders description followed by a placeholder listing choices, with the default in upper case.
func ChoiceUsage(description string, defaultChoice string, choices ...string) string {
	placeholder := choicePlaceholder(defaultChoice, choices)
	trimmedDescription := strings.TrimSpace(description)
	if len(trimmedDescription) == 0 {
		return fmt.Sprintf(choiceOnlyTemplate, placeholder)
	}
	return fmt.Sprintf(choiceUsageTemplate, trimmedDescription, placeholder)
}

func choicePlaceholder(defaultChoice string, choices []string) string {
	normalizedDefault := strings.ToLower(strings.TrimSpace(defaultChoice))
	rendered := make([]string, 0, len(choices))
	seen := make(map[string]struct{}, len(choices))

	for _, choice := range choices {
		trimmedChoice := strings.TrimSpace(choice)
		normalizedChoice := strings.ToLower(trimmedChoice)
		if len(normalizedChoice) == 0 {
			continue
		}
		if _, duplicate := seen[normalizedChoice]; duplicate {
			continue
		}
		seen[normalizedChoice] = struct{}{}

		if normalizedChoice == normalizedDefault {
			trimmedChoice = strings.ToUpper(trimmedChoice)
		}
		rendered = append(rendered, trimmedChoice)
	}

	return choiceOpenLiteral + strings.Join(rendered, choiceJoinLiteral) + choiceCloseLiteral
}
