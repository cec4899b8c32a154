package screens

import (
	"strings"

	"github.com/merkaba-entertainment/m1a-assistant/internal/assistant/model"
)

// Resolve scans text against the resolution table and returns the screen of
// the first matching keyword. Matching is substring containment on the
// lower-cased input, not tokenized.
func Resolve(text string) (model.ScreenID, bool) {
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" {
		return "", false
	}
	for _, e := range resolutionTable {
		if strings.Contains(lower, e.keyword) {
			return e.screen, true
		}
	}
	return "", false
}

// DisplayName returns the human label for a screen, falling back to the raw
// identifier for screens the table does not narrate.
func DisplayName(screen model.ScreenID) string {
	if name, ok := displayNames[screen]; ok {
		return name
	}
	return screen.String()
}

// Suggestions returns the canned follow-up prompts for a screen.
func Suggestions(screen model.ScreenID) []string {
	if s, ok := contextualSuggestions[screen]; ok {
		return s
	}
	return defaultSuggestions
}
