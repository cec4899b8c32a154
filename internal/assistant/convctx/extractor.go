// Package convctx derives short-term conversation memory from recent
// messages: screens the user mentioned, stated preferences, and in-progress
// tasks. The result personalizes the resolver's fallback tier.
package convctx

import (
	"strings"

	"github.com/merkaba-entertainment/m1a-assistant/internal/assistant/model"
	"github.com/merkaba-entertainment/m1a-assistant/internal/assistant/screens"
)

// maxScanMessages bounds the history window the extractor looks at.
const maxScanMessages = 5

var preferenceMarkers = []string{"like", "prefer", "favorite"}

var drinkTypes = []string{"cocktails", "wine", "beer"}

var progressVerbs = []string{"creating", "booking", "planning"}

// Extract scans the tail of the history and returns the derived context.
// Returns nil when the history is empty. Pure function of its input;
// recomputed every turn.
func Extract(currentQuery string, history []model.ChatMessage) *model.ConversationContext {
	if len(history) == 0 {
		return nil
	}

	recent := history
	if len(recent) > maxScanMessages {
		recent = recent[len(recent)-maxScanMessages:]
	}

	cc := &model.ConversationContext{
		Preferences: make(map[string]string),
	}

	seen := make(map[model.ScreenID]bool)
	for _, msg := range recent {
		lower := strings.ToLower(msg.Text)

		if screen, ok := screens.Resolve(lower); ok && !seen[screen] {
			seen[screen] = true
			cc.MentionedScreens = append(cc.MentionedScreens, screen)
		}

		if containsAny(lower, preferenceMarkers) {
			for _, dt := range drinkTypes {
				if strings.Contains(lower, strings.TrimSuffix(dt, "s")) {
					cc.Preferences[model.PrefDrinkType] = dt
				}
			}
			if strings.Contains(lower, "weekend") {
				cc.Preferences[model.PrefEventTiming] = "weekend"
			} else if strings.Contains(lower, "weekday") {
				cc.Preferences[model.PrefEventTiming] = "weekday"
			}
		}

		if containsAny(lower, progressVerbs) {
			// Duplicates are kept so consumers can weight by recency.
			if strings.Contains(lower, "event") {
				cc.OngoingTasks = append(cc.OngoingTasks, model.TaskEventCreation)
			}
			if strings.Contains(lower, "service") {
				cc.OngoingTasks = append(cc.OngoingTasks, model.TaskServiceBooking)
			}
		}
	}

	return cc
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
