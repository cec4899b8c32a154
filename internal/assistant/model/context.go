package model

// TaskTag marks an in-progress task detected in recent conversation.
type TaskTag string

const (
	TaskEventCreation  TaskTag = "event-creation"
	TaskServiceBooking TaskTag = "service-booking"
)

// Preference categories detected by the context extractor.
const (
	PrefDrinkType   = "drinkType"
	PrefEventTiming = "eventTiming"
)

// ConversationContext is the short-term derived memory of a conversation,
// recomputed each turn from the recent history and never persisted.
type ConversationContext struct {
	// MentionedScreens holds unique screens in first-seen order.
	MentionedScreens []ScreenID
	// Preferences maps category (PrefDrinkType, PrefEventTiming) to value;
	// last writer wins.
	Preferences map[string]string
	// OngoingTasks may contain duplicates to preserve recency weighting.
	OngoingTasks []TaskTag
}

// LastMentionedScreen returns the most recently first-seen screen, or "" when
// none were mentioned.
func (c *ConversationContext) LastMentionedScreen() ScreenID {
	if c == nil || len(c.MentionedScreens) == 0 {
		return ""
	}
	return c.MentionedScreens[len(c.MentionedScreens)-1]
}

// DrinkType returns the detected drink preference, or "" when none.
func (c *ConversationContext) DrinkType() string {
	if c == nil {
		return ""
	}
	return c.Preferences[PrefDrinkType]
}

// ResolveContext carries everything the resolver needs beyond the query.
type ResolveContext struct {
	History  []ChatMessage
	Persona  PersonaID
	Screen   ScreenID
	Behavior UserBehavior
}
