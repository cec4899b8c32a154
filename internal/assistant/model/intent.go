package model

// IntentKind classifies the purpose of a user utterance.
type IntentKind string

const (
	IntentNavigate       IntentKind = "navigate"
	IntentPurchase       IntentKind = "purchase"
	IntentBooking        IntentKind = "booking"
	IntentQuestion       IntentKind = "question"
	IntentSales          IntentKind = "sales"
	IntentServiceInquiry IntentKind = "service_inquiry"
	IntentGeneral        IntentKind = "general"
)

// Intent is the classified purpose of a single user turn. Created per turn,
// discarded after resolution.
type Intent struct {
	Kind         IntentKind
	Confidence   float64
	TargetScreen ScreenID // empty when no screen was resolved
	RawQuery     string   // lower-cased, trimmed query the classifier saw
}

// HasTarget reports whether the classifier resolved a destination screen.
func (i Intent) HasTarget() bool {
	return i.TargetScreen != ""
}
