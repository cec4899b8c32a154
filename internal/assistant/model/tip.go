package model

// PersonaID identifies the user persona driving tip catalogs and prompts.
type PersonaID string

const (
	PersonaGuest        PersonaID = "guest"
	PersonaArtist       PersonaID = "artist"
	PersonaVendor       PersonaID = "vendor"
	PersonaFan          PersonaID = "fan"
	PersonaProfessional PersonaID = "professional"
	PersonaCreator      PersonaID = "creator"
)

// UserBehavior captures the in-app behavior signals that tip conditions and
// the remote generation context consume.
type UserBehavior struct {
	HasItemsInCart bool `json:"has_items_in_cart"`
}

// TipPriority orders tips within a screen's active list.
type TipPriority string

const (
	TipPriorityHigh   TipPriority = "high"
	TipPriorityMedium TipPriority = "medium"
	TipPriorityLow    TipPriority = "low"
)

// Tip is a proactive, screen-contextual hint from the static catalog.
// Catalog entries are read-only at runtime.
type Tip struct {
	ID       string
	Screen   ScreenID
	Persona  PersonaID // empty for the default catalog entry set
	Priority TipPriority
	Title    string
	Message  string
	Action   *Action
	// Condition gates the tip on current behavior; nil means always eligible.
	Condition func(UserBehavior) bool
}
