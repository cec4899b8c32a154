// Package screens owns the keyword-to-screen resolution table shared by
// intent classification, context extraction, and fallback generation.
package screens

import "github.com/merkaba-entertainment/m1a-assistant/internal/assistant/model"

type entry struct {
	keyword string
	screen  model.ScreenID
}

// resolutionTable maps navigation keywords to screens. Lookup is substring
// containment and the first matching entry wins, so when a query contains
// keywords for several screens the earlier entry decides. Reordering this
// table changes resolution for such queries; keep synonyms for a screen
// grouped together.
var resolutionTable = []entry{
	{"home", model.ScreenHome},
	{"event", model.ScreenEventBooking},
	{"booking", model.ScreenEventBooking},
	{"book event", model.ScreenEventBooking},
	{"create event", model.ScreenEventBooking},
	{"schedule", model.ScreenEventBooking},
	{"bar", model.ScreenBarMenu},
	{"menu", model.ScreenBarMenu},
	{"drinks", model.ScreenBarMenu},
	{"order", model.ScreenBarMenu},
	{"wallet", model.ScreenWallet},
	{"money", model.ScreenWallet},
	{"funds", model.ScreenWallet},
	{"explore", model.ScreenExplore},
	{"services", model.ScreenExplore},
	{"browse", model.ScreenExplore},
	{"dashboard", model.ScreenDashboard},
	{"m1a", model.ScreenDashboard},
	{"autoposter", model.ScreenAutoPoster},
	{"profile", model.ScreenProfile},
	{"settings", model.ScreenSettings},
	{"help", model.ScreenHelp},
	{"messages", model.ScreenMessages},
	{"chat", model.ScreenMessages},
}

var displayNames = map[model.ScreenID]string{
	model.ScreenHome:           "Home",
	model.ScreenEventBooking:   "Event Booking",
	model.ScreenBarMenu:        "Bar Menu",
	model.ScreenWallet:         "Wallet",
	model.ScreenExplore:        "Explore Services",
	model.ScreenDashboard:      "M1A Dashboard",
	model.ScreenAutoPoster:     "Auto Poster",
	model.ScreenProfile:        "Profile",
	model.ScreenSettings:       "Settings",
	model.ScreenHelp:           "Help Center",
	model.ScreenMessages:       "Messages",
	model.ScreenServiceBooking: "Service Booking",
}

var contextualSuggestions = map[model.ScreenID][]string{
	model.ScreenEventBooking: {
		"How do I set pricing?",
		"What information do I need?",
		"Show me pricing tips",
	},
	model.ScreenBarMenu: {
		"What are popular items?",
		"How do I checkout?",
		"Do you have packages?",
	},
	model.ScreenExplore: {
		"How do I book a service?",
		"What services are available?",
		"Show me popular services",
	},
	model.ScreenWallet: {
		"How do I add funds?",
		"View transaction history",
		"How do I send money?",
	},
}

var defaultSuggestions = []string{
	"How can I help?",
	"Show me features",
	"Navigation help",
}
