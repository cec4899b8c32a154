package guide

import "github.com/merkaba-entertainment/m1a-assistant/internal/assistant/model"

// TourStep is one stop of a guided screen tour.
type TourStep struct {
	Step        int
	Title       string
	Description string
	Target      string
}

var screenTours = map[model.ScreenID][]TourStep{
	model.ScreenHome: {
		{1, "Welcome to M1A!", "This is your home screen. From here you can access all features.", "home-header"},
		{2, "Schedule Events", "Tap here to create and manage your events.", "event-booking-button"},
		{3, "M1A Dashboard", "Access your AI-powered booking agent and automation tools.", "m1a-button"},
		{4, "Bar Menu", "Order drinks and food, or add bar packages to your events.", "bar-button"},
	},
	model.ScreenEventBooking: {
		{1, "Event Details", "Fill in your event information. Be specific to attract the right audience.", "event-type"},
		{2, "Date & Time", "Choose optimal dates - weekends typically perform better.", "date-picker"},
		{3, "Pricing", "Set competitive prices and create multiple tiers for maximum revenue.", "pricing-section"},
		{4, "Bar Packages", "Add bar packages to increase revenue per guest.", "bar-package"},
	},
	model.ScreenBarMenu: {
		{1, "Browse Menu", "Explore our selection of drinks and food items.", "menu-items"},
		{2, "Add to Cart", "Tap the + button to add items to your cart.", "add-button"},
		{3, "Checkout", "Review your order and complete payment securely.", "cart-button"},
	},
}

// TourSteps returns the guided tour for a screen; empty when the screen has
// no tour.
func TourSteps(screen model.ScreenID) []TourStep {
	return screenTours[screen]
}

// QuickAction is a one-tap shortcut offered alongside the chat input.
type QuickAction struct {
	Label  string
	Action *model.Action
}

var quickActions = map[model.ScreenID][]QuickAction{
	model.ScreenHome: {
		{"Create Event", model.NavigateTo(model.ScreenEventBooking)},
		{"View Dashboard", model.NavigateTo(model.ScreenDashboard)},
		{"Browse Services", model.NavigateTo(model.ScreenExplore)},
	},
	model.ScreenEventBooking: {
		{"Add Bar Package", model.ScrollTo("barPackage")},
		{"View Pricing Tips", model.ShowTarget("sales-tips")},
	},
	model.ScreenBarMenu: {
		{"View Cart", model.ShowTarget("cart")},
		{"Checkout", model.FocusOn("checkout")},
	},
}

// QuickActionsFor returns the shortcut actions for a screen; empty when the
// screen has none.
func QuickActionsFor(screen model.ScreenID) []QuickAction {
	return quickActions[screen]
}
