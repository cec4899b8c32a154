// Package tips implements the screen-contextual tip engine: the static
// catalog, persisted suppression state, suppression-aware selection, and the
// rotation/visibility timers.
package tips

import "github.com/merkaba-entertainment/m1a-assistant/internal/assistant/model"

var defaultCatalog = map[model.ScreenID][]model.Tip{
	model.ScreenHome: {
		{
			ID:       "home-1",
			Screen:   model.ScreenHome,
			Priority: model.TipPriorityHigh,
			Title:    "Quick Start",
			Message:  "Tap \"Schedule an Event\" to create your first event and start selling tickets!",
			Action:   model.NavigateTo(model.ScreenEventBooking),
		},
		{
			ID:       "home-2",
			Screen:   model.ScreenHome,
			Priority: model.TipPriorityMedium,
			Title:    "Boost Sales",
			Message:  "Use M1A to promote your events on social media automatically!",
			Action:   model.NavigateTo(model.ScreenDashboard),
		},
		{
			ID:       "home-3",
			Screen:   model.ScreenHome,
			Priority: model.TipPriorityLow,
			Title:    "Bar Service",
			Message:  "Add bar packages to your events to increase revenue per guest!",
			Action:   model.NavigateTo(model.ScreenBarMenu),
		},
	},
	model.ScreenEventBooking: {
		{
			ID:       "booking-1",
			Screen:   model.ScreenEventBooking,
			Priority: model.TipPriorityHigh,
			Title:    "Pro Tip",
			Message:  "Weekend events typically sell 3x more tickets. Consider scheduling on Fridays or Saturdays!",
		},
		{
			ID:       "booking-2",
			Screen:   model.ScreenEventBooking,
			Priority: model.TipPriorityMedium,
			Title:    "Pricing Strategy",
			Message:  "Early bird pricing can increase ticket sales by 40%. Add a tier with 20% discount!",
		},
		{
			ID:       "booking-3",
			Screen:   model.ScreenEventBooking,
			Priority: model.TipPriorityMedium,
			Title:    "Add Bar Package",
			Message:  "Events with bar packages generate 2x more revenue. Add one to boost profits!",
			Action:   model.ScrollTo("barPackage"),
		},
	},
	model.ScreenBarMenu: {
		{
			ID:       "bar-1",
			Screen:   model.ScreenBarMenu,
			Priority: model.TipPriorityHigh,
			Title:    "Upsell Tip",
			Message:  "Premium cocktails have 60% higher profit margins. Highlight them to guests!",
		},
		{
			ID:       "bar-2",
			Screen:   model.ScreenBarMenu,
			Priority: model.TipPriorityMedium,
			Title:    "Package Deals",
			Message:  "Create bundle packages (e.g., 3 drinks + appetizer) to increase average order value!",
		},
		{
			ID:        "bar-3",
			Screen:    model.ScreenBarMenu,
			Priority:  model.TipPriorityHigh,
			Title:     "Quick Checkout",
			Message:   "Your cart is ready! Complete your order with secure Stripe payment.",
			Condition: func(b model.UserBehavior) bool { return b.HasItemsInCart },
		},
	},
	model.ScreenWallet: {
		{
			ID:       "wallet-1",
			Screen:   model.ScreenWallet,
			Priority: model.TipPriorityMedium,
			Title:    "Add Funds",
			Message:  "Add funds to your wallet for faster checkout on future purchases!",
		},
		{
			ID:       "wallet-2",
			Screen:   model.ScreenWallet,
			Priority: model.TipPriorityLow,
			Title:    "Track Spending",
			Message:  "View your transaction history to track event-related expenses and revenue.",
		},
	},
	model.ScreenExplore: {
		{
			ID:       "explore-1",
			Screen:   model.ScreenExplore,
			Priority: model.TipPriorityMedium,
			Title:    "Discover Services",
			Message:  "Browse our curated selection of services to enhance your events!",
		},
		{
			ID:       "explore-2",
			Screen:   model.ScreenExplore,
			Priority: model.TipPriorityLow,
			Title:    "Popular Items",
			Message:  "Check out our most popular services - they're customer favorites!",
		},
	},
	model.ScreenDashboard: {
		{
			ID:       "m1a-1",
			Screen:   model.ScreenDashboard,
			Priority: model.TipPriorityHigh,
			Title:    "Maximize Your Reach",
			Message:  "Connect your social media accounts to automatically promote events!",
		},
		{
			ID:       "m1a-2",
			Screen:   model.ScreenDashboard,
			Priority: model.TipPriorityMedium,
			Title:    "Analytics Insight",
			Message:  "Track your event performance and optimize based on real data!",
		},
	},
	model.ScreenProfile: {
		{
			ID:       "profile-1",
			Screen:   model.ScreenProfile,
			Priority: model.TipPriorityHigh,
			Title:    "Complete Your Profile",
			Message:  "Add a profile photo and bio to build trust with potential clients!",
			Action:   model.NavigateTo(model.ScreenProfileEdit),
		},
		{
			ID:       "profile-2",
			Screen:   model.ScreenProfile,
			Priority: model.TipPriorityMedium,
			Title:    "Social Links",
			Message:  "Connect your social media profiles to showcase your work!",
		},
	},
}

// guestHomeCatalog replaces the default Home entry set for the guest persona
// (customer-service focused).
var guestHomeCatalog = []model.Tip{
	{
		ID:       "guest-1",
		Screen:   model.ScreenHome,
		Persona:  model.PersonaGuest,
		Priority: model.TipPriorityHigh,
		Title:    "Drink Recommendations",
		Message:  "Tell me what you like, and I'll recommend the perfect drinks!",
		Action:   model.NavigateTo(model.ScreenBarMenu),
	},
	{
		ID:       "guest-2",
		Screen:   model.ScreenHome,
		Persona:  model.PersonaGuest,
		Priority: model.TipPriorityMedium,
		Title:    "About Merkaba",
		Message:  "Learn about our events, services, and what makes Merkaba special!",
	},
	{
		ID:       "guest-3",
		Screen:   model.ScreenHome,
		Persona:  model.PersonaGuest,
		Priority: model.TipPriorityHigh,
		Title:    "Need Assistance?",
		Message:  "Request on-site service for cleanup, accidents, or any help you need!",
		Action:   model.ShowTarget("service-request"),
	},
}

// TipsFor returns the catalog entries for a screen, with the persona
// override set replacing the default when present, filtered by each tip's
// behavior condition.
func TipsFor(screen model.ScreenID, persona model.PersonaID, behavior model.UserBehavior) []model.Tip {
	catalog := defaultCatalog[screen]
	if persona == model.PersonaGuest && screen == model.ScreenHome {
		catalog = guestHomeCatalog
	}

	out := make([]model.Tip, 0, len(catalog))
	for _, tip := range catalog {
		if tip.Condition != nil && !tip.Condition(behavior) {
			continue
		}
		out = append(out, tip)
	}
	return out
}
