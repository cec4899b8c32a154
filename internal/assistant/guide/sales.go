package guide

import "github.com/merkaba-entertainment/m1a-assistant/internal/assistant/model"

// SalesGuidance bundles selling tips and next steps for a sales context.
type SalesGuidance struct {
	Title     string
	Tips      []string
	NextSteps []string
}

var salesGuidance = map[model.ScreenID]SalesGuidance{
	model.ScreenEventBooking: {
		Title: "Event Booking Sales Tips",
		Tips: []string{
			"Price your tickets competitively - research similar events in your area",
			"Offer early bird discounts to drive early sales",
			"Create multiple ticket tiers (VIP, General, Student) to maximize revenue",
			"Add bar packages to increase revenue per guest",
			"Promote on social media at least 2 weeks before the event",
		},
		NextSteps: []string{
			"Complete event details",
			"Set up ticket tiers",
			"Add bar package (optional)",
			"Review and publish",
		},
	},
	model.ScreenBarMenu: {
		Title: "Bar Sales Optimization",
		Tips: []string{
			"Highlight premium items - they have higher profit margins",
			"Create bundle deals to increase average order value",
			"Suggest popular items to first-time customers",
			"Offer happy hour specials during slow periods",
		},
		NextSteps: []string{
			"Browse menu items",
			"Add items to cart",
			"Complete checkout",
		},
	},
}

var generalSalesGuidance = SalesGuidance{
	Title: "General Sales Tips",
	Tips: []string{
		"Build relationships with customers - personalized service drives repeat business",
		"Use data analytics to understand customer preferences",
		"Offer loyalty programs to encourage repeat purchases",
		"Respond quickly to inquiries - speed builds trust",
	},
}

// SalesGuidanceFor returns the selling guidance for a screen, or the general
// guidance when the screen has none.
func SalesGuidanceFor(screen model.ScreenID) SalesGuidance {
	if g, ok := salesGuidance[screen]; ok {
		return g
	}
	return generalSalesGuidance
}
