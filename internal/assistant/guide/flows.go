// Package guide holds the static guidance catalogs: purchase flows, sales
// tips, drink recommendations, venue information, and screen tours. All
// entries are read-only at runtime; the resolver's fallback tier and UI
// callers consume them.
package guide

import (
	"fmt"

	"github.com/merkaba-entertainment/m1a-assistant/internal/assistant/model"
)

// PurchaseType selects one of the step-by-step purchase flows.
type PurchaseType string

const (
	PurchaseEvent   PurchaseType = "event"
	PurchaseBar     PurchaseType = "bar"
	PurchaseService PurchaseType = "service"
)

// FlowStep is one step of a guided purchase flow.
type FlowStep struct {
	Step    int
	Title   string
	Message string
	Action  *model.Action
}

var purchaseFlows = map[PurchaseType][]FlowStep{
	PurchaseEvent: {
		{1, "Step 1: Choose Event Type", "Select the type of event you want to create. Popular options include concerts, parties, workshops, and corporate events.", model.NavigateTo(model.ScreenEventBooking)},
		{2, "Step 2: Set Date & Time", "Choose your event date and time. Pro tip: Weekend events typically sell 3x more tickets!", model.FocusOn("datePicker")},
		{3, "Step 3: Set Pricing", "Set your ticket prices. Consider creating multiple tiers (VIP, General, Early Bird) to maximize revenue.", model.FocusOn("pricing")},
		{4, "Step 4: Add Bar Package (Optional)", "Add a bar package to increase revenue per guest. Events with bar packages generate 2x more revenue!", model.ScrollTo("barPackage")},
		{5, "Step 5: Review & Submit", "Review all your event details and submit. You'll receive a confirmation and agreement within 24 hours.", model.FocusOn("submit")},
	},
	PurchaseBar: {
		{1, "Step 1: Browse Menu", "Browse our selection of drinks and food. Tap on any item to see details.", model.NavigateTo(model.ScreenBarMenu)},
		{2, "Step 2: Add to Cart", "Tap the + button on any item to add it to your cart. You can adjust quantities in the cart.", model.ShowTarget("cart")},
		{3, "Step 3: Review Cart", "Review your items and quantities. Tap the cart icon to see your order total.", model.NavigateTo(model.ScreenBarMenu)},
		{4, "Step 4: Checkout", "Tap \"Checkout\" to proceed to secure payment. We use Stripe for safe, encrypted transactions.", model.FocusOn("checkout")},
		{5, "Step 5: Complete Payment", "Enter your payment details. Your order will be confirmed immediately after payment.", model.FocusOn("payment")},
	},
	PurchaseService: {
		{1, "Step 1: Explore Services", "Browse our curated selection of services. Use filters to find exactly what you need.", model.NavigateTo(model.ScreenExplore)},
		{2, "Step 2: Select Service", "Tap on a service to see details, pricing, and reviews. Read reviews to find the best fit.", model.FocusOn("serviceDetails")},
		{3, "Step 3: Book Service", "Tap \"Book Now\" to start the booking process. Fill in your event details and preferences.", model.FocusOn("bookButton")},
		{4, "Step 4: Confirm Details", "Review your booking details, date, time, and total cost. Make any adjustments needed.", model.FocusOn("confirm")},
		{5, "Step 5: Complete Booking", "Submit your booking request. You'll receive a confirmation and the provider will contact you.", model.FocusOn("submit")},
	},
}

// PurchaseFlowStep returns a single step of a purchase flow. Unknown types
// fall back to the event flow and out-of-range steps to the first step.
func PurchaseFlowStep(purchaseType PurchaseType, step int) (FlowStep, error) {
	if purchaseType == "" {
		return FlowStep{}, fmt.Errorf("invalid purchase type")
	}
	if step < 1 {
		return FlowStep{}, fmt.Errorf("invalid step number %d", step)
	}
	flow, ok := purchaseFlows[purchaseType]
	if !ok {
		flow = purchaseFlows[PurchaseEvent]
	}
	if step > len(flow) {
		return flow[0], nil
	}
	return flow[step-1], nil
}
