package resolver

import (
	"fmt"
	"strings"

	"github.com/merkaba-entertainment/m1a-assistant/internal/assistant/guide"
	"github.com/merkaba-entertainment/m1a-assistant/internal/assistant/model"
	"github.com/merkaba-entertainment/m1a-assistant/internal/assistant/screens"
)

// Fallback is the terminal, rule-based tier. It consults the conversation
// context first, then the detected preference, then the classified intent
// (purchase flows, sales guidance), then keyword families, and finally
// returns the generic capability summary. It never fails.
func Fallback(query string, it model.Intent, cc *model.ConversationContext, rctx model.ResolveContext) model.Response {
	lower := strings.ToLower(query)

	if screen := cc.LastMentionedScreen(); screen != "" {
		name := screens.DisplayName(screen)
		return fallbackResponse(model.Response{
			Kind:        "contextual",
			Title:       "Continuing our conversation",
			Message:     fmt.Sprintf("Based on our conversation, I can help you with %s. Would you like me to take you there or answer questions about it?", name),
			Action:      model.NavigateTo(screen),
			Suggestions: []string{fmt.Sprintf("Take me to %s", name), "Tell me more", "What can I do there?"},
		})
	}

	if drinkType := cc.DrinkType(); drinkType != "" {
		return fallbackResponse(model.Response{
			Kind:        "preference",
			Title:       "I remember your taste",
			Message:     fmt.Sprintf("I remember you like %s! Let me show you our %s selection.", drinkType, drinkType),
			Action:      model.NavigateTo(model.ScreenBarMenu),
			Suggestions: []string{fmt.Sprintf("Show me %s", drinkType), "What else do you have?", "Recommend something"},
		})
	}

	if rctx.Persona == model.PersonaGuest {
		if resp, ok := guestFallback(lower); ok {
			return resp
		}
	}

	switch it.Kind {
	case model.IntentPurchase:
		return purchaseGuidance(lower)
	case model.IntentBooking:
		return purchaseFlowResponse(guide.PurchaseEvent)
	case model.IntentSales:
		return salesGuidance(rctx.Screen)
	}

	if containsAny(lower, "event", "booking", "create", "schedule") {
		return fallbackResponse(model.Response{
			Kind:        "event",
			Title:       "Event Booking Help",
			Message:     "I can help you create an event! Go to Event Booking to get started. You'll need to choose an event type, set the date and time, configure pricing, and optionally add a bar package. Weekend events typically perform better!",
			Action:      model.NavigateTo(model.ScreenEventBooking),
			Suggestions: []string{"Take me to Event Booking", "What information do I need?", "Pricing tips"},
		})
	}

	if containsAny(lower, "menu", "drink", "bar", "order") {
		return fallbackResponse(model.Response{
			Kind:        "bar",
			Title:       "Bar Menu Help",
			Message:     "I'll take you to our bar menu! You can browse premium cocktails, wine, beer, spirits, and food. Add items to your cart and checkout securely.",
			Action:      model.NavigateTo(model.ScreenBarMenu),
			Suggestions: []string{"Show me the menu", "What are popular items?", "Do you have specials?"},
		})
	}

	if containsAny(lower, "wallet", "payment", "funds", "money") {
		return fallbackResponse(model.Response{
			Kind:        "wallet",
			Title:       "Wallet Help",
			Message:     "Your Wallet manages all payments and transactions. You can add funds, send money, view transaction history, and track your balance. All payments are secure through Stripe.",
			Action:      model.NavigateTo(model.ScreenWallet),
			Suggestions: []string{"Add funds", "View transactions", "How do I send money?"},
		})
	}

	if containsAny(lower, "service", "vendor", "book") {
		return fallbackResponse(model.Response{
			Kind:        "service",
			Title:       "Service Booking Help",
			Message:     "Explore Services lets you discover vendors and professionals. Browse by category, read reviews, and book services for your events. Find photographers, caterers, DJs, and more.",
			Action:      model.NavigateTo(model.ScreenExplore),
			Suggestions: []string{"Show me services", "How do I book?", "What vendors are available?"},
		})
	}

	return GenericFallback()
}

// GenericFallback is the capability-summary response of last resort, also
// used when the resolver itself misbehaves.
func GenericFallback() model.Response {
	return fallbackResponse(model.Response{
		Kind:    "general",
		Title:   "How can I help?",
		Message: "I'm here to help! I can assist with event creation, bar menu ordering, wallet management, service bookings, and navigating the app. What would you like help with?",
		Suggestions: []string{
			"How do I create an event?",
			"Show me the menu",
			"What can you help me with?",
		},
	})
}

func guestFallback(lower string) (model.Response, bool) {
	if containsAny(lower, "recommend", "suggest", "drink", "cocktail", "wine", "beer") {
		drinks := guide.DrinkRecommendations("")
		var list strings.Builder
		for i, d := range drinks {
			if i >= 3 {
				break
			}
			fmt.Fprintf(&list, "- %s - %s ($%d)\n", d.Name, d.Description, d.Price)
		}
		return fallbackResponse(model.Response{
			Kind:        "drink-recommendation",
			Title:       "Drink Recommendations",
			Message:     fmt.Sprintf("Here are some great options from our menu:\n\n%s\nWould you like to see the full menu or order something specific?", list.String()),
			Action:      model.NavigateTo(model.ScreenBarMenu),
			Suggestions: []string{"Show me the full menu", "I like cocktails", "What wines do you have?"},
		}), true
	}

	if containsAny(lower, "merkaba", "about", "what do you do") {
		info := guide.Venue()
		var services strings.Builder
		for _, s := range info.Services {
			fmt.Fprintf(&services, "- %s\n", s)
		}
		return fallbackResponse(model.Response{
			Kind:        "venue-info",
			Title:       "About Merkaba",
			Message:     fmt.Sprintf("%s\n\nOur Services:\n%s\n%s", info.About, services.String(), info.Contact),
			Suggestions: []string{"What events do you host?", "Tell me about your bar", "How do I book an event?"},
		}), true
	}

	if containsAny(lower, "assistance", "cleanup", "accident", "spill", "request") {
		return fallbackResponse(model.Response{
			Kind:        "service-request",
			Title:       "On-Site Service Request",
			Message:     "I can help you request on-site assistance! Common requests include:\n\n- Cleanup service\n- Accident assistance\n- General help\n- Special requests\n\nTap the \"Request Service\" button below to submit your request, and our team will assist you right away!",
			Action:      model.ShowTarget("service-request"),
			Suggestions: []string{"Request cleanup", "I had an accident", "Need general help"},
		}), true
	}

	return model.Response{}, false
}

// purchaseGuidance starts the purchase flow matching the query's subject:
// bar orders, service bookings, or events by default.
func purchaseGuidance(lower string) model.Response {
	switch {
	case containsAny(lower, "drink", "bar", "menu", "cart", "checkout", "order"):
		return purchaseFlowResponse(guide.PurchaseBar)
	case containsAny(lower, "service", "vendor"):
		return purchaseFlowResponse(guide.PurchaseService)
	default:
		return purchaseFlowResponse(guide.PurchaseEvent)
	}
}

func purchaseFlowResponse(purchaseType guide.PurchaseType) model.Response {
	step, err := guide.PurchaseFlowStep(purchaseType, 1)
	if err != nil {
		return GenericFallback()
	}
	return fallbackResponse(model.Response{
		Kind:        "purchase-flow",
		Title:       step.Title,
		Message:     step.Message,
		Action:      step.Action,
		Suggestions: []string{"Next step", "Start over", "I need help"},
	})
}

func salesGuidance(screen model.ScreenID) model.Response {
	g := guide.SalesGuidanceFor(screen)
	var tips strings.Builder
	for _, tip := range g.Tips {
		fmt.Fprintf(&tips, "- %s\n", tip)
	}
	suggestions := g.NextSteps
	if len(suggestions) == 0 {
		suggestions = []string{"Show me pricing tips", "How do I create an event?", "Tell me about bar packages"}
	}
	return fallbackResponse(model.Response{
		Kind:        "sales",
		Title:       g.Title,
		Message:     fmt.Sprintf("Here's how to boost your sales:\n\n%s", tips.String()),
		Suggestions: suggestions,
	})
}

func fallbackResponse(resp model.Response) model.Response {
	resp.Meta = model.ResponseMeta{Source: model.SourceFallback}
	if resp.Suggestions == nil {
		resp.Suggestions = []string{}
	}
	return resp
}

func containsAny(s string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
