package cache

import "github.com/merkaba-entertainment/m1a-assistant/internal/assistant/model"

type preloadedEntry struct {
	pattern  string
	response model.Response
}

// preloadedResponses maps normalized query substrings to canned responses
// for common questions, checked before any other tier. First match in table
// order wins.
var preloadedResponses = []preloadedEntry{
	// Event-related
	{
		pattern: "how do i create an event",
		response: model.Response{
			Kind: "event",
			Message: "Creating an event is easy! Here's how:\n\n1. Go to Event Booking from the home screen\n2. Choose your event type (concert, party, corporate, etc.)\n3. Set the date, time, and expected guest count\n4. Configure pricing tiers (I recommend multiple tiers for better sales)\n5. Add a bar package to increase revenue per guest\n6. Review and submit\n\n" +
				"Pro tip: Weekend events typically sell 3x more tickets, and early bird pricing can increase sales by 40%!",
			Action:      model.NavigateTo(model.ScreenEventBooking),
			Suggestions: []string{"Take me to Event Booking", "What pricing should I use?", "Tell me about bar packages"},
		},
	},
	{
		pattern: "i want to create an event",
		response: model.Response{
			Kind:        "event",
			Message:     "Great! I'll help you create an event. Let me take you to Event Booking where you can set everything up. You'll need to choose an event type, set the date and time, configure pricing, and optionally add a bar package.",
			Action:      model.NavigateTo(model.ScreenEventBooking),
			Suggestions: []string{"What information do I need?", "Pricing tips", "How do bar packages work?"},
		},
	},
	{
		pattern: "i need to schedule an event",
		response: model.Response{
			Kind:        "event",
			Message:     "Perfect! I can help you schedule an event. Weekend events typically perform 3x better, so consider Fridays or Saturdays. Let me take you to Event Booking to get started!",
			Action:      model.NavigateTo(model.ScreenEventBooking),
			Suggestions: []string{"What dates work best?", "How do I set pricing?", "Tell me about packages"},
		},
	},
	{
		pattern: "how to create an event",
		response: model.Response{
			Kind: "event",
			Message: "Creating an event is easy! Here's how:\n\n1. Go to Event Booking from the home screen\n2. Choose your event type\n3. Set the date, time, and expected guest count\n4. Configure pricing tiers\n5. Add a bar package to increase revenue per guest\n6. Review and submit\n\n" +
				"Pro tip: Weekend events typically sell 3x more tickets!",
			Action:      model.NavigateTo(model.ScreenEventBooking),
			Suggestions: []string{"Take me to Event Booking", "What pricing should I use?", "Tell me about bar packages"},
		},
	},
	{
		pattern: "create event",
		response: model.Response{
			Kind:        "event",
			Message:     "I'll take you to Event Booking right away! From there you can create your event, set pricing, and add bar packages.",
			Action:      model.NavigateTo(model.ScreenEventBooking),
			Suggestions: []string{"What information do I need?", "Pricing tips", "How do bar packages work?"},
		},
	},

	// Bar/Menu-related
	{
		pattern: "show me the menu",
		response: model.Response{
			Kind:        "bar",
			Message:     "I'll take you to our bar menu! You can browse drinks, cocktails, spirits, beer, and mixers. Add items to your cart and checkout securely.",
			Action:      model.NavigateTo(model.ScreenBarMenu),
			Suggestions: []string{"What are popular items?", "Do you have specials?", "How do I order?"},
		},
	},
	{
		pattern: "bar menu",
		response: model.Response{
			Kind:        "bar",
			Message:     "Our bar menu features premium cocktails, wine, beer, spirits, and food items. Browse our selection, add items to your cart, and checkout securely. Perfect for ordering drinks during events or adding bar packages to your bookings.",
			Action:      model.NavigateTo(model.ScreenBarMenu),
			Suggestions: []string{"Show me cocktails", "What beers do you have?", "Tell me about specials"},
		},
	},
	{
		pattern: "what drinks do you have",
		response: model.Response{
			Kind:        "bar",
			Message:     "We have a great selection! Premium cocktails like Margaritas and Old Fashioneds, wine, craft beers, spirits, and mixers. Check out the Bar Menu to see everything!",
			Action:      model.NavigateTo(model.ScreenBarMenu),
			Suggestions: []string{"Show me the menu", "What are your specials?", "Recommend a drink"},
		},
	},

	// Wallet/Payment-related
	{
		pattern: "how do i add funds",
		response: model.Response{
			Kind:        "wallet",
			Message:     "Adding funds to your wallet is simple:\n\n1. Go to Wallet from the home screen\n2. Tap \"Add Funds\"\n3. Enter the amount you want to add\n4. Select your payment method\n5. Confirm the transaction\n\nYour funds will be available immediately for purchases!",
			Action:      model.NavigateTo(model.ScreenWallet),
			Suggestions: []string{"Take me to Wallet", "How do I send money?", "View my balance"},
		},
	},
	{
		pattern: "wallet",
		response: model.Response{
			Kind:        "wallet",
			Message:     "Your Wallet manages all payments and transactions. You can add funds, send money to other users, view transaction history, and track your balance. All payments are processed securely through Stripe.",
			Action:      model.NavigateTo(model.ScreenWallet),
			Suggestions: []string{"Add funds", "View transactions", "How do I send money?"},
		},
	},

	// Service-related
	{
		pattern: "how do i book a service",
		response: model.Response{
			Kind:        "service",
			Message:     "Booking a service is easy:\n\n1. Go to Explore Services to browse vendors and professionals\n2. Select a service provider (photographers, caterers, DJs, etc.)\n3. Read reviews and check pricing\n4. Tap \"Book Now\" to start the booking process\n5. Fill in your event details and preferences\n6. Confirm your booking\n\nYou'll receive a confirmation and the provider will contact you!",
			Action:      model.NavigateTo(model.ScreenServiceBooking),
			Suggestions: []string{"Show me services", "What vendors are available?", "How do reviews work?"},
		},
	},
	{
		pattern: "explore services",
		response: model.Response{
			Kind:        "service",
			Message:     "Explore Services lets you discover vendors, service providers, and professionals. Browse by category, read reviews, and book services for your events. Find photographers, caterers, DJs, and more.",
			Action:      model.NavigateTo(model.ScreenExplore),
			Suggestions: []string{"Show me photographers", "What caterers do you have?", "How do I book?"},
		},
	},

	// General help
	{
		pattern: "what can you help me with",
		response: model.Response{
			Kind:        "help",
			Message:     "I'm M1A, your AI booking agent and sales guide! I can help you with:\n\n- Creating and managing events\n- Optimizing sales and pricing\n- Navigating the app\n- Completing purchases\n- Finding features and services\n- Answering questions\n\nJust tell me what you need, and I'll take you there or guide you through it!",
			Suggestions: []string{"How do I create an event?", "Show me the menu", "What are sales tips?"},
		},
	},
	{
		pattern: "help",
		response: model.Response{
			Kind:        "help",
			Message:     "I'm here to help! I can assist with:\n\n- Event creation and management\n- Bar menu and ordering\n- Wallet and payments\n- Service bookings\n- Navigation throughout the app\n- Sales tips and optimization\n\nWhat would you like help with?",
			Suggestions: []string{"How do I create an event?", "Show me the menu", "How do I add funds?"},
		},
	},

	// Guest-specific
	{
		pattern: "recommend a drink",
		response: model.Response{
			Kind:        "drink-recommendation",
			Message:     "I'd love to recommend something! Here are some great options:\n\n- Merkaba Mule - Our signature cocktail with premium vodka, ginger beer, and lime ($14)\n- Cosmic Old Fashioned - Bourbon, bitters, and orange ($16)\n- Stellar Mojito - White rum, mint, lime, and soda ($13)\n\nWhat type of drink do you prefer? Cocktails, wine, or beer?",
			Action:      model.NavigateTo(model.ScreenBarMenu),
			Suggestions: []string{"Show me cocktails", "What wines do you have?", "I like beer"},
		},
	},
	{
		pattern: "what are your specials",
		response: model.Response{
			Kind:        "bar",
			Message:     "We have great specials today!\n\n- Happy Hour: 20% off all cocktails (5PM - 7PM)\n- Wine Wednesday: Half-price wine by the glass (All Day)\n- Weekend Special: Buy 2 get 1 free on select beers (Fri-Sun)\n\nCheck out the M1A Dashboard to see all current specials and deals!",
			Action:      model.NavigateTo(model.ScreenDashboard),
			Suggestions: []string{"Show me the menu", "What's on happy hour?", "Tell me about deals"},
		},
	},
	{
		pattern: "about merkaba",
		response: model.Response{
			Kind:        "venue-info",
			Message:     "Merkaba is a premier event venue and entertainment space dedicated to creating unforgettable experiences. We host concerts, parties, corporate events, and special occasions.\n\nOur services include:\n- Event Hosting & Management\n- Premium Bar & Catering\n- Live Entertainment\n- Private Event Spaces\n- Corporate Functions\n- Wedding Celebrations\n\nOur team is here to make your experience exceptional!",
			Suggestions: []string{"What events do you host?", "Tell me about your bar", "How do I book an event?"},
		},
	},
}
