package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/merkaba-entertainment/m1a-assistant/internal/assistant/model"
)

func TestFallbackMentionedScreenContinuation(t *testing.T) {
	cc := &model.ConversationContext{
		MentionedScreens: []model.ScreenID{model.ScreenWallet, model.ScreenBarMenu},
	}

	resp := Fallback("ok what next", model.Intent{Kind: model.IntentGeneral}, cc, model.ResolveContext{})

	assert.Equal(t, "contextual", resp.Kind)
	assert.Contains(t, resp.Message, "Bar Menu")
	require.NotNil(t, resp.Action)
	assert.Equal(t, model.ScreenBarMenu, resp.Action.Screen)
	assert.Equal(t, model.SourceFallback, resp.Meta.Source)
}

func TestFallbackDrinkPreference(t *testing.T) {
	cc := &model.ConversationContext{
		Preferences: map[string]string{model.PrefDrinkType: "cocktails"},
	}

	resp := Fallback("surprise me", model.Intent{Kind: model.IntentGeneral}, cc, model.ResolveContext{})

	assert.Equal(t, "preference", resp.Kind)
	assert.Contains(t, resp.Message, "cocktails")
	require.NotNil(t, resp.Action)
	assert.Equal(t, model.ScreenBarMenu, resp.Action.Screen)
}

func TestFallbackMentionedScreenOutranksPreference(t *testing.T) {
	cc := &model.ConversationContext{
		MentionedScreens: []model.ScreenID{model.ScreenWallet},
		Preferences:      map[string]string{model.PrefDrinkType: "wine"},
	}

	resp := Fallback("hmm", model.Intent{Kind: model.IntentGeneral}, cc, model.ResolveContext{})
	assert.Equal(t, "contextual", resp.Kind)
}

func TestFallbackGuestDrinkRecommendation(t *testing.T) {
	rctx := model.ResolveContext{Persona: model.PersonaGuest}

	resp := Fallback("recommend something to sip", model.Intent{Kind: model.IntentGeneral}, nil, rctx)

	assert.Equal(t, "drink-recommendation", resp.Kind)
	assert.Contains(t, resp.Message, "$")
	require.NotNil(t, resp.Action)
	assert.Equal(t, model.ScreenBarMenu, resp.Action.Screen)
}

func TestFallbackGuestServiceRequest(t *testing.T) {
	rctx := model.ResolveContext{Persona: model.PersonaGuest}

	resp := Fallback("there was a spill at my table", model.Intent{Kind: model.IntentGeneral}, nil, rctx)

	assert.Equal(t, "service-request", resp.Kind)
	require.NotNil(t, resp.Action)
	assert.Equal(t, model.ActionShow, resp.Action.Kind)
	assert.Equal(t, "service-request", resp.Action.Target)
}

func TestFallbackGuestPathsSkippedForOtherPersonas(t *testing.T) {
	rctx := model.ResolveContext{Persona: model.PersonaArtist}

	// For a non-guest the "drink" keyword routes to the bar family instead.
	resp := Fallback("recommend a good drink", model.Intent{Kind: model.IntentGeneral}, nil, rctx)
	assert.Equal(t, "bar", resp.Kind)
}

func TestFallbackKeywordFamilies(t *testing.T) {
	tests := []struct {
		query  string
		kind   string
		screen model.ScreenID
	}{
		{"planning to create something", "event", model.ScreenEventBooking},
		{"where do i order", "bar", model.ScreenBarMenu},
		{"problem with a payment", "wallet", model.ScreenWallet},
		{"find me a vendor", "service", model.ScreenExplore},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			resp := Fallback(tt.query, model.Intent{Kind: model.IntentGeneral}, nil, model.ResolveContext{})
			assert.Equal(t, tt.kind, resp.Kind)
			require.NotNil(t, resp.Action)
			assert.Equal(t, tt.screen, resp.Action.Screen)
		})
	}
}

func TestFallbackPurchaseIntentStartsFlow(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		title  string
		action model.ActionKind
	}{
		{"bar purchase", "checkout my cart", "Step 1: Browse Menu", model.ActionNavigate},
		{"service purchase", "pay for a vendor service", "Step 1: Explore Services", model.ActionNavigate},
		{"default to event", "buy tickets for friday", "Step 1: Choose Event Type", model.ActionNavigate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := Fallback(tt.query, model.Intent{Kind: model.IntentPurchase}, nil, model.ResolveContext{})
			assert.Equal(t, "purchase-flow", resp.Kind)
			assert.Equal(t, tt.title, resp.Title)
			require.NotNil(t, resp.Action)
			assert.Equal(t, tt.action, resp.Action.Kind)
			assert.Equal(t, model.SourceFallback, resp.Meta.Source)
		})
	}
}

func TestFallbackBookingIntentStartsEventFlow(t *testing.T) {
	resp := Fallback("reserve a table", model.Intent{Kind: model.IntentBooking}, nil, model.ResolveContext{})

	assert.Equal(t, "purchase-flow", resp.Kind)
	assert.Equal(t, "Step 1: Choose Event Type", resp.Title)
	require.NotNil(t, resp.Action)
	assert.Equal(t, model.ScreenEventBooking, resp.Action.Screen)
}

func TestFallbackSalesIntentGivesGuidance(t *testing.T) {
	resp := Fallback("boost my revenue", model.Intent{Kind: model.IntentSales}, nil,
		model.ResolveContext{Screen: model.ScreenEventBooking})

	assert.Equal(t, "sales", resp.Kind)
	assert.Equal(t, "Event Booking Sales Tips", resp.Title)
	assert.Contains(t, resp.Message, "early bird")
	assert.NotEmpty(t, resp.Suggestions)

	// Screens without dedicated guidance get the general tips.
	resp = Fallback("boost my revenue", model.Intent{Kind: model.IntentSales}, nil,
		model.ResolveContext{Screen: model.ScreenSettings})
	assert.Equal(t, "General Sales Tips", resp.Title)
}

func TestFallbackContextOutranksIntentDispatch(t *testing.T) {
	cc := &model.ConversationContext{MentionedScreens: []model.ScreenID{model.ScreenWallet}}

	resp := Fallback("checkout my cart", model.Intent{Kind: model.IntentPurchase}, cc, model.ResolveContext{})
	assert.Equal(t, "contextual", resp.Kind)
}

func TestGenericFallback(t *testing.T) {
	resp := GenericFallback()
	assert.Equal(t, "general", resp.Kind)
	assert.NotEmpty(t, resp.Message)
	assert.NotEmpty(t, resp.Suggestions)
	assert.Nil(t, resp.Action)
	assert.Equal(t, model.SourceFallback, resp.Meta.Source)
}
