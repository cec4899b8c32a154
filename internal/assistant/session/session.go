// Package session implements the assistant's state machine: visibility,
// expansion, message history, typing indicator, and navigation side effects.
// One Session is created per app run and torn down only on restart.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/merkaba-entertainment/m1a-assistant/internal/assistant/guide"
	"github.com/merkaba-entertainment/m1a-assistant/internal/assistant/model"
	"github.com/merkaba-entertainment/m1a-assistant/internal/assistant/resolver"
	"github.com/merkaba-entertainment/m1a-assistant/internal/assistant/tips"
	logx "github.com/merkaba-entertainment/m1a-assistant/pkg/logger"
)

const welcomeMessage = "Hi! I'm M1A, your AI booking agent and sales guide. How can I help you today?"

// Navigator receives the engine's navigation requests. The engine never
// navigates itself.
type Navigator interface {
	Navigate(screen model.ScreenID)
}

// Session ties the classifier, resolver, and tip engine together behind the
// UI-facing surface. SendMessage calls are expected to be serialized by the
// caller.
type Session struct {
	resolver *resolver.Resolver
	engine   *tips.Engine
	nav      Navigator
	cfg      model.SessionConfig

	mu            sync.Mutex
	visible       bool
	expanded      bool
	messages      []model.ChatMessage
	isTyping      bool
	currentScreen model.ScreenID
	currentTip    *model.Tip
	persona       model.PersonaID
	behavior      model.UserBehavior
	navTimer      *time.Timer
	disposed      bool
}

// New constructs the session in the collapsed-visible state and evaluates
// tips for the initial screen.
func New(
	ctx context.Context,
	initialScreen model.ScreenID,
	persona model.PersonaID,
	res *resolver.Resolver,
	supp *tips.SuppressionStore,
	tipsCfg model.TipsConfig,
	cfg model.SessionConfig,
	nav Navigator,
) *Session {
	s := &Session{
		resolver:      res,
		nav:           nav,
		cfg:           cfg,
		visible:       true,
		currentScreen: initialScreen,
		persona:       persona,
	}
	s.engine = tips.NewEngine(supp, tipsCfg, s.setCurrentTip, s.surface)
	s.engine.ScreenChanged(ctx, initialScreen, persona, model.UserBehavior{})
	return s
}

// Show makes the collapsed tip card visible.
func (s *Session) Show() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.visible = true
}

// Hide collapses and hides the assistant.
func (s *Session) Hide() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.visible = false
	s.expanded = false
}

// ToggleExpanded switches between the collapsed card and the full chat.
// Opening the chat for the first time seeds the welcome message.
func (s *Session) ToggleExpanded() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expanded = !s.expanded
	if s.expanded && len(s.messages) == 0 {
		s.messages = append(s.messages, model.NewChatMessage(model.RoleAssistant, welcomeMessage, true))
	}
}

// SendMessage runs one user turn through the resolver and appends both sides
// of the exchange to the history. A Navigate action on the reply schedules a
// deferred navigation so the user can read the message first.
func (s *Session) SendMessage(ctx context.Context, text string) model.Response {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return resolver.GenericFallback()
	}
	history := make([]model.ChatMessage, len(s.messages))
	copy(history, s.messages)
	s.messages = append(s.messages, model.NewChatMessage(model.RoleUser, text, false))
	s.isTyping = true
	rctx := model.ResolveContext{
		History:  history,
		Persona:  s.persona,
		Screen:   s.currentScreen,
		Behavior: s.behavior,
	}
	s.mu.Unlock()

	resp := s.safeResolve(ctx, text, rctx)

	s.mu.Lock()
	replyText := resp.Message
	if replyText == "" {
		replyText = resp.Title
	}
	s.messages = append(s.messages, model.NewChatMessage(model.RoleAssistant, replyText, false))
	s.isTyping = false
	if resp.Action != nil && resp.Action.Kind == model.ActionNavigate && !s.disposed {
		s.scheduleNavigateLocked(resp.Action.Screen)
	}
	s.mu.Unlock()

	return resp
}

// safeResolve guards against resolver contract violations; a panic becomes
// the generic fallback reply instead of reaching the caller.
func (s *Session) safeResolve(ctx context.Context, text string, rctx model.ResolveContext) (resp model.Response) {
	defer func() {
		if r := recover(); r != nil {
			logx.Error().Str("component", "session").Msgf("resolver panic recovered: %v", r)
			resp = resolver.GenericFallback()
		}
	}()
	return s.resolver.Resolve(ctx, text, rctx)
}

func (s *Session) scheduleNavigateLocked(screen model.ScreenID) {
	if s.navTimer != nil {
		s.navTimer.Stop()
	}
	s.navTimer = time.AfterFunc(s.cfg.NavigateDelay, func() {
		s.mu.Lock()
		disposed := s.disposed
		s.mu.Unlock()
		if disposed {
			return
		}
		s.nav.Navigate(screen)
		s.Hide()
	})
}

// GuidePurchaseFlow walks one step of a guided purchase flow, recording the
// step in the chat history. A navigate action on the step is deferred the
// same way as a resolved reply's.
func (s *Session) GuidePurchaseFlow(purchaseType guide.PurchaseType, step int) (guide.FlowStep, error) {
	flowStep, err := guide.PurchaseFlowStep(purchaseType, step)
	if err != nil {
		return guide.FlowStep{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.disposed {
		return flowStep, nil
	}
	s.messages = append(s.messages, model.NewChatMessage(model.RoleAssistant, flowStep.Message, false))
	if flowStep.Action != nil && flowStep.Action.Kind == model.ActionNavigate {
		s.scheduleNavigateLocked(flowStep.Action.Screen)
	}
	return flowStep, nil
}

// StartTour returns the guided tour for the current screen and announces it
// in the chat. Empty when the screen has no tour.
func (s *Session) StartTour() []guide.TourStep {
	s.mu.Lock()
	defer s.mu.Unlock()
	steps := guide.TourSteps(s.currentScreen)
	if len(steps) == 0 || s.disposed {
		return steps
	}
	s.messages = append(s.messages, model.NewChatMessage(model.RoleAssistant,
		fmt.Sprintf("Let me show you around! %s", steps[0].Description), false))
	return steps
}

// QuickActions returns the one-tap shortcuts for the current screen.
func (s *Session) QuickActions() []guide.QuickAction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return guide.QuickActionsFor(s.currentScreen)
}

// DismissTip clears the current tip. With suppressPermanently the user opts
// out of all tips; otherwise only this tip is marked shown.
func (s *Session) DismissTip(ctx context.Context, suppressPermanently bool) {
	s.mu.Lock()
	tip := s.currentTip
	s.currentTip = nil
	s.visible = false
	s.expanded = false
	s.mu.Unlock()

	if suppressPermanently {
		s.engine.DisableAll(ctx)
		return
	}
	if tip != nil {
		s.engine.MarkShown(ctx, tip.ID)
	}
}

// OnScreenChanged feeds an external screen-change event into the tip engine.
func (s *Session) OnScreenChanged(ctx context.Context, screen model.ScreenID) {
	s.mu.Lock()
	if s.disposed || screen == s.currentScreen {
		s.mu.Unlock()
		return
	}
	s.currentScreen = screen
	persona := s.persona
	behavior := s.behavior
	s.mu.Unlock()

	s.engine.ScreenChanged(ctx, screen, persona, behavior)
}

// UpdateBehavior merges new behavior signals used by tip conditions and the
// remote generation context.
func (s *Session) UpdateBehavior(behavior model.UserBehavior) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.behavior = behavior
}

// ClearHistory drops the chat history; the next expansion re-seeds the
// welcome message.
func (s *Session) ClearHistory() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = nil
}

// Dispose cancels every pending timer. The session fires no callbacks and
// accepts no messages afterwards.
func (s *Session) Dispose() {
	s.mu.Lock()
	s.disposed = true
	if s.navTimer != nil {
		s.navTimer.Stop()
		s.navTimer = nil
	}
	s.mu.Unlock()

	s.engine.Stop()
}

// ================ Accessors ================

func (s *Session) Visible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visible
}

func (s *Session) Expanded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.expanded
}

func (s *Session) IsTyping() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isTyping
}

func (s *Session) CurrentScreen() model.ScreenID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentScreen
}

func (s *Session) CurrentTip() *model.Tip {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentTip
}

// Messages returns a copy of the chat history in append order.
func (s *Session) Messages() []model.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

// ================ Tip engine callbacks ================

func (s *Session) setCurrentTip(tip *model.Tip) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.disposed {
		return
	}
	s.currentTip = tip
}

func (s *Session) surface() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.disposed {
		return
	}
	s.visible = true
}
