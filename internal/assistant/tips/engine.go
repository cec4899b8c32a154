package tips

import (
	"context"
	"sync"
	"time"

	"github.com/merkaba-entertainment/m1a-assistant/internal/assistant/model"
	logx "github.com/merkaba-entertainment/m1a-assistant/pkg/logger"
)

// ActiveTips filters catalog tips through the suppression state. Order is
// preserved.
func ActiveTips(tips []model.Tip, supp SuppressionState) []model.Tip {
	if !supp.TipsEnabled || supp.TipsUserDisabled {
		return nil
	}
	active := make([]model.Tip, 0, len(tips))
	for _, tip := range tips {
		if supp.ShownTipIDs[tip.ID] {
			continue
		}
		active = append(active, tip)
	}
	return active
}

// SelectActive picks the tip to surface: the first high-priority tip, else
// the first remaining tip in catalog order, nil when nothing is eligible.
func SelectActive(tips []model.Tip, supp SuppressionState) *model.Tip {
	active := ActiveTips(tips, supp)
	if len(active) == 0 {
		return nil
	}
	return &active[preferredIndex(active)]
}

// preferredIndex returns the index of the first high-priority tip, or 0.
func preferredIndex(active []model.Tip) int {
	for i := range active {
		if active[i].Priority == model.TipPriorityHigh {
			return i
		}
	}
	return 0
}

// Engine tracks the active tip list for the current screen and drives the
// rotation and visibility timers. Callbacks fire outside the engine lock.
type Engine struct {
	store *SuppressionStore
	cfg   model.TipsConfig

	// onTip receives the new current tip (nil to clear); onShow asks the
	// session to become visible.
	onTip  func(*model.Tip)
	onShow func()

	mu          sync.Mutex
	active      []model.Tip
	currentIdx  int
	rotateTimer *time.Timer
	showTimer   *time.Timer
	stopped     bool
}

func NewEngine(store *SuppressionStore, cfg model.TipsConfig, onTip func(*model.Tip), onShow func()) *Engine {
	return &Engine{
		store:  store,
		cfg:    cfg,
		onTip:  onTip,
		onShow: onShow,
	}
}

// ScreenChanged re-evaluates the tip list for the new screen. Pending timers
// from the previous screen are cancelled before anything else happens.
func (e *Engine) ScreenChanged(ctx context.Context, screen model.ScreenID, persona model.PersonaID, behavior model.UserBehavior) {
	supp := e.store.Snapshot(ctx)
	active := ActiveTips(TipsFor(screen, persona, behavior), supp)

	e.mu.Lock()
	if e.stopped {
		e.mu.Unlock()
		return
	}
	e.cancelTimersLocked()
	e.active = active
	e.currentIdx = 0

	var current *model.Tip
	if len(active) > 0 {
		e.currentIdx = preferredIndex(active)
		tip := active[e.currentIdx]
		current = &tip
	}
	if len(active) > 1 {
		e.rotateTimer = time.AfterFunc(e.cfg.RotateInterval, e.rotate)
	}
	if len(active) > 0 {
		e.showTimer = time.AfterFunc(e.cfg.ShowDelay, e.show)
	}
	e.mu.Unlock()

	logx.Debug().Str("screen", screen.String()).Int("active_tips", len(active)).Msg("tips re-evaluated")
	e.onTip(current)
}

// rotate advances the current tip cyclically and re-arms the timer.
func (e *Engine) rotate() {
	e.mu.Lock()
	if e.stopped || len(e.active) == 0 {
		e.mu.Unlock()
		return
	}
	e.currentIdx = (e.currentIdx + 1) % len(e.active)
	next := e.active[e.currentIdx]
	if e.rotateTimer != nil {
		e.rotateTimer.Reset(e.cfg.RotateInterval)
	}
	e.mu.Unlock()

	e.onTip(&next)
}

func (e *Engine) show() {
	e.mu.Lock()
	stopped := e.stopped
	e.mu.Unlock()
	if !stopped {
		e.onShow()
	}
}

// MarkShown suppresses the tip permanently and removes it from the active
// rotation list.
func (e *Engine) MarkShown(ctx context.Context, tipID string) {
	if err := e.store.MarkShown(ctx, tipID); err != nil {
		logx.Error().Err(err).Str("tip_id", tipID).Msg("failed to mark tip shown")
	}

	e.mu.Lock()
	remaining := e.active[:0:0]
	for _, tip := range e.active {
		if tip.ID != tipID {
			remaining = append(remaining, tip)
		}
	}
	e.active = remaining
	if e.currentIdx >= len(e.active) {
		e.currentIdx = 0
	}
	if len(e.active) <= 1 && e.rotateTimer != nil {
		e.rotateTimer.Stop()
		e.rotateTimer = nil
	}
	e.mu.Unlock()
}

// DisableAll persists the user opt-out and clears the active list.
func (e *Engine) DisableAll(ctx context.Context) {
	if err := e.store.DisableAll(ctx); err != nil {
		logx.Error().Err(err).Msg("failed to disable tips")
	}

	e.mu.Lock()
	e.cancelTimersLocked()
	e.active = nil
	e.currentIdx = 0
	e.mu.Unlock()
}

// Stop cancels all timers; the engine fires no callbacks afterwards.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopped = true
	e.cancelTimersLocked()
}

func (e *Engine) cancelTimersLocked() {
	if e.rotateTimer != nil {
		e.rotateTimer.Stop()
		e.rotateTimer = nil
	}
	if e.showTimer != nil {
		e.showTimer.Stop()
		e.showTimer = nil
	}
}
