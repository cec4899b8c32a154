package tips

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/merkaba-entertainment/m1a-assistant/internal/assistant/model"
	logx "github.com/merkaba-entertainment/m1a-assistant/pkg/logger"
)

// Storage keys for the persisted suppression state.
const (
	TipsEnabledKey  = "m1a_tips_enabled"
	ShownTipsKey    = "m1a_shown_tips"
	TipsDisabledKey = "m1a_tips_disabled"
)

// SuppressionState is a point-in-time view of the persisted suppression
// model, consumed by SelectActive.
type SuppressionState struct {
	TipsEnabled      bool
	TipsUserDisabled bool
	ShownTipIDs      map[string]bool
}

// SuppressionStore persists which tips have been shown and whether the user
// disabled tips entirely. Every mutation is written through immediately;
// reads self-heal corrupted values instead of propagating them.
type SuppressionStore struct {
	store model.KeyValueStore
}

func NewSuppressionStore(store model.KeyValueStore) *SuppressionStore {
	return &SuppressionStore{store: store}
}

// TipsEnabled reports the global settings flag. Defaults to enabled when the
// key is unset or the read fails.
func (s *SuppressionStore) TipsEnabled(ctx context.Context) bool {
	v, ok, err := s.store.Get(ctx, TipsEnabledKey)
	if err != nil {
		logx.Error().Err(err).Msg("failed to read tips enabled flag")
		return true
	}
	if !ok {
		return true
	}
	return v == "true"
}

// SetTipsEnabled persists the global settings flag.
func (s *SuppressionStore) SetTipsEnabled(ctx context.Context, enabled bool) error {
	return s.store.Set(ctx, TipsEnabledKey, strconv.FormatBool(enabled))
}

// TipsUserDisabled reports whether the user opted out of all tips. Defaults
// to false when unset or on read failure.
func (s *SuppressionStore) TipsUserDisabled(ctx context.Context) bool {
	v, ok, err := s.store.Get(ctx, TipsDisabledKey)
	if err != nil {
		logx.Error().Err(err).Msg("failed to read tips disabled flag")
		return false
	}
	return ok && v == "true"
}

// DisableAll marks every tip suppressed via the user opt-out flag.
func (s *SuppressionStore) DisableAll(ctx context.Context) error {
	return s.store.Set(ctx, TipsDisabledKey, "true")
}

// ShownTips returns the ids of all tips already shown. A value that does not
// deserialize to a JSON array is treated as corrupt: the key is removed and
// an empty list returned.
func (s *SuppressionStore) ShownTips(ctx context.Context) []string {
	v, ok, err := s.store.Get(ctx, ShownTipsKey)
	if err != nil {
		logx.Error().Err(err).Msg("failed to read shown tips")
		return []string{}
	}
	if !ok || v == "" {
		return []string{}
	}

	var shown []string
	if err := json.Unmarshal([]byte(v), &shown); err != nil {
		logx.Warn().Msg("corrupted shown-tip data detected, resetting")
		if err := s.store.Remove(ctx, ShownTipsKey); err != nil {
			logx.Error().Err(err).Msg("failed to remove corrupted shown-tip data")
		}
		return []string{}
	}
	return shown
}

// MarkShown records a tip as shown. Marking the same tip twice is a no-op.
func (s *SuppressionStore) MarkShown(ctx context.Context, tipID string) error {
	shown := s.ShownTips(ctx)
	for _, id := range shown {
		if id == tipID {
			return nil
		}
	}
	shown = append(shown, tipID)
	b, err := json.Marshal(shown)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, ShownTipsKey, string(b))
}

// ShouldShow reports whether a tip is currently eligible: tips enabled, not
// user-disabled, and this tip not shown before.
func (s *SuppressionStore) ShouldShow(ctx context.Context, tipID string) bool {
	if !s.TipsEnabled(ctx) || s.TipsUserDisabled(ctx) {
		return false
	}
	for _, id := range s.ShownTips(ctx) {
		if id == tipID {
			return false
		}
	}
	return true
}

// Reset clears the shown-set and the user opt-out flag, but not the global
// enable flag. Used by tests and the user-facing reset.
func (s *SuppressionStore) Reset(ctx context.Context) error {
	if err := s.store.Remove(ctx, ShownTipsKey); err != nil {
		return err
	}
	return s.store.Remove(ctx, TipsDisabledKey)
}

// Snapshot captures the suppression state for a selection pass.
func (s *SuppressionStore) Snapshot(ctx context.Context) SuppressionState {
	shown := make(map[string]bool)
	for _, id := range s.ShownTips(ctx) {
		shown[id] = true
	}
	return SuppressionState{
		TipsEnabled:      s.TipsEnabled(ctx),
		TipsUserDisabled: s.TipsUserDisabled(ctx),
		ShownTipIDs:      shown,
	}
}
