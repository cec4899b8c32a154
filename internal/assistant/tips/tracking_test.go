package tips

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/merkaba-entertainment/m1a-assistant/internal/assistant/repo"
)

func newTestStore(t *testing.T) (*SuppressionStore, *repo.MemoryKeyValueStore) {
	t.Helper()
	kv := repo.NewMemoryKeyValueStore()
	return NewSuppressionStore(kv), kv
}

func TestSuppressionDefaults(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	assert.True(t, s.TipsEnabled(ctx))
	assert.False(t, s.TipsUserDisabled(ctx))
	assert.Empty(t, s.ShownTips(ctx))
	assert.True(t, s.ShouldShow(ctx, "home-1"))
}

func TestSetTipsEnabled(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	require.NoError(t, s.SetTipsEnabled(ctx, false))
	assert.False(t, s.TipsEnabled(ctx))
	assert.False(t, s.ShouldShow(ctx, "home-1"))

	require.NoError(t, s.SetTipsEnabled(ctx, true))
	assert.True(t, s.TipsEnabled(ctx))
}

func TestDisableAll(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	require.NoError(t, s.DisableAll(ctx))
	assert.True(t, s.TipsUserDisabled(ctx))
	assert.False(t, s.ShouldShow(ctx, "home-1"))
	// The global settings flag is separate from the user opt-out.
	assert.True(t, s.TipsEnabled(ctx))
}

func TestMarkShown(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	require.NoError(t, s.MarkShown(ctx, "home-1"))
	require.NoError(t, s.MarkShown(ctx, "home-2"))
	// Idempotent.
	require.NoError(t, s.MarkShown(ctx, "home-1"))

	assert.Equal(t, []string{"home-1", "home-2"}, s.ShownTips(ctx))
	assert.False(t, s.ShouldShow(ctx, "home-1"))
	assert.True(t, s.ShouldShow(ctx, "home-3"))
}

func TestShownTipsCorruptionSelfHeals(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"malformed json", `{"not":"an array"`},
		{"valid json but not an array", `"corrupted"`},
		{"json object", `{"shown":["home-1"]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			s, kv := newTestStore(t)

			require.NoError(t, kv.Set(ctx, ShownTipsKey, tt.value))

			assert.Empty(t, s.ShownTips(ctx))
			// The corrupted value was removed, so tracking restarts cleanly.
			_, ok, err := kv.Get(ctx, ShownTipsKey)
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, s.MarkShown(ctx, "home-1"))
			assert.Equal(t, []string{"home-1"}, s.ShownTips(ctx))
		})
	}
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	require.NoError(t, s.MarkShown(ctx, "home-1"))
	require.NoError(t, s.DisableAll(ctx))
	require.NoError(t, s.SetTipsEnabled(ctx, false))

	require.NoError(t, s.Reset(ctx))

	assert.Empty(t, s.ShownTips(ctx))
	assert.False(t, s.TipsUserDisabled(ctx))
	// Reset does not touch the global settings flag.
	assert.False(t, s.TipsEnabled(ctx))
}

func TestSnapshot(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	require.NoError(t, s.MarkShown(ctx, "home-2"))

	snap := s.Snapshot(ctx)
	assert.True(t, snap.TipsEnabled)
	assert.False(t, snap.TipsUserDisabled)
	assert.True(t, snap.ShownTipIDs["home-2"])
	assert.False(t, snap.ShownTipIDs["home-1"])
}
