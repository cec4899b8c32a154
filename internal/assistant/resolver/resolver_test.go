package resolver

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/merkaba-entertainment/m1a-assistant/internal/assistant/cache"
	"github.com/merkaba-entertainment/m1a-assistant/internal/assistant/model"
	"github.com/merkaba-entertainment/m1a-assistant/internal/assistant/repo"
	errx "github.com/merkaba-entertainment/m1a-assistant/internal/core/error"
)

// fakeClient counts Generate calls and returns a scripted result.
type fakeClient struct {
	calls int32
	resp  *model.Response
	err   error
}

func (f *fakeClient) Generate(ctx context.Context, query string, rctx model.ResolveContext) (*model.Response, error) {
	atomic.AddInt32(&f.calls, 1)
	if f.err != nil {
		return nil, f.err
	}
	resp := *f.resp
	return &resp, nil
}

func (f *fakeClient) callCount() int32 {
	return atomic.LoadInt32(&f.calls)
}

func newTestResolver(t *testing.T, client GenerationClient) (*Resolver, *cache.ResponseCache) {
	t.Helper()
	c := cache.New(repo.NewMemoryKeyValueStore(), model.CacheConfig{TTL: 24 * time.Hour})
	return New(c, client), c
}

func TestResolvePreloadedShortCircuits(t *testing.T) {
	client := &fakeClient{err: errors.New("must not be called")}
	r, _ := newTestResolver(t, client)

	resp := r.Resolve(context.Background(), "show me the menu", model.ResolveContext{})

	assert.Equal(t, model.SourcePreloaded, resp.Meta.Source)
	assert.True(t, resp.Meta.Instant)
	require.NotNil(t, resp.Action)
	assert.Equal(t, model.ScreenBarMenu, resp.Action.Screen)
	assert.Zero(t, client.callCount())
}

func TestResolveNavigateTier(t *testing.T) {
	client := &fakeClient{err: errors.New("must not be called")}
	r, _ := newTestResolver(t, client)

	resp := r.Resolve(context.Background(), "take me to my wallet", model.ResolveContext{})

	assert.Equal(t, "navigate", resp.Kind)
	assert.Equal(t, "Taking you to Wallet", resp.Title)
	require.NotNil(t, resp.Action)
	assert.Equal(t, model.ActionNavigate, resp.Action.Kind)
	assert.Equal(t, model.ScreenWallet, resp.Action.Screen)
	assert.True(t, resp.Meta.Instant)
	assert.NotEmpty(t, resp.Suggestions)
	assert.Zero(t, client.callCount())
}

func TestResolveRemoteSuccessIsCached(t *testing.T) {
	client := &fakeClient{resp: &model.Response{
		Kind:    "generated",
		Message: "fresh answer",
		Meta:    model.ResponseMeta{Source: model.SourceRemote},
	}}
	r, responseCache := newTestResolver(t, client)

	resp := r.Resolve(context.Background(), "tell me a joke", model.ResolveContext{})
	assert.Equal(t, model.SourceRemote, resp.Meta.Source)
	assert.Equal(t, "fresh answer", resp.Message)
	assert.EqualValues(t, 1, client.callCount())

	// The second ask is answered from the persisted tier without another
	// remote call.
	resp = r.Resolve(context.Background(), "Tell Me A Joke", model.ResolveContext{})
	assert.Equal(t, model.SourceCache, resp.Meta.Source)
	assert.True(t, resp.Meta.Cached)
	assert.Equal(t, "fresh answer", resp.Message)
	assert.EqualValues(t, 1, client.callCount())

	assert.NotNil(t, responseCache.LookupInstant("tell me a joke"))
}

func TestResolveRemoteFailureFallsBack(t *testing.T) {
	client := &fakeClient{err: errx.NewGeneration(errors.New("connection refused"), http.StatusBadGateway)}
	r, _ := newTestResolver(t, client)

	resp := r.Resolve(context.Background(), "tell me a joke", model.ResolveContext{})

	assert.Equal(t, model.SourceFallback, resp.Meta.Source)
	assert.NotEmpty(t, resp.Message)
	assert.NotNil(t, resp.Suggestions)
	assert.EqualValues(t, 1, client.callCount())
}

func TestResolveRemoteFailureUsesConcurrentlyCachedAnswer(t *testing.T) {
	client := &fakeClient{err: errors.New("boom")}
	r, responseCache := newTestResolver(t, client)

	responseCache.Store("tell me a joke", model.Response{Kind: "generated", Message: "already cached"})

	// LookupInstant hits the persisted tier before Generate runs, so the
	// remote failure is never observed by the caller.
	resp := r.Resolve(context.Background(), "tell me a joke", model.ResolveContext{})
	assert.Equal(t, model.SourceCache, resp.Meta.Source)
	assert.Equal(t, "already cached", resp.Message)
	assert.Zero(t, client.callCount())
}

func TestResolvePurchaseIntentFallsBackToFlow(t *testing.T) {
	client := &fakeClient{err: errors.New("down")}
	r, _ := newTestResolver(t, client)

	resp := r.Resolve(context.Background(), "checkout my cart", model.ResolveContext{})

	assert.Equal(t, "purchase-flow", resp.Kind)
	assert.Equal(t, model.SourceFallback, resp.Meta.Source)
	require.NotNil(t, resp.Action)
	assert.Equal(t, model.ScreenBarMenu, resp.Action.Screen)
}

func TestResolveAlwaysReturnsResponse(t *testing.T) {
	client := &fakeClient{err: errors.New("down")}
	r, _ := newTestResolver(t, client)

	for _, query := range []string{"", "   ", "zzz qqq", "?!?"} {
		resp := r.Resolve(context.Background(), query, model.ResolveContext{})
		assert.NotEmpty(t, resp.Message, "query %q", query)
		assert.NotNil(t, resp.Suggestions, "query %q", query)
		assert.Equal(t, model.SourceFallback, resp.Meta.Source, "query %q", query)
	}
}
