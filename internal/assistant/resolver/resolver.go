// Package resolver orchestrates the tiered response pipeline: instant cache
// lookup, deterministic navigation, remote generation bounded by a timeout,
// and the rule-based contextual fallback. Resolve always returns a
// well-formed Response; no tier failure reaches the caller.
package resolver

import (
	"context"
	"fmt"

	"github.com/merkaba-entertainment/m1a-assistant/internal/assistant/cache"
	"github.com/merkaba-entertainment/m1a-assistant/internal/assistant/convctx"
	"github.com/merkaba-entertainment/m1a-assistant/internal/assistant/intent"
	"github.com/merkaba-entertainment/m1a-assistant/internal/assistant/model"
	"github.com/merkaba-entertainment/m1a-assistant/internal/assistant/screens"
	logx "github.com/merkaba-entertainment/m1a-assistant/pkg/logger"
)

// GenerationClient is the remote text-generation capability the resolver
// consumes. Implementations must report timeouts, transport failures, and
// non-2xx statuses identically as errors.
type GenerationClient interface {
	Generate(ctx context.Context, query string, rctx model.ResolveContext) (*model.Response, error)
}

type Resolver struct {
	cache  *cache.ResponseCache
	client GenerationClient
}

func New(cache *cache.ResponseCache, client GenerationClient) *Resolver {
	return &Resolver{cache: cache, client: client}
}

// Resolve runs the full pipeline for one user turn. The instant tiers are
// consulted first so canned answers stay canned even for navigation-phrased
// queries; a Navigate intent with a resolved screen then short-circuits
// without touching the network; remote generation is attempted last before
// the always-succeeding fallback.
func (r *Resolver) Resolve(ctx context.Context, query string, rctx model.ResolveContext) model.Response {
	it := intent.Classify(query)
	cc := convctx.Extract(query, rctx.History)

	if resp := r.cache.LookupInstant(query); resp != nil {
		return *resp
	}

	if it.Kind == model.IntentNavigate && it.HasTarget() {
		return navigateResponse(it.TargetScreen)
	}

	resp, err := r.client.Generate(ctx, query, rctx)
	if err == nil && resp != nil {
		r.cache.Store(query, *resp)
		return *resp
	}
	logx.Warn().Err(err).Str("query", it.RawQuery).Msg("remote generation failed, falling back")

	// A concurrent successful call may have populated the cache while the
	// failing request was in flight.
	if cached := r.cache.LookupInstant(query); cached != nil {
		return *cached
	}

	return Fallback(query, it, cc, rctx)
}

func navigateResponse(screen model.ScreenID) model.Response {
	name := screens.DisplayName(screen)
	return model.Response{
		Kind:        "navigate",
		Title:       fmt.Sprintf("Taking you to %s", name),
		Message:     fmt.Sprintf("I'll take you there right away! You're being navigated to %s.", name),
		Action:      model.NavigateTo(screen),
		Suggestions: screens.Suggestions(screen),
		// Rule-generated, not cached: the source taxonomy has no navigate
		// value, so these replies carry the fallback source with Instant set.
		Meta: model.ResponseMeta{Instant: true, Source: model.SourceFallback},
	}
}
