// Package cache implements the two-tier response cache: an immutable
// preloaded pattern table and a TTL-bound persisted cache of prior remote
// resolutions.
package cache

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/merkaba-entertainment/m1a-assistant/internal/assistant/model"
	logx "github.com/merkaba-entertainment/m1a-assistant/pkg/logger"
)

// StorageKey holds the whole persisted cache as one JSON object of
// normalized query -> {data, expiry}.
const StorageKey = "m1a_chat_cache"

type persistedEntry struct {
	Data   model.Response `json:"data"`
	Expiry int64          `json:"expiry"` // unix milliseconds
}

type cacheEntry struct {
	response  model.Response
	expiresAt time.Time
}

// ResponseCache answers instant lookups from the preloaded table first and
// the persisted tier second. Persistence failures degrade the cache, never
// the caller.
type ResponseCache struct {
	store model.KeyValueStore
	ttl   time.Duration
	now   func() time.Time

	mu      sync.Mutex
	entries map[string]cacheEntry
}

func New(store model.KeyValueStore, cfg model.CacheConfig) *ResponseCache {
	return &ResponseCache{
		store:   store,
		ttl:     cfg.TTL,
		now:     time.Now,
		entries: make(map[string]cacheEntry),
	}
}

// Load populates the persisted tier from storage, dropping entries that have
// already expired. Read errors are logged and leave the tier empty.
func (c *ResponseCache) Load(ctx context.Context) {
	raw, ok, err := c.store.Get(ctx, StorageKey)
	if err != nil {
		logx.Error().Err(err).Msg("failed to load chat response cache")
		return
	}
	if !ok {
		return
	}

	var persisted map[string]persistedEntry
	if err := json.Unmarshal([]byte(raw), &persisted); err != nil {
		logx.Warn().Err(err).Msg("corrupted chat response cache, starting empty")
		return
	}

	now := c.now()
	c.mu.Lock()
	defer c.mu.Unlock()
	for query, entry := range persisted {
		expiresAt := time.UnixMilli(entry.Expiry)
		if expiresAt.After(now) {
			c.entries[query] = cacheEntry{response: entry.Data, expiresAt: expiresAt}
		}
	}
	logx.Debug().Int("entries", len(c.entries)).Msg("chat response cache loaded")
}

// LookupInstant returns the canned or previously cached response for a query,
// or nil when neither tier has one. Match against the preloaded table is
// substring containment of the pattern in the normalized query; the persisted
// tier is an exact normalized-query lookup with lazy TTL invalidation.
func (c *ResponseCache) LookupInstant(query string) *model.Response {
	normalized := normalize(query)
	if normalized == "" {
		return nil
	}

	for _, entry := range preloadedResponses {
		if strings.Contains(normalized, entry.pattern) {
			resp := entry.response
			resp.Meta = model.ResponseMeta{Instant: true, Source: model.SourcePreloaded}
			return &resp
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[normalized]
	if !ok {
		return nil
	}
	if !entry.expiresAt.After(c.now()) {
		delete(c.entries, normalized)
		return nil
	}
	resp := entry.response
	resp.Meta = model.ResponseMeta{Instant: true, Cached: true, Source: model.SourceCache}
	return &resp
}

// Store records a successful remote resolution and persists the cache in the
// background. The in-memory tier is updated before Store returns.
func (c *ResponseCache) Store(query string, response model.Response) {
	normalized := normalize(query)
	if normalized == "" {
		return
	}

	c.mu.Lock()
	c.entries[normalized] = cacheEntry{response: response, expiresAt: c.now().Add(c.ttl)}
	c.mu.Unlock()

	go func() {
		if err := c.Flush(context.Background()); err != nil {
			logx.Error().Err(err).Msg("failed to persist chat response cache")
		}
	}()
}

// Flush writes the current persisted tier back to storage.
func (c *ResponseCache) Flush(ctx context.Context) error {
	c.mu.Lock()
	persisted := make(map[string]persistedEntry, len(c.entries))
	for query, entry := range c.entries {
		persisted[query] = persistedEntry{Data: entry.response, Expiry: entry.expiresAt.UnixMilli()}
	}
	c.mu.Unlock()

	b, err := json.Marshal(persisted)
	if err != nil {
		return err
	}
	return c.store.Set(ctx, StorageKey, string(b))
}

// Clear drops both the in-memory persisted tier and its storage key. The
// preloaded table is immutable and unaffected.
func (c *ResponseCache) Clear(ctx context.Context) error {
	c.mu.Lock()
	c.entries = make(map[string]cacheEntry)
	c.mu.Unlock()
	return c.store.Remove(ctx, StorageKey)
}

// SetNowFunc overrides the clock, for TTL tests.
func (c *ResponseCache) SetNowFunc(now func() time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

func normalize(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}
