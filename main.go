package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/merkaba-entertainment/m1a-assistant/internal/assistant/cache"
	"github.com/merkaba-entertainment/m1a-assistant/internal/assistant/generate"
	"github.com/merkaba-entertainment/m1a-assistant/internal/assistant/model"
	"github.com/merkaba-entertainment/m1a-assistant/internal/assistant/repo"
	"github.com/merkaba-entertainment/m1a-assistant/internal/assistant/resolver"
	"github.com/merkaba-entertainment/m1a-assistant/internal/assistant/session"
	"github.com/merkaba-entertainment/m1a-assistant/internal/assistant/tips"
	"github.com/merkaba-entertainment/m1a-assistant/internal/core"
	logx "github.com/merkaba-entertainment/m1a-assistant/pkg/logger"
	pkgredis "github.com/merkaba-entertainment/m1a-assistant/pkg/redis"
)

// AppConfig defines all configurable parameters for the assistant engine,
// sourced from environment variables (loaded from .env for local runs).
type AppConfig struct {
	Environment string `envconfig:"ENVIRONMENT" default:"development"`

	// Infrastructure
	Redis pkgredis.Config

	// Engine configs
	Generation model.GenerationConfig
	Cache      model.CacheConfig
	Tips       model.TipsConfig
	Session    model.SessionConfig
}

// logNavigator stands in for the app's navigation layer in this example run.
type logNavigator struct{}

func (logNavigator) Navigate(screen model.ScreenID) {
	fmt.Printf(">>> navigating to %s\n", screen)
}

func main() {
	ctx := context.Background()

	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	var envCfg AppConfig
	if err := envconfig.Process("", &envCfg); err != nil {
		log.Fatalf("Failed to process environment config: %v", err)
	}

	logx.Init(logx.LoggerOpts{Environment: core.ParseEnvironment(envCfg.Environment)})

	// Persistent store: Redis when configured, process-local otherwise.
	var store model.KeyValueStore
	if envCfg.Redis.URL != "" {
		rdb, err := envCfg.Redis.New()
		if err != nil {
			log.Fatalf("Failed to initialise Redis client: %v", err)
		}
		defer rdb.Close()
		store = repo.NewRedisKeyValueStore(rdb, "m1a")
		fmt.Println("Connected to Redis successfully")
	} else {
		logx.Warn().Msg("REDIS_URL not set, persisted state is process-local only")
		store = repo.NewMemoryKeyValueStore()
	}

	responseCache := cache.New(store, envCfg.Cache)
	responseCache.Load(ctx)

	res := resolver.New(responseCache, generate.NewClient(envCfg.Generation))
	supp := tips.NewSuppressionStore(store)

	sess := session.New(ctx, model.ScreenHome, model.PersonaArtist, res, supp, envCfg.Tips, envCfg.Session, logNavigator{})
	defer sess.Dispose()

	queries := []struct {
		description string
		query       string
	}{
		{"Preloaded answer", "How do I create an event?"},
		{"Direct navigation", "take me to my wallet"},
		{"Free-text question", "what should I charge for tickets?"},
	}

	sess.ToggleExpanded()

	for i, q := range queries {
		fmt.Printf("\nTurn %d: %s\n", i+1, q.description)
		fmt.Printf("Query: %q\n", q.query)

		resp := sess.SendMessage(ctx, q.query)
		fmt.Printf("[%s] %s\n", resp.Meta.Source, resp.Message)
	}

	fmt.Printf("\nHistory: %d messages\n", len(sess.Messages()))
}
