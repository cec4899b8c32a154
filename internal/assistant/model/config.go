package model

import "time"

// ================ Config ================

type GenerationConfig struct {
	BaseURL string        `envconfig:"GENERATION_BASE_URL" default:"http://localhost:8001"`
	Timeout time.Duration `envconfig:"GENERATION_TIMEOUT" default:"10s"`
	// MaxHistoryTurns bounds the conversation history sent to the endpoint.
	MaxHistoryTurns int `envconfig:"GENERATION_MAX_HISTORY_TURNS" default:"10"`
}

type CacheConfig struct {
	TTL time.Duration `envconfig:"CHAT_CACHE_TTL" default:"24h"`
}

type TipsConfig struct {
	RotateInterval time.Duration `envconfig:"TIP_ROTATE_INTERVAL" default:"10s"`
	ShowDelay      time.Duration `envconfig:"TIP_SHOW_DELAY" default:"2s"`
}

type SessionConfig struct {
	// NavigateDelay gives the user time to read a reply before navigation.
	NavigateDelay time.Duration `envconfig:"SESSION_NAVIGATE_DELAY" default:"500ms"`
}
