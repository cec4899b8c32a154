// Package generate calls the remote text-generation endpoint. The endpoint
// is an external collaborator with its own availability and latency; the
// client enforces its own timeout and reports every failure mode the same
// way so the resolver can fall through uniformly.
package generate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/merkaba-entertainment/m1a-assistant/internal/assistant/model"
	errx "github.com/merkaba-entertainment/m1a-assistant/internal/core/error"
	logx "github.com/merkaba-entertainment/m1a-assistant/pkg/logger"
)

type historyTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Message             string         `json:"message"`
	ConversationHistory []historyTurn  `json:"conversation_history"`
	SystemPrompt        string         `json:"system_prompt"`
	Context             requestContext `json:"context"`
}

type requestContext struct {
	UserPersona   string             `json:"user_persona"`
	CurrentScreen string             `json:"current_screen"`
	UserBehavior  model.UserBehavior `json:"user_behavior"`
}

type chatResponse struct {
	Message     string         `json:"message"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	Suggestions []string       `json:"suggestions,omitempty"`
	Action      *model.Action  `json:"action,omitempty"`
}

// Client talks to the generation endpoint's POST /api/chat contract.
type Client struct {
	baseURL string
	httpc   *http.Client
	cfg     model.GenerationConfig
}

func NewClient(cfg model.GenerationConfig) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		httpc:   &http.Client{},
		cfg:     cfg,
	}
}

// Generate issues a bounded generation call. History is truncated to the
// configured number of turns. Transport errors, timeouts, and non-2xx
// statuses are all returned as errors; the caller decides what to do next.
func (c *Client) Generate(ctx context.Context, query string, rctx model.ResolveContext) (*model.Response, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	history := rctx.History
	if len(history) > c.cfg.MaxHistoryTurns {
		history = history[len(history)-c.cfg.MaxHistoryTurns:]
	}
	turns := make([]historyTurn, 0, len(history))
	for _, msg := range history {
		role := "assistant"
		if msg.Role == model.RoleUser {
			role = "user"
		}
		turns = append(turns, historyTurn{Role: role, Content: msg.Text})
	}

	persona := rctx.Persona
	if persona == "" {
		persona = "client"
	}
	screen := rctx.Screen
	if screen == "" {
		screen = model.ScreenHome
	}

	body, err := json.Marshal(chatRequest{
		Message:             query,
		ConversationHistory: turns,
		SystemPrompt:        BuildSystemPrompt(rctx.Persona, rctx.Screen),
		Context: requestContext{
			UserPersona:   string(persona),
			CurrentScreen: screen.String(),
			UserBehavior:  rctx.Behavior,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, errx.NewGeneration(err, http.StatusBadGateway)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Non-2xx is treated identically to a network failure.
		return nil, errx.NewGeneration(fmt.Errorf("generation endpoint status %d", resp.StatusCode), resp.StatusCode)
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, errx.NewGeneration(fmt.Errorf("decode generation response: %w", err), http.StatusBadGateway)
	}

	if out.Message == "" {
		logx.Warn().Msg("generation endpoint returned empty message")
		out.Message = "I apologize, but I encountered an error generating a response."
	}
	suggestions := out.Suggestions
	if suggestions == nil {
		suggestions = []string{}
	}

	return &model.Response{
		Kind:        "generated",
		Message:     out.Message,
		Action:      out.Action,
		Suggestions: suggestions,
		Meta:        model.ResponseMeta{Source: model.SourceRemote},
	}, nil
}
