package model

import (
	"time"

	"github.com/google/uuid"
)

// Role distinguishes the author of a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ChatMessage is one entry in the session's append-only conversation history.
// Never mutated after creation.
type ChatMessage struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
	IsSystem  bool      `json:"is_system"`
}

// NewChatMessage creates a message stamped with the current time.
func NewChatMessage(role Role, text string, isSystem bool) ChatMessage {
	return ChatMessage{
		ID:        uuid.NewString(),
		Role:      role,
		Text:      text,
		Timestamp: time.Now(),
		IsSystem:  isSystem,
	}
}
