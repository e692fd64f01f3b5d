package llmHandlers

import (
	"context"

	"bot9-palace-backend/internal/models"
)

// Message is one conversation turn shaped for the provider.
type Message struct {
	Role    models.Role
	Content string
}

// ToolCall is an action the model selected instead of (or alongside) free
// text. Arguments is the raw JSON argument string and may be empty.
type ToolCall struct {
	Name      string
	Arguments string
}

// Completion is the provider's answer to a chat call.
type Completion struct {
	Content   string
	ToolCalls []ToolCall
}

type Client interface {
	Chat(ctx context.Context, messages []Message) (*Completion, error)
}
