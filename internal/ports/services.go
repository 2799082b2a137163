package ports

import (
	"context"

	"github.com/arktech/arktech-brain/internal/domain"
)

// ChatProvider completes a conversation with an external LLM.
type ChatProvider interface {
	ChatCompletion(ctx context.Context, messages []domain.ChatMessage) (string, error)
}

// Assistant turns one utterance into exactly one Response.
type Assistant interface {
	Ask(ctx context.Context, text string) (*domain.Response, error)
}
