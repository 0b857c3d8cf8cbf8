package providers

import (
	"context"
	"errors"

	"github.com/medbridge360/backend/internal/domain/entities"
)

// ErrCompletionUnavailable marks completion failures that the chat
// responder recovers from locally. It is never surfaced to the end user.
var ErrCompletionUnavailable = errors.New("completion service unavailable")

// CompletionProvider is the external text-completion service boundary.
// Implementations receive at most the ten most recent messages and may
// block on network I/O; callers enforce the timeout through ctx and fall
// back on any error without retrying.
type CompletionProvider interface {
	Complete(ctx context.Context, systemPrompt string, messages []entities.ChatMessage) (string, error)
}
