package llm

import (
	"context"
	"errors"
)

// ErrEmptyCompletion is returned when a provider answers without any text.
var ErrEmptyCompletion = errors.New("llm: empty completion")

// TextCompletionClient turns a prompt into text. Implementations return an
// error for transport failures and non-success responses.
type TextCompletionClient interface {
	Complete(ctx context.Context, prompt string, maxTokens int, temperature float32) (string, error)
}
