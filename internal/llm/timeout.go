package llm

import (
	"context"
	"io"
	"time"
)

type timeoutClient struct {
	next    TextCompletionClient
	timeout time.Duration
}

// WithTimeout bounds every Complete call on next. A non-positive timeout
// returns next unchanged.
func WithTimeout(next TextCompletionClient, timeout time.Duration) TextCompletionClient {
	if timeout <= 0 {
		return next
	}
	return &timeoutClient{next: next, timeout: timeout}
}

func (c *timeoutClient) Complete(ctx context.Context, prompt string, maxTokens int, temperature float32) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	return c.next.Complete(ctx, prompt, maxTokens, temperature)
}

func (c *timeoutClient) Close() error {
	return Close(c.next)
}

// Close releases client when it holds resources, such as the Gemini SDK
// connection. Clients without a Close method are left alone.
func Close(client TextCompletionClient) error {
	if closer, ok := client.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
