package llm

import (
	"context"
	"errors"
	"sync"
)

// ErrOffline is what an unconfigured StubClient returns, which sends every
// caller down its fallback path.
var ErrOffline = errors.New("llm: offline stub")

// StubClient is a deterministic TextCompletionClient. Responses are served
// from Queue first, then Response. It records every prompt it receives.
type StubClient struct {
	Response string
	Queue    []string
	Err      error

	mu      sync.Mutex
	prompts []string
}

func (s *StubClient) Complete(ctx context.Context, prompt string, maxTokens int, temperature float32) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.prompts = append(s.prompts, prompt)
	if s.Err != nil {
		return "", s.Err
	}
	if len(s.Queue) > 0 {
		resp := s.Queue[0]
		s.Queue = s.Queue[1:]
		return resp, nil
	}
	if s.Response == "" {
		return "", ErrOffline
	}
	return s.Response, nil
}

// Prompts returns a copy of the prompts seen so far.
func (s *StubClient) Prompts() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.prompts...)
}
