package chat

import (
	"context"

	"github.com/agenthands/wardrobe/internal/core/model"
)

type MockMatcher struct {
	Result  model.Recommendation
	Err     error
	Filters []string
}

func (m *MockMatcher) FindMatchesFor(ctx context.Context, ref model.Product, categoryFilter string) (model.Recommendation, error) {
	m.Filters = append(m.Filters, categoryFilter)
	return m.Result, m.Err
}

type MockAdvisor struct {
	Response  string
	Questions []string
}

func (m *MockAdvisor) Generate(ctx context.Context, color, category, productName, question string) string {
	m.Questions = append(m.Questions, question)
	return m.Response
}
