package chat

import (
	"context"
	"errors"
	"testing"

	"github.com/agenthands/wardrobe/internal/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ref = model.Product{ID: 5, Name: "Tailored Blazer", Color: "RED", Category: model.Category{Name: "BLAZERS"}}

func TestDispatch_CannedReplies(t *testing.T) {
	m := &MockMatcher{}
	a := &MockAdvisor{}
	d := NewDispatcher(m, a, nil, nil)

	for _, msg := range []string{"hi there", "thanks", "bye"} {
		rec, err := d.Dispatch(context.Background(), ref, msg)
		require.NoError(t, err)
		assert.NotEmpty(t, rec.Message, msg)
		assert.NotNil(t, rec.Products, msg)
		assert.Empty(t, rec.Products, msg)
	}
	assert.Empty(t, m.Filters)
	assert.Empty(t, a.Questions)
}

func TestDispatch_GreetingNamesProduct(t *testing.T) {
	d := NewDispatcher(&MockMatcher{}, &MockAdvisor{}, nil, nil)

	rec, err := d.Dispatch(context.Background(), ref, "hello")

	require.NoError(t, err)
	assert.Contains(t, rec.Message, "Tailored Blazer")
}

func TestDispatch_CategoryRequest(t *testing.T) {
	want := model.Recommendation{Message: "bags!", Products: []model.Product{{ID: 6}}}
	m := &MockMatcher{Result: want}
	d := NewDispatcher(m, &MockAdvisor{}, nil, nil)

	rec, err := d.Dispatch(context.Background(), ref, "show me other bags")

	require.NoError(t, err)
	assert.Equal(t, want, rec)
	assert.Equal(t, []string{"bags"}, m.Filters)
}

func TestDispatch_CategoryRequestError(t *testing.T) {
	boom := errors.New("catalog down")
	d := NewDispatcher(&MockMatcher{Err: boom}, &MockAdvisor{}, nil, nil)

	_, err := d.Dispatch(context.Background(), ref, "more shoes")

	assert.ErrorIs(t, err, boom)
}

func TestDispatch_OpenQuestion(t *testing.T) {
	a := &MockAdvisor{Response: "Pair it with gold hoops."}
	d := NewDispatcher(&MockMatcher{}, a, nil, nil)

	rec, err := d.Dispatch(context.Background(), ref, "what goes with this?")

	require.NoError(t, err)
	assert.Equal(t, "Pair it with gold hoops.", rec.Message)
	assert.Empty(t, rec.Products)
	assert.Equal(t, []string{"what goes with this?"}, a.Questions)
}
