package advice

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/agenthands/wardrobe/internal/config"
	"github.com/agenthands/wardrobe/internal/core/compat"
	"github.com/agenthands/wardrobe/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGenerator(client llm.TextCompletionClient) *Generator {
	return NewGenerator(client, config.Default(), nil, nil)
}

func TestGenerate_UsesLLM(t *testing.T) {
	stub := &llm.StubClient{Response: "  Pair it with gold hoops and ankle boots.  "}
	g := newGenerator(stub)

	got := g.Generate(context.Background(), "red", "blazers", "Tailored Blazer", "What shoes work?")

	assert.Equal(t, "Pair it with gold hoops and ankle boots.", got)
	prompts := stub.Prompts()
	require.Len(t, prompts, 1)
	for _, want := range []string{
		"Tailored Blazer", "BLAZERS", "RED", "What shoes work?",
		"Jewelry and accessories", "Occasions and settings", "Color coordination", "Styling techniques",
		"50 to 100 words",
	} {
		assert.Contains(t, prompts[0], want)
	}
}

func TestGenerate_DefaultQuestion(t *testing.T) {
	stub := &llm.StubClient{Response: "ok"}

	newGenerator(stub).Generate(context.Background(), "BLUE", "JEANS", "Slim Jeans", "   ")

	assert.Contains(t, stub.Prompts()[0], DefaultQuestion)
}

func TestGenerate_FallbackOnFailure(t *testing.T) {
	failures := map[string]llm.TextCompletionClient{
		"transport error": &llm.StubClient{Err: errors.New("timeout")},
		"offline":         &llm.StubClient{},
		"blank":           &llm.StubClient{Response: "\n  "},
		"nil client":      nil,
	}

	for name, client := range failures {
		t.Run(name, func(t *testing.T) {
			got := newGenerator(client).Generate(context.Background(), "RED", "BLAZERS", "Tailored Blazer", "")
			assert.Equal(t, Fallback("RED", "BLAZERS", "Tailored Blazer"), got)
		})
	}
}

func TestFallback_Deterministic(t *testing.T) {
	a := Fallback("Burgundy", "DRESSES/JUMPSUITS", "Wrap Dress")
	b := Fallback("Burgundy", "DRESSES/JUMPSUITS", "Wrap Dress")

	assert.Equal(t, a, b)
}

func TestFallback_CoversFourTopics(t *testing.T) {
	got := Fallback("NAVY", "SHIRTS", "Oxford Shirt")

	assert.True(t, strings.HasPrefix(got, "Styling tips for your NAVY Oxford Shirt:"))
	for _, header := range []string{"Jewelry & Accessories:", "Occasions & Settings:", "Color Coordination:", "Styling Techniques:"} {
		assert.Contains(t, got, header)
	}
}

func TestFallback_JewelryByHue(t *testing.T) {
	assert.Contains(t, Fallback("RED", "BLAZERS", "Blazer"), "Gold jewelry")
	assert.Contains(t, Fallback("dark brown", "BAGS", "Tote"), "Gold jewelry")
	assert.Contains(t, Fallback("NAVY", "BLAZERS", "Blazer"), "Silver")
	assert.Contains(t, Fallback("BLACK", "BAGS", "Tote"), "Silver")
}

func TestFallback_CategoryRules(t *testing.T) {
	assert.Contains(t, Fallback("BLACK", "BLAZERS", "Blazer"), "office days")
	assert.Contains(t, Fallback("BLACK", "dresses/jumpsuits", "Dress"), "weddings")
	assert.Contains(t, Fallback("BLACK", "COATS", "Coat"), "cold-weather")
	assert.Contains(t, Fallback("BLACK", "SWIMWEAR", "Swimsuit"), "everyday wear")
}

func TestFallback_EveryDeclaredCategory(t *testing.T) {
	want := map[string]string{
		"ACCESSORIES":       "both workdays and evenings out",
		"BAGS":              "both workdays and evenings out",
		"BLAZERS":           "office days",
		"COATS":             "cold-weather",
		"DRESSES/JUMPSUITS": "weddings",
		"JACKETS":           "cold-weather",
		"JEANS":             "everyday errands",
		"KNITWEAR":          "workdays, brunch",
		"SHIRTS":            "workdays, brunch",
		"SHOES":             "both workdays and evenings out",
		"SKIRTS":            "everyday errands",
		"TOPS":              "workdays, brunch",
		"TROUSERS":          "everyday errands",
	}

	categories := compat.Default().Categories()
	require.Len(t, categories, len(want))
	for _, category := range categories {
		expected, ok := want[category]
		require.True(t, ok, "unexpected category %s", category)
		assert.Contains(t, Fallback("BLACK", category, "Item"), "Perfect for "+expected, category)
	}

	assert.NotContains(t, Fallback("BLACK", "DRESSES/JUMPSUITS", "Jumpsuit"), "office days")
}
