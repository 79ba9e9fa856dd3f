// Package chat classifies short shopper messages and routes them to the
// matcher or the advice generator.
package chat

import (
	"strings"

	"github.com/agenthands/wardrobe/internal/core/model"
)

type rule struct {
	kind  model.IntentKind
	match func(msg string) bool
}

// Rules are evaluated top to bottom; the first match wins.
var rules = []rule{
	{model.IntentGreeting, func(msg string) bool {
		return msg == "hello" || msg == "hi" || msg == "hey" ||
			strings.HasPrefix(msg, "hello") || strings.HasPrefix(msg, "hi ")
	}},
	{model.IntentThanks, func(msg string) bool {
		return strings.Contains(msg, "thank")
	}},
	{model.IntentGoodbye, func(msg string) bool {
		return msg == "bye" || msg == "goodbye" || msg == "see you" ||
			strings.Contains(msg, "talk later")
	}},
	{model.IntentCategoryRequest, func(msg string) bool {
		return requestedCategory(msg) != ""
	}},
}

type phrase struct {
	text     string
	category string
}

// categoryPhrases maps request phrases to canonical category tokens. Order
// matters when a message contains more than one phrase.
var categoryPhrases = []phrase{
	{"other bags", "bags"},
	{"show me bags", "bags"},
	{"more bags", "bags"},
	{"show me shoes", "shoes"},
	{"other shoes", "shoes"},
	{"more shoes", "shoes"},
	{"more dresses", "dresses/jumpsuits"},
	{"other dresses", "dresses/jumpsuits"},
	{"show me dresses", "dresses/jumpsuits"},
	{"jumpsuits", "dresses/jumpsuits"},
	{"show me blazers", "blazers"},
	{"more blazers", "blazers"},
	{"show me jackets", "jackets"},
	{"more jackets", "jackets"},
	{"show me coats", "coats"},
	{"more coats", "coats"},
	{"show me shirts", "shirts"},
	{"more shirts", "shirts"},
	{"show me tops", "tops"},
	{"more tops", "tops"},
	{"show me trousers", "trousers"},
	{"show me pants", "trousers"},
	{"more trousers", "trousers"},
	{"show me jeans", "jeans"},
	{"more jeans", "jeans"},
	{"show me skirts", "skirts"},
	{"more skirts", "skirts"},
	{"show me knitwear", "knitwear"},
	{"show me sweaters", "knitwear"},
	{"show me accessories", "accessories"},
	{"more accessories", "accessories"},
}

// Classify maps a raw chat message to an intent. Matching ignores case and
// surrounding whitespace.
func Classify(message string) model.Intent {
	msg := strings.ToLower(strings.TrimSpace(message))

	for _, r := range rules {
		if !r.match(msg) {
			continue
		}
		intent := model.Intent{Kind: r.kind}
		if r.kind == model.IntentCategoryRequest {
			intent.Category = requestedCategory(msg)
		}
		return intent
	}
	return model.Intent{Kind: model.IntentOpenQuestion, Text: message}
}

func requestedCategory(msg string) string {
	for _, p := range categoryPhrases {
		if strings.Contains(msg, p.text) {
			return p.category
		}
	}
	return ""
}
