package model

type IntentKind int

const (
	IntentOpenQuestion IntentKind = iota
	IntentGreeting
	IntentThanks
	IntentGoodbye
	IntentCategoryRequest
)

func (k IntentKind) String() string {
	switch k {
	case IntentGreeting:
		return "greeting"
	case IntentThanks:
		return "thanks"
	case IntentGoodbye:
		return "goodbye"
	case IntentCategoryRequest:
		return "category_request"
	default:
		return "open_question"
	}
}

// Intent is a classified chat message. Category is set for
// IntentCategoryRequest, Text for IntentOpenQuestion.
type Intent struct {
	Kind     IntentKind
	Category string
	Text     string
}
