package config

import "fmt"

const (
	colorsPromptArgs = 1
	advicePromptArgs = 4
)

// Validate checks that overridden templates take exactly the arguments they
// are rendered with. Empty templates are left for ApplyDefaults.
func (p Prompts) Validate() error {
	if p.Colors != "" {
		if n := countVerbs(p.Colors); n != colorsPromptArgs {
			return fmt.Errorf("prompts.colors needs %d %%s verb, found %d", colorsPromptArgs, n)
		}
	}
	if p.Advice != "" {
		if n := countVerbs(p.Advice); n != advicePromptArgs {
			return fmt.Errorf("prompts.advice needs %d %%s verbs, found %d", advicePromptArgs, n)
		}
	}
	return nil
}

// countVerbs counts fmt verbs in tmpl, skipping escaped %%.
func countVerbs(tmpl string) int {
	n := 0
	for i := 0; i < len(tmpl); i++ {
		if tmpl[i] != '%' {
			continue
		}
		if i+1 < len(tmpl) && tmpl[i+1] == '%' {
			i++
			continue
		}
		n++
	}
	return n
}

// DefaultColorsPrompt takes the base color.
const DefaultColorsPrompt = `You are a fashion color expert.
Suggest 6 to 8 color names that coordinate well with %s clothing.
Return ONLY the color names as a comma-separated list, for example: WHITE, NAVY, CAMEL
Do not output any other text.`

// DefaultAdvicePrompt takes product name, category, color and the customer question, in that order.
const DefaultAdvicePrompt = `You are a professional fashion stylist helping a customer of a clothing store.

Item: %s
Category: %s
Color: %s

Customer request: %s

Answer in 50 to 100 words of natural prose and cover these four topics:
1. Jewelry and accessories that suit the item
2. Occasions and settings to wear it
3. Color coordination with other pieces
4. Styling techniques (fit, layering, proportions)
Do not use markdown or bullet lists.`
