package common

import "strings"

// Normalize trims s and upper-cases it. Category names and colors are
// compared in this form everywhere.
func Normalize(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// ParseTokenList splits an LLM answer like "Navy, white,\nCamel." into
// normalized tokens, dropping empty and single-character entries.
// It handles common LLM quirks like newlines, list bullets and a trailing period.
func ParseTokenList(response string) []string {
	fields := strings.FieldsFunc(response, func(r rune) bool {
		return r == ',' || r == '\n' || r == ';'
	})

	var out []string
	for _, f := range fields {
		tok := strings.Trim(strings.TrimSpace(f), ".-*•\"'")
		tok = Normalize(tok)
		if len([]rune(tok)) <= 1 {
			continue
		}
		out = append(out, tok)
	}
	return out
}

// Dedupe keeps the first occurrence of every element, preserving order.
func Dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
