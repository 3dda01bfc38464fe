package text

import (
	"regexp"
	"strings"
)

var allergenSep = regexp.MustCompile(`,\s*`)

// Split breaks an ingredient list on top-level commas. Commas inside
// [...] or (...) belong to the surrounding ingredient.
func Split(raw string) []string {
	var (
		out      []string
		current  strings.Builder
		brackets int
		parens   int
	)

	flush := func() {
		if tok := strings.TrimSpace(current.String()); tok != "" {
			out = append(out, tok)
		}
		current.Reset()
	}

	for _, r := range raw {
		switch r {
		case ',':
			if brackets == 0 && parens == 0 {
				flush()
				continue
			}
		case '[':
			brackets++
		case ']':
			brackets = max(0, brackets-1)
		case '(':
			parens++
		case ')':
			parens = max(0, parens-1)
		}
		current.WriteRune(r)
	}
	flush()
	return out
}

// SplitAllergens splits an allergen list on commas. Allergen tags never
// nest, so no bracket tracking is done.
func SplitAllergens(raw string) []string {
	var out []string
	for _, tok := range allergenSep.Split(raw, -1) {
		if tok = strings.TrimSpace(tok); tok != "" {
			out = append(out, tok)
		}
	}
	return out
}
