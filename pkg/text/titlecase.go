// CLAUDE:SUMMARY Heuristic title casing for menu phrases, tracking parenthesis and quote context across words.
package text

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var tokens = regexp.MustCompile(`\S+|\s+`)

// caser carries the cross-token state of one TitleCase call.
type caser struct {
	insideParens bool
	afterQuote   bool
}

// TitleCase capitalizes every word of s. Words joined by '/', '-' or '\''
// are capitalized part by part ("canola/olive" -> "Canola/Olive").
// Only letter case changes; whitespace and punctuation are kept as is.
// An unmatched '(' keeps the parenthesis state for the rest of s.
func TitleCase(s string) string {
	var (
		c   caser
		out strings.Builder
	)
	out.Grow(len(s))
	for _, tok := range tokens.FindAllString(s, -1) {
		out.WriteString(c.token(tok))
	}
	return out.String()
}

func (c *caser) token(tok string) string {
	if i := strings.IndexByte(tok, '('); i >= 0 {
		c.insideParens = true
		return tok[:i+1] + capitalizeWord(tok[i+1:])
	}
	if i := strings.IndexByte(tok, ')'); i >= 0 {
		c.insideParens = false
		return capitalizeWord(tok[:i]) + tok[i:]
	}
	if strings.ContainsAny(tok, `"'`) {
		var b strings.Builder
		for i, part := range splitQuotes(tok) {
			if i%2 == 0 || c.afterQuote {
				part = capitalizeWord(part)
			}
			b.WriteString(part)
		}
		c.afterQuote = strings.HasSuffix(tok, `"`) || strings.HasSuffix(tok, "'")
		return b.String()
	}
	if c.insideParens || strings.TrimSpace(tok) != "" || c.afterQuote {
		c.afterQuote = false
		return capitalizeWord(tok)
	}
	return tok
}

// splitQuotes splits tok around quote characters, keeping each quote as its
// own element so quotes always sit at odd indexes.
func splitQuotes(tok string) []string {
	parts := []string{}
	start := 0
	for i := 0; i < len(tok); i++ {
		if tok[i] == '"' || tok[i] == '\'' {
			parts = append(parts, tok[start:i], tok[i:i+1])
			start = i + 1
		}
	}
	return append(parts, tok[start:])
}

func capitalizeWord(word string) string {
	for _, sep := range []string{"/", "-", "'"} {
		if strings.Contains(word, sep) {
			parts := strings.Split(word, sep)
			for i, p := range parts {
				parts[i] = capitalize(p)
			}
			return strings.Join(parts, sep)
		}
	}
	return capitalize(word)
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToTitle(r)) + strings.ToLower(s[size:])
}
