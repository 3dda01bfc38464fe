// CLAUDE:SUMMARY Folds menu text into the ASCII charset: quote glyphs, ñ, NFKD decomposition, non-ASCII removal.
package text

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// glyphs are mapped before decomposition so the ASCII strip never drops them.
var glyphs = strings.NewReplacer(
	"“", `"`, "”", `"`,
	"‘", "'", "’", "'",
	"ñ", "n", "Ñ", "N",
)

var foldASCII = transform.Chain(norm.NFKD, runes.Remove(runes.Predicate(func(r rune) bool {
	return r > unicode.MaxASCII
})))

// Normalize maps s onto plain ASCII (e.g. “Jalapeño” -> "Jalapeno").
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	result, _, _ := transform.String(foldASCII, glyphs.Replace(s))
	return result
}
