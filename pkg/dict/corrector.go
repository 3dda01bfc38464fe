package dict

import (
	"fmt"
	"strings"

	"github.com/hazyhaar/stanfood-menus/pkg/text"
)

// Sentinel is the placeholder the dining halls publish instead of a real
// ingredient list. It is never normalized.
const Sentinel = "Please refer to dining hall chef or manager for ingredient and allergen information"

// Special is the canonical name of Sentinel.
const Special = "SPECIAL"

// condimentsFragment is the tail of "(... and/or condiments)" after the
// export cut off the opening parenthesis.
const condimentsFragment = "and/or condiments)"

// Corrector rewrites menu text into its display form using a fixed set of
// tables. It is safe for concurrent use once built.
type Corrector struct {
	joined    *substitution
	terms     *substitution
	canonical map[string]string
}

// New compiles t into a Corrector.
func New(t *Tables) (*Corrector, error) {
	joined, err := compileJoined(t.JoinedWords)
	if err != nil {
		return nil, fmt.Errorf("compile tables: %w", err)
	}
	terms, err := compileTerms(t.KnownTerms)
	if err != nil {
		return nil, fmt.Errorf("compile tables: %w", err)
	}

	canonical := make(map[string]string, len(t.Canonical)+1)
	for k, v := range t.Canonical {
		canonical[k] = v
	}
	canonical[Sentinel] = Special

	return &Corrector{joined: joined, terms: terms, canonical: canonical}, nil
}

// Default returns a Corrector over DefaultTables.
func Default() *Corrector {
	c, err := New(DefaultTables())
	if err != nil {
		panic(err)
	}
	return c
}

// Ingredient normalizes one ingredient or allergen token: ASCII folding,
// joined-word repair, known-term replacement, then title casing.
func (c *Corrector) Ingredient(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == Sentinel {
		return s
	}
	if strings.HasPrefix(strings.ToLower(trimmed), condimentsFragment) {
		return "Condiments"
	}
	s = text.Normalize(s)
	s = c.JoinWords(s)
	s = c.ReplaceTerms(s)
	return text.TitleCase(s)
}

// JoinWords inserts the missing space in known joined word pairs.
func (c *Corrector) JoinWords(s string) string {
	return c.joined.apply(s)
}

// ReplaceTerms applies the known-term table.
func (c *Corrector) ReplaceTerms(s string) string {
	return c.terms.apply(s)
}

// Canonical cleans s and maps it to its canonical name, if any.
func (c *Corrector) Canonical(s string) string {
	cleaned := Clean(s)
	if v, ok := c.canonical[cleaned]; ok {
		return v
	}
	return cleaned
}

// DishName returns the display name of a dish.
func (c *Corrector) DishName(s string) string {
	return c.Canonical(strings.TrimSpace(text.Normalize(s)))
}

// IngredientName is Ingredient followed by Canonical.
func (c *Corrector) IngredientName(s string) string {
	return c.Canonical(c.Ingredient(s))
}

// Clean drops everything from the first '(' or '[' on, then trims
// whitespace and trailing commas.
func Clean(s string) string {
	if i := strings.IndexAny(s, "(["); i >= 0 {
		s = s[:i]
	}
	s = strings.TrimSpace(s)
	return strings.TrimSpace(strings.TrimRight(s, ","))
}
