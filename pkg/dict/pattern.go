// CLAUDE:SUMMARY Compiled regex substitutions for the joined-word and known-term layers.
package dict

import (
	"fmt"
	"regexp"
)

// compiledPattern is a single case-insensitive rewrite.
type compiledPattern struct {
	re   *regexp.Regexp
	repl string
	// literal replacements ignore the match; expand ones reuse its groups.
	literal bool
}

// substitution applies its patterns in table order.
type substitution struct {
	patterns []compiledPattern
}

// compileJoined builds the joined-word layer. The matched text keeps its own
// casing; only a space is inserted between the two words.
func compileJoined(pairs []WordPair) (*substitution, error) {
	s := &substitution{patterns: make([]compiledPattern, 0, len(pairs))}
	for _, p := range pairs {
		re, err := regexp.Compile(`(?i)(` + regexp.QuoteMeta(p.First) + `)(` + regexp.QuoteMeta(p.Second) + `)`)
		if err != nil {
			return nil, fmt.Errorf("joined word %q+%q: %w", p.First, p.Second, err)
		}
		s.patterns = append(s.patterns, compiledPattern{re: re, repl: "${1} ${2}"})
	}
	return s, nil
}

// compileTerms builds the known-term layer. Keys are anchored on word
// boundaries so "Onion" never matches inside "Onions".
func compileTerms(terms []Replacement) (*substitution, error) {
	s := &substitution{patterns: make([]compiledPattern, 0, len(terms))}
	for _, r := range terms {
		re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(r.From) + `\b`)
		if err != nil {
			return nil, fmt.Errorf("known term %q: %w", r.From, err)
		}
		s.patterns = append(s.patterns, compiledPattern{re: re, repl: r.To, literal: true})
	}
	return s, nil
}

func (s *substitution) apply(text string) string {
	for _, p := range s.patterns {
		if p.literal {
			text = p.re.ReplaceAllLiteralString(text, p.repl)
		} else {
			text = p.re.ReplaceAllString(text, p.repl)
		}
	}
	return text
}
