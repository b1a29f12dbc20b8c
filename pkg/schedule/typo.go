package schedule

import (
	"slices"

	"github.com/agnivade/levenshtein"
)

// screenTypos looks for a known misspelling in the normalized expression.
// It reports the suggested correction and where the misspelling is.
func screenTypos(norm string) (suggestion string, span Span, ok bool) {
	for _, tp := range typoPatterns {
		if loc := tp.re.FindStringIndex(norm); loc != nil {
			return tp.suggestion, Span{Start: loc[0], End: loc[1]}, true
		}
	}
	return "", Span{}, false
}

// closestKeyword finds the unrecognized token that is closest to a known word.
// Only alphabetic tokens of four or more letters are considered, and only
// within an edit distance of one (two for tokens longer than five letters).
func closestKeyword(toks []token) (suggestion string, tok token, ok bool) {
	best := -1
	for _, t := range toks {
		if len(t.text) < 4 || !isAlpha(t.text) || slices.Contains(vocabulary, t.text) {
			continue
		}
		limit := 1
		if len(t.text) > 5 {
			limit = 2
		}
		for _, word := range vocabulary {
			d := levenshtein.ComputeDistance(t.text, word)
			if d <= limit && (best < 0 || d < best) {
				best, suggestion, tok = d, word, t
			}
		}
	}
	return suggestion, tok, best >= 0
}

func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}
