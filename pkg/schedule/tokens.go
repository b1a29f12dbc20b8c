package schedule

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// normalize lowercases s and collapses all whitespace runs into single spaces.
// s is expected to be trimmed already.
func normalize(s string) string {
	// A Caser is stateful, so one is created per call.
	lower := cases.Lower(language.Und).String(s)
	return strings.Join(strings.Fields(lower), " ")
}

// token is a word of the normalized expression.
type token struct {
	text       string
	start, end int // byte offsets into the normalized expression
}

func (t token) String() string {
	return t.text
}

// tokenize splits the normalized expression on spaces and commas,
// dropping stop words. Hyphenated words are kept whole.
func tokenize(norm string) []token {
	var toks []token
	start := -1
	flush := func(end int) {
		if start < 0 {
			return
		}
		text := norm[start:end]
		if !stopWords[text] {
			toks = append(toks, token{text: text, start: start, end: end})
		}
		start = -1
	}

	for i := 0; i < len(norm); i++ {
		switch norm[i] {
		case ' ', ',':
			flush(i)
		default:
			if start < 0 {
				start = i
			}
		}
	}
	flush(len(norm))
	return toks
}

// Normalize returns expression the way the parser sees it: trimmed,
// lowercased and with whitespace runs collapsed. Diagnostic spans index
// into the normalized expression.
func Normalize(expression string) string {
	return normalize(strings.TrimSpace(expression))
}
