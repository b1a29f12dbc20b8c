package schedule

import (
	"regexp"
	"strings"
)

// clock is an hour and minute of the day.
type clock struct {
	hour, minute int
}

// dayNames maps every accepted spelling of a day to its cron
// day-of-week number (0 = Sunday).
var dayNames = func() map[string]int {
	names := make(map[string]int)
	for _, d := range days {
		names[d.name] = d.num
		for _, a := range d.abbrevs {
			names[a] = d.num
		}
	}
	return names
}()

var days = []struct {
	name    string
	num     int
	abbrevs []string
}{
	{"sunday", 0, []string{"sun"}},
	{"monday", 1, []string{"mon"}},
	{"tuesday", 2, []string{"tue", "tues"}},
	{"wednesday", 3, []string{"wed"}},
	{"thursday", 4, []string{"thu", "thur", "thurs"}},
	{"friday", 5, []string{"fri"}},
	{"saturday", 6, []string{"sat"}},
}

// namedTimes are single words that denote a fixed time of day.
var namedTimes = map[string]clock{
	"midnight": {0, 0},
	"noon":     {12, 0},
	"midday":   {12, 0},
}

// periods are the loose parts of the day and the time they stand for.
var periods = map[string]clock{
	"morning":   {9, 0},
	"afternoon": {14, 0},
	"evening":   {18, 0},
}

// stopWords carry no schedule information on their own.
var stopWords = map[string]bool{
	"every": true,
	"at":    true,
	"on":    true,
	"the":   true,
	"of":    true,
	"in":    true,
	"and":   true,
	"to":    true,
	"day":   true,
	"month": true,
}

// keyword is a canonical term together with its known misspellings.
type keyword struct {
	term  string
	typos []string // matched as whole words
}

var keywords = []keyword{
	{term: "every", typos: []string{"evry", "evey", "eery"}},
	{term: "daily"},
	{term: "minute"},
	{term: "minutes"},
	{term: "hour"},
	{term: "hours"},
	{term: "hourly"},
	{term: "minutely"},
	{term: "weekdays", typos: []string{"weakdays", "weekdyas"}},
	{term: "weekends", typos: []string{"weakend", "weakends"}},
	{term: "first"},
	{term: "month"},
	{term: "midnight"},
	{term: "noon"},
	{term: "midday"},
	{term: "morning"},
	{term: "afternoon"},
	{term: "evening"},
}

// typoPattern matches a known misspelling and names its correction.
type typoPattern struct {
	re         *regexp.Regexp
	suggestion string
}

// typoPatterns is derived from keywords and days, in that order:
// "every" first, then the doubled plural suffix of each day,
// then weekdays/weekends.
var typoPatterns = func() []typoPattern {
	var out []typoPattern
	add := func(kw keyword) {
		if len(kw.typos) == 0 {
			return
		}
		re := regexp.MustCompile(`\b(?:` + strings.Join(kw.typos, "|") + `)\b`)
		out = append(out, typoPattern{re: re, suggestion: kw.term})
	}

	add(keywords[0])
	for _, d := range days[1:] {
		out = append(out, dayTypo(d.name))
	}
	out = append(out, dayTypo(days[0].name))
	for _, kw := range keywords[1:] {
		add(kw)
	}
	return out
}()

func dayTypo(name string) typoPattern {
	return typoPattern{
		re:         regexp.MustCompile(`\b` + name + `ss`),
		suggestion: name + "s",
	}
}

// vocabulary lists every word the classifiers understand.
// It is the candidate set for edit-distance suggestions.
var vocabulary = func() []string {
	var words []string
	for _, kw := range keywords {
		words = append(words, kw.term)
	}
	for _, d := range days {
		words = append(words, d.name, d.name+"s")
	}
	words = append(words, "weekday", "weekend")
	return words
}()

// lookupDay resolves a day name, abbreviation or plural.
func lookupDay(word string) (int, bool) {
	if n, ok := dayNames[word]; ok {
		return n, true
	}
	if trimmed, ok := strings.CutSuffix(word, "s"); ok {
		n, ok := dayNames[trimmed]
		return n, ok
	}
	return 0, false
}
