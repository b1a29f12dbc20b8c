package schedule

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestScreenTypos(t *testing.T) {
	testcases := []struct {
		in       string
		want     string
		wantSpan Span
		ok       bool
	}{
		{in: "evry day", want: "every", wantSpan: Span{0, 4}, ok: true},
		{in: "eery monday", want: "every", wantSpan: Span{0, 4}, ok: true},
		{in: "at 9am on mondayss", want: "mondays", wantSpan: Span{10, 18}, ok: true},
		{in: "sundayss", want: "sundays", wantSpan: Span{0, 8}, ok: true},
		{in: "weakdays", want: "weekdays", wantSpan: Span{0, 8}, ok: true},
		{in: "weakends", want: "weekends", wantSpan: Span{0, 8}, ok: true},
		// "every" is screened before any other word.
		{in: "weakdays evey", want: "every", wantSpan: Span{9, 13}, ok: true},
		{in: "every day", ok: false},
		{in: "mondays", ok: false},
		{in: "everyday", ok: false},
	}
	c := qt.New(t)
	for _, tc := range testcases {
		got, span, ok := screenTypos(tc.in)
		c.Assert(ok, qt.Equals, tc.ok, qt.Commentf("input %q", tc.in))
		if tc.ok {
			c.Assert(got, qt.Equals, tc.want, qt.Commentf("input %q", tc.in))
			c.Assert(span, qt.Equals, tc.wantSpan, qt.Commentf("input %q", tc.in))
		}
	}
}

func TestClosestKeyword(t *testing.T) {
	testcases := []struct {
		in   string
		want string
		ok   bool
	}{
		{in: "tuesdy", want: "tuesday", ok: true},
		{in: "wensday", want: "wednesday", ok: true},
		{in: "mornin", want: "morning", ok: true},
		{in: "hourz", want: "hour", ok: true},
		{in: "nooon", want: "noon", ok: true},
		// Short words and numbers are never corrected.
		{in: "mom", ok: false},
		{in: "9amx", ok: false},
		// Known words are never corrected.
		{in: "first", ok: false},
		{in: "whenever", ok: false},
	}
	c := qt.New(t)
	for _, tc := range testcases {
		got, _, ok := closestKeyword(tokenize(tc.in))
		c.Assert(ok, qt.Equals, tc.ok, qt.Commentf("input %q", tc.in))
		c.Assert(got, qt.Equals, tc.want, qt.Commentf("input %q", tc.in))
	}
}
