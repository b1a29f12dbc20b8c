package schedule

import (
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/google/go-cmp/cmp"
)

func TestClassifierOrder(t *testing.T) {
	c := qt.New(t)
	var names []string
	for _, cl := range classifiers {
		names = append(names, cl.name)
	}
	c.Assert(names, qt.DeepEquals, []string{
		"interval",
		"two-token time",
		"time",
		"day range",
		"day",
		"ordinal",
		"period",
	})
}

func TestTokenize(t *testing.T) {
	testcases := []struct {
		desc string
		in   string
		want []token
	}{
		{
			desc: "commas and stop words",
			in:   "mon, wed,fri at 9am",
			want: []token{
				{text: "mon", start: 0, end: 3},
				{text: "wed", start: 5, end: 8},
				{text: "fri", start: 9, end: 12},
				{text: "9am", start: 16, end: 19},
			},
		},
		{
			desc: "hyphenated words stay whole",
			in:   "every mon-fri",
			want: []token{{text: "mon-fri", start: 6, end: 13}},
		},
		{
			desc: "only stop words",
			in:   "every day of the month",
			want: nil,
		},
	}
	for _, tc := range testcases {
		t.Run(tc.desc, func(t *testing.T) {
			c := qt.New(t)
			c.Assert(tokenize(tc.in), qt.CmpEquals(cmp.AllowUnexported(token{})), tc.want)
		})
	}
}

func TestNormalize(t *testing.T) {
	c := qt.New(t)
	c.Assert(normalize("Every  DAY\tat\n9AM"), qt.Equals, "every day at 9am")
	c.Assert(normalize(""), qt.Equals, "")
}

func TestLookupDay(t *testing.T) {
	testcases := []struct {
		word string
		want int
		ok   bool
	}{
		{"sunday", 0, true},
		{"sundays", 0, true},
		{"su", 0, false},
		{"mo", 0, false},
		{"we", 0, false},
		{"tues", 2, true},
		{"wed", 3, true},
		{"thurs", 4, true},
		{"th", 0, false},
		{"fridays", 5, true},
		{"sat", 6, true},
		{"sats", 6, true},
		{"weekday", 0, false},
		{"this", 0, false},
		{"s", 0, false},
	}
	c := qt.New(t)
	for _, tc := range testcases {
		got, ok := lookupDay(tc.word)
		c.Assert(ok, qt.Equals, tc.ok, qt.Commentf("word %q", tc.word))
		if tc.ok {
			c.Assert(got, qt.Equals, tc.want, qt.Commentf("word %q", tc.word))
		}
	}
}

func TestFieldsAssembly(t *testing.T) {
	testcases := []struct {
		desc  string
		frags fragments
		want  string
		ok    bool
	}{
		{
			desc: "nothing recognized",
		},
		{
			desc:  "time only",
			frags: fragments{time: clockTime{hour: 9, hourSet: true}, timeSet: true},
			want:  "0 9 * * *",
			ok:    true,
		},
		{
			desc:  "weekdays win over listed days",
			frags: fragments{weekdays: true, days: 1<<0 | 1<<6},
			want:  "0 0 * * 1-5",
			ok:    true,
		},
		{
			desc:  "weekends win over listed days",
			frags: fragments{weekends: true, days: 1 << 3},
			want:  "0 0 * * 0,6",
			ok:    true,
		},
		{
			desc:  "hour interval ignores time",
			frags: fragments{interval: &interval{unit: unitHour, n: 4}, time: clockTime{hour: 9, hourSet: true}, timeSet: true},
			want:  "0 */4 * * *",
			ok:    true,
		},
		{
			desc:  "every minute ignores days",
			frags: fragments{everyMinute: true, days: 1 << 1},
			want:  "* * * * *",
			ok:    true,
		},
		{
			desc:  "every hour keeps minute",
			frags: fragments{everyHour: true, time: clockTime{minute: 45}, timeSet: true},
			want:  "45 * * * *",
			ok:    true,
		},
		{
			desc:  "daily flag alone",
			frags: fragments{daily: true},
			want:  "0 0 * * *",
			ok:    true,
		},
	}
	for _, tc := range testcases {
		t.Run(tc.desc, func(t *testing.T) {
			c := qt.New(t)
			got, ok := tc.frags.fields()
			c.Assert(ok, qt.Equals, tc.ok)
			if ok {
				c.Assert(got.String(), qt.Equals, tc.want)
			}
		})
	}
}

func TestCronLiteral(t *testing.T) {
	c := qt.New(t)
	c.Assert(isCronLiteral("0 9 * * *"), qt.IsTrue)
	c.Assert(isCronLiteral("*/5 0-6 1,15 * 1-5"), qt.IsTrue)
	c.Assert(isCronLiteral("0 9 * *"), qt.IsFalse)
	c.Assert(isCronLiteral("0 9 * * * *"), qt.IsFalse)
	c.Assert(isCronLiteral("0 9 * * mon"), qt.IsFalse)

	c.Assert(Fields{Minute: "0", Hour: "9"}.Missing(), qt.DeepEquals, []string{"dayOfMonth", "month", "dayOfWeek"})
	c.Assert(Fields{Minute: "0", Hour: "9", DayOfMonth: "*", Month: "*", DayOfWeek: "*"}.Missing(), qt.IsNil)
}

func TestNormalizeMatchesSpans(t *testing.T) {
	c := qt.New(t)
	expr := "  Every\tDAY  at 25:00"
	diags := Validate(expr)
	c.Assert(diags, qt.HasLen, 1)

	norm := Normalize(expr)
	c.Assert(norm, qt.Equals, "every day at 25:00")
	c.Assert(norm[diags[0].Span.Start:diags[0].Span.End], qt.Equals, "25:00")
}
