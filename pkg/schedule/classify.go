package schedule

import (
	"regexp"
	"strconv"

	"github.com/rs/zerolog"

	"schedexpr.dev/internal/perr"
	"schedexpr.dev/pkg/errors"
)

var (
	weekdaysRe    = regexp.MustCompile(`\bweekdays?\b`)
	weekendsRe    = regexp.MustCompile(`\bweekends?\b`)
	dailyRe       = regexp.MustCompile(`\b(?:daily|every day)\b`)
	everyMinuteRe = regexp.MustCompile(`\b(?:every minute|minutely)\b`)
	everyHourRe   = regexp.MustCompile(`\b(?:every hour|hourly)\b`)
	firstRe       = regexp.MustCompile(`\bfirst\b`)
	monthRe       = regexp.MustCompile(`\bmonth\b`)

	numberRe       = regexp.MustCompile(`^\d+$`)
	intervalUnitRe = regexp.MustCompile(`^(?:(minutes?|mins?)|(hours?|hrs?))$`)
	hourMinuteRe   = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?$`)
	meridiemRe     = regexp.MustCompile(`^(am|pm)$`)
	time12Re       = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?(am|pm)$`)
	time24Re       = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
	minuteOnlyRe   = regexp.MustCompile(`^:(\d{1,2})$`)
	dayRangeRe     = regexp.MustCompile(`^([a-z]+)-([a-z]+)$`)
	ordinalRe      = regexp.MustCompile(`^(\d+)(?:st|nd|rd|th)$`)
)

// pass holds the state of classifying a single expression.
type pass struct {
	log   zerolog.Logger
	errs  *perr.List
	frags fragments
}

// classifier tries to recognize a fragment at toks[i].
// It returns the number of tokens consumed, or 0 if it does not apply.
// A recognized fragment with an out of range value is reported on p.errs
// and still consumes its tokens.
type classifier struct {
	name string
	fn   func(p *pass, toks []token, i int) int
}

// classifiers in priority order.
var classifiers = []classifier{
	{"interval", classifyInterval},
	{"two-token time", classifyTwoTokenTime},
	{"time", classifyTime},
	{"day range", classifyDayRange},
	{"day", classifyDay},
	{"ordinal", classifyOrdinal},
	{"period", classifyPeriod},
}

// prescan sets the flags that are found anywhere in the expression.
func (p *pass) prescan(norm string) {
	f := &p.frags
	f.weekdays = weekdaysRe.MatchString(norm)
	f.weekends = weekendsRe.MatchString(norm)
	f.daily = dailyRe.MatchString(norm)
	f.everyMinute = everyMinuteRe.MatchString(norm)
	f.everyHour = everyHourRe.MatchString(norm)
	if firstRe.MatchString(norm) && monthRe.MatchString(norm) {
		f.dayOfMonth = 1
	}

	p.log.Trace().
		Bool("weekdays", f.weekdays).
		Bool("weekends", f.weekends).
		Bool("daily", f.daily).
		Bool("every_minute", f.everyMinute).
		Bool("every_hour", f.everyHour).
		Int("day_of_month", f.dayOfMonth).
		Msg("prescanned flags")
}

// classify walks the tokens left to right. Tokens no classifier
// recognizes are skipped.
func (p *pass) classify(toks []token) {
	for i := 0; i < len(toks); {
		n := 0
		for _, c := range classifiers {
			if n = c.fn(p, toks, i); n > 0 {
				p.log.Trace().Str("token", toks[i].text).Str("classifier", c.name).Int("consumed", n).Msg("classified")
				break
			}
		}
		if n == 0 {
			p.log.Trace().Str("token", toks[i].text).Msg("skipped unrecognized token")
			n = 1
		}
		i += n
	}
}

// report records an out of range value covering toks[from:to].
func (p *pass) report(t errors.Template, toks []token, from, to int) {
	p.errs.Assert(t.AtSpan(toks[from].start, toks[to-1].end))
}

func classifyInterval(p *pass, toks []token, i int) int {
	if i+1 >= len(toks) || !numberRe.MatchString(toks[i].text) {
		return 0
	}
	m := intervalUnitRe.FindStringSubmatch(toks[i+1].text)
	if m == nil {
		return 0
	}

	n, got := count(toks[i].text)
	if m[1] != "" {
		if n < 1 || n > 59 {
			t := errInvalidMinuteInterval(got)
			if n >= 60 && n%60 == 0 && n/60 <= 23 {
				t = t.AtSpan(toks[i].start, toks[i+1].end, errors.AsHelp(hoursHelp(n/60)))
			}
			p.report(t, toks, i, i+2)
			return 2
		}
		p.frags.interval = &interval{unit: unitMinute, n: n}
		return 2
	}

	if n < 1 || n > 23 {
		p.report(errInvalidHourInterval(got), toks, i, i+2)
		return 2
	}
	p.frags.interval = &interval{unit: unitHour, n: n}
	return 2
}

// count parses a run of digits. A value too large for an int yields -1,
// which is out of every range, and the digits themselves for the message.
func count(digits string) (int, any) {
	n, err := strconv.Atoi(digits)
	if err != nil {
		return -1, digits
	}
	return n, n
}

func hoursHelp(hours int) string {
	if hours == 1 {
		return `try "every hour"`
	}
	return `try "every ` + strconv.Itoa(hours) + ` hours"`
}

// classifyTwoTokenTime handles "9 am" and "9:30 pm".
func classifyTwoTokenTime(p *pass, toks []token, i int) int {
	if i+1 >= len(toks) || !meridiemRe.MatchString(toks[i+1].text) {
		return 0
	}
	m := hourMinuteRe.FindStringSubmatch(toks[i].text)
	if m == nil {
		return 0
	}
	c, tmpl, ok := clock12(m[1], m[2], toks[i+1].text)
	if !ok {
		p.report(tmpl, toks, i, i+2)
		return 2
	}
	p.frags.setTime(c)
	return 2
}

// classifyTime handles single-token times: named times, ":MM", 12-hour and 24-hour times.
func classifyTime(p *pass, toks []token, i int) int {
	text := toks[i].text
	if c, ok := namedTimes[text]; ok {
		p.frags.setTime(c)
		return 1
	}

	if m := minuteOnlyRe.FindStringSubmatch(text); m != nil {
		minute, _ := strconv.Atoi(m[1])
		if minute > 59 {
			p.report(errInvalidMinute(minute), toks, i, i+1)
			return 1
		}
		p.frags.setMinute(minute)
		return 1
	}

	if m := time12Re.FindStringSubmatch(text); m != nil {
		c, tmpl, ok := clock12(m[1], m[2], m[3])
		if !ok {
			p.report(tmpl, toks, i, i+1)
			return 1
		}
		p.frags.setTime(c)
		return 1
	}

	if m := time24Re.FindStringSubmatch(text); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		switch {
		case hour > 23:
			p.report(errInvalid24HourTime(hour), toks, i, i+1)
		case minute > 59:
			p.report(errInvalidMinute(minute), toks, i, i+1)
		default:
			p.frags.setTime(clock{hour: hour, minute: minute})
		}
		return 1
	}

	return 0
}

// clock12 converts a 12-hour time to a clock, or returns the error to report.
func clock12(hourStr, minuteStr, meridiem string) (clock, errors.Template, bool) {
	hour, _ := strconv.Atoi(hourStr)
	minute := 0
	if minuteStr != "" {
		minute, _ = strconv.Atoi(minuteStr)
	}

	if hour < 1 || hour > 12 {
		return clock{}, errInvalid12HourTime(hour), false
	}
	if minute > 59 {
		return clock{}, errInvalidMinute(minute), false
	}

	switch {
	case meridiem == "am" && hour == 12:
		hour = 0
	case meridiem == "pm" && hour != 12:
		hour += 12
	}
	return clock{hour: hour, minute: minute}, errors.Template{}, true
}

// classifyDayRange handles "mon-fri", wrapping past saturday for "fri-sun".
func classifyDayRange(p *pass, toks []token, i int) int {
	m := dayRangeRe.FindStringSubmatch(toks[i].text)
	if m == nil {
		return 0
	}
	from, ok1 := lookupDay(m[1])
	to, ok2 := lookupDay(m[2])
	if !ok1 || !ok2 {
		return 0
	}

	for d := from; ; d = (d + 1) % 7 {
		p.frags.days.add(d)
		if d == to {
			break
		}
	}
	return 1
}

func classifyDay(p *pass, toks []token, i int) int {
	day, ok := lookupDay(toks[i].text)
	if !ok {
		return 0
	}
	p.frags.days.add(day)
	return 1
}

func classifyOrdinal(p *pass, toks []token, i int) int {
	m := ordinalRe.FindStringSubmatch(toks[i].text)
	if m == nil {
		return 0
	}
	day, got := count(m[1])
	if day < 1 || day > 31 {
		p.report(errInvalidDayOfMonth(got), toks, i, i+1)
		return 1
	}
	p.frags.dayOfMonth = day
	return 1
}

func classifyPeriod(p *pass, toks []token, i int) int {
	c, ok := periods[toks[i].text]
	if !ok {
		return 0
	}
	p.frags.setTime(c)
	return 1
}
