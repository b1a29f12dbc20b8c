package schedule

import (
	"strconv"
)

// weekdaySet is a set of cron days of the week, bit i set for day i.
type weekdaySet uint8

func (s *weekdaySet) add(day int) {
	*s |= 1 << uint(day)
}

func (s weekdaySet) empty() bool {
	return s == 0
}

// days returns the days in the set in ascending order.
func (s weekdaySet) days() []int {
	var out []int
	for d := 0; d < 7; d++ {
		if s&(1<<uint(d)) != 0 {
			out = append(out, d)
		}
	}
	return out
}

type intervalUnit int

const (
	unitMinute intervalUnit = iota + 1
	unitHour
)

type interval struct {
	unit intervalUnit
	n    int
}

// clockTime is a time of day. A minute-only fragment (":30") leaves the hour unset.
type clockTime struct {
	hour    int
	hourSet bool
	minute  int
}

// fragments accumulates what the classifiers recognized in one expression.
type fragments struct {
	time    clockTime
	timeSet bool

	days       weekdaySet
	dayOfMonth int // 0 when unset
	interval   *interval

	weekdays    bool
	weekends    bool
	daily       bool
	everyMinute bool
	everyHour   bool
}

func (f *fragments) setTime(c clock) {
	f.time = clockTime{hour: c.hour, hourSet: true, minute: c.minute}
	f.timeSet = true
}

// setMinute sets the minute and leaves the hour as it was.
func (f *fragments) setMinute(minute int) {
	f.time.minute = minute
	f.timeSet = true
}

// recognized reports whether anything at all was understood.
func (f *fragments) recognized() bool {
	return f.timeSet || !f.days.empty() || f.dayOfMonth != 0 || f.interval != nil ||
		f.weekdays || f.weekends || f.daily || f.everyMinute || f.everyHour
}

// fields assembles the cron fields. It reports false if nothing was recognized.
func (f *fragments) fields() (Fields, bool) {
	if !f.recognized() {
		return Fields{}, false
	}

	if iv := f.interval; iv != nil {
		step := "*/" + strconv.Itoa(iv.n)
		if iv.unit == unitHour {
			return Fields{Minute: "0", Hour: step, DayOfMonth: "*", Month: "*", DayOfWeek: "*"}, true
		}
		return Fields{Minute: step, Hour: "*", DayOfMonth: "*", Month: "*", DayOfWeek: "*"}, true
	}

	if f.everyMinute {
		return Fields{Minute: "*", Hour: "*", DayOfMonth: "*", Month: "*", DayOfWeek: "*"}, true
	}

	if f.everyHour {
		return Fields{Minute: strconv.Itoa(f.time.minute), Hour: "*", DayOfMonth: "*", Month: "*", DayOfWeek: "*"}, true
	}

	out := Fields{
		Minute:     strconv.Itoa(f.time.minute),
		Hour:       "0",
		DayOfMonth: "*",
		Month:      "*",
		DayOfWeek:  f.dayOfWeek(),
	}
	if f.time.hourSet {
		out.Hour = strconv.Itoa(f.time.hour)
	}
	if f.dayOfMonth != 0 {
		out.DayOfMonth = strconv.Itoa(f.dayOfMonth)
	}
	return out, true
}

// dayOfWeek renders the day-of-week field. Without any day information it is "*",
// which also leaves a day-of-month on its own.
func (f *fragments) dayOfWeek() string {
	switch {
	case f.weekdays:
		return "1-5"
	case f.weekends:
		return "0,6"
	case !f.days.empty():
		return formatIntList(f.days.days())
	default:
		return "*"
	}
}
