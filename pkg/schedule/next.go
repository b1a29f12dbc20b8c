package schedule

import (
	"time"

	"github.com/cockroachdb/errors"
	cronparser "github.com/robfig/cron/v3"
)

var cronjobParser = cronparser.NewParser(cronparser.Minute | cronparser.Hour | cronparser.Dom | cronparser.Month | cronparser.Dow)

// Compile parses a cron expression, such as one returned by Parse,
// into a schedule that computes activation times.
// Unlike Parse it checks that every field value is within range.
func Compile(cron string) (cronparser.Schedule, error) {
	sched, err := cronjobParser.Parse(cron)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid cron expression %q", cron)
	}
	return sched, nil
}

// Upcoming returns up to n activation times of expression strictly after from,
// using a parser that does not log. See (*Parser).Upcoming.
func Upcoming(expression string, from time.Time, loc *time.Location, n int) ([]time.Time, error) {
	return defaultParser.Upcoming(expression, from, loc, n)
}

// Upcoming parses expression and returns up to n activation times strictly
// after from, expressed in loc (UTC if nil). Fewer times are returned if the
// schedule never fires again, as for "0 0 30 2 *".
func (p *Parser) Upcoming(expression string, from time.Time, loc *time.Location, n int) ([]time.Time, error) {
	cron, err := p.Parse(expression)
	if err != nil {
		return nil, err
	}
	sched, err := Compile(cron)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		loc = time.UTC
	}
	if n < 0 {
		n = 0
	}

	times := make([]time.Time, 0, n)
	t := from.In(loc)
	for len(times) < n {
		t = sched.Next(t)
		if t.IsZero() {
			break
		}
		times = append(times, t)
	}
	p.log.Debug().Str("cron", cron).Int("count", len(times)).Msg("computed upcoming times")
	return times, nil
}
