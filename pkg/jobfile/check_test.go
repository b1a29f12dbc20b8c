package jobfile

import (
	"context"
	"testing"
	"time"
	_ "time/tzdata"

	qt "github.com/frankban/quicktest"
	"go.uber.org/goleak"

	"schedexpr.dev/pkg/schedule"
	"schedexpr.dev/pkg/schedule/schedcache"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func fields(minute, hour, dom, month, dow string) *schedule.Fields {
	return &schedule.Fields{Minute: minute, Hour: hour, DayOfMonth: dom, Month: month, DayOfWeek: dow}
}

func TestCheck(t *testing.T) {
	testcases := []struct {
		desc     string
		job      Job
		wantCron string
		wantErrs []string
	}{
		{
			desc:     "schedule expression",
			job:      Job{Name: "nightly-report", Schedule: "weekdays at 8am"},
			wantCron: "0 8 * * 1-5",
		},
		{
			desc:     "cron literal as schedule",
			job:      Job{Name: "hourly", Schedule: "0 * * * *"},
			wantCron: "0 * * * *",
		},
		{
			desc:     "cron fields",
			job:      Job{Name: "rotate-logs", Cron: fields("0", "*/6", "*", "*", "*")},
			wantCron: "0 */6 * * *",
		},
		{
			desc:     "missing name",
			job:      Job{Schedule: "every hour"},
			wantErrs: []string{"Invalid job: Every job needs a name"},
		},
		{
			desc: "name not kebab-case",
			job:  Job{Name: "Nightly_Report", Schedule: "every hour"},
			wantErrs: []string{
				`Invalid job name: "Nightly_Report" must be kebab-case: lowercase letters, digits and dashes, at most 63 characters`,
			},
		},
		{
			desc: "schedule set twice",
			job:  Job{Name: "twice", Schedule: "every hour", Cron: fields("0", "*", "*", "*", "*")},
			wantErrs: []string{
				"Invalid job: The execution schedule was set twice, once in schedule and once in cron. At least one of these must be set, but not both",
			},
		},
		{
			desc:     "no schedule",
			job:      Job{Name: "never"},
			wantErrs: []string{"Invalid job: The execution schedule is missing. Set either schedule or cron"},
		},
		{
			desc: "every schedule problem is reported",
			job:  Job{Name: "broken", Schedule: "every 0 minutes at 25:00"},
			wantErrs: []string{
				"Invalid schedule: Invalid interval: minutes must be 1-59, got 0",
				"Invalid schedule: Invalid time: hour must be 0-23 for 24-hour format, got 25",
			},
		},
		{
			desc: "cron literal out of range",
			job:  Job{Name: "broken", Schedule: "61 * * * *"},
			wantErrs: []string{
				"Invalid cron: The schedule must be a valid cron expression\n\n" +
					`invalid cron expression "61 * * * *": end of range (61) above maximum (59): 61`,
			},
		},
		{
			desc:     "cron fields missing",
			job:      Job{Name: "partial", Cron: &schedule.Fields{Minute: "0", Hour: "9"}},
			wantErrs: []string{"Invalid cron: missing dayOfMonth, month, dayOfWeek"},
		},
		{
			desc: "problems in several places",
			job:  Job{Name: "Bad Name", Schedule: "whenever"},
			wantErrs: []string{
				`Invalid job name: "Bad Name" must be kebab-case: lowercase letters, digits and dashes, at most 63 characters`,
				`Invalid schedule: Could not parse schedule expression: "whenever"`,
			},
		},
	}
	for _, tc := range testcases {
		t.Run(tc.desc, func(t *testing.T) {
			c := qt.New(t)
			results, err := Check(context.Background(), []Job{tc.job})
			c.Assert(err, qt.IsNil)
			c.Assert(results, qt.HasLen, 1)

			res := results[0]
			var msgs []string
			for _, p := range res.Problems() {
				msgs = append(msgs, p.Message())
			}
			c.Assert(msgs, qt.DeepEquals, tc.wantErrs)
			c.Assert(res.Cron, qt.Equals, tc.wantCron)
			c.Assert(res.OK(), qt.Equals, len(tc.wantErrs) == 0)
			if res.OK() {
				c.Assert(res.Err(), qt.IsNil)
				c.Assert(res.Location, qt.Equals, time.UTC)
			} else {
				c.Assert(res.Err(), qt.Not(qt.IsNil))
				c.Assert(res.Location, qt.IsNil)
			}
		})
	}
}

func TestCheckTimezone(t *testing.T) {
	c := qt.New(t)
	stockholm, err := time.LoadLocation("Europe/Stockholm")
	c.Assert(err, qt.IsNil)

	results, err := Check(context.Background(), []Job{
		{Name: "local", Schedule: "every day at 9am"},
		{Name: "tokyo", Schedule: "every day at 9am", Timezone: "Asia/Tokyo"},
		{Name: "nowhere", Schedule: "every day at 9am", Timezone: "Mars/Olympus_Mons"},
	}, WithDefaultLocation(stockholm))
	c.Assert(err, qt.IsNil)

	c.Assert(results[0].Location, qt.Equals, stockholm)
	c.Assert(results[1].Location.String(), qt.Equals, "Asia/Tokyo")
	c.Assert(results[2].OK(), qt.IsFalse)
	c.Assert(results[2].Problems()[0].Summary, qt.Matches, `(?s)unknown timezone "Mars/Olympus_Mons".*`)
}

func TestCheckDuplicateNames(t *testing.T) {
	c := qt.New(t)
	results, err := Check(context.Background(), []Job{
		{Name: "report", Schedule: "every day at 9am", Line: 2},
		{Name: "other", Schedule: "every hour", Line: 5},
		{Name: "report", Schedule: "mondays at noon", Line: 8},
	})
	c.Assert(err, qt.IsNil)
	c.Assert(results[0].OK(), qt.IsTrue)
	c.Assert(results[1].OK(), qt.IsTrue)
	c.Assert(results[2].OK(), qt.IsFalse)
	c.Assert(results[2].Cron, qt.Equals, "")
	c.Assert(results[2].Err(), qt.ErrorMatches, `Invalid job name: "report" is already used by the job on line 2`)
}

func TestCheckKeepsOrder(t *testing.T) {
	c := qt.New(t)
	exprs := []string{"every minute", "every hour", "every day at noon", "mondays", "on the 15th", "weekends"}
	want := []string{"* * * * *", "0 * * * *", "0 12 * * *", "0 0 * * 1", "0 0 15 * *", "0 0 * * 0,6"}

	var jobs []Job
	for i := 0; i < 10; i++ {
		for j, expr := range exprs {
			jobs = append(jobs, Job{Name: "job-" + string(rune('a'+i)) + "-" + string(rune('a'+j)), Schedule: expr})
		}
	}

	cache := schedcache.New(nil, 16)
	results, err := Check(context.Background(), jobs, WithCache(cache), WithConcurrency(3))
	c.Assert(err, qt.IsNil)
	c.Assert(results, qt.HasLen, len(jobs))
	for i, res := range results {
		c.Assert(res.Job, qt.DeepEquals, jobs[i])
		c.Assert(res.Cron, qt.Equals, want[i%len(exprs)])
	}
	c.Assert(cache.Len(), qt.Equals, len(exprs))
}

func TestCheckCanceled(t *testing.T) {
	c := qt.New(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := Check(ctx, []Job{{Name: "a", Schedule: "every hour"}})
	c.Assert(err, qt.ErrorIs, context.Canceled)
	c.Assert(results, qt.IsNil)
}
