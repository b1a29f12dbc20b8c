package jobfile

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"schedexpr.dev/internal/perr"
	"schedexpr.dev/pkg/errors"
	"schedexpr.dev/pkg/schedule"
	"schedexpr.dev/pkg/schedule/schedcache"
)

const maxNameLength = 63

var kebabName = regexp.MustCompile(`^[a-z]([-a-z0-9]*[a-z0-9])?$`)

// Result is the outcome of checking a single job.
type Result struct {
	Job Job

	// Cron is the job's schedule as a cron expression.
	// It is empty if the job has problems.
	Cron string

	// Location is the timezone the schedule runs in.
	// It is nil if the job has problems.
	Location *time.Location

	errs *perr.List
}

// OK reports whether the job has no problems.
func (r *Result) OK() bool {
	return r.errs.Len() == 0
}

// Problems returns the problems found in the job, in the order found.
func (r *Result) Problems() []errors.Template {
	return r.errs.Errors()
}

// Err returns the problems as an error, or nil if there are none.
func (r *Result) Err() error {
	return r.errs.AsError()
}

type options struct {
	cache       *schedcache.Cache
	concurrency int
	loc         *time.Location
	log         zerolog.Logger
}

// Option configures Check.
type Option func(*options)

// WithCache resolves schedule expressions through c.
func WithCache(c *schedcache.Cache) Option {
	return func(o *options) {
		o.cache = c
	}
}

// WithConcurrency limits the number of jobs checked at the same time.
// The default is 8.
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = n
	}
}

// WithDefaultLocation sets the timezone of jobs that do not name one.
// The default is UTC.
func WithDefaultLocation(loc *time.Location) Option {
	return func(o *options) {
		o.loc = loc
	}
}

// WithLogger makes Check log each job it checks.
func WithLogger(log zerolog.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

// Check checks all jobs and returns one result per job, in the order given.
// Jobs are checked concurrently. The error is non-nil only if ctx is done
// before all jobs are checked.
func Check(ctx context.Context, jobs []Job, opts ...Option) ([]Result, error) {
	o := options{concurrency: 8, loc: time.UTC, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.cache == nil {
		o.cache = schedcache.New(nil, len(jobs))
	}
	if o.loc == nil {
		o.loc = time.UTC
	}

	results := make([]Result, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(o.concurrency, 1))
	for i, job := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = checkJob(&o, job)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Names must be unique across the file.
	seen := make(map[string]int, len(results))
	for i := range results {
		name := results[i].Job.Name
		if name == "" {
			continue
		}
		if first, ok := seen[name]; ok {
			results[i].errs.Add(errDuplicateName(name, results[first].Job.Line))
			results[i].Cron, results[i].Location = "", nil
			continue
		}
		seen[name] = i
	}
	return results, nil
}

func checkJob(o *options, job Job) Result {
	errs := perr.NewList().SetIgnoreBailouts(true)
	res := Result{Job: job, errs: errs}

	checkName(errs, job.Name)
	cron := resolveSchedule(o, errs, job)
	loc := o.loc
	if job.Timezone != "" {
		l, err := time.LoadLocation(job.Timezone)
		if err != nil {
			errs.Add(errUnknownTimezone(job.Timezone).Wrapping(err))
		}
		loc = l
	}

	if errs.Len() == 0 {
		res.Cron, res.Location = cron, loc
	}
	o.log.Debug().Str("job", job.Name).Str("cron", res.Cron).Int("problems", errs.Len()).Msg("checked job")
	return res
}

func checkName(errs *perr.List, name string) {
	switch {
	case strings.TrimSpace(name) == "":
		errs.Add(errNameMissing)
	case len(name) > maxNameLength || !kebabName.MatchString(name):
		errs.Add(errNameNotKebab(name))
	}
}

// resolveSchedule returns the job's cron expression, reporting any problem to errs.
func resolveSchedule(o *options, errs *perr.List, job Job) string {
	expr := strings.TrimSpace(job.Schedule)
	switch {
	case expr != "" && job.Cron != nil:
		errs.Add(errScheduleSetTwice)
		return ""

	case expr != "":
		if diags := o.cache.Validate(job.Schedule); len(diags) > 0 {
			for _, d := range diags {
				t := errInvalidSchedule(d.Message).AtSpan(d.Span.Start, d.Span.End)
				t.Kind = string(d.Kind)
				if d.Help != "" {
					t = t.AtSpan(d.Span.Start, d.Span.End, errors.AsHelp(d.Help))
				}
				errs.Add(t)
			}
			return ""
		}
		cron, err := o.cache.Parse(job.Schedule)
		if err != nil {
			errs.Add(errInvalidSchedule(err.Error()))
			return ""
		}
		return compile(errs, cron)

	case job.Cron != nil:
		if missing := job.Cron.Missing(); len(missing) > 0 {
			errs.Add(errCronFieldsMissing(strings.Join(missing, ", ")))
			return ""
		}
		return compile(errs, job.Cron.String())

	default:
		errs.Add(errScheduleMissing)
		return ""
	}
}

// compile checks that every field of cron is within range.
func compile(errs *perr.List, cron string) string {
	if _, err := schedule.Compile(cron); err != nil {
		errs.Add(errInvalidCron.Wrapping(err))
		return ""
	}
	return cron
}
