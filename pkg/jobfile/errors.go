package jobfile

import (
	"schedexpr.dev/pkg/errors"
)

var (
	errRange = errors.Range(
		"jobfile",
		"",

		errors.WithRangeSize(20),
	)

	errNameMissing = errRange.New(
		"Invalid job",
		"Every job needs a name",
	)

	errNameNotKebab = errRange.Newf(
		"Invalid job name",
		"%q must be kebab-case: lowercase letters, digits and dashes, at most 63 characters",
	)

	errDuplicateName = errRange.Newf(
		"Invalid job name",
		"%q is already used by the job on line %d",
	)

	errScheduleSetTwice = errRange.New(
		"Invalid job",
		"The execution schedule was set twice, once in schedule and once in cron. At least one of these must be set, but not both",
	)

	errScheduleMissing = errRange.New(
		"Invalid job",
		"The execution schedule is missing. Set either schedule or cron",
	)

	errInvalidSchedule = errRange.Newf(
		"Invalid schedule",
		"%s",
	)

	errCronFieldsMissing = errRange.Newf(
		"Invalid cron",
		"missing %s",
	)

	errInvalidCron = errRange.New(
		"Invalid cron",
		"The schedule must be a valid cron expression",
	)

	errUnknownTimezone = errRange.Newf(
		"Invalid timezone",
		"unknown timezone %q",
	)
)
