package schedule

import (
	cerrors "github.com/cockroachdb/errors"
	"github.com/rs/zerolog"

	"schedexpr.dev/pkg/errors"
)

// Kind classifies a Diagnostic.
type Kind string

const (
	KindEmptyExpression   Kind = "empty_expression"
	KindCouldNotParse     Kind = "could_not_parse"
	KindInvalidTime       Kind = "invalid_time"
	KindInvalidDayOfMonth Kind = "invalid_day_of_month"
	KindInvalidInterval   Kind = "invalid_interval"
)

const supportedPatterns = `Supported patterns include "every day at 9am", "weekdays at 8am", ` +
	`"mondays at noon", "mon, wed, fri at 8am", "on the 15th at noon" and "every 15 minutes". ` +
	`A five-field cron expression is accepted as is.`

var (
	errRange = errors.Range(
		"schedule",
		"",

		errors.WithRangeSize(20),
	)

	errEmptyExpression = errRange.New(
		"Schedule expression cannot be empty",
		"",
		errors.WithKind(string(KindEmptyExpression)),
	)

	errCouldNotParse = errRange.Newf(
		"Could not parse schedule expression",
		"%q",
		errors.WithKind(string(KindCouldNotParse)),
		errors.WithDetails(supportedPatterns),
	)

	errDidYouMean = errRange.Newf(
		"Could not parse schedule expression",
		"%q. Did you mean %q?",
		errors.WithKind(string(KindCouldNotParse)),
	)

	errInvalid12HourTime = errRange.Newf(
		"Invalid time",
		"hour must be 1-12 for 12-hour format, got %d",
		errors.WithKind(string(KindInvalidTime)),
	)

	errInvalid24HourTime = errRange.Newf(
		"Invalid time",
		"hour must be 0-23 for 24-hour format, got %d",
		errors.WithKind(string(KindInvalidTime)),
	)

	errInvalidMinute = errRange.Newf(
		"Invalid time",
		"minute must be 0-59, got %d",
		errors.WithKind(string(KindInvalidTime)),
	)

	errInvalidDayOfMonth = errRange.Newf(
		"Invalid day of month",
		"must be 1-31, got %v",
		errors.WithKind(string(KindInvalidDayOfMonth)),
	)

	errInvalidMinuteInterval = errRange.Newf(
		"Invalid interval",
		"minutes must be 1-59, got %v",
		errors.WithKind(string(KindInvalidInterval)),
	)

	errInvalidHourInterval = errRange.Newf(
		"Invalid interval",
		"hours must be 1-23, got %v",
		errors.WithKind(string(KindInvalidInterval)),
	)
)

// Span is a byte range [Start, End) of the normalized expression.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Diagnostic describes a single problem found in a schedule expression.
type Diagnostic struct {
	Kind    Kind   `json:"type"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
	Help    string `json:"help,omitempty"`

	// Span locates the problem in the normalized expression.
	// It is the zero value if the problem concerns the whole expression.
	Span Span `json:"span"`
}

func diagnosticFrom(t errors.Template) Diagnostic {
	d := Diagnostic{
		Kind:    Kind(t.Kind),
		Code:    t.Code,
		Message: t.Message(),
		Detail:  t.Detail,
		Help:    t.Help(),
	}
	if loc, ok := t.Primary(); ok {
		d.Span = Span{Start: loc.Start, End: loc.End}
	}
	return d
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler.
func (d Diagnostic) MarshalZerologObject(evt *zerolog.Event) {
	evt.Str("kind", string(d.Kind)).
		Int("code", d.Code).
		Str("message", d.Message)
	if d.Span != (Span{}) {
		evt.Int("start", d.Span.Start).Int("end", d.Span.End)
	}
}

// Error is the error returned by Parse.
// It carries the first problem found in the expression.
type Error struct {
	Diagnostic
	Expression string // the expression as given to Parse
}

func (e *Error) Error() string {
	return e.Message
}

// IsKind reports whether err is, or wraps, an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return cerrors.As(err, &e) && e.Kind == kind
}
