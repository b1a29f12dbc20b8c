package errors

import (
	"strings"
)

// Template represents a template for a new error.
//
// It itself is not an error; error lists collect templates and callers
// convert them into their own error types.
type Template struct {
	Code      int
	Kind      string
	Title     string
	Summary   string
	Detail    string
	Cause     error
	Locations []SrcLocation
}

// TemplateOption can be passed into the [Range] when creating a new Template
type TemplateOption func(*Template)

// WithKind sets the machine readable kind of the error.
func WithKind(kind string) TemplateOption {
	return func(template *Template) {
		template.Kind = kind
	}
}

// WithDetails will setup a template so it uses a different details to the
// range default
func WithDetails(details string) TemplateOption {
	return func(template *Template) {
		template.Detail = details
	}
}

// Wrapping wraps the given error with the template.
//
// It will append the given error to the summary of the template
// as well as setting the cause of the template to the given error.
func (t Template) Wrapping(err error) Template {
	if err == nil {
		return t
	}
	t.Summary += "\n\n" + err.Error()
	t.Summary = strings.TrimSpace(t.Summary)

	t.Cause = err
	return t
}

// Message renders the one-line message of the error: the title,
// followed by the summary if there is one.
func (t Template) Message() string {
	if t.Summary == "" {
		return t.Title
	}
	return t.Title + ": " + t.Summary
}

// AtSpan adds the byte range [start, end) of the expression to the template.
// If end is before start the location covers only start.
//
// Example:
//
//	errInvalidTime(hour).AtSpan(tok.start, tok.end, errors.AsHelp("use 0-23"))
func (t Template) AtSpan(start, end int, options ...LocationOption) Template {
	if end < start {
		end = start
	}
	location := SrcLocation{LocType: LocError, Start: start, End: end}
	for _, o := range options {
		o(&location)
	}
	t.Locations = append(t.Locations, location)
	return t
}

// Primary returns the first error location of the template, if any.
func (t Template) Primary() (SrcLocation, bool) {
	for _, loc := range t.Locations {
		if loc.LocType == LocError {
			return loc, true
		}
	}
	return SrcLocation{}, false
}

// Help returns the text of all help locations joined by newlines.
func (t Template) Help() string {
	var help []string
	for _, loc := range t.Locations {
		if loc.LocType == LocHelp && loc.Text != "" {
			help = append(help, loc.Text)
		}
	}
	return strings.Join(help, "\n")
}
