// Package perr provides utilities for handling parse errors.
package perr

import (
	"fmt"
	"strings"
	"sync"

	"schedexpr.dev/pkg/errors"
)

// NewList constructs a new, empty list.
func NewList() *List {
	return &List{}
}

// List is a list of errors.
// The same instance is shared between the stages of a single parse.
type List struct {
	ignoreBailouts bool

	mu   sync.Mutex
	errs []errors.Template
}

// SetIgnoreBailouts makes Bailout and Assert a no-op beyond recording
// the error, so that processing continues and every problem is collected.
func (l *List) SetIgnoreBailouts(val bool) *List {
	l.ignoreBailouts = val
	return l
}

// AsError returns this list an error if there are
// errors in the list, otherwise it returns nil.
func (l *List) AsError() error {
	if l.Len() == 0 {
		return nil
	}

	return &ListAsErr{list: l}
}

// Add adds a templated error
func (l *List) Add(template errors.Template) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errs = append(l.errs, template)
}

// Assert adds the error and bails out.
func (l *List) Assert(template errors.Template) {
	l.Add(template)
	l.Bailout()
}

// Len returns the number of errors reported.
func (l *List) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.errs)
}

// At returns the i'th error. i must be 0 <= i < l.Len().
func (l *List) At(i int) errors.Template {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.errs[i]
}

// Errors returns a copy of the reported errors in the order they were added.
func (l *List) Errors() []errors.Template {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]errors.Template, len(l.errs))
	copy(out, l.errs)
	return out
}

// FormatErrors formats the errors as a newline-separated string.
// If there are no errors it returns "no errors".
func (l *List) FormatErrors() string {
	errs := l.Errors()
	if len(errs) == 0 {
		return "no errors"
	}

	var b strings.Builder
	for _, err := range errs {
		fmt.Fprintf(&b, "%s\n", err.Message())
	}
	return b.String()
}

func (l *List) Bailout() {
	if l.ignoreBailouts {
		return
	}
	panic(bailout{l})
}

type bailout struct{ l *List }

// CatchBailout catches a bailout panic and reports whether there was one.
// If true it also returns the error list that caused the bailout.
// Intended usage is:
//
//	  if l, ok := perr.CatchBailout(recover()); ok {
//		// handle bailout
//	  }
func CatchBailout(recovered any) (l *List, ok bool) {
	if recovered != nil {
		if b, ok := recovered.(bailout); ok {
			return b.l, true
		} else {
			panic(recovered)
		}
	}
	return nil, false
}

// ListAsErr is a wrapper around a List that implements the error interface.
//
// We've not implemented Error on List directly because we want to avoid accidentally
// returning a List as an error, and want to be explicit about it.
type ListAsErr struct {
	list *List
}

var _ error = (*ListAsErr)(nil)

// Error returns the list of errors formatted as a single string.
func (r *ListAsErr) Error() string {
	return strings.TrimSuffix(r.list.FormatErrors(), "\n")
}

// As implements the As method of the error interface.
//
// It supports the following types:
//   - **ListAsErr
//   - **List
func (r *ListAsErr) As(err any) bool {
	switch err := err.(type) {
	case **ListAsErr:
		*err = r
	case **List:
		*err = r.list
	default:
		return false
	}
	return true
}
