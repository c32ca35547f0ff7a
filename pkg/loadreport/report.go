// Package loadreport accumulates validation problems found while loading
// configuration, so that every problem can be shown to the user at once.
package loadreport

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Kind classifies a [KeyError].
type Kind int

const (
	// KindMissing means a required key was absent from the store.
	KindMissing Kind = iota
	// KindMalformed means a value could not be parsed as its declared type.
	KindMalformed
	// KindOutOfRange means a value parsed but violated its declared bounds.
	KindOutOfRange
)

var (
	ErrMissingKey     = errors.New("missing key")
	ErrMalformedValue = errors.New("malformed value")
	ErrOutOfRange     = errors.New("value out of range")
)

func (k Kind) String() string {
	switch k {
	case KindMissing:
		return "missing"
	case KindMalformed:
		return "malformed"
	case KindOutOfRange:
		return "out of range"
	}

	return fmt.Sprintf("kind(%d)", int(k))
}

func (k Kind) sentinel() error {
	switch k {
	case KindMissing:
		return ErrMissingKey
	case KindMalformed:
		return ErrMalformedValue
	case KindOutOfRange:
		return ErrOutOfRange
	}

	return nil
}

// KeyError is a single validation problem for one key.
type KeyError struct {
	Key     string
	Message string
	Kind    Kind
}

func (e KeyError) Error() string {
	return fmt.Sprintf("%s: %s", e.Key, e.Message)
}

// Is reports whether target is the sentinel for the error's [Kind].
func (e KeyError) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

// Report collects [KeyError]s. The zero value is ready to use.
type Report struct {
	errs []KeyError
}

// New returns an empty [Report].
func New() *Report {
	return &Report{}
}

// AddError records a problem for key. Recording never stops the caller from
// continuing its checks.
func (r *Report) AddError(key string, kind Kind, msg string) {
	r.errs = append(r.errs, KeyError{Key: key, Kind: kind, Message: msg})
}

// ErrorFree reports whether no errors have been recorded so far.
func (r *Report) ErrorFree() bool {
	return len(r.errs) == 0
}

// Errors returns a copy of the recorded errors in the order they were added.
func (r *Report) Errors() []KeyError {
	return slices.Clone(r.errs)
}

// ErrorsFor returns the errors recorded for key.
func (r *Report) ErrorsFor(key string) []KeyError {
	var out []KeyError
	for _, e := range r.errs {
		if e.Key == key {
			out = append(out, e)
		}
	}

	return out
}

// Len returns the number of recorded errors.
func (r *Report) Len() int {
	return len(r.errs)
}

// Err joins all recorded errors, or returns nil when the report is error-free.
func (r *Report) Err() error {
	if r.ErrorFree() {
		return nil
	}

	errs := make([]error, 0, len(r.errs))
	for _, e := range r.errs {
		errs = append(errs, e)
	}

	return errors.Join(errs...)
}

func (r *Report) String() string {
	if r.ErrorFree() {
		return "no errors"
	}

	lines := make([]string, 0, len(r.errs))
	for _, e := range r.errs {
		lines = append(lines, fmt.Sprintf("%s (%s)", e.Error(), e.Kind))
	}

	return strings.Join(lines, "\n")
}
