package future

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

var (
	// ErrTimeout is the rejection cause of a Future whose Timeout timer
	// fired before the Future reached a terminal state.
	ErrTimeout = errors.New("future timeout")

	// ErrUnspecified is returned from Await when the Future was rejected
	// without a specific cause.
	ErrUnspecified = errors.New("future rejected with no cause")

	// ErrAggregateFailure is the rejection cause of an Any call whose
	// inputs all rejected. The individual causes, if any, are reachable
	// through AggregateError.
	ErrAggregateFailure = errors.New("all futures rejected")
)

// PanicError wraps a panic that happened inside a producer computation or
// a chained transform. The panic is never allowed to escape the future
// boundary; it surfaces as a rejection carrying this error instead.
type PanicError struct {
	V any
}

func (e PanicError) Error() string {
	return fmt.Sprintf("future panicked: %v", e.V)
}

// AggregateError carries the combined rejection causes of an Any call
// whose inputs all rejected.
// It matches ErrAggregateFailure through errors.Is.
type AggregateError struct {
	combined error
}

func newAggregateError(errs []error) error {
	return &AggregateError{combined: multierr.Combine(errs...)}
}

func (e *AggregateError) Error() string {
	if e.combined == nil {
		return ErrAggregateFailure.Error()
	}
	return fmt.Sprintf("%s: %s", ErrAggregateFailure.Error(), e.combined.Error())
}

// Errors returns the individual rejection causes, excluding nil ones.
func (e *AggregateError) Errors() []error {
	return multierr.Errors(e.combined)
}

func (e *AggregateError) Unwrap() error { return e.combined }

func (e *AggregateError) Is(target error) bool { return target == ErrAggregateFailure }
