// validate.go: validation verdicts and validators for configured options
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package options

import "strings"

// ValidateResult is the outcome of a single options validation.
//
// A result is in exactly one of three states: succeeded, skipped, or failed.
// Skipped means the validator's name filter did not match the requested name
// and the validator contributed nothing. The factory never constructs a
// succeeded result itself; it only aggregates failures.
type ValidateResult struct {
	succeeded bool
	skipped   bool
	failed    bool
	failures  []string
}

// Success returns a result for a validation that passed.
func Success() ValidateResult {
	return ValidateResult{succeeded: true}
}

// Skip returns a result for a validation that did not apply to the
// requested name.
func Skip() ValidateResult {
	return ValidateResult{skipped: true}
}

// Fail returns a failed result with a single failure message.
func Fail(failure string) ValidateResult {
	return FailMany([]string{failure})
}

// FailMany returns a failed result carrying every given failure message.
func FailMany(failures []string) ValidateResult {
	copied := make([]string, len(failures))
	copy(copied, failures)
	return ValidateResult{failed: true, failures: copied}
}

// Succeeded reports whether the validation passed.
func (r ValidateResult) Succeeded() bool { return r.succeeded }

// Skipped reports whether the validation was skipped due to a name mismatch.
func (r ValidateResult) Skipped() bool { return r.skipped }

// Failed reports whether the validation failed.
func (r ValidateResult) Failed() bool { return r.failed }

// Failures returns the individual failure messages, in the order reported.
func (r ValidateResult) Failures() []string { return r.failures }

// FailureMessage returns all failure messages joined with "; ".
func (r ValidateResult) FailureMessage() string {
	if len(r.failures) == 0 {
		return ""
	}
	return strings.Join(r.failures, "; ")
}

// String implements fmt.Stringer.
func (r ValidateResult) String() string { return r.FailureMessage() }

// ValidateOptions validates a fully configured options value.
//
// Validators run after every configure and post-configure action. All
// registered validators run on every create; a validator whose name filter
// does not match should return Skip rather than Success.
type ValidateOptions[T any] interface {
	Validate(name string, options *T) ValidateResult
}

// ValidateFunc adapts a function to the ValidateOptions interface. The
// function receives the requested name and is responsible for its own
// name filtering.
type ValidateFunc[T any] func(name string, options *T) ValidateResult

// Validate implements ValidateOptions.
func (f ValidateFunc[T]) Validate(name string, options *T) ValidateResult {
	return f(name, options)
}

// NamedValidate returns a validator that runs the action only when the
// given filter name matches the requested name, and skips otherwise.
func NamedValidate[T any](name string, action func(options *T) ValidateResult) ValidateOptions[T] {
	return &namedValidate[T]{name: name, action: action}
}

type namedValidate[T any] struct {
	name   string
	action func(options *T) ValidateResult
}

func (v *namedValidate[T]) Validate(name string, options *T) ValidateResult {
	if !NamesEqual(v.name, name) {
		return Skip()
	}
	return v.action(options)
}
