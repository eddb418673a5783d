// factory.go: factory pipeline that creates configured options values
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package options

// Factory creates configured options values on demand. It is the sole
// producer invoked by caches, managers, and monitors.
type Factory[T any] interface {
	// Create builds the options value for the given name. It returns a
	// *ValidationError when one or more validators reject the value.
	Create(name string) (*T, error)
}

// DefaultFactory is the standard Factory implementation. Creation runs a
// fixed pipeline over a zero-valued T:
//
//  1. every configure action, in registration order
//  2. every post-configure action, in registration order
//  3. every validator, unconditionally and without short-circuiting
//
// Failures from all validators are aggregated into a single
// ValidationError; a skipped validator contributes nothing. The factory
// itself holds no cache and no locks, so a single instance is safe for
// concurrent use as long as the registered actions are.
type DefaultFactory[T any] struct {
	configures     []ConfigureOptions[T]
	postConfigures []PostConfigureOptions[T]
	validations    []ValidateOptions[T]
}

// NewFactory creates a factory from the given configure actions,
// post-configure actions, and validators. Any slice may be nil.
func NewFactory[T any](
	configures []ConfigureOptions[T],
	postConfigures []PostConfigureOptions[T],
	validations []ValidateOptions[T],
) *DefaultFactory[T] {
	return &DefaultFactory[T]{
		configures:     configures,
		postConfigures: postConfigures,
		validations:    validations,
	}
}

// Create implements Factory.
func (f *DefaultFactory[T]) Create(name string) (*T, error) {
	options := new(T)

	for _, configure := range f.configures {
		configure.Configure(name, options)
	}

	for _, postConfigure := range f.postConfigures {
		postConfigure.PostConfigure(name, options)
	}

	if len(f.validations) > 0 {
		var failures []string

		for _, validation := range f.validations {
			result := validation.Validate(name, options)

			if result.Failed() {
				failures = append(failures, result.Failures()...)
			}
		}

		if len(failures) > 0 {
			return nil, NewValidationError(name, FailMany(failures))
		}
	}

	return options, nil
}
