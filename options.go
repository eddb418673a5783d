// options.go: core access interfaces for configured options
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package options

// DefaultName is the name of the default (unnamed) options instance.
//
// Configure actions, validators, and change-token sources registered with
// DefaultName as their filter apply to every requested name.
const DefaultName = ""

// Options retrieves the configured default value exactly once and serves
// it from a cache thereafter.
//
// Factory failures are returned to the caller; see ChangeMonitor for the
// change-tracking access pattern, which is fail-fast instead.
type Options[T any] interface {
	// Value returns the configured value for DefaultName.
	Value() (*T, error)
}

// Snapshot retrieves configured values by name without change tracking.
type Snapshot[T any] interface {
	// Get returns the configured value with the given name, creating and
	// caching it on first access.
	Get(name string) (*T, error)
}

// Create wraps an existing value so it can be served through the Options
// interface. Useful for tests and for components that accept Options but
// are constructed with a fixed configuration.
func Create[T any](value *T) Options[T] {
	return &staticOptions[T]{value: value}
}

type staticOptions[T any] struct {
	value *T
}

func (o *staticOptions[T]) Value() (*T, error) {
	return o.value, nil
}
