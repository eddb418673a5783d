// configure.go: configure and post-configure actions for options creation
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package options

// ConfigureOptions mutates an options value during creation. All configure
// actions run before any post-configure action, in registration order.
type ConfigureOptions[T any] interface {
	Configure(name string, options *T)
}

// PostConfigureOptions mutates an options value after every configure
// action has run. Post-configure actions run in registration order.
type PostConfigureOptions[T any] interface {
	PostConfigure(name string, options *T)
}

// ConfigureFunc adapts a function to the ConfigureOptions interface. The
// function receives the requested name and is responsible for its own
// name filtering.
type ConfigureFunc[T any] func(name string, options *T)

// Configure implements ConfigureOptions.
func (f ConfigureFunc[T]) Configure(name string, options *T) {
	f(name, options)
}

// PostConfigureFunc adapts a function to the PostConfigureOptions interface.
type PostConfigureFunc[T any] func(name string, options *T)

// PostConfigure implements PostConfigureOptions.
func (f PostConfigureFunc[T]) PostConfigure(name string, options *T) {
	f(name, options)
}

// NamedConfigure returns a configure action that runs only when the given
// filter name matches the requested name. DefaultName matches every request.
func NamedConfigure[T any](name string, action func(options *T)) ConfigureOptions[T] {
	return &namedAction[T]{name: name, action: action}
}

// NamedPostConfigure returns a post-configure action that runs only when the
// given filter name matches the requested name. DefaultName matches every
// request.
func NamedPostConfigure[T any](name string, action func(options *T)) PostConfigureOptions[T] {
	return &namedAction[T]{name: name, action: action}
}

// namedAction satisfies both configure interfaces; the builder registers it
// under whichever role was requested.
type namedAction[T any] struct {
	name   string
	action func(options *T)
}

func (a *namedAction[T]) Configure(name string, options *T) {
	if NamesEqual(a.name, name) {
		a.action(options)
	}
}

func (a *namedAction[T]) PostConfigure(name string, options *T) {
	if NamesEqual(a.name, name) {
		a.action(options)
	}
}
