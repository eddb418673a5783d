// source.go: change token sources that drive monitored options
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package options

import "sync"

// ChangeTokenSource manufactures change tokens for a monitored options
// instance. The monitor fetches a fresh token after every fire, so Token
// must support being called repeatedly; ownership of the issued token
// belongs to the caller.
type ChangeTokenSource[T any] interface {
	// Token returns a change token observing the source's next change.
	Token() ChangeToken

	// Name returns the options name this source changes, DefaultName when
	// the source changes the default instance.
	Name() string
}

// NotifySource is a manually fired ChangeTokenSource, primarily useful for
// tests and for bridging in-process events into a monitor.
//
// Each Notify fires the currently issued token and arms a fresh one, so a
// source can be fired any number of times even though individual tokens
// fire at most once.
type NotifySource[T any] struct {
	name  string
	mu    sync.Mutex
	token *SingleChangeToken
}

// NewNotifySource creates a manual source for the given options name. Use
// DefaultName for the default instance.
func NewNotifySource[T any](name string) *NotifySource[T] {
	return &NotifySource[T]{
		name:  name,
		token: NewSingleChangeToken(),
	}
}

// Token implements ChangeTokenSource.
func (s *NotifySource[T]) Token() ChangeToken {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Name implements ChangeTokenSource.
func (s *NotifySource[T]) Name() string {
	return s.name
}

// Notify fires the current token. A fresh token is armed before the fire,
// so a callback that immediately fetches the next token observes an
// unfired one.
func (s *NotifySource[T]) Notify() {
	s.mu.Lock()
	fired := s.token
	s.token = NewSingleChangeToken()
	s.mu.Unlock()

	fired.Notify()
}
