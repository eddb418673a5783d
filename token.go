// token.go: single-fire change notification primitive
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package options

import "sync"

// ChangeToken is a single-fire notification primitive representing "has the
// underlying source changed since this token was issued".
//
// Firing invokes every callback registered before the fire, then the token
// becomes permanently inert: callbacks registered afterwards are never
// invoked. To keep observing a source, fetch a fresh token after every fire.
type ChangeToken interface {
	// HasChanged reports whether the token has fired.
	HasChanged() bool

	// Register adds a callback to invoke when the token fires. The returned
	// function removes the callback; calling it more than once is harmless.
	// Registering on a token that has already fired is a no-op.
	Register(callback func()) (cancel func())
}

// SingleChangeToken is the standard ChangeToken implementation, fired
// manually through Notify.
type SingleChangeToken struct {
	mu        sync.Mutex
	fired     bool
	nextID    uint64
	callbacks []*tokenCallback
}

type tokenCallback struct {
	id       uint64
	callback func()
}

// NewSingleChangeToken creates an unfired change token.
func NewSingleChangeToken() *SingleChangeToken {
	return &SingleChangeToken{}
}

// HasChanged implements ChangeToken.
func (t *SingleChangeToken) HasChanged() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.fired
}

// Register implements ChangeToken.
func (t *SingleChangeToken) Register(callback func()) func() {
	t.mu.Lock()

	if t.fired {
		t.mu.Unlock()
		return func() {}
	}

	entry := &tokenCallback{id: t.nextID, callback: callback}
	t.nextID++
	t.callbacks = append(t.callbacks, entry)
	t.mu.Unlock()

	return func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		for i, c := range t.callbacks {
			if c.id == entry.id {
				t.callbacks = append(t.callbacks[:i], t.callbacks[i+1:]...)
				break
			}
		}
	}
}

// Notify fires the token. Every callback registered before the fire runs on
// the calling goroutine, in registration order and outside the token's
// lock, so a callback may register on other tokens without deadlocking.
// Subsequent calls are no-ops.
func (t *SingleChangeToken) Notify() {
	t.mu.Lock()

	if t.fired {
		t.mu.Unlock()
		return
	}

	t.fired = true
	callbacks := t.callbacks
	t.callbacks = nil
	t.mu.Unlock()

	for _, c := range callbacks {
		c.callback()
	}
}
