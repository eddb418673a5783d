// registration.go: binds a change-token source to the change tracker
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package options

import "sync"

// registration keeps one change-token source wired to the tracker for the
// monitor's lifetime. Tokens are single-fire, so after every fire the
// registration discards the spent token and registers on a fresh one.
//
// The stopped flag plays the role of a weak back-reference: a token that
// fires after stop finds the flag set and does nothing, so a torn-down
// monitor can never be re-entered by a late fire.
type registration[T any] struct {
	source  ChangeTokenSource[T]
	tracker *changeTracker[T]

	mu      sync.Mutex
	cancel  func()
	stopped bool
}

func newRegistration[T any](source ChangeTokenSource[T], tracker *changeTracker[T]) *registration[T] {
	r := &registration[T]{
		source:  source,
		tracker: tracker,
	}
	r.arm()
	return r
}

// arm fetches a fresh token from the source and registers the fire
// callback on it. The token is fetched outside the lock: Token may be an
// arbitrary external call and must not run under registration state.
//
// A change can land between Token and Register, in which case Register is
// a no-op on the spent token and the callback would never run. HasChanged
// is checked after registering to close that window: when it reports a
// fire, the fire path runs here instead, and the once guard collapses the
// ambiguous case where the callback made it in before the fire and Notify
// delivers it as well. The fire path ends in a fresh arm either way, so a
// spent token is never retained.
func (r *registration[T]) arm() {
	token := r.source.Token()

	var once sync.Once
	fire := func() { once.Do(r.onFire) }

	r.mu.Lock()
	if r.stopped {
		r.mu.Unlock()
		return
	}
	r.cancel = token.Register(fire)
	r.mu.Unlock()

	if token.HasChanged() {
		fire()
	}
}

// onFire runs on whatever goroutine fired the token: notify the tracker
// first, then re-arm with a fresh token. The spent token is never reused.
func (r *registration[T]) onFire() {
	r.mu.Lock()
	if r.stopped {
		r.mu.Unlock()
		return
	}
	r.mu.Unlock()

	r.tracker.fire(r.source.Name())
	r.arm()
}

// stop permanently tears the registration down and cancels the callback on
// the currently held token.
func (r *registration[T]) stop() {
	r.mu.Lock()
	cancel := r.cancel
	r.cancel = nil
	r.stopped = true
	r.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}
