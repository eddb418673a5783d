// monitor.go: change-tracking monitor for configured options
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package options

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/agilira/go-timecache"
)

// Monitor provides change-tracking access to configured options.
//
// Unlike the Options/Snapshot path, a monitor has no caller to hand an
// error to when an external change produces an invalid configuration, so
// factory failures on this path panic with the *ValidationError instead of
// being returned. Listeners only ever observe successfully created values.
type Monitor[T any] interface {
	// CurrentValue returns the default instance.
	CurrentValue() *T

	// Get returns the configured instance with the given name.
	Get(name string) *T

	// OnChange registers a callback invoked whenever a monitored instance
	// changes. Closing the returned subscription is the only way to stop
	// the notifications.
	OnChange(listener func(name string, value *T)) *Subscription
}

// Subscription represents a registered change listener. Close unsubscribes
// the listener; afterwards the callback is never invoked again.
type Subscription struct {
	once   sync.Once
	cancel func()
}

// Close implements io.Closer. It always returns nil and may be called any
// number of times.
func (s *Subscription) Close() error {
	s.once.Do(s.cancel)
	return nil
}

// ChangeMonitor is the standard Monitor implementation. It aggregates a
// cache, a factory, and one registration per change-token source into a
// single long-lived handle.
//
// When a source fires, the cached value for that source's name is dropped,
// recomputed through the factory, and every live listener is invoked with
// the new value. Listener callbacks run outside the monitor's internal
// locks, so a callback may safely call Get or OnChange re-entrantly.
//
// Example usage:
//
//	monitor := options.NewMonitor(cache, sources, factory, logger)
//	defer monitor.Close()
//
//	sub := monitor.OnChange(func(name string, value *ServerOptions) {
//	    applySettings(value)
//	})
//	defer sub.Close()
type ChangeMonitor[T any] struct {
	tracker       *changeTracker[T]
	registrations []*registration[T]
	logger        Logger
	closeOnce     sync.Once
}

// NewMonitor creates a monitor over the given cache, change-token sources,
// and factory. One registration is built per source and torn down by Close.
// The sources slice may be empty, in which case values are cached forever
// and OnChange listeners never fire.
//
// The logger may be a Logger, a *slog.Logger, or nil for silent operation.
func NewMonitor[T any](
	cache MonitorCache[T],
	sources []ChangeTokenSource[T],
	factory Factory[T],
	logger any,
) *ChangeMonitor[T] {
	internalLogger := NewLogger(logger)
	tracker := newChangeTracker(cache, factory, internalLogger)
	registrations := make([]*registration[T], 0, len(sources))

	for _, source := range sources {
		registrations = append(registrations, newRegistration(source, tracker))
	}

	return &ChangeMonitor[T]{
		tracker:       tracker,
		registrations: registrations,
		logger:        internalLogger,
	}
}

// CurrentValue implements Monitor.
func (m *ChangeMonitor[T]) CurrentValue() *T {
	return m.Get(DefaultName)
}

// Get implements Monitor. It panics with the factory's *ValidationError
// when recomputing the value fails; see Monitor.
func (m *ChangeMonitor[T]) Get(name string) *T {
	return m.tracker.get(name)
}

// OnChange implements Monitor.
func (m *ChangeMonitor[T]) OnChange(listener func(name string, value *T)) *Subscription {
	return m.tracker.addListener(listener)
}

// Close tears down every source registration. After Close returns, source
// fires no longer reach the monitor. Get remains usable and serves cached
// values, but nothing invalidates them anymore. Close is idempotent and
// always returns nil.
func (m *ChangeMonitor[T]) Close() error {
	m.closeOnce.Do(func() {
		for _, reg := range m.registrations {
			reg.stop()
		}
		m.logger.Debug("Options monitor closed", "sources", len(m.registrations))
	})
	return nil
}

// MonitorStats is a point-in-time view of monitor activity.
type MonitorStats struct {
	// Sources is the number of change-token sources the monitor was
	// constructed with.
	Sources int `json:"sources"`

	// Listeners is the number of live change listeners.
	Listeners int `json:"listeners"`

	// Changes counts source fires processed since construction.
	Changes int64 `json:"changes"`

	// LastChange is the time of the most recent fire, zero if none.
	LastChange time.Time `json:"last_change"`
}

// Stats returns current monitor statistics.
func (m *ChangeMonitor[T]) Stats() MonitorStats {
	stats := MonitorStats{
		Sources: len(m.registrations),
		Changes: m.tracker.changes.Load(),
	}
	if nano := m.tracker.lastChangeNano.Load(); nano != 0 {
		stats.LastChange = time.Unix(0, nano)
	}

	m.tracker.mu.RLock()
	for _, entry := range m.tracker.listeners {
		if !entry.closed.Load() {
			stats.Listeners++
		}
	}
	m.tracker.mu.RUnlock()

	return stats
}

// changeTracker mediates between the cache, the factory, and the listener
// set. It owns the invalidate-then-renotify sequence that runs when a
// change-token source fires.
type changeTracker[T any] struct {
	cache   MonitorCache[T]
	factory Factory[T]
	logger  Logger

	mu        sync.RWMutex
	listeners []*listenerEntry[T]
	nextID    uint64

	changes        atomic.Int64
	lastChangeNano atomic.Int64
}

type listenerEntry[T any] struct {
	id       uint64
	callback func(name string, value *T)
	closed   atomic.Bool
}

func newChangeTracker[T any](cache MonitorCache[T], factory Factory[T], logger Logger) *changeTracker[T] {
	return &changeTracker[T]{
		cache:   cache,
		factory: factory,
		logger:  logger,
	}
}

// get returns the cached value for name, creating it on first access.
// Factory failures have no caller to propagate to here, so they panic.
func (t *changeTracker[T]) get(name string) *T {
	value, err := t.cache.GetOrAdd(name, t.factory.Create)
	if err != nil {
		panic(err)
	}
	return value
}

// addListener registers a change callback and returns its subscription.
// Entries whose subscription has been closed are purged here: additions
// are infrequent and already take the write lock, so the trimming costs
// nothing extra.
func (t *changeTracker[T]) addListener(callback func(name string, value *T)) *Subscription {
	t.mu.Lock()
	defer t.mu.Unlock()

	live := t.listeners[:0]
	for _, entry := range t.listeners {
		if !entry.closed.Load() {
			live = append(live, entry)
		}
	}
	for i := len(live); i < len(t.listeners); i++ {
		t.listeners[i] = nil
	}
	t.listeners = live

	entry := &listenerEntry[T]{id: t.nextID, callback: callback}
	t.nextID++
	t.listeners = append(t.listeners, entry)

	return &Subscription{cancel: func() { entry.closed.Store(true) }}
}

// fire handles one change for the given name:
//
//  1. snapshot the currently live listeners
//  2. drop the cached value so the next get recomputes
//  3. recompute the value, repopulating the cache
//  4. invoke the snapshotted listeners with the new value
//
// Steps 1 and 4 are separated from the listener lock on purpose: a callback
// may re-enter the tracker (subscribe again, read a value), which would
// deadlock against a lock held across the invocation. Listeners added
// during a fire become eligible for the next fire, not the current one.
func (t *changeTracker[T]) fire(name string) {
	t.mu.RLock()
	snapshot := make([]*listenerEntry[T], 0, len(t.listeners))
	for _, entry := range t.listeners {
		if !entry.closed.Load() {
			snapshot = append(snapshot, entry)
		}
	}
	t.mu.RUnlock()

	t.cache.TryRemove(name)
	value := t.get(name)

	t.changes.Add(1)
	t.lastChangeNano.Store(timecache.CachedTimeNano())
	t.logger.Debug("Options change processed", "name", name, "listeners", len(snapshot))

	for _, entry := range snapshot {
		if entry.closed.Load() {
			continue
		}
		entry.callback(name, value)
	}
}
