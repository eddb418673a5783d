// manager.go: combined Options and Snapshot facade over a factory and cache
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package options

// Manager serves configured options values through both the Options and
// Snapshot interfaces. It owns a private cache, so values are created at
// most once per name and shared by all callers.
//
// Manager performs no change tracking: once a value is cached it is served
// unchanged for the manager's lifetime. Use ChangeMonitor for values that
// must follow an external configuration source.
type Manager[T any] struct {
	factory Factory[T]
	cache   *Cache[T]
}

// NewManager creates a manager over the given factory.
func NewManager[T any](factory Factory[T]) *Manager[T] {
	return &Manager[T]{
		factory: factory,
		cache:   NewCache[T](),
	}
}

// Value implements Options. It returns the default instance.
func (m *Manager[T]) Value() (*T, error) {
	return m.Get(DefaultName)
}

// Get implements Snapshot. Factory failures, including validation errors,
// are returned to the caller and nothing is cached for the name.
func (m *Manager[T]) Get(name string) (*T, error) {
	return m.cache.GetOrAdd(name, m.factory.Create)
}
