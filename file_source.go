// file_source.go: Argus-backed change token source for configuration files
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package options

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/agilira/argus"
	"github.com/agilira/go-timecache"
)

// FileSourceOptions customizes a FileSource.
type FileSourceOptions struct {
	// Name is the options name this file configures; DefaultName applies
	// the file to the default instance.
	Name string

	// PollInterval is how often Argus checks the file for changes.
	PollInterval time.Duration

	// CacheTTL bounds how long Argus caches file stat results.
	CacheTTL time.Duration

	// Logger may be a Logger, a *slog.Logger, or nil for silent operation.
	Logger any
}

// DefaultFileSourceOptions returns sensible defaults for watching
// configuration files.
func DefaultFileSourceOptions() FileSourceOptions {
	return FileSourceOptions{
		PollInterval: 1 * time.Second,
		CacheTTL:     500 * time.Millisecond,
	}
}

// FileSource watches a configuration file and implements both sides of
// file-backed options:
//
//   - ChangeTokenSource: every detected file change fires the currently
//     issued token, so a monitor invalidates and recomputes the value
//   - ConfigureOptions: binds the file's current content into the options
//     value during factory creation
//
// Supported formats follow Argus detection: JSON, YAML, TOML, HCL, INI,
// and Properties, chosen by file extension.
//
// Example usage:
//
//	source := options.NewFileSource[ServerOptions]("/etc/app/server.yaml",
//	    options.DefaultFileSourceOptions())
//	if err := source.Start(); err != nil {
//	    return err
//	}
//	defer source.Close()
//
//	monitor := options.NewBuilder[ServerOptions]().Bind(source).Monitor()
//	defer monitor.Close()
type FileSource[T any] struct {
	path   string
	name   string
	logger Logger

	watcher *argus.Watcher

	mu    sync.Mutex
	token *SingleChangeToken

	enabled  atomic.Bool
	stopped  atomic.Bool
	stopOnce sync.Once

	reloads        atomic.Int64
	lastReloadNano atomic.Int64
}

// NewFileSource creates a file source for the given path. Watching does not
// begin until Start is called; Bind and Configure work regardless, reading
// the file on demand.
func NewFileSource[T any](path string, opts FileSourceOptions) *FileSource[T] {
	logger := NewLogger(opts.Logger)

	argusConfig := argus.Config{
		PollInterval:         opts.PollInterval,
		CacheTTL:             opts.CacheTTL,
		MaxWatchedFiles:      10,
		OptimizationStrategy: argus.OptimizationSingleEvent,
		ErrorHandler: func(err error, filepath string) {
			logger.Error("File watching error", "error", err, "file", filepath)
		},
	}

	return &FileSource[T]{
		path:    path,
		name:    opts.Name,
		logger:  logger,
		watcher: argus.New(argusConfig),
		token:   NewSingleChangeToken(),
	}
}

// Start begins watching the file for changes. A source can be started once;
// restarting a closed source is an error.
func (s *FileSource[T]) Start() error {
	if s.stopped.Load() {
		return NewWatcherStoppedError(s.path)
	}

	if !s.enabled.CompareAndSwap(false, true) {
		return NewWatcherAlreadyRunningError(s.path)
	}

	if err := s.watcher.Watch(s.path, s.handleChange); err != nil {
		s.enabled.Store(false)
		return NewWatcherError(s.path, err)
	}

	if err := s.watcher.Start(); err != nil {
		s.enabled.Store(false)
		return NewWatcherError(s.path, err)
	}

	s.logger.Info("Configuration file source started",
		"path", s.path,
		"options_name", s.name)
	return nil
}

// Close permanently stops watching. Tokens already issued never fire after
// Close returns. Close is safe to call concurrently and more than once.
func (s *FileSource[T]) Close() error {
	var stopErr error

	s.stopOnce.Do(func() {
		s.stopped.Store(true)

		if !s.enabled.CompareAndSwap(true, false) {
			return // never started, nothing to stop
		}

		if err := s.watcher.Stop(); err != nil {
			stopErr = NewWatcherError(s.path, err)
			return
		}

		s.logger.Info("Configuration file source stopped", "path", s.path)
	})

	return stopErr
}

// Token implements ChangeTokenSource.
func (s *FileSource[T]) Token() ChangeToken {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Name implements ChangeTokenSource.
func (s *FileSource[T]) Name() string {
	return s.name
}

// Bind reads the file and unmarshals its current content into out.
func (s *FileSource[T]) Bind(out *T) error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return NewConfigFileError(s.path, err)
	}

	format := argus.DetectFormat(s.path)
	if err := bindBytes(data, format, out); err != nil {
		return NewConfigParseError(s.path, fmt.Sprintf("%s", format), err)
	}

	return nil
}

// Configure implements ConfigureOptions, filtered by the source's options
// name. A bind failure during creation is logged and leaves the options
// value as the earlier actions produced it; the next successful reload
// picks the file back up.
func (s *FileSource[T]) Configure(name string, options *T) {
	if !NamesEqual(s.name, name) {
		return
	}

	if err := s.Bind(options); err != nil {
		s.logger.Error("Failed to bind configuration file, keeping configured values",
			"path", s.path,
			"options_name", name,
			"error", err)
	}
}

// handleChange processes file change events from Argus. The spent token is
// swapped for a fresh one before firing, so re-arming callbacks always
// observe an unfired token.
func (s *FileSource[T]) handleChange(event argus.ChangeEvent) {
	if event.IsDelete {
		s.logger.Warn("Configuration file was deleted, skipping reload", "path", event.Path)
		return
	}

	s.reloads.Add(1)
	s.lastReloadNano.Store(timecache.CachedTimeNano())
	s.logger.Debug("Configuration file change detected",
		"path", event.Path,
		"mod_time", event.ModTime,
		"size", event.Size,
		"is_create", event.IsCreate,
		"is_modify", event.IsModify)

	s.mu.Lock()
	fired := s.token
	s.token = NewSingleChangeToken()
	s.mu.Unlock()

	fired.Notify()
}

// FileSourceStats is a point-in-time view of file source activity.
type FileSourceStats struct {
	// Path is the watched file.
	Path string `json:"path"`

	// Reloads counts change events processed since Start.
	Reloads int64 `json:"reloads"`

	// LastReload is the time of the most recent change event, zero if none.
	LastReload time.Time `json:"last_reload"`
}

// Stats returns current file source statistics.
func (s *FileSource[T]) Stats() FileSourceStats {
	stats := FileSourceStats{
		Path:    s.path,
		Reloads: s.reloads.Load(),
	}
	if nano := s.lastReloadNano.Load(); nano != 0 {
		stats.LastReload = time.Unix(0, nano)
	}
	return stats
}
