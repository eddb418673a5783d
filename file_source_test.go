// file_source_test.go: tests for the Argus-backed configuration file source
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package options

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fastFileSourceOptions polls aggressively so reload tests stay quick.
func fastFileSourceOptions() FileSourceOptions {
	opts := DefaultFileSourceOptions()
	opts.PollInterval = 50 * time.Millisecond
	opts.CacheTTL = 25 * time.Millisecond
	return opts
}

func TestFileSource_BindJSON(t *testing.T) {
	path := writeTestFile(t, "options.json", `{"retries": 5, "addr": ":8080"}`)
	source := NewFileSource[testOptions](path, DefaultFileSourceOptions())

	var opts testOptions
	require.NoError(t, source.Bind(&opts))

	assert.Equal(t, 5, opts.Retries)
	assert.Equal(t, ":8080", opts.Addr)
}

func TestFileSource_BindYAML(t *testing.T) {
	path := writeTestFile(t, "options.yaml", "retries: 9\nenabled: true\n")
	source := NewFileSource[testOptions](path, DefaultFileSourceOptions())

	var opts testOptions
	require.NoError(t, source.Bind(&opts))

	assert.Equal(t, 9, opts.Retries)
	assert.True(t, opts.Enabled)
}

func TestFileSource_BindMissingFile(t *testing.T) {
	source := NewFileSource[testOptions]("/nonexistent/options.json", DefaultFileSourceOptions())

	err := source.Bind(&testOptions{})

	require.Error(t, err)
}

func TestFileSource_BindMalformedContent(t *testing.T) {
	path := writeTestFile(t, "options.json", `{"retries": `)
	source := NewFileSource[testOptions](path, DefaultFileSourceOptions())

	err := source.Bind(&testOptions{})

	require.Error(t, err)
}

func TestFileSource_ConfigureFiltersByName(t *testing.T) {
	path := writeTestFile(t, "options.json", `{"retries": 5}`)
	opts := DefaultFileSourceOptions()
	opts.Name = "web"
	source := NewFileSource[testOptions](path, opts)

	var web testOptions
	source.Configure("WEB", &web)
	assert.Equal(t, 5, web.Retries)

	var other testOptions
	source.Configure("api", &other)
	assert.Equal(t, 0, other.Retries)
}

func TestFileSource_ConfigureKeepsValuesOnBindFailure(t *testing.T) {
	path := writeTestFile(t, "options.json", `{"retries": broken`)
	source := NewFileSource[testOptions](path, DefaultFileSourceOptions())

	opts := testOptions{Retries: 3}
	source.Configure(DefaultName, &opts)

	assert.Equal(t, 3, opts.Retries)
}

func TestFileSource_StartAndCloseLifecycle(t *testing.T) {
	path := writeTestFile(t, "options.json", `{"retries": 1}`)
	source := NewFileSource[testOptions](path, fastFileSourceOptions())

	require.NoError(t, source.Start())
	require.Error(t, source.Start()) // already running

	require.NoError(t, source.Close())
	require.NoError(t, source.Close()) // idempotent

	require.Error(t, source.Start()) // closed sources do not restart
}

func TestFileSource_CloseWithoutStart(t *testing.T) {
	path := writeTestFile(t, "options.json", `{"retries": 1}`)
	source := NewFileSource[testOptions](path, fastFileSourceOptions())

	require.NoError(t, source.Close())
}

func TestFileSource_MonitorFollowsFileChanges(t *testing.T) {
	path := writeTestFile(t, "options.json", `{"retries": 5}`)
	source := NewFileSource[testOptions](path, fastFileSourceOptions())
	require.NoError(t, source.Start())
	defer source.Close()

	monitor := NewBuilder[testOptions]().
		Bind(source).
		Monitor()
	defer monitor.Close()

	require.Equal(t, 5, monitor.CurrentValue().Retries)

	// Give the watcher a poll cycle to establish its baseline before the
	// file changes underneath it.
	time.Sleep(150 * time.Millisecond)
	rewriteTestFile(t, path, `{"retries": 7}`)

	assert.Eventually(t, func() bool {
		return monitor.CurrentValue().Retries == 7
	}, 5*time.Second, 50*time.Millisecond, "monitor never observed the file change")
}

func TestFileSource_TokenReArmsAcrossReloads(t *testing.T) {
	path := writeTestFile(t, "options.json", `{"retries": 1}`)
	source := NewFileSource[testOptions](path, fastFileSourceOptions())
	require.NoError(t, source.Start())
	defer source.Close()

	monitor := NewBuilder[testOptions]().
		Bind(source).
		Monitor()
	defer monitor.Close()

	require.Equal(t, 1, monitor.CurrentValue().Retries)
	time.Sleep(150 * time.Millisecond)

	rewriteTestFile(t, path, `{"retries": 2}`)
	require.Eventually(t, func() bool {
		return monitor.CurrentValue().Retries == 2
	}, 5*time.Second, 50*time.Millisecond)

	// A second change must be observed through a fresh token.
	rewriteTestFile(t, path, `{"retries": 3}`)
	require.Eventually(t, func() bool {
		return monitor.CurrentValue().Retries == 3
	}, 5*time.Second, 50*time.Millisecond)

	assert.GreaterOrEqual(t, source.Stats().Reloads, int64(2))
	assert.False(t, source.Stats().LastReload.IsZero())
}

func TestFileSource_Stats(t *testing.T) {
	path := writeTestFile(t, "options.json", `{"retries": 1}`)
	source := NewFileSource[testOptions](path, DefaultFileSourceOptions())

	stats := source.Stats()

	assert.Equal(t, path, stats.Path)
	assert.Equal(t, int64(0), stats.Reloads)
	assert.True(t, stats.LastReload.IsZero())
}
