// source_test.go: tests for manually fired change token sources
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotifySource_Name(t *testing.T) {
	assert.Equal(t, DefaultName, NewNotifySource[testOptions](DefaultName).Name())
	assert.Equal(t, "web", NewNotifySource[testOptions]("web").Name())
}

func TestNotifySource_NotifyFiresIssuedToken(t *testing.T) {
	source := NewNotifySource[testOptions](DefaultName)
	fired := false

	source.Token().Register(func() { fired = true })
	source.Notify()

	assert.True(t, fired)
}

func TestNotifySource_FreshTokenAfterEveryFire(t *testing.T) {
	source := NewNotifySource[testOptions](DefaultName)

	spent := source.Token()
	source.Notify()

	fresh := source.Token()
	assert.True(t, spent.HasChanged())
	assert.False(t, fresh.HasChanged())
	assert.NotSame(t, spent, fresh)
}

func TestNotifySource_ReArmFromInsideCallback(t *testing.T) {
	// The swap happens before the fire, so a callback that immediately
	// fetches the next token observes an unfired one and survives
	// repeated fires.
	source := NewNotifySource[testOptions](DefaultName)
	fires := 0

	var rearm func()
	rearm = func() {
		source.Token().Register(func() {
			fires++
			rearm()
		})
	}
	rearm()

	source.Notify()
	source.Notify()
	source.Notify()

	assert.Equal(t, 3, fires)
}
