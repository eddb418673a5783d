// errors.go: structured error definitions for the go-options library
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package options

import (
	"fmt"

	"github.com/agilira/go-errors"
)

// Error codes for the go-options library
const (
	// Validation errors (1000-1099)
	ErrCodeValidationFailed = "OPTIONS_1001"

	// Configuration file errors (1100-1199)
	ErrCodeConfigFileError  = "OPTIONS_1101"
	ErrCodeConfigParseError = "OPTIONS_1102"
	ErrCodeConfigBindError  = "OPTIONS_1103"

	// File watching errors (1200-1299)
	ErrCodeWatcherError          = "OPTIONS_1201"
	ErrCodeWatcherAlreadyRunning = "OPTIONS_1202"
	ErrCodeWatcherStopped        = "OPTIONS_1203"
)

// ValidationError is returned by a Factory when one or more validators
// reported failure for the requested name. It carries the aggregated
// ValidateResult so callers can inspect every failure message.
//
// On the Options/Snapshot path a ValidationError is an ordinary, recoverable
// error. On the monitor path it is treated as a configuration bug and raised
// as a panic; see ChangeMonitor.
type ValidationError struct {
	// Name is the requested options name, DefaultName for the default
	// instance.
	Name string

	// Result holds the aggregated failures across all validators.
	Result ValidateResult
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Name == DefaultName {
		return fmt.Sprintf("options validation failed: %s", e.Result.FailureMessage())
	}
	return fmt.Sprintf("options validation failed for %q: %s", e.Name, e.Result.FailureMessage())
}

// NewValidationError creates a validation error for the given name and
// aggregated result.
func NewValidationError(name string, result ValidateResult) *ValidationError {
	return &ValidationError{Name: name, Result: result}
}

// Configuration file error constructors

func NewConfigFileError(path string, cause error) *errors.Error {
	return errors.Wrap(cause, ErrCodeConfigFileError, "Cannot read configuration file").
		WithUserMessage("The configuration file could not be read").
		WithContext("path", path).
		WithSeverity("error")
}

func NewConfigParseError(path, format string, cause error) *errors.Error {
	return errors.Wrap(cause, ErrCodeConfigParseError, "Cannot parse configuration file").
		WithUserMessage("The configuration file content is malformed").
		WithContext("path", path).
		WithContext("format", format).
		WithSeverity("error")
}

func NewConfigBindError(path string, cause error) *errors.Error {
	return errors.Wrap(cause, ErrCodeConfigBindError, "Cannot bind configuration to options").
		WithUserMessage("The configuration values do not match the options structure").
		WithContext("path", path).
		WithSeverity("error")
}

// File watching error constructors

func NewWatcherError(path string, cause error) *errors.Error {
	return errors.Wrap(cause, ErrCodeWatcherError, "File watcher failure").
		WithUserMessage("The configuration file watcher reported an error").
		WithContext("path", path).
		WithSeverity("error")
}

func NewWatcherAlreadyRunningError(path string) *errors.Error {
	return errors.New(ErrCodeWatcherAlreadyRunning, "File watcher already running").
		WithUserMessage("The file source has already been started").
		WithContext("path", path).
		WithSeverity("warning")
}

func NewWatcherStoppedError(path string) *errors.Error {
	return errors.New(ErrCodeWatcherStopped, "File watcher permanently stopped").
		WithUserMessage("A closed file source cannot be restarted").
		WithContext("path", path).
		WithSeverity("error")
}
