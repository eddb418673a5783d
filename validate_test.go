// validate_test.go: tests for validation verdicts and validators
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateResult_States(t *testing.T) {
	success := Success()
	assert.True(t, success.Succeeded())
	assert.False(t, success.Skipped())
	assert.False(t, success.Failed())

	skip := Skip()
	assert.True(t, skip.Skipped())
	assert.False(t, skip.Succeeded())
	assert.False(t, skip.Failed())

	fail := Fail("Failed")
	assert.True(t, fail.Failed())
	assert.False(t, fail.Succeeded())
	assert.False(t, fail.Skipped())
}

func TestValidateResult_FailureMessage(t *testing.T) {
	assert.Equal(t, "Failed", Fail("Failed").FailureMessage())
	assert.Equal(t, "", Success().FailureMessage())
	assert.Equal(t, "", Skip().FailureMessage())
}

func TestValidateResult_FailMany(t *testing.T) {
	result := FailMany([]string{"Failure 1", "Failure 2"})

	assert.Equal(t, "Failure 1; Failure 2", result.FailureMessage())
	assert.Equal(t, []string{"Failure 1", "Failure 2"}, result.Failures())
}

func TestValidateResult_FailManyCopiesInput(t *testing.T) {
	failures := []string{"original"}
	result := FailMany(failures)

	failures[0] = "mutated"

	assert.Equal(t, "original", result.FailureMessage())
}

func TestValidateResult_String(t *testing.T) {
	result := Fail("Failed")
	assert.Equal(t, result.FailureMessage(), result.String())
}

func TestNamedValidate_SkipsOnNameMismatch(t *testing.T) {
	invoked := false
	validator := NamedValidate("primary", func(o *testOptions) ValidateResult {
		invoked = true
		return Success()
	})

	result := validator.Validate("other", &testOptions{})

	assert.True(t, result.Skipped())
	assert.False(t, invoked)
}

func TestNamedValidate_RunsOnCaseInsensitiveMatch(t *testing.T) {
	validator := NamedValidate("primary", func(o *testOptions) ValidateResult {
		if o.Retries < 0 {
			return Fail("retries must be non-negative")
		}
		return Success()
	})

	assert.True(t, validator.Validate("PRIMARY", &testOptions{Retries: 1}).Succeeded())
	assert.True(t, validator.Validate("Primary", &testOptions{Retries: -1}).Failed())
}

func TestValidateFunc_AdaptsFunction(t *testing.T) {
	var validator ValidateOptions[testOptions] = ValidateFunc[testOptions](
		func(name string, o *testOptions) ValidateResult {
			return Fail("always")
		})

	assert.True(t, validator.Validate(DefaultName, &testOptions{}).Failed())
}
