// Package testutil provides assertion wrappers and HTTP fixtures shared by
// the utilkit test suites.
package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertNoError is a convenience wrapper that fails the test if err is not nil.
func AssertNoError(t *testing.T, err error, msgAndArgs ...interface{}) {
	t.Helper()
	if len(msgAndArgs) > 0 {
		require.NoError(t, err, msgAndArgs...)
	} else {
		require.NoError(t, err)
	}
}

// AssertError is a convenience wrapper that fails the test if err is nil.
func AssertError(t *testing.T, err error, msgAndArgs ...interface{}) {
	t.Helper()
	if len(msgAndArgs) > 0 {
		require.Error(t, err, msgAndArgs...)
	} else {
		require.Error(t, err)
	}
}

// AssertEqual is a convenience wrapper around assert.Equal with helper marking.
func AssertEqual(t *testing.T, expected, actual interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	assert.Equal(t, expected, actual, msgAndArgs...)
}

// AssertNil is a convenience wrapper around assert.Nil with helper marking.
func AssertNil(t *testing.T, object interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	assert.Nil(t, object, msgAndArgs...)
}

// AssertNotNil is a convenience wrapper around assert.NotNil with helper marking.
func AssertNotNil(t *testing.T, object interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	assert.NotNil(t, object, msgAndArgs...)
}

// AssertErrorContains checks that an error contains a specific substring.
func AssertErrorContains(t *testing.T, err error, substr string, msgAndArgs ...interface{}) {
	t.Helper()
	require.Error(t, err, "Expected an error but got nil")
	if !strings.Contains(err.Error(), substr) {
		msg := fmt.Sprintf("Expected error to contain '%s', got: '%s'", substr, err.Error())
		if len(msgAndArgs) > 0 {
			msg = fmt.Sprintf("%s: %v", msg, msgAndArgs[0])
		}
		t.Error(msg)
	}
}

// AssertJSONEqual compares two JSON strings for equality, ignoring formatting differences.
func AssertJSONEqual(t *testing.T, expected, actual string, msgAndArgs ...interface{}) {
	t.Helper()
	assert.JSONEq(t, expected, actual, msgAndArgs...)
}
