// Package testutil provides shared test utilities for the chess rules engine.
package testutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// AssertEqual compares got and want using cmp.Diff and reports differences.
// The msgAndArgs are optional and provide additional context if the assertion fails.
func AssertEqual(t *testing.T, got, want interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		reportf(t, msgAndArgs, "mismatch (-want +got):\n%s", diff)
	}
}

// AssertSameElements compares two string slices ignoring order, which suits
// move lists whose generation order is not part of the contract.
func AssertSameElements(t *testing.T, got, want []string, msgAndArgs ...interface{}) {
	t.Helper()
	less := func(a, b string) bool { return a < b }
	if diff := cmp.Diff(want, got, cmpopts.SortSlices(less), cmpopts.EquateEmpty()); diff != "" {
		reportf(t, msgAndArgs, "elements differ (-want +got):\n%s", diff)
	}
}

// AssertNoError fails if err is not nil.
func AssertNoError(t *testing.T, err error, msgAndArgs ...interface{}) {
	t.Helper()
	if err != nil {
		reportf(t, msgAndArgs, "unexpected error: %v", err)
	}
}

// AssertErrorIs fails unless errors.Is(err, target).
func AssertErrorIs(t *testing.T, err, target error, msgAndArgs ...interface{}) {
	t.Helper()
	if !errors.Is(err, target) {
		reportf(t, msgAndArgs, "error = %v; want %v", err, target)
	}
}

// AssertTrue fails if condition is false.
func AssertTrue(t *testing.T, condition bool, msgAndArgs ...interface{}) {
	t.Helper()
	if !condition {
		reportf(t, msgAndArgs, "expected true but got false")
	}
}

// AssertFalse fails if condition is true.
func AssertFalse(t *testing.T, condition bool, msgAndArgs ...interface{}) {
	t.Helper()
	if condition {
		reportf(t, msgAndArgs, "expected false but got true")
	}
}

// reportf prefixes the failure with the caller's optional message.
func reportf(t *testing.T, msgAndArgs []interface{}, format string, args ...interface{}) {
	t.Helper()
	detail := fmt.Sprintf(format, args...)
	if msg := formatMessage(msgAndArgs...); msg != "" {
		t.Errorf("%s: %s", msg, detail)
		return
	}
	t.Error(detail)
}

// formatMessage formats optional message arguments into a string.
func formatMessage(msgAndArgs ...interface{}) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	if len(msgAndArgs) == 1 {
		if s, ok := msgAndArgs[0].(string); ok {
			return s
		}
		return fmt.Sprintf("%v", msgAndArgs[0])
	}
	if s, ok := msgAndArgs[0].(string); ok {
		return fmt.Sprintf(s, msgAndArgs[1:]...)
	}
	return fmt.Sprintf("%v", msgAndArgs[0])
}
