// Package testutil provides shared test helpers for the boardgame-go packages.
// It depends only on geom so that any package's internal tests may import it.
package testutil

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/lgbarn/boardgame-go/internal/geom"
)

// AssertEqual compares got and want using cmp.Diff and reports differences.
// Options are passed through to cmp; a trailing string and its arguments
// become the failure message prefix.
func AssertEqual(t *testing.T, got, want interface{}, opts ...interface{}) {
	t.Helper()
	cmpOpts, msgAndArgs := splitOptions(opts)
	if diff := cmp.Diff(want, got, cmpOpts...); diff != "" {
		t.Errorf("%smismatch (-want +got):\n%s", prefix(msgAndArgs...), diff)
	}
}

// AssertSamePoints compares two point collections ignoring order.
func AssertSamePoints(t *testing.T, got, want []geom.Point, msgAndArgs ...interface{}) {
	t.Helper()
	less := func(a, b geom.Point) bool { return a.Hash() < b.Hash() }
	if diff := cmp.Diff(want, got, cmpopts.SortSlices(less), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("%spoints mismatch (-want +got):\n%s", prefix(msgAndArgs...), diff)
	}
}

// AssertNoError fails if err is not nil.
func AssertNoError(t *testing.T, err error, msgAndArgs ...interface{}) {
	t.Helper()
	if err != nil {
		t.Errorf("%sunexpected error: %v", prefix(msgAndArgs...), err)
	}
}

// AssertErrorIs fails unless errors.Is(err, target).
func AssertErrorIs(t *testing.T, err, target error, msgAndArgs ...interface{}) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Errorf("%serror = %v, want %v", prefix(msgAndArgs...), err, target)
	}
}

// AssertContains fails if substr is not found in got.
func AssertContains(t *testing.T, got, substr string, msgAndArgs ...interface{}) {
	t.Helper()
	if !strings.Contains(got, substr) {
		t.Errorf("%s%q does not contain %q", prefix(msgAndArgs...), got, substr)
	}
}

// AssertTrue fails if condition is false.
func AssertTrue(t *testing.T, condition bool, msgAndArgs ...interface{}) {
	t.Helper()
	if !condition {
		t.Errorf("%sexpected true but got false", prefix(msgAndArgs...))
	}
}

// AssertFalse fails if condition is true.
func AssertFalse(t *testing.T, condition bool, msgAndArgs ...interface{}) {
	t.Helper()
	if condition {
		t.Errorf("%sexpected false but got true", prefix(msgAndArgs...))
	}
}

// splitOptions separates cmp options from trailing message arguments.
func splitOptions(opts []interface{}) ([]cmp.Option, []interface{}) {
	var cmpOpts []cmp.Option
	for i, o := range opts {
		opt, ok := o.(cmp.Option)
		if !ok {
			return cmpOpts, opts[i:]
		}
		cmpOpts = append(cmpOpts, opt)
	}
	return cmpOpts, nil
}

// prefix formats optional message arguments as "msg: ".
func prefix(msgAndArgs ...interface{}) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	if s, ok := msgAndArgs[0].(string); ok {
		if len(msgAndArgs) > 1 {
			s = fmt.Sprintf(s, msgAndArgs[1:]...)
		}
		return s + ": "
	}
	return fmt.Sprintf("%v: ", msgAndArgs[0])
}
