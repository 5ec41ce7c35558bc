// This file is part of m6502core.
//
// m6502core is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// m6502core is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with m6502core.  If not, see <https://www.gnu.org/licenses/>.

package test

import (
	"fmt"
	"strings"
	"testing"
)

// DemandEquality is used to test equality between one value and another. If
// the test fails it is a testing fatality.
//
// Useful when the values being tested are used in further tests and so must
// be correct. For example, testing the length of a slice before indexing it.
func DemandEquality[T comparable](t *testing.T, v T, expectedValue T, tags ...any) {
	t.Helper()
	if v != expectedValue {
		t.Fatalf("%sequality test of type %T failed: '%v' does not equal '%v'", id(tags...), v, v, expectedValue)
	}
}

// DemandSuccess is used to test for a success value. If the test fails it is
// a testing fatality.
func DemandSuccess(t *testing.T, v any, tags ...any) {
	t.Helper()
	if !expect(t, v, tags...) {
		t.Fatalf("%sa success value is demanded for type %T (%v)", id(tags...), v, v)
	}
}

// DemandFailure is used to test for a failure value. If the test fails it is
// a testing fatality.
func DemandFailure(t *testing.T, v any, tags ...any) {
	t.Helper()
	if expect(t, v, tags...) {
		t.Fatalf("%sa failure value is demanded for type %T", id(tags...), v)
	}
}

// tags are prepended to failure messages to help identify the failing case
// in loops.
func id(tags ...any) string {
	if len(tags) == 0 {
		return ""
	}
	s := make([]string, len(tags))
	for i := range tags {
		s[i] = fmt.Sprintf("%v", tags[i])
	}
	return fmt.Sprintf("[%s] ", strings.Join(s, ", "))
}

// ExpectImplements tests whether an instance is an implementation of the
// interface type T. The second argument is only used to specify T and is
// usually a nil pointer:
//
//	test.ExpectImplements(t, mem, (*memory.Memory)(nil))
func ExpectImplements[T any](t *testing.T, instance any, _ *T, tags ...any) bool {
	t.Helper()
	if _, ok := instance.(T); !ok {
		var ptr *T
		t.Errorf("%simplementation test failed: type %T does not implement %T", id(tags...), instance, ptr)
		return false
	}
	return true
}
