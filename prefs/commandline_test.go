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

package prefs_test

import (
	"testing"

	"github.com/jetsetilly/m6502core/prefs"
	"github.com/jetsetilly/m6502core/test"
)

func TestCommandLineStackValues(t *testing.T) {
	// empty on start
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	prefs.PushCommandLineStack("foo::bar")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "foo::bar")

	// additional space is trimmed
	prefs.PushCommandLineStack("   foo:: bar ")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "foo::bar")

	// remaining string is sorted by key
	prefs.PushCommandLineStack("foo::bar; baz::qux")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "baz::qux; foo::bar")

	// invalid prefs string
	prefs.PushCommandLineStack("foo_bar")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	// partially invalid prefs string
	prefs.PushCommandLineStack("foo::bar;baz_qux")
	ok, _ := prefs.GetCommandLinePref("baz")
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "foo::bar")
}

func TestCommandLineStack(t *testing.T) {
	prefs.PushCommandLineStack("foo::bar")
	prefs.PushCommandLineStack("baz::qux")

	ok, v := prefs.GetCommandLinePref("baz")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v.(string), "qux")

	// value has been consumed
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	// first group still exists
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "foo::bar")
}

func TestBool(t *testing.T) {
	var b prefs.Bool
	test.ExpectEquality(t, b.Get().(bool), false)
	test.ExpectEquality(t, b.String(), "false")

	test.ExpectSuccess(t, b.Set(true))
	test.ExpectEquality(t, b.Get().(bool), true)

	test.ExpectSuccess(t, b.Set("FALSE"))
	test.ExpectEquality(t, b.Get().(bool), false)

	test.ExpectSuccess(t, b.Set("True"))
	test.ExpectEquality(t, b.Get().(bool), true)

	test.ExpectFailure(t, b.Set(10))
	test.ExpectEquality(t, b.Get().(bool), true)

	test.ExpectSuccess(t, b.Reset())
	test.ExpectEquality(t, b.Get().(bool), false)
}

func TestBoolHooks(t *testing.T) {
	var b prefs.Bool
	var pre, post int

	b.SetHookPre(func(v prefs.Value) error {
		pre++
		return nil
	})
	b.SetHookPost(func(v prefs.Value) error {
		post++
		test.ExpectEquality(t, v.(bool), true)
		return nil
	})

	test.ExpectSuccess(t, b.Set(true))
	test.ExpectEquality(t, pre, 1)
	test.ExpectEquality(t, post, 1)
}
