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

package modalflag_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/m6502core/curated"
	"github.com/jetsetilly/m6502core/modalflag"
	"github.com/jetsetilly/m6502core/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, md.Path(), "")
	test.ExpectEquality(t, len(md.RemainingArgs()), 0)
}

func TestNoModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-test", "1", "2"})
	testFlag := md.AddBool("test", false, "test flag")
	test.ExpectFailure(t, *testFlag)

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectSuccess(t, *testFlag)
	test.DemandEquality(t, len(md.RemainingArgs()), 2)
	test.ExpectEquality(t, md.GetArg(0), "1")
	test.ExpectEquality(t, md.GetArg(1), "2")
	test.ExpectEquality(t, md.GetArg(2), "")
}

func TestModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"step", "-origin", "$c000", "-max", "10", "prog.bin"})
	md.AddSubModes("RUN", "STEP")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "STEP")

	md.NewMode()
	origin := md.AddAddress("origin", 0x0200, "load address")
	max := md.AddInt("max", 0, "maximum instructions")
	p, err = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *origin, 0xc000)
	test.ExpectEquality(t, *max, 10)
	test.DemandEquality(t, len(md.RemainingArgs()), 1)
	test.ExpectEquality(t, md.GetArg(0), "prog.bin")
	test.ExpectEquality(t, md.Path(), "STEP")

	var set []string
	md.Visit(func(f string) { set = append(set, f) })
	test.ExpectEquality(t, strings.Join(set, ","), "max,origin")
}

func TestDefaultMode(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"prog.bin"})
	md.AddSubModes("run", "step")

	_, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "RUN")
	test.ExpectEquality(t, md.GetArg(0), "prog.bin")
}

func TestBadFlag(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-origin", "zz"})
	md.AddAddress("origin", 0, "load address")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseError)
	test.ExpectFailure(t, err)
}

func TestParseAddress(t *testing.T) {
	a, err := modalflag.ParseAddress("$ff00")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, a, 0xff00)

	a, err = modalflag.ParseAddress("0X0200")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, a, 0x0200)

	a, err = modalflag.ParseAddress("512")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, a, 0x0200)

	_, err = modalflag.ParseAddress("0x10000")
	test.ExpectSuccess(t, curated.Is(err, modalflag.InvalidAddress))
}

func TestNoHelpAvailable(t *testing.T) {
	tw := &test.CompareWriter{}
	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectSuccess(t, tw.Compare("No help available\n"), tw)
}

func TestHelpFlagsAndModes(t *testing.T) {
	w := &strings.Builder{}
	md := modalflag.Modes{Output: w}
	md.NewArgs([]string{"-help"})
	md.AddBool("log", true, "echo log")
	md.AddSubModes("RUN", "STEP")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  -log\n" +
		"    \techo log (default true)\n" +
		"\n" +
		"  available sub-modes: RUN, STEP\n" +
		"    default: RUN\n"
	test.ExpectEquality(t, w.String(), expectedHelp)
}
