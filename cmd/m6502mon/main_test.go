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

package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/m6502core/curated"
	"github.com/jetsetilly/m6502core/debugger/terminal"
	"github.com/jetsetilly/m6502core/hardware/cpu"
	"github.com/jetsetilly/m6502core/modalflag"
	"github.com/jetsetilly/m6502core/test"
)

// adds 2 to the accumulator five times, stores the result and breaks
var program = []uint8{
	0xa2, 0x05,
	0xa9, 0x00,
	0x18,
	0x69, 0x02,
	0xca,
	0xd0, 0xfb,
	0x8d, 0x00, 0x03,
	0x00,
}

func writeProgram(t *testing.T, data []uint8) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "prog.bin")
	test.DemandSuccess(t, os.WriteFile(fn, data, 0o644))
	return fn
}

func newModes(args ...string) *modalflag.Modes {
	md := &modalflag.Modes{Output: io.Discard}
	md.NewArgs(args)
	md.AddSubModes("RUN", "STEP")
	_, _ = md.Parse()
	return md
}

func TestRun(t *testing.T) {
	fn := writeProgram(t, program)
	md := newModes("RUN", "-origin", "$0200", fn)
	test.DemandEquality(t, md.Mode(), "RUN")

	w := &strings.Builder{}
	test.DemandSuccess(t, run(md, w))

	s := w.String()
	test.ExpectSuccess(t, strings.HasPrefix(s, "20 instructions executed\n"), s)
	test.ExpectSuccess(t, strings.Contains(s, "A: 0x0a\n"), s)
}

func TestRunMax(t *testing.T) {
	fn := writeProgram(t, program)
	md := newModes("RUN", "-max", "3", fn)

	w := &strings.Builder{}
	test.DemandSuccess(t, run(md, w))
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "3 instructions executed\n"))
}

func TestRunUntil(t *testing.T) {
	fn := writeProgram(t, program)
	md := newModes("RUN", "-until", "dex", fn)

	w := &strings.Builder{}
	test.DemandSuccess(t, run(md, w))
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "5 instructions executed\n"), w.String())
	test.ExpectSuccess(t, strings.Contains(w.String(), "X: 0x04\n"), w.String())
}

func TestRunErrors(t *testing.T) {
	// no file
	md := newModes("RUN")
	test.ExpectFailure(t, run(md, io.Discard))

	// unknown preference
	fn := writeProgram(t, program)
	md = newModes("RUN", "-prefs", "cpu.nosuchthing::true", fn)
	err := run(md, io.Discard)
	test.ExpectSuccess(t, curated.Is(err, cpu.UnknownPreference))

	// unknown stopping instruction
	md = newModes("RUN", "-until", "XYZ", fn)
	test.ExpectFailure(t, run(md, io.Discard))
}

func TestStep(t *testing.T) {
	fn := writeProgram(t, program)
	md := newModes("STEP", fn)
	test.DemandEquality(t, md.Mode(), "STEP")

	w := &strings.Builder{}
	open := func() (terminal.Input, io.Writer) {
		return terminal.NewPlainTerminal(strings.NewReader("n n d q")), w
	}
	test.DemandSuccess(t, step(md, io.Discard, open))

	s := w.String()
	test.ExpectSuccess(t, strings.HasPrefix(s, "[ 0x0200 LDX Immediate ] > "), s)
	test.ExpectSuccess(t, strings.Contains(s, "[ 0x0204 CLC Implied ] > "), s)
	test.ExpectEquality(t, strings.Count(s, "SR: SVUBDIZC"), 3)
}

func TestStepBranchesAndVectors(t *testing.T) {
	// the IRQ vector follows the program in the binary
	data := make([]uint8, 0x10000-0x0200)
	copy(data, program)
	data[len(data)-2] = 0x00
	data[len(data)-1] = 0x80
	fn := writeProgram(t, data)
	md := newModes("STEP", fn)

	w := &strings.Builder{}
	open := func() (terminal.Input, io.Writer) {
		return terminal.NewPlainTerminal(strings.NewReader("v n n n n n n q")), w
	}
	test.DemandSuccess(t, step(md, io.Discard, open))

	s := w.String()
	test.ExpectSuccess(t, strings.Contains(s, "NMI: 0x0000 RESET: 0x0000 IRQ/BRK: 0x8000\n"), s)
	test.ExpectSuccess(t, strings.Contains(s, "branch taken\n"), s)
	test.ExpectFailure(t, strings.Contains(s, "branch not taken\n"), s)
}

func TestStepUntil(t *testing.T) {
	fn := writeProgram(t, program)
	md := newModes("STEP", "-until", "CLC", fn)

	w := &strings.Builder{}
	open := func() (terminal.Input, io.Writer) {
		return terminal.NewPlainTerminal(strings.NewReader("n n n n n n")), w
	}
	test.DemandSuccess(t, step(md, io.Discard, open))
	test.ExpectSuccess(t, strings.HasSuffix(w.String(), "stopped at CLC\n"), w.String())
}
