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

package cpu

import (
	"fmt"
	"io"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/m6502core/hardware/cpu/registers"
)

// Dump writes a multi-line description of the CPU state to w. Intended for
// humans; the format is not guaranteed to be stable.
func (mc *CPU) Dump(w io.Writer) {
	fmt.Fprintf(w, "%s: %s\n", mc.PC.Label(), mc.PC)
	fmt.Fprintf(w, "%s: %s\n", registers.Status, registers.StatusHeader())
	fmt.Fprintf(w, "    %s\n", mc.Regs.StatusBits())
	for _, r := range []registers.Name{registers.StackPointer, registers.Accumulator, registers.IndexX, registers.IndexY} {
		fmt.Fprintf(w, "%s: %#02x\n", r, mc.Regs.Byte(r))
	}
}

// graphable copy of the CPU state. memory is not included because a 64k node
// graph is of no use to anyone
type graph struct {
	PC     uint16
	Status uint8
	Flags  map[string]bool
	SP     uint8
	A      uint8
	X      uint8
	Y      uint8
	Prefs  map[string]bool
}

// Graph writes a Graphviz (dot) description of the CPU registers and
// preferences to w.
func (mc *CPU) Graph(w io.Writer) {
	g := graph{
		PC:     mc.PC.Address(),
		Status: mc.Regs.Byte(registers.Status),
		Flags:  make(map[string]bool),
		SP:     mc.Regs.Byte(registers.StackPointer),
		A:      mc.Regs.Byte(registers.Accumulator),
		X:      mc.Regs.Byte(registers.IndexX),
		Y:      mc.Regs.Byte(registers.IndexY),
		Prefs:  make(map[string]bool),
	}

	for f := registers.Carry; f <= registers.Sign; f++ {
		if f == registers.Unused {
			continue
		}
		g.Flags[f.String()] = mc.Regs.Flag(f)
	}

	for _, k := range mc.Prefs.keys() {
		g.Prefs[k] = mc.Prefs.lookup(k).Get().(bool)
	}

	memviz.Map(w, &g)
}
