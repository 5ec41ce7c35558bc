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

package decoder

import (
	"github.com/jetsetilly/m6502core/curated"
	"github.com/jetsetilly/m6502core/hardware/cpu/execution"
	"github.com/jetsetilly/m6502core/hardware/cpu/instructions"
	"github.com/jetsetilly/m6502core/hardware/cpu/registers"
	"github.com/jetsetilly/m6502core/hardware/memory"
)

// UndefinedOpcode is the pattern for errors returned by Decode() when the
// opcode at the program counter is not a documented instruction.
const UndefinedOpcode = "decoder: undefined opcode (%#02x) at %#04x"

// Decode the instruction at pc. The register file supplies the index
// registers and, for the Accumulator mode, the accumulator.
//
// Decode has no side effects on the CPU. The program counter should be
// advanced by Definition.Bytes before the instruction is executed.
func Decode(mem memory.Memory, pc uint16, regs registers.File) (Definition, execution.Context, error) {
	opcode := mem.Read(pc)
	defn, ok := Lookup(opcode)
	if !ok {
		return Definition{}, execution.Context{}, curated.Errorf(UndefinedOpcode, opcode, pc)
	}

	lo := mem.Read(pc + 1)
	hi := mem.Read(pc + 2)
	abs := uint16(lo) | uint16(hi)<<8

	x := regs.Byte(registers.IndexX)
	y := regs.Byte(registers.IndexY)

	var operand uint8
	var address uint16

	switch defn.AddressingMode {
	case instructions.Implied:
		return defn, execution.NewContext(0, 0, defn.AddressingMode), nil

	case instructions.Accumulator:
		a := regs.Byte(registers.Accumulator)
		return defn, execution.NewContext(a, 0, defn.AddressingMode), nil

	case instructions.Immediate:
		// the effective address of an immediate value is the location of
		// the value in the instruction stream
		return defn, execution.NewContext(lo, pc+1, defn.AddressingMode), nil

	case instructions.Relative:
		// offset is relative to the address of the next instruction
		address = pc + 2 + uint16(int8(lo))
		return defn, execution.NewContext(lo, address, defn.AddressingMode), nil

	case instructions.Absolute:
		address = abs

	case instructions.ZeroPage:
		address = uint16(lo)

	case instructions.Indirect:
		// the high byte of the pointer does not cross a page boundary
		hiPtr := (abs & 0xff00) | uint16(lo+1)
		address = uint16(mem.Read(abs)) | uint16(mem.Read(hiPtr))<<8

	case instructions.IndexedIndirect:
		zp := lo + x
		address = zeroPagePointer(mem, zp)

	case instructions.IndirectIndexed:
		address = zeroPagePointer(mem, lo) + uint16(y)

	case instructions.AbsoluteIndexedX:
		address = abs + uint16(x)

	case instructions.AbsoluteIndexedY:
		address = abs + uint16(y)

	case instructions.ZeroPageIndexedX:
		address = uint16(lo + x)

	case instructions.ZeroPageIndexedY:
		address = uint16(lo + y)
	}

	if defn.AddressingMode.IsMemory() {
		switch defn.Effect {
		case instructions.Read, instructions.RMW:
			operand = mem.Read(address)
		case instructions.Flow, instructions.Subroutine:
			operand = lo
		}
	}

	return defn, execution.NewContext(operand, address, defn.AddressingMode), nil
}

// reads a 16 bit pointer from the zero page. the high byte is read from the
// start of page zero if zp is 0xff
func zeroPagePointer(mem memory.Memory, zp uint8) uint16 {
	return uint16(mem.Read(uint16(zp))) | uint16(mem.Read(uint16(zp+1)))<<8
}
