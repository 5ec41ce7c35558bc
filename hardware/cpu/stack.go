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
	"github.com/jetsetilly/m6502core/hardware/cpu/registers"
	"github.com/jetsetilly/m6502core/hardware/memory"
)

// push writes a value to the top of the stack and decrements the stack
// pointer. The stack pointer wraps from 0x00 to 0xff.
func (mc *CPU) push(v uint8) {
	sp := mc.Regs.Byte(registers.StackPointer)
	mc.mem.Write(memory.StackPage|uint16(sp), v)
	mc.Regs.SetByte(registers.StackPointer, sp-1)
}

// pull increments the stack pointer and reads the value at the top of the
// stack. The stack pointer wraps from 0xff to 0x00.
func (mc *CPU) pull() uint8 {
	sp := mc.Regs.Byte(registers.StackPointer) + 1
	mc.Regs.SetByte(registers.StackPointer, sp)
	return mc.mem.Read(memory.StackPage | uint16(sp))
}

// pushAddress pushes the high byte followed by the low byte.
func (mc *CPU) pushAddress(address uint16) {
	mc.push(uint8(address >> 8))
	mc.push(uint8(address))
}

// pullAddress is the counterpart to pushAddress.
func (mc *CPU) pullAddress() uint16 {
	lo := mc.pull()
	hi := mc.pull()
	return uint16(hi)<<8 | uint16(lo)
}
