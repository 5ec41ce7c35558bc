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

// Package registers implements the register file of the 6502: the 16 bit
// program counter and the five 8 bit registers (status, stack pointer,
// accumulator, X and Y).
//
// The 8 bit registers are held in a File and are addressed by Name. Access is
// at the bit level with SetBit()/Bit() or at the byte level with
// SetByte()/Byte(). The status register is additionally addressed by Flag:
//
//	var f registers.File
//	f.Reset()
//	f.SetFlag(registers.Carry, true)
//	f.Byte(registers.Status) // 0x21
//
// Bit 5 of the status register is unused and always reads as 1 after Reset().
// It can not be cleared through the bit or flag accessors.
//
// Preconditions of the accessors (bit index in range, bit value of 0 or 1, a
// valid register name, and protection of the unused status bit) are
// programming errors. Violations panic with a curated error.
package registers
