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

package registers

import "fmt"

// Name identifies one of the 8 bit registers in the File.
type Name int

// List of valid register names.
const (
	Status Name = iota
	StackPointer
	Accumulator
	IndexX
	IndexY

	// NumRegisters is the number of registers in the File
	NumRegisters
)

func (n Name) String() string {
	switch n {
	case Status:
		return "SR"
	case StackPointer:
		return "SP"
	case Accumulator:
		return "A"
	case IndexX:
		return "X"
	case IndexY:
		return "Y"
	}
	return fmt.Sprintf("register(%d)", int(n))
}

// Valid returns true if the Name refers to a register in the File.
func (n Name) Valid() bool {
	return n >= Status && n < NumRegisters
}

// Flag identifies one bit of the status register. The value of the Flag is
// the bit index.
type Flag int

// List of status register flags.
const (
	Carry Flag = iota
	Zero
	InterruptDisable
	Decimal
	Break
	Unused
	Overflow
	Sign
)

func (f Flag) String() string {
	switch f {
	case Carry:
		return "Carry"
	case Zero:
		return "Zero"
	case InterruptDisable:
		return "InterruptDisable"
	case Decimal:
		return "Decimal"
	case Break:
		return "Break"
	case Unused:
		return "Unused"
	case Overflow:
		return "Overflow"
	case Sign:
		return "Sign"
	}
	return fmt.Sprintf("flag(%d)", int(f))
}

// UnusedBit is the value of the unused bit in the status register.
const UnusedBit = uint8(1 << Unused)

// flag symbols, most significant bit first
const flagSymbols = "SVUBDIZC"
