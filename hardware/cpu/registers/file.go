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

import (
	"strings"

	"github.com/jetsetilly/m6502core/curated"
)

// Sentinal patterns for panics caused by invalid use of the accessors.
const (
	InvalidRegister = "registers: invalid register (%d)"
	InvalidBit      = "registers: bit index out of range (%d)"
	InvalidBitValue = "registers: bit value must be 0 or 1 (%d)"
	ReservedBit     = "registers: status bit %d is reserved"
)

// File is the collection of 8 bit registers. The zero value is not a valid
// initial state because the unused status bit is clear; use NewFile() or
// Reset().
type File [NumRegisters]uint8

// NewFile is the preferred method of initialisation for the File type.
func NewFile() File {
	var f File
	f.Reset()
	return f
}

// Reset all registers to zero, with the exception of the unused status bit,
// which is set.
func (f *File) Reset() {
	*f = File{}
	f[Status] = UnusedBit
}

func mustBeValid(reg Name) {
	if !reg.Valid() {
		panic(curated.Errorf(InvalidRegister, int(reg)))
	}
}

func mustBeValidBit(bit uint8) {
	if bit > 7 {
		panic(curated.Errorf(InvalidBit, bit))
	}
}

// SetBit sets a single bit of a register to value. The other bits are
// unchanged.
func (f *File) SetBit(reg Name, bit uint8, value uint8) {
	mustBeValid(reg)
	mustBeValidBit(bit)
	if value > 1 {
		panic(curated.Errorf(InvalidBitValue, value))
	}
	if reg == Status && bit == uint8(Unused) && value == 0 {
		panic(curated.Errorf(ReservedBit, bit))
	}
	f[reg] = (f[reg] &^ (1 << bit)) | (value << bit)
}

// Bit returns the value (0 or 1) of a single bit of a register.
func (f File) Bit(reg Name, bit uint8) uint8 {
	mustBeValid(reg)
	mustBeValidBit(bit)
	return (f[reg] >> bit) & 0x01
}

// SetFlag sets or clears a flag in the status register. The Unused flag can
// not be set.
func (f *File) SetFlag(flag Flag, value bool) {
	if flag == Unused {
		panic(curated.Errorf(ReservedBit, int(flag)))
	}
	var v uint8
	if value {
		v = 1
	}
	f.SetBit(Status, uint8(flag), v)
}

// Flag returns the state of a flag in the status register. The Unused flag
// can not be read.
func (f File) Flag(flag Flag) bool {
	if flag == Unused {
		panic(curated.Errorf(ReservedBit, int(flag)))
	}
	return f.Bit(Status, uint8(flag)) == 1
}

// SetByte loads a value into a register. The value is stored as is, which
// means that loading the status register with a value that has bit 5 clear
// will clear the unused bit. See LoadStatus().
func (f *File) SetByte(reg Name, value uint8) {
	mustBeValid(reg)
	f[reg] = value
}

// Byte returns the value of a register.
func (f File) Byte(reg Name) uint8 {
	mustBeValid(reg)
	return f[reg]
}

// LoadStatus loads a value into the status register, forcing the unused bit.
// Used when the status register is loaded from data, for example from the
// stack.
func (f *File) LoadStatus(value uint8) {
	f[Status] = value | UnusedBit
}

// StatusBits returns the status register as a string of eight '0' and '1'
// characters, most significant bit first. Matches the order of StatusHeader.
func (f File) StatusBits() string {
	s := strings.Builder{}
	for b := 7; b >= 0; b-- {
		if f[Status]&(1<<b) != 0 {
			s.WriteRune('1')
		} else {
			s.WriteRune('0')
		}
	}
	return s.String()
}

// StatusHeader labels each bit in the StatusBits() string.
func StatusHeader() string {
	return flagSymbols
}

// StatusString returns the status register as a string of flag symbols.
// Upper case symbols indicate a set flag and lower case a clear flag. The
// unused bit is always shown as '-'.
func (f File) StatusString() string {
	s := strings.Builder{}
	for b := 7; b >= 0; b-- {
		r := rune(flagSymbols[7-b])
		switch {
		case b == int(Unused):
			s.WriteRune('-')
		case f[Status]&(1<<b) != 0:
			s.WriteRune(r)
		default:
			s.WriteString(strings.ToLower(string(r)))
		}
	}
	return s.String()
}
