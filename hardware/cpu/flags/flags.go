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

// Package flags contains the rules for deriving the carry, zero, sign and
// overflow flags from the inputs and outputs of an arithmetic operation.
//
// The functions are pure. Arithmetic is expected to be performed on values
// widened to 16 bits so that the carry can be derived from the result before
// it is masked back to 8 bits.
package flags

// Carry returns true if the widened result of a binary addition does not fit
// in 8 bits.
func Carry(wide uint16) bool {
	return wide > 0xff
}

// CarryBCD returns true if the widened result of a decimal mode addition is
// larger than the largest two digit BCD value.
func CarryBCD(wide uint16) bool {
	return wide > 0x99
}

// Overflow returns true if adding a and b to get result caused a two's
// complement overflow. That is, the operands have the same sign and the sign
// of the result differs from it.
func Overflow(a, b, result uint8) bool {
	return (a^b)&0x80 == 0 && (a^result)&0x80 != 0
}

// OverflowSubtract returns true if subtracting b from a to get result caused
// a two's complement overflow. The operands have different signs and the sign
// of the result differs from a.
func OverflowSubtract(a, b, result uint8) bool {
	return (a^b)&0x80 != 0 && (a^result)&0x80 != 0
}

// Sign returns the state of bit 7.
func Sign(v uint8) bool {
	return v&0x80 == 0x80
}

// Zero returns true if v is zero.
func Zero(v uint8) bool {
	return v == 0
}
