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

package registers_test

import (
	"fmt"
	"testing"

	"github.com/jetsetilly/m6502core/curated"
	"github.com/jetsetilly/m6502core/hardware/cpu/registers"
	"github.com/jetsetilly/m6502core/test"
)

var allRegisters = []registers.Name{
	registers.Status,
	registers.StackPointer,
	registers.Accumulator,
	registers.IndexX,
	registers.IndexY,
}

func TestInitialState(t *testing.T) {
	f := registers.NewFile()
	test.ExpectEquality(t, f.Byte(registers.Status), 0x20)
	test.ExpectEquality(t, f.Byte(registers.StackPointer), 0x00)
	test.ExpectEquality(t, f.Byte(registers.Accumulator), 0x00)
	test.ExpectEquality(t, f.Byte(registers.IndexX), 0x00)
	test.ExpectEquality(t, f.Byte(registers.IndexY), 0x00)
	test.ExpectEquality(t, f.StatusString(), "sv-bdizc")
	test.ExpectEquality(t, f.StatusBits(), "00100000")
	test.ExpectEquality(t, registers.StatusHeader(), "SVUBDIZC")
}

func TestSetBit(t *testing.T) {
	// bit patterns used as the background for each bit test
	backgrounds := []uint8{0x00, 0xff, 0xa5, 0x5a}

	for _, reg := range allRegisters {
		for bit := uint8(0); bit < 8; bit++ {
			for _, bg := range backgrounds {
				for value := uint8(0); value <= 1; value++ {
					// clearing the unused status bit is not allowed
					if reg == registers.Status && bit == 5 && value == 0 {
						continue
					}

					f := registers.NewFile()
					f.SetByte(reg, bg)
					f.SetBit(reg, bit, value)

					tag := fmt.Sprintf("%s bit %d bg %#02x", reg, bit, bg)
					test.ExpectEquality(t, f.Bit(reg, bit), value, tag)

					// all other bits are unchanged
					mask := uint8(1) << bit
					test.ExpectEquality(t, f.Byte(reg)&^mask, bg&^mask, tag)
				}
			}
		}
	}
}

func TestByteRoundTrip(t *testing.T) {
	f := registers.NewFile()
	for _, reg := range allRegisters {
		for v := 0; v <= 0xff; v++ {
			f.SetByte(reg, uint8(v))
			test.ExpectEquality(t, f.Byte(reg), uint8(v), reg)
		}
	}
}

func TestFlags(t *testing.T) {
	f := registers.NewFile()

	flags := []registers.Flag{
		registers.Carry,
		registers.Zero,
		registers.InterruptDisable,
		registers.Decimal,
		registers.Break,
		registers.Overflow,
		registers.Sign,
	}

	for _, fl := range flags {
		f.SetFlag(fl, true)
		test.ExpectSuccess(t, f.Flag(fl), fl)
		test.ExpectEquality(t, f.Bit(registers.Status, uint8(fl)), 1, fl)
		test.ExpectEquality(t, f.Bit(registers.Status, 5), 1, fl)
	}
	test.ExpectEquality(t, f.Byte(registers.Status), 0xff)
	test.ExpectEquality(t, f.StatusString(), "SV-BDIZC")

	for _, fl := range flags {
		f.SetFlag(fl, false)
		test.ExpectFailure(t, f.Flag(fl), fl)
		test.ExpectEquality(t, f.Bit(registers.Status, 5), 1, fl)
	}
	test.ExpectEquality(t, f.Byte(registers.Status), 0x20)
}

func TestLoadStatus(t *testing.T) {
	f := registers.NewFile()
	f.LoadStatus(0x00)
	test.ExpectEquality(t, f.Byte(registers.Status), 0x20)
	f.LoadStatus(0xc3)
	test.ExpectEquality(t, f.Byte(registers.Status), 0xe3)
	test.ExpectEquality(t, f.StatusString(), "SV-bdiZC")
}

func TestReset(t *testing.T) {
	f := registers.NewFile()
	for _, reg := range allRegisters {
		f.SetByte(reg, 0x99)
	}
	f.Reset()
	test.ExpectEquality(t, f, registers.NewFile())
}

func expectAccessorPanic(t *testing.T, pattern string, fn func()) {
	t.Helper()
	r := test.ExpectPanic(t, fn)
	if err, ok := r.(error); ok {
		test.ExpectSuccess(t, curated.Is(err, pattern), err)
	} else {
		t.Errorf("panic value is not an error (%T)", r)
	}
}

func TestAccessorPanics(t *testing.T) {
	f := registers.NewFile()

	expectAccessorPanic(t, registers.InvalidBit, func() { f.SetBit(registers.Accumulator, 8, 1) })
	expectAccessorPanic(t, registers.InvalidBit, func() { f.Bit(registers.Accumulator, 8) })
	expectAccessorPanic(t, registers.InvalidBitValue, func() { f.SetBit(registers.Accumulator, 0, 2) })
	expectAccessorPanic(t, registers.InvalidRegister, func() { f.SetByte(registers.NumRegisters, 0) })
	expectAccessorPanic(t, registers.InvalidRegister, func() { f.Byte(registers.Name(-1)) })
	expectAccessorPanic(t, registers.ReservedBit, func() { f.SetFlag(registers.Unused, true) })
	expectAccessorPanic(t, registers.ReservedBit, func() { f.Flag(registers.Unused) })
	expectAccessorPanic(t, registers.ReservedBit, func() { f.SetBit(registers.Status, 5, 0) })

	// setting the unused bit is harmless
	f.SetBit(registers.Status, 5, 1)
	test.ExpectEquality(t, f.Byte(registers.Status), 0x20)
}
