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
	"github.com/jetsetilly/m6502core/hardware/cpu/flags"
	"github.com/jetsetilly/m6502core/hardware/cpu/registers"
)

// the following functions set a single flag in the status register from a
// result. results that may be larger than a byte are passed as uint16

func (mc *CPU) setCarry(wide uint16) {
	mc.Regs.SetFlag(registers.Carry, flags.Carry(wide))
}

func (mc *CPU) setCarryBCD(wide uint16) {
	mc.Regs.SetFlag(registers.Carry, flags.CarryBCD(wide))
}

func (mc *CPU) setOverflow(a, b, result uint8) {
	mc.Regs.SetFlag(registers.Overflow, flags.Overflow(a, b, result))
}

func (mc *CPU) setOverflowSubtract(a, b, result uint8) {
	mc.Regs.SetFlag(registers.Overflow, flags.OverflowSubtract(a, b, result))
}

func (mc *CPU) setSign(v uint8) {
	mc.Regs.SetFlag(registers.Sign, flags.Sign(v))
}

func (mc *CPU) setZero(v uint8) {
	mc.Regs.SetFlag(registers.Zero, flags.Zero(v))
}

// most instructions that produce a value set both sign and zero flags
func (mc *CPU) setSignZero(v uint8) {
	mc.setSign(v)
	mc.setZero(v)
}

// carry flag as a number suitable for arithmetic
func (mc *CPU) carry() uint8 {
	return mc.Regs.Bit(registers.Status, uint8(registers.Carry))
}
