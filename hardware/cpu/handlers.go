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
	"github.com/jetsetilly/m6502core/hardware/cpu/execution"
	"github.com/jetsetilly/m6502core/hardware/cpu/instructions"
	"github.com/jetsetilly/m6502core/hardware/cpu/registers"
	"github.com/jetsetilly/m6502core/logger"
)

// handler is the uniform signature of every instruction implementation.
type handler func(mc *CPU, ctx execution.Context)

// lookup table of handlers keyed on operator
var handlers = [instructions.NumOperators]handler{
	instructions.Nop: nop,
	instructions.Adc: adc,
	instructions.And: and,
	instructions.Asl: asl,
	instructions.Bcc: bcc,
	instructions.Bcs: bcs,
	instructions.Beq: beq,
	instructions.Bit: bit,
	instructions.Bmi: bmi,
	instructions.Bne: bne,
	instructions.Bpl: bpl,
	instructions.Brk: brk,
	instructions.Bvc: bvc,
	instructions.Bvs: bvs,
	instructions.Clc: clc,
	instructions.Cld: cld,
	instructions.Cli: cli,
	instructions.Clv: clv,
	instructions.Cmp: cmp,
	instructions.Cpx: cpx,
	instructions.Cpy: cpy,
	instructions.Dec: dec,
	instructions.Dex: dex,
	instructions.Dey: dey,
	instructions.Eor: eor,
	instructions.Inc: inc,
	instructions.Inx: inx,
	instructions.Iny: iny,
	instructions.Jmp: jmp,
	instructions.Jsr: jsr,
	instructions.Lda: lda,
	instructions.Ldx: ldx,
	instructions.Ldy: ldy,
	instructions.Lsr: lsr,
	instructions.Ora: ora,
	instructions.Pha: pha,
	instructions.Php: php,
	instructions.Pla: pla,
	instructions.Plp: plp,
	instructions.Rol: rol,
	instructions.Ror: ror,
	instructions.Rti: rti,
	instructions.Rts: rts,
	instructions.Sbc: sbc,
	instructions.Sec: sec,
	instructions.Sed: sed,
	instructions.Sei: sei,
	instructions.Sta: sta,
	instructions.Stx: stx,
	instructions.Sty: sty,
	instructions.Tax: tax,
	instructions.Tay: tay,
	instructions.Tsx: tsx,
	instructions.Txa: txa,
	instructions.Txs: txs,
	instructions.Tya: tya,
}

func nop(_ *CPU, _ execution.Context) {}

// arithmetic

func adc(mc *CPU, ctx execution.Context) {
	a := mc.Regs.Byte(registers.Accumulator)
	v := ctx.Operand()
	c := mc.carry()

	sum := uint16(c) + uint16(a) + uint16(v)
	mc.setZero(uint8(sum))

	if mc.Regs.Flag(registers.Decimal) {
		if (a&0x0f)+(v&0x0f)+c > 9 {
			sum += 6
		}
		mc.setSign(uint8(sum))
		mc.setOverflow(a, v, uint8(sum))
		if sum > 0x99 {
			sum += 96
		}
		mc.setCarryBCD(sum)
	} else {
		mc.setSign(uint8(sum))
		mc.setOverflow(a, v, uint8(sum))
		mc.setCarry(sum)
	}

	mc.Regs.SetByte(registers.Accumulator, uint8(sum))
}

func sbc(mc *CPU, ctx execution.Context) {
	a := mc.Regs.Byte(registers.Accumulator)
	v := ctx.Operand()
	c := mc.carry()

	// the carry flag is subtracted as a borrow. the difference wraps at 16 bits
	diff := uint16(a) - uint16(v) - uint16(c)
	mc.setSignZero(uint8(diff))
	mc.setOverflowSubtract(a, v, uint8(diff))

	if mc.Regs.Flag(registers.Decimal) {
		if int(a&0x0f)-int(c) < int(v&0x0f) {
			diff -= 6
		}
		if diff > 0x99 {
			diff -= 0x60
		}
	}

	mc.Regs.SetFlag(registers.Carry, diff < 0x100)
	mc.Regs.SetByte(registers.Accumulator, uint8(diff))
}

// compare sets the flags for the difference between a register and the
// comparison value
func (mc *CPU) compare(reg registers.Name, ctx execution.Context) {
	var v uint16
	if mc.Prefs.CompareOperand.Get().(bool) {
		v = uint16(ctx.Operand())
	} else {
		v = ctx.Address()
	}
	diff := uint16(mc.Regs.Byte(reg)) - v
	mc.Regs.SetFlag(registers.Carry, diff < 0x100)
	mc.setSignZero(uint8(diff))
}

func cmp(mc *CPU, ctx execution.Context) {
	mc.compare(registers.Accumulator, ctx)
}

func cpx(mc *CPU, ctx execution.Context) {
	mc.compare(registers.IndexX, ctx)
}

func cpy(mc *CPU, ctx execution.Context) {
	mc.compare(registers.IndexY, ctx)
}

// logical

func and(mc *CPU, ctx execution.Context) {
	r := mc.Regs.Byte(registers.Accumulator) & ctx.Operand()
	mc.setSignZero(r)
	mc.Regs.SetByte(registers.Accumulator, r)
}

func ora(mc *CPU, ctx execution.Context) {
	r := mc.Regs.Byte(registers.Accumulator) | ctx.Operand()
	mc.setSignZero(r)
	mc.Regs.SetByte(registers.Accumulator, r)
}

func eor(mc *CPU, ctx execution.Context) {
	r := mc.Regs.Byte(registers.Accumulator) ^ ctx.Operand()
	mc.setSignZero(r)
	mc.Regs.SetByte(registers.Accumulator, r)
}

func bit(mc *CPU, ctx execution.Context) {
	v := ctx.Operand()
	mc.Regs.SetFlag(registers.Overflow, v&0x40 == 0x40)
	mc.Regs.SetFlag(registers.Sign, v&0x80 == 0x80)
	mc.Regs.SetFlag(registers.Zero, v&mc.Regs.Byte(registers.Accumulator) == 0)
}

// shifts and rotates. the result is written to the accumulator or to memory
// depending on the addressing mode

func (mc *CPU) storeShifted(ctx execution.Context, v uint8) {
	if ctx.Mode() == instructions.Accumulator {
		mc.Regs.SetByte(registers.Accumulator, v)
	} else {
		mc.mem.Write(ctx.Address(), v)
	}
}

func asl(mc *CPU, ctx execution.Context) {
	r := uint16(ctx.Operand()) << 1
	mc.setCarry(r)
	mc.setSignZero(uint8(r))
	mc.storeShifted(ctx, uint8(r))
}

func lsr(mc *CPU, ctx execution.Context) {
	v := ctx.Operand()
	r := v >> 1
	mc.Regs.SetFlag(registers.Carry, v&0x01 == 0x01)
	mc.setSignZero(r)
	mc.storeShifted(ctx, r)
}

func rol(mc *CPU, ctx execution.Context) {
	r := uint16(ctx.Operand())<<1 | uint16(mc.carry())
	mc.setCarry(r)
	mc.setSignZero(uint8(r))
	mc.storeShifted(ctx, uint8(r))
}

func ror(mc *CPU, ctx execution.Context) {
	v := ctx.Operand()
	r := v>>1 | mc.carry()<<7
	mc.Regs.SetFlag(registers.Carry, v&0x01 == 0x01)
	mc.setSignZero(r)
	mc.storeShifted(ctx, r)
}

// increment and decrement

func inc(mc *CPU, ctx execution.Context) {
	r := ctx.Operand() + 1
	mc.setSignZero(r)
	mc.mem.Write(ctx.Address(), r)
}

func dec(mc *CPU, ctx execution.Context) {
	r := ctx.Operand() - 1
	mc.setSignZero(r)
	mc.mem.Write(ctx.Address(), r)
}

func (mc *CPU) addRegister(reg registers.Name, v uint8) {
	r := mc.Regs.Byte(reg) + v
	mc.setSignZero(r)
	mc.Regs.SetByte(reg, r)
}

func inx(mc *CPU, _ execution.Context) {
	mc.addRegister(registers.IndexX, 1)
}

func iny(mc *CPU, _ execution.Context) {
	mc.addRegister(registers.IndexY, 1)
}

func dex(mc *CPU, _ execution.Context) {
	mc.addRegister(registers.IndexX, 0xff)
}

func dey(mc *CPU, _ execution.Context) {
	mc.addRegister(registers.IndexY, 0xff)
}

// branches

func (mc *CPU) branch(cond bool, ctx execution.Context) {
	if cond {
		mc.PC.Load(ctx.Address())
	}
}

func bcc(mc *CPU, ctx execution.Context) {
	mc.branch(!mc.Regs.Flag(registers.Carry), ctx)
}

func bcs(mc *CPU, ctx execution.Context) {
	mc.branch(mc.Regs.Flag(registers.Carry), ctx)
}

func beq(mc *CPU, ctx execution.Context) {
	mc.branch(mc.Regs.Flag(registers.Zero), ctx)
}

func bne(mc *CPU, ctx execution.Context) {
	mc.branch(!mc.Regs.Flag(registers.Zero), ctx)
}

func bmi(mc *CPU, ctx execution.Context) {
	mc.branch(mc.Regs.Flag(registers.Sign), ctx)
}

func bpl(mc *CPU, ctx execution.Context) {
	mc.branch(!mc.Regs.Flag(registers.Sign), ctx)
}

func bvc(mc *CPU, ctx execution.Context) {
	mc.branch(!mc.Regs.Flag(registers.Overflow), ctx)
}

func bvs(mc *CPU, ctx execution.Context) {
	mc.branch(mc.Regs.Flag(registers.Overflow), ctx)
}

// jumps, subroutines and interrupts

func jmp(mc *CPU, ctx execution.Context) {
	mc.PC.Load(ctx.Address())
}

func jsr(mc *CPU, ctx execution.Context) {
	// the return address pushed to the stack is the last byte of the JSR
	// instruction
	mc.PC.Add(0xffff)
	mc.pushAddress(mc.PC.Address())

	if mc.Prefs.JSRAddress.Get().(bool) {
		mc.PC.Load(ctx.Address())
	} else {
		mc.PC.Load(uint16(ctx.Operand()))
	}
}

func rts(mc *CPU, _ execution.Context) {
	mc.PC.Load(mc.pullAddress())
	mc.PC.Add(1)
}

func brk(mc *CPU, _ execution.Context) {
	mc.PC.Add(1)
	mc.pushAddress(mc.PC.Address())
	mc.Regs.SetFlag(registers.Break, true)
	mc.push(mc.Regs.Byte(registers.Status))
	mc.Regs.SetFlag(registers.Decimal, true)
	logger.Logf(logger.Allow, "CPU", "BRK with return address %s", mc.PC)
}

func rti(mc *CPU, _ execution.Context) {
	mc.Regs.LoadStatus(mc.pull())
	mc.PC.Load(mc.pullAddress())
}

// flags

func clc(mc *CPU, _ execution.Context) {
	mc.Regs.SetFlag(registers.Carry, false)
}

func cld(mc *CPU, _ execution.Context) {
	mc.Regs.SetFlag(registers.Decimal, false)
}

func cli(mc *CPU, _ execution.Context) {
	mc.Regs.SetFlag(registers.InterruptDisable, false)
}

func clv(mc *CPU, _ execution.Context) {
	mc.Regs.SetFlag(registers.Overflow, false)
}

func sec(mc *CPU, _ execution.Context) {
	mc.Regs.SetFlag(registers.Carry, true)
}

func sed(mc *CPU, _ execution.Context) {
	mc.Regs.SetFlag(registers.Decimal, true)
}

func sei(mc *CPU, _ execution.Context) {
	mc.Regs.SetFlag(registers.InterruptDisable, true)
}

// loads and stores

func (mc *CPU) load(reg registers.Name, ctx execution.Context) {
	v := ctx.Operand()
	mc.setSignZero(v)
	mc.Regs.SetByte(reg, v)
}

func lda(mc *CPU, ctx execution.Context) {
	mc.load(registers.Accumulator, ctx)
}

func ldx(mc *CPU, ctx execution.Context) {
	mc.load(registers.IndexX, ctx)
}

func ldy(mc *CPU, ctx execution.Context) {
	mc.load(registers.IndexY, ctx)
}

func sta(mc *CPU, ctx execution.Context) {
	mc.mem.Write(ctx.Address(), mc.Regs.Byte(registers.Accumulator))
}

func stx(mc *CPU, ctx execution.Context) {
	mc.mem.Write(ctx.Address(), mc.Regs.Byte(registers.IndexX))
}

func sty(mc *CPU, ctx execution.Context) {
	mc.mem.Write(ctx.Address(), mc.Regs.Byte(registers.IndexY))
}

// transfers. flags are set from the copied value if setFlags is true

func (mc *CPU) transfer(from registers.Name, to registers.Name, setFlags bool) {
	v := mc.Regs.Byte(from)
	if setFlags {
		mc.setSignZero(v)
	}
	mc.Regs.SetByte(to, v)
}

func tax(mc *CPU, _ execution.Context) {
	mc.transfer(registers.Accumulator, registers.IndexX, true)
}

func txa(mc *CPU, _ execution.Context) {
	mc.transfer(registers.IndexX, registers.Accumulator, true)
}

func tay(mc *CPU, _ execution.Context) {
	mc.transfer(registers.Accumulator, registers.IndexY, mc.Prefs.TransferFlags.Get().(bool))
}

func tya(mc *CPU, _ execution.Context) {
	mc.transfer(registers.IndexY, registers.Accumulator, mc.Prefs.TransferFlags.Get().(bool))
}

func tsx(mc *CPU, _ execution.Context) {
	mc.transfer(registers.StackPointer, registers.IndexX, true)
}

func txs(mc *CPU, _ execution.Context) {
	mc.transfer(registers.IndexX, registers.StackPointer, false)
}

// stack

func pha(mc *CPU, _ execution.Context) {
	mc.push(mc.Regs.Byte(registers.Accumulator))
}

func php(mc *CPU, _ execution.Context) {
	mc.push(mc.Regs.Byte(registers.Status))
}

func pla(mc *CPU, _ execution.Context) {
	v := mc.pull()
	mc.setSignZero(v)
	mc.Regs.SetByte(registers.Accumulator, v)
}

func plp(mc *CPU, _ execution.Context) {
	mc.Regs.LoadStatus(mc.pull())
}
