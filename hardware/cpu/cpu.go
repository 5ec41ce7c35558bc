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

	"github.com/jetsetilly/m6502core/curated"
	"github.com/jetsetilly/m6502core/hardware/cpu/decoder"
	"github.com/jetsetilly/m6502core/hardware/cpu/execution"
	"github.com/jetsetilly/m6502core/hardware/cpu/instructions"
	"github.com/jetsetilly/m6502core/hardware/cpu/registers"
	"github.com/jetsetilly/m6502core/hardware/memory"
	"github.com/jetsetilly/m6502core/logger"
)

// UnknownOperator is the pattern for errors returned by Execute() when no
// handler exists for the operator.
const UnknownOperator = "cpu: unknown operator (%d)"

// CPU implements the 6502 execution core. Register logic is implemented by
// the registers sub-package.
type CPU struct {
	PC   registers.ProgramCounter
	Regs registers.File

	// behaviour switches
	Prefs *Preferences

	mem memory.Memory
}

// NewCPU is the preferred method of initialisation for the CPU type. If mem
// is nil a new memory.Flat instance is used.
//
// The new CPU is in the reset state: all registers zero with the exception of
// the unused status bit, and the PC at zero.
func NewCPU(mem memory.Memory) *CPU {
	if mem == nil {
		mem = memory.NewFlat()
	}
	mc := &CPU{
		PC:    registers.NewProgramCounter(0),
		Regs:  registers.NewFile(),
		Prefs: NewPreferences(),
		mem:   mem,
	}
	return mc
}

// Memory returns the memory attached to the CPU.
func (mc *CPU) Memory() memory.Memory {
	return mc.mem
}

// Reset reinitialises all registers and the program counter, and clears
// memory if the memory implementation supports it. Does not load the PC from
// the reset vector. Use LoadPCIndirect(memory.Reset) when appropriate.
//
// Preferences are not changed.
func (mc *CPU) Reset() {
	mc.PC.Load(0)
	mc.Regs.Reset()
	if c, ok := mc.mem.(memory.Clearer); ok {
		c.Clear()
	}
	logger.Log(logger.Allow, "CPU", "reset")
}

// Read a byte from memory.
func (mc *CPU) Read(address uint16) uint8 {
	return mc.mem.Read(address)
}

// Write a byte to memory.
func (mc *CPU) Write(address uint16, data uint8) {
	mc.mem.Write(address, data)
}

// LoadPC loads the PC with the address.
func (mc *CPU) LoadPC(address uint16) {
	mc.PC.Load(address)
}

// LoadPCIndirect loads the PC with the 16 bit little-endian value stored at
// the address. Used to load the PC from an interrupt vector.
func (mc *CPU) LoadPCIndirect(address uint16) {
	lo := mc.mem.Read(address)
	hi := mc.mem.Read(address + 1)
	mc.PC.Load(uint16(hi)<<8 | uint16(lo))
}

// Execute the operator with the data supplied in the context. The PC should
// already point to the next instruction.
//
// Returns an error only if the operator is not recognised.
func (mc *CPU) Execute(op instructions.Operator, ctx execution.Context) error {
	if op < 0 || op >= instructions.NumOperators || handlers[op] == nil {
		return curated.Errorf(UnknownOperator, int(op))
	}
	handlers[op](mc, ctx)
	return nil
}

// Step decodes the instruction at the PC, advances the PC past the
// instruction and executes it. The definition of the executed instruction is
// returned.
//
// If the BRKVector preference is set, the PC is loaded from the BRK vector
// after a BRK instruction.
func (mc *CPU) Step() (decoder.Definition, error) {
	defn, ctx, err := decoder.Decode(mc.mem, mc.PC.Address(), mc.Regs)
	if err != nil {
		return defn, err
	}

	mc.PC.Add(uint16(defn.Bytes))

	err = mc.Execute(defn.Operator, ctx)
	if err != nil {
		return defn, err
	}

	if defn.Operator == instructions.Brk && mc.Prefs.BRKVector.Get().(bool) {
		mc.LoadPCIndirect(memory.BRK)
	}

	return defn, nil
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%#02x %s=%#02x %s=%#02x %s=%#02x %s=%s",
		mc.PC.Label(), mc.PC,
		registers.Accumulator, mc.Regs.Byte(registers.Accumulator),
		registers.IndexX, mc.Regs.Byte(registers.IndexX),
		registers.IndexY, mc.Regs.Byte(registers.IndexY),
		registers.StackPointer, mc.Regs.Byte(registers.StackPointer),
		registers.Status, mc.Regs.StatusString())
}
