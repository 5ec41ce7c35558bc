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

// Package cpu is the execution core of a 6502 microprocessor. It holds the
// CPU state (program counter, register file and a reference to memory) and
// implements the behaviour of every documented instruction.
//
// The CPU does not fetch or decode instructions itself. Instructions arrive
// as an operator and an execution.Context, prepared by a decoder:
//
//	mc := cpu.NewCPU(nil)
//	ctx := execution.NewContext(0x50, 0, instructions.Immediate)
//	err := mc.Execute(instructions.Adc, ctx)
//
// For convenience, Step() uses the decoder package to fetch, decode and
// execute the instruction at the program counter:
//
//	mc.LoadPC(0x0200)
//	for {
//		defn, err := mc.Step()
//		if err != nil {
//			...
//		}
//		if defn.Operator == instructions.Brk {
//			break
//		}
//	}
//
// No cycle counting is performed by the package.
//
// Where the 6502 reference behaviour of this core differs from the behaviour
// of the hardware, the hardware behaviour can be selected with the
// Preferences attached to the CPU. See the Preferences type for details.
//
// The CPU is not safe for concurrent use. One goroutine should own a CPU
// instance. Different instances share no state.
package cpu
