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

// Package decoder turns the bytes at the program counter into a Definition
// and an execution.Context, ready to be handed to the CPU.
//
// Definitions() lists the 151 documented opcodes of the 6502. Decode() looks
// up the opcode at the program counter and resolves the addressing mode:
//
//	defn, ctx, err := decoder.Decode(mem, pc, regs)
//	if err != nil {
//		if curated.Is(err, decoder.UndefinedOpcode) {
//			...
//		}
//	}
//
// Resolution of the effective address follows the 6502 rules. Zero page
// indexing wraps within page zero and the Indirect mode (JMP only) reproduces
// the page boundary bug of the original hardware: the high byte of the
// pointer is read from the start of the same page when the pointer's low byte
// is 0xff.
//
// The operand of the context depends on the addressing mode and the effect
// category of the instruction. For the Immediate mode it is the byte
// following the opcode and for the Accumulator mode it is the value of the
// accumulator. Read and RMW instructions that address memory have the value
// at the effective address as the operand. Flow and Subroutine instructions
// have the low byte of the instruction argument.
//
// Memory is never read for Write instructions. The decoder does not count
// cycles.
package decoder
