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

package decoder

import (
	"fmt"

	"github.com/jetsetilly/m6502core/hardware/cpu/instructions"
)

// Definition defines each instruction in the instruction set; one per opcode.
type Definition struct {
	OpCode         uint8
	Operator       instructions.Operator
	AddressingMode instructions.AddressingMode
	Bytes          int
	Effect         instructions.Category
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	return fmt.Sprintf("%02x %s +%dbytes [mode=%s effect=%s]", defn.OpCode, defn.Operator, defn.Bytes, defn.AddressingMode, defn.Effect)
}

// IsBranch returns true if instruction is a branch instruction.
func (defn Definition) IsBranch() bool {
	return defn.AddressingMode == instructions.Relative && defn.Effect == instructions.Flow
}

type entry struct {
	opcode uint8
	op     instructions.Operator
	mode   instructions.AddressingMode
}

// the documented instruction set, ordered by operator
var entries = []entry{
	{0x69, instructions.Adc, instructions.Immediate},
	{0x65, instructions.Adc, instructions.ZeroPage},
	{0x75, instructions.Adc, instructions.ZeroPageIndexedX},
	{0x6d, instructions.Adc, instructions.Absolute},
	{0x7d, instructions.Adc, instructions.AbsoluteIndexedX},
	{0x79, instructions.Adc, instructions.AbsoluteIndexedY},
	{0x61, instructions.Adc, instructions.IndexedIndirect},
	{0x71, instructions.Adc, instructions.IndirectIndexed},

	{0x29, instructions.And, instructions.Immediate},
	{0x25, instructions.And, instructions.ZeroPage},
	{0x35, instructions.And, instructions.ZeroPageIndexedX},
	{0x2d, instructions.And, instructions.Absolute},
	{0x3d, instructions.And, instructions.AbsoluteIndexedX},
	{0x39, instructions.And, instructions.AbsoluteIndexedY},
	{0x21, instructions.And, instructions.IndexedIndirect},
	{0x31, instructions.And, instructions.IndirectIndexed},

	{0x0a, instructions.Asl, instructions.Accumulator},
	{0x06, instructions.Asl, instructions.ZeroPage},
	{0x16, instructions.Asl, instructions.ZeroPageIndexedX},
	{0x0e, instructions.Asl, instructions.Absolute},
	{0x1e, instructions.Asl, instructions.AbsoluteIndexedX},

	{0x90, instructions.Bcc, instructions.Relative},
	{0xb0, instructions.Bcs, instructions.Relative},
	{0xf0, instructions.Beq, instructions.Relative},
	{0x30, instructions.Bmi, instructions.Relative},
	{0xd0, instructions.Bne, instructions.Relative},
	{0x10, instructions.Bpl, instructions.Relative},
	{0x50, instructions.Bvc, instructions.Relative},
	{0x70, instructions.Bvs, instructions.Relative},

	{0x24, instructions.Bit, instructions.ZeroPage},
	{0x2c, instructions.Bit, instructions.Absolute},

	{0x00, instructions.Brk, instructions.Implied},

	{0x18, instructions.Clc, instructions.Implied},
	{0xd8, instructions.Cld, instructions.Implied},
	{0x58, instructions.Cli, instructions.Implied},
	{0xb8, instructions.Clv, instructions.Implied},

	{0xc9, instructions.Cmp, instructions.Immediate},
	{0xc5, instructions.Cmp, instructions.ZeroPage},
	{0xd5, instructions.Cmp, instructions.ZeroPageIndexedX},
	{0xcd, instructions.Cmp, instructions.Absolute},
	{0xdd, instructions.Cmp, instructions.AbsoluteIndexedX},
	{0xd9, instructions.Cmp, instructions.AbsoluteIndexedY},
	{0xc1, instructions.Cmp, instructions.IndexedIndirect},
	{0xd1, instructions.Cmp, instructions.IndirectIndexed},

	{0xe0, instructions.Cpx, instructions.Immediate},
	{0xe4, instructions.Cpx, instructions.ZeroPage},
	{0xec, instructions.Cpx, instructions.Absolute},

	{0xc0, instructions.Cpy, instructions.Immediate},
	{0xc4, instructions.Cpy, instructions.ZeroPage},
	{0xcc, instructions.Cpy, instructions.Absolute},

	{0xc6, instructions.Dec, instructions.ZeroPage},
	{0xd6, instructions.Dec, instructions.ZeroPageIndexedX},
	{0xce, instructions.Dec, instructions.Absolute},
	{0xde, instructions.Dec, instructions.AbsoluteIndexedX},

	{0xca, instructions.Dex, instructions.Implied},
	{0x88, instructions.Dey, instructions.Implied},

	{0x49, instructions.Eor, instructions.Immediate},
	{0x45, instructions.Eor, instructions.ZeroPage},
	{0x55, instructions.Eor, instructions.ZeroPageIndexedX},
	{0x4d, instructions.Eor, instructions.Absolute},
	{0x5d, instructions.Eor, instructions.AbsoluteIndexedX},
	{0x59, instructions.Eor, instructions.AbsoluteIndexedY},
	{0x41, instructions.Eor, instructions.IndexedIndirect},
	{0x51, instructions.Eor, instructions.IndirectIndexed},

	{0xe6, instructions.Inc, instructions.ZeroPage},
	{0xf6, instructions.Inc, instructions.ZeroPageIndexedX},
	{0xee, instructions.Inc, instructions.Absolute},
	{0xfe, instructions.Inc, instructions.AbsoluteIndexedX},

	{0xe8, instructions.Inx, instructions.Implied},
	{0xc8, instructions.Iny, instructions.Implied},

	{0x4c, instructions.Jmp, instructions.Absolute},
	{0x6c, instructions.Jmp, instructions.Indirect},

	{0x20, instructions.Jsr, instructions.Absolute},

	{0xa9, instructions.Lda, instructions.Immediate},
	{0xa5, instructions.Lda, instructions.ZeroPage},
	{0xb5, instructions.Lda, instructions.ZeroPageIndexedX},
	{0xad, instructions.Lda, instructions.Absolute},
	{0xbd, instructions.Lda, instructions.AbsoluteIndexedX},
	{0xb9, instructions.Lda, instructions.AbsoluteIndexedY},
	{0xa1, instructions.Lda, instructions.IndexedIndirect},
	{0xb1, instructions.Lda, instructions.IndirectIndexed},

	{0xa2, instructions.Ldx, instructions.Immediate},
	{0xa6, instructions.Ldx, instructions.ZeroPage},
	{0xb6, instructions.Ldx, instructions.ZeroPageIndexedY},
	{0xae, instructions.Ldx, instructions.Absolute},
	{0xbe, instructions.Ldx, instructions.AbsoluteIndexedY},

	{0xa0, instructions.Ldy, instructions.Immediate},
	{0xa4, instructions.Ldy, instructions.ZeroPage},
	{0xb4, instructions.Ldy, instructions.ZeroPageIndexedX},
	{0xac, instructions.Ldy, instructions.Absolute},
	{0xbc, instructions.Ldy, instructions.AbsoluteIndexedX},

	{0x4a, instructions.Lsr, instructions.Accumulator},
	{0x46, instructions.Lsr, instructions.ZeroPage},
	{0x56, instructions.Lsr, instructions.ZeroPageIndexedX},
	{0x4e, instructions.Lsr, instructions.Absolute},
	{0x5e, instructions.Lsr, instructions.AbsoluteIndexedX},

	{0xea, instructions.Nop, instructions.Implied},

	{0x09, instructions.Ora, instructions.Immediate},
	{0x05, instructions.Ora, instructions.ZeroPage},
	{0x15, instructions.Ora, instructions.ZeroPageIndexedX},
	{0x0d, instructions.Ora, instructions.Absolute},
	{0x1d, instructions.Ora, instructions.AbsoluteIndexedX},
	{0x19, instructions.Ora, instructions.AbsoluteIndexedY},
	{0x01, instructions.Ora, instructions.IndexedIndirect},
	{0x11, instructions.Ora, instructions.IndirectIndexed},

	{0x48, instructions.Pha, instructions.Implied},
	{0x08, instructions.Php, instructions.Implied},
	{0x68, instructions.Pla, instructions.Implied},
	{0x28, instructions.Plp, instructions.Implied},

	{0x2a, instructions.Rol, instructions.Accumulator},
	{0x26, instructions.Rol, instructions.ZeroPage},
	{0x36, instructions.Rol, instructions.ZeroPageIndexedX},
	{0x2e, instructions.Rol, instructions.Absolute},
	{0x3e, instructions.Rol, instructions.AbsoluteIndexedX},

	{0x6a, instructions.Ror, instructions.Accumulator},
	{0x66, instructions.Ror, instructions.ZeroPage},
	{0x76, instructions.Ror, instructions.ZeroPageIndexedX},
	{0x6e, instructions.Ror, instructions.Absolute},
	{0x7e, instructions.Ror, instructions.AbsoluteIndexedX},

	{0x40, instructions.Rti, instructions.Implied},
	{0x60, instructions.Rts, instructions.Implied},

	{0xe9, instructions.Sbc, instructions.Immediate},
	{0xe5, instructions.Sbc, instructions.ZeroPage},
	{0xf5, instructions.Sbc, instructions.ZeroPageIndexedX},
	{0xed, instructions.Sbc, instructions.Absolute},
	{0xfd, instructions.Sbc, instructions.AbsoluteIndexedX},
	{0xf9, instructions.Sbc, instructions.AbsoluteIndexedY},
	{0xe1, instructions.Sbc, instructions.IndexedIndirect},
	{0xf1, instructions.Sbc, instructions.IndirectIndexed},

	{0x38, instructions.Sec, instructions.Implied},
	{0xf8, instructions.Sed, instructions.Implied},
	{0x78, instructions.Sei, instructions.Implied},

	{0x85, instructions.Sta, instructions.ZeroPage},
	{0x95, instructions.Sta, instructions.ZeroPageIndexedX},
	{0x8d, instructions.Sta, instructions.Absolute},
	{0x9d, instructions.Sta, instructions.AbsoluteIndexedX},
	{0x99, instructions.Sta, instructions.AbsoluteIndexedY},
	{0x81, instructions.Sta, instructions.IndexedIndirect},
	{0x91, instructions.Sta, instructions.IndirectIndexed},

	{0x86, instructions.Stx, instructions.ZeroPage},
	{0x96, instructions.Stx, instructions.ZeroPageIndexedY},
	{0x8e, instructions.Stx, instructions.Absolute},

	{0x84, instructions.Sty, instructions.ZeroPage},
	{0x94, instructions.Sty, instructions.ZeroPageIndexedX},
	{0x8c, instructions.Sty, instructions.Absolute},

	{0xaa, instructions.Tax, instructions.Implied},
	{0xa8, instructions.Tay, instructions.Implied},
	{0xba, instructions.Tsx, instructions.Implied},
	{0x8a, instructions.Txa, instructions.Implied},
	{0x9a, instructions.Txs, instructions.Implied},
	{0x98, instructions.Tya, instructions.Implied},
}

// lookup table indexed by opcode. nil entries are undefined opcodes
var table [256]*Definition

// definitions in the order of the entries list
var definitions []Definition

func init() {
	definitions = make([]Definition, 0, len(entries))
	for _, e := range entries {
		if table[e.opcode] != nil {
			panic(fmt.Sprintf("decoder: duplicate opcode (%#02x)", e.opcode))
		}
		definitions = append(definitions, Definition{
			OpCode:         e.opcode,
			Operator:       e.op,
			AddressingMode: e.mode,
			Bytes:          e.mode.Bytes(),
			Effect:         e.op.Category(),
		})
	}
	for i := range definitions {
		table[definitions[i].OpCode] = &definitions[i]
	}
}

// Definitions returns a copy of the list of documented instructions.
func Definitions() []Definition {
	d := make([]Definition, len(definitions))
	copy(d, definitions)
	return d
}

// Lookup returns the Definition for the opcode. Returns false if the opcode is
// not a documented instruction.
func Lookup(opcode uint8) (Definition, bool) {
	if table[opcode] == nil {
		return Definition{}, false
	}
	return *table[opcode], true
}
