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

package instructions

import "strings"

// Operator is the mnemonic of an instruction.
type Operator int

// List of documented 6502 operators.
const (
	Nop Operator = iota
	Adc
	And
	Asl
	Bcc
	Bcs
	Beq
	Bit
	Bmi
	Bne
	Bpl
	Brk
	Bvc
	Bvs
	Clc
	Cld
	Cli
	Clv
	Cmp
	Cpx
	Cpy
	Dec
	Dex
	Dey
	Eor
	Inc
	Inx
	Iny
	Jmp
	Jsr
	Lda
	Ldx
	Ldy
	Lsr
	Ora
	Pha
	Php
	Pla
	Plp
	Rol
	Ror
	Rti
	Rts
	Sbc
	Sec
	Sed
	Sei
	Sta
	Stx
	Sty
	Tax
	Tay
	Tsx
	Txa
	Txs
	Tya

	// NumOperators is the number of operators in the list
	NumOperators
)

var mnemonics = [NumOperators]string{
	"NOP", "ADC", "AND", "ASL", "BCC", "BCS", "BEQ", "BIT", "BMI", "BNE",
	"BPL", "BRK", "BVC", "BVS", "CLC", "CLD", "CLI", "CLV", "CMP", "CPX",
	"CPY", "DEC", "DEX", "DEY", "EOR", "INC", "INX", "INY", "JMP", "JSR",
	"LDA", "LDX", "LDY", "LSR", "ORA", "PHA", "PHP", "PLA", "PLP", "ROL",
	"ROR", "RTI", "RTS", "SBC", "SEC", "SED", "SEI", "STA", "STX", "STY",
	"TAX", "TAY", "TSX", "TXA", "TXS", "TYA",
}

func (op Operator) String() string {
	if op < 0 || op >= NumOperators {
		return "???"
	}
	return mnemonics[op]
}

// ParseOperator returns the Operator for the mnemonic. The mnemonic is case
// insensitive.
func ParseOperator(mnemonic string) (Operator, bool) {
	m := strings.ToUpper(strings.TrimSpace(mnemonic))
	for i, s := range mnemonics {
		if s == m {
			return Operator(i), true
		}
	}
	return Nop, false
}

// Category returns the effect category of the operator.
func (op Operator) Category() Category {
	switch op {
	case Sta, Stx, Sty:
		return Write
	case Asl, Lsr, Rol, Ror, Inc, Dec:
		return RMW
	case Bcc, Bcs, Beq, Bmi, Bne, Bpl, Bvc, Bvs, Jmp:
		return Flow
	case Jsr, Rts:
		return Subroutine
	case Brk, Rti:
		return Interrupt
	}
	return Read
}
