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

package execution

import (
	"fmt"

	"github.com/jetsetilly/m6502core/hardware/cpu/instructions"
)

// Context describes the data for one decoded instruction.
type Context struct {
	operand uint8
	address uint16
	mode    instructions.AddressingMode
}

// NewContext is the preferred method of initialisation for the Context type.
//
// The operand is the value the instruction operates on. For the immediate
// mode it is the byte following the opcode and for the accumulator mode it is
// the value of the accumulator. For memory modes it is the value read from
// the effective address.
//
// The address is the effective address of the instruction. For branch
// instructions this is the branch target.
func NewContext(operand uint8, address uint16, mode instructions.AddressingMode) Context {
	return Context{
		operand: operand,
		address: address,
		mode:    mode,
	}
}

// Operand returns the operand value.
func (c Context) Operand() uint8 {
	return c.operand
}

// Address returns the effective address.
func (c Context) Address() uint16 {
	return c.address
}

// Mode returns the addressing mode.
func (c Context) Mode() instructions.AddressingMode {
	return c.mode
}

func (c Context) String() string {
	switch c.mode {
	case instructions.Implied:
		return c.mode.String()
	case instructions.Accumulator, instructions.Immediate:
		return fmt.Sprintf("%s operand=%#02x", c.mode, c.operand)
	case instructions.Relative:
		return fmt.Sprintf("%s address=%#04x", c.mode, c.address)
	}
	return fmt.Sprintf("%s operand=%#02x address=%#04x", c.mode, c.operand, c.address)
}
