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

package execution_test

import (
	"testing"

	"github.com/jetsetilly/m6502core/hardware/cpu/execution"
	"github.com/jetsetilly/m6502core/hardware/cpu/instructions"
	"github.com/jetsetilly/m6502core/test"
)

func TestContext(t *testing.T) {
	ctx := execution.NewContext(0x80, 0x1234, instructions.Absolute)
	test.ExpectEquality(t, ctx.Operand(), 0x80)
	test.ExpectEquality(t, ctx.Address(), 0x1234)
	test.ExpectEquality(t, ctx.Mode(), instructions.Absolute)
	test.ExpectEquality(t, ctx.String(), "Absolute operand=0x80 address=0x1234")

	// contexts are values and compare equal when their fields are equal
	test.ExpectEquality(t, ctx, execution.NewContext(0x80, 0x1234, instructions.Absolute))
	test.ExpectInequality(t, ctx, execution.NewContext(0x80, 0x1234, instructions.AbsoluteIndexedX))
}

func TestContextString(t *testing.T) {
	test.ExpectEquality(t, execution.NewContext(0, 0, instructions.Implied).String(), "Implied")
	test.ExpectEquality(t, execution.NewContext(0x0a, 0, instructions.Immediate).String(), "Immediate operand=0x0a")
	test.ExpectEquality(t, execution.NewContext(0, 0x0210, instructions.Relative).String(), "Relative address=0x0210")
}
