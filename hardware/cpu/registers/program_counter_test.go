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
	"testing"

	"github.com/jetsetilly/m6502core/hardware/cpu/registers"
	"github.com/jetsetilly/m6502core/test"
)

func TestProgramCounter(t *testing.T) {
	pc := registers.NewProgramCounter(0)
	test.ExpectEquality(t, pc.Address(), 0)

	pc.Add(2)
	test.ExpectEquality(t, pc.Address(), 2)

	pc.Load(0xfffe)
	test.ExpectEquality(t, pc.String(), "0xfffe")
	test.ExpectFailure(t, pc.Add(1))
	test.ExpectEquality(t, pc.Address(), 0xffff)

	// wrap around
	test.ExpectSuccess(t, pc.Add(2))
	test.ExpectEquality(t, pc.Address(), 0x0001)

	// adding 0xffff is the same as subtracting one
	pc.Add(0xffff)
	test.ExpectEquality(t, pc.Address(), 0x0000)
}
