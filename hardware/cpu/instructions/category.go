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

// Category of an operator describes its effect.
type Category int

// List of effect categories.
const (
	// Read category operators use a value but do not write to memory. This
	// includes operators that only affect registers
	Read Category = iota

	// Write category operators write a register to memory
	Write

	// RMW (read-modify-write) category operators read a value, alter it and
	// write it back to where it came from
	RMW

	// the following three categories have an effect on the program counter

	// Flow consists of the branch and JMP instructions
	Flow

	Subroutine
	Interrupt
)

func (c Category) String() string {
	switch c {
	case Read:
		return "Read"
	case Write:
		return "Write"
	case RMW:
		return "RMW"
	case Flow:
		return "Flow"
	case Subroutine:
		return "Subroutine"
	case Interrupt:
		return "Interrupt"
	}
	return "unknown category"
}
