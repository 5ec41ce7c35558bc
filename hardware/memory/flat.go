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

package memory

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/m6502core/curated"
)

// ProgramTooLarge is the pattern for errors returned by Load() when the data
// would extend past the end of the address space.
const ProgramTooLarge = "memory: program too large (%d bytes at %#04x)"

// Flat is a plain 64KB address space with no mapped peripherals.
type Flat struct {
	data [AddressSpace]uint8
}

// NewFlat is the preferred method of initialisation for the Flat type.
func NewFlat() *Flat {
	return &Flat{}
}

// Read implements the Memory interface.
func (mem *Flat) Read(address uint16) uint8 {
	return mem.data[address]
}

// Write implements the Memory interface.
func (mem *Flat) Write(address uint16, data uint8) {
	mem.data[address] = data
}

// Clear implements the Clearer interface.
func (mem *Flat) Clear() {
	mem.data = [AddressSpace]uint8{}
}

// Load copies data into memory starting at origin.
func (mem *Flat) Load(origin uint16, data []uint8) error {
	if int(origin)+len(data) > AddressSpace {
		return curated.Errorf(ProgramTooLarge, len(data), origin)
	}
	copy(mem.data[origin:], data)
	return nil
}

// Read16 returns the little-endian 16 bit value at address. The high byte is
// read from address+1, wrapping at the end of the address space.
func (mem *Flat) Read16(address uint16) uint16 {
	return uint16(mem.data[address]) | uint16(mem.data[address+1])<<8
}

// PageString returns a hex dump of a single 256 byte page.
func (mem *Flat) PageString(page uint8) string {
	s := strings.Builder{}
	s.WriteString("       -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")
	s.WriteString("     ---- -- -- -- -- -- -- -- -- -- -- -- -- -- -- --\n")
	base := uint16(page) << 8
	for y := 0; y < 16; y++ {
		s.WriteString(fmt.Sprintf("%02X%X- | ", page, y))
		for x := 0; x < 16; x++ {
			s.WriteString(fmt.Sprintf(" %02x", mem.data[base+uint16(y*16+x)]))
		}
		s.WriteString("\n")
	}
	return strings.TrimSuffix(s.String(), "\n")
}
