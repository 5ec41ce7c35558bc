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

// Package memory implements the address space seen by the CPU. The Memory
// interface is the boundary between the CPU and the rest of the system; a
// memory mapped bus can be substituted for the Flat implementation without
// changing the CPU.
//
// Addresses are of type uint16 throughout and so can never be out of range.
// Arithmetic that produces an address (indexing, relative branches, stack
// addressing) wraps at the 16 bit boundary.
package memory

// Memory defines the operations for the memory system when accessed from the
// CPU.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// Clearer is implemented by memory that can be reset to all zeroes.
type Clearer interface {
	Clear()
}

// AddressSpace is the number of addressable bytes.
const AddressSpace = 0x10000

// Addresses of the interrupt vectors at the top of the address space.
const (
	NMI   = uint16(0xfffa)
	Reset = uint16(0xfffc)
	IRQ   = uint16(0xfffe)

	// BRK uses the same vector as IRQ
	BRK = IRQ
)

// StackPage is the address of the page used by the stack. The stack pointer is
// an offset into this page.
const StackPage = uint16(0x0100)
