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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/m6502core/hardware/cpu"
	"github.com/jetsetilly/m6502core/hardware/cpu/execution"
	"github.com/jetsetilly/m6502core/hardware/cpu/instructions"
	"github.com/jetsetilly/m6502core/hardware/cpu/registers"
	"github.com/jetsetilly/m6502core/test"
)

// mockMem is a memory implementation that does not implement the Clearer
// interface
type mockMem struct {
	internal []uint8
}

func newMockMem() *mockMem {
	return &mockMem{internal: make([]uint8, 0x10000)}
}

func (mem *mockMem) Read(address uint16) uint8 {
	return mem.internal[address]
}

func (mem *mockMem) Write(address uint16, data uint8) {
	mem.internal[address] = data
}

func (mem *mockMem) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	if d := mem.Read(address); d != value {
		t.Errorf("memory assertion failed (%#02x - wanted %#02x at address %#04x)", d, value, address)
	}
}

// execute a single operator and fail the test on error
func execute(t *testing.T, mc *cpu.CPU, op instructions.Operator, ctx execution.Context) {
	t.Helper()
	if err := mc.Execute(op, ctx); err != nil {
		t.Fatal(err)
	}
}

func immediate(v uint8) execution.Context {
	return execution.NewContext(v, 0, instructions.Immediate)
}

func implied() execution.Context {
	return execution.NewContext(0, 0, instructions.Implied)
}

// assert status register using the flag symbol notation of StatusString()
func assertStatus(t *testing.T, mc *cpu.CPU, expected string) {
	t.Helper()
	test.ExpectEquality(t, mc.Regs.StatusString(), expected)
}

func assertRegister(t *testing.T, mc *cpu.CPU, reg registers.Name, expected uint8) {
	t.Helper()
	test.ExpectEquality(t, mc.Regs.Byte(reg), expected, reg)
}
