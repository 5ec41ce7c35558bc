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

// Package execution defines the Context of a single instruction: the operand
// value, the effective address and the addressing mode that were used to
// produce them. A Context is produced by the decoder (or any other
// collaborator that resolves addressing modes) and consumed by the CPU when
// the instruction is executed.
//
// The Context is a value type with no exported fields. Once created it can
// not be altered and it should be discarded once the instruction has been
// executed.
package execution
