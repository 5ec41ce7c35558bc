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

// Package instructions enumerates the operators (mnemonics) of the 6502
// instruction set, the addressing modes used to locate an operator's data,
// and the category of effect each operator has.
//
// The package contains no behaviour. The behaviour of each operator is
// implemented by the cpu package and the resolution of addressing modes by
// the decoder package.
package instructions
