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

// Package terminal provides single keypress input for interactive stepping
// of the CPU.
//
// Keypresses are read through the Input interface. There are two
// implementations: RawTerminal puts the controlling terminal into raw mode so
// that keys are received as soon as they are pressed, and PlainTerminal reads
// from any io.Reader, which is useful when input is not a terminal or when
// testing.
//
//	in, err := terminal.NewRawTerminal()
//	if err != nil {
//		return err
//	}
//	defer in.CleanUp()
//
//	for {
//		k, err := in.ReadKey()
//		if curated.Is(err, terminal.UserInterrupt) {
//			break
//		}
//		...
//	}
package terminal
