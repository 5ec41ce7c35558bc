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

// Package curated wraps the plain Go error type so that errors can be
// identified by the pattern that created them rather than by the formatted
// message.
//
// Errors are created with Errorf(), which takes a pattern and placeholder
// values in the same way as fmt.Errorf():
//
//	err := curated.Errorf("decoder: undefined opcode (%#02x)", v)
//
//	if curated.Is(err, "decoder: undefined opcode (%#02x)") {
//		...
//	}
//
// Patterns that callers are expected to test for are exported as constants
// by the package that creates them. For example, the decoder package
// exports UndefinedOpcode.
//
// Has() is similar to Is() but searches the whole chain of wrapped curated
// errors for the pattern:
//
//	a := curated.Errorf("memory: program too large (%d bytes)", n)
//	b := curated.Errorf("run: %v", a)
//
//	curated.Has(b, "memory: program too large (%d bytes)") // true
//	curated.Is(b, "memory: program too large (%d bytes)")  // false
//
// The Error() implementation normalises the message so that adjacent
// duplicate parts of the chain are removed. Parts are separated by ": ", so
// "cpu: cpu: unknown operator" is reported as "cpu: unknown operator".
package curated
