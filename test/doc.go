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

// Package test contains helper functions to remove common boilerplate from
// tests.
//
// The Expect functions report a failure and allow the test to continue. The
// Demand functions stop the test immediately and should be used when later
// parts of the test depend on the value being correct.
//
// Success and failure are judged by the type of the value:
//
//	bool  -> true is success
//	error -> nil is success
//	nil   -> success
//
// The CompareWriter type implements io.Writer and is used to capture output
// for comparison with expected strings.
package test
