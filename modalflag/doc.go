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

// Package modalflag wraps the flag package of the Go standard library. It adds
// program modes, each with its own set of flags.
//
// Arguments are given with NewArgs() and then parsed with Parse(), rather than
// being passed to Parse() directly. This allows parsing to happen in stages:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "STEP")
//	if p, err := md.Parse(); p != modalflag.ParseContinue {
//		...
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		origin := md.AddAddress("origin", 0x0200, "load address")
//		p, err := md.Parse()
//		...
//	}
//
// The first sub-mode given to AddSubModes() is the default mode and is
// selected if the first non-flag argument is not a recognised mode. Mode
// names are not case sensitive. The modes encountered during parsing are
// available with Path(), separated by a forward slash.
//
// Addresses given to flags created with AddAddress() can be decimal or
// hexadecimal, with either the 0x or $ prefix.
package modalflag
