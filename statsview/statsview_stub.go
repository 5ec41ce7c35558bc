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

//go:build !statsview
// +build !statsview

package statsview

import (
	"fmt"
	"io"
)

// Launch prints a message saying the stats server is not available.
func Launch(output io.Writer, _ string) func() {
	fmt.Fprintf(output, "stats server not available (build with the statsview tag)\n")
	return func() {}
}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return false
}
