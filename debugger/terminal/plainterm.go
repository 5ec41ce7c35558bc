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

package terminal

import (
	"bufio"
	"io"

	"github.com/jetsetilly/m6502core/curated"
)

// PlainTerminal reads keys from an io.Reader. Whitespace is ignored so that
// keys can be supplied one per line.
type PlainTerminal struct {
	input *bufio.Reader
}

// NewPlainTerminal is the preferred method of initialisation for the
// PlainTerminal type.
func NewPlainTerminal(input io.Reader) *PlainTerminal {
	return &PlainTerminal{input: bufio.NewReader(input)}
}

// ReadKey implements the Input interface.
func (pt *PlainTerminal) ReadKey() (byte, error) {
	for {
		b, err := pt.input.ReadByte()
		if err != nil {
			return 0, err
		}

		switch b {
		case ' ', KeyTab, KeyLineFeed, KeyCarriageReturn:
			continue // for loop
		case KeyInterrupt:
			return 0, curated.Errorf(UserInterrupt)
		case KeySuspend:
			return 0, curated.Errorf(UserAbort)
		}
		return b, nil
	}
}

// IsInteractive implements the Input interface.
func (pt *PlainTerminal) IsInteractive() bool {
	return false
}

// CleanUp implements the Input interface.
func (pt *PlainTerminal) CleanUp() {
}
