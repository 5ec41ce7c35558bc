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
	"github.com/jetsetilly/m6502core/curated"
	"github.com/pkg/term"
)

// the controlling terminal of the process
const ttyDevice = "/dev/tty"

// RawTerminal reads keypresses from the controlling terminal in raw mode.
type RawTerminal struct {
	tty *term.Term
}

// NewRawTerminal opens the controlling terminal and puts it in raw mode. The
// CleanUp() function must be called to return the terminal to its original
// state.
func NewRawTerminal() (*RawTerminal, error) {
	t, err := term.Open(ttyDevice, term.RawMode)
	if err != nil {
		return nil, curated.Errorf("terminal: %v", err)
	}
	return &RawTerminal{tty: t}, nil
}

// ReadKey implements the Input interface.
func (rt *RawTerminal) ReadKey() (byte, error) {
	b := make([]byte, 1)
	for {
		n, err := rt.tty.Read(b)
		if err != nil {
			return 0, curated.Errorf("terminal: %v", err)
		}
		if n == 0 {
			continue // for loop
		}

		switch b[0] {
		case KeyInterrupt:
			return 0, curated.Errorf(UserInterrupt)
		case KeySuspend:
			return 0, curated.Errorf(UserAbort)
		}
		return b[0], nil
	}
}

// IsInteractive implements the Input interface.
func (rt *RawTerminal) IsInteractive() bool {
	return true
}

// CleanUp implements the Input interface.
func (rt *RawTerminal) CleanUp() {
	_ = rt.tty.Restore()
	_ = rt.tty.Close()
}

// Write implements the io.Writer interface. Line feeds are converted to
// carriage return and line feed pairs because output processing is disabled
// in raw mode.
func (rt *RawTerminal) Write(p []byte) (int, error) {
	b := make([]byte, 0, len(p))
	for _, c := range p {
		if c == KeyLineFeed {
			b = append(b, KeyCarriageReturn)
		}
		b = append(b, c)
	}
	if _, err := rt.tty.Write(b); err != nil {
		return 0, err
	}
	return len(p), nil
}
