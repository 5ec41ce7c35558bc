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
	"fmt"
	"strings"
)

// Input defines the operations required by an implementation that supplies
// keypresses.
type Input interface {
	// ReadKey blocks until a key is available. Returns an error matching
	// UserInterrupt or UserAbort if those keys are pressed, or io.EOF if there
	// is no more input.
	ReadKey() (byte, error)

	// IsInteractive should return true for implementations that require user
	// interaction
	IsInteractive() bool

	// CleanUp restores the terminal to its original state if possible
	CleanUp()
}

// Sentinal errors returned by ReadKey().
const (
	UserInterrupt = "terminal: user interrupt"
	UserAbort     = "terminal: user abort"
)

// Prompt describes the state shown to the user while waiting for a key.
type Prompt struct {
	// address of the next instruction
	PC uint16

	// disassembly of the next instruction, if available
	Content string
}

// String returns the prompt with standard decoration.
func (p Prompt) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("[ %#04x", p.PC))
	if c := strings.TrimSpace(p.Content); c != "" {
		s.WriteString(" ")
		s.WriteString(c)
	}
	s.WriteString(" ] > ")
	return s.String()
}
