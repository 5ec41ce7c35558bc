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

package terminal_test

import (
	"io"
	"strings"
	"testing"

	"github.com/jetsetilly/m6502core/curated"
	"github.com/jetsetilly/m6502core/debugger/terminal"
	"github.com/jetsetilly/m6502core/test"
)

func TestPlainTerminal(t *testing.T) {
	var in terminal.Input = terminal.NewPlainTerminal(strings.NewReader("s\n g\r\nq\x03"))
	test.ExpectFailure(t, in.IsInteractive())

	k, err := in.ReadKey()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, k, 's')

	k, err = in.ReadKey()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, k, 'g')

	k, err = in.ReadKey()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, k, 'q')

	_, err = in.ReadKey()
	test.ExpectSuccess(t, curated.Is(err, terminal.UserInterrupt))

	_, err = in.ReadKey()
	test.ExpectEquality(t, err, io.EOF)

	in.CleanUp()
}

func TestPrompt(t *testing.T) {
	p := terminal.Prompt{PC: 0x0200}
	test.ExpectEquality(t, p.String(), "[ 0x0200 ] > ")

	p.Content = "LDA  "
	test.ExpectEquality(t, p.String(), "[ 0x0200 LDA ] > ")
}
