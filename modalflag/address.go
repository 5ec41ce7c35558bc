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

package modalflag

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/m6502core/curated"
)

// InvalidAddress is the pattern for errors returned by ParseAddress().
const InvalidAddress = "modalflag: invalid address (%s)"

// ParseAddress converts s to a 16 bit address. Hexadecimal values are
// prefixed with 0x or $. Other values are decimal.
func ParseAddress(s string) (uint16, error) {
	t := strings.TrimSpace(s)
	base := 10
	switch {
	case strings.HasPrefix(t, "$"):
		t = t[1:]
		base = 16
	case strings.HasPrefix(strings.ToLower(t), "0x"):
		t = t[2:]
		base = 16
	}

	v, err := strconv.ParseUint(t, base, 16)
	if err != nil {
		return 0, curated.Errorf(InvalidAddress, s)
	}
	return uint16(v), nil
}

// address implements the flag.Value interface.
type address uint16

func (a *address) String() string {
	return fmt.Sprintf("%#04x", uint16(*a))
}

func (a *address) Set(s string) error {
	v, err := ParseAddress(s)
	if err != nil {
		return err
	}
	*a = address(v)
	return nil
}
