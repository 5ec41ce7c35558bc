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

package cpu

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/m6502core/curated"
	"github.com/jetsetilly/m6502core/logger"
	"github.com/jetsetilly/m6502core/prefs"
)

// UnknownPreference is the pattern for errors returned by Preferences.Set()
// when the key is not recognised.
const UnknownPreference = "cpu: unknown preference (%s)"

// Preferences switch the CPU between the reference behaviour of the core and
// the behaviour of the 6502 hardware, in the few places where the two differ.
// All preferences default to false, which selects the reference behaviour.
type Preferences struct {
	// compare instructions (CMP, CPX, CPY) compare the register with the
	// operand value rather than with the effective address
	CompareOperand prefs.Bool

	// JSR loads the PC with the effective address rather than with the
	// operand value
	JSRAddress prefs.Bool

	// TAY and TYA set the sign and zero flags
	TransferFlags prefs.Bool

	// Step() loads the PC from the BRK vector after a BRK instruction
	BRKVector prefs.Bool
}

// the keys used in command line prefs strings
const (
	keyCompareOperand = "cpu.compareoperand"
	keyJSRAddress     = "cpu.jsraddress"
	keyTransferFlags  = "cpu.transferflags"
	keyBRKVector      = "cpu.brkvector"
)

// NewPreferences is the preferred method of initialisation for the
// Preferences type.
func NewPreferences() *Preferences {
	p := &Preferences{}
	for _, k := range p.keys() {
		k := k
		p.lookup(k).SetHookPost(func(v prefs.Value) error {
			logger.Logf(logger.Allow, "CPU", "%s set to %v", k, v)
			return nil
		})
	}
	return p
}

// sorted list of preference keys
func (p *Preferences) keys() []string {
	return []string{keyBRKVector, keyCompareOperand, keyJSRAddress, keyTransferFlags}
}

func (p *Preferences) lookup(key string) *prefs.Bool {
	switch key {
	case keyCompareOperand:
		return &p.CompareOperand
	case keyJSRAddress:
		return &p.JSRAddress
	case keyTransferFlags:
		return &p.TransferFlags
	case keyBRKVector:
		return &p.BRKVector
	}
	return nil
}

// Set the preference identified by key. The key is case insensitive.
func (p *Preferences) Set(key string, value prefs.Value) error {
	b := p.lookup(strings.ToLower(strings.TrimSpace(key)))
	if b == nil {
		return curated.Errorf(UnknownPreference, key)
	}
	return b.Set(value)
}

// FromCommandLine sets preferences from the current command line prefs group.
// See prefs.PushCommandLineStack(). Keys that are not CPU preferences are left
// in the group.
func (p *Preferences) FromCommandLine() error {
	for _, k := range p.keys() {
		if ok, v := prefs.GetCommandLinePref(k); ok {
			if err := p.lookup(k).Set(v); err != nil {
				return curated.Errorf("cpu: %v", err)
			}
		}
	}
	return nil
}

// Reset all preferences to the reference behaviour.
func (p *Preferences) Reset() error {
	for _, k := range p.keys() {
		if err := p.lookup(k).Reset(); err != nil {
			return err
		}
	}
	return nil
}

// String returns the preferences in the form of a command line prefs string.
func (p *Preferences) String() string {
	s := strings.Builder{}
	for _, k := range p.keys() {
		s.WriteString(fmt.Sprintf("%s::%s; ", k, p.lookup(k)))
	}
	return strings.TrimSuffix(s.String(), "; ")
}
