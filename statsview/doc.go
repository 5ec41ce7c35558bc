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

// Package statsview offers a local HTTP server with runtime statistics for
// the monitor process. The server is only available when the program is built
// with the statsview build tag:
//
//	go build -tags statsview ./cmd/m6502mon
//
// Without the tag, Launch() prints a message and does nothing else, and
// Available() returns false.
//
// After launch, graphical statistics are viewable at:
//
//	localhost:12600/debug/statsview
//
// and the standard Go pprof statistics at:
//
//	localhost:12600/debug/pprof/
package statsview

// DefaultAddress is used by Launch() when no address is given.
const DefaultAddress = "localhost:12600"

const url = "/debug/statsview"
