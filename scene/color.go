// seehuhn.de/go/polyfill - integer scanline polygon filling
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package scene

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"seehuhn.de/go/polyfill"
)

// ParseColor converts a color description to a packed color.
// Accepted forms are "#rrggbb", "#rgb" and the SVG 1.1 color keywords,
// for example "red" or "cornflowerblue".  Case is ignored.
func ParseColor(s string) (polyfill.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if hex, ok := strings.CutPrefix(s, "#"); ok {
		if len(hex) == 3 {
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		if len(hex) != 6 {
			return 0, fmt.Errorf("invalid color %q", s)
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid color %q: %w", s, err)
		}
		return polyfill.Color(v), nil
	}

	c, ok := colornames.Map[s]
	if !ok {
		return 0, fmt.Errorf("unknown color %q", s)
	}
	return polyfill.RGB(c.R, c.G, c.B), nil
}

// FormatColor returns c in the "#rrggbb" form understood by ParseColor.
func FormatColor(c polyfill.Color) string {
	return fmt.Sprintf("#%06x", uint32(c)&0xFFFFFF)
}
