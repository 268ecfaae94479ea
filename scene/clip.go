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
	"seehuhn.de/go/polyfill"
)

// clipScenes contain polygons which extend beyond the canvas.
var clipScenes = []Scene{
	{
		Name:       "corner",
		Width:      32,
		Height:     32,
		Background: polyfill.White,
		Ops: []Op{
			Fill{Polygon: polyfill.Poly(-16, -16, 16, -16, 16, 16, -16, 16), Color: polyfill.Blue},
			Outline{Polygon: polyfill.Poly(-16, -16, 16, -16, 16, 16, -16, 16), Color: polyfill.Black},
		},
	},
	{
		Name:       "overlap",
		Width:      32,
		Height:     32,
		Background: polyfill.White,
		Ops: []Op{
			Fill{
				Polygon: polyfill.Poly(-40, 16, 16, -40, 72, 16, 16, 72),
				Color:   polyfill.Green,
				Hole:    polyfill.Poly(8, 8, 24, 8, 24, 24, 8, 24),
			},
		},
	},
	{
		Name:       "outside",
		Width:      32,
		Height:     32,
		Background: polyfill.White,
		Ops: []Op{
			Fill{Polygon: polyfill.Poly(40, 40, 60, 40, 50, 60), Color: polyfill.Red},
			Outline{Polygon: polyfill.Poly(40, 40, 60, 40, 50, 60), Color: polyfill.Red},
		},
	},
}
