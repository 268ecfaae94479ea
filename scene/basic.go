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

var (
	square       = polyfill.Poly(0, 0, 0, 10, 10, 10, 10, 0)
	centeredHole = polyfill.Poly(4, 4, 4, 6, 6, 6, 6, 4)
)

var basicScenes = []Scene{
	{
		Name:       "square",
		Width:      16,
		Height:     16,
		Background: polyfill.White,
		Ops:        []Op{Fill{Polygon: square, Color: polyfill.Red}},
	},
	{
		Name:       "square_hole",
		Width:      16,
		Height:     16,
		Background: polyfill.White,
		Ops: []Op{
			Fill{Polygon: square, Color: polyfill.Red, Hole: centeredHole},
		},
	},
	{
		Name:       "outlined_square",
		Width:      16,
		Height:     16,
		Background: polyfill.White,
		Ops: []Op{
			Fill{Polygon: square, Color: polyfill.Red},
			Outline{Polygon: square, Color: polyfill.Black},
		},
	},
	{
		Name:       "triangle",
		Width:      64,
		Height:     64,
		Background: polyfill.Black,
		Ops: []Op{
			Fill{Polygon: polyfill.Poly(10, 50, 32, 10, 54, 50), Color: polyfill.White},
		},
	},
	{
		// a "U" shape: two spans on the rows of the notch
		Name:       "concave",
		Width:      64,
		Height:     64,
		Background: polyfill.Black,
		Ops: []Op{
			Fill{
				Polygon: polyfill.Poly(8, 8, 24, 8, 24, 40, 40, 40, 40, 8, 56, 8, 56, 56, 8, 56),
				Color:   polyfill.White,
			},
		},
	},
	{
		Name:       "star_outline",
		Width:      64,
		Height:     64,
		Background: polyfill.Black,
		Ops: []Op{
			Outline{
				Polygon: polyfill.Poly(32, 4, 49, 56, 5, 24, 59, 24, 15, 56),
				Color:   polyfill.White,
			},
		},
	},
}
