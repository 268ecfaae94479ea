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

// The five polygons of the classic scanline fill exercise, on an
// 800×600 canvas.
var (
	labStar = polyfill.Poly(
		165, 380, 185, 360, 180, 330, 207, 345, 233, 330,
		230, 360, 250, 380, 220, 385, 205, 410, 193, 383)
	labQuad     = polyfill.Poly(321, 335, 288, 286, 339, 251, 374, 302)
	labTriangle = polyfill.Poly(377, 249, 411, 197, 436, 249)
	labShape    = polyfill.Poly(
		413, 177, 448, 159, 502, 88, 553, 53, 535, 36,
		676, 37, 660, 52, 750, 145, 761, 179, 672, 192,
		659, 214, 615, 214, 632, 230, 580, 230, 597, 215,
		552, 214, 517, 144, 466, 180)
	labHole = polyfill.Poly(682, 175, 708, 120, 735, 148, 739, 170)
)

const (
	labWidth  = 800
	labHeight = 600
)

var labScenes = []Scene{
	{
		Name:       "star",
		Width:      labWidth,
		Height:     labHeight,
		Background: polyfill.White,
		Ops:        []Op{Fill{Polygon: labStar, Color: polyfill.Red}},
	},
	{
		Name:       "quad",
		Width:      labWidth,
		Height:     labHeight,
		Background: polyfill.White,
		Ops:        []Op{Fill{Polygon: labQuad, Color: polyfill.Green}},
	},
	{
		Name:       "triangle",
		Width:      labWidth,
		Height:     labHeight,
		Background: polyfill.White,
		Ops:        []Op{Fill{Polygon: labTriangle, Color: polyfill.Blue}},
	},
	{
		Name:       "shape_with_hole",
		Width:      labWidth,
		Height:     labHeight,
		Background: polyfill.White,
		Ops: []Op{
			Fill{Polygon: labShape, Color: polyfill.Yellow, Hole: labHole},
			Outline{Polygon: labHole, Color: polyfill.Black},
		},
	},
	{
		Name:       "all",
		Width:      labWidth,
		Height:     labHeight,
		Background: polyfill.White,
		Ops: []Op{
			Fill{Polygon: labStar, Color: polyfill.Red},
			Fill{Polygon: labQuad, Color: polyfill.Green},
			Fill{Polygon: labTriangle, Color: polyfill.Blue},
			Fill{Polygon: labShape, Color: polyfill.Yellow, Hole: labHole},
			Outline{Polygon: labHole, Color: polyfill.Black},
		},
	},
}
