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

package polyfill

// Outline draws the closed boundary of poly in color c: one line per
// pair of consecutive vertices, including the edge from the last vertex
// back to the first.  Polygons with fewer than two vertices draw nothing.
func (cv *Canvas) Outline(poly Polygon, c Color) {
	n := len(poly)
	if n < 2 {
		return
	}
	for i := range n {
		cv.DrawLine(poly[i], poly[(i+1)%n], c)
	}
}
