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

// Contains reports whether p lies inside poly, using the even-odd rule.
//
// A horizontal ray is cast from p towards +x and the edges it crosses
// are counted.  An edge counts when exactly one of its end points has a
// y coordinate strictly greater than p.Y.  The crossing x coordinate is
// computed with truncating integer division.  Whether points exactly on an edge are
// inside is not specified.
//
// Polygons with fewer than three vertices contain no points.
func Contains(poly Polygon, p Point) bool {
	n := len(poly)
	if n < 3 {
		return false
	}

	inside := false
	j := n - 1
	for i := range n {
		pi, pj := poly[i], poly[j]
		if (pi.Y > p.Y) != (pj.Y > p.Y) &&
			p.X < (pj.X-pi.X)*(p.Y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			inside = !inside
		}
		j = i
	}
	return inside
}
