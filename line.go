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

import "slices"

// Line returns the pixels of the straight segment from p1 to p2, in order
// from p1 to p2.  Both end points are included.
func Line(p1, p2 Point) []Point {
	n := max(abs(p2.X-p1.X), abs(p2.Y-p1.Y)) + 1
	return AppendLine(make([]Point, 0, n), p1, p2)
}

// AppendLine appends the pixels of the segment from p1 to p2 to dst and
// returns the extended slice.
//
// The path is always traced starting from the smaller end point (by X,
// then Y), so that swapping p1 and p2 gives the same set of pixels.
func AppendLine(dst []Point, p1, p2 Point) []Point {
	start := len(dst)
	a, b := p1, p2
	reversed := p2.less(p1)
	if reversed {
		a, b = p2, p1
	}
	bresenham(a, b, func(x, y int) {
		dst = append(dst, Point{X: x, Y: y})
	})
	if reversed {
		slices.Reverse(dst[start:])
	}
	return dst
}

// DrawLine sets the pixels of the segment from p1 to p2 to c.
// Pixels outside the canvas are skipped; the path itself is not clipped.
func (cv *Canvas) DrawLine(p1, p2 Point, c Color) {
	if p2.less(p1) {
		p1, p2 = p2, p1
	}
	bresenham(p1, p2, func(x, y int) {
		cv.Set(x, y, c)
	})
}

// bresenham calls plot for each pixel from a to b, using a single integer
// error term.  Every step advances x, y or both, so the path is
// 8-connected and has max(|dx|, |dy|)+1 pixels.
func bresenham(a, b Point, plot func(x, y int)) {
	x, y := a.X, a.Y
	dx := abs(b.X - x)
	dy := -abs(b.Y - y)
	sx, sy := 1, 1
	if x > b.X {
		sx = -1
	}
	if y > b.Y {
		sy = -1
	}
	err := dx + dy

	for {
		plot(x, y)
		if x == b.X && y == b.Y {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
