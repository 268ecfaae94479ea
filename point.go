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

import (
	"fmt"
	"image"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Point is a pixel coordinate. The y axis points down.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// less orders points by X, then by Y.
func (p Point) less(q Point) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

// Polygon is a closed loop of vertices. The edge from the last vertex
// back to the first is implicit.
type Polygon []Point

// Poly builds a polygon from a flat list of x, y coordinate pairs.
// A trailing odd coordinate is ignored.
func Poly(coords ...int) Polygon {
	p := make(Polygon, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		p = append(p, Point{X: coords[i], Y: coords[i+1]})
	}
	return p
}

// Bounds returns the smallest rectangle containing all vertices.
// Max is exclusive, so a polygon with vertices on x=0 and x=10
// has Dx() == 11.  An empty polygon has empty bounds.
func (p Polygon) Bounds() image.Rectangle {
	if len(p) == 0 {
		return image.Rectangle{}
	}
	r := image.Rectangle{Min: image.Pt(p[0].X, p[0].Y), Max: image.Pt(p[0].X+1, p[0].Y+1)}
	for _, q := range p[1:] {
		r.Min.X = min(r.Min.X, q.X)
		r.Min.Y = min(r.Min.Y, q.Y)
		r.Max.X = max(r.Max.X, q.X+1)
		r.Max.Y = max(r.Max.Y, q.Y+1)
	}
	return r
}

// Path returns the polygon as a closed vector path through the vertex
// coordinates.  An empty polygon yields an empty path.
func (p Polygon) Path() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if len(p) == 0 {
			return
		}
		var buf [1]vec.Vec2
		buf[0] = vec.Vec2{X: float64(p[0].X), Y: float64(p[0].Y)}
		if !yield(path.CmdMoveTo, buf[:]) {
			return
		}
		for _, q := range p[1:] {
			buf[0] = vec.Vec2{X: float64(q.X), Y: float64(q.Y)}
			if !yield(path.CmdLineTo, buf[:]) {
				return
			}
		}
		yield(path.CmdClose, nil)
	}
}
