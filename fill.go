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
	"runtime"
	"slices"
	"sync"
)

// Filler computes the interior spans of polygons, one scanline at a
// time.  The zero value is ready to use.  The internal intersection
// buffer is reused across rows and calls and never shrinks.
//
// A Filler is not safe for concurrent use.
type Filler struct {
	xs []int // edge crossings of the current scanline
}

// Spans calls emit for every interior span of poly, row by row from the
// smallest to the largest vertex y coordinate.  The span covers the
// pixels xMin..xMax of row y, both ends included.
//
// An edge from p1 to p2 crosses row y if one end point has p.Y <= y and
// the other has p.Y > y.  The crossing x coordinate is
// p1.X + (y-p1.Y)*(p2.X-p1.X)/(p2.Y-p1.Y), using truncating division.
// Crossings are sorted and paired up left to right; if a row has an odd
// number of crossings, the last one is ignored.
//
// Polygons with fewer than three vertices have no spans.
func (f *Filler) Spans(poly Polygon, emit func(y, xMin, xMax int)) {
	yMin, yMax, ok := rowRange(poly)
	if !ok {
		return
	}
	f.scan(poly, yMin, yMax, emit)
}

// SpansClipped is like Spans, but only visits rows y with
// y0 <= y < y1.
func (f *Filler) SpansClipped(poly Polygon, y0, y1 int, emit func(y, xMin, xMax int)) {
	yMin, yMax, ok := rowRange(poly)
	if !ok {
		return
	}
	yMin = max(yMin, y0)
	yMax = min(yMax, y1-1)
	f.scan(poly, yMin, yMax, emit)
}

// rowRange returns the vertical extent of poly, both ends included.
func rowRange(poly Polygon) (yMin, yMax int, ok bool) {
	if len(poly) < 3 {
		if len(poly) > 0 {
			Logger().Debug("polygon has no interior", "vertices", len(poly))
		}
		return 0, 0, false
	}
	yMin, yMax = poly[0].Y, poly[0].Y
	for _, p := range poly[1:] {
		yMin = min(yMin, p.Y)
		yMax = max(yMax, p.Y)
	}
	return yMin, yMax, true
}

func (f *Filler) scan(poly Polygon, yMin, yMax int, emit func(y, xMin, xMax int)) {
	n := len(poly)
	for y := yMin; y <= yMax; y++ {
		xs := f.xs[:0]
		for i := range n {
			p1 := poly[i]
			p2 := poly[(i+1)%n]
			if (p1.Y <= y && p2.Y > y) || (p2.Y <= y && p1.Y > y) {
				xs = append(xs, p1.X+(y-p1.Y)*(p2.X-p1.X)/(p2.Y-p1.Y))
			}
		}
		f.xs = xs

		if len(xs) == 0 {
			continue
		}
		slices.Sort(xs)
		if len(xs)%2 != 0 {
			Logger().Debug("odd number of edge crossings",
				"y", y, "crossings", len(xs))
		}
		for i := 0; i+1 < len(xs); i += 2 {
			emit(y, xs[i], xs[i+1])
		}
	}
}

// Fill paints the interior of poly with color c.  If hole is not nil,
// pixels inside hole (as decided by Contains) keep their previous color.
// The outline of poly is not drawn; see Outline.
//
// See Filler.Spans for the exact definition of the interior.
func (cv *Canvas) Fill(poly Polygon, c Color, hole Polygon) {
	cv.fillRows(&cv.filler, poly, c, hole, 0, cv.Height)
}

// FillParallel is like Fill, but splits the rows of the polygon into
// bands which are filled concurrently.  If workers is zero or negative,
// runtime.GOMAXPROCS(0) bands are used.  The result is identical to Fill.
//
// No other method of cv may be called while FillParallel is running.
func (cv *Canvas) FillParallel(poly Polygon, c Color, hole Polygon, workers int) {
	yMin, yMax, ok := rowRange(poly)
	if !ok {
		return
	}
	y0 := max(yMin, 0)
	y1 := min(yMax+1, cv.Height)
	rows := y1 - y0
	if rows <= 0 {
		return
	}

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, rows)
	if workers == 1 {
		cv.fillRows(&cv.filler, poly, c, hole, y0, y1)
		return
	}

	band := (rows + workers - 1) / workers
	var wg sync.WaitGroup
	for start := y0; start < y1; start += band {
		end := min(start+band, y1)
		wg.Add(1)
		go func() {
			defer wg.Done()
			var f Filler
			cv.fillRows(&f, poly, c, hole, start, end)
		}()
	}
	wg.Wait()
}

// fillRows fills the rows y0 <= y < y1 of poly.
func (cv *Canvas) fillRows(f *Filler, poly Polygon, c Color, hole Polygon, y0, y1 int) {
	if len(hole) < 3 {
		f.SpansClipped(poly, y0, y1, func(y, xMin, xMax int) {
			cv.hspan(y, xMin, xMax, c)
		})
		return
	}

	f.SpansClipped(poly, y0, y1, func(y, xMin, xMax int) {
		xMin = max(xMin, 0)
		xMax = min(xMax, cv.Width-1)
		row := cv.Pix[y*cv.Width : (y+1)*cv.Width]
		for x := xMin; x <= xMax; x++ {
			if Contains(hole, Point{X: x, Y: y}) {
				continue
			}
			row[x] = c
		}
	})
}
