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

// Package scene describes pictures made of filled and outlined polygons,
// and renders them onto a [polyfill.Canvas].
//
// A number of built-in scenes are available in [All].  Scenes can also be
// read from and written to JSON, see [Load] and [Dump].
package scene

import (
	"seehuhn.de/go/polyfill"
)

// Scene is a sequence of drawing operations on a canvas of fixed size.
type Scene struct {
	Name       string         // lowercase a-z, 0-9 and _ only
	Width      int            // canvas width in pixels
	Height     int            // canvas height in pixels
	Background polyfill.Color // initial color of all pixels
	Ops        []Op           // applied in order
}

// Op is a drawing operation.  It is either a [Fill] or an [Outline].
type Op interface {
	isOp()
}

// Fill paints the interior of a polygon, leaving out the pixels inside
// the hole, if any.
type Fill struct {
	Polygon polyfill.Polygon
	Color   polyfill.Color
	Hole    polyfill.Polygon // nil for no hole
}

func (Fill) isOp() {}

// Outline draws the boundary of a polygon.
type Outline struct {
	Polygon polyfill.Polygon
	Color   polyfill.Color
}

func (Outline) isOp() {}

// Render draws the scene onto a new canvas.
func (s *Scene) Render() *polyfill.Canvas {
	cv := polyfill.NewCanvas(s.Width, s.Height, s.Background)
	s.RenderTo(cv, 1)
	return cv
}

// RenderTo applies the operations of the scene to cv, without clearing
// it first.  If workers is different from 1, fills are split across
// workers goroutines (see [polyfill.Canvas.FillParallel]); zero or
// negative values use one goroutine per CPU.
func (s *Scene) RenderTo(cv *polyfill.Canvas, workers int) {
	log := polyfill.Logger()
	for i, op := range s.Ops {
		switch op := op.(type) {
		case Fill:
			log.Debug("fill", "scene", s.Name, "op", i,
				"vertices", len(op.Polygon), "hole", len(op.Hole))
			if workers == 1 {
				cv.Fill(op.Polygon, op.Color, op.Hole)
			} else {
				cv.FillParallel(op.Polygon, op.Color, op.Hole, workers)
			}
		case Outline:
			log.Debug("outline", "scene", s.Name, "op", i,
				"vertices", len(op.Polygon))
			cv.Outline(op.Polygon, op.Color)
		}
	}
}
