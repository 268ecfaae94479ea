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

// Package pdfout writes scenes as vector graphics to PDF files.
//
// The PDF output shows the exact polygon geometry, without rasterization,
// and is useful for checking the pixel output of [polyfill] against the
// shapes it approximates.  One pixel corresponds to one PDF point.
package pdfout

import (
	"errors"
	"fmt"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/polyfill"
	"seehuhn.de/go/polyfill/scene"
)

// Write renders the scene to a single-page PDF file.
//
// Fill operations become paths filled with the even-odd rule, with the
// hole as a second subpath.  Outline operations become closed paths
// stroked with a line width of one pixel.  Vertex coordinates refer to
// pixel centres.
func Write(filename string, s *scene.Scene) error {
	if s.Width <= 0 || s.Height <= 0 {
		return errors.New("pdfout: empty canvas")
	}

	paper := &pdf.Rectangle{
		URx: float64(s.Width),
		URy: float64(s.Height),
	}
	page, err := document.CreateSinglePage(filename, paper, pdf.V1_7, nil)
	if err != nil {
		return fmt.Errorf("pdfout: %w", err)
	}

	page.SetFillColor(deviceColor(s.Background))
	page.Rectangle(0, 0, float64(s.Width), float64(s.Height))
	page.Fill()

	// PDF origin is bottom-left, pixel coordinates start at the top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0.5, float64(s.Height) - 0.5})

	page.SetLineWidth(1)
	page.SetLineCap(graphics.LineCapSquare)
	page.SetLineJoin(graphics.LineJoinMiter)

	for _, op := range s.Ops {
		switch op := op.(type) {
		case scene.Fill:
			if len(op.Polygon) < 3 {
				continue
			}
			page.SetFillColor(deviceColor(op.Color))
			addPolygon(page, op.Polygon)
			if len(op.Hole) >= 3 {
				addPolygon(page, op.Hole)
			}
			page.FillEvenOdd()
		case scene.Outline:
			if len(op.Polygon) < 2 {
				continue
			}
			page.SetStrokeColor(deviceColor(op.Color))
			addPolygon(page, op.Polygon)
			page.Stroke()
		}
	}

	if err := page.Close(); err != nil {
		return fmt.Errorf("pdfout: writing %s: %w", filename, err)
	}
	return nil
}

// pathBuilder is the subset of the page drawing methods used to
// construct paths.
type pathBuilder interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
}

func addPolygon(page pathBuilder, poly polyfill.Polygon) {
	for cmd, pts := range poly.Path() {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}
}

func deviceColor(c polyfill.Color) color.Color {
	r, g, b := c.Channels()
	return color.DeviceRGB{float64(r) / 255, float64(g) / 255, float64(b) / 255}
}
