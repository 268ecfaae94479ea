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
	"image"
	"image/color"
)

// Color is a packed 24-bit RGB value: bits 16-23 hold red, bits 8-15
// green and bits 0-7 blue.  The upper 8 bits are ignored.
type Color uint32

// Frequently used colors.
const (
	Black  Color = 0x000000
	White  Color = 0xFFFFFF
	Red    Color = 0xFF0000
	Green  Color = 0x00FF00
	Blue   Color = 0x0000FF
	Yellow Color = 0xFFFF00
)

// RGB packs the three channels into a Color.
func RGB(r, g, b uint8) Color {
	return Color(r)<<16 | Color(g)<<8 | Color(b)
}

// Channels returns the red, green and blue components.
func (c Color) Channels() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// RGBA implements the color.Color interface.  Colors are always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r8, g8, b8 := c.Channels()
	r = uint32(r8)
	r |= r << 8
	g = uint32(g8)
	g |= g << 8
	b = uint32(b8)
	b |= b << 8
	return r, g, b, 0xFFFF
}

// Canvas is a fixed-size grid of colors in row-major order: the pixel
// (x, y) is stored at Pix[y*Width+x].
//
// All drawing methods silently ignore pixels outside the canvas.
// A Canvas is not safe for concurrent use, except through FillParallel.
type Canvas struct {
	Width, Height int
	Pix           []Color

	filler Filler
}

// NewCanvas allocates a width×height canvas with every pixel set to bg.
func NewCanvas(width, height int, bg Color) *Canvas {
	width = max(width, 0)
	height = max(height, 0)
	cv := &Canvas{
		Width:  width,
		Height: height,
		Pix:    make([]Color, width*height),
	}
	if bg != 0 {
		cv.Clear(bg)
	}
	return cv
}

// Clear sets every pixel to c.
func (cv *Canvas) Clear(c Color) {
	for i := range cv.Pix {
		cv.Pix[i] = c
	}
}

// In reports whether (x, y) lies on the canvas.
func (cv *Canvas) In(x, y int) bool {
	return x >= 0 && x < cv.Width && y >= 0 && y < cv.Height
}

// Set writes c at (x, y).  Out-of-range coordinates are dropped.
func (cv *Canvas) Set(x, y int, c Color) {
	if !cv.In(x, y) {
		return
	}
	cv.Pix[y*cv.Width+x] = c
}

// Get returns the color at (x, y), or Black outside the canvas.
func (cv *Canvas) Get(x, y int) Color {
	if !cv.In(x, y) {
		return Black
	}
	return cv.Pix[y*cv.Width+x]
}

// hspan writes c to the pixels x0..x1 (inclusive) of row y, clipped to
// the canvas.
func (cv *Canvas) hspan(y, x0, x1 int, c Color) {
	if y < 0 || y >= cv.Height {
		return
	}
	x0 = max(x0, 0)
	x1 = min(x1, cv.Width-1)
	if x0 > x1 {
		return
	}
	row := cv.Pix[y*cv.Width : (y+1)*cv.Width]
	for x := x0; x <= x1; x++ {
		row[x] = c
	}
}

// At implements the image.Image interface.
func (cv *Canvas) At(x, y int) color.Color {
	return cv.Get(x, y)
}

// Bounds implements the image.Image interface.
func (cv *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, cv.Width, cv.Height)
}

// ColorModel implements the image.Image interface.
func (cv *Canvas) ColorModel() color.Model {
	return color.RGBAModel
}

// RGBA copies the canvas into a new *image.RGBA.
func (cv *Canvas) RGBA() *image.RGBA {
	img := image.NewRGBA(cv.Bounds())
	for y := range cv.Height {
		row := cv.Pix[y*cv.Width : (y+1)*cv.Width]
		out := img.Pix[y*img.Stride:]
		for x, c := range row {
			r, g, b := c.Channels()
			out[4*x+0] = r
			out[4*x+1] = g
			out[4*x+2] = b
			out[4*x+3] = 0xFF
		}
	}
	return img
}
