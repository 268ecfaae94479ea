package polyfill

import "testing"

func TestOutlineAfterFill(t *testing.T) {
	square := Poly(2, 2, 2, 12, 12, 12, 12, 2)
	cv := NewCanvas(16, 16, White)
	cv.Fill(square, Red, nil)
	cv.Outline(square, Black)

	for i := range square {
		for _, p := range Line(square[i], square[(i+1)%len(square)]) {
			if got := cv.Get(p.X, p.Y); got != Black {
				t.Errorf("boundary pixel %v = %06x, want black", p, got)
			}
		}
	}
	if got := cv.Get(7, 7); got != Red {
		t.Errorf("interior pixel = %06x, want red", got)
	}
}

func TestOutlineBeforeFill(t *testing.T) {
	square := Poly(2, 2, 2, 12, 12, 12, 12, 2)
	cv := NewCanvas(16, 16, White)
	cv.Outline(square, Black)
	cv.Fill(square, Red, nil)

	cases := []struct {
		p    Point
		want Color
	}{
		{Pt(2, 7), Red},    // left edge, overwritten by the fill
		{Pt(12, 7), Red},   // right edge, overwritten by the fill
		{Pt(7, 2), Red},    // top edge, overwritten by the fill
		{Pt(7, 12), Black}, // bottom row is not part of the fill
		{Pt(7, 7), Red},
		{Pt(0, 0), White},
	}
	for _, c := range cases {
		if got := cv.Get(c.p.X, c.p.Y); got != c.want {
			t.Errorf("pixel %v = %06x, want %06x", c.p, got, c.want)
		}
	}
}

func TestOutlineDegenerate(t *testing.T) {
	for _, poly := range []Polygon{nil, Poly(3, 3)} {
		cv := NewCanvas(8, 8, White)
		cv.Outline(poly, Black)
		for i, c := range cv.Pix {
			if c != White {
				t.Errorf("%v: pixel %d painted", poly, i)
			}
		}
	}

	cv := NewCanvas(8, 8, White)
	cv.Outline(Poly(1, 1, 5, 1), Black)
	painted := 0
	for _, c := range cv.Pix {
		if c == Black {
			painted++
		}
	}
	if painted != 5 {
		t.Errorf("two-vertex outline painted %d pixels, want 5", painted)
	}
}

func TestOutlineClipped(t *testing.T) {
	// only the edge x+y=0 touches the canvas, in the pixel (0,0)
	cv := NewCanvas(10, 10, White)
	cv.Outline(Poly(-5, 5, 5, -5, 15, 5, 5, 15), Black)
	for y := range cv.Height {
		for x := range cv.Width {
			want := White
			if x == 0 && y == 0 {
				want = Black
			}
			if got := cv.Get(x, y); got != want {
				t.Errorf("pixel (%d,%d) = %06x, want %06x", x, y, got, want)
			}
		}
	}
}
