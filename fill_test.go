package polyfill

import (
	"fmt"
	"image"
	"slices"
	"testing"
)

// labShape and labHole are the large polygon and its hole from the
// classic scanline exercise.
var (
	labShape = Poly(
		413, 177, 448, 159, 502, 88, 553, 53, 535, 36,
		676, 37, 660, 52, 750, 145, 761, 179, 672, 192,
		659, 214, 615, 214, 632, 230, 580, 230, 597, 215,
		552, 214, 517, 144, 466, 180)
	labHole = Poly(682, 175, 708, 120, 735, 148, 739, 170)
)

func TestFillSquare(t *testing.T) {
	cv := NewCanvas(20, 20, White)
	cv.Fill(Poly(0, 0, 0, 10, 10, 10, 10, 0), Red, nil)

	for y := range cv.Height {
		for x := range cv.Width {
			want := White
			if x <= 10 && y <= 9 {
				want = Red
			}
			if got := cv.Get(x, y); got != want {
				t.Errorf("pixel (%d,%d) = %06x, want %06x", x, y, got, want)
			}
		}
	}
}

func TestFillSquareWithHole(t *testing.T) {
	cv := NewCanvas(20, 20, White)
	hole := Poly(4, 4, 4, 6, 6, 6, 6, 4)
	cv.Fill(Poly(0, 0, 0, 10, 10, 10, 10, 0), Red, hole)

	for y := range cv.Height {
		for x := range cv.Width {
			want := White
			inSquare := x <= 10 && y <= 9
			inHole := x >= 4 && x <= 5 && y >= 4 && y <= 5
			if inSquare && !inHole {
				want = Red
			}
			if got := cv.Get(x, y); got != want {
				t.Errorf("pixel (%d,%d) = %06x, want %06x", x, y, got, want)
			}
		}
	}
}

func TestSpansTriangle(t *testing.T) {
	type span struct{ y, xMin, xMax int }
	var got []span
	var f Filler
	f.Spans(Poly(0, 0, 4, 4, -4, 4), func(y, xMin, xMax int) {
		got = append(got, span{y, xMin, xMax})
	})
	want := []span{{0, 0, 0}, {1, -1, 1}, {2, -2, 2}, {3, -3, 3}}
	if !slices.Equal(got, want) {
		t.Errorf("spans = %v, want %v", got, want)
	}
}

func TestSpansTruncate(t *testing.T) {
	// The crossing positions involve negative quotients, which must be
	// truncated towards zero rather than rounded down.
	type span struct{ y, xMin, xMax int }
	var got []span
	var f Filler
	f.Spans(Poly(0, 0, -3, 2, 3, 2), func(y, xMin, xMax int) {
		got = append(got, span{y, xMin, xMax})
	})
	want := []span{{0, 0, 0}, {1, -1, 2}}
	if !slices.Equal(got, want) {
		t.Errorf("spans = %v, want %v", got, want)
	}
}

func TestSpansClipped(t *testing.T) {
	var rows []int
	var f Filler
	f.SpansClipped(Poly(0, -10, 10, 10, -10, 10), 3, 6, func(y, _, _ int) {
		rows = append(rows, y)
	})
	if !slices.Equal(rows, []int{3, 4, 5}) {
		t.Errorf("rows = %v, want [3 4 5]", rows)
	}
}

func TestFillDegenerate(t *testing.T) {
	polys := []Polygon{
		nil,
		Poly(5, 5),
		Poly(2, 2, 8, 8),
		Poly(1, 1, 1, 1, 1, 1),
	}
	for _, poly := range polys {
		cv := NewCanvas(10, 10, White)
		cv.Fill(poly, Red, nil)
		cv.FillParallel(poly, Red, nil, 4)
		for i, c := range cv.Pix {
			if c != White {
				t.Errorf("%v: pixel %d painted", poly, i)
				break
			}
		}
	}
}

func TestFillClipped(t *testing.T) {
	cv := NewCanvas(10, 10, White)
	cv.Fill(Poly(-5, -5, -5, 5, 5, 5, 5, -5), Red, nil)
	cv.Fill(Poly(8, 8, 30, 8, 30, 30, 8, 30), Blue, Poly(-100, -100, 100, -100, 100, 9, -100, 9))

	for y := range cv.Height {
		for x := range cv.Width {
			want := White
			switch {
			case x <= 5 && y <= 4:
				want = Red
			case x >= 8 && y >= 9:
				want = Blue
			}
			if got := cv.Get(x, y); got != want {
				t.Errorf("pixel (%d,%d) = %06x, want %06x", x, y, got, want)
			}
		}
	}
}

// TestFillRectangleMatchesContains checks that for axis-aligned
// rectangles the fill covers exactly the pixels inside the rectangle,
// plus the right-most column which Contains excludes.
func TestFillRectangleMatchesContains(t *testing.T) {
	rects := []Polygon{
		Poly(2, 3, 17, 3, 17, 12, 2, 12),
		Poly(0, 0, 0, 1, 1, 1, 1, 0),
		Poly(-4, 5, 6, 5, 6, 30, -4, 30),
	}
	for _, poly := range rects {
		cv := NewCanvas(24, 24, Black)
		cv.Fill(poly, White, nil)
		for y := range cv.Height {
			for x := range cv.Width {
				inside := Contains(poly, Pt(x, y)) || Contains(poly, Pt(x-1, y))
				painted := cv.Get(x, y) == White
				if painted != inside {
					t.Errorf("%v: pixel (%d,%d) painted=%t, inside=%t", poly, x, y, painted, inside)
				}
			}
		}
	}
}

// TestFillConvexInterior checks that every pixel well inside a convex
// polygon is painted and that nothing outside the bounding box is.
func TestFillConvexInterior(t *testing.T) {
	convex := []Polygon{
		Poly(377-360, 249-190, 411-360, 197-190, 436-360, 249-190),
		Poly(321-280, 335-250, 288-280, 286-250, 339-280, 251-250, 374-280, 302-250),
		Poly(10, 30, 20, 10, 45, 8, 70, 25, 60, 60, 25, 70),
		Poly(40, 2, 78, 40, 40, 78, 2, 40),
	}
	for i, poly := range convex {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			cv := NewCanvas(80, 80, Black)
			cv.Fill(poly, White, nil)
			bounds := poly.Bounds()
			for y := range cv.Height {
				for x := range cv.Width {
					painted := cv.Get(x, y) == White
					if Contains(poly, Pt(x-1, y)) && Contains(poly, Pt(x, y)) && Contains(poly, Pt(x+1, y)) && !painted {
						t.Errorf("interior pixel (%d,%d) not painted", x, y)
					}
					if painted && !image.Pt(x, y).In(bounds) {
						t.Errorf("pixel (%d,%d) outside %v painted", x, y, bounds)
					}
				}
			}
		})
	}
}

func TestFillHoleSubtracts(t *testing.T) {
	outer := NewCanvas(800, 600, White)
	outer.Fill(labShape, Yellow, nil)

	cv := NewCanvas(800, 600, White)
	cv.Fill(labShape, Yellow, labHole)

	removed := 0
	for y := range cv.Height {
		for x := range cv.Width {
			want := outer.Get(x, y)
			if want == Yellow && Contains(labHole, Pt(x, y)) {
				want = White
				removed++
			}
			if got := cv.Get(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %06x, want %06x", x, y, got, want)
			}
		}
	}
	if removed == 0 {
		t.Error("hole removed no pixels")
	}
}

func TestFillParallel(t *testing.T) {
	want := NewCanvas(800, 600, White)
	want.Fill(labShape, Yellow, labHole)

	for _, workers := range []int{0, 1, 2, 3, 7, 1000} {
		cv := NewCanvas(800, 600, White)
		cv.FillParallel(labShape, Yellow, labHole, workers)
		if !slices.Equal(cv.Pix, want.Pix) {
			t.Errorf("workers=%d: result differs from Fill", workers)
		}
	}
}

func TestFillOutsideCanvas(t *testing.T) {
	cv := NewCanvas(10, 10, White)
	cv.Fill(Poly(20, 20, 30, 20, 30, 30), Red, nil)
	cv.FillParallel(Poly(-30, -30, -20, -30, -20, -20), Red, nil, 3)
	for i, c := range cv.Pix {
		if c != White {
			t.Fatalf("pixel %d painted", i)
		}
	}
}
