package pdfout

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"seehuhn.de/go/polyfill"
	"seehuhn.de/go/polyfill/scene"
)

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	for _, name := range scene.Names() {
		t.Run(name, func(t *testing.T) {
			s, _ := scene.Lookup(name)
			fname := filepath.Join(dir, name+".pdf")
			if err := Write(fname, s); err != nil {
				t.Fatal(err)
			}

			data, err := os.ReadFile(fname)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.HasPrefix(data, []byte("%PDF-1.7")) {
				t.Errorf("missing PDF header: %q", data[:min(len(data), 16)])
			}
		})
	}
}

func TestWriteEmpty(t *testing.T) {
	s := &scene.Scene{Name: "empty", Background: polyfill.White}
	if err := Write(filepath.Join(t.TempDir(), "empty.pdf"), s); err == nil {
		t.Error("empty canvas accepted")
	}
}

type recorder struct {
	moves, lines, closes int
}

func (r *recorder) MoveTo(x, y float64) { r.moves++ }
func (r *recorder) LineTo(x, y float64) { r.lines++ }
func (r *recorder) ClosePath()          { r.closes++ }

func TestAddPolygon(t *testing.T) {
	var r recorder
	addPolygon(&r, polyfill.Poly(0, 0, 10, 0, 10, 10, 0, 10))
	if r.moves != 1 || r.lines != 3 || r.closes != 1 {
		t.Errorf("got %d moves, %d lines, %d closes", r.moves, r.lines, r.closes)
	}
}
