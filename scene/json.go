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

package scene

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"seehuhn.de/go/polyfill"
)

// jsonFile is the top-level JSON object read by Load and written by Dump.
type jsonFile struct {
	Scenes []jsonScene `json:"scenes"`
}

type jsonScene struct {
	Name       string   `json:"name"`
	Width      int      `json:"width"`
	Height     int      `json:"height"`
	Background string   `json:"background,omitempty"`
	Ops        []jsonOp `json:"ops"`
}

type jsonOp struct {
	Op      string   `json:"op"` // "fill" or "outline"
	Color   string   `json:"color"`
	Polygon [][2]int `json:"polygon"`
	Hole    [][2]int `json:"hole,omitempty"`
}

// Load reads scenes from JSON.  The input is an object with a single
// field "scenes", holding a list of scene objects:
//
//	{"scenes": [{
//	  "name": "demo", "width": 64, "height": 64, "background": "white",
//	  "ops": [
//	    {"op": "fill", "color": "#ff0000",
//	     "polygon": [[0,0],[0,10],[10,10],[10,0]],
//	     "hole": [[4,4],[4,6],[6,6],[6,4]]},
//	    {"op": "outline", "color": "black",
//	     "polygon": [[0,0],[0,10],[10,10],[10,0]]}
//	  ]}]}
//
// Colors are parsed with [ParseColor].  A missing background is white.
func Load(r io.Reader) ([]Scene, error) {
	var in jsonFile
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&in); err != nil {
		return nil, fmt.Errorf("decoding scenes: %w", err)
	}

	scenes := make([]Scene, 0, len(in.Scenes))
	for i, js := range in.Scenes {
		s, err := fromJSON(js)
		if err != nil {
			name := js.Name
			if name == "" {
				name = fmt.Sprintf("#%d", i)
			}
			return nil, fmt.Errorf("scene %s: %w", name, err)
		}
		scenes = append(scenes, s)
	}
	return scenes, nil
}

var errEmptyCanvas = errors.New("canvas width and height must be positive")

func fromJSON(js jsonScene) (Scene, error) {
	if js.Width <= 0 || js.Height <= 0 {
		return Scene{}, errEmptyCanvas
	}
	s := Scene{
		Name:       js.Name,
		Width:      js.Width,
		Height:     js.Height,
		Background: polyfill.White,
	}
	if js.Background != "" {
		bg, err := ParseColor(js.Background)
		if err != nil {
			return Scene{}, fmt.Errorf("background: %w", err)
		}
		s.Background = bg
	}

	for i, jo := range js.Ops {
		c, err := ParseColor(jo.Color)
		if err != nil {
			return Scene{}, fmt.Errorf("op %d: %w", i, err)
		}
		switch jo.Op {
		case "fill":
			s.Ops = append(s.Ops, Fill{
				Polygon: fromPairs(jo.Polygon),
				Color:   c,
				Hole:    fromPairs(jo.Hole),
			})
		case "outline":
			if jo.Hole != nil {
				return Scene{}, fmt.Errorf("op %d: outline cannot have a hole", i)
			}
			s.Ops = append(s.Ops, Outline{
				Polygon: fromPairs(jo.Polygon),
				Color:   c,
			})
		default:
			return Scene{}, fmt.Errorf("op %d: unknown operation %q", i, jo.Op)
		}
	}
	return s, nil
}

// Dump writes scenes as indented JSON, in the format read by Load.
func Dump(w io.Writer, scenes []Scene) error {
	out := jsonFile{Scenes: make([]jsonScene, 0, len(scenes))}
	for _, s := range scenes {
		out.Scenes = append(out.Scenes, toJSON(s))
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func toJSON(s Scene) jsonScene {
	js := jsonScene{
		Name:       s.Name,
		Width:      s.Width,
		Height:     s.Height,
		Background: FormatColor(s.Background),
		Ops:        make([]jsonOp, 0, len(s.Ops)),
	}
	for _, op := range s.Ops {
		switch op := op.(type) {
		case Fill:
			js.Ops = append(js.Ops, jsonOp{
				Op:      "fill",
				Color:   FormatColor(op.Color),
				Polygon: toPairs(op.Polygon),
				Hole:    toPairs(op.Hole),
			})
		case Outline:
			js.Ops = append(js.Ops, jsonOp{
				Op:      "outline",
				Color:   FormatColor(op.Color),
				Polygon: toPairs(op.Polygon),
			})
		}
	}
	return js
}

func fromPairs(pairs [][2]int) polyfill.Polygon {
	if pairs == nil {
		return nil
	}
	poly := make(polyfill.Polygon, len(pairs))
	for i, p := range pairs {
		poly[i] = polyfill.Pt(p[0], p[1])
	}
	return poly
}

func toPairs(poly polyfill.Polygon) [][2]int {
	if poly == nil {
		return nil
	}
	pairs := make([][2]int, len(poly))
	for i, p := range poly {
		pairs[i] = [2]int{p.X, p.Y}
	}
	return pairs
}
