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
	"maps"
	"slices"
	"strings"
)

// All contains the built-in scenes, grouped by category.
// The full name of a scene is the category, an underscore, and the
// scene name, for example "lab_triangle".
var All = map[string][]Scene{
	"lab":   labScenes,
	"basic": basicScenes,
	"clip":  clipScenes,
}

// Names returns the full names of all built-in scenes, in sorted order.
func Names() []string {
	var names []string
	for _, category := range slices.Sorted(maps.Keys(All)) {
		for _, s := range All[category] {
			names = append(names, category+"_"+s.Name)
		}
	}
	return names
}

// Lookup finds a built-in scene by its full name.
// The returned scene is a copy and may be modified by the caller.
func Lookup(name string) (*Scene, bool) {
	category, rest, ok := strings.Cut(name, "_")
	if !ok {
		return nil, false
	}
	for _, s := range All[category] {
		if s.Name == rest {
			s.Ops = slices.Clone(s.Ops)
			return &s, true
		}
	}
	return nil, false
}
