// seehuhn.de/go/shapes - random shapes on a raster image
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

package testcases

import "seehuhn.de/go/shapes"

// TestCase defines a single rendering test.
type TestCase struct {
	Name   string            // lowercase a-z, 0-9 and _ only
	Width  int               // canvas width in pixels
	Height int               // canvas height in pixels
	Shapes []shapes.Drawable // drawn in order
}

// pt is a helper to create a shapes.Point from x, y coordinates.
func pt(x, y int) shapes.Point {
	return shapes.Point{X: x, Y: y}
}
