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

var polygonCases = []TestCase{
	{
		Name:   "square",
		Width:  16,
		Height: 16,
		Shapes: []shapes.Drawable{shapes.NewRectangle(pt(2, 2), pt(6, 6))},
	},
	{
		Name:   "rectangle_swapped",
		Width:  32,
		Height: 32,
		Shapes: []shapes.Drawable{shapes.NewRectangle(pt(28, 20), pt(3, 5))},
	},
	{
		Name:   "rectangle_flat",
		Width:  32,
		Height: 32,
		Shapes: []shapes.Drawable{shapes.NewRectangle(pt(4, 12), pt(27, 12))},
	},
	{
		Name:   "triangle",
		Width:  32,
		Height: 32,
		Shapes: []shapes.Drawable{shapes.NewTriangle(pt(5, 5), pt(26, 10), pt(12, 28))},
	},
	{
		Name:   "triangle_collinear",
		Width:  32,
		Height: 32,
		Shapes: []shapes.Drawable{shapes.NewTriangle(pt(2, 2), pt(10, 14), pt(20, 29))},
	},
}
