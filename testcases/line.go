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

var lineCases = []TestCase{
	{
		Name:   "horizontal",
		Width:  32,
		Height: 32,
		Shapes: []shapes.Drawable{shapes.NewLineSegment(pt(2, 16), pt(29, 16))},
	},
	{
		Name:   "vertical",
		Width:  32,
		Height: 32,
		Shapes: []shapes.Drawable{shapes.NewLineSegment(pt(16, 29), pt(16, 2))},
	},
	{
		Name:   "diagonal_odd",
		Width:  32,
		Height: 32,
		Shapes: []shapes.Drawable{shapes.NewLineSegment(pt(1, 1), pt(28, 28))},
	},
	{
		Name:   "diagonal_even",
		Width:  32,
		Height: 32,
		Shapes: []shapes.Drawable{shapes.NewLineSegment(pt(2, 29), pt(30, 1))},
	},
	{
		Name:   "shallow",
		Width:  32,
		Height: 32,
		Shapes: []shapes.Drawable{shapes.NewLineSegment(pt(1, 5), pt(30, 17))},
	},
	{
		Name:   "steep",
		Width:  32,
		Height: 32,
		Shapes: []shapes.Drawable{shapes.NewLineSegment(pt(20, 1), pt(8, 30))},
	},
	{
		Name:   "clipped",
		Width:  32,
		Height: 32,
		Shapes: []shapes.Drawable{shapes.NewLineSegment(pt(-10, 5), pt(40, 25))},
	},
}
