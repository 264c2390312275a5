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

var circleCases = []TestCase{
	{
		Name:   "radius_zero",
		Width:  16,
		Height: 16,
		Shapes: []shapes.Drawable{shapes.NewCircle(pt(8, 8), 0)},
	},
	{
		Name:   "radius_five",
		Width:  16,
		Height: 16,
		Shapes: []shapes.Drawable{shapes.NewCircle(pt(8, 8), 5)},
	},
	{
		Name:   "radius_fifteen",
		Width:  32,
		Height: 32,
		Shapes: []shapes.Drawable{shapes.NewCircle(pt(16, 16), 15)},
	},
	{
		Name:   "concentric",
		Width:  32,
		Height: 32,
		Shapes: []shapes.Drawable{
			shapes.NewCircle(pt(16, 16), 3),
			shapes.NewCircle(pt(16, 16), 7),
			shapes.NewCircle(pt(16, 16), 11),
		},
	},
	{
		Name:   "clipped",
		Width:  32,
		Height: 32,
		Shapes: []shapes.Drawable{shapes.NewCircle(pt(4, 4), 10)},
	},
}
