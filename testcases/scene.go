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

var sceneCases = []TestCase{
	{
		Name:   "mixed",
		Width:  64,
		Height: 64,
		Shapes: []shapes.Drawable{
			shapes.NewPoint(1, 1),
			shapes.NewLineSegment(pt(0, 63), pt(63, 0)),
			shapes.NewRectangle(pt(53, 53), pt(10, 10)),
			shapes.NewTriangle(pt(32, 12), pt(14, 48), pt(50, 48)),
			shapes.NewCircle(pt(32, 32), 20),
		},
	},
	{
		Name:   "points",
		Width:  16,
		Height: 16,
		Shapes: []shapes.Drawable{
			shapes.NewPoint(0, 0),
			shapes.NewPoint(15, 0),
			shapes.NewPoint(0, 15),
			shapes.NewPoint(15, 15),
			shapes.NewPoint(7, 8),
			shapes.NewPoint(16, 16),
			shapes.NewPoint(-1, 3),
		},
	},
	{
		// a scaled-down version of the demo scene in cmd/shapes
		Name:   "demo",
		Width:  100,
		Height: 100,
		Shapes: []shapes.Drawable{
			shapes.NewRectangle(pt(15, 15), pt(5, 5)),
			shapes.NewTriangle(pt(50, 50), pt(25, 70), pt(70, 80)),
			shapes.NewCircle(pt(60, 30), 12),
			shapes.NewCircle(pt(80, 80), 19),
		},
	},
}
