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

package main

import (
	"fmt"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/shapes"
	"seehuhn.de/go/shapes/testcases"
)

// demoScene returns the shapes of the default picture: a random line, a
// random point, a fixed rectangle and triangle, and the given number of
// random circles.
func demoScene(src shapes.Source, width, height, circles int) ([]shapes.Drawable, error) {
	line, err := shapes.RandomLineSegment(src, width, height)
	if err != nil {
		return nil, err
	}
	point, err := shapes.RandomPoint(src, width, height)
	if err != nil {
		return nil, err
	}
	scene := []shapes.Drawable{
		line,
		point,
		shapes.NewRectangle(shapes.NewPoint(150, 150), shapes.NewPoint(50, 50)),
		shapes.NewTriangle(
			shapes.NewPoint(500, 500),
			shapes.NewPoint(250, 700),
			shapes.NewPoint(700, 800)),
	}
	for range circles {
		c, err := shapes.RandomCircle(src, width, height)
		if err != nil {
			return nil, err
		}
		scene = append(scene, c)
	}
	return scene, nil
}

// testScene returns the canvas size and shapes of a named test case.
func testScene(name string) (width, height int, scene []shapes.Drawable, err error) {
	tc, ok := testcases.Lookup(name)
	if !ok {
		return 0, 0, nil, fmt.Errorf("unknown scene %q", name)
	}
	return tc.Width, tc.Height, tc.Shapes, nil
}

// overflows reports whether the bounding box extends beyond a canvas of the
// given size.
func overflows(box rect.Rect, width, height int) bool {
	return box.LLx < 0 || box.LLy < 0 ||
		box.URx > float64(width) || box.URy > float64(height)
}
