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

package shapes

// DrawLine draws the line segment from (x0, y0) to (x1, y1) using
// Bresenham's algorithm.  Both end points are always set, and consecutive
// pixels are 8-connected.
func DrawLine(c Canvas, x0, y0, x1, y1 int, col Color) {
	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y0
	if dy < 0 {
		dy = -dy
	}
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}

	// The initial error is not symmetric in dx and dy.  For dx == dy the
	// line is a true diagonal only when dx is odd; even diagonals come out
	// as staircases.
	err := -dy
	if dx > dy {
		err = dx
	}
	err /= 2

	for {
		c.SetPixel(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			break
		}
		err2 := 2 * err
		if err2 > -dx {
			err -= dy
			x0 += sx
		}
		if err2 < dy {
			err += dx
			y0 += sy
		}
	}
}

// DrawCircle draws the outline of the circle with centre (cx, cy) and the
// given radius, using the midpoint circle algorithm.
//
// Each step of the algorithm sets the eight pixels obtained by reflecting the
// current offset along the axes and the diagonals.  Pixels on the axes and
// the diagonals may therefore be set more than once.
func DrawCircle(c Canvas, cx, cy, radius int, col Color) {
	x := 0
	y := radius
	delta := 1 - 2*radius
	for y >= x {
		c.SetPixel(cx+x, cy+y, col)
		c.SetPixel(cx+x, cy-y, col)
		c.SetPixel(cx-x, cy+y, col)
		c.SetPixel(cx-x, cy-y, col)
		c.SetPixel(cx+y, cy+x, col)
		c.SetPixel(cx+y, cy-x, col)
		c.SetPixel(cx-y, cy+x, col)
		c.SetPixel(cx-y, cy-x, col)

		e := 2*(delta+y) - 1
		switch {
		case delta < 0 && e <= 0:
			x++
			delta += 2*x + 1
		case delta > 0 && e > 0:
			y--
			delta -= 2*y + 1
		default:
			x++
			y--
			delta += 2 * (x - y)
		}
	}
}
