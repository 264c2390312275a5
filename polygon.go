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

import "seehuhn.de/go/geom/rect"

// Rectangle is the outline of an axis-aligned rectangle, given by two
// opposite corners in any order.
type Rectangle struct {
	P1, P2 Point
}

var _ Drawable = Rectangle{}

// NewRectangle returns the rectangle with opposite corners p1 and p2.
func NewRectangle(p1, p2 Point) Rectangle {
	return Rectangle{P1: p1, P2: p2}
}

// Draw draws the four edges of the rectangle in a single random colour.
func (r Rectangle) Draw(c Canvas, src Source) {
	col := RandomColor(src)
	xMin, xMax := min(r.P1.X, r.P2.X), max(r.P1.X, r.P2.X)
	yMin, yMax := min(r.P1.Y, r.P2.Y), max(r.P1.Y, r.P2.Y)
	DrawLine(c, xMin, yMin, xMin, yMax, col)
	DrawLine(c, xMin, yMax, xMax, yMax, col)
	DrawLine(c, xMax, yMax, xMax, yMin, col)
	DrawLine(c, xMax, yMin, xMin, yMin, col)
}

// BBox implements the Drawable interface.
func (r Rectangle) BBox() rect.Rect {
	return pixelBox(
		min(r.P1.X, r.P2.X), min(r.P1.Y, r.P2.Y),
		max(r.P1.X, r.P2.X), max(r.P1.Y, r.P2.Y))
}

// Triangle is the outline of a triangle.
type Triangle struct {
	P1, P2, P3 Point
}

var _ Drawable = Triangle{}

// NewTriangle returns the triangle with vertices p1, p2 and p3.
func NewTriangle(p1, p2, p3 Point) Triangle {
	return Triangle{P1: p1, P2: p2, P3: p3}
}

// Draw draws the three edges p1→p2, p2→p3 and p3→p1 in a single random colour.
func (t Triangle) Draw(c Canvas, src Source) {
	col := RandomColor(src)
	DrawLine(c, t.P1.X, t.P1.Y, t.P2.X, t.P2.Y, col)
	DrawLine(c, t.P2.X, t.P2.Y, t.P3.X, t.P3.Y, col)
	DrawLine(c, t.P3.X, t.P3.Y, t.P1.X, t.P1.Y, col)
}

// BBox implements the Drawable interface.
func (t Triangle) BBox() rect.Rect {
	return pixelBox(
		min(t.P1.X, t.P2.X, t.P3.X), min(t.P1.Y, t.P2.Y, t.P3.Y),
		max(t.P1.X, t.P2.X, t.P3.X), max(t.P1.Y, t.P2.Y, t.P3.Y))
}
