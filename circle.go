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

// edgeMargin is the distance from the right (bottom) edge of the canvas
// above which RandomCircle limits the radius by the distance to the left
// (top) edge instead.
const edgeMargin = 500

// Circle is the outline of a circle.
type Circle struct {
	Center Point
	Radius int // must be non-negative
}

var _ Drawable = Circle{}

// NewCircle returns the circle with the given centre and radius.
// A radius of 0 draws a single pixel.
func NewCircle(center Point, radius int) Circle {
	return Circle{Center: center, Radius: radius}
}

// RandomCircle returns a circle with a random centre in [0, maxX) × [0, maxY)
// and a random radius.
//
// The radius is bounded separately in each direction: by the distance to
// the right edge, or, if that distance exceeds 500, by the distance x to the
// left edge.  The same rule applies vertically.  The radius is then uniform
// in [0, bound) for the smaller of the two bounds; a zero bound, which
// occurs for a centre on the left or top edge of a large canvas, yields
// radius 0.  Near the left or top edge of a small canvas the circle may
// extend beyond the canvas.
func RandomCircle(src Source, maxX, maxY int) (Circle, error) {
	center, err := RandomPoint(src, maxX, maxY)
	if err != nil {
		return Circle{}, err
	}
	bound := radiusBound(center, maxX, maxY)

	radius := 0
	if bound > 0 {
		radius = intRange(src, 0, bound)
	}
	return Circle{Center: center, Radius: radius}, nil
}

// radiusBound returns the exclusive upper bound for the radius of a random
// circle centred at p.
func radiusBound(p Point, maxX, maxY int) int {
	ax := maxX - p.X
	if ax > edgeMargin {
		ax = p.X
	}
	ay := maxY - p.Y
	if ay > edgeMargin {
		ay = p.Y
	}
	return min(ax, ay)
}

// Draw draws the circle outline in a single random colour.
func (c Circle) Draw(cv Canvas, src Source) {
	DrawCircle(cv, c.Center.X, c.Center.Y, c.Radius, RandomColor(src))
}

// BBox implements the Drawable interface.
func (c Circle) BBox() rect.Rect {
	m := c.Center.Vec()
	r := float64(c.Radius)
	return rect.Rect{
		LLx: m.X - r,
		LLy: m.Y - r,
		URx: m.X + r + 1,
		URy: m.Y + r + 1,
	}
}
