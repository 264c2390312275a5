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

// LineSegment is the straight line between two points.
type LineSegment struct {
	P1, P2 Point
}

var _ Drawable = LineSegment{}

// NewLineSegment returns the line segment from p1 to p2.
func NewLineSegment(p1, p2 Point) LineSegment {
	return LineSegment{P1: p1, P2: p2}
}

// RandomLineSegment returns a line segment with both end points chosen
// independently using RandomPoint.
func RandomLineSegment(src Source, maxX, maxY int) (LineSegment, error) {
	p1, err := RandomPoint(src, maxX, maxY)
	if err != nil {
		return LineSegment{}, err
	}
	p2, err := RandomPoint(src, maxX, maxY)
	if err != nil {
		return LineSegment{}, err
	}
	return LineSegment{P1: p1, P2: p2}, nil
}

// Draw draws the segment in a single random colour.
func (l LineSegment) Draw(c Canvas, src Source) {
	DrawLine(c, l.P1.X, l.P1.Y, l.P2.X, l.P2.Y, RandomColor(src))
}

// BBox implements the Drawable interface.
func (l LineSegment) BBox() rect.Rect {
	return pixelBox(
		min(l.P1.X, l.P2.X), min(l.P1.Y, l.P2.Y),
		max(l.P1.X, l.P2.X), max(l.P1.Y, l.P2.Y))
}
