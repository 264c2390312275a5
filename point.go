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

import (
	"fmt"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Point is a single pixel position.
type Point struct {
	X, Y int
}

var _ Drawable = Point{}

// NewPoint returns the point (x, y).
func NewPoint(x, y int) Point {
	return Point{X: x, Y: y}
}

// RandomPoint returns a point with x uniform in [0, maxX) and y uniform in
// [0, maxY).
func RandomPoint(src Source, maxX, maxY int) (Point, error) {
	if err := checkRange(maxX, maxY); err != nil {
		return Point{}, err
	}
	return Point{
		X: intRange(src, 0, maxX),
		Y: intRange(src, 0, maxY),
	}, nil
}

// Vec returns the point as a vector.
func (p Point) Vec() vec.Vec2 {
	return vec.Vec2{X: float64(p.X), Y: float64(p.Y)}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Draw sets the pixel at p.
func (p Point) Draw(c Canvas, src Source) {
	c.SetPixel(p.X, p.Y, RandomColor(src))
}

// BBox implements the Drawable interface.
func (p Point) BBox() rect.Rect {
	return pixelBox(p.X, p.Y, p.X, p.Y)
}
