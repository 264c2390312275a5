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
	"errors"
	"fmt"

	"seehuhn.de/go/geom/rect"
)

// ErrInvalidRange is returned by the random constructors if the canvas
// size is not positive.
var ErrInvalidRange = errors.New("invalid range")

// Drawable is a shape which can be drawn onto a Canvas.
type Drawable interface {
	// Draw rasterises the shape onto c.  The colour is chosen at random,
	// using src, every time Draw is called.
	Draw(c Canvas, src Source)

	// BBox returns the smallest pixel-aligned rectangle which contains all
	// pixels set by Draw.  Pixel (x, y) covers the unit square with lower
	// left corner (x, y).
	BBox() rect.Rect
}

// DrawAll draws the given shapes onto c, in order.
func DrawAll(c Canvas, src Source, shapes ...Drawable) {
	for _, s := range shapes {
		s.Draw(c, src)
	}
}

func checkRange(maxX, maxY int) error {
	if maxX <= 0 || maxY <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidRange, maxX, maxY)
	}
	return nil
}

// pixelBox returns the bounding box of the pixels in the given range.
// The ranges are inclusive.
func pixelBox(xMin, yMin, xMax, yMax int) rect.Rect {
	return rect.Rect{
		LLx: float64(xMin),
		LLy: float64(yMin),
		URx: float64(xMax + 1),
		URy: float64(yMax + 1),
	}
}
