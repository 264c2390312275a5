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
	"image"
	"image/color"
	"image/draw"
)

// Canvas is a mutable grid of pixels which shapes can be drawn on.
//
// SetPixel may be called with coordinates outside the canvas.  It is up to
// the implementation whether such writes are dropped or reported elsewhere,
// but they must not modify any pixel of the canvas.
type Canvas interface {
	Width() int
	Height() int
	SetPixel(x, y int, c Color)
}

// Image is a Canvas backed by an RGBA image.  Writes outside the image
// bounds are silently dropped.
//
// An Image is not safe for concurrent use.
type Image struct {
	*image.RGBA
}

var _ Canvas = (*Image)(nil)

// NewImage returns an opaque black image of the given size.
func NewImage(width, height int) *Image {
	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(rgba, rgba.Rect, image.NewUniform(color.Black), image.Point{}, draw.Src)
	return &Image{RGBA: rgba}
}

// Width returns the width of the image in pixels.
func (img *Image) Width() int {
	return img.Rect.Dx()
}

// Height returns the height of the image in pixels.
func (img *Image) Height() int {
	return img.Rect.Dy()
}

// SetPixel sets the pixel at (x, y) to c.
func (img *Image) SetPixel(x, y int, c Color) {
	img.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff})
}
