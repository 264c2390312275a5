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

// minChannel is the smallest channel value produced by RandomColor.
// Darker colours are hard to see on a black background.
const minChannel = 20

// Color is an opaque RGB colour.
type Color struct {
	R, G, B uint8
}

// RGBA implements the color.Color interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// RandomColor returns a colour where each channel is uniformly distributed
// in the range [20, 255].
func RandomColor(src Source) Color {
	return Color{
		R: uint8(intRangeIncl(src, minChannel, 255)),
		G: uint8(intRangeIncl(src, minChannel, 255)),
		B: uint8(intRangeIncl(src, minChannel, 255)),
	}
}
