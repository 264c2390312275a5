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

package imagefile

import (
	"image"
	"image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"
)

// WritePDF writes img as a single-page PDF file.  One pixel corresponds to
// one PDF point.  The page is painted black, and every horizontal run of
// equal, non-black pixels is painted as a filled rectangle.
func WritePDF(fname string, img image.Image) error {
	b := img.Bounds()
	width, height := float64(b.Dx()), float64(b.Dy())

	paper := &pdf.Rectangle{
		URx: width,
		URy: height,
	}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(pdfcolor.DeviceGray(0))
	page.Rectangle(0, 0, width, height)
	page.Fill()

	// PDF origin is bottom-left; images use top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, height})

	for _, r := range pixelRuns(img) {
		page.SetFillColor(pdfcolor.DeviceRGB{
			float64(r.col.R) / 255,
			float64(r.col.G) / 255,
			float64(r.col.B) / 255,
		})
		page.Rectangle(float64(r.x), float64(r.y), float64(r.n), 1)
		page.Fill()
	}

	return page.Close()
}

// run is a horizontal sequence of n pixels of the same colour, starting at
// (x, y) relative to the image origin.
type run struct {
	x, y, n int
	col     color.RGBA
}

// pixelRuns splits the non-black pixels of img into horizontal runs.
// Alpha is ignored.
func pixelRuns(img image.Image) []run {
	b := img.Bounds()
	var runs []run
	for y := range b.Dy() {
		var cur run
		for x := range b.Dx() {
			c := color.RGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.RGBA)
			c.A = 0xff
			if cur.n > 0 && c == cur.col {
				cur.n++
				continue
			}
			if cur.n > 0 {
				runs = append(runs, cur)
				cur.n = 0
			}
			if c.R|c.G|c.B != 0 {
				cur = run{x: x, y: y, n: 1, col: c}
			}
		}
		if cur.n > 0 {
			runs = append(runs, cur)
		}
	}
	return runs
}
