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

package shapes_test

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"maps"
	"math/rand/v2"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"seehuhn.de/go/shapes"
	"seehuhn.de/go/shapes/testcases"
)

func TestAgainstReference(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				// load reference image
				refPath := filepath.Join("testdata", "reference", name+".png")
				ref, err := loadGray(refPath)
				if err != nil {
					t.Fatalf("loading reference: %v", err)
				}

				// render
				img := renderExample(tc, rand.New(rand.NewPCG(1, 2)))
				actual := coverage(img)

				// compare
				if err := compareImages(name, ref, actual, tc.Width, tc.Height); err != nil {
					t.Error(err)
				}
			})
		}
	}
}

// TestDeterministic checks that equal seeds give equal images, including
// the colours.
func TestDeterministic(t *testing.T) {
	tc, ok := testcases.Lookup("scene_mixed")
	if !ok {
		t.Fatal("test case scene_mixed not found")
	}
	a := renderExample(tc, rand.New(rand.NewPCG(9, 9)))
	b := renderExample(tc, rand.New(rand.NewPCG(9, 9)))
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("images differ for equal seeds")
	}
	c := renderExample(tc, rand.New(rand.NewPCG(10, 10)))
	if bytes.Equal(a.Pix, c.Pix) {
		t.Error("images are identical for different seeds")
	}
}

// TestVisibleColors checks that no drawn pixel is close to the black
// background.
func TestVisibleColors(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			img := renderExample(tc, rand.New(rand.NewPCG(3, 1)))
			for i := 0; i < len(img.Pix); i += 4 {
				r, g, b := img.Pix[i], img.Pix[i+1], img.Pix[i+2]
				if r|g|b == 0 {
					continue
				}
				if r < 20 || g < 20 || b < 20 {
					t.Fatalf("%s_%s: pixel colour (%d,%d,%d) too dark", category, tc.Name, r, g, b)
				}
			}
		}
	}
}

func TestLookup(t *testing.T) {
	if _, ok := testcases.Lookup("line_diagonal_odd"); !ok {
		t.Error("line_diagonal_odd not found")
	}
	for _, name := range []string{"", "line", "line_", "nosuch_case", "line_nosuch"} {
		if _, ok := testcases.Lookup(name); ok {
			t.Errorf("Lookup(%q) succeeded", name)
		}
	}
}

// renderExample draws all shapes of a test case onto a new image.
func renderExample(tc testcases.TestCase, src shapes.Source) *shapes.Image {
	img := shapes.NewImage(tc.Width, tc.Height)
	shapes.DrawAll(img, src, tc.Shapes...)
	return img
}

// coverage returns 255 for every pixel which differs from the black
// background and 0 otherwise, in row-major order.
func coverage(img *shapes.Image) []byte {
	w, h := img.Width(), img.Height()
	res := make([]byte, w*h)
	for y := range h {
		for x := range w {
			c := img.RGBAAt(x, y)
			if c.R|c.G|c.B != 0 {
				res[y*w+x] = 255
			}
		}
	}
	return res
}

func loadGray(path string) (gray []byte, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	img, err := png.Decode(f)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	gray = make([]byte, w*h)

	for y := range h {
		for x := range w {
			c := color.GrayModel.Convert(img.At(x+bounds.Min.X, y+bounds.Min.Y)).(color.Gray)
			gray[y*w+x] = c.Y
		}
	}
	return gray, nil
}

// compareImages requires a pixel-exact match; rasterisation is integer-only.
func compareImages(name string, expected, actual []byte, w, h int) error {
	if len(expected) != w*h {
		return fmt.Errorf("reference has %d pixels, want %d", len(expected), w*h)
	}

	missing, extra := 0, 0
	for i := range expected {
		switch {
		case expected[i] > actual[i]:
			missing++
		case expected[i] < actual[i]:
			extra++
		}
	}
	if missing == 0 && extra == 0 {
		return nil
	}

	_ = writeDiffImage(name, expected, actual, w, h)
	return fmt.Errorf("%d pixels missing, %d extra pixels", missing, extra)
}

func writeDiffImage(name string, expected, actual []byte, w, h int) (err error) {
	if err := os.MkdirAll("debug", 0755); err != nil {
		return err
	}

	// Create 3-panel image: actual (left), diff (middle), reference (right)
	img := image.NewRGBA(image.Rect(0, 0, w*3, h))
	for y := range h {
		for x := range w {
			i := y*w + x

			a := actual[i]
			img.Set(x, y, color.RGBA{R: a, G: a, B: a, A: 255})

			// green = missing, red = extra, black = match
			var diffColor color.RGBA
			switch {
			case expected[i] > actual[i]:
				diffColor = color.RGBA{G: 255, A: 255}
			case expected[i] < actual[i]:
				diffColor = color.RGBA{R: 255, A: 255}
			default:
				diffColor = color.RGBA{A: 255}
			}
			img.Set(x+w, y, diffColor)

			e := expected[i]
			img.Set(x+w*2, y, color.RGBA{R: e, G: e, B: e, A: 255})
		}
	}

	f, err := os.Create(filepath.Join("debug", name+".png"))
	if err != nil {
		return err
	}
	err = png.Encode(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
