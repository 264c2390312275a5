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

// Package imagefile writes raster images to files.
package imagefile

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
)

// Format identifies an output file format.
type Format int

// These are the supported output formats.
const (
	PNG Format = iota
	BMP
	TIFF
	PDF
)

func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case BMP:
		return "bmp"
	case TIFF:
		return "tiff"
	case PDF:
		return "pdf"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ErrUnknownFormat is returned if a file name has an unsupported extension.
var ErrUnknownFormat = errors.New("unknown image format")

// FormatFromName determines the output format from the extension of fname.
func FormatFromName(fname string) (Format, error) {
	switch strings.ToLower(filepath.Ext(fname)) {
	case ".png":
		return PNG, nil
	case ".bmp":
		return BMP, nil
	case ".tif", ".tiff":
		return TIFF, nil
	case ".pdf":
		return PDF, nil
	default:
		return 0, fmt.Errorf("%q: %w", fname, ErrUnknownFormat)
	}
}

// Encode writes img to w in the given format.
// PDF output needs a file name; use WritePDF for this.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case PNG:
		return png.Encode(w, img)
	case BMP:
		return bmp.Encode(w, img)
	case TIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("cannot stream %s: %w", f, errors.ErrUnsupported)
	}
}

// Save writes img to the file fname.  The format is chosen by the file
// name extension.
func Save(fname string, img image.Image) (err error) {
	f, err := FormatFromName(fname)
	if err != nil {
		return err
	}
	if f == PDF {
		return WritePDF(fname, img)
	}

	out, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()
	return Encode(out, img, f)
}

// Scale enlarges img by an integer factor, so that every pixel becomes a
// factor × factor block.  A factor of 1 returns img unchanged.
func Scale(img image.Image, factor int) image.Image {
	if factor <= 1 {
		return img
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Rect, img, b, draw.Src, nil)
	return dst
}
