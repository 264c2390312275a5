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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

type pixel struct {
	X, Y int
}

// recorder is a Canvas which remembers every SetPixel call.
type recorder struct {
	w, h   int
	pixels []pixel
	colors []Color
}

func newRecorder(w, h int) *recorder {
	return &recorder{w: w, h: h}
}

func (r *recorder) Width() int  { return r.w }
func (r *recorder) Height() int { return r.h }

func (r *recorder) SetPixel(x, y int, c Color) {
	r.pixels = append(r.pixels, pixel{x, y})
	r.colors = append(r.colors, c)
}

// set returns the distinct pixels which were written.
func (r *recorder) set() map[pixel]bool {
	res := make(map[pixel]bool, len(r.pixels))
	for _, p := range r.pixels {
		res[p] = true
	}
	return res
}

// scriptSource returns pre-recorded values from IntN.
type scriptSource struct {
	t      *testing.T
	values []int
}

func script(t *testing.T, values ...int) *scriptSource {
	return &scriptSource{t: t, values: values}
}

func (s *scriptSource) IntN(n int) int {
	s.t.Helper()
	if len(s.values) == 0 {
		s.t.Fatalf("unexpected call IntN(%d)", n)
	}
	v := s.values[0]
	s.values = s.values[1:]
	if v < 0 || v >= n {
		s.t.Fatalf("scripted value %d out of range for IntN(%d)", v, n)
	}
	return v
}

// constSource always returns the same offset, clamped to the valid range.
type constSource int

func (c constSource) IntN(n int) int {
	return min(int(c), n-1)
}
