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

// Source provides uniformly distributed random integers.
// A *rand.Rand from math/rand/v2 implements this interface.
//
// The shape constructors and Draw methods only read from the Source.
// A Source shared between goroutines must be safe for concurrent use.
type Source interface {
	// IntN returns a uniformly distributed integer in [0, n).
	// It is only called with n > 0.
	IntN(n int) int
}

// intRange returns a random integer in [lo, hi).  The caller ensures lo < hi.
func intRange(src Source, lo, hi int) int {
	return lo + src.IntN(hi-lo)
}

// intRangeIncl returns a random integer in [lo, hi].
func intRangeIncl(src Source, lo, hi int) int {
	return lo + src.IntN(hi-lo+1)
}
