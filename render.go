// Package shapes draws simple geometric shapes onto a raster image.
//
// Points, line segments, circles, rectangles and triangles are value types
// implementing [Drawable]. Every call to Draw picks a new random colour with
// all channels in [20, 255], so shapes stay visible on a black background.
// Lines use Bresenham's algorithm and circles the midpoint circle algorithm;
// both only use integer arithmetic.
//
// Randomness is supplied by the caller through a [Source], which makes the
// output reproducible for a seeded generator.
package shapes

//go:generate go run ./testcases/export
//go:generate python3 tools/generate_references.py
