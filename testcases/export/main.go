// Command export writes test case definitions to JSON for the Python reference generator.
// Run from the go-shapes module root directory.
package main

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/shapes"
	"seehuhn.de/go/shapes/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name   string      `json:"name"`
	Width  int         `json:"width"`
	Height int         `json:"height"`
	Shapes []jsonShape `json:"shapes"`
}

type jsonShape struct {
	Type   string   `json:"type"`
	Pts    [][2]int `json:"pts"`
	Radius int      `json:"radius,omitempty"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Width:  tc.Width,
		Height: tc.Height,
	}
	for _, s := range tc.Shapes {
		jtc.Shapes = append(jtc.Shapes, shapeToJSON(s))
	}
	return jtc
}

func shapeToJSON(s shapes.Drawable) jsonShape {
	switch s := s.(type) {
	case shapes.Point:
		return jsonShape{Type: "point", Pts: pts(s)}
	case shapes.LineSegment:
		return jsonShape{Type: "line", Pts: pts(s.P1, s.P2)}
	case shapes.Circle:
		return jsonShape{Type: "circle", Pts: pts(s.Center), Radius: s.Radius}
	case shapes.Rectangle:
		return jsonShape{Type: "rectangle", Pts: pts(s.P1, s.P2)}
	case shapes.Triangle:
		return jsonShape{Type: "triangle", Pts: pts(s.P1, s.P2, s.P3)}
	default:
		panic(fmt.Sprintf("unsupported shape %T", s))
	}
}

func pts(ps ...shapes.Point) [][2]int {
	res := make([][2]int, len(ps))
	for i, p := range ps {
		res[i] = [2]int{p.X, p.Y}
	}
	return res
}
