package testcases

import "strings"

// All contains all test cases, grouped by category.
// The category name is used as a prefix in reference image filenames.
var All = map[string][]TestCase{
	"line":    lineCases,
	"circle":  circleCases,
	"polygon": polygonCases,
	"scene":   sceneCases,
}

// Lookup returns the test case with the given full name, consisting of the
// category, an underscore, and the name within the category.
func Lookup(fullName string) (TestCase, bool) {
	category, name, ok := strings.Cut(fullName, "_")
	if !ok {
		return TestCase{}, false
	}
	for _, tc := range All[category] {
		if tc.Name == name {
			return tc, true
		}
	}
	return TestCase{}, false
}
