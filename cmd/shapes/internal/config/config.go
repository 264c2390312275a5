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

// Package config reads the settings of the shapes command.
package config

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"seehuhn.de/go/shapes/internal/imagefile"
)

// Config holds the settings of the shapes command.
type Config struct {
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Circles int    `json:"circles"`
	Seed    uint64 `json:"seed"`  // 0 means a random seed
	Scene   string `json:"scene"` // name of a test case, empty for the demo scene
	Scale   int    `json:"scale"`
	Output  string `json:"output"`
}

// Default values, used for settings which are neither given on the
// command line nor in the config file.
var Default = Config{
	Width:   1000,
	Height:  1000,
	Circles: 50,
	Scale:   1,
	Output:  "image.png",
}

// ErrInvalid is returned for settings which are out of range.
var ErrInvalid = errors.New("invalid configuration")

// Parse reads the command line arguments (without the program name).
// Settings are taken from Default, then from the JSON file given by -f,
// then from the flags given explicitly.  A missing config file is not an
// error.  Values in the file replace the defaults even when they are zero.
func Parse(args []string) (Config, error) {
	fl := flag.NewFlagSet("shapes", flag.ContinueOnError)
	confFile := fl.String("f", "shapes.json", "config filename")
	width := fl.Int("width", Default.Width, "canvas width in pixels")
	height := fl.Int("height", Default.Height, "canvas height in pixels")
	circles := fl.Int("circles", Default.Circles, "number of random circles")
	seed := fl.Uint64("seed", Default.Seed, "random seed (0 for a random seed)")
	scene := fl.String("scene", Default.Scene, "draw the named test case instead of the demo scene")
	scale := fl.Int("scale", Default.Scale, "enlarge the output by this factor")
	output := fl.String("o", Default.Output, "output file (.png, .bmp, .tif or .pdf)")
	if err := fl.Parse(args); err != nil {
		return Config{}, err
	}

	conf, err := readConfig(*confFile)
	if err != nil {
		return Config{}, err
	}

	fl.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			conf.Width = *width
		case "height":
			conf.Height = *height
		case "circles":
			conf.Circles = *circles
		case "seed":
			conf.Seed = *seed
		case "scene":
			conf.Scene = *scene
		case "scale":
			conf.Scale = *scale
		case "o":
			conf.Output = *output
		}
	})

	if err := conf.Check(); err != nil {
		return Config{}, err
	}
	return conf, nil
}

// Check verifies that all settings are in range.
func (c Config) Check() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: canvas size %dx%d", ErrInvalid, c.Width, c.Height)
	}
	if c.Circles < 0 {
		return fmt.Errorf("%w: %d circles", ErrInvalid, c.Circles)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("%w: scale %d", ErrInvalid, c.Scale)
	}
	if _, err := imagefile.FormatFromName(c.Output); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

func readConfig(fn string) (Config, error) {
	conf := Default

	file, err := os.Open(fn)
	if errors.Is(err, fs.ErrNotExist) {
		return conf, nil
	} else if err != nil {
		return conf, err
	}
	defer file.Close()

	dec := json.NewDecoder(file)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&conf); err != nil {
		return Config{}, fmt.Errorf("%s: %w", fn, err)
	}
	return conf, nil
}
