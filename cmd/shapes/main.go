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

// Command shapes draws random geometric shapes and saves the result as an
// image file.
package main

import (
	"log"
	"math/rand/v2"
	"os"

	"seehuhn.de/go/shapes"
	"seehuhn.de/go/shapes/cmd/shapes/internal/config"
	"seehuhn.de/go/shapes/internal/imagefile"
)

func main() {
	conf, err := config.Parse(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	seed := conf.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	src := rand.New(rand.NewPCG(seed, seed))

	width, height := conf.Width, conf.Height
	var scene []shapes.Drawable
	if conf.Scene != "" {
		width, height, scene, err = testScene(conf.Scene)
	} else {
		scene, err = demoScene(src, width, height, conf.Circles)
	}
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("drawing %d shapes on %dx%d canvas, seed %d", len(scene), width, height, seed)

	img := shapes.NewImage(width, height)
	for _, s := range scene {
		if overflows(s.BBox(), width, height) {
			log.Printf("%#v extends beyond the canvas", s)
		}
		s.Draw(img, src)
	}

	if err := imagefile.Save(conf.Output, imagefile.Scale(img, conf.Scale)); err != nil {
		log.Fatal(err)
	}
	log.Println("wrote " + conf.Output)
}
