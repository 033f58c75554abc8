/*
Package morph warps an image between two landmark point layouts using a
piecewise-affine transform over a Delaunay triangulation, producing either
a single blended frame or an animated morph sequence.

The package provides a command line utility for rendering morphs from a
CSV landmark template. Check the supported commands by typing:

	$ morph --help

A morph is driven by a correspondence set: ordered (source, target) point
pairs in normalized [0,1] coordinates. The source positions are
triangulated once, then each triangle of the source image is mapped
affinely onto its blended destination and composited through a binary
triangle mask.

Example rendering the halfway frame between two layouts:

	package main

	import (
		"log"

		"github.com/gomorph/morph"
	)

	func main() {
		set := morph.Set{
			{Source: morph.Point{X: 0.2, Y: 0.2}, Target: morph.Point{X: 0.3, Y: 0.25}},
			{Source: morph.Point{X: 0.8, Y: 0.2}, Target: morph.Point{X: 0.7, Y: 0.2}},
			{Source: morph.Point{X: 0.5, Y: 0.8}, Target: morph.Point{X: 0.5, Y: 0.9}},
		}

		m, err := morph.NewMorpher(set, srcImg)
		if err != nil {
			log.Fatal(err)
		}
		frame, err := m.Interpolate(0.5)
		if err != nil {
			log.Fatal(err)
		}
		// encode frame...
	}

Example generating a looping animation:

	gen := &morph.Generator{FrameCount: 10, Loop: true}
	frames, err := gen.Generate(ctx, m, func() {
		// per-frame progress callback
	})
	if err != nil {
		log.Fatal(err)
	}
	err = morph.EncodeGIF(out, morph.Images(frames), 50*time.Millisecond, 0)
*/
package morph
