package morph

import (
	"image"
)

// Morpher computes warped frames between a source image and the target
// point layout described by a correspondence set. The Delaunay
// triangulation is computed once, over the source positions, and reused
// for every blend factor: the triangle topology must stay identical
// across a morph or the triangles of neighboring frames would not line
// up.
//
// A Morpher is read-only after construction and safe for concurrent use.
type Morpher struct {
	set       Set
	source    *image.NRGBA
	tri       *Triangulation
	srcLayout []Point
}

// NewMorpher validates the correspondence set, converts the source image
// and triangulates the source point layout. The set must contain at least
// three correspondences (ErrInsufficientPoints) spanning a non-degenerate
// triangle (ErrDegenerateGeometry).
//
// The set is retained, not copied: later in-place edits by its owner are
// deliberately visible, but a new Morpher must be built to re-triangulate.
func NewMorpher(set Set, src image.Image) (*Morpher, error) {
	if err := set.Validate(); err != nil {
		return nil, err
	}

	img := ImgToNRGBA(src)
	width, height := img.Bounds().Dx(), img.Bounds().Dy()

	srcLayout := set.SourceLayout(width, height)
	tri, err := Triangulate(srcLayout)
	if err != nil {
		return nil, err
	}

	return &Morpher{
		set:       set,
		source:    img,
		tri:       tri,
		srcLayout: srcLayout,
	}, nil
}

// Triangulation returns the cached source triangulation.
func (m *Morpher) Triangulation() *Triangulation {
	return m.tri
}

// Source returns the source raster the morpher operates on.
func (m *Morpher) Source() *image.NRGBA {
	return m.source
}

// Interpolate renders the morph frame at blend factor t. t=0 reproduces
// the source raster up to rasterization noise, t=1 is the fully warped
// target-layout frame. Values outside [0,1] are clamped. The returned
// image is a fresh buffer on every call.
func (m *Morpher) Interpolate(t float64) (*image.NRGBA, error) {
	t = Max(0, Min(1, t))

	width, height := m.source.Bounds().Dx(), m.source.Bounds().Dy()
	dstLayout := m.set.BlendedLayout(width, height, t)

	out, skipped, err := Composite(m.source, m.tri, m.srcLayout, dstLayout)
	if err != nil {
		return nil, err
	}
	if len(skipped) > 0 {
		logger().Debug("frame composed with skipped triangles", "t", t, "skipped", len(skipped))
	}
	return out, nil
}

// Interpolate is the one-shot form of Morpher.Interpolate for callers that
// need a single frame. Sequence producers should construct a Morpher once
// so the triangulation is not recomputed per frame.
func Interpolate(set Set, src image.Image, t float64) (*image.NRGBA, error) {
	m, err := NewMorpher(set, src)
	if err != nil {
		return nil, err
	}
	return m.Interpolate(t)
}
