package morph

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// Correspondence pairs a landmark position on the source image with the
// position it should move to. Both points are stored in normalized [0,1]
// space so a set stays valid across image resolutions. Producers are
// expected to clamp coordinates into range; the engine does not.
type Correspondence struct {
	Source Point
	Target Point
}

// Set is an insertion-ordered sequence of correspondences. Indices are
// stable: they are the join key between the source and target layouts
// handed to the triangulator, so a single Set must be shared (not copied)
// between whatever edits it and whatever renders it.
type Set []Correspondence

// Validate reports whether the set is usable for morphing.
func (s Set) Validate() error {
	if len(s) < 3 {
		return ErrInsufficientPoints
	}
	return nil
}

// SourceLayout returns the source positions in pixel space for an image
// of the given dimensions.
func (s Set) SourceLayout(width, height int) []Point {
	pts := make([]Point, len(s))
	for i, c := range s {
		pts[i] = c.Source.ToPixel(width, height)
	}
	return pts
}

// TargetLayout returns the target positions in pixel space for an image
// of the given dimensions.
func (s Set) TargetLayout(width, height int) []Point {
	pts := make([]Point, len(s))
	for i, c := range s {
		pts[i] = c.Target.ToPixel(width, height)
	}
	return pts
}

// BlendedLayout returns the per-correspondence interpolation
// (1-t)*source + t*target in pixel space. t=0 reproduces the source
// layout, t=1 the target layout.
func (s Set) BlendedLayout(width, height int, t float64) []Point {
	pts := make([]Point, len(s))
	for i, c := range s {
		pts[i] = Lerp(c.Source.ToPixel(width, height), c.Target.ToPixel(width, height), t)
	}
	return pts
}

// WriteTemplate persists the set as CSV, one record per correspondence:
// source_x,source_y,target_x,target_y, all in normalized space, no
// header. Reading the output back yields an equal set in the same order.
func (s Set) WriteTemplate(w io.Writer) error {
	cw := csv.NewWriter(w)
	for _, c := range s {
		rec := []string{
			formatCoord(c.Source.X),
			formatCoord(c.Source.Y),
			formatCoord(c.Target.X),
			formatCoord(c.Target.Y),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("morph: writing template record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadTemplate parses a CSV template written by WriteTemplate.
func ReadTemplate(r io.Reader) (Set, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 4
	cr.TrimLeadingSpace = true

	var set Set
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("morph: reading template: %w", err)
		}

		var vals [4]float64
		for i, field := range rec {
			vals[i], err = strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("morph: template field %q: %w", field, err)
			}
		}
		set = append(set, Correspondence{
			Source: Point{X: vals[0], Y: vals[1]},
			Target: Point{X: vals[2], Y: vals[3]},
		})
	}
	return set, nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
