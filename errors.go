package morph

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientPoints is returned when fewer than three
	// correspondences are supplied where a triangulation is required.
	ErrInsufficientPoints = errors.New("morph: at least three points are required")

	// ErrDegenerateGeometry is returned when a point set cannot form any
	// triangle: fewer than three distinct points, or all points collinear.
	ErrDegenerateGeometry = errors.New("morph: points do not span a triangle")
)

// DimensionError reports a mismatch between quantities that must agree,
// such as the lengths of the source and target point layouts or a triangle
// index referencing a point outside the layout. It is fatal for the call
// that produced it: no partial result is returned alongside it.
type DimensionError struct {
	What string
	Want int
	Got  int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("morph: %s: want %d, got %d", e.What, e.Want, e.Got)
}
