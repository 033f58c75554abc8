package morph

// Point is a 2D coordinate. Depending on context it holds either
// normalized coordinates (both axes in [0,1], resolution independent)
// or pixel coordinates (axes in [0,width) and [0,height)).
// The two spaces must never be mixed within one point list.
type Point struct {
	X, Y float64
}

// Add returns the sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// ToPixel converts a normalized point into pixel space for an image
// of the given dimensions.
func (p Point) ToPixel(width, height int) Point {
	return Point{X: p.X * float64(width), Y: p.Y * float64(height)}
}

// Lerp linearly interpolates between p and q: t=0 yields p, t=1 yields q.
func Lerp(p, q Point, t float64) Point {
	return Point{
		X: (1-t)*p.X + t*q.X,
		Y: (1-t)*p.Y + t*q.Y,
	}
}
