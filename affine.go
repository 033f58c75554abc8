package morph

import (
	"math"

	"golang.org/x/image/math/f64"
)

// affineFromTriangles solves the 2x3 affine transform A mapping the three
// source points onto the three destination points exactly:
//
//	| u |   | a11 a12 a13 |   | x |
//	| v | = | a21 a22 a23 | * | y |
//	                          | 1 |
//
// The system is solved in closed form by Cramer's rule over the [x y 1]
// basis. A collinear (zero-area) source triple leaves the system singular;
// ok is false in that case and the matrix must not be used.
func affineFromTriangles(src, dst [3]Point) (m f64.Aff3, ok bool) {
	x0, y0 := src[0].X, src[0].Y
	x1, y1 := src[1].X, src[1].Y
	x2, y2 := src[2].X, src[2].Y

	det := x0*(y1-y2) + x1*(y2-y0) + x2*(y0-y1)
	if math.Abs(det) < geomEps {
		return f64.Aff3{}, false
	}

	u0, v0 := dst[0].X, dst[0].Y
	u1, v1 := dst[1].X, dst[1].Y
	u2, v2 := dst[2].X, dst[2].Y

	m = f64.Aff3{
		(u0*(y1-y2) + u1*(y2-y0) + u2*(y0-y1)) / det,
		(u0*(x2-x1) + u1*(x0-x2) + u2*(x1-x0)) / det,
		(u0*(x1*y2-x2*y1) + u1*(x2*y0-x0*y2) + u2*(x0*y1-x1*y0)) / det,
		(v0*(y1-y2) + v1*(y2-y0) + v2*(y0-y1)) / det,
		(v0*(x2-x1) + v1*(x0-x2) + v2*(x1-x0)) / det,
		(v0*(x1*y2-x2*y1) + v1*(x2*y0-x0*y2) + v2*(x0*y1-x1*y0)) / det,
	}
	return m, true
}

// applyAff3 transforms a point by the affine matrix.
func applyAff3(m f64.Aff3, p Point) Point {
	return Point{
		X: m[0]*p.X + m[1]*p.Y + m[2],
		Y: m[3]*p.X + m[4]*p.Y + m[5],
	}
}
