package morph

import (
	"math"
	"sort"
)

// geomEps is the tolerance below which coordinates and areas are
// considered degenerate.
const geomEps = 1e-9

// Triangulation is a Delaunay triangulation of a point set. Triangles
// holds index triples into Points; the triples are canonically ordered
// (each sorted ascending, the list sorted lexicographically) so that a
// fixed input always produces the identical triangle list.
type Triangulation struct {
	Points    []Point
	Triangles [][3]int
}

type circumcircle struct {
	x, y, r2 float64
}

// workTriangle is a triangle of the in-progress mesh. Vertex indices may
// reference the synthetic super-triangle vertices appended past the input.
type workTriangle struct {
	a, b, c int
	circle  circumcircle
}

// newWorkTriangle computes the circumcircle of the triangle (a, b, c).
// For a degenerate (collinear) triple the circumcircle is unbounded, which
// makes every candidate point fall inside it and the triangle get replaced
// on the next insertion.
func newWorkTriangle(pts []Point, a, b, c int) workTriangle {
	p0, p1, p2 := pts[a], pts[b], pts[c]

	d := 2 * (p0.X*(p1.Y-p2.Y) + p1.X*(p2.Y-p0.Y) + p2.X*(p0.Y-p1.Y))
	if math.Abs(d) < geomEps {
		return workTriangle{a: a, b: b, c: c, circle: circumcircle{r2: math.Inf(1)}}
	}

	s0 := p0.X*p0.X + p0.Y*p0.Y
	s1 := p1.X*p1.X + p1.Y*p1.Y
	s2 := p2.X*p2.X + p2.Y*p2.Y

	ux := (s0*(p1.Y-p2.Y) + s1*(p2.Y-p0.Y) + s2*(p0.Y-p1.Y)) / d
	uy := (s0*(p2.X-p1.X) + s1*(p0.X-p2.X) + s2*(p1.X-p0.X)) / d

	dx, dy := p0.X-ux, p0.Y-uy

	return workTriangle{a: a, b: b, c: c, circle: circumcircle{x: ux, y: uy, r2: dx*dx + dy*dy}}
}

func (t workTriangle) contains(p Point) bool {
	dx := t.circle.x - p.X
	dy := t.circle.y - p.Y
	return dx*dx+dy*dy <= t.circle.r2+geomEps
}

type meshEdge struct {
	a, b int
}

func newMeshEdge(a, b int) meshEdge {
	if a > b {
		a, b = b, a
	}
	return meshEdge{a, b}
}

// Triangulate computes the Delaunay triangulation of the given pixel-space
// points using incremental Bowyer-Watson insertion. The points are
// inserted in input order and the result is canonically ordered, so the
// returned triangle set is deterministic for a fixed input.
//
// Fewer than three points is a precondition violation reported as
// ErrInsufficientPoints. A point set without three distinct, non-collinear
// members cannot form a triangle and is reported as ErrDegenerateGeometry;
// duplicate points beyond the first occurrence are ignored and never
// appear in the returned triples.
func Triangulate(points []Point) (*Triangulation, error) {
	n := len(points)
	if n < 3 {
		return nil, ErrInsufficientPoints
	}

	distinct := dedupPoints(points)
	if len(distinct) < 3 {
		return nil, ErrDegenerateGeometry
	}
	if collinear(points, distinct) {
		return nil, ErrDegenerateGeometry
	}

	// Mesh vertices are the input points plus three synthetic
	// super-triangle vertices spanning the whole point set.
	work := make([]Point, n, n+3)
	copy(work, points)
	work = append(work, superTriangle(points)...)

	mesh := []workTriangle{newWorkTriangle(work, n, n+1, n+2)}

	for _, idx := range distinct {
		p := work[idx]

		// Cavity: every triangle whose circumcircle contains p is
		// removed; its edges are kept for refilling.
		var kept, bad []workTriangle
		edgeCount := make(map[meshEdge]int)
		for _, t := range mesh {
			if t.contains(p) {
				bad = append(bad, t)
				edgeCount[newMeshEdge(t.a, t.b)]++
				edgeCount[newMeshEdge(t.b, t.c)]++
				edgeCount[newMeshEdge(t.c, t.a)]++
			} else {
				kept = append(kept, t)
			}
		}

		// Boundary edges of the cavity occur exactly once; shared
		// interior edges cancel out. Refill by connecting each
		// boundary edge to the new point.
		for _, t := range bad {
			for _, e := range []meshEdge{
				newMeshEdge(t.a, t.b),
				newMeshEdge(t.b, t.c),
				newMeshEdge(t.c, t.a),
			} {
				if edgeCount[e] == 1 {
					kept = append(kept, newWorkTriangle(work, e.a, e.b, idx))
					edgeCount[e] = 0
				}
			}
		}
		mesh = kept
	}

	// Drop every triangle touching the super-triangle, leaving the
	// triangulation of the input's convex hull.
	var triangles [][3]int
	for _, t := range mesh {
		if t.a >= n || t.b >= n || t.c >= n {
			continue
		}
		triangles = append(triangles, canonicalTriple(t.a, t.b, t.c))
	}
	if len(triangles) == 0 {
		return nil, ErrDegenerateGeometry
	}

	sort.Slice(triangles, func(i, j int) bool {
		if triangles[i][0] != triangles[j][0] {
			return triangles[i][0] < triangles[j][0]
		}
		if triangles[i][1] != triangles[j][1] {
			return triangles[i][1] < triangles[j][1]
		}
		return triangles[i][2] < triangles[j][2]
	})

	return &Triangulation{Points: points, Triangles: triangles}, nil
}

// dedupPoints returns the indices of first occurrences, in input order.
func dedupPoints(points []Point) []int {
	var distinct []int
	for i, p := range points {
		dup := false
		for _, j := range distinct {
			q := points[j]
			if math.Abs(p.X-q.X) < geomEps && math.Abs(p.Y-q.Y) < geomEps {
				dup = true
				break
			}
		}
		if !dup {
			distinct = append(distinct, i)
		}
	}
	return distinct
}

// collinear reports whether all distinct points lie on a single line.
func collinear(points []Point, distinct []int) bool {
	p0 := points[distinct[0]]
	p1 := points[distinct[1]]
	ux, uy := p1.X-p0.X, p1.Y-p0.Y

	for _, i := range distinct[2:] {
		p := points[i]
		cross := ux*(p.Y-p0.Y) - uy*(p.X-p0.X)
		if math.Abs(cross) > geomEps {
			return false
		}
	}
	return true
}

// superTriangle returns three vertices of a triangle large enough to
// enclose every input point with a wide margin.
func superTriangle(points []Point) []Point {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	d := math.Max(maxX-minX, maxY-minY)
	if d < 1 {
		d = 1
	}
	cx := (minX + maxX) / 2
	cy := (minY + maxY) / 2

	return []Point{
		{X: cx - 20*d, Y: cy - d},
		{X: cx + 20*d, Y: cy - d},
		{X: cx, Y: cy + 20*d},
	}
}

// canonicalTriple sorts a vertex triple ascending. Triangle orientation
// carries no meaning for mask compositing, so the sorted form is used as
// the canonical one.
func canonicalTriple(a, b, c int) [3]int {
	if a > b {
		a, b = b, a
	}
	if b > c {
		b, c = c, b
	}
	if a > b {
		a, b = b, a
	}
	return [3]int{a, b, c}
}
