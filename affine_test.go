package morph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAffineFromTriangles(t *testing.T) {
	tests := []struct {
		name string
		src  [3]Point
		dst  [3]Point
	}{
		{
			"identity",
			[3]Point{{0, 0}, {10, 0}, {0, 10}},
			[3]Point{{0, 0}, {10, 0}, {0, 10}},
		},
		{
			"translation",
			[3]Point{{0, 0}, {10, 0}, {0, 10}},
			[3]Point{{5, 7}, {15, 7}, {5, 17}},
		},
		{
			"scale",
			[3]Point{{0, 0}, {10, 0}, {0, 10}},
			[3]Point{{0, 0}, {20, 0}, {0, 30}},
		},
		{
			"rotation 90",
			[3]Point{{0, 0}, {10, 0}, {0, 10}},
			[3]Point{{0, 0}, {0, 10}, {-10, 0}},
		},
		{
			"shear",
			[3]Point{{0, 0}, {10, 0}, {0, 10}},
			[3]Point{{0, 0}, {10, 2}, {3, 10}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := affineFromTriangles(tt.src, tt.dst)
			assert.True(t, ok)

			// The affine map is exact on its three defining points.
			for i := 0; i < 3; i++ {
				got := applyAff3(m, tt.src[i])
				assert.InDelta(t, tt.dst[i].X, got.X, 1e-9)
				assert.InDelta(t, tt.dst[i].Y, got.Y, 1e-9)
			}
		})
	}
}

func TestAffineFromTrianglesSingular(t *testing.T) {
	// Collinear source points leave the system singular.
	src := [3]Point{{0, 0}, {5, 5}, {10, 10}}
	dst := [3]Point{{0, 0}, {10, 0}, {0, 10}}

	_, ok := affineFromTriangles(src, dst)
	assert.False(t, ok)

	// Coincident points as well.
	src = [3]Point{{3, 3}, {3, 3}, {10, 10}}
	_, ok = affineFromTriangles(src, dst)
	assert.False(t, ok)
}

func TestAffineInterpolatesInterior(t *testing.T) {
	src := [3]Point{{0, 0}, {10, 0}, {0, 10}}
	dst := [3]Point{{0, 0}, {20, 0}, {0, 20}}

	m, ok := affineFromTriangles(src, dst)
	assert.True(t, ok)

	// The centroid maps onto the destination centroid.
	got := applyAff3(m, Point{10.0 / 3, 10.0 / 3})
	assert.InDelta(t, 20.0/3, got.X, 1e-9)
	assert.InDelta(t, 20.0/3, got.Y, 1e-9)
}
