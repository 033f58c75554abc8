package morph

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleSet() Set {
	return Set{
		{Source: Point{0.1, 0.2}, Target: Point{0.15, 0.25}},
		{Source: Point{0.9, 0.2}, Target: Point{0.85, 0.2}},
		{Source: Point{0.5, 0.8}, Target: Point{0.5, 0.9}},
	}
}

func TestSetValidate(t *testing.T) {
	assert.NoError(t, sampleSet().Validate())
	assert.ErrorIs(t, Set{}.Validate(), ErrInsufficientPoints)
	assert.ErrorIs(t, sampleSet()[:2].Validate(), ErrInsufficientPoints)
}

func TestSetLayouts(t *testing.T) {
	set := sampleSet()

	src := set.SourceLayout(200, 100)
	assert.Equal(t, Point{20, 20}, src[0])
	assert.Equal(t, Point{180, 20}, src[1])
	assert.Equal(t, Point{100, 80}, src[2])

	dst := set.TargetLayout(200, 100)
	assert.Equal(t, Point{30, 25}, dst[0])
}

func TestSetBlendedLayout(t *testing.T) {
	set := sampleSet()

	// t=0 is the source layout, t=1 the target layout.
	assert.Equal(t, set.SourceLayout(200, 100), set.BlendedLayout(200, 100, 0))
	assert.Equal(t, set.TargetLayout(200, 100), set.BlendedLayout(200, 100, 1))

	mid := set.BlendedLayout(200, 100, 0.5)
	assert.InDelta(t, 25, mid[0].X, 1e-9)
	assert.InDelta(t, 22.5, mid[0].Y, 1e-9)
}

func TestTemplateRoundTrip(t *testing.T) {
	set := Set{
		{Source: Point{0.1, 0.2}, Target: Point{0.30000000000000004, 0.25}},
		{Source: Point{0, 0}, Target: Point{1, 1}},
		{Source: Point{0.123456789, 0.987654321}, Target: Point{0.5, 0.5}},
	}

	var buf bytes.Buffer
	assert.NoError(t, set.WriteTemplate(&buf))

	got, err := ReadTemplate(&buf)
	assert.NoError(t, err)
	assert.Equal(t, len(set), len(got))

	for i := range set {
		assert.InDelta(t, set[i].Source.X, got[i].Source.X, 1e-12)
		assert.InDelta(t, set[i].Source.Y, got[i].Source.Y, 1e-12)
		assert.InDelta(t, set[i].Target.X, got[i].Target.X, 1e-12)
		assert.InDelta(t, set[i].Target.Y, got[i].Target.Y, 1e-12)
	}
}

func TestReadTemplate(t *testing.T) {
	in := "0.1,0.2,0.3,0.4\n0.5, 0.6, 0.7, 0.8\n"

	set, err := ReadTemplate(strings.NewReader(in))
	assert.NoError(t, err)
	assert.Len(t, set, 2)
	assert.Equal(t, Correspondence{Source: Point{0.1, 0.2}, Target: Point{0.3, 0.4}}, set[0])
	assert.Equal(t, Correspondence{Source: Point{0.5, 0.6}, Target: Point{0.7, 0.8}}, set[1])
}

func TestReadTemplateMalformed(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"wrong field count", "0.1,0.2,0.3\n"},
		{"non-numeric field", "0.1,0.2,0.3,abc\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadTemplate(strings.NewReader(tt.in))
			assert.Error(t, err)
		})
	}
}

func TestReadTemplateEmpty(t *testing.T) {
	set, err := ReadTemplate(strings.NewReader(""))
	assert.NoError(t, err)
	assert.Empty(t, set)
}
