package morph

import (
	"context"
	"testing"
)

func BenchmarkInterpolate(b *testing.B) {
	m, err := NewMorpher(morphSet(), testImage(256, 256))
	if err != nil {
		b.Fatalf("Failed preparing the morph: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := m.Interpolate(0.5); err != nil {
			b.Fatalf("Failed rendering benchmark frame: %v", err)
		}
	}
}

func BenchmarkGenerate(b *testing.B) {
	m, err := NewMorpher(morphSet(), testImage(128, 128))
	if err != nil {
		b.Fatalf("Failed preparing the morph: %v", err)
	}
	gen := &Generator{FrameCount: 10, Workers: 4}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := gen.Generate(context.Background(), m, nil); err != nil {
			b.Fatalf("Failed generating benchmark sequence: %v", err)
		}
	}
}
