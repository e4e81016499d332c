package distance_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/dahu/distance"
	"github.com/katalvlaran/dahu/gridgraph"
	"github.com/katalvlaran/dahu/immersion"
)

// benchInput builds a deterministic 256×256 8-bit image and its immersion.
func benchInput(b *testing.B) (*gridgraph.Grid[uint8], *gridgraph.Grid[uint8], []gridgraph.Point) {
	b.Helper()
	rng := rand.New(rand.NewSource(42))
	const n = 256
	img, err := gridgraph.New[uint8](n, n)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	for i := range img.Data {
		img.Data[i] = uint8(rng.Intn(256))
	}
	m, M, err := immersion.Immerse(img)
	if err != nil {
		b.Fatalf("setup Immerse failed: %v", err)
	}
	seeds := immersion.PixelSeeds(gridgraph.Point{Row: n / 2, Col: n / 2})
	return m, M, seeds
}

// BenchmarkDahu measures the minimum-barrier transform on a random image.
// Complexity: O(N + L)
func BenchmarkDahu(b *testing.B) {
	m, M, seeds := benchInput(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := distance.Dahu(m, M, seeds); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkLevelLines measures the additive transform on a random image.
// Complexity: O(N + L), L grows with the accumulated distance.
func BenchmarkLevelLines(b *testing.B) {
	m, M, seeds := benchInput(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := distance.LevelLines(m, M, seeds); err != nil {
			b.Fatal(err)
		}
	}
}
