package maze_test

import (
	"testing"

	"github.com/katalvlaran/gridsearch/maze"
)

// BenchmarkGenerate measures carving a 101×101 maze from a fixed seed.
// Complexity: O(W×H)
func BenchmarkGenerate(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := maze.Generate(101, 101, maze.WithSeed(int64(i))); err != nil {
			b.Fatalf("Generate failed: %v", err)
		}
	}
}
