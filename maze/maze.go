// Package maze implements the randomized grid generator of
// github.com/katalvlaran/gridsearch.
package maze

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/gridsearch/grid"
)

// ErrDimension indicates a requested maze too small for the carving
// lattice: two-step jumps need at least 3 cells per axis.
var ErrDimension = errors.New("maze: dimensions must be at least 3x3")

// minMazeDim is the smallest axis length the two-step lattice supports.
const minMazeDim = 3

// Options holds tunable parameters for maze generation.
type Options struct {
	// rng drives carve order and the Start/Goal draw.
	rng *rand.Rand
}

// Option configures Generate via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with a time-seeded RNG; use WithSeed in
// tests and examples to lock outcomes.
func DefaultOptions() Options {
	return Options{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// WithRand provides an explicit RNG.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		// Fail fast to avoid silent non-determinism later.
		panic("maze: WithRand(nil)")
	}

	return func(o *Options) { o.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) Option {
	return func(o *Options) { o.rng = rand.New(rand.NewSource(seed)) }
}

// carver holds the mutable state of one generation run.
type carver struct {
	g      *grid.Grid
	rng    *rand.Rand
	carved []grid.State // every cell turned into Space, in carve order
}

// jumpOffsets lists the four two-step carve directions; each run
// shuffles a copy per cell for uniform passage distribution.
var jumpOffsets = [4][2]int{{-2, 0}, {2, 0}, {0, -2}, {0, 2}}

// Generate builds a height×width maze. The carving adjacency guarantees
// every carved cell — Start and Goal included — is connected.
// Returns ErrDimension if either dimension is below 3.
func Generate(height, width int, opts ...Option) (*grid.Grid, error) {
	if height < minMazeDim || width < minMazeDim {
		return nil, fmt.Errorf("%w: got %dx%d", ErrDimension, height, width)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	g, err := grid.New(height, width)
	if err != nil {
		return nil, err
	}
	// All-Wall canvas; carving turns cells back into Space.
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			g.SetType(grid.State{Row: r, Col: c}, grid.Wall)
		}
	}

	cv := &carver{g: g, rng: o.rng}
	// Root the carve on the even-coordinate lattice so two-step jumps
	// can reach the whole board.
	root := grid.State{
		Row: 2 * cv.rng.Intn((height+1)/2),
		Col: 2 * cv.rng.Intn((width+1)/2),
	}
	cv.carve(root)

	cv.placeEndpoints()

	return g, nil
}

// carve opens s, then recursively tunnels to unvisited cells two steps
// away in shuffled direction order, opening the wall between.
func (cv *carver) carve(s grid.State) {
	cv.open(s)

	dirs := jumpOffsets
	cv.rng.Shuffle(len(dirs), func(i, j int) { dirs[i], dirs[j] = dirs[j], dirs[i] })
	for _, d := range dirs {
		t := grid.State{Row: s.Row + d[0], Col: s.Col + d[1]}
		if !cv.g.InBounds(t) || cv.g.TypeAt(t) != grid.Wall {
			continue
		}
		// Open the wall between s and t, then recurse from t.
		cv.open(grid.State{Row: s.Row + d[0]/2, Col: s.Col + d[1]/2})
		cv.carve(t)
	}
}

// open turns a Wall cell into Space and records it as carved.
func (cv *carver) open(s grid.State) {
	cv.g.SetType(s, grid.Space)
	cv.carved = append(cv.carved, s)
}

// placeEndpoints designates two distinct random carved cells as Start
// and Goal. The ≥3 dimension check guarantees at least two candidates.
func (cv *carver) placeEndpoints() {
	si := cv.rng.Intn(len(cv.carved))
	gi := cv.rng.Intn(len(cv.carved) - 1)
	if gi >= si {
		gi++
	}
	cv.g.SetType(cv.carved[si], grid.Start)
	cv.g.SetType(cv.carved[gi], grid.Goal)
}
