package board

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sort"
)

var (
	// ErrBoardFull is returned when a tile is spawned onto a grid with no empty
	// cell. Callers check for a terminal board first, so this is an ordering bug.
	ErrBoardFull = errors.New("board: spawn on full board")

	// ErrBadDistribution is returned for spawn weights that cannot be sampled.
	ErrBadDistribution = errors.New("board: invalid spawn distribution")
)

const weightTolerance = 1e-9

type threshold struct {
	value int
	cum   float64
}

// SpawnDistribution samples spawn values. Thresholds are kept as an ordered
// list of (value, cumulative probability) pairs sorted by value, so sampling
// never depends on map iteration order.
type SpawnDistribution struct {
	steps []threshold
}

// NewSpawnDistribution validates weights and builds the cumulative table.
// Values must be powers of two no smaller than 2 and weights must sum to 1.
func NewSpawnDistribution(weights map[int]float64) (SpawnDistribution, error) {
	if len(weights) == 0 {
		return SpawnDistribution{}, fmt.Errorf("%w: no values", ErrBadDistribution)
	}

	values := make([]int, 0, len(weights))
	for v, p := range weights {
		if v < 2 || v&(v-1) != 0 {
			return SpawnDistribution{}, fmt.Errorf("%w: %d is not a tile value", ErrBadDistribution, v)
		}
		if p < 0 || math.IsNaN(p) || math.IsInf(p, 0) {
			return SpawnDistribution{}, fmt.Errorf("%w: weight %v for %d", ErrBadDistribution, p, v)
		}
		values = append(values, v)
	}
	sort.Ints(values)

	dist := SpawnDistribution{steps: make([]threshold, 0, len(values))}
	acc := 0.0
	for _, v := range values {
		acc += weights[v]
		dist.steps = append(dist.steps, threshold{value: v, cum: acc})
	}
	if math.Abs(acc-1.0) > weightTolerance {
		return SpawnDistribution{}, fmt.Errorf("%w: weights sum to %v", ErrBadDistribution, acc)
	}
	return dist, nil
}

// DefaultSpawnDistribution returns {2: 0.8, 4: 0.15, 8: 0.05}.
func DefaultSpawnDistribution() SpawnDistribution {
	return SpawnDistribution{steps: []threshold{
		{value: 2, cum: 0.8},
		{value: 4, cum: 0.95},
		{value: 8, cum: 1.0},
	}}
}

// Sample maps a roll in [0, 1) to a value: the first value whose cumulative
// probability meets or exceeds the roll. Rounding that leaves no match falls
// back to the lowest value.
func (d SpawnDistribution) Sample(roll float64) int {
	if len(d.steps) == 0 {
		return 2
	}
	for _, s := range d.steps {
		if s.cum >= roll {
			return s.value
		}
	}
	return d.steps[0].value
}

// Weights returns the per-value probabilities.
func (d SpawnDistribution) Weights() map[int]float64 {
	out := make(map[int]float64, len(d.steps))
	prev := 0.0
	for _, s := range d.steps {
		out[s.value] = s.cum - prev
		prev = s.cum
	}
	return out
}

// Spawner places new tiles on a grid.
type Spawner struct {
	dist SpawnDistribution
	rng  *rand.Rand
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(dist SpawnDistribution, rng *rand.Rand) *Spawner {
	return &Spawner{dist: dist, rng: rng}
}

// Spawn writes a sampled value into a uniformly chosen empty cell of g.
func (s *Spawner) Spawn(g *Grid) (Tile, error) {
	empty := EmptyCells(*g)
	if len(empty) == 0 {
		return Tile{}, ErrBoardFull
	}

	pos := empty[s.rng.Intn(len(empty))]
	value := s.dist.Sample(s.rng.Float64())
	g[pos.Row][pos.Col] = value
	return Tile{Pos: pos, Value: value}, nil
}
