package bin

import (
	"errors"
	"fmt"

	"github.com/gogpu/ternary"
	"github.com/gogpu/ternary/internal/parallel"
)

// Sentinel errors for the bin package.
var (
	// ErrGridSize is returned for grid sizes below 1.
	ErrGridSize = errors.New("bin: grid size must be at least 1")

	// ErrWeightCount is returned when the weights do not match the data.
	ErrWeightCount = errors.New("bin: one weight per data point required")
)

// Option configures Tribin and Hexbin.
type Option func(*config)

type config struct {
	scale   float64
	weights []float64
	workers int
}

// WithScale sets the ternary sum of the returned cell vertices. The data is
// normalized by its own sums, so the scale only affects the output.
func WithScale(s float64) Option {
	return func(c *config) {
		c.scale = s
	}
}

// WithWeights counts each data point with the given weight instead of 1.
func WithWeights(w []float64) Option {
	return func(c *config) {
		c.weights = w
	}
}

// WithWorkers counts large inputs on n goroutines. Values below 2 count on
// the calling goroutine.
func WithWorkers(n int) Option {
	return func(c *config) {
		c.workers = n
	}
}

// parallelThreshold is the input size below which counting always stays on
// the calling goroutine.
const parallelThreshold = 4096

// Cell is one counted bin.
type Cell struct {
	// Index is the serial index of the cell.
	Index int
	// Count is the number (or total weight) of points in the cell.
	Count float64
	// Vertices outline the cell, in data units of the configured scale.
	Vertices []ternary.Triple
}

// Tribin counts data into the g² triangles of a grid of size g. Every cell
// is returned, in serial index order, including empty ones.
func Tribin(data []ternary.Triple, g int, opts ...Option) ([]Cell, error) {
	return count(data, g, TribinCount(g), opts,
		TribinIndex,
		func(idx int) []ternary.Triple {
			c, _ := TribinCell(idx, g)
			v := c.Vertices(g)
			return v[:]
		})
}

// Hexbin counts data into the hexagons around the grid points of a grid of
// size g. Every cell is returned, in serial index order, including empty
// ones. Hexagons are clipped to the triangle.
func Hexbin(data []ternary.Triple, g int, opts ...Option) ([]Cell, error) {
	return count(data, g, HexbinCount(g), opts,
		HexbinIndex,
		func(idx int) []ternary.Triple {
			c, _ := HexbinCell(idx, g)
			return c.Vertices(g)
		})
}

func count(data []ternary.Triple, g, n int, opts []Option,
	index func(ternary.Triple, int) int, vertices func(int) []ternary.Triple,
) ([]Cell, error) {
	cfg := config{scale: 1}
	for _, opt := range opts {
		opt(&cfg)
	}
	if g < 1 {
		return nil, fmt.Errorf("%w, got %d", ErrGridSize, g)
	}
	if cfg.scale == 0 {
		return nil, ternary.ErrZeroScale
	}
	if cfg.weights != nil && len(cfg.weights) != len(data) {
		return nil, fmt.Errorf("%w: %d weights for %d points", ErrWeightCount, len(cfg.weights), len(data))
	}

	cells := make([]Cell, n)
	for i := range cells {
		vs := vertices(i)
		for k := range vs {
			vs[k] = vs[k].Mul(cfg.scale)
		}
		cells[i] = Cell{Index: i, Vertices: vs}
	}

	var parts []tally
	if cfg.workers > 1 && len(data) >= parallelThreshold {
		parts = countParallel(data, cfg.weights, g, n, cfg.workers, index)
	} else {
		parts = []tally{countRange(data, cfg.weights, 0, len(data), g, n, index)}
	}

	skipped := 0
	for _, p := range parts {
		// Chunks are in input order, so this is the first bad point.
		if p.err != nil {
			return nil, fmt.Errorf("bin: point %d: %w", p.errAt, p.err)
		}
		skipped += p.skipped
		for i, c := range p.counts {
			cells[i].Count += c
		}
	}
	if skipped > 0 {
		ternary.Logger().Debug("bin: points outside the triangle skipped", "count", skipped)
	}
	return cells, nil
}

// tally is the result of counting one contiguous chunk of the input.
type tally struct {
	counts  []float64
	skipped int
	errAt   int
	err     error
}

func countRange(data []ternary.Triple, weights []float64, lo, hi, g, n int,
	index func(ternary.Triple, int) int,
) tally {
	t := tally{counts: make([]float64, n)}
	for i := lo; i < hi; i++ {
		u, err := data[i].Normalize(1)
		if err != nil {
			t.err, t.errAt = err, i
			return t
		}
		idx := index(u, g)
		if idx < 0 {
			t.skipped++
			continue
		}
		w := 1.0
		if weights != nil {
			w = weights[i]
		}
		t.counts[idx] += w
	}
	return t
}

// countParallel splits data into one chunk per worker and counts the chunks
// on a worker pool.
func countParallel(data []ternary.Triple, weights []float64, g, n, workers int,
	index func(ternary.Triple, int) int,
) []tally {
	pool := parallel.NewWorkerPool(workers)
	defer pool.Close()

	chunk := (len(data) + workers - 1) / workers
	parts := make([]tally, workers)
	work := make([]func(), 0, workers)
	for w := range workers {
		lo, hi := w*chunk, min((w+1)*chunk, len(data))
		if lo >= hi {
			continue
		}
		work = append(work, func() {
			parts[w] = countRange(data, weights, lo, hi, g, n, index)
		})
	}
	pool.ExecuteAll(work)
	ternary.Logger().Debug("bin: counted in parallel", "points", len(data), "workers", len(work))
	return parts
}
