package forest

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// Config controls forest training.
type Config struct {
	// Trees is the number of trees in the ensemble.
	Trees int
	// Seed makes training reproducible.
	Seed int64
	// MaxFeatures is the number of non-constant features examined per split.
	// Zero selects the task default: sqrt(features) for classification, all
	// features for regression.
	MaxFeatures int
	// MinSamplesSplit is the smallest node that may be split. Zero means 2.
	MinSamplesSplit int
	// MaxDepth limits tree depth. Zero grows trees fully.
	MaxDepth int
}

// DefaultConfig returns 100 trees seeded with 42.
func DefaultConfig() Config {
	return Config{Trees: 100, Seed: 42}
}

var errNotFitted = errors.New("forest is not fitted")

func (c Config) validate() error {
	if c.Trees <= 0 {
		return fmt.Errorf("trees must be positive, got %d", c.Trees)
	}
	if c.MaxFeatures < 0 || c.MinSamplesSplit < 0 || c.MaxDepth < 0 {
		return errors.New("max features, min samples split and max depth must not be negative")
	}
	return nil
}

// rowsOf copies X into row slices and rejects non-finite values.
func rowsOf(X mat.Matrix) ([][]float64, error) {
	r, c := X.Dims()
	if r == 0 || c == 0 {
		return nil, errors.New("empty feature matrix")
	}
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = mat.Row(nil, i, X)
		for j, v := range rows[i] {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("feature %d of row %d is not finite", j, i)
			}
		}
	}
	return rows, nil
}

// growForest trains cfg.Trees trees over rows using crit.
func growForest(cfg Config, rows [][]float64, crit criterion, maxFeatures int) []*tree {
	master := rand.New(rand.NewSource(cfg.Seed))
	seeds := make([]int64, cfg.Trees)
	for i := range seeds {
		seeds[i] = master.Int63()
	}

	minSplit := cfg.MinSamplesSplit
	if minSplit < 2 {
		minSplit = 2
	}

	trees := make([]*tree, cfg.Trees)
	b := &builder{
		x:           rows,
		crit:        crit,
		maxFeatures: maxFeatures,
		minSplit:    minSplit,
		maxDepth:    cfg.MaxDepth,
	}
	for i := range trees {
		b.rng = rand.New(rand.NewSource(seeds[i]))
		trees[i] = b.build(bootstrap(b.rng, len(rows)))
	}
	return trees
}

func checkWidth(x []float64, features int) error {
	if len(x) != features {
		return fmt.Errorf("expected %d features, got %d", features, len(x))
	}
	return nil
}
