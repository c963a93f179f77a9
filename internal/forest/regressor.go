package forest

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Regressor is a random forest over a continuous target.
type Regressor struct {
	cfg      Config
	trees    []*tree
	features int
}

// NewRegressor creates an unfitted regressor.
func NewRegressor(cfg Config) *Regressor {
	return &Regressor{cfg: cfg}
}

// Fit trains the forest on X and targets y.
func (r *Regressor) Fit(X mat.Matrix, y []float64) error {
	if err := r.cfg.validate(); err != nil {
		return err
	}
	rows, err := rowsOf(X)
	if err != nil {
		return err
	}
	if len(y) != len(rows) {
		return fmt.Errorf("have %d rows but %d targets", len(rows), len(y))
	}

	maxFeatures := r.cfg.MaxFeatures
	if maxFeatures == 0 {
		maxFeatures = len(rows[0])
	}

	r.trees = growForest(r.cfg, rows, &squaredError{y: y}, maxFeatures)
	r.features = len(rows[0])
	return nil
}

// Predict returns the averaged tree output for x.
func (r *Regressor) Predict(x []float64) (float64, error) {
	if r.trees == nil {
		return 0, errNotFitted
	}
	if err := checkWidth(x, r.features); err != nil {
		return 0, err
	}
	var sum float64
	for _, t := range r.trees {
		sum += t.leafValue(x)[0]
	}
	return sum / float64(len(r.trees)), nil
}

// squaredError scores splits by the reduction in squared error.
type squaredError struct {
	y []float64
}

func (e *squaredError) newStats() splitStats {
	return &sseStats{y: e.y}
}

func (e *squaredError) leaf(samples []int) []float64 {
	values := make([]float64, len(samples))
	for i, s := range samples {
		values[i] = e.y[s]
	}
	return []float64{stat.Mean(values, nil)}
}

func (e *squaredError) pure(samples []int) bool {
	first := e.y[samples[0]]
	for _, s := range samples[1:] {
		if e.y[s] != first {
			return false
		}
	}
	return true
}

type sseStats struct {
	y      []float64
	sl, sr float64
	nl, nr float64
}

func (s *sseStats) reset(samples []int) {
	s.sl, s.sr = 0, 0
	for _, idx := range samples {
		s.sr += s.y[idx]
	}
	s.nl = 0
	s.nr = float64(len(samples))
}

func (s *sseStats) move(sample int) {
	v := s.y[sample]
	s.sl += v
	s.sr -= v
	s.nl++
	s.nr--
}

// score is sl^2/nl + sr^2/nr, which grows as the children's summed squared
// error shrinks.
func (s *sseStats) score() float64 {
	return s.sl*s.sl/s.nl + s.sr*s.sr/s.nr
}
