package forest

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Classifier is a random forest over integer class labels 0..k-1.
type Classifier struct {
	cfg      Config
	trees    []*tree
	classes  int
	features int
}

// NewClassifier creates an unfitted classifier.
func NewClassifier(cfg Config) *Classifier {
	return &Classifier{cfg: cfg}
}

// Fit trains the forest. Labels must lie in 0..k-1 where k is the largest
// label plus one.
func (c *Classifier) Fit(X mat.Matrix, y []int) error {
	if err := c.cfg.validate(); err != nil {
		return err
	}
	rows, err := rowsOf(X)
	if err != nil {
		return err
	}
	if len(y) != len(rows) {
		return fmt.Errorf("have %d rows but %d labels", len(rows), len(y))
	}

	classes := 0
	for i, label := range y {
		if label < 0 {
			return fmt.Errorf("label %d of row %d is negative", label, i)
		}
		classes = max(classes, label+1)
	}

	maxFeatures := c.cfg.MaxFeatures
	if maxFeatures == 0 {
		maxFeatures = max(1, int(math.Sqrt(float64(len(rows[0])))))
	}

	crit := &gini{y: y, classes: classes}
	c.trees = growForest(c.cfg, rows, crit, maxFeatures)
	c.classes = classes
	c.features = len(rows[0])
	return nil
}

// PredictProba returns the averaged class probabilities for x.
func (c *Classifier) PredictProba(x []float64) ([]float64, error) {
	if c.trees == nil {
		return nil, errNotFitted
	}
	if err := checkWidth(x, c.features); err != nil {
		return nil, err
	}
	proba := make([]float64, c.classes)
	for _, t := range c.trees {
		floats.Add(proba, t.leafValue(x))
	}
	floats.Scale(1/float64(len(c.trees)), proba)
	return proba, nil
}

// Predict returns the most probable class for x.
func (c *Classifier) Predict(x []float64) (int, error) {
	proba, err := c.PredictProba(x)
	if err != nil {
		return 0, err
	}
	return floats.MaxIdx(proba), nil
}

// Classes returns the number of classes seen at fit time.
func (c *Classifier) Classes() int {
	return c.classes
}

// gini scores splits by Gini impurity.
type gini struct {
	y       []int
	classes int
}

func (g *gini) newStats() splitStats {
	return &giniStats{y: g.y, left: make([]float64, g.classes), right: make([]float64, g.classes)}
}

// leaf returns the class frequencies of samples.
func (g *gini) leaf(samples []int) []float64 {
	counts := make([]float64, g.classes)
	for _, s := range samples {
		counts[g.y[s]]++
	}
	floats.Scale(1/float64(len(samples)), counts)
	return counts
}

func (g *gini) pure(samples []int) bool {
	first := g.y[samples[0]]
	for _, s := range samples[1:] {
		if g.y[s] != first {
			return false
		}
	}
	return true
}

type giniStats struct {
	y           []int
	left, right []float64
	nl, nr      float64
}

func (s *giniStats) reset(samples []int) {
	for i := range s.left {
		s.left[i] = 0
		s.right[i] = 0
	}
	for _, idx := range samples {
		s.right[s.y[idx]]++
	}
	s.nl = 0
	s.nr = float64(len(samples))
}

func (s *giniStats) move(sample int) {
	c := s.y[sample]
	s.left[c]++
	s.right[c]--
	s.nl++
	s.nr--
}

// score is sum(left^2)/nl + sum(right^2)/nr, which grows as the weighted
// Gini impurity of the children shrinks.
func (s *giniStats) score() float64 {
	return floats.Dot(s.left, s.left)/s.nl + floats.Dot(s.right, s.right)/s.nr
}
