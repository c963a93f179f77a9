package forest

import (
	"cmp"
	"math"
	"math/rand"
	"slices"
)

type node struct {
	feature   int
	threshold float64
	left      int
	right     int
	value     []float64
}

func (n *node) isLeaf() bool { return n.left < 0 }

type tree struct {
	nodes []node
}

// leafValue walks x down to its leaf.
func (t *tree) leafValue(x []float64) []float64 {
	i := 0
	for !t.nodes[i].isLeaf() {
		n := &t.nodes[i]
		if x[n.feature] <= n.threshold {
			i = n.left
		} else {
			i = n.right
		}
	}
	return t.nodes[i].value
}

func (t *tree) depth() int {
	var walk func(i int) int
	walk = func(i int) int {
		n := &t.nodes[i]
		if n.isLeaf() {
			return 0
		}
		return 1 + max(walk(n.left), walk(n.right))
	}
	return walk(0)
}

// splitStats accumulates per-side statistics while rows move from the right
// side of a candidate split to the left.
type splitStats interface {
	reset(samples []int)
	move(sample int)
	// score is a proxy for impurity decrease; higher is better.
	score() float64
}

// criterion describes how a task measures nodes.
type criterion interface {
	newStats() splitStats
	leaf(samples []int) []float64
	pure(samples []int) bool
}

type builder struct {
	x           [][]float64
	crit        criterion
	maxFeatures int
	minSplit    int
	maxDepth    int
	rng         *rand.Rand
	nodes       []node
}

func (b *builder) build(samples []int) *tree {
	b.nodes = b.nodes[:0]
	b.grow(samples, 0)
	return &tree{nodes: slices.Clone(b.nodes)}
}

// grow appends the subtree for samples and returns its root index.
func (b *builder) grow(samples []int, depth int) int {
	id := len(b.nodes)
	b.nodes = append(b.nodes, node{left: -1, right: -1, value: b.crit.leaf(samples)})

	if len(samples) < b.minSplit || b.crit.pure(samples) || (b.maxDepth > 0 && depth >= b.maxDepth) {
		return id
	}

	feature, threshold, ok := b.bestSplit(samples)
	if !ok {
		return id
	}

	left, right := b.partition(samples, feature, threshold)
	l := b.grow(left, depth+1)
	r := b.grow(right, depth+1)

	// b.nodes may have been reallocated by the recursive calls.
	n := &b.nodes[id]
	n.feature = feature
	n.threshold = threshold
	n.left = l
	n.right = r
	n.value = nil
	return id
}

func (b *builder) bestSplit(samples []int) (int, float64, bool) {
	nFeatures := len(b.x[samples[0]])
	sorted := make([]int, len(samples))
	stats := b.crit.newStats()

	var (
		bestFeature   int
		bestThreshold float64
		bestScore     = math.Inf(-1)
		found         bool
		visited       int
	)

	for _, f := range b.rng.Perm(nFeatures) {
		if visited >= b.maxFeatures {
			break
		}

		copy(sorted, samples)
		slices.SortStableFunc(sorted, func(i, j int) int {
			return cmp.Compare(b.x[i][f], b.x[j][f])
		})
		if b.x[sorted[0]][f] == b.x[sorted[len(sorted)-1]][f] {
			continue
		}
		visited++

		stats.reset(sorted)
		for i := 0; i < len(sorted)-1; i++ {
			stats.move(sorted[i])
			lo, hi := b.x[sorted[i]][f], b.x[sorted[i+1]][f]
			if lo == hi {
				continue
			}
			if s := stats.score(); s > bestScore {
				bestScore = s
				bestFeature = f
				bestThreshold = lo/2 + hi/2
				if bestThreshold == hi {
					bestThreshold = lo
				}
				found = true
			}
		}
	}
	return bestFeature, bestThreshold, found
}

func (b *builder) partition(samples []int, feature int, threshold float64) ([]int, []int) {
	left := make([]int, 0, len(samples))
	right := make([]int, 0, len(samples))
	for _, s := range samples {
		if b.x[s][feature] <= threshold {
			left = append(left, s)
		} else {
			right = append(right, s)
		}
	}
	return left, right
}

// bootstrap draws n row indices with replacement.
func bootstrap(rng *rand.Rand, n int) []int {
	samples := make([]int, n)
	for i := range samples {
		samples[i] = rng.Intn(n)
	}
	return samples
}
