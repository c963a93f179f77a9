// Package forest implements random forests of CART decision trees for
// classification and regression.
//
// Each tree is grown to full depth on a bootstrap sample of the training rows.
// At every node a random subset of features is examined for the best
// threshold split; constant features do not count towards that subset.
// Thresholds sit halfway between adjacent distinct values, and rows with a
// feature value at or below the threshold go left.
//
// Classification trees split on Gini impurity and store class frequencies in
// their leaves; the forest averages those frequencies across trees and picks
// the most probable class, lowest class index first on ties. Regression trees
// split on squared error and store the mean target; the forest averages the
// tree outputs.
//
// Training is deterministic for a given Config.Seed: the master seed derives
// one seed per tree, and trees are grown in order.
package forest
