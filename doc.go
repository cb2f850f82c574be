// Package knn provides a nearest-neighbor classifier for sparse sets of
// active positions.
//
// Active positions are the indices of active cells produced by an upstream
// encoder. The classifier learns labeled exemplars and labels a new position
// set by the positional distance of each query position to every exemplar:
// the smallest absolute difference to any learned position.
//
// # Quick Start
//
//	clf, _ := knn.New(knn.StringLabel)
//	clf.LearnPositions("cat", []int{1, 2, 3})
//	clf.LearnPositions("dog", []int{10, 11, 12})
//
//	results, _ := clf.ClassifyPositions([]int{2}, 1)
//	fmt.Println(results[0].Label) // cat
//
// # Selection
//
// Classify collects one candidate per (query position, exemplar) pair, sorts
// each position's candidates by distance, concatenates the per-position lists
// in the order the positions first appear in the query and keeps the first
// NumNeighbors candidates (default 4). It then converts their labels and
// returns the first maxResults. There is no majority vote: the cutoff is a
// plain prefix of the concatenated lists.
//
// Similarity and SharedBits of a Result are always zero.
//
// # Storage
//
// Exemplars live in an exemplar.Store. Each label keeps its distinct
// exemplars in learning order; once a label holds more than Capacity
// exemplars (default 20) the oldest is evicted before a new one is added.
// Pass WithStore to share a caller-owned store.
//
// # Concurrency
//
// A Classifier is not safe for concurrent use. Wrap it with Synchronize when
// Learn and Classify are called from several goroutines.
package knn
