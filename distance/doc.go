// Package distance provides the positional distance used to compare sparse
// sets of active positions.
//
// The distance between a query position q and a learned exemplar is the
// smallest absolute difference between q and any position of the exemplar.
// It is not a Hamming or overlap distance: two sets that share no position
// can still be close if their positions are near each other.
//
// # Usage
//
//	d := distance.MinDistance([]int{2, 4, 9}, 7) // 2
//
//	idx := distance.NewIndex([]int{2, 4, 9})
//	tbl := idx.Table([]int{7, 1, 7})            // [{7 2} {1 1}]
package distance
