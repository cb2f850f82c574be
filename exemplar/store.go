package exemplar

import (
	"iter"
	"slices"

	"github.com/RiswanBasha/knn/distance"
)

// DefaultCapacity is the per-label retention limit used by NewStore callers
// that have no better value.
const DefaultCapacity = 20

// Exemplar is one learned position sequence.
type Exemplar struct {
	index *distance.Index
}

func newExemplar(positions []int) *Exemplar {
	return &Exemplar{index: distance.NewIndex(positions)}
}

// Positions returns a copy of the learned positions in learning order.
func (e *Exemplar) Positions() []int {
	return slices.Clone(e.index.Positions())
}

// Len returns the number of learned positions, duplicates included.
func (e *Exemplar) Len() int {
	return len(e.index.Positions())
}

// Equal reports whether positions is element-wise identical to the exemplar.
func (e *Exemplar) Equal(positions []int) bool {
	return slices.Equal(e.index.Positions(), positions)
}

// MinDistance returns the positional distance between q and the exemplar.
func (e *Exemplar) MinDistance(q int) int {
	return e.index.MinDistance(q)
}

// Table returns the distance of every query position to the exemplar.
func (e *Exemplar) Table(query []int) distance.Table {
	return e.index.Table(query)
}

// Ref addresses one exemplar inside a Store.
type Ref struct {
	Label    string
	Ordinal  int
	Exemplar *Exemplar
}

// LearnResult reports what a Learn call did to the store.
type LearnResult struct {
	// Stored is false when an identical exemplar was already present.
	Stored bool
	// Evicted is true when the oldest exemplar of the label was dropped.
	Evicted bool
}

// Store maps labels to their learned exemplars.
type Store struct {
	capacity int
	labels   []string
	byLabel  map[string][]*Exemplar
}

// NewStore creates an empty store. A negative capacity is treated as zero.
func NewStore(capacity int) *Store {
	return &Store{
		capacity: max(capacity, 0),
		byLabel:  make(map[string][]*Exemplar),
	}
}

// Capacity returns the per-label retention limit.
//
// Eviction runs before the new exemplar is appended and only when the label
// already holds more than Capacity exemplars, so a label can hold up to
// Capacity+1 exemplars.
func (s *Store) Capacity() int {
	return s.capacity
}

// Learn records positions under label.
//
// Positions are copied and kept in the order given. Learning a sequence that
// is already stored under the label is a no-op.
func (s *Store) Learn(label string, positions []int) LearnResult {
	list, ok := s.byLabel[label]
	if !ok {
		s.labels = append(s.labels, label)
	}

	if slices.ContainsFunc(list, func(e *Exemplar) bool { return e.Equal(positions) }) {
		return LearnResult{}
	}

	var res LearnResult
	if len(list) > s.capacity {
		list[0] = nil
		list = slices.Delete(list, 0, 1)
		res.Evicted = true
	}

	s.byLabel[label] = append(list, newExemplar(slices.Clone(positions)))
	res.Stored = true
	return res
}

// Clear removes every label and exemplar.
func (s *Store) Clear() {
	s.labels = nil
	clear(s.byLabel)
}

// Len returns the total number of stored exemplars.
func (s *Store) Len() int {
	n := 0
	for _, list := range s.byLabel {
		n += len(list)
	}
	return n
}

// Labels returns the known labels in first-learned order.
func (s *Store) Labels() []string {
	return slices.Clone(s.labels)
}

// Exemplars returns copies of the exemplars stored under label, oldest first.
func (s *Store) Exemplars(label string) [][]int {
	list := s.byLabel[label]
	if len(list) == 0 {
		return nil
	}
	out := make([][]int, len(list))
	for i, e := range list {
		out[i] = e.Positions()
	}
	return out
}

// All yields every stored exemplar, label by label in first-learned order and
// oldest first within a label. The store must not be modified while iterating.
func (s *Store) All() iter.Seq[Ref] {
	return func(yield func(Ref) bool) {
		for _, label := range s.labels {
			for i, e := range s.byLabel[label] {
				if !yield(Ref{Label: label, Ordinal: i, Exemplar: e}) {
					return
				}
			}
		}
	}
}
