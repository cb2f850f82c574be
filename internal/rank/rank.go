// Package rank collects per-position candidate matches and selects the
// globally closest ones.
package rank

import (
	"cmp"
	"slices"

	"github.com/RiswanBasha/knn/distance"
)

// Candidate is one exemplar's distance to one query position.
type Candidate struct {
	Label    string
	Distance int
	// Ordinal is the exemplar's position within its label's list.
	Ordinal int
	// Position is the query position the distance was computed for.
	Position int
}

// Compare orders candidates by ascending distance. Equal distances compare
// equal. A nil candidate is greater than any non-nil one.
func Compare(a, b *Candidate) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}
	return cmp.Compare(a.Distance, b.Distance)
}

// Compare orders c against other; see the package-level Compare.
func (c *Candidate) Compare(other *Candidate) int {
	return Compare(c, other)
}

// Ranker groups candidates by query position.
//
// Positions are remembered in the order they were first added, which is the
// order Top flattens them in.
type Ranker struct {
	order []int
	lists map[int][]Candidate
}

// New creates an empty ranker.
func New() *Ranker {
	return &Ranker{lists: make(map[int][]Candidate)}
}

// Add appends one candidate per table entry, all attributed to the exemplar
// identified by label and ordinal.
func (r *Ranker) Add(label string, ordinal int, t distance.Table) {
	for _, e := range t {
		r.push(Candidate{
			Label:    label,
			Distance: e.Distance,
			Ordinal:  ordinal,
			Position: e.Position,
		})
	}
}

func (r *Ranker) push(c Candidate) {
	list, ok := r.lists[c.Position]
	if !ok {
		r.order = append(r.order, c.Position)
	}
	r.lists[c.Position] = append(list, c)
}

// Len returns the number of collected candidates.
func (r *Ranker) Len() int {
	n := 0
	for _, list := range r.lists {
		n += len(list)
	}
	return n
}

// Positions returns the query positions in first-added order.
func (r *Ranker) Positions() []int {
	return slices.Clone(r.order)
}

// List returns the candidates collected for position, in their current order.
func (r *Ranker) List(position int) []Candidate {
	return slices.Clone(r.lists[position])
}

// Sort orders every position's list by ascending distance. Candidates at the
// same distance keep their insertion order.
func (r *Ranker) Sort() {
	for _, list := range r.lists {
		slices.SortStableFunc(list, func(a, b Candidate) int {
			return Compare(&a, &b)
		})
	}
}

// Top sorts the per-position lists, concatenates them in first-added
// position order and returns at most n candidates from the front.
//
// The cutoff is global: a position whose list comes early can fill every
// slot before later positions are considered.
func (r *Ranker) Top(n int) []Candidate {
	if n <= 0 {
		return nil
	}
	r.Sort()

	out := make([]Candidate, 0, min(n, r.Len()))
	for _, pos := range r.order {
		for _, c := range r.lists[pos] {
			if len(out) == n {
				return out
			}
			out = append(out, c)
		}
	}
	return out
}
