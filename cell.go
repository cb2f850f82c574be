package knn

import "fmt"

// Cell is an active element of a sparse representation.
type Cell interface {
	// Index returns the cell's position.
	Index() int
}

// Position is a Cell holding only its index.
type Position int

// Index implements Cell.
func (p Position) Index() int { return int(p) }

// Positions wraps raw indices as cells.
func Positions(indices ...int) []Cell {
	cells := make([]Cell, len(indices))
	for i, idx := range indices {
		cells[i] = Position(idx)
	}
	return cells
}

// Indices extracts the positions of cells, preserving order.
// A nil slice or a nil element is rejected with ErrInvalidArgument.
func Indices(cells []Cell) ([]int, error) {
	if cells == nil {
		return nil, fmt.Errorf("%w: cells must not be nil", ErrInvalidArgument)
	}
	out := make([]int, len(cells))
	for i, c := range cells {
		if c == nil {
			return nil, fmt.Errorf("%w: cell %d is nil", ErrInvalidArgument, i)
		}
		out[i] = c.Index()
	}
	return out, nil
}
