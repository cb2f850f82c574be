package distance

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2"
)

// Index answers MinDistance queries for one exemplar in logarithmic time.
//
// Positions are kept in a compressed roaring bitmap and the nearest position
// is found from the predecessor and successor of the query. Exemplars holding
// a position outside the uint32 range fall back to a linear scan.
type Index struct {
	positions []int
	bitmap    *roaring.Bitmap
}

// NewIndex builds an index over positions. The slice is retained, not copied;
// callers must not modify it afterwards.
func NewIndex(positions []int) *Index {
	x := &Index{positions: positions}

	bm := roaring.New()
	for _, p := range positions {
		if p < 0 || int64(p) > math.MaxUint32 {
			return x
		}
		bm.Add(uint32(p))
	}
	bm.RunOptimize()
	x.bitmap = bm
	return x
}

// Positions returns the indexed positions in their original order.
func (x *Index) Positions() []int {
	return x.positions
}

// Len returns the number of distinct indexed positions.
func (x *Index) Len() int {
	if x.bitmap == nil {
		return len(x.positions)
	}
	return int(x.bitmap.GetCardinality())
}

// MinDistance is equivalent to MinDistance(x.Positions(), q).
func (x *Index) MinDistance(q int) int {
	bm := x.bitmap
	if bm == nil {
		return MinDistance(x.positions, q)
	}
	if bm.IsEmpty() {
		return q
	}
	if q < 0 {
		return int(bm.Minimum()) - q
	}
	if int64(q) > math.MaxUint32 {
		return q - int(bm.Maximum())
	}

	best := -1
	rank := bm.Rank(uint32(q)) // positions <= q
	if rank > 0 {
		pred, err := bm.Select(uint32(rank - 1))
		if err == nil {
			best = q - int(pred)
			if best == 0 {
				return 0
			}
		}
	}
	if rank < bm.GetCardinality() {
		succ, err := bm.Select(uint32(rank))
		if err == nil {
			if d := int(succ) - q; best < 0 || d < best {
				best = d
			}
		}
	}
	return best
}

// Table is the indexed equivalent of DistanceTable.
func (x *Index) Table(query []int) Table {
	return buildTable(query, x.MinDistance)
}
