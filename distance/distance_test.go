package distance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RiswanBasha/knn/testutil"
)

func TestMinDistance(t *testing.T) {
	tests := []struct {
		name      string
		positions []int
		q         int
		expected  int
	}{
		{"Simple", []int{2, 4, 9}, 7, 2},
		{"Empty", []int{}, 5, 5},
		{"Nil", nil, 3, 3},
		{"Exact", []int{1, 2, 3}, 2, 0},
		{"Far", []int{10, 11, 12}, 2, 8},
		{"Unsorted", []int{9, 2, 4}, 7, 2},
		{"Duplicates", []int{4, 4, 4}, 1, 3},
		{"Negative", []int{-5, 20}, 0, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MinDistance(tt.positions, tt.q))
		})
	}
}

func TestDistanceTable(t *testing.T) {
	t.Run("KeysInQueryOrder", func(t *testing.T) {
		tbl := DistanceTable([]int{2, 4, 9}, []int{7, 1, 20})
		assert.Equal(t, Table{{7, 2}, {1, 1}, {20, 11}}, tbl)
	})

	t.Run("DuplicatesCollapse", func(t *testing.T) {
		tbl := DistanceTable([]int{5}, []int{3, 8, 3})
		require.Len(t, tbl, 2)
		assert.Equal(t, Entry{Position: 3, Distance: 2}, tbl[0])
		assert.Equal(t, Entry{Position: 8, Distance: 3}, tbl[1])
	})

	t.Run("EmptyQuery", func(t *testing.T) {
		assert.Empty(t, DistanceTable([]int{1, 2}, nil))
	})

	t.Run("EmptyExemplar", func(t *testing.T) {
		tbl := DistanceTable(nil, []int{4, 6})
		assert.Equal(t, map[int]int{4: 4, 6: 6}, tbl.Map())
	})

	t.Run("Get", func(t *testing.T) {
		tbl := DistanceTable([]int{10}, []int{12})
		d, ok := tbl.Get(12)
		assert.True(t, ok)
		assert.Equal(t, 2, d)

		_, ok = tbl.Get(13)
		assert.False(t, ok)
	})
}

func TestIndexMatchesLinearScan(t *testing.T) {
	rng := testutil.NewRNG(42)

	for i := 0; i < 200; i++ {
		positions := rng.ActiveSet(512, 1+rng.Intn(40))
		x := NewIndex(positions)
		for _, q := range rng.Ints(16, -20, 540) {
			require.Equal(t, MinDistance(positions, q), x.MinDistance(q), "positions=%v q=%d", positions, q)
		}
	}
}

func TestIndex(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		x := NewIndex(nil)
		assert.Equal(t, 5, x.MinDistance(5))
		assert.Equal(t, 0, x.Len())
	})

	t.Run("NegativeFallsBack", func(t *testing.T) {
		x := NewIndex([]int{-4, 10})
		assert.Nil(t, x.bitmap)
		assert.Equal(t, 3, x.MinDistance(-1))
		assert.Equal(t, 2, x.MinDistance(8))
	})

	t.Run("QueryBelowRange", func(t *testing.T) {
		x := NewIndex([]int{3, 7})
		assert.Equal(t, 5, x.MinDistance(-2))
	})

	t.Run("QueryAboveRange", func(t *testing.T) {
		if math.MaxInt == math.MaxInt32 {
			t.Skip("requires 64-bit int")
		}
		x := NewIndex([]int{3, 7})
		big := int64(math.MaxUint32) + 10
		q := int(big)
		assert.Equal(t, q-7, x.MinDistance(q))
	})

	t.Run("DuplicatePositions", func(t *testing.T) {
		x := NewIndex([]int{4, 4, 9})
		assert.Equal(t, 2, x.Len())
		assert.Equal(t, []int{4, 4, 9}, x.Positions())
		assert.Equal(t, 1, x.MinDistance(5))
	})

	t.Run("Table", func(t *testing.T) {
		positions := []int{2, 4, 9}
		query := []int{7, 1, 7, 30}
		assert.Equal(t, DistanceTable(positions, query), NewIndex(positions).Table(query))
	})
}

func BenchmarkMinDistance(b *testing.B) {
	rng := testutil.NewRNG(7)
	positions := rng.ActiveSet(4096, 80)
	queries := rng.Ints(64, 0, 4096)

	b.Run("Linear", func(b *testing.B) {
		for b.Loop() {
			for _, q := range queries {
				_ = MinDistance(positions, q)
			}
		}
	})

	b.Run("Index", func(b *testing.B) {
		x := NewIndex(positions)
		b.ResetTimer()
		for b.Loop() {
			for _, q := range queries {
				_ = x.MinDistance(q)
			}
		}
	})
}
