package distance

// MinDistance returns the smallest |p - q| over every p in positions.
// If positions is empty, q itself is returned.
func MinDistance(positions []int, q int) int {
	if len(positions) == 0 {
		return q
	}
	shortest := abs(positions[0] - q)
	for _, p := range positions[1:] {
		if d := abs(p - q); d < shortest {
			shortest = d
		}
	}
	return shortest
}

// Entry is the distance computed for one query position.
type Entry struct {
	Position int
	Distance int
}

// Table maps query positions to their distance against one exemplar.
// Entries are kept in the order their position was first seen in the query;
// a repeated query position collapses into its first slot.
type Table []Entry

// Get returns the distance recorded for position.
func (t Table) Get(position int) (int, bool) {
	for _, e := range t {
		if e.Position == position {
			return e.Distance, true
		}
	}
	return 0, false
}

// Map returns the table as a position to distance map.
func (t Table) Map() map[int]int {
	m := make(map[int]int, len(t))
	for _, e := range t {
		m[e.Position] = e.Distance
	}
	return m
}

// DistanceTable computes MinDistance(positions, q) for every q in query.
func DistanceTable(positions, query []int) Table {
	return buildTable(query, func(q int) int { return MinDistance(positions, q) })
}

func buildTable(query []int, dist func(int) int) Table {
	t := make(Table, 0, len(query))
	slot := make(map[int]int, len(query))
	for _, q := range query {
		d := dist(q)
		if i, ok := slot[q]; ok {
			t[i].Distance = d
			continue
		}
		slot[q] = len(t)
		t = append(t, Entry{Position: q, Distance: d})
	}
	return t
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
