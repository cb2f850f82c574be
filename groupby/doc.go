// Package groupby provides a lazy cursor that pairs each element of a slice
// with a key computed on demand.
//
// Given the slice [2 4 4 5] and the key function x*3, a cursor yields the
// pairs (2,6) (4,12) (4,12) (5,15):
//
//	c := groupby.New([]int{2, 4, 4, 5}, func(x int) int { return x * 3 })
//	for c.Advance() {
//	    p, _ := c.Current()
//	    fmt.Println(p.Value, p.Key)
//	}
//
// Groups folds consecutive pairs with equal keys into runs, the way
// itertools.groupby does.
//
// A Cursor is single-pass: once Advance reports false only Reset makes it
// usable again. It is not safe for concurrent use.
package groupby
