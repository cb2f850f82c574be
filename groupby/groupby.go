package groupby

import "iter"

// Pair is an element together with its computed key.
type Pair[T, R any] struct {
	Value T
	Key   R
}

// Cursor walks a fixed slice, computing each element's key lazily.
type Cursor[T, R any] struct {
	items   []T
	key     func(T) R
	pos     int
	started bool
	current Pair[T, R]
	valid   bool
}

// New creates a cursor over items. The slice is not copied.
//
// If items is non-empty the first pair is computed immediately and is
// available from Current before the first Advance.
func New[T, R any](items []T, key func(T) R) *Cursor[T, R] {
	c := &Cursor[T, R]{items: items, key: key}
	c.rewind()
	return c
}

func (c *Cursor[T, R]) rewind() {
	c.pos = 0
	c.started = false
	c.valid = false
	c.current = Pair[T, R]{}
	if len(c.items) > 0 {
		c.current = c.pair(0)
		c.valid = true
	}
}

func (c *Cursor[T, R]) pair(i int) Pair[T, R] {
	v := c.items[i]
	return Pair[T, R]{Value: v, Key: c.key(v)}
}

// Advance moves to the next element and reports whether there was one.
//
// The first call after New or Reset stays on the first element and only
// marks the cursor as started. When the slice is exhausted Advance returns
// false and clears the current pair.
func (c *Cursor[T, R]) Advance() bool {
	if c.started {
		if c.pos < len(c.items) {
			c.pos++
		}
	} else {
		c.started = true
	}

	if c.pos >= len(c.items) {
		c.valid = false
		c.current = Pair[T, R]{}
		return false
	}
	c.current = c.pair(c.pos)
	c.valid = true
	return true
}

// Current returns the pair under the cursor. ok is false once the cursor is
// exhausted or when the slice is empty.
func (c *Cursor[T, R]) Current() (Pair[T, R], bool) {
	return c.current, c.valid
}

// Started reports whether Advance has been called since New or Reset.
func (c *Cursor[T, R]) Started() bool {
	return c.started
}

// PeekNext returns the pair one position ahead of the cursor without moving
// it. ok is false at the end of the slice.
func (c *Cursor[T, R]) PeekNext() (Pair[T, R], bool) {
	next := c.pos + 1
	if next >= len(c.items) {
		return Pair[T, R]{}, false
	}
	return c.pair(next), true
}

// Reset rewinds the cursor to the first element and clears the started state.
func (c *Cursor[T, R]) Reset() {
	c.rewind()
}

// All resets the cursor and yields every remaining pair. Iteration leaves
// the cursor in the state the last Advance put it in.
func (c *Cursor[T, R]) All() iter.Seq2[T, R] {
	return func(yield func(T, R) bool) {
		c.Reset()
		for c.Advance() {
			if !yield(c.current.Value, c.current.Key) {
				return
			}
		}
	}
}

// Groups resets c and yields each run of consecutive elements sharing a key,
// together with that key.
func Groups[T any, R comparable](c *Cursor[T, R]) iter.Seq2[R, []T] {
	return func(yield func(R, []T) bool) {
		c.Reset()
		for c.Advance() {
			cur, _ := c.Current()
			run := []T{cur.Value}
			for {
				next, ok := c.PeekNext()
				if !ok || next.Key != cur.Key {
					break
				}
				c.Advance()
				run = append(run, next.Value)
			}
			if !yield(cur.Key, run) {
				return
			}
		}
	}
}
