package steprange

// Cursor is a traversal position over a Range. Each call to Range.Begin
// returns a fresh Cursor, so traversals never share state.
type Cursor[T Number] struct {
	value T
	step  T
}

// Value returns the current value of the cursor.
func (c Cursor[T]) Value() T {
	return c.value
}

// Advance moves the cursor by one step. It never checks bounds: a cursor
// advanced past the end keeps going.
func (c *Cursor[T]) Advance() {
	c.value += c.step
}

// NotEqual reports whether c has not yet reached other, which is normally
// the End cursor of the same Range.
//
// A plain inequality would never stop when the step jumps over the end value
// (0, 3, 6, 9, 12 never equals 10), so the check is directional:
//   - step > 0: c is before other while c < other
//   - step <= 0: c is before other while c > other
func (c Cursor[T]) NotEqual(other Cursor[T]) bool {
	if c.step > 0 {
		return c.value < other.value
	}
	return c.value > other.value
}

// Equal is the negation of NotEqual.
func (c Cursor[T]) Equal(other Cursor[T]) bool {
	return !c.NotEqual(other)
}

// next advances the cursor unless the addition would wrap around the range
// of T (or stall, for floats whose magnitude swallows the step). It reports
// whether the cursor moved.
func (c *Cursor[T]) next() bool {
	n := c.value + c.step
	if c.step > 0 {
		if n <= c.value {
			return false
		}
	} else if n >= c.value {
		return false
	}
	c.value = n
	return true
}
