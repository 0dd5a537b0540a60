// Package cursor provides a bidirectional cursor over a slice, able to walk
// forward and backward from any starting position.
package cursor

import (
	"iter"
	"slices"
)

// Cursor walks a slice in both directions. The zero value is an empty cursor.
//
// The cursor sits between elements: after New the first Next returns the
// element at the starting position, and the first Prev returns the element
// just before it.
type Cursor[T any] struct {
	items []T
	pos   int
}

// New returns a cursor over items positioned so that the first call to Next
// yields items[pos]. The slice is copied. A pos outside [0, len(items)] is
// clamped.
func New[T any](items []T, pos int) *Cursor[T] {
	if pos < 0 {
		pos = 0
	}
	if pos > len(items) {
		pos = len(items)
	}
	return &Cursor[T]{items: slices.Clone(items), pos: pos}
}

// FromSeq collects a sequence and returns a cursor positioned at its start.
func FromSeq[T any](seq iter.Seq[T]) *Cursor[T] {
	return &Cursor[T]{items: slices.Collect(seq)}
}

// Next advances the cursor and returns the element it moved over. The second
// return is false when the cursor is already at the end.
func (c *Cursor[T]) Next() (T, bool) {
	if c.pos >= len(c.items) {
		var zero T
		return zero, false
	}
	v := c.items[c.pos]
	c.pos++
	return v, true
}

// Prev moves the cursor back and returns the element it moved over. The
// second return is false when the cursor is already at the start.
func (c *Cursor[T]) Prev() (T, bool) {
	if c.pos <= 0 {
		var zero T
		return zero, false
	}
	c.pos--
	return c.items[c.pos], true
}

// HasNext reports whether a call to Next would succeed.
func (c *Cursor[T]) HasNext() bool { return c.pos < len(c.items) }

// HasPrev reports whether a call to Prev would succeed.
func (c *Cursor[T]) HasPrev() bool { return c.pos > 0 }

// Current returns the element the last successful Next or Prev moved over
// without changing position. It returns false before any movement, that is,
// when the cursor still sits at its construction point and nothing has been
// consumed.
func (c *Cursor[T]) Current() (T, bool) {
	if c.pos <= 0 || c.pos > len(c.items) {
		var zero T
		return zero, false
	}
	return c.items[c.pos-1], true
}

// Index returns the position of the element the next call to Next would
// return. It equals Len when the cursor is exhausted forward.
func (c *Cursor[T]) Index() int { return c.pos }

// Len returns the number of elements under the cursor.
func (c *Cursor[T]) Len() int { return len(c.items) }

// Seek repositions the cursor so that the next call to Next yields
// items[pos]. Out of range positions are clamped.
func (c *Cursor[T]) Seek(pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(c.items) {
		pos = len(c.items)
	}
	c.pos = pos
}

// Reset moves the cursor back to the start.
func (c *Cursor[T]) Reset() { c.pos = 0 }

// Forward yields the remaining elements in order, advancing the cursor as it
// goes. Breaking out of the loop leaves the cursor at the break point.
func (c *Cursor[T]) Forward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := c.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Backward yields the preceding elements in reverse order, moving the cursor
// back as it goes.
func (c *Cursor[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := c.Prev()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
