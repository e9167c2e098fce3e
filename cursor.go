package rbt

// Bidirectional is the cursor protocol shared by Cursor and Reverse.
type Bidirectional[C any, T any] interface {
	Next() C
	Prev() C
	Value() T
	Equal(o C) bool
}

// Cursor designates one element of a Tree, or its end position. Cursors are
// values; Next and Prev return moved copies.
//
// Insert invalidates no cursor. Erase invalidates only cursors on the erased
// element. Clear invalidates all of them.
type Cursor[T any] struct {
	a *arena[T]
	i int32
}

// Value returns the element. On the end position it returns the zero value.
func (c Cursor[T]) Value() T {
	return c.a.nodes[c.i].value
}

// Ref gives in-place access to the element. The pointer is only good until
// the next insertion, and the ordering key must not be changed through it.
func (c Cursor[T]) Ref() *T {
	return &c.a.nodes[c.i].value
}

// Next moves to the in-order successor. End stays End.
func (c Cursor[T]) Next() Cursor[T] {
	if c.i != nilIdx {
		c.i = c.a.successor(c.i)
	}
	return c
}

// Prev moves to the in-order predecessor. Prev of End is the last element;
// Prev of the first element is End.
func (c Cursor[T]) Prev() Cursor[T] {
	c.i = c.a.predecessor(c.i)
	return c
}

func (c Cursor[T]) Equal(o Cursor[T]) bool {
	return c.a == o.a && c.i == o.i
}

func (c Cursor[T]) IsEnd() bool {
	return c.i == nilIdx
}

// Reverse walks a bidirectional cursor backwards. It holds the position one
// past the element it yields, so the reverse of End is the last element.
type Reverse[C Bidirectional[C, T], T any] struct {
	base C
}

func NewReverse[C Bidirectional[C, T], T any](base C) Reverse[C, T] {
	return Reverse[C, T]{base: base}
}

// Base returns the underlying cursor, one position after the one Value reads.
func (r Reverse[C, T]) Base() C {
	return r.base
}

func (r Reverse[C, T]) Next() Reverse[C, T] {
	return Reverse[C, T]{base: r.base.Prev()}
}

func (r Reverse[C, T]) Prev() Reverse[C, T] {
	return Reverse[C, T]{base: r.base.Next()}
}

func (r Reverse[C, T]) Value() T {
	return r.base.Prev().Value()
}

func (r Reverse[C, T]) Equal(o Reverse[C, T]) bool {
	return r.base.Equal(o.base)
}
