package rbt

// Range is the half-open interval [First, Second).
type Range[T any] struct {
	First  Cursor[T]
	Second Cursor[T]
}

func (r Range[T]) Empty() bool {
	return r.First.Equal(r.Second)
}

// Len counts the elements in the range by stepping through it.
func (r Range[T]) Len() int {
	n := 0
	for c := r.First; !c.Equal(r.Second) && !c.IsEnd(); c = c.Next() {
		n++
	}
	return n
}

func (t *Tree[T]) find(v T) int32 {
	ns := t.arena().nodes
	i := ns[nilIdx].left
	for i != nilIdx {
		switch {
		case t.less(ns[i].value, v):
			i = ns[i].right
		case t.less(v, ns[i].value):
			i = ns[i].left
		default:
			return i
		}
	}
	return nilIdx
}

// lowerBound finds the first node not less than v.
func (t *Tree[T]) lowerBound(v T) int32 {
	ns := t.arena().nodes
	i, found := ns[nilIdx].left, nilIdx
	for i != nilIdx {
		if t.less(ns[i].value, v) {
			i = ns[i].right
		} else {
			found = i
			i = ns[i].left
		}
	}
	return found
}

// upperBound finds the first node greater than v.
func (t *Tree[T]) upperBound(v T) int32 {
	ns := t.arena().nodes
	i, found := ns[nilIdx].left, nilIdx
	for i != nilIdx {
		if !t.less(v, ns[i].value) {
			i = ns[i].right
		} else {
			found = i
			i = ns[i].left
		}
	}
	return found
}

// Find returns a cursor to the element equal to v, or End.
func (t *Tree[T]) Find(v T) Cursor[T] {
	return Cursor[T]{a: t.arena(), i: t.find(v)}
}

func (t *Tree[T]) Contains(v T) bool {
	return t.find(v) != nilIdx
}

// Count is 1 if an element equal to v is present and 0 otherwise.
func (t *Tree[T]) Count(v T) int {
	if t.Contains(v) {
		return 1
	}
	return 0
}

// LowerBound returns the first element not less than v, or End.
func (t *Tree[T]) LowerBound(v T) Cursor[T] {
	return Cursor[T]{a: t.arena(), i: t.lowerBound(v)}
}

// UpperBound returns the first element greater than v, or End.
func (t *Tree[T]) UpperBound(v T) Cursor[T] {
	return Cursor[T]{a: t.arena(), i: t.upperBound(v)}
}

// EqualRange returns the elements equal to v. Values are unique, so it holds
// at most one.
func (t *Tree[T]) EqualRange(v T) Range[T] {
	return Range[T]{First: t.LowerBound(v), Second: t.UpperBound(v)}
}
