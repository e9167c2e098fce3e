package rbt

import "golang.org/x/exp/constraints"

// Set is an ordered set of unique values.
type Set[T any] struct {
	tree *Tree[T]
}

func NewSet[T any](less Less[T]) *Set[T] {
	return &Set[T]{tree: New[T](less)}
}

func NewOrderedSet[T constraints.Ordered]() *Set[T] {
	return NewSet[T](OrderedLess[T])
}

// SetOf builds an ordered set from vs, dropping duplicates.
func SetOf[T constraints.Ordered](vs ...T) *Set[T] {
	s := NewOrderedSet[T]()
	s.tree.InsertAll(vs...)
	return s
}

func (s *Set[T]) Len() int    { return s.tree.Len() }
func (s *Set[T]) Empty() bool { return s.tree.Empty() }

func (s *Set[T]) Insert(v T) (Cursor[T], bool) {
	return s.tree.Insert(v)
}

// InsertAll inserts every value and returns how many were new.
func (s *Set[T]) InsertAll(vs ...T) int {
	return s.tree.InsertAll(vs...)
}

func (s *Set[T]) InsertHint(hint Cursor[T], v T) Cursor[T] {
	return s.tree.InsertHint(hint, v)
}

// Erase removes v and returns the number of elements removed.
func (s *Set[T]) Erase(v T) int {
	return s.tree.EraseValue(v)
}

func (s *Set[T]) EraseAt(c Cursor[T]) Cursor[T] {
	return s.tree.Erase(c)
}

func (s *Set[T]) EraseRange(first, last Cursor[T]) int {
	return s.tree.EraseRange(first, last)
}

func (s *Set[T]) Find(v T) Cursor[T]       { return s.tree.Find(v) }
func (s *Set[T]) Contains(v T) bool        { return s.tree.Contains(v) }
func (s *Set[T]) Count(v T) int            { return s.tree.Count(v) }
func (s *Set[T]) LowerBound(v T) Cursor[T] { return s.tree.LowerBound(v) }
func (s *Set[T]) UpperBound(v T) Cursor[T] { return s.tree.UpperBound(v) }
func (s *Set[T]) EqualRange(v T) Range[T]  { return s.tree.EqualRange(v) }

func (s *Set[T]) Begin() Cursor[T]              { return s.tree.Begin() }
func (s *Set[T]) End() Cursor[T]                { return s.tree.End() }
func (s *Set[T]) RBegin() Reverse[Cursor[T], T] { return s.tree.RBegin() }
func (s *Set[T]) REnd() Reverse[Cursor[T], T]   { return s.tree.REnd() }
func (s *Set[T]) Iterator() Iterator[T]         { return s.tree.Iterator() }
func (s *Set[T]) Values() []T                   { return s.tree.Values() }
func (s *Set[T]) Ascend(fn func(v T) bool)      { s.tree.Ascend(fn) }
func (s *Set[T]) Descend(fn func(v T) bool)     { s.tree.Descend(fn) }
func (s *Set[T]) Less() Less[T]                 { return s.tree.Less() }

func (s *Set[T]) Clear() {
	s.tree.Clear()
}

func (s *Set[T]) Clone() *Set[T] {
	return &Set[T]{tree: s.tree.Clone()}
}

func (s *Set[T]) Swap(o *Set[T]) {
	s.tree.Swap(o.tree)
}
