package rbt

import "golang.org/x/exp/constraints"

type Pair[K, V any] struct {
	Key   K
	Value V
}

func MakePair[K, V any](k K, v V) Pair[K, V] {
	return Pair[K, V]{Key: k, Value: v}
}

// Map is an ordered map with unique keys. Entries are stored as pairs in a
// Tree ordered by key alone.
type Map[K, V any] struct {
	tree *Tree[Pair[K, V]]
	less Less[K]
}

func NewMap[K, V any](less Less[K]) *Map[K, V] {
	return &Map[K, V]{
		tree: New[Pair[K, V]](func(a, b Pair[K, V]) bool {
			return less(a.Key, b.Key)
		}),
		less: less,
	}
}

func NewOrderedMap[K constraints.Ordered, V any]() *Map[K, V] {
	return NewMap[K, V](OrderedLess[K])
}

// probe is the key-shaped value used for key-only lookups.
func (m *Map[K, V]) probe(k K) Pair[K, V] {
	return Pair[K, V]{Key: k}
}

func (m *Map[K, V]) Len() int {
	return m.tree.Len()
}

func (m *Map[K, V]) Empty() bool {
	return m.tree.Empty()
}

// KeyLess returns the key comparator.
func (m *Map[K, V]) KeyLess() Less[K] {
	return m.less
}

// ValueLess orders entries by key.
func (m *Map[K, V]) ValueLess() Less[Pair[K, V]] {
	return m.tree.Less()
}

// Insert adds k→v if k is absent. An existing entry is left untouched.
func (m *Map[K, V]) Insert(k K, v V) (Cursor[Pair[K, V]], bool) {
	return m.tree.Insert(Pair[K, V]{Key: k, Value: v})
}

// InsertAll inserts each pair whose key is absent and returns how many were
// new. Later duplicates of a key are dropped.
func (m *Map[K, V]) InsertAll(ps ...Pair[K, V]) int {
	return m.tree.InsertAll(ps...)
}

// InsertHint inserts k→v if k is absent and returns a cursor to the entry
// for k. The hint is not used for positioning.
func (m *Map[K, V]) InsertHint(hint Cursor[Pair[K, V]], k K, v V) Cursor[Pair[K, V]] {
	return m.tree.InsertHint(hint, Pair[K, V]{Key: k, Value: v})
}

// Set stores v under k, overwriting any existing value.
func (m *Map[K, V]) Set(k K, v V) {
	c, inserted := m.tree.Insert(Pair[K, V]{Key: k, Value: v})
	if !inserted {
		c.Ref().Value = v
	}
}

// At returns the value slot for k, inserting the zero value first if k is
// absent. The pointer is valid until the next insertion.
func (m *Map[K, V]) At(k K) *V {
	c, _ := m.tree.Insert(m.probe(k))
	return &c.Ref().Value
}

func (m *Map[K, V]) Get(k K) (V, bool) {
	c := m.tree.Find(m.probe(k))
	return c.Value().Value, !c.IsEnd()
}

func (m *Map[K, V]) Find(k K) Cursor[Pair[K, V]] {
	return m.tree.Find(m.probe(k))
}

func (m *Map[K, V]) Contains(k K) bool {
	return m.tree.Contains(m.probe(k))
}

func (m *Map[K, V]) Count(k K) int {
	return m.tree.Count(m.probe(k))
}

// Erase removes k and returns the number of entries removed.
func (m *Map[K, V]) Erase(k K) int {
	return m.tree.EraseValue(m.probe(k))
}

func (m *Map[K, V]) EraseAt(c Cursor[Pair[K, V]]) Cursor[Pair[K, V]] {
	return m.tree.Erase(c)
}

func (m *Map[K, V]) EraseRange(first, last Cursor[Pair[K, V]]) int {
	return m.tree.EraseRange(first, last)
}

func (m *Map[K, V]) LowerBound(k K) Cursor[Pair[K, V]] {
	return m.tree.LowerBound(m.probe(k))
}

func (m *Map[K, V]) UpperBound(k K) Cursor[Pair[K, V]] {
	return m.tree.UpperBound(m.probe(k))
}

func (m *Map[K, V]) EqualRange(k K) Range[Pair[K, V]] {
	return m.tree.EqualRange(m.probe(k))
}

func (m *Map[K, V]) Begin() Cursor[Pair[K, V]] {
	return m.tree.Begin()
}

func (m *Map[K, V]) End() Cursor[Pair[K, V]] {
	return m.tree.End()
}

func (m *Map[K, V]) RBegin() Reverse[Cursor[Pair[K, V]], Pair[K, V]] {
	return m.tree.RBegin()
}

func (m *Map[K, V]) REnd() Reverse[Cursor[Pair[K, V]], Pair[K, V]] {
	return m.tree.REnd()
}

func (m *Map[K, V]) Iterator() Iterator[Pair[K, V]] {
	return m.tree.Iterator()
}

// Ascend calls fn for each entry in key order until fn returns false.
func (m *Map[K, V]) Ascend(fn func(k K, v V) bool) {
	m.tree.Ascend(func(p Pair[K, V]) bool {
		return fn(p.Key, p.Value)
	})
}

func (m *Map[K, V]) Descend(fn func(k K, v V) bool) {
	m.tree.Descend(func(p Pair[K, V]) bool {
		return fn(p.Key, p.Value)
	})
}

func (m *Map[K, V]) Keys() []K {
	ks := make([]K, 0, m.Len())
	m.Ascend(func(k K, _ V) bool {
		ks = append(ks, k)
		return true
	})
	return ks
}

func (m *Map[K, V]) Values() []V {
	vs := make([]V, 0, m.Len())
	m.Ascend(func(_ K, v V) bool {
		vs = append(vs, v)
		return true
	})
	return vs
}

func (m *Map[K, V]) Clear() {
	m.tree.Clear()
}

func (m *Map[K, V]) Clone() *Map[K, V] {
	return &Map[K, V]{tree: m.tree.Clone(), less: m.less}
}

// Swap exchanges the contents and comparators of m and o.
func (m *Map[K, V]) Swap(o *Map[K, V]) {
	m.tree.Swap(o.tree)
	m.less, o.less = o.less, m.less
}
