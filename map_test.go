package rbt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLetterMap() *Map[rune, int] {
	m := NewOrderedMap[rune, int]()
	for _, p := range []Pair[rune, int]{
		MakePair('b', 20),
		MakePair('d', 40),
		MakePair('f', 60),
		MakePair('g', 80),
		MakePair('j', 100),
	} {
		m.Insert(p.Key, p.Value)
	}
	return m
}

func TestMapBounds(t *testing.T) {
	m := newLetterMap()

	assert.Equal(t, MakePair('f', 60), m.LowerBound('e').Value())
	assert.True(t, m.LowerBound('k').Equal(m.End()))
	assert.Equal(t, MakePair('f', 60), m.UpperBound('d').Value())
	assert.True(t, m.UpperBound('j').Equal(m.End()))

	r := m.EqualRange('g')
	assert.Equal(t, 1, r.Len())
	assert.Equal(t, 80, r.First.Value().Value)
	assert.True(t, m.EqualRange('c').Empty())
}

func TestMapInsertKeepsExisting(t *testing.T) {
	m := NewOrderedMap[string, int]()
	c, ok := m.Insert("a", 1)
	require.True(t, ok)
	assert.Equal(t, "a", c.Value().Key)

	c, ok = m.Insert("a", 2)
	assert.False(t, ok)
	assert.Equal(t, 1, c.Value().Value)
	assert.Equal(t, 1, m.Len())

	m.Set("a", 3)
	m.Set("b", 4)
	v, ok := m.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 3, v)
	assert.Equal(t, []string{"a", "b"}, m.Keys())
	assert.Equal(t, []int{3, 4}, m.Values())
}

func TestMapAt(t *testing.T) {
	m := NewOrderedMap[string, int]()
	for _, w := range strings.Fields("the quick fox and the lazy dog and the cat") {
		*m.At(w)++
	}

	assert.Equal(t, 3, *m.At("the"))
	assert.Equal(t, 2, *m.At("and"))
	assert.Equal(t, 0, *m.At("missing"))
	assert.True(t, m.Contains("missing"))
	assert.Equal(t, []string{"and", "cat", "dog", "fox", "lazy", "missing", "quick", "the"}, m.Keys())
}

func TestMapGetAbsent(t *testing.T) {
	m := NewOrderedMap[int, string]()
	v, ok := m.Get(1)
	assert.False(t, ok)
	assert.Equal(t, "", v)
	assert.Equal(t, 0, m.Count(1))
	assert.True(t, m.Find(1).IsEnd())
}

func TestMapErase(t *testing.T) {
	m := newLetterMap()

	assert.Equal(t, 1, m.Erase('d'))
	assert.Equal(t, 0, m.Erase('d'))
	assert.Equal(t, 0, m.Erase('z'))
	assert.Equal(t, []rune{'b', 'f', 'g', 'j'}, m.Keys())

	next := m.EraseAt(m.Find('f'))
	assert.Equal(t, 'g', next.Value().Key)
	assert.Equal(t, 2, m.EraseRange(m.Begin(), m.Find('j')))
	assert.Equal(t, []rune{'j'}, m.Keys())
	require.NoError(t, m.tree.Verify())
}

func TestMapTraversal(t *testing.T) {
	m := newLetterMap()

	var keys []rune
	m.Descend(func(k rune, _ int) bool {
		keys = append(keys, k)
		return k != 'f'
	})
	assert.Equal(t, []rune{'j', 'g', 'f'}, keys)

	sum := 0
	for r := m.RBegin(); !r.Equal(m.REnd()); r = r.Next() {
		sum += r.Value().Value
	}
	assert.Equal(t, 300, sum)

	it := m.Iterator()
	p, err := it.Next()
	assert.NoError(t, err)
	assert.Equal(t, MakePair('b', 20), p)
}

func TestMapCloneSwapClear(t *testing.T) {
	m := newLetterMap()
	cp := m.Clone()
	cp.Set('b', 0)
	v, _ := m.Get('b')
	assert.Equal(t, 20, v)

	other := NewMap[rune, int](func(a, b rune) bool { return a > b })
	other.Set('x', 1)
	m.Swap(other)
	assert.Equal(t, []rune{'x'}, m.Keys())
	assert.Equal(t, 5, other.Len())
	assert.True(t, m.KeyLess()('b', 'a'))
	assert.True(t, other.KeyLess()('a', 'b'))

	other.Clear()
	assert.True(t, other.Empty())
	other.Set('a', 1)
	assert.Equal(t, []rune{'a'}, other.Keys())
}

func TestMapInsertAllAndHint(t *testing.T) {
	m := NewOrderedMap[string, int]()
	n := m.InsertAll(
		MakePair("b", 2),
		MakePair("a", 1),
		MakePair("b", 20),
		MakePair("c", 3),
	)
	assert.Equal(t, 3, n)
	assert.Equal(t, []string{"a", "b", "c"}, m.Keys())
	assert.Equal(t, []int{1, 2, 3}, m.Values())

	c := m.InsertHint(m.End(), "bb", 22)
	assert.Equal(t, MakePair("bb", 22), c.Value())
	c = m.InsertHint(m.Begin(), "a", 100)
	assert.Equal(t, MakePair("a", 1), c.Value())
	assert.Equal(t, 4, m.Len())

	less := m.ValueLess()
	assert.True(t, less(MakePair("a", 9), MakePair("b", 0)))
	assert.False(t, less(MakePair("b", 0), MakePair("b", 9)))
}
