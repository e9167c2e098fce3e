package rbt

import "golang.org/x/exp/constraints"

// New returns an empty tree ordered by less.
func New[T any](less Less[T]) *Tree[T] {
	return &Tree[T]{
		less: less,
		a:    newArena[T](0),
	}
}

// NewOrdered returns an empty tree using the natural ordering of T.
func NewOrdered[T constraints.Ordered]() *Tree[T] {
	return New[T](OrderedLess[T])
}

// arena returns the node store, allocating it on first use so the zero Tree
// is an empty tree.
func (t *Tree[T]) arena() *arena[T] {
	if t.a == nil {
		t.a = newArena[T](0)
	}
	return t.a
}

func (t *Tree[T]) Len() int {
	if t == nil || t.a == nil {
		return 0
	}
	return t.a.size
}

func (t *Tree[T]) Empty() bool {
	return t.Len() == 0
}

// Less returns the comparator the tree was built with.
func (t *Tree[T]) Less() Less[T] {
	return t.less
}

// Insert adds v unless an equal value is present. It returns a cursor to the
// element equal to v and whether v was inserted.
func (t *Tree[T]) Insert(v T) (Cursor[T], bool) {
	if t.less == nil {
		panic(ErrNoOrdering)
	}
	a := t.arena()
	parent, cur := nilIdx, a.root()
	toLeft := false
	for cur != nilIdx {
		parent = cur
		switch n := &a.nodes[cur]; {
		case t.less(n.value, v):
			cur, toLeft = n.right, false
		case t.less(v, n.value):
			cur, toLeft = n.left, true
		default:
			return Cursor[T]{a: a, i: cur}, false
		}
	}

	i := a.alloc(v)
	a.nodes[i].parent = parent
	switch {
	case parent == nilIdx:
		a.nodes[nilIdx].left = i
	case toLeft:
		a.nodes[parent].left = i
	default:
		a.nodes[parent].right = i
	}
	a.size++
	a.insertFixup(i)

	return Cursor[T]{a: a, i: i}, true
}

// InsertHint inserts v and returns a cursor to it. The hint is not used for
// positioning.
func (t *Tree[T]) InsertHint(hint Cursor[T], v T) Cursor[T] {
	c, _ := t.Insert(v)
	return c
}

// InsertAll inserts every value and returns how many were new.
func (t *Tree[T]) InsertAll(vs ...T) int {
	n := 0
	for _, v := range vs {
		if _, ok := t.Insert(v); ok {
			n++
		}
	}
	return n
}

// insertFixup restores the colour rules after z was attached red.
func (a *arena[T]) insertFixup(z int32) {
	ns := a.nodes
	for ns[ns[z].parent].color == red {
		p := ns[z].parent
		g := ns[p].parent

		if p == ns[g].left {
			u := ns[g].right
			if ns[u].color == red {
				ns[p].color, ns[u].color, ns[g].color = black, black, red
				z = g
				continue
			}
			if z == ns[p].right {
				// inner grandchild, turn it outer
				z = p
				a.rotateLeft(z)
				p = ns[z].parent
			}
			ns[p].color, ns[g].color = black, red
			a.rotateRight(g)
		} else {
			u := ns[g].left
			if ns[u].color == red {
				ns[p].color, ns[u].color, ns[g].color = black, black, red
				z = g
				continue
			}
			if z == ns[p].left {
				z = p
				a.rotateRight(z)
				p = ns[z].parent
			}
			ns[p].color, ns[g].color = black, red
			a.rotateLeft(g)
		}
	}
	ns[ns[nilIdx].left].color = black
	ns[nilIdx].color = black
}

func (t *Tree[T]) Begin() Cursor[T] {
	a := t.arena()
	return Cursor[T]{a: a, i: a.minimum(a.root())}
}

func (t *Tree[T]) End() Cursor[T] {
	return Cursor[T]{a: t.arena(), i: nilIdx}
}

func (t *Tree[T]) RBegin() Reverse[Cursor[T], T] {
	return NewReverse[Cursor[T], T](t.End())
}

func (t *Tree[T]) REnd() Reverse[Cursor[T], T] {
	return NewReverse[Cursor[T], T](t.Begin())
}

// Min returns the smallest element, or false if the tree is empty.
func (t *Tree[T]) Min() (T, bool) {
	c := t.Begin()
	return c.Value(), !c.IsEnd()
}

// Max returns the largest element, or false if the tree is empty.
func (t *Tree[T]) Max() (T, bool) {
	c := t.End().Prev()
	return c.Value(), !c.IsEnd()
}

// Ascend calls fn for each element in order until fn returns false.
func (t *Tree[T]) Ascend(fn func(v T) bool) {
	a := t.arena()
	for i := a.minimum(a.root()); i != nilIdx; i = a.successor(i) {
		if !fn(a.nodes[i].value) {
			return
		}
	}
}

// Descend calls fn for each element in reverse order until fn returns false.
func (t *Tree[T]) Descend(fn func(v T) bool) {
	a := t.arena()
	for i := a.maximum(a.root()); i != nilIdx; i = a.predecessor(i) {
		if !fn(a.nodes[i].value) {
			return
		}
	}
}

// AscendRange calls fn for each element in [from, to) in order until fn
// returns false.
func (t *Tree[T]) AscendRange(from, to T, fn func(v T) bool) {
	a := t.arena()
	for i := t.lowerBound(from); i != nilIdx; i = a.successor(i) {
		v := a.nodes[i].value
		if !t.less(v, to) || !fn(v) {
			return
		}
	}
}

// Values returns all elements in order.
func (t *Tree[T]) Values() []T {
	vs := make([]T, 0, t.Len())
	t.Ascend(func(v T) bool {
		vs = append(vs, v)
		return true
	})
	return vs
}

// Clear removes every element. The tree stays usable.
func (t *Tree[T]) Clear() {
	a := t.arena()
	a.drop(a.root())
	a.nodes = a.nodes[:1]
	a.nodes[nilIdx] = node[T]{color: black}
	a.free = a.free[:0]
	a.size = 0
}

// Clone returns a deep copy sharing no nodes with t. Values are copied by
// assignment.
func (t *Tree[T]) Clone() *Tree[T] {
	a := t.arena()
	b := newArena[T](a.size)
	b.nodes[nilIdx].left = b.clone(a, a.root(), nilIdx)
	b.size = a.size
	return &Tree[T]{less: t.less, a: b}
}

// Swap exchanges the contents and comparators of t and o. Cursors keep
// designating the same elements, now owned by the other tree.
func (t *Tree[T]) Swap(o *Tree[T]) {
	t.less, o.less = o.less, t.less
	t.a, o.a = o.arena(), t.arena()
}

// Height is the node count of the longest root-to-leaf path.
func (t *Tree[T]) Height() int {
	a := t.arena()
	return a.height(a.root())
}

// Iterator returns a pull iterator over the elements in order.
func (t *Tree[T]) Iterator() Iterator[T] {
	return newIterator(t.Begin(), t.End())
}
