package rbt

// Erase removes the element c designates and returns a cursor to its
// successor. Only cursors on the erased element are invalidated. Erasing
// the end position, a cursor from another tree or an already erased cursor
// does nothing and returns End.
func (t *Tree[T]) Erase(c Cursor[T]) Cursor[T] {
	if !t.owns(c) {
		return t.End()
	}
	next := c.Next()
	t.a.erase(c.i)
	return next
}

// owns reports whether c designates a live element of t. Erasing a cursor
// twice finds its slot released and does nothing.
func (t *Tree[T]) owns(c Cursor[T]) bool {
	return c.a == t.arena() && c.a.live(c.i)
}

// EraseValue removes the element equal to v and reports how many elements
// were removed, 0 or 1.
func (t *Tree[T]) EraseValue(v T) int {
	i := t.find(v)
	if i == nilIdx {
		return 0
	}
	t.arena().erase(i)
	return 1
}

// EraseRange removes [first, last) and returns the number removed. A first
// cursor from another tree removes nothing.
func (t *Tree[T]) EraseRange(first, last Cursor[T]) int {
	n := 0
	for !first.Equal(last) && t.owns(first) {
		first = t.Erase(first)
		n++
	}
	return n
}

// erase unlinks z. A node with two children is replaced by its in-order
// predecessor node, relinked rather than copied, so no other element
// changes slots.
func (a *arena[T]) erase(z int32) {
	ns := a.nodes
	y, removed := z, ns[z].color
	var x int32

	switch {
	case ns[z].left == nilIdx:
		x = ns[z].right
		a.transplant(z, x)
	case ns[z].right == nilIdx:
		x = ns[z].left
		a.transplant(z, x)
	default:
		y = a.maximum(ns[z].left)
		removed = ns[y].color
		x = ns[y].left
		if ns[y].parent == z {
			ns[x].parent = y
		} else {
			a.transplant(y, x)
			ns[y].left = ns[z].left
			ns[ns[y].left].parent = y
		}
		a.transplant(z, y)
		ns[y].right = ns[z].right
		ns[ns[y].right].parent = y
		ns[y].color = ns[z].color
	}

	if removed == black {
		a.eraseFixup(x)
	}
	ns[nilIdx].parent = nilIdx
	ns[nilIdx].color = black

	a.release(z)
	a.size--
}

// eraseFixup restores black-height after a black node left the path
// through x. x may be the sentinel standing in for an absent child.
func (a *arena[T]) eraseFixup(x int32) {
	ns := a.nodes
	for x != ns[nilIdx].left && ns[x].color == black {
		p := ns[x].parent

		if x == ns[p].left {
			w := ns[p].right
			if ns[w].color == red {
				ns[w].color, ns[p].color = black, red
				a.rotateLeft(p)
				w = ns[p].right
			}
			if ns[ns[w].left].color == black && ns[ns[w].right].color == black {
				ns[w].color = red
				x = p
				continue
			}
			if ns[ns[w].right].color == black {
				ns[ns[w].left].color = black
				ns[w].color = red
				a.rotateRight(w)
				w = ns[p].right
			}
			ns[w].color = ns[p].color
			ns[p].color = black
			ns[ns[w].right].color = black
			a.rotateLeft(p)
			x = ns[nilIdx].left
		} else {
			w := ns[p].left
			if ns[w].color == red {
				ns[w].color, ns[p].color = black, red
				a.rotateRight(p)
				w = ns[p].left
			}
			if ns[ns[w].right].color == black && ns[ns[w].left].color == black {
				ns[w].color = red
				x = p
				continue
			}
			if ns[ns[w].left].color == black {
				ns[ns[w].right].color = black
				ns[w].color = red
				a.rotateLeft(w)
				w = ns[p].left
			}
			ns[w].color = ns[p].color
			ns[p].color = black
			ns[ns[w].left].color = black
			a.rotateRight(p)
			x = ns[nilIdx].left
		}
	}
	ns[x].color = black
}
