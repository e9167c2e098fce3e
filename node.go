package rbt

func (a *arena[T]) root() int32 {
	return a.nodes[nilIdx].left
}

// alloc stores v in a fresh red node with no links. It may grow a.nodes, so
// callers must not hold node pointers across it.
func (a *arena[T]) alloc(v T) int32 {
	n := node[T]{value: v, color: red}
	if k := len(a.free); k > 0 {
		i := a.free[k-1]
		a.free = a.free[:k-1]
		a.nodes[i] = n
		return i
	}
	a.nodes = append(a.nodes, n)
	return int32(len(a.nodes) - 1)
}

func (a *arena[T]) release(i int32) {
	a.nodes[i] = node[T]{}
	a.free = append(a.free, i)
}

// live reports whether slot i holds an element. Released slots are zeroed,
// so only the root may have the sentinel as parent.
func (a *arena[T]) live(i int32) bool {
	if i == nilIdx || int(i) >= len(a.nodes) {
		return false
	}
	return a.nodes[i].parent != nilIdx || i == a.root()
}

func (a *arena[T]) minimum(i int32) int32 {
	if i == nilIdx {
		return nilIdx
	}
	for a.nodes[i].left != nilIdx {
		i = a.nodes[i].left
	}
	return i
}

func (a *arena[T]) maximum(i int32) int32 {
	if i == nilIdx {
		return nilIdx
	}
	for a.nodes[i].right != nilIdx {
		i = a.nodes[i].right
	}
	return i
}

// successor walks to the in-order successor of i. The walk leaves the tree
// through the root, whose parent is the sentinel, so the successor of the
// maximum is the end position.
func (a *arena[T]) successor(i int32) int32 {
	ns := a.nodes
	if r := ns[i].right; r != nilIdx {
		return a.minimum(r)
	}
	p := ns[i].parent
	for p != nilIdx && i == ns[p].right {
		i, p = p, ns[p].parent
	}
	return p
}

// predecessor is the mirror of successor. From the sentinel it steps to the
// maximum through the cached root.
func (a *arena[T]) predecessor(i int32) int32 {
	ns := a.nodes
	if i == nilIdx {
		return a.maximum(ns[nilIdx].left)
	}
	if l := ns[i].left; l != nilIdx {
		return a.maximum(l)
	}
	p := ns[i].parent
	for p != nilIdx && i == ns[p].left {
		i, p = p, ns[p].parent
	}
	return p
}

// replaceChild points p's link that held old at nu. A nilIdx parent means
// old was the root.
func (a *arena[T]) replaceChild(p, old, nu int32) {
	ns := a.nodes
	switch {
	case p == nilIdx:
		ns[nilIdx].left = nu
	case ns[p].left == old:
		ns[p].left = nu
	default:
		ns[p].right = nu
	}
}

func (a *arena[T]) rotateLeft(x int32) {
	ns := a.nodes
	y := ns[x].right
	ns[x].right = ns[y].left
	if ns[y].left != nilIdx {
		ns[ns[y].left].parent = x
	}
	ns[y].parent = ns[x].parent
	a.replaceChild(ns[x].parent, x, y)
	ns[y].left = x
	ns[x].parent = y
}

func (a *arena[T]) rotateRight(x int32) {
	ns := a.nodes
	y := ns[x].left
	ns[x].left = ns[y].right
	if ns[y].right != nilIdx {
		ns[ns[y].right].parent = x
	}
	ns[y].parent = ns[x].parent
	a.replaceChild(ns[x].parent, x, y)
	ns[y].right = x
	ns[x].parent = y
}

// transplant puts v where u hangs. v may be the sentinel, in which case the
// sentinel's parent link temporarily records u's parent for eraseFixup.
func (a *arena[T]) transplant(u, v int32) {
	p := a.nodes[u].parent
	a.replaceChild(p, u, v)
	a.nodes[v].parent = p
}

// clone copies the subtree at i from src in pre-order, returning the index
// of the copy in a.
func (a *arena[T]) clone(src *arena[T], i, parent int32) int32 {
	if i == nilIdx {
		return nilIdx
	}
	sn := src.nodes[i]
	j := a.alloc(sn.value)
	a.nodes[j].parent = parent
	a.nodes[j].color = sn.color

	left := a.clone(src, sn.left, j)
	right := a.clone(src, sn.right, j)
	a.nodes[j].left, a.nodes[j].right = left, right
	return j
}

// drop zeroes the subtree at i in post-order so values become unreachable.
func (a *arena[T]) drop(i int32) {
	if i == nilIdx {
		return
	}
	a.drop(a.nodes[i].left)
	a.drop(a.nodes[i].right)
	a.nodes[i] = node[T]{}
}

func (a *arena[T]) height(i int32) int {
	if i == nilIdx {
		return 0
	}
	return 1 + max(a.height(a.nodes[i].left), a.height(a.nodes[i].right))
}
