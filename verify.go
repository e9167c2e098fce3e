package rbt

import "github.com/pkg/errors"

// Verify checks the tree's structural invariants: strict in-order ordering,
// parent links, the red-black colour rules, the sentinel link to the root
// and the element count. The first violation found is returned wrapping
// ErrCorrupt.
func (t *Tree[T]) Verify() error {
	a := t.arena()
	ns := a.nodes
	root := ns[nilIdx].left

	if ns[nilIdx].color != black {
		return errors.Wrap(ErrCorrupt, "sentinel is red")
	}
	if root == nilIdx {
		if a.size != 0 {
			return errors.Wrapf(ErrCorrupt, "empty tree reports %d elements", a.size)
		}
		return nil
	}
	if ns[root].parent != nilIdx {
		return errors.Wrapf(ErrCorrupt, "root %d has parent %d", root, ns[root].parent)
	}
	if ns[root].color != black {
		return errors.Wrapf(ErrCorrupt, "root %d is red", root)
	}

	count := 0
	if _, err := a.verifyNode(root, &count); err != nil {
		return err
	}
	if count != a.size {
		return errors.Wrapf(ErrCorrupt, "tree reports %d elements, %d reachable", a.size, count)
	}

	prev := nilIdx
	for i := a.minimum(root); i != nilIdx; i = a.successor(i) {
		if prev != nilIdx && !t.less(ns[prev].value, ns[i].value) {
			return errors.Wrapf(ErrCorrupt, "node %d does not order before node %d", prev, i)
		}
		prev = i
	}
	return nil
}

// verifyNode returns the black-height of the subtree at i.
func (a *arena[T]) verifyNode(i int32, count *int) (int, error) {
	if i == nilIdx {
		return 1, nil
	}
	*count++
	if *count > len(a.nodes) {
		return 0, errors.Wrap(ErrCorrupt, "cycle in child links")
	}

	ns := a.nodes
	n := ns[i]
	for _, c := range [2]int32{n.left, n.right} {
		if c == nilIdx {
			continue
		}
		if ns[c].parent != i {
			return 0, errors.Wrapf(ErrCorrupt, "node %d has parent %d, want %d", c, ns[c].parent, i)
		}
		if n.color == red && ns[c].color == red {
			return 0, errors.Wrapf(ErrCorrupt, "red node %d has red child %d", i, c)
		}
	}

	lh, err := a.verifyNode(n.left, count)
	if err != nil {
		return 0, err
	}
	rh, err := a.verifyNode(n.right, count)
	if err != nil {
		return 0, err
	}
	if lh != rh {
		return 0, errors.Wrapf(ErrCorrupt, "node %d black-height %d left, %d right", i, lh, rh)
	}
	if n.color == black {
		lh++
	}
	return lh, nil
}
