package rbt

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

const (
	red color = iota
	black
)

const (
	// nilIdx is arena slot 0: the sentinel, which is also the end position
	// and the marker for an absent child or parent.
	nilIdx int32 = 0
)

var (
	ErrNoMoreNodes = errors.New("There are no more nodes in the tree")
	ErrCorrupt     = errors.New("tree invariant violated")
	ErrNoOrdering  = errors.New("tree has no ordering, build it with New or NewOrdered")
)

type (
	color uint8

	// Less reports whether a orders strictly before b. It must be a strict
	// weak ordering.
	Less[T any] func(a, b T) bool

	node[T any] struct {
		value  T
		left   int32
		right  int32
		parent int32
		color  color
	}

	// arena owns every node of one tree. The sentinel lives in slot 0 and
	// its left link is the root.
	arena[T any] struct {
		nodes []node[T]
		free  []int32
		size  int
	}

	// Tree is an ordered set of unique values kept in a red-black tree.
	// It is not safe for concurrent use.
	//
	// The zero Tree is empty and can be read, cleared, cloned and swapped,
	// but it has no ordering: Insert panics with ErrNoOrdering until the
	// tree is built with New or NewOrdered.
	Tree[T any] struct {
		less Less[T]
		a    *arena[T]
	}
)

func newArena[T any](capacity int) *arena[T] {
	nodes := make([]node[T], 1, capacity+1)
	nodes[nilIdx].color = black
	return &arena[T]{nodes: nodes}
}

// OrderedLess is the natural ordering of T. NaN floats break it.
func OrderedLess[T constraints.Ordered](a, b T) bool {
	return a < b
}

func (c color) String() string {
	if c == red {
		return "red"
	}
	return "black"
}
