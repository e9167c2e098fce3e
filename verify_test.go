package rbt

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyDetectsCorruption(t *testing.T) {
	dataSet := []struct {
		name    string
		values  []int
		corrupt func(a *arena[int])
		message string
	}{
		{
			"red root",
			[]int{1, 2, 3},
			func(a *arena[int]) { a.nodes[a.root()].color = red },
			"is red",
		},
		{
			"size drift",
			[]int{1, 2, 3},
			func(a *arena[int]) { a.size++ },
			"reachable",
		},
		{
			"empty size drift",
			[]int{},
			func(a *arena[int]) { a.size = 2 },
			"empty tree",
		},
		{
			"black height",
			[]int{1, 2, 3},
			func(a *arena[int]) { a.nodes[a.nodes[a.root()].left].color = black },
			"black-height",
		},
		{
			"red red",
			[]int{1, 2, 3, 4},
			func(a *arena[int]) { a.nodes[a.nodes[a.root()].right].color = red },
			"red child",
		},
		{
			"order",
			[]int{1, 2, 3},
			func(a *arena[int]) {
				r := a.root()
				l := a.nodes[r].left
				a.nodes[r].value, a.nodes[l].value = a.nodes[l].value, a.nodes[r].value
			},
			"does not order before",
		},
		{
			"parent link",
			[]int{1, 2, 3},
			func(a *arena[int]) { a.nodes[a.nodes[a.root()].left].parent = a.nodes[a.root()].right },
			"has parent",
		},
	}

	for _, d := range dataSet {
		tr := NewOrdered[int]()
		tr.InsertAll(d.values...)
		require.NoError(t, tr.Verify(), d.name)

		d.corrupt(tr.a)
		err := tr.Verify()
		require.Error(t, err, d.name)
		assert.True(t, errors.Is(err, ErrCorrupt), d.name)
		assert.Equal(t, ErrCorrupt, errors.Cause(err), d.name)
		assert.Contains(t, err.Error(), d.message, d.name)
	}
}

func TestHeight(t *testing.T) {
	tr := NewOrdered[int]()
	assert.Equal(t, 0, tr.Height())
	tr.Insert(1)
	assert.Equal(t, 1, tr.Height())
	tr.InsertAll(2, 3)
	assert.Equal(t, 2, tr.Height())

	for i := 4; i <= 1<<12; i++ {
		tr.Insert(i)
	}
	assert.LessOrEqual(t, float64(tr.Height()), heightBound(tr.Len()))
}
