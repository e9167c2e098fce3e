package rbt

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBounds(t *testing.T) {
	tr := NewOrdered[int]()
	tr.InsertAll(10, 20, 30, 40)

	dataSet := []struct {
		v     int
		lower int // -1 means End
		upper int
	}{
		{5, 10, 10},
		{10, 10, 20},
		{15, 20, 20},
		{40, 40, -1},
		{45, -1, -1},
	}

	for _, d := range dataSet {
		lb, ub := tr.LowerBound(d.v), tr.UpperBound(d.v)
		if d.lower < 0 {
			assert.True(t, lb.IsEnd(), "lower %d", d.v)
		} else {
			assert.Equal(t, d.lower, lb.Value(), "lower %d", d.v)
		}
		if d.upper < 0 {
			assert.True(t, ub.IsEnd(), "upper %d", d.v)
		} else {
			assert.Equal(t, d.upper, ub.Value(), "upper %d", d.v)
		}
	}
}

func TestBoundsEmpty(t *testing.T) {
	tr := NewOrdered[int]()
	assert.True(t, tr.LowerBound(1).IsEnd())
	assert.True(t, tr.UpperBound(1).IsEnd())
	assert.True(t, tr.EqualRange(1).Empty())
	assert.True(t, tr.Find(1).IsEnd())
}

func TestEqualRange(t *testing.T) {
	rnd := rand.New(rand.NewSource(9))
	tr := NewOrdered[int]()
	for i := 0; i < 200; i++ {
		tr.Insert(rnd.Intn(400))
	}

	for v := -1; v <= 401; v++ {
		r := tr.EqualRange(v)
		require.True(t, r.First.Equal(tr.LowerBound(v)))
		require.True(t, r.Second.Equal(tr.UpperBound(v)))
		if tr.Contains(v) {
			require.Equal(t, 1, r.Len())
			require.Equal(t, v, r.First.Value())
		} else {
			require.True(t, r.Empty())
			require.Equal(t, 0, r.Len())
		}
	}
}
