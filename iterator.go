package rbt

type iterator[T any] struct {
	cur Cursor[T]
	end Cursor[T]
}

func newIterator[T any](from, to Cursor[T]) *iterator[T] {
	return &iterator[T]{cur: from, end: to}
}

func (it *iterator[T]) HasNext() bool {
	return it != nil && !it.cur.Equal(it.end) && !it.cur.IsEnd()
}

func (it *iterator[T]) Next() (T, error) {
	if !it.HasNext() {
		var zero T
		return zero, ErrNoMoreNodes
	}
	v := it.cur.Value()
	it.cur = it.cur.Next()
	return v, nil
}
