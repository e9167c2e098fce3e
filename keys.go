package rbt

import "bytes"

type (
	Key []byte

	// Callback receives keys during a prefix scan; returning false stops it.
	Callback func(key Key) bool

	keyTree struct {
		set *Set[Key]
	}

	// keyIterator hands out copies so callers cannot reorder stored keys.
	keyIterator struct {
		it Iterator[Key]
	}
)

func keyLess(a, b Key) bool {
	return bytes.Compare(a, b) < 0
}

func (k Key) HasPrefix(prefix Key) bool {
	return bytes.HasPrefix(k, prefix)
}

func (k Key) clone() Key {
	return append(Key(nil), k...)
}

func (t *keyTree) Size() int {
	if t == nil || t.set == nil {
		return 0
	}
	return t.set.Len()
}

// Insert stores a copy of key and reports whether it was new.
func (t *keyTree) Insert(key Key) bool {
	if t.set.Contains(key) {
		return false
	}
	_, inserted := t.set.Insert(key.clone())
	return inserted
}

func (t *keyTree) Delete(key Key) bool {
	return t.set.Erase(key) == 1
}

func (t *keyTree) Contains(key Key) bool {
	return t.set.Contains(key)
}

// ForEachKeyPrefix returns the keys starting with prefix in sorted order.
func (t *keyTree) ForEachKeyPrefix(prefix Key) []Key {
	keys := make([]Key, 0)
	t.ForEachPrefix(prefix, func(k Key) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}

// ForEachPrefix calls callback with a copy of every key starting with
// prefix, in order. It returns false if the callback stopped the scan.
func (t *keyTree) ForEachPrefix(prefix Key, callback Callback) bool {
	for c := t.set.LowerBound(prefix); !c.IsEnd(); c = c.Next() {
		k := c.Value()
		if !k.HasPrefix(prefix) {
			break
		}
		if !callback(k.clone()) {
			return false
		}
	}
	return true
}

func (t *keyTree) Iterator() Iterator[Key] {
	return keyIterator{it: t.set.Iterator()}
}

func (ki keyIterator) HasNext() bool {
	return ki.it.HasNext()
}

func (ki keyIterator) Next() (Key, error) {
	k, err := ki.it.Next()
	if err != nil {
		return nil, err
	}
	return k.clone(), nil
}
