// Package rbt is an in-memory ordered key store built on a red-black tree,
// with ordered Map and Set adapters and a byte-key tree for prefix scans.
package rbt

type KeyTree interface {
	Insert(key Key) bool
	Delete(key Key) bool
	Contains(key Key) bool
	ForEachKeyPrefix(prefix Key) []Key
	ForEachPrefix(prefix Key, callback Callback) bool
	Iterator() Iterator[Key]
	Size() int
}

type Iterator[T any] interface {
	HasNext() bool
	Next() (T, error)
}

func NewKeyTree() KeyTree {
	return &keyTree{set: NewSet[Key](keyLess)}
}
