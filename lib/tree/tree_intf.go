package tree

import "github.com/benz9527/xtree/lib/infra"

// go install golang.org/x/tools/cmd/stringer@latest

//go:generate stringer -type=TraverseDirection
type TraverseDirection int8

const (
	TraverseLeft TraverseDirection = -1 + iota
	TraverseStop
	TraverseRight
)

// AATreeSet is a sorted set backed by an AA tree, a self-balancing
// binary search tree that maintains balance with a per-node level and
// two local rewrite rules (skew and split) instead of red-black
// recoloring. It is not thread safe; concurrent access requires
// external synchronization.
type AATreeSet[K infra.OrderedKey] interface {
	Len() int64
	// Insert adds key to the set. A key that is already present is
	// rejected and false is returned.
	Insert(key K) bool
	Remove(key K) (K, bool)
	Contains(key K) bool
	Min() (K, bool)
	Max() (K, bool)
	PopMin() (K, bool)
	PopMax() (K, bool)
	// Floor returns the largest key less than or equal to key.
	Floor(key K) (K, bool)
	// Ceiling returns the smallest key greater than or equal to key.
	Ceiling(key K) (K, bool)
	Foreach(action func(idx int64, key K) bool)
	// Iter returns a closure iterator over the keys in sorted order.
	// The set must not be modified while the iterator is in use.
	Iter() func() (K, bool)
	// Validate reports any AA invariant violations of the underlying
	// tree. A healthy set always returns nil.
	Validate() error
	Release()
}

// AATreeMap is a sorted map backed by an AA tree. Ordering, equality
// and all lookups delegate to the key alone. It is not thread safe;
// concurrent access requires external synchronization.
type AATreeMap[K infra.OrderedKey, V any] interface {
	Len() int64
	// Put inserts the pair or, if key is already present, swaps the
	// value in place and returns the previous one. The node keeps its
	// position in the tree either way.
	Put(key K, val V) (V, bool)
	Get(key K) (V, bool)
	GetKeyValue(key K) (K, V, bool)
	Contains(key K) bool
	// Update mutates the stored value in place without restructuring
	// the tree. Returns false if key is absent.
	Update(key K, apply func(val *V)) bool
	Remove(key K) (V, bool)
	RemoveEntry(key K) (K, V, bool)
	First() (K, V, bool)
	Last() (K, V, bool)
	PopFirst() (K, V, bool)
	PopLast() (K, V, bool)
	// FloorEntry returns the entry with the largest key less than or
	// equal to key.
	FloorEntry(key K) (K, V, bool)
	// CeilingEntry returns the entry with the smallest key greater
	// than or equal to key.
	CeilingEntry(key K) (K, V, bool)
	Keys() []K
	Values() []V
	Foreach(action func(idx int64, key K, val V) bool)
	// Iter returns a closure iterator over the entries in key order.
	// The map must not be modified while the iterator is in use.
	Iter() func() (K, V, bool)
	// Validate reports any AA invariant violations of the underlying
	// tree. A healthy map always returns nil.
	Validate() error
	Release()
}
