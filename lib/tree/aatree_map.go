package tree

import (
	"sync/atomic"

	"github.com/benz9527/xtree/lib/infra"
)

// xEntry is the payload of a map node. The engine orders and removes
// payloads through the key alone, the value rides along.
type xEntry[K infra.OrderedKey, V any] struct {
	key K
	val V
}

type aaTreeMap[K infra.OrderedKey, V any] struct {
	tree   aaTree[xEntry[K, V]]
	keyCmp infra.OrderedKeyComparator[K]
	count  int64
	isDesc bool
}

func (m *aaTreeMap[K, V]) Len() int64 {
	return atomic.LoadInt64(&m.count)
}

func (m *aaTreeMap[K, V]) Put(key K, val V) (V, bool) {
	old, replaced := m.tree.insertOrReplace(xEntry[K, V]{key: key, val: val})
	if !replaced {
		atomic.AddInt64(&m.count, 1)
	}
	return old.val, replaced
}

// entryOf runs the shared lookup walk. Get, GetKeyValue and Contains
// only differ in what they keep of the hit.
func (m *aaTreeMap[K, V]) entryOf(key K) (xEntry[K, V], bool) {
	return traverse(m.tree.root,
		func(elem xEntry[K, V]) (TraverseDirection, xEntry[K, V], bool) {
			res := m.keyCmp(key, elem.key)
			if /* equal */ res == 0 {
				return TraverseStop, elem, true
			} else /* less */ if res < 0 {
				return TraverseLeft, elem, false
			}
			return TraverseRight, elem, false
		},
		func(elem xEntry[K, V], sub xEntry[K, V], ok bool) (xEntry[K, V], bool) {
			return sub, ok
		},
	)
}

func (m *aaTreeMap[K, V]) Get(key K) (V, bool) {
	entry, ok := m.entryOf(key)
	return entry.val, ok
}

func (m *aaTreeMap[K, V]) GetKeyValue(key K) (K, V, bool) {
	entry, ok := m.entryOf(key)
	return entry.key, entry.val, ok
}

func (m *aaTreeMap[K, V]) Contains(key K) bool {
	_, ok := m.entryOf(key)
	return ok
}

func (m *aaTreeMap[K, V]) Update(key K, apply func(val *V)) bool {
	entry := traverseMut(m.tree.root,
		func(elem *xEntry[K, V], hasLeft, hasRight bool) TraverseDirection {
			res := m.keyCmp(key, elem.key)
			if /* equal */ res == 0 {
				return TraverseStop
			} else /* less */ if res < 0 {
				if !hasLeft {
					return TraverseStop
				}
				return TraverseLeft
			}
			if !hasRight {
				return TraverseStop
			}
			return TraverseRight
		},
		func(elem *xEntry[K, V], sub *xEntry[K, V]) *xEntry[K, V] {
			return sub
		},
	)
	if entry == nil || m.keyCmp(key, entry.key) != 0 {
		return false
	}
	apply(&entry.val)
	return true
}

func (m *aaTreeMap[K, V]) Remove(key K) (V, bool) {
	_, val, ok := m.RemoveEntry(key)
	return val, ok
}

func (m *aaTreeMap[K, V]) RemoveEntry(key K) (K, V, bool) {
	removed, ok := m.tree.removeBy(func(elem xEntry[K, V]) int64 {
		return m.keyCmp(key, elem.key)
	})
	if ok {
		atomic.AddInt64(&m.count, -1)
	}
	return removed.key, removed.val, ok
}

func (m *aaTreeMap[K, V]) First() (K, V, bool) {
	cursor, ok := m.tree.cursor()
	if !ok {
		var entry xEntry[K, V]
		return entry.key, entry.val, false
	}
	for cursor.hasLeftChild() {
		cursor.turnLeft()
	}
	entry := cursor.peek()
	return entry.key, entry.val, true
}

func (m *aaTreeMap[K, V]) Last() (K, V, bool) {
	cursor, ok := m.tree.cursor()
	if !ok {
		var entry xEntry[K, V]
		return entry.key, entry.val, false
	}
	for cursor.hasRightChild() {
		cursor.turnRight()
	}
	entry := cursor.peek()
	return entry.key, entry.val, true
}

func (m *aaTreeMap[K, V]) PopFirst() (K, V, bool) {
	removed, ok := m.tree.removeMin()
	if ok {
		atomic.AddInt64(&m.count, -1)
	}
	return removed.key, removed.val, ok
}

func (m *aaTreeMap[K, V]) PopLast() (K, V, bool) {
	removed, ok := m.tree.removeMax()
	if ok {
		atomic.AddInt64(&m.count, -1)
	}
	return removed.key, removed.val, ok
}

func (m *aaTreeMap[K, V]) FloorEntry(key K) (K, V, bool) {
	entry, ok := traverse(m.tree.root,
		func(elem xEntry[K, V]) (TraverseDirection, xEntry[K, V], bool) {
			res := m.keyCmp(key, elem.key)
			if /* equal */ res == 0 {
				return TraverseStop, elem, true
			} else /* less */ if res < 0 {
				return TraverseLeft, elem, false
			}
			return TraverseRight, elem, false
		},
		func(elem xEntry[K, V], sub xEntry[K, V], ok bool) (xEntry[K, V], bool) {
			if ok {
				return sub, true
			}
			if m.keyCmp(key, elem.key) > 0 {
				return elem, true
			}
			return sub, false
		},
	)
	return entry.key, entry.val, ok
}

func (m *aaTreeMap[K, V]) CeilingEntry(key K) (K, V, bool) {
	entry, ok := traverse(m.tree.root,
		func(elem xEntry[K, V]) (TraverseDirection, xEntry[K, V], bool) {
			res := m.keyCmp(key, elem.key)
			if /* equal */ res == 0 {
				return TraverseStop, elem, true
			} else /* less */ if res < 0 {
				return TraverseLeft, elem, false
			}
			return TraverseRight, elem, false
		},
		func(elem xEntry[K, V], sub xEntry[K, V], ok bool) (xEntry[K, V], bool) {
			if ok {
				return sub, true
			}
			if m.keyCmp(key, elem.key) < 0 {
				return elem, true
			}
			return sub, false
		},
	)
	return entry.key, entry.val, ok
}

func (m *aaTreeMap[K, V]) Keys() []K {
	keys := make([]K, 0, atomic.LoadInt64(&m.count))
	m.Foreach(func(idx int64, key K, val V) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

func (m *aaTreeMap[K, V]) Values() []V {
	vals := make([]V, 0, atomic.LoadInt64(&m.count))
	m.Foreach(func(idx int64, key K, val V) bool {
		vals = append(vals, val)
		return true
	})
	return vals
}

func (m *aaTreeMap[K, V]) Foreach(action func(idx int64, key K, val V) bool) {
	foreachNode(m.tree.root, atomic.LoadInt64(&m.count),
		func(idx int64, elem xEntry[K, V]) bool {
			return action(idx, elem.key, elem.val)
		},
	)
}

func (m *aaTreeMap[K, V]) Iter() func() (K, V, bool) {
	next := iterNode(m.tree.root)
	return func() (K, V, bool) {
		entry, ok := next()
		return entry.key, entry.val, ok
	}
}

func (m *aaTreeMap[K, V]) Release() {
	aux := m.tree.root
	m.tree.root = nil
	size := atomic.LoadInt64(&m.count)
	if size < 0 || aux == nil {
		return
	}

	stack := make([]*aaNode[xEntry[K, V]], 0, size>>1)
	defer func() {
		clear(stack)
	}()

	for ; aux != nil; aux = aux.left {
		stack = append(stack, aux)
	}

	for size = int64(len(stack)); size > 0; size = int64(len(stack)) {
		aux = stack[size-1]
		r := aux.right
		aux.left, aux.right = nil, nil
		atomic.AddInt64(&m.count, -1)
		stack = stack[:size-1]
		if r != nil {
			for aux = r; aux != nil; aux = aux.left {
				stack = append(stack, aux)
			}
		}
	}
}

type AATreeMapOpt[K infra.OrderedKey, V any] func(*aaTreeMap[K, V])

func WithAATreeMapDesc[K infra.OrderedKey, V any]() AATreeMapOpt[K, V] {
	return func(m *aaTreeMap[K, V]) {
		m.isDesc = true
	}
}

func NewAATreeMap[K infra.OrderedKey, V any](opts ...AATreeMapOpt[K, V]) AATreeMap[K, V] {
	m := &aaTreeMap[K, V]{
		count:  0,
		isDesc: false,
	}
	for _, o := range opts {
		o(m)
	}
	m.keyCmp = orderedKeyCmp[K](m.isDesc)
	m.tree.cmp = func(i, j xEntry[K, V]) int64 {
		return m.keyCmp(i.key, j.key)
	}
	return m
}

// NewAATreeMapFromSortedIter builds a map of n entries in O(n) from a
// single pass over the source. The source must yield entries in
// strictly ascending key order of the map (strictly descending for a
// desc map); an out-of-order key is a usage error.
func NewAATreeMapFromSortedIter[K infra.OrderedKey, V any](next func() (K, V), n int, opts ...AATreeMapOpt[K, V]) AATreeMap[K, V] {
	m := &aaTreeMap[K, V]{
		count:  int64(n),
		isDesc: false,
	}
	for _, o := range opts {
		o(m)
	}
	m.keyCmp = orderedKeyCmp[K](m.isDesc)
	m.tree.cmp = func(i, j xEntry[K, V]) int64 {
		return m.keyCmp(i.key, j.key)
	}

	var prev K
	yielded := 0
	m.tree.root = fromSortedIter(func() xEntry[K, V] {
		key, val := next()
		if yielded > 0 && m.keyCmp(prev, key) >= 0 {
			panic( /* debug assertion */ "[aa-tree] sorted source yields an out-of-order key")
		}
		prev = key
		yielded++
		return xEntry[K, V]{key: key, val: val}
	}, n)
	return m
}

func NewAATreeMapFromSorted[K infra.OrderedKey, V any](keys []K, vals []V, opts ...AATreeMapOpt[K, V]) AATreeMap[K, V] {
	if len(keys) != len(vals) {
		panic( /* debug assertion */ "[aa-tree] sorted keys and values differ in length")
	}
	idx := 0
	return NewAATreeMapFromSortedIter(func() (K, V) {
		key, val := keys[idx], vals[idx]
		idx++
		return key, val
	}, len(keys), opts...)
}
