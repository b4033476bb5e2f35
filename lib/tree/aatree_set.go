package tree

import (
	"sync/atomic"

	"github.com/benz9527/xtree/lib/infra"
)

func orderedKeyCmp[K infra.OrderedKey](isDesc bool) func(i, j K) int64 {
	return func(i, j K) int64 {
		if i == j {
			return 0
		} else if i < j {
			if !isDesc {
				return -1
			}
			return 1
		} else {
			if !isDesc {
				return 1
			}
			return -1
		}
	}
}

type aaTreeSet[K infra.OrderedKey] struct {
	tree   aaTree[K]
	count  int64
	isDesc bool
}

func (set *aaTreeSet[K]) Len() int64 {
	return atomic.LoadInt64(&set.count)
}

func (set *aaTreeSet[K]) Insert(key K) bool {
	if !set.tree.insert(key) {
		return false
	}
	atomic.AddInt64(&set.count, 1)
	return true
}

func (set *aaTreeSet[K]) Remove(key K) (K, bool) {
	removed, ok := set.tree.removeBy(func(elem K) int64 {
		return set.tree.cmp(key, elem)
	})
	if ok {
		atomic.AddInt64(&set.count, -1)
	}
	return removed, ok
}

func (set *aaTreeSet[K]) Contains(key K) bool {
	_, ok := traverse(set.tree.root,
		func(elem K) (TraverseDirection, K, bool) {
			res := set.tree.cmp(key, elem)
			if /* equal */ res == 0 {
				return TraverseStop, elem, true
			} else /* less */ if res < 0 {
				return TraverseLeft, elem, false
			}
			return TraverseRight, elem, false
		},
		func(elem K, sub K, ok bool) (K, bool) {
			return sub, ok
		},
	)
	return ok
}

func (set *aaTreeSet[K]) Min() (K, bool) {
	cursor, ok := set.tree.cursor()
	if !ok {
		var zero K
		return zero, false
	}
	for cursor.hasLeftChild() {
		cursor.turnLeft()
	}
	return *cursor.peek(), true
}

func (set *aaTreeSet[K]) Max() (K, bool) {
	cursor, ok := set.tree.cursor()
	if !ok {
		var zero K
		return zero, false
	}
	for cursor.hasRightChild() {
		cursor.turnRight()
	}
	return *cursor.peek(), true
}

func (set *aaTreeSet[K]) PopMin() (K, bool) {
	removed, ok := set.tree.removeMin()
	if ok {
		atomic.AddInt64(&set.count, -1)
	}
	return removed, ok
}

func (set *aaTreeSet[K]) PopMax() (K, bool) {
	removed, ok := set.tree.removeMax()
	if ok {
		atomic.AddInt64(&set.count, -1)
	}
	return removed, ok
}

// The descent may overshoot the floor candidate, so the unwind offers
// each passed node back up: the deepest node still below the target
// wins. An exact hit short-circuits through the stop branch.
func (set *aaTreeSet[K]) Floor(key K) (K, bool) {
	return traverse(set.tree.root,
		func(elem K) (TraverseDirection, K, bool) {
			res := set.tree.cmp(key, elem)
			if /* equal */ res == 0 {
				return TraverseStop, elem, true
			} else /* less */ if res < 0 {
				return TraverseLeft, elem, false
			}
			return TraverseRight, elem, false
		},
		func(elem K, sub K, ok bool) (K, bool) {
			if ok {
				return sub, true
			}
			if set.tree.cmp(key, elem) > 0 {
				return elem, true
			}
			return sub, false
		},
	)
}

func (set *aaTreeSet[K]) Ceiling(key K) (K, bool) {
	return traverse(set.tree.root,
		func(elem K) (TraverseDirection, K, bool) {
			res := set.tree.cmp(key, elem)
			if /* equal */ res == 0 {
				return TraverseStop, elem, true
			} else /* less */ if res < 0 {
				return TraverseLeft, elem, false
			}
			return TraverseRight, elem, false
		},
		func(elem K, sub K, ok bool) (K, bool) {
			if ok {
				return sub, true
			}
			if set.tree.cmp(key, elem) < 0 {
				return elem, true
			}
			return sub, false
		},
	)
}

func (set *aaTreeSet[K]) Foreach(action func(idx int64, key K) bool) {
	foreachNode(set.tree.root, atomic.LoadInt64(&set.count), action)
}

func (set *aaTreeSet[K]) Iter() func() (K, bool) {
	return iterNode(set.tree.root)
}

func (set *aaTreeSet[K]) Release() {
	aux := set.tree.root
	set.tree.root = nil
	size := atomic.LoadInt64(&set.count)
	if size < 0 || aux == nil {
		return
	}

	stack := make([]*aaNode[K], 0, size>>1)
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
		atomic.AddInt64(&set.count, -1)
		stack = stack[:size-1]
		if r != nil {
			for aux = r; aux != nil; aux = aux.left {
				stack = append(stack, aux)
			}
		}
	}
}

type AATreeSetOpt[K infra.OrderedKey] func(*aaTreeSet[K])

func WithAATreeSetDesc[K infra.OrderedKey]() AATreeSetOpt[K] {
	return func(set *aaTreeSet[K]) {
		set.isDesc = true
	}
}

func NewAATreeSet[K infra.OrderedKey](opts ...AATreeSetOpt[K]) AATreeSet[K] {
	set := &aaTreeSet[K]{
		count:  0,
		isDesc: false,
	}
	for _, o := range opts {
		o(set)
	}
	set.tree.cmp = orderedKeyCmp[K](set.isDesc)
	return set
}

// NewAATreeSetFromSortedIter builds a set of n keys in O(n) from a
// single pass over the source, skipping the per-key rebalancing of
// repeated Insert calls. The source must yield keys in strictly
// ascending order of the set (strictly descending for a desc set);
// an out-of-order key is a usage error.
func NewAATreeSetFromSortedIter[K infra.OrderedKey](next func() K, n int, opts ...AATreeSetOpt[K]) AATreeSet[K] {
	set := &aaTreeSet[K]{
		count:  int64(n),
		isDesc: false,
	}
	for _, o := range opts {
		o(set)
	}
	set.tree.cmp = orderedKeyCmp[K](set.isDesc)

	var prev K
	yielded := 0
	set.tree.root = fromSortedIter(func() K {
		key := next()
		if yielded > 0 && set.tree.cmp(prev, key) >= 0 {
			panic( /* debug assertion */ "[aa-tree] sorted source yields an out-of-order key")
		}
		prev = key
		yielded++
		return key
	}, n)
	return set
}

func NewAATreeSetFromSorted[K infra.OrderedKey](keys []K, opts ...AATreeSetOpt[K]) AATreeSet[K] {
	idx := 0
	return NewAATreeSetFromSortedIter(func() K {
		key := keys[idx]
		idx++
		return key
	}, len(keys), opts...)
}
