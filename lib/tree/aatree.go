package tree

// References:
// https://user.it.uu.se/~arneande/ps/simp.pdf
// https://en.wikipedia.org/wiki/AA_tree
// AA tree invariants:
// p1. The level of a nil subtree is zero.
// p2. The level of a left child is strictly less than the level of
//   its parent. (left-chain violation, repaired by skew)
// p3. The level of a right child is less than or equal to the level of
//   its parent, and the level of a right grandchild is strictly less
//   than the level of its grandparent. (right-chain violation,
//   repaired by split)
// p4. Every leaf node has level one.
// p1-p4 bound the height to O(log n) without color bits: one skew plus
// one split per frame repairs an insertion, a level decrease plus three
// skews and two splits per frame repair a removal.

// aaTree owns the root of an AA tree whose payloads are totally ordered
// by cmp. Every mutating call moves the root through the rewrite
// helpers and installs the returned root, so there is never more than
// one live reference to a restructured subtree.
type aaTree[T any] struct {
	root *aaNode[T]
	cmp  func(i, j T) int64
}

func (tree *aaTree[T]) insert(elem T) bool {
	root, inserted := tree.root.insert(elem, tree.cmp)
	tree.root = root
	return inserted
}

func (tree *aaTree[T]) insertOrReplace(elem T) (T, bool) {
	root, old, replaced := tree.root.insertOrReplace(elem, tree.cmp)
	tree.root = root
	return old, replaced
}

// removeBy removes the payload located by the three-way callback:
// zero stops at the current payload, negative descends left, positive
// descends right. The façades build locate from their key comparator so
// that the engine never has to know about key-value pairs.
func (tree *aaTree[T]) removeBy(locate func(elem T) int64) (T, bool) {
	root, removed, ok := tree.root.removeBy(locate)
	tree.root = root
	return removed, ok
}

func (tree *aaTree[T]) removeMin() (T, bool) {
	root, removed, ok := tree.root.removeSuccessor()
	tree.root = root
	return removed, ok
}

func (tree *aaTree[T]) removeMax() (T, bool) {
	root, removed, ok := tree.root.removePredecessor()
	tree.root = root
	return removed, ok
}

// Ordinary BST descent. A new payload lands as a level-1 leaf and the
// unwind applies skew then split on every frame of the insertion path,
// which is enough because a single insertion can only violate p2/p3
// along that path. Equal payloads are rejected.
func (node *aaNode[T]) insert(elem T, cmp func(i, j T) int64) (*aaNode[T], bool) {
	if node == nil {
		return newAANode(elem), true
	}
	res := cmp(elem, node.elem)
	if res == 0 {
		return node, false
	}
	var inserted bool
	if res < 0 {
		node.left, inserted = node.left.insert(elem, cmp)
	} else {
		node.right, inserted = node.right.insert(elem, cmp)
	}
	if !inserted {
		return node, false
	}
	return node.skew().split(), true
}

// Same descent as insert, but an equal payload is swapped in place and
// the old payload handed back. The node keeps its position and level,
// so no repair is needed on the replace path.
func (node *aaNode[T]) insertOrReplace(elem T, cmp func(i, j T) int64) (*aaNode[T], T, bool) {
	var old T
	if node == nil {
		return newAANode(elem), old, false
	}
	res := cmp(elem, node.elem)
	if res == 0 {
		old, node.elem = node.elem, elem
		return node, old, true
	}
	var replaced bool
	if res < 0 {
		node.left, old, replaced = node.left.insertOrReplace(elem, cmp)
	} else {
		node.right, old, replaced = node.right.insertOrReplace(elem, cmp)
	}
	if replaced {
		return node, old, true
	}
	return node.skew().split(), old, false
}

func (node *aaNode[T]) removeBy(locate func(elem T) int64) (*aaNode[T], T, bool) {
	var removed T
	if node == nil {
		return nil, removed, false
	}
	var (
		out *aaNode[T]
		ok  bool
	)
	switch res := locate(node.elem); {
	case res == 0:
		removed, ok = node.elem, true
		out = node.spliceOut()
	case res < 0:
		node.left, removed, ok = node.left.removeBy(locate)
		out = node
	default:
		node.right, removed, ok = node.right.removeBy(locate)
		out = node
	}
	// cleanup runs on every frame of the unwind, found or not, because
	// a removal deeper down may have shortened this subtree.
	return out.removeCleanup(), removed, ok
}

// spliceOut drops the payload of this node and returns the replacement
// root of the subtree. A leaf hands over its right child (nil for true
// leaves); a node without a left child swaps in its successor; any
// other node swaps in its predecessor. Level and remaining children are
// kept.
func (node *aaNode[T]) spliceOut() *aaNode[T] {
	if node.level == 1 {
		return node.right
	}
	if node.left == nil {
		right, successor, _ := node.right.removeSuccessor()
		node.right = right
		node.elem = successor
		return node
	}
	left, predecessor, _ := node.left.removePredecessor()
	node.left = left
	node.elem = predecessor
	return node
}

// removeSuccessor extracts the smallest payload of this subtree,
// running cleanup on every level of its own unwind.
func (node *aaNode[T]) removeSuccessor() (*aaNode[T], T, bool) {
	var successor T
	if node == nil {
		return nil, successor, false
	}
	left, s, ok := node.left.removeSuccessor()
	if ok {
		node.left = left
		return node.removeCleanup(), s, true
	}
	return node.right.removeCleanup(), node.elem, true
}

// removePredecessor extracts the largest payload of this subtree,
// running cleanup on every level of its own unwind.
func (node *aaNode[T]) removePredecessor() (*aaNode[T], T, bool) {
	var predecessor T
	if node == nil {
		return nil, predecessor, false
	}
	right, p, ok := node.right.removePredecessor()
	if ok {
		node.right = right
		return node.removeCleanup(), p, true
	}
	return node.left.removeCleanup(), node.elem, true
}

// removeCleanup restores p1-p4 after a removal below this node. A
// removal may shorten a subtree by more than one level, so the repair
// is wider than the insertion repair: lower the level to
// min(left, right)+1 (forcing the right child down with it when
// needed), then skew the node, its right child and its right
// grandchild, then split the node and its right child. Levels are only
// ever forced down here, split alone may raise one again.
func (node *aaNode[T]) removeCleanup() *aaNode[T] {
	if node == nil {
		return nil
	}
	expected := min(node.left.nodeLevel(), node.right.nodeLevel()) + 1
	if expected < node.level {
		node.level = expected
		if expected < node.right.nodeLevel() {
			node.right.setLevel(expected)
		}
	}
	node = node.skew()
	node.right = node.right.skew()
	if node.right != nil {
		node.right.right = node.right.right.skew()
	}
	node = node.split()
	node.right = node.right.split()
	return node
}

// fromSortedIter builds an AA tree of n payloads from a single
// in-order pass over an ascending, deduplicated source in O(n) without
// any skew or split: the median split assigns levels bottom-up
// (level = left.level + 1) and such a tree satisfies p1-p4 by
// construction.
func fromSortedIter[T any](next func() T, n int) *aaNode[T] {
	switch n {
	case 0:
		return nil
	case 1:
		return newAANode(next())
	default:
		rootIdx := (n - 1) / 2
		left := fromSortedIter(next, rootIdx)
		elem := next()
		right := fromSortedIter(next, n-rootIdx-1)
		return &aaNode[T]{
			level: left.nodeLevel() + 1,
			elem:  elem,
			left:  left,
			right: right,
		}
	}
}

func fromSortedSlice[T any](elems []T) *aaNode[T] {
	idx := 0
	return fromSortedIter(func() T {
		elem := elems[idx]
		idx++
		return elem
	}, len(elems))
}
