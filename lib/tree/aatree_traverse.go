package tree

// traverse implements guided descent with bottom-up combination. The
// down callback inspects a payload and picks TraverseLeft,
// TraverseRight or TraverseStop; on stop its result ends the descent.
// While unwinding, the up callback combines each frame's payload with
// the result of the subtree already visited, so a search may overshoot
// and still hand the best candidate back up (e.g. "largest key <= x").
// Reaching an empty subtree yields (zero, false) to the first up call.
// Lookup, floor/ceiling and first/last accessors all share this walk.
func traverse[T, R any](
	node *aaNode[T],
	down func(elem T) (TraverseDirection, R, bool),
	up func(elem T, sub R, ok bool) (R, bool),
) (R, bool) {
	if node == nil {
		var zero R
		return zero, false
	}
	dir, res, ok := down(node.elem)
	switch dir {
	case TraverseStop:
		return res, ok
	case TraverseLeft:
		res, ok = traverse(node.left, down, up)
	case TraverseRight:
		res, ok = traverse(node.right, down, up)
	default:
		treeLogger.Load().Error("recursive traversal detected and prohibited")
		// impossible run to here
		panic( /* debug assertion */ "[aa-tree] unknown traverse direction")
	}
	return up(node.elem, res, ok)
}

// traverseMut is the mutable flavor of traverse: the down callback
// receives the payload in place plus the structural context it needs to
// steer without stepping past a leaf, and the stopped-at payload is
// returned for in-place mutation. Mutating a payload in a way that
// changes its order relative to the other payloads is a logic error.
func traverseMut[T any](
	node *aaNode[T],
	down func(elem *T, hasLeft, hasRight bool) TraverseDirection,
	up func(elem *T, sub *T) *T,
) *T {
	if node == nil {
		return nil
	}
	switch dir := down(&node.elem, node.left != nil, node.right != nil); dir {
	case TraverseStop:
		return &node.elem
	case TraverseLeft:
		return up(&node.elem, traverseMut(node.left, down, up))
	case TraverseRight:
		return up(&node.elem, traverseMut(node.right, down, up))
	default:
		treeLogger.Load().Error("recursive traversal detected and prohibited")
		// impossible run to here
		panic( /* debug assertion */ "[aa-tree] unknown traverse direction")
	}
}

// aaCursor steps through occupied nodes turn by turn, so first/last
// style accessors don't re-walk from the root for every step. Turning
// towards a missing child is a usage error.
type aaCursor[T any] struct {
	cur *aaNode[T]
}

func (tree *aaTree[T]) cursor() (*aaCursor[T], bool) {
	if tree.root == nil {
		return nil, false
	}
	return &aaCursor[T]{cur: tree.root}, true
}

func (c *aaCursor[T]) peek() *T {
	return &c.cur.elem
}

func (c *aaCursor[T]) hasLeftChild() bool {
	return c.cur.hasLeftChild()
}

func (c *aaCursor[T]) hasRightChild() bool {
	return c.cur.hasRightChild()
}

func (c *aaCursor[T]) turnLeft() {
	if !c.cur.hasLeftChild() {
		panic( /* debug assertion */ "[aa-tree] cursor turns left into a nil child")
	}
	c.cur = c.cur.left
}

func (c *aaCursor[T]) turnRight() {
	if !c.cur.hasRightChild() {
		panic( /* debug assertion */ "[aa-tree] cursor turns right into a nil child")
	}
	c.cur = c.cur.right
}
