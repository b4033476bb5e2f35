package tree

// aaNode is one occupied position of an AA tree. A nil *aaNode is the
// empty subtree, so every accessor that may see an empty subtree has to
// be nil-safe. The node owns its children exclusively; helpers that
// restructure the subtree take the receiver as the subtree root and
// return the new root to install in its place.
type aaNode[T any] struct {
	level uint8
	elem  T
	left  *aaNode[T]
	right *aaNode[T]
}

func newAANode[T any](elem T) *aaNode[T] {
	return &aaNode[T]{level: 1, elem: elem}
}

// nodeLevel reports the AA level of this subtree. Empty subtrees are level 0.
func (node *aaNode[T]) nodeLevel() uint8 {
	if node == nil {
		return 0
	}
	return node.level
}

func (node *aaNode[T]) isLeaf() bool {
	return node != nil && node.left == nil && node.right == nil
}

func (node *aaNode[T]) hasLeftChild() bool {
	return node != nil && node.left != nil
}

func (node *aaNode[T]) hasRightChild() bool {
	return node != nil && node.right != nil
}

func (node *aaNode[T]) setLevel(level uint8) {
	if node == nil {
		// impossible run to here
		panic( /* debug assertion */ "[aa-tree] set level on a nil node")
	}
	node.level = level
}

/*
	  L <--- S           S ---> T
	 / \      \     =>  /      / \
	A   B      R       A      B   R

skew repairs a left link that sits on the same level as its parent. The
left child L takes over this position, the node keeps L's former right
subtree B as its new left subtree. Levels never change.
*/
func (node *aaNode[T]) skew() *aaNode[T] {
	if node == nil || node.left == nil || node.left.level != node.level {
		return node
	}
	l := node.left
	node.left = l.right
	l.right = node
	return l
}

/*
	  S --> R --> X          R
	 /     /          =>    / \
	A     B                S   X
	                      / \
	                     A   B

split repairs two consecutive right links on the same level. The right
child R takes over this position one level higher, the node keeps R's
former left subtree B as its new right subtree. split is the only
operation that ever raises a level.
*/
func (node *aaNode[T]) split() *aaNode[T] {
	if node == nil || node.right == nil || node.right.right == nil ||
		node.right.right.level != node.level {
		return node
	}
	r := node.right
	node.right = r.left
	r.left = node
	r.level++
	return r
}
