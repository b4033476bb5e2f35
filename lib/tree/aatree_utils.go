package tree

import (
	"errors"

	"go.uber.org/multierr"
)

// aa-tree rule validation utilities.

var (
	errAATreeLeafLevel       = errors.New("aa-tree level violation: leaf level is not one")
	errAATreeLeftLevel       = errors.New("aa-tree level violation: left child level not strictly less than parent")
	errAATreeRightLevel      = errors.New("aa-tree level violation: right child level greater than parent")
	errAATreeRightGrandLevel = errors.New("aa-tree level violation: right grandchild level not strictly less than grandparent")
	errAATreeMissingChild    = errors.New("aa-tree level violation: node above level one misses a child")
	errAATreeOrder           = errors.New("aa-tree order violation: payloads are not strictly ascending")
	errAATreeCount           = errors.New("aa-tree count violation: cached length differs from node count")
)

// levelViolationValidate checks the level rules of the whole subtree
// and reports every violated rule instead of stopping at the first one.
func (node *aaNode[T]) levelViolationValidate() error {
	if node == nil {
		return nil
	}
	var err error
	if node.isLeaf() && node.level != 1 {
		err = multierr.Append(err, errAATreeLeafLevel)
	}
	if node.level > 1 && (node.left == nil || node.right == nil) {
		err = multierr.Append(err, errAATreeMissingChild)
	}
	if node.left != nil && node.left.level >= node.level {
		err = multierr.Append(err, errAATreeLeftLevel)
	}
	if node.right != nil {
		if node.right.level > node.level {
			err = multierr.Append(err, errAATreeRightLevel)
		}
		if node.right.right != nil && node.right.right.level >= node.level {
			err = multierr.Append(err, errAATreeRightGrandLevel)
		}
	}
	return multierr.Combine(err,
		node.left.levelViolationValidate(),
		node.right.levelViolationValidate(),
	)
}

// orderViolationValidate replays the in-order pass and checks that cmp
// sees a strictly ascending payload sequence.
func orderViolationValidate[T any](root *aaNode[T], size int64, cmp func(i, j T) int64) error {
	var (
		prev T
		err  error
	)
	foreachNode(root, size, func(idx int64, elem T) bool {
		if idx > 0 && cmp(prev, elem) >= 0 {
			err = errAATreeOrder
			return false
		}
		prev = elem
		return true
	})
	return err
}

func countViolationValidate[T any](root *aaNode[T], size int64) error {
	nodes := int64(0)
	foreachNode(root, size, func(idx int64, elem T) bool {
		nodes++
		return true
	})
	if nodes != size {
		return errAATreeCount
	}
	return nil
}

// treeHeight walks the subtree and reports the number of nodes on the
// longest root-to-leaf path. Only used by validation and tests, the
// balancing itself never needs the real height.
func (node *aaNode[T]) treeHeight() int {
	if node == nil {
		return 0
	}
	return max(node.left.treeHeight(), node.right.treeHeight()) + 1
}

func (set *aaTreeSet[K]) Validate() error {
	size := set.Len()
	return multierr.Combine(
		set.tree.root.levelViolationValidate(),
		orderViolationValidate(set.tree.root, size, set.tree.cmp),
		countViolationValidate(set.tree.root, size),
	)
}

func (m *aaTreeMap[K, V]) Validate() error {
	size := m.Len()
	return multierr.Combine(
		m.tree.root.levelViolationValidate(),
		orderViolationValidate(m.tree.root, size, m.tree.cmp),
		countViolationValidate(m.tree.root, size),
	)
}
