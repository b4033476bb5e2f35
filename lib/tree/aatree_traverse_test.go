package tree

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestTraverse_StopSkipsOwnUpCall(t *testing.T) {
	root := bt(2, 2, lf(1), lf(3))
	visited := make([]int, 0, 2)
	res, ok := traverse(root,
		func(elem int) (TraverseDirection, int, bool) {
			if elem == 3 {
				return TraverseStop, elem * 10, true
			}
			return TraverseRight, 0, false
		},
		func(elem int, sub int, ok bool) (int, bool) {
			visited = append(visited, elem)
			return sub, ok
		},
	)
	require.True(t, ok)
	require.Equal(t, 30, res)
	// up runs for the passed-through root, not for the stop frame
	require.Equal(t, []int{2}, visited)
}

func TestTraverse_EmptySubtree(t *testing.T) {
	res, ok := traverse[int, string](nil,
		func(elem int) (TraverseDirection, string, bool) {
			t.Fatal("down must not run on an empty tree")
			return TraverseStop, "", false
		},
		func(elem int, sub string, ok bool) (string, bool) {
			return sub, ok
		},
	)
	require.False(t, ok)
	require.Equal(t, "", res)

	root := lf(7)
	res2, ok := traverse(root,
		func(elem int) (TraverseDirection, int, bool) {
			return TraverseLeft, 0, false
		},
		func(elem int, sub int, ok bool) (int, bool) {
			require.False(t, ok)
			return elem, true
		},
	)
	require.True(t, ok)
	require.Equal(t, 7, res2)
}

func TestTraverseMut_InPlaceMutation(t *testing.T) {
	root := bt(2, 20, lf(10), lf(30))
	elem := traverseMut(root,
		func(elem *int, hasLeft, hasRight bool) TraverseDirection {
			if *elem == 30 {
				return TraverseStop
			}
			if !hasRight {
				return TraverseStop
			}
			return TraverseRight
		},
		func(elem *int, sub *int) *int {
			return sub
		},
	)
	require.NotNil(t, elem)
	require.Equal(t, 30, *elem)
	*elem = 31
	require.Equal(t, 31, root.right.elem)

	require.Nil(t, traverseMut[int](nil,
		func(elem *int, hasLeft, hasRight bool) TraverseDirection {
			return TraverseStop
		},
		func(elem *int, sub *int) *int {
			return sub
		},
	))
}

func TestTraverse_InvalidDirection(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	root := lf(1)
	require.Panics(t, func() {
		traverse(root,
			func(elem int) (TraverseDirection, int, bool) {
				return TraverseDirection(42), 0, false
			},
			func(elem int, sub int, ok bool) (int, bool) {
				return sub, ok
			},
		)
	})
	require.Panics(t, func() {
		traverseMut(root,
			func(elem *int, hasLeft, hasRight bool) TraverseDirection {
				return TraverseDirection(-42)
			},
			func(elem *int, sub *int) *int {
				return sub
			},
		)
	})
	require.Equal(t, 2, logs.FilterMessage("recursive traversal detected and prohibited").Len())
}

func TestAACursor(t *testing.T) {
	tree := &aaTree[int]{cmp: orderedKeyCmp[int](false)}
	_, ok := tree.cursor()
	require.False(t, ok)

	tree.root = bt(2, 2, lf(1), lf(3))
	cursor, ok := tree.cursor()
	require.True(t, ok)
	require.Equal(t, 2, *cursor.peek())
	require.True(t, cursor.hasLeftChild())
	require.True(t, cursor.hasRightChild())

	cursor.turnLeft()
	require.Equal(t, 1, *cursor.peek())
	require.False(t, cursor.hasLeftChild())
	require.False(t, cursor.hasRightChild())
	require.Panics(t, func() { cursor.turnLeft() })
	require.Panics(t, func() { cursor.turnRight() })

	cursor, _ = tree.cursor()
	cursor.turnRight()
	require.Equal(t, 3, *cursor.peek())

	// a cursor writes through to the tree
	*cursor.peek() = 4
	require.Equal(t, 4, tree.root.right.elem)
}
