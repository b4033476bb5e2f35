package tree

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevelViolationValidate(t *testing.T) {
	var nilNode *aaNode[int]
	require.NoError(t, nilNode.levelViolationValidate())
	require.NoError(t, lf(1).levelViolationValidate())

	leaf := bt[int](2, 1, nil, nil)
	err := leaf.levelViolationValidate()
	require.ErrorIs(t, err, errAATreeLeafLevel)
	require.ErrorIs(t, err, errAATreeMissingChild)

	sameLevelLeft := bt(1, 2, lf(1), nil)
	require.ErrorIs(t, sameLevelLeft.levelViolationValidate(), errAATreeLeftLevel)

	raisedRight := bt(1, 1, nil, bt(2, 3, lf(2), lf(4)))
	require.ErrorIs(t, raisedRight.levelViolationValidate(), errAATreeRightLevel)

	doubleRight := bt(1, 1, nil, bt(1, 2, nil, lf(3)))
	require.ErrorIs(t, doubleRight.levelViolationValidate(), errAATreeRightGrandLevel)

	// one same-level right link is legal
	require.NoError(t, bt(2, 2, lf(1), bt(2, 4, lf(3), lf(5))).levelViolationValidate())
}

func TestOrderViolationValidate(t *testing.T) {
	cmp := orderedKeyCmp[int](false)
	require.NoError(t, orderViolationValidate[int](nil, 0, cmp))

	sorted := bt(2, 2, lf(1), lf(3))
	require.NoError(t, orderViolationValidate(sorted, 3, cmp))

	swapped := bt(2, 2, lf(3), lf(1))
	require.ErrorIs(t, orderViolationValidate(swapped, 3, cmp), errAATreeOrder)

	duplicated := bt(2, 1, lf(1), lf(2))
	require.ErrorIs(t, orderViolationValidate(duplicated, 3, cmp), errAATreeOrder)
}

func TestCountViolationValidate(t *testing.T) {
	root := bt(2, 2, lf(1), lf(3))
	require.NoError(t, countViolationValidate(root, 3))
	require.ErrorIs(t, countViolationValidate(root, 2), errAATreeCount)

	set := NewAATreeSet[int]()
	for i := 1; i <= 3; i++ {
		set.Insert(i)
	}
	atomic.AddInt64(&set.(*aaTreeSet[int]).count, 1)
	require.ErrorIs(t, set.Validate(), errAATreeCount)
}

func TestTreeHeight(t *testing.T) {
	var nilNode *aaNode[int]
	require.Equal(t, 0, nilNode.treeHeight())
	require.Equal(t, 1, lf(1).treeHeight())
	require.Equal(t, 2, bt(2, 2, lf(1), lf(3)).treeHeight())
	require.Equal(t, 3, bt(2, 3, bt(1, 1, nil, lf(2)), bt(1, 4, nil, lf(5))).treeHeight())
}
