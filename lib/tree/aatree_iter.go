package tree

// foreachNode drives an in-order pass with an explicit stack instead of
// recursion. Returning false from action stops the pass early.
func foreachNode[T any](root *aaNode[T], size int64, action func(idx int64, elem T) bool) {
	aux := root
	if size < 0 || aux == nil {
		return
	}

	stack := make([]*aaNode[T], 0, size>>1)
	defer func() {
		clear(stack)
	}()

	for ; aux != nil; aux = aux.left {
		stack = append(stack, aux)
	}

	idx := int64(0)
	for size = int64(len(stack)); size > 0; size = int64(len(stack)) {
		if aux = stack[size-1]; !action(idx, aux.elem) {
			return
		}
		idx++
		stack = stack[:size-1]
		if aux.right != nil {
			for aux = aux.right; aux != nil; aux = aux.left {
				stack = append(stack, aux)
			}
		}
	}
}

// iterNode returns a closure that yields payloads in order, one per
// call, until exhausted. The pending stack never holds more than one
// node per level of the descent, so its capacity follows the height
// bound of the tree rather than its size.
func iterNode[T any](root *aaNode[T]) func() (T, bool) {
	stack := make([]*aaNode[T], 0, int(root.nodeLevel())<<1+1)
	for aux := root; aux != nil; aux = aux.left {
		stack = append(stack, aux)
	}

	return func() (T, bool) {
		size := len(stack)
		if size == 0 {
			var zero T
			return zero, false
		}
		top := stack[size-1]
		stack = stack[:size-1]
		for aux := top.right; aux != nil; aux = aux.left {
			stack = append(stack, aux)
		}
		return top.elem, true
	}
}
