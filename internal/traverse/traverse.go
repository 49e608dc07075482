// Package traverse walks binary trees depth first without recursion, using a stack.Stack for the pending nodes.
// Nodes are addressed through accessor functions so the walks work for any node type, and leaf is the value that
// marks an absent child (nil for plain pointers, or a sentinel).
package traverse

import "github.com/gostonefire/containers/stack"

// Children - Accessors for the left and right child of a node
type Children[N comparable] struct {
	Left  func(n N) N
	Right func(n N) N
}

// InOrder - Visits the left subtree, the node, then the right subtree
func InOrder[N comparable](root, leaf N, c Children[N], visit func(n N)) {
	pending := stack.NewDefaultStack[N]()
	current := root
	for current != leaf || !pending.IsEmpty() {
		for current != leaf {
			pending.Push(current)
			current = c.Left(current)
		}

		current, _ = pending.Pop()
		visit(current)
		current = c.Right(current)
	}
}

// PreOrder - Visits the node, the left subtree, then the right subtree
func PreOrder[N comparable](root, leaf N, c Children[N], visit func(n N)) {
	if root == leaf {
		return
	}

	pending := stack.NewDefaultStack[N]()
	pending.Push(root)
	for !pending.IsEmpty() {
		n, _ := pending.Pop()
		visit(n)

		// Right first so that left is popped first
		if r := c.Right(n); r != leaf {
			pending.Push(r)
		}
		if l := c.Left(n); l != leaf {
			pending.Push(l)
		}
	}
}

// PostOrder - Visits the left subtree, the right subtree, then the node
func PostOrder[N comparable](root, leaf N, c Children[N], visit func(n N)) {
	pending := stack.NewDefaultStack[N]()
	current := root
	last := leaf
	for current != leaf || !pending.IsEmpty() {
		if current != leaf {
			pending.Push(current)
			current = c.Left(current)
			continue
		}

		top, _ := pending.Peek()
		if r := c.Right(top); r != leaf && r != last {
			current = r
			continue
		}

		visit(top)
		last, _ = pending.Pop()
	}
}
