// Package avltree implements AVLTree, a binary search tree keeping the heights of the two subtrees of every node
// within one of each other. Insert and Remove restore the balance on the way back up from the changed leaf with
// single or double rotations. Ordering comes from a comparator and values comparing equal are stored once.
package avltree

import (
	"cmp"
	"github.com/gostonefire/containers"
	"github.com/gostonefire/containers/internal/traverse"
)

// Stat - Snapshot of the tree shape
//   - Size is the number of values
//   - Height is the number of nodes on the longest root to leaf path, 0 for an empty tree
//   - Rotations is the number of single rotations done since creation or last Clear, a double rotation counts twice
type Stat struct {
	Size      int
	Height    int
	Rotations int
}

type node[T any] struct {
	value  T
	left   *node[T]
	right  *node[T]
	height int
}

// AVLTree - The main implementation struct
type AVLTree[T any] struct {
	root      *node[T]
	compare   func(a, b T) int
	size      int
	rotations int
}

// NewAVLTree - Returns a new empty AVLTree.
//   - compare must return a negative number when a sorts before b, a positive number when a sorts after b and 0
//     when they are the same value
//
// It returns:
//   - avlTree is a pointer to an AVLTree struct
//   - err is of type containers.InvalidArgument if compare is nil
func NewAVLTree[T any](compare func(a, b T) int) (avlTree *AVLTree[T], err error) {
	if compare == nil {
		err = containers.NewInvalidArgument("a compare function must be given")
		return
	}

	avlTree = &AVLTree[T]{compare: compare}

	return
}

// NewOrderedAVLTree - Returns a new empty AVLTree ordered by the natural order of T (cmp.Compare)
func NewOrderedAVLTree[T cmp.Ordered]() *AVLTree[T] {
	return &AVLTree[T]{compare: cmp.Compare[T]}
}

// Size - Returns the number of values
func (A *AVLTree[T]) Size() int {
	return A.size
}

// IsEmpty - Returns true if the tree holds no values
func (A *AVLTree[T]) IsEmpty() bool {
	return A.size == 0
}

// Insert - Adds value to the tree and rebalances. O(log n).
// It returns inserted as false, leaving the tree untouched, if a value comparing equal already exists.
func (A *AVLTree[T]) Insert(value T) (inserted bool) {
	A.root, inserted = A.insert(A.root, value)
	if inserted {
		A.size++
	}

	return
}

// Remove - Removes the value comparing equal to value and rebalances. O(log n).
// It returns removed as false if no such value exists.
func (A *AVLTree[T]) Remove(value T) (removed bool) {
	A.root, removed = A.remove(A.root, value)
	if removed {
		A.size--
	}

	return
}

// Search - Returns true if a value comparing equal to value exists
func (A *AVLTree[T]) Search(value T) bool {
	n := A.root
	for n != nil {
		c := A.compare(value, n.value)
		switch {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return true
		}
	}

	return false
}

// Min - Returns the smallest value, ok is false if the tree is empty
func (A *AVLTree[T]) Min() (value T, ok bool) {
	if A.root == nil {
		return
	}

	return minNode(A.root).value, true
}

// Max - Returns the largest value, ok is false if the tree is empty
func (A *AVLTree[T]) Max() (value T, ok bool) {
	n := A.root
	if n == nil {
		return
	}
	for n.right != nil {
		n = n.right
	}

	return n.value, true
}

// InOrder - Calls callback for every value in ascending order
func (A *AVLTree[T]) InOrder(callback func(value T)) {
	traverse.InOrder(A.root, nil, nodeChildren[T](), func(n *node[T]) { callback(n.value) })
}

// PreOrder - Calls callback for every node value before the values of its subtrees, left subtree first
func (A *AVLTree[T]) PreOrder(callback func(value T)) {
	traverse.PreOrder(A.root, nil, nodeChildren[T](), func(n *node[T]) { callback(n.value) })
}

// PostOrder - Calls callback for every node value after the values of its subtrees, left subtree first
func (A *AVLTree[T]) PostOrder(callback func(value T)) {
	traverse.PostOrder(A.root, nil, nodeChildren[T](), func(n *node[T]) { callback(n.value) })
}

// ToArray - Returns all values in ascending order
func (A *AVLTree[T]) ToArray() (values []T) {
	values = make([]T, 0, A.size)
	A.InOrder(func(value T) {
		values = append(values, value)
	})

	return
}

// Clear - Removes all values
func (A *AVLTree[T]) Clear() {
	A.root = nil
	A.size = 0
	A.rotations = 0
}

// Stat - Returns a snapshot of the tree shape
func (A *AVLTree[T]) Stat() Stat {
	return Stat{
		Size:      A.size,
		Height:    height(A.root),
		Rotations: A.rotations,
	}
}

// insert - Inserts value in the subtree rooted at n and returns the new, balanced, subtree root
func (A *AVLTree[T]) insert(n *node[T], value T) (root *node[T], inserted bool) {
	if n == nil {
		return &node[T]{value: value, height: 1}, true
	}

	c := A.compare(value, n.value)
	switch {
	case c < 0:
		n.left, inserted = A.insert(n.left, value)
	case c > 0:
		n.right, inserted = A.insert(n.right, value)
	default:
		return n, false
	}

	if !inserted {
		return n, false
	}

	return A.balance(n), true
}

// remove - Removes value from the subtree rooted at n and returns the new, balanced, subtree root
func (A *AVLTree[T]) remove(n *node[T], value T) (root *node[T], removed bool) {
	if n == nil {
		return nil, false
	}

	c := A.compare(value, n.value)
	switch {
	case c < 0:
		n.left, removed = A.remove(n.left, value)
	case c > 0:
		n.right, removed = A.remove(n.right, value)
	default:
		removed = true
		if n.left == nil {
			return n.right, true
		}
		if n.right == nil {
			return n.left, true
		}

		successor := minNode(n.right)
		n.value = successor.value
		n.right, _ = A.remove(n.right, successor.value)
	}

	if !removed {
		return n, false
	}

	return A.balance(n), true
}

// balance - Updates the height of n and rotates if its balance factor left the range [-1, 1]
func (A *AVLTree[T]) balance(n *node[T]) *node[T] {
	updateHeight(n)

	bf := balanceFactor(n)
	if bf > 1 {
		if balanceFactor(n.left) < 0 {
			n.left = A.rotateLeft(n.left)
		}
		return A.rotateRight(n)
	}
	if bf < -1 {
		if balanceFactor(n.right) > 0 {
			n.right = A.rotateRight(n.right)
		}
		return A.rotateLeft(n)
	}

	return n
}

//	  x              y
//	 / \            / \
//	a   y    =>    x   c
//	   / \        / \
//	  b   c      a   b
func (A *AVLTree[T]) rotateLeft(x *node[T]) *node[T] {
	y := x.right
	x.right = y.left
	y.left = x
	updateHeight(x)
	updateHeight(y)
	A.rotations++

	return y
}

//	    y          x
//	   / \        / \
//	  x   c  =>  a   y
//	 / \            / \
//	a   b          b   c
func (A *AVLTree[T]) rotateRight(y *node[T]) *node[T] {
	x := y.left
	y.left = x.right
	x.right = y
	updateHeight(y)
	updateHeight(x)
	A.rotations++

	return x
}

func height[T any](n *node[T]) int {
	if n == nil {
		return 0
	}
	return n.height
}

func updateHeight[T any](n *node[T]) {
	n.height = 1 + max(height(n.left), height(n.right))
}

func balanceFactor[T any](n *node[T]) int {
	return height(n.left) - height(n.right)
}

func minNode[T any](n *node[T]) *node[T] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func nodeChildren[T any]() traverse.Children[*node[T]] {
	return traverse.Children[*node[T]]{
		Left:  func(n *node[T]) *node[T] { return n.left },
		Right: func(n *node[T]) *node[T] { return n.right },
	}
}
