// Package rbtree implements RedBlackTree, a binary search tree where every node is red or black, the root is
// black, no red node has a red child and every path from a node down to its leaves passes the same number of black
// nodes. Insert and Remove restore those rules with recoloring and rotations. Ordering comes from a comparator and
// values comparing equal are stored once.
package rbtree

import (
	"cmp"
	"github.com/gostonefire/containers"
	"github.com/gostonefire/containers/internal/traverse"
)

// Color - The color of a node
type Color uint8

// Node colors, new nodes start out Red
const (
	Red Color = iota
	Black
)

// String - Returns RED or BLACK
func (C Color) String() string {
	if C == Red {
		return "RED"
	}
	return "BLACK"
}

// Stat - Snapshot of the tree shape
//   - Size is the number of values
//   - Height is the number of nodes on the longest root to leaf path, 0 for an empty tree
//   - BlackHeight is the number of black nodes on every root to leaf path
//   - Rotations is the number of rotations done since creation or last Clear
type Stat struct {
	Size        int
	Height      int
	BlackHeight int
	Rotations   int
}

type node[T any] struct {
	value  T
	color  Color
	left   *node[T]
	right  *node[T]
	parent *node[T]
}

// RedBlackTree - The main implementation struct.
// Absent children and the parent of the root all point to one black sentinel node owned by the tree.
type RedBlackTree[T any] struct {
	root      *node[T]
	leaf      *node[T]
	compare   func(a, b T) int
	size      int
	rotations int
}

// NewRedBlackTree - Returns a new empty RedBlackTree.
//   - compare must return a negative number when a sorts before b, a positive number when a sorts after b and 0
//     when they are the same value
//
// It returns:
//   - rbTree is a pointer to a RedBlackTree struct
//   - err is of type containers.InvalidArgument if compare is nil
func NewRedBlackTree[T any](compare func(a, b T) int) (rbTree *RedBlackTree[T], err error) {
	if compare == nil {
		err = containers.NewInvalidArgument("a compare function must be given")
		return
	}

	rbTree = newTree(compare)

	return
}

// NewOrderedRedBlackTree - Returns a new empty RedBlackTree ordered by the natural order of T (cmp.Compare)
func NewOrderedRedBlackTree[T cmp.Ordered]() *RedBlackTree[T] {
	return newTree(cmp.Compare[T])
}

func newTree[T any](compare func(a, b T) int) *RedBlackTree[T] {
	leaf := &node[T]{color: Black}
	return &RedBlackTree[T]{root: leaf, leaf: leaf, compare: compare}
}

// Size - Returns the number of values
func (R *RedBlackTree[T]) Size() int {
	return R.size
}

// IsEmpty - Returns true if the tree holds no values
func (R *RedBlackTree[T]) IsEmpty() bool {
	return R.size == 0
}

// Insert - Adds value as a red leaf and restores the red-black rules. O(log n).
// It returns inserted as false, leaving the tree untouched, if a value comparing equal already exists.
func (R *RedBlackTree[T]) Insert(value T) (inserted bool) {
	parent := R.leaf
	current := R.root
	c := 0
	for current != R.leaf {
		c = R.compare(value, current.value)
		if c == 0 {
			return
		}
		parent = current
		if c < 0 {
			current = current.left
		} else {
			current = current.right
		}
	}

	n := &node[T]{value: value, color: Red, left: R.leaf, right: R.leaf, parent: parent}
	switch {
	case parent == R.leaf:
		R.root = n
	case c < 0:
		parent.left = n
	default:
		parent.right = n
	}

	R.size++
	R.insertFixup(n)

	return true
}

// Remove - Removes the value comparing equal to value and restores the red-black rules. O(log n).
// It returns removed as false if no such value exists.
func (R *RedBlackTree[T]) Remove(value T) (removed bool) {
	n := R.search(value)
	if n == R.leaf {
		return
	}

	R.deleteNode(n)
	R.size--

	return true
}

// Search - Returns true if a value comparing equal to value exists
func (R *RedBlackTree[T]) Search(value T) bool {
	return R.search(value) != R.leaf
}

// Min - Returns the smallest value, ok is false if the tree is empty
func (R *RedBlackTree[T]) Min() (value T, ok bool) {
	if R.root == R.leaf {
		return
	}

	return R.minNode(R.root).value, true
}

// Max - Returns the largest value, ok is false if the tree is empty
func (R *RedBlackTree[T]) Max() (value T, ok bool) {
	n := R.root
	if n == R.leaf {
		return
	}
	for n.right != R.leaf {
		n = n.right
	}

	return n.value, true
}

// InOrder - Calls callback for every value in ascending order
func (R *RedBlackTree[T]) InOrder(callback func(value T)) {
	traverse.InOrder(R.root, R.leaf, nodeChildren[T](), func(n *node[T]) { callback(n.value) })
}

// PreOrder - Calls callback for every node value before the values of its subtrees, left subtree first
func (R *RedBlackTree[T]) PreOrder(callback func(value T)) {
	traverse.PreOrder(R.root, R.leaf, nodeChildren[T](), func(n *node[T]) { callback(n.value) })
}

// PostOrder - Calls callback for every node value after the values of its subtrees, left subtree first
func (R *RedBlackTree[T]) PostOrder(callback func(value T)) {
	traverse.PostOrder(R.root, R.leaf, nodeChildren[T](), func(n *node[T]) { callback(n.value) })
}

// ToArray - Returns all values in ascending order
func (R *RedBlackTree[T]) ToArray() (values []T) {
	values = make([]T, 0, R.size)
	R.InOrder(func(value T) {
		values = append(values, value)
	})

	return
}

// Clear - Removes all values
func (R *RedBlackTree[T]) Clear() {
	R.leaf.parent = nil
	R.root = R.leaf
	R.size = 0
	R.rotations = 0
}

// Stat - Returns a snapshot of the tree shape
func (R *RedBlackTree[T]) Stat() Stat {
	blackHeight := 0
	for n := R.root; n != R.leaf; n = n.left {
		if n.color == Black {
			blackHeight++
		}
	}

	return Stat{
		Size:        R.size,
		Height:      R.height(R.root),
		BlackHeight: blackHeight,
		Rotations:   R.rotations,
	}
}

func (R *RedBlackTree[T]) height(n *node[T]) int {
	if n == R.leaf {
		return 0
	}
	return 1 + max(R.height(n.left), R.height(n.right))
}

func (R *RedBlackTree[T]) search(value T) *node[T] {
	n := R.root
	for n != R.leaf {
		c := R.compare(value, n.value)
		switch {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n
		}
	}

	return R.leaf
}

func (R *RedBlackTree[T]) minNode(n *node[T]) *node[T] {
	for n.left != R.leaf {
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
