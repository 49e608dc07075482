package rbtree

// leftRotate - Makes the right child y of x the root of the subtree, x becomes the left child of y and the left
// subtree of y becomes the right subtree of x. Parent links of all three and the link from the old parent are fixed.
func (R *RedBlackTree[T]) leftRotate(x *node[T]) {
	y := x.right
	x.right = y.left
	if y.left != R.leaf {
		y.left.parent = x
	}
	y.parent = x.parent
	switch {
	case x.parent == R.leaf:
		R.root = y
	case x == x.parent.left:
		x.parent.left = y
	default:
		x.parent.right = y
	}
	y.left = x
	x.parent = y
	R.rotations++
}

// rightRotate - Mirror of leftRotate
func (R *RedBlackTree[T]) rightRotate(y *node[T]) {
	x := y.left
	y.left = x.right
	if x.right != R.leaf {
		x.right.parent = y
	}
	x.parent = y.parent
	switch {
	case y.parent == R.leaf:
		R.root = x
	case y == y.parent.right:
		y.parent.right = x
	default:
		y.parent.left = x
	}
	x.right = y
	y.parent = x
	R.rotations++
}

// insertFixup - Climbs from the new red node z while its parent is red
func (R *RedBlackTree[T]) insertFixup(z *node[T]) {
	for z.parent.color == Red {
		grandparent := z.parent.parent
		if z.parent == grandparent.left {
			uncle := grandparent.right
			if uncle.color == Red {
				// Recolor and continue from the grandparent
				z.parent.color = Black
				uncle.color = Black
				grandparent.color = Red
				z = grandparent
				continue
			}
			if z == z.parent.right {
				// Turn the inner grandchild into an outer one
				z = z.parent
				R.leftRotate(z)
			}
			z.parent.color = Black
			z.parent.parent.color = Red
			R.rightRotate(z.parent.parent)
		} else {
			uncle := grandparent.left
			if uncle.color == Red {
				z.parent.color = Black
				uncle.color = Black
				grandparent.color = Red
				z = grandparent
				continue
			}
			if z == z.parent.left {
				z = z.parent
				R.rightRotate(z)
			}
			z.parent.color = Black
			z.parent.parent.color = Red
			R.leftRotate(z.parent.parent)
		}
	}

	R.root.color = Black
}

// transplant - Replaces the subtree rooted at u with the subtree rooted at v.
// v.parent is set even when v is the sentinel, deleteFixup relies on it.
func (R *RedBlackTree[T]) transplant(u, v *node[T]) {
	switch {
	case u.parent == R.leaf:
		R.root = v
	case u == u.parent.left:
		u.parent.left = v
	default:
		u.parent.right = v
	}
	v.parent = u.parent
}

// deleteNode - Unlinks z, splicing in its in-order successor when it has two children
func (R *RedBlackTree[T]) deleteNode(z *node[T]) {
	y := z
	yOriginalColor := y.color
	var x *node[T]

	switch {
	case z.left == R.leaf:
		x = z.right
		R.transplant(z, z.right)
	case z.right == R.leaf:
		x = z.left
		R.transplant(z, z.left)
	default:
		y = R.minNode(z.right)
		yOriginalColor = y.color
		x = y.right
		if y.parent == z {
			x.parent = y
		} else {
			R.transplant(y, y.right)
			y.right = z.right
			y.right.parent = y
		}
		R.transplant(z, y)
		y.left = z.left
		y.left.parent = y
		y.color = z.color
	}

	if yOriginalColor == Black {
		R.deleteFixup(x)
	}

	R.leaf.parent = nil
}

// deleteFixup - Moves the extra black carried by x up the tree until it can be absorbed
func (R *RedBlackTree[T]) deleteFixup(x *node[T]) {
	for x != R.root && x.color == Black {
		if x == x.parent.left {
			w := x.parent.right
			if w.color == Red {
				// Red sibling, rotate to get a black one
				w.color = Black
				x.parent.color = Red
				R.leftRotate(x.parent)
				w = x.parent.right
			}
			if w.left.color == Black && w.right.color == Black {
				// Both nephews black, push the extra black up
				w.color = Red
				x = x.parent
				continue
			}
			if w.right.color == Black {
				// Near nephew red, rotate it to the far side
				w.left.color = Black
				w.color = Red
				R.rightRotate(w)
				w = x.parent.right
			}
			// Far nephew red, absorbs the extra black
			w.color = x.parent.color
			x.parent.color = Black
			w.right.color = Black
			R.leftRotate(x.parent)
			x = R.root
		} else {
			w := x.parent.left
			if w.color == Red {
				w.color = Black
				x.parent.color = Red
				R.rightRotate(x.parent)
				w = x.parent.left
			}
			if w.right.color == Black && w.left.color == Black {
				w.color = Red
				x = x.parent
				continue
			}
			if w.left.color == Black {
				w.right.color = Black
				w.color = Red
				R.leftRotate(w)
				w = x.parent.left
			}
			w.color = x.parent.color
			x.parent.color = Black
			w.left.color = Black
			R.rightRotate(x.parent)
			x = R.root
		}
	}

	x.color = Black
}
