//go:build unit

package avltree

import (
	"errors"
	"github.com/gostonefire/containers"
	"github.com/stretchr/testify/assert"
	"math/rand"
	"sort"
	"strings"
	"testing"
)

// checkAVL - Returns the height of the subtree rooted at n, failing the test if heights are stale, if any node is
// out of balance or if values are out of order
func checkAVL[T any](t *testing.T, tree *AVLTree[T], n *node[T]) int {
	if n == nil {
		return 0
	}

	hl := checkAVL(t, tree, n.left)
	hr := checkAVL(t, tree, n.right)
	if n.left != nil {
		assert.Negative(t, tree.compare(n.left.value, n.value), "left child sorts before node")
	}
	if n.right != nil {
		assert.Positive(t, tree.compare(n.right.value, n.value), "right child sorts after node")
	}
	assert.LessOrEqual(t, hl-hr, 1, "balance factor at most 1")
	assert.GreaterOrEqual(t, hl-hr, -1, "balance factor at least -1")
	assert.Equal(t, 1+max(hl, hr), n.height, "stored height")

	return n.height
}

func preOrder[T any](tree *AVLTree[T]) (out []T) {
	tree.PreOrder(func(value T) { out = append(out, value) })
	return
}

func TestNewAVLTree(t *testing.T) {
	t.Run("error on missing comparator", func(t *testing.T) {
		// Execute
		_, err := NewAVLTree[int](nil)

		// Check
		assert.True(t, errors.Is(err, containers.InvalidArgument{}), "invalid argument")
	})

	t.Run("custom comparator", func(t *testing.T) {
		// Prepare
		tree, err := NewAVLTree(func(a, b string) int { return strings.Compare(strings.ToLower(a), strings.ToLower(b)) })
		assert.NoError(t, err, "create tree")

		// Execute
		tree.Insert("b")
		tree.Insert("A")
		inserted := tree.Insert("B")

		// Check
		assert.False(t, inserted, "equal by comparator")
		assert.Equal(t, []string{"A", "b"}, tree.ToArray(), "ordered by comparator")
		assert.True(t, tree.Search("a"), "search by comparator")
	})

	t.Run("reverse order", func(t *testing.T) {
		// Prepare
		tree, _ := NewAVLTree(func(a, b int) int { return b - a })

		// Execute
		for _, v := range []int{3, 1, 2} {
			tree.Insert(v)
		}

		// Check
		assert.Equal(t, []int{3, 2, 1}, tree.ToArray(), "descending")
		first, _ := tree.Min()
		assert.Equal(t, 3, first, "min by comparator")
	})
}

func TestAVLTree_Insert(t *testing.T) {
	t.Run("rebalances with single and double rotations", func(t *testing.T) {
		// Prepare
		tree := NewOrderedAVLTree[int]()

		// Execute
		for _, v := range []int{10, 20, 30, 40, 50, 25} {
			tree.Insert(v)
		}

		// Check
		checkAVL(t, tree, tree.root)
		assert.Equal(t, 30, tree.root.value, "root after RL case")
		assert.Equal(t, []int{30, 20, 10, 25, 40, 50}, preOrder(tree), "shape")
		assert.Equal(t, 3, tree.Stat().Height, "height")
		assert.Equal(t, 4, tree.Stat().Rotations, "two single plus one double rotation")
	})

	t.Run("LL case", func(t *testing.T) {
		// Prepare
		tree := NewOrderedAVLTree[int]()

		// Execute
		for _, v := range []int{30, 20, 10} {
			tree.Insert(v)
		}

		// Check
		assert.Equal(t, []int{20, 10, 30}, preOrder(tree), "right rotation")
	})

	t.Run("LR case", func(t *testing.T) {
		// Prepare
		tree := NewOrderedAVLTree[int]()

		// Execute
		for _, v := range []int{30, 10, 20} {
			tree.Insert(v)
		}

		// Check
		assert.Equal(t, []int{20, 10, 30}, preOrder(tree), "left then right rotation")
	})

	t.Run("duplicates are ignored", func(t *testing.T) {
		// Prepare
		tree := NewOrderedAVLTree[int]()
		tree.Insert(1)
		tree.Insert(2)

		// Execute
		inserted := tree.Insert(1)

		// Check
		assert.False(t, inserted, "not inserted")
		assert.Equal(t, 2, tree.Size(), "size")
		assert.Equal(t, []int{1, 2}, tree.ToArray(), "contents")
	})

	t.Run("ascending inserts stay logarithmic", func(t *testing.T) {
		// Prepare
		tree := NewOrderedAVLTree[int]()

		// Execute
		for i := 0; i < 1023; i++ {
			tree.Insert(i)
		}

		// Check
		checkAVL(t, tree, tree.root)
		assert.LessOrEqual(t, tree.Stat().Height, 14, "within 1.44 log2(n)")
	})
}

func TestAVLTree_Traversals(t *testing.T) {
	t.Run("in pre and post order", func(t *testing.T) {
		// Prepare
		tree := NewOrderedAVLTree[int]()
		for _, v := range []int{10, 5, 15, 7} {
			tree.Insert(v)
		}
		var in, post []int

		// Execute
		tree.InOrder(func(v int) { in = append(in, v) })
		pre := preOrder(tree)
		tree.PostOrder(func(v int) { post = append(post, v) })

		// Check
		assert.Equal(t, []int{5, 7, 10, 15}, in, "in-order")
		assert.Equal(t, []int{10, 5, 7, 15}, pre, "pre-order")
		assert.Equal(t, []int{7, 5, 15, 10}, post, "post-order")
	})

	t.Run("restartable", func(t *testing.T) {
		// Prepare
		tree := NewOrderedAVLTree[int]()
		for _, v := range []int{2, 1, 3} {
			tree.Insert(v)
		}

		// Execute
		first := tree.ToArray()
		second := tree.ToArray()

		// Check
		assert.Equal(t, first, second, "same result every time")
	})
}

func TestAVLTree_Remove(t *testing.T) {
	t.Run("leaf, one child and two children", func(t *testing.T) {
		// Prepare
		tree := NewOrderedAVLTree[int]()
		for _, v := range []int{50, 30, 70, 20, 40, 60, 80, 10} {
			tree.Insert(v)
		}

		// Execute
		removedLeaf := tree.Remove(40)
		removedOtherLeaf := tree.Remove(80)
		removedOneChild := tree.Remove(70)
		removedTwoChildren := tree.Remove(50)

		// Check
		checkAVL(t, tree, tree.root)
		assert.True(t, removedLeaf && removedOtherLeaf, "leaves removed")
		assert.True(t, removedOneChild, "node with one child removed")
		assert.True(t, removedTwoChildren, "node with two children removed")
		assert.Equal(t, []int{10, 20, 30, 60}, tree.ToArray(), "contents")
		assert.Equal(t, []int{20, 10, 60, 30}, preOrder(tree), "successor moved up then rebalanced")
		assert.Equal(t, 4, tree.Size(), "size")
	})

	t.Run("rebalances after removal", func(t *testing.T) {
		// Prepare
		tree := NewOrderedAVLTree[int]()
		for _, v := range []int{20, 10, 30, 40} {
			tree.Insert(v)
		}

		// Execute
		tree.Remove(10)

		// Check
		checkAVL(t, tree, tree.root)
		assert.Equal(t, []int{30, 20, 40}, preOrder(tree), "left rotation at root")
	})

	t.Run("missing value", func(t *testing.T) {
		// Prepare
		tree := NewOrderedAVLTree[int]()
		tree.Insert(1)

		// Execute
		removed := tree.Remove(2)

		// Check
		assert.False(t, removed, "not removed")
		assert.Equal(t, 1, tree.Size(), "size unchanged")
	})

	t.Run("last value", func(t *testing.T) {
		// Prepare
		tree := NewOrderedAVLTree[int]()
		tree.Insert(1)

		// Execute
		tree.Remove(1)

		// Check
		_, okMin := tree.Min()
		_, okMax := tree.Max()
		assert.True(t, tree.IsEmpty(), "empty")
		assert.False(t, okMin, "no min")
		assert.False(t, okMax, "no max")
	})
}

func TestAVLTree_Search(t *testing.T) {
	t.Run("finds existing values only", func(t *testing.T) {
		// Prepare
		tree := NewOrderedAVLTree[string]()
		for _, v := range []string{"m", "c", "x"} {
			tree.Insert(v)
		}

		// Check
		assert.True(t, tree.Search("c"), "existing")
		assert.False(t, tree.Search("d"), "missing")
		lo, _ := tree.Min()
		hi, _ := tree.Max()
		assert.Equal(t, "c", lo, "min")
		assert.Equal(t, "x", hi, "max")
	})
}

func TestAVLTree_Clear(t *testing.T) {
	t.Run("removes everything", func(t *testing.T) {
		// Prepare
		tree := NewOrderedAVLTree[int]()
		for i := 0; i < 10; i++ {
			tree.Insert(i)
		}

		// Execute
		tree.Clear()

		// Check
		assert.True(t, tree.IsEmpty(), "empty")
		assert.Empty(t, tree.ToArray(), "no values")
		assert.Equal(t, Stat{}, tree.Stat(), "stat reset")
	})
}

func TestAVLTree_Random(t *testing.T) {
	t.Run("invariants hold under random inserts and removes", func(t *testing.T) {
		// Prepare
		rnd := rand.New(rand.NewSource(42))
		tree := NewOrderedAVLTree[int]()
		set := make(map[int]bool)

		// Execute
		for i := 0; i < 3000; i++ {
			v := rnd.Intn(500)
			if rnd.Intn(3) == 0 {
				assert.Equal(t, set[v], tree.Remove(v), "remove result")
				delete(set, v)
			} else {
				assert.Equal(t, !set[v], tree.Insert(v), "insert result")
				set[v] = true
			}
		}

		// Check
		checkAVL(t, tree, tree.root)
		want := make([]int, 0, len(set))
		for v := range set {
			want = append(want, v)
		}
		sort.Ints(want)
		assert.Equal(t, want, tree.ToArray(), "same contents as reference set")
		assert.Equal(t, len(set), tree.Size(), "size")
	})
}
