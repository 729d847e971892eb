package tree

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTree(keys ...int) *Tree {
	t := New()
	for _, key := range keys {
		t.Insert(key)
	}
	return t
}

func TestTraverseInorder(t *testing.T) {
	r := &Node{
		key: 32,
		left: &Node{
			key:   21,
			left:  &Node{key: 7},
			right: &Node{key: 28},
		},
		right: &Node{
			key:   38,
			left:  &Node{key: 35},
			right: &Node{key: 47},
		},
	}
	bst := Tree{root: r}
	assert.Equal(t, []int{7, 21, 28, 32, 35, 38, 47}, bst.InOrder())
}

func TestNew(t *testing.T) {
	bst := New()
	assert.True(t, bst.Empty())
	assert.Nil(t, bst.Root())
	assert.Equal(t, 0, bst.Len())
	assert.Equal(t, 0, bst.Height())
	assert.Nil(t, bst.Min())
	assert.Nil(t, bst.Max())
	assert.Nil(t, bst.Search(1))
	assert.Equal(t, []int{}, bst.InOrder())
	assert.Equal(t, []int{}, bst.PreOrder())
	assert.Equal(t, []int{}, bst.PostOrder())
	assert.NoError(t, bst.Validate())

	n := NewNode(-4)
	assert.Equal(t, -4, n.Key())
	assert.Nil(t, n.Parent())
	assert.Nil(t, n.Left())
	assert.Nil(t, n.Right())
}

func TestInsert(t *testing.T) {
	nodes := []int{32, 21, 38, 47, 28, 7, 35}
	bst := newTree(nodes...)

	assert.Equal(t, nodes[0], bst.Root().Key())
	assert.Nil(t, bst.Root().Parent())
	assert.Equal(t, len(nodes), bst.Len())
	assert.Equal(t, []int{7, 21, 28, 32, 35, 38, 47}, bst.InOrder())
	assert.NoError(t, bst.Validate())

	t.Run("attaches under the last visited node", func(t *testing.T) {
		n := bst.Insert(36)
		assert.Same(t, bst.Search(35), n.Parent())
		assert.Same(t, n, bst.Search(35).Right())
	})

	t.Run("duplicates go right", func(t *testing.T) {
		dup := bst.Insert(32)
		assert.Same(t, bst.Search(35), dup.Parent())
		assert.Same(t, dup, bst.Search(35).Left())
		assert.NoError(t, bst.Validate())
	})
}

func TestSearch(t *testing.T) {
	bst := newTree(32, 21, 38, 47, 28, 7, 35)

	t.Run("searching absent value", func(t *testing.T) {
		assert.Nil(t, bst.Search(99))
	})

	t.Run("searching present value", func(t *testing.T) {
		result := bst.Search(35)
		assert.Same(t, bst.root.right.left, result)
	})

	t.Run("round trip", func(t *testing.T) {
		for _, key := range []int{0, -1, 1 << 40, -(1 << 40), 64} {
			bst.Insert(key)
			n := bst.Search(key)
			require.NotNil(t, n)
			assert.Equal(t, key, n.Key())
		}
	})
}

func TestMinimum(t *testing.T) {
	bst := newTree(50, 30, 70, 20, 40, 60, 80)

	assert.Nil(t, Minimum(nil))
	assert.Nil(t, Maximum(nil))
	assert.Equal(t, 20, bst.Min().Key())
	assert.Equal(t, 80, bst.Max().Key())
	assert.Equal(t, 60, Minimum(bst.Search(70)).Key())
	assert.Equal(t, 40, Maximum(bst.Search(30)).Key())
}

func TestTraversals(t *testing.T) {
	bst := newTree(50, 30, 70, 20, 40, 60, 80)

	tests := []struct {
		order    Order
		expected []int
	}{
		{InOrder, []int{20, 30, 40, 50, 60, 70, 80}},
		{PreOrder, []int{50, 30, 20, 40, 70, 60, 80}},
		{PostOrder, []int{20, 40, 30, 60, 80, 70, 50}},
	}
	for _, tt := range tests {
		t.Run(tt.order.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, bst.Traverse(tt.order))
			assert.Equal(t, tt.expected, slices.Collect(bst.All(tt.order)))
		})
	}

	assert.Equal(t, tests[0].expected, bst.InOrder())
	assert.Equal(t, tests[1].expected, bst.PreOrder())
	assert.Equal(t, tests[2].expected, bst.PostOrder())

	t.Run("restartable", func(t *testing.T) {
		assert.Equal(t, bst.InOrder(), bst.InOrder())
	})

	t.Run("early stop", func(t *testing.T) {
		var got []int
		for key := range bst.All(InOrder) {
			if key > 40 {
				break
			}
			got = append(got, key)
		}
		assert.Equal(t, []int{20, 30, 40}, got)
	})
}

func TestParseOrder(t *testing.T) {
	tests := []struct {
		input    string
		expected Order
	}{
		{"in", InOrder},
		{"inorder", InOrder},
		{"In-Order", InOrder},
		{"pre", PreOrder},
		{" pre-order ", PreOrder},
		{"post", PostOrder},
		{"postorder", PostOrder},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			order, err := ParseOrder(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, order)
		})
	}

	for _, bad := range []string{"", "order", "level", "sideways"} {
		_, err := ParseOrder(bad)
		assert.ErrorIs(t, err, ErrUnknownOrder, bad)
	}
	assert.Equal(t, "Order(9)", Order(9).String())
}

func TestDelete(t *testing.T) {
	t.Run("scenario", func(t *testing.T) {
		bst := newTree(50, 30, 70, 20, 40, 60, 80)

		require.NoError(t, bst.Delete(30))
		assert.Equal(t, []int{20, 40, 50, 60, 70, 80}, bst.InOrder())
		assert.Equal(t, []int{50, 40, 20, 70, 60, 80}, bst.PreOrder())
		assert.Same(t, bst.Search(40), bst.Root().Left())
		assert.Nil(t, bst.Search(30))
		assert.NoError(t, bst.Validate())

		err := bst.Delete(999)
		assert.True(t, errors.Is(err, ErrKeyNotFound))
		assert.Equal(t, []int{20, 40, 50, 60, 70, 80}, bst.InOrder())
		assert.Equal(t, 6, bst.Len())
	})

	t.Run("leaf", func(t *testing.T) {
		bst := newTree(50, 30, 70)
		require.NoError(t, bst.Delete(70))
		assert.Nil(t, bst.Root().Right())
		assert.Equal(t, []int{30, 50}, bst.InOrder())
		assert.NoError(t, bst.Validate())
	})

	t.Run("only left child", func(t *testing.T) {
		bst := newTree(50, 30, 20, 10)
		require.NoError(t, bst.Delete(30))
		assert.Same(t, bst.Root(), bst.Search(20).Parent())
		assert.Equal(t, []int{50, 20, 10}, bst.PreOrder())
		assert.NoError(t, bst.Validate())
	})

	t.Run("only right child", func(t *testing.T) {
		bst := newTree(50, 70, 80)
		require.NoError(t, bst.Delete(50))
		assert.Equal(t, 70, bst.Root().Key())
		assert.Nil(t, bst.Root().Parent())
		assert.NoError(t, bst.Validate())
	})

	t.Run("distant successor", func(t *testing.T) {
		bst := newTree(50, 30, 70, 60, 80, 65)
		require.NoError(t, bst.Delete(50))

		root := bst.Root()
		assert.Equal(t, 60, root.Key())
		assert.Nil(t, root.Parent())
		assert.Equal(t, 30, root.Left().Key())
		assert.Equal(t, 70, root.Right().Key())
		assert.Same(t, root, root.Right().Parent())
		assert.Equal(t, 65, root.Right().Left().Key())
		assert.Same(t, root.Right(), root.Right().Left().Parent())
		assert.Equal(t, []int{60, 30, 70, 65, 80}, bst.PreOrder())
		assert.NoError(t, bst.Validate())
	})

	t.Run("last node", func(t *testing.T) {
		bst := newTree(1)
		require.NoError(t, bst.Delete(1))
		assert.True(t, bst.Empty())
		assert.Equal(t, 0, bst.Len())
		assert.ErrorIs(t, bst.Delete(1), ErrKeyNotFound)
	})

	t.Run("duplicates removed one at a time", func(t *testing.T) {
		bst := newTree(10, 5, 10, 15)
		require.NoError(t, bst.Delete(10))
		require.NotNil(t, bst.Search(10))
		assert.Equal(t, []int{5, 10, 15}, bst.InOrder())
		require.NoError(t, bst.Delete(10))
		assert.Nil(t, bst.Search(10))
		assert.ErrorIs(t, bst.Delete(10), ErrKeyNotFound)
		assert.NoError(t, bst.Validate())
	})

	t.Run("released node is detached", func(t *testing.T) {
		bst := newTree(50, 30, 70, 20, 40)
		n := bst.Search(30)
		require.NoError(t, bst.Delete(30))
		assert.Nil(t, n.Parent())
		assert.Nil(t, n.Left())
		assert.Nil(t, n.Right())
	})
}

func TestRemove(t *testing.T) {
	bst := newTree(32, 21, 38, 47, 28, 7, 35)

	t.Run("removing leaf node", func(t *testing.T) {
		require.NoError(t, bst.Remove(bst.Search(28)))
		assert.Equal(t, []int{7, 21, 32, 35, 38, 47}, bst.InOrder())
	})

	t.Run("removing root node", func(t *testing.T) {
		require.NoError(t, bst.Remove(bst.Search(32)))
		assert.Same(t, bst.Search(35), bst.root)
		assert.Equal(t, []int{7, 21, 35, 38, 47}, bst.InOrder())
	})

	t.Run("removing internal node", func(t *testing.T) {
		require.NoError(t, bst.Remove(bst.Search(21)))
		assert.Equal(t, []int{7, 35, 38, 47}, bst.InOrder())
	})

	t.Run("removing nil", func(t *testing.T) {
		assert.ErrorIs(t, bst.Remove(nil), ErrNotMember)
		assert.Equal(t, 4, bst.Len())
		assert.NoError(t, bst.Validate())
	})
}

func TestRemoveDetachedNode(t *testing.T) {
	t.Run("already removed", func(t *testing.T) {
		bst := newTree(50, 30, 70)
		n := bst.Search(30)
		require.NoError(t, bst.Remove(n))

		assert.ErrorIs(t, bst.Remove(n), ErrNotMember)
		assert.Equal(t, 50, bst.Root().Key())
		assert.Equal(t, 2, bst.Len())
		assert.Equal(t, []int{50, 70}, bst.InOrder())
		assert.NoError(t, bst.Validate())
	})

	t.Run("removed root", func(t *testing.T) {
		bst := newTree(50, 30, 70)
		root := bst.Root()
		require.NoError(t, bst.Remove(root))

		assert.ErrorIs(t, bst.Remove(root), ErrNotMember)
		assert.Equal(t, []int{30, 70}, bst.InOrder())
		assert.NoError(t, bst.Validate())
	})

	t.Run("node of another tree", func(t *testing.T) {
		bst := newTree(50, 30, 70)
		other := newTree(10, 5)

		assert.ErrorIs(t, bst.Remove(other.Root()), ErrNotMember)
		assert.ErrorIs(t, bst.Remove(other.Search(5)), ErrNotMember)
		assert.ErrorIs(t, bst.Remove(NewNode(50)), ErrNotMember)

		assert.Equal(t, []int{30, 50, 70}, bst.InOrder())
		assert.Equal(t, []int{5, 10}, other.InOrder())
		assert.NoError(t, bst.Validate())
		assert.NoError(t, other.Validate())
	})

	t.Run("empty tree", func(t *testing.T) {
		assert.ErrorIs(t, New().Remove(NewNode(1)), ErrNotMember)
	})
}

func TestRandomized(t *testing.T) {
	for _, seed := range []uint64{1, 7, 42} {
		rng := rand.New(rand.NewPCG(seed, seed*31))
		bst := New()
		var want []int

		for i := 0; i < 2000; i++ {
			key := rng.IntN(64) - 32
			if rng.IntN(3) == 0 {
				err := bst.Delete(key)
				if idx := slices.Index(want, key); idx >= 0 {
					require.NoError(t, err)
					want = slices.Delete(want, idx, idx+1)
				} else {
					require.ErrorIs(t, err, ErrKeyNotFound)
				}
			} else {
				bst.Insert(key)
				want = append(want, key)
			}
			require.NoError(t, bst.Validate(), "seed %d step %d", seed, i)
		}

		sorted := slices.Clone(want)
		slices.Sort(sorted)
		if len(sorted) == 0 {
			sorted = []int{}
		}
		assert.Equal(t, sorted, bst.InOrder())
		assert.Equal(t, len(want), bst.Len())
	}
}

func TestValidate(t *testing.T) {
	t.Run("broken parent link", func(t *testing.T) {
		bst := newTree(50, 30, 70)
		bst.Search(30).parent = nil
		assert.ErrorIs(t, bst.Validate(), ErrCorrupt)
	})

	t.Run("key out of order", func(t *testing.T) {
		bst := newTree(50, 30, 70, 60)
		bst.Search(60).key = 45
		assert.ErrorIs(t, bst.Validate(), ErrCorrupt)
	})

	t.Run("equal key on the left", func(t *testing.T) {
		bst := newTree(50, 30)
		bst.Search(30).key = 50
		assert.ErrorIs(t, bst.Validate(), ErrCorrupt)
	})

	t.Run("root with parent", func(t *testing.T) {
		bst := newTree(50)
		bst.root.parent = NewNode(1)
		assert.ErrorIs(t, bst.Validate(), ErrCorrupt)
	})

	t.Run("size mismatch", func(t *testing.T) {
		bst := newTree(50, 30)
		bst.size = 5
		assert.ErrorIs(t, bst.Validate(), ErrCorrupt)
	})
}

func TestBuild(t *testing.T) {
	arr := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	bst := Build(arr)

	assert.Equal(t, arr, bst.InOrder())
	assert.Equal(t, len(arr), bst.Len())
	assert.Equal(t, 4, bst.Height())
	assert.NoError(t, bst.Validate())

	t.Run("checking root", func(t *testing.T) {
		mid := (0 + len(arr) - 1) / 2
		assert.Equal(t, arr[mid], bst.root.key)
	})

	t.Run("checking parent", func(t *testing.T) {
		assert.Same(t, bst.root, bst.root.left.parent)
		assert.Same(t, bst.root, bst.root.right.parent)
	})

	t.Run("duplicates", func(t *testing.T) {
		dups := Build([]int{1, 2, 2, 2, 3})
		assert.NoError(t, dups.Validate())
		assert.Equal(t, []int{1, 2, 2, 2, 3}, dups.InOrder())
	})

	t.Run("empty", func(t *testing.T) {
		assert.True(t, Build(nil).Empty())
	})
}
