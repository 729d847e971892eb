package tree

import (
	"errors"
	"fmt"
)

var ErrCorrupt = errors.New("corrupt tree")

// bounds is the half-open key window [lo, hi) a subtree has to fit in.
// hasLo and hasHi are false while the window is unbounded on that side.
type bounds struct {
	lo, hi       int
	hasLo, hasHi bool
}

// Validate checks the ordering of every key and the consistency of every
// parent link. It returns an error wrapping ErrCorrupt on the first
// violation found.
func (t *Tree) Validate() error {
	if t.root != nil && t.root.parent != nil {
		return fmt.Errorf("%w: root %d has parent %d", ErrCorrupt, t.root.key, t.root.parent.key)
	}
	count, err := validate(t.root, bounds{})
	if err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("%w: counted %d nodes, expected %d", ErrCorrupt, count, t.size)
	}
	return nil
}

func validate(n *Node, b bounds) (int, error) {
	if n == nil {
		return 0, nil
	}
	if b.hasLo && n.key < b.lo {
		return 0, fmt.Errorf("%w: key %d below lower bound %d", ErrCorrupt, n.key, b.lo)
	}
	if b.hasHi && n.key >= b.hi {
		return 0, fmt.Errorf("%w: key %d not below upper bound %d", ErrCorrupt, n.key, b.hi)
	}
	if n.left != nil && n.left.parent != n {
		return 0, fmt.Errorf("%w: left child %d of %d does not point back", ErrCorrupt, n.left.key, n.key)
	}
	if n.right != nil && n.right.parent != n {
		return 0, fmt.Errorf("%w: right child %d of %d does not point back", ErrCorrupt, n.right.key, n.key)
	}

	left := b
	left.hi, left.hasHi = n.key, true
	nl, err := validate(n.left, left)
	if err != nil {
		return 0, err
	}

	right := b
	right.lo, right.hasLo = n.key, true
	nr, err := validate(n.right, right)
	if err != nil {
		return 0, err
	}
	return nl + nr + 1, nil
}
