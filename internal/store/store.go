package store

import (
	"github.com/oahshtsua/lab/bst/internal/tree"
)

var ErrKeyNotFound = tree.ErrKeyNotFound

// Store is the access path for callers that may run concurrently.
type Store interface {
	Insert(key int) error
	Search(key int) (bool, error)
	Delete(key int) error
	Traverse(order tree.Order) ([]int, error)
	Bounds() (lo, hi int, ok bool)
	Validate() error
	Height() int
	Len() int
}
