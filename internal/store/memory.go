package store

import (
	"sync"

	"github.com/oahshtsua/lab/bst/internal/journal"
	"github.com/oahshtsua/lab/bst/internal/tree"
)

// TreeStore serializes access to a single tree.
type TreeStore struct {
	sync.RWMutex
	inner   *tree.Tree
	journal journal.Journal
}

// NewTreeStore returns a store over an empty tree. Successful mutations are
// recorded in j when it is not nil.
func NewTreeStore(j journal.Journal) *TreeStore {
	if j == nil {
		j = journal.Nop{}
	}
	return &TreeStore{
		inner:   tree.New(),
		journal: j,
	}
}

func (s *TreeStore) Insert(key int) error {
	s.Lock()
	s.inner.Insert(key)
	s.journal.WriteInsert(key)
	s.Unlock()
	return nil
}

func (s *TreeStore) Search(key int) (bool, error) {
	s.RLock()
	n := s.inner.Search(key)
	s.RUnlock()
	return n != nil, nil
}

func (s *TreeStore) Delete(key int) error {
	s.Lock()
	defer s.Unlock()
	if err := s.inner.Delete(key); err != nil {
		return err
	}
	s.journal.WriteDelete(key)
	return nil
}

func (s *TreeStore) Traverse(order tree.Order) ([]int, error) {
	s.RLock()
	defer s.RUnlock()
	switch order {
	case tree.InOrder, tree.PreOrder, tree.PostOrder:
		return s.inner.Traverse(order), nil
	}
	return nil, tree.ErrUnknownOrder
}

func (s *TreeStore) Bounds() (lo, hi int, ok bool) {
	s.RLock()
	defer s.RUnlock()
	if s.inner.Empty() {
		return 0, 0, false
	}
	return s.inner.Min().Key(), s.inner.Max().Key(), true
}

func (s *TreeStore) Validate() error {
	s.RLock()
	defer s.RUnlock()
	return s.inner.Validate()
}

func (s *TreeStore) Height() int {
	s.RLock()
	defer s.RUnlock()
	return s.inner.Height()
}

func (s *TreeStore) Len() int {
	s.RLock()
	defer s.RUnlock()
	return s.inner.Len()
}
