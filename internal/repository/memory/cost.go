package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/AbdoTarek2211/Cost-Management/internal/domain/cost"
	ierr "github.com/AbdoTarek2211/Cost-Management/internal/errors"
)

// CostStore implements cost.Repository over an in-process map with a
// monotonically increasing ID counter.
type CostStore struct {
	mu     sync.RWMutex
	items  map[int]*cost.Cost
	nextID int
}

func NewCostStore() *CostStore {
	return &CostStore{
		items:  make(map[int]*cost.Cost),
		nextID: 1,
	}
}

func (s *CostStore) Create(ctx context.Context, c *cost.Cost) error {
	if c == nil {
		return ierr.NewError("cost cannot be nil").
			WithHint("Cost cannot be nil").
			Mark(ierr.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = s.nextID
	s.nextID++
	s.items[c.ID] = c
	return nil
}

func (s *CostStore) Get(ctx context.Context, id int) (*cost.Cost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.items[id]
	if !ok {
		return nil, ierr.NewError("cost not found").
			WithHintf("Cost with ID %d was not found", id).
			Mark(ierr.ErrNotFound)
	}
	return c, nil
}

func (s *CostStore) List(ctx context.Context) ([]*cost.Cost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*cost.Cost, 0, len(s.items))
	for _, c := range s.items {
		result = append(result, c)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result, nil
}

// Clear resets all stored data
func (s *CostStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make(map[int]*cost.Cost)
	s.nextID = 1
}
