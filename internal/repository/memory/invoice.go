package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/AbdoTarek2211/Cost-Management/internal/domain/invoice"
	ierr "github.com/AbdoTarek2211/Cost-Management/internal/errors"
	"github.com/AbdoTarek2211/Cost-Management/internal/types"
)

// InvoiceStore implements invoice.Repository
type InvoiceStore struct {
	mu     sync.RWMutex
	items  map[int]*invoice.Invoice
	nextID int
}

func NewInvoiceStore() *InvoiceStore {
	return &InvoiceStore{
		items:  make(map[int]*invoice.Invoice),
		nextID: 1,
	}
}

func (s *InvoiceStore) Create(ctx context.Context, inv *invoice.Invoice) error {
	if inv == nil {
		return ierr.NewError("invoice cannot be nil").
			WithHint("Invoice cannot be nil").
			Mark(ierr.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	inv.ID = s.nextID
	s.nextID++
	s.items[inv.ID] = clone(inv)
	return nil
}

func (s *InvoiceStore) Get(ctx context.Context, id int) (*invoice.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	inv, ok := s.items[id]
	if !ok {
		return nil, ierr.NewError("invoice not found").
			WithHintf("Invoice with ID %d was not found", id).
			Mark(ierr.ErrNotFound)
	}
	return clone(inv), nil
}

// clone guards stored state against mutation through returned pointers
func clone(inv *invoice.Invoice) *invoice.Invoice {
	copied := *inv
	copied.Items = make([]invoice.Item, len(inv.Items))
	copy(copied.Items, inv.Items)
	return &copied
}

func (s *InvoiceStore) Update(ctx context.Context, inv *invoice.Invoice) error {
	if inv == nil {
		return ierr.NewError("invoice cannot be nil").
			WithHint("Invoice cannot be nil").
			Mark(ierr.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[inv.ID]; !ok {
		return ierr.NewError("invoice not found").
			WithHintf("Invoice with ID %d was not found", inv.ID).
			Mark(ierr.ErrNotFound)
	}
	s.items[inv.ID] = clone(inv)
	return nil
}

func (s *InvoiceStore) List(ctx context.Context, filter *types.InvoiceFilter) ([]*invoice.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*invoice.Invoice, 0, len(s.items))
	for _, inv := range s.items {
		if matchesFilter(inv, filter) {
			result = append(result, clone(inv))
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result, nil
}

func matchesFilter(inv *invoice.Invoice, filter *types.InvoiceFilter) bool {
	if filter == nil {
		return true
	}
	if filter.Status != nil && inv.Status != *filter.Status {
		return false
	}
	if filter.ClientContains != "" &&
		!strings.Contains(strings.ToLower(inv.ClientName), strings.ToLower(filter.ClientContains)) {
		return false
	}
	if filter.CreatedAfter != nil && inv.CreatedAt.Before(*filter.CreatedAfter) {
		return false
	}
	if filter.CreatedBefore != nil && inv.CreatedAt.After(*filter.CreatedBefore) {
		return false
	}
	return true
}

// Clear resets all stored data
func (s *InvoiceStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make(map[int]*invoice.Invoice)
	s.nextID = 1
}
