package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/AbdoTarek2211/Cost-Management/internal/domain/payment"
	ierr "github.com/AbdoTarek2211/Cost-Management/internal/errors"
)

// PaymentStore implements payment.Repository. Payments are held once,
// indexed by ID; per-invoice views are queries over InvoiceID.
type PaymentStore struct {
	mu     sync.RWMutex
	items  map[int]*payment.Payment
	nextID int
}

func NewPaymentStore() *PaymentStore {
	return &PaymentStore{
		items:  make(map[int]*payment.Payment),
		nextID: 1,
	}
}

func (s *PaymentStore) Create(ctx context.Context, p *payment.Payment) error {
	if p == nil {
		return ierr.NewError("payment cannot be nil").
			WithHint("Payment cannot be nil").
			Mark(ierr.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = s.nextID
	s.nextID++
	s.items[p.ID] = p
	return nil
}

func (s *PaymentStore) Get(ctx context.Context, id int) (*payment.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.items[id]
	if !ok {
		return nil, ierr.NewError("payment not found").
			WithHintf("Payment with ID %d was not found", id).
			Mark(ierr.ErrNotFound)
	}
	return p, nil
}

func (s *PaymentStore) ListByInvoice(ctx context.Context, invoiceID int) ([]*payment.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*payment.Payment, 0)
	for _, p := range s.items {
		if p.InvoiceID == invoiceID {
			result = append(result, p)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].PaidAt.Before(result[j].PaidAt)
	})
	return result, nil
}

func (s *PaymentStore) List(ctx context.Context) ([]*payment.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*payment.Payment, 0, len(s.items))
	for _, p := range s.items {
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result, nil
}

// Clear resets all stored data
func (s *PaymentStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make(map[int]*payment.Payment)
	s.nextID = 1
}
