package payment

import "context"

// Repository defines the interface for payment persistence
type Repository interface {
	// Create stores a new payment and assigns its ID
	Create(ctx context.Context, payment *Payment) error

	// Get retrieves a payment by ID
	Get(ctx context.Context, id int) (*Payment, error)

	// ListByInvoice retrieves all payments referencing an invoice,
	// ordered by PaidAt ascending
	ListByInvoice(ctx context.Context, invoiceID int) ([]*Payment, error)

	// List retrieves all payments ordered by ID
	List(ctx context.Context) ([]*Payment, error)
}
