package invoice

import (
	"context"

	"github.com/AbdoTarek2211/Cost-Management/internal/types"
)

// Repository defines the interface for invoice persistence operations
type Repository interface {
	// Create stores a new invoice and assigns its ID
	Create(ctx context.Context, invoice *Invoice) error

	// Get retrieves an invoice by ID
	Get(ctx context.Context, id int) (*Invoice, error)

	// Update replaces an existing invoice
	Update(ctx context.Context, invoice *Invoice) error

	// List retrieves invoices matching the filter, ordered by ID
	List(ctx context.Context, filter *types.InvoiceFilter) ([]*Invoice, error)
}
