package cost

import "context"

// Repository defines the interface for cost persistence
type Repository interface {
	// Create stores a new cost and assigns its ID
	Create(ctx context.Context, cost *Cost) error

	// Get retrieves a cost by ID
	Get(ctx context.Context, id int) (*Cost, error)

	// List retrieves all costs ordered by ID
	List(ctx context.Context) ([]*Cost, error)
}
