package deal

import "context"

// Repository defines storage operations for deal history
type Repository interface {
	// SaveDeal stores a single deal record
	SaveDeal(ctx context.Context, record *DealRecord) error

	// GetSessionDeals retrieves all deals for a session in deal order
	GetSessionDeals(ctx context.Context, sessionID string) ([]*DealRecord, error)

	// CountSessionDeals returns the number of deals recorded for a session
	CountSessionDeals(ctx context.Context, sessionID string) (int, error)

	// Close closes any resources used by the repository
	Close() error
}
