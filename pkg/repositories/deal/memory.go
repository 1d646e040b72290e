package deal

import (
	"context"
	"sync"
)

// MemoryRepository implements Repository interface with in-memory storage
type MemoryRepository struct {
	mu sync.RWMutex
	// Map of sessionID to deal records in deal order
	deals map[string][]*DealRecord
}

// NewMemoryRepository creates a new in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		deals: make(map[string][]*DealRecord),
	}
}

// SaveDeal stores a deal record for a session
func (r *MemoryRepository) SaveDeal(ctx context.Context, record *DealRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.deals[record.SessionID] = append(r.deals[record.SessionID], record)
	return nil
}

// GetSessionDeals retrieves all deals for a session in deal order
func (r *MemoryRepository) GetSessionDeals(ctx context.Context, sessionID string) ([]*DealRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := r.deals[sessionID]
	if records == nil {
		return []*DealRecord{}, nil
	}
	return records, nil
}

// CountSessionDeals returns the number of deals recorded for a session
func (r *MemoryRepository) CountSessionDeals(ctx context.Context, sessionID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.deals[sessionID]), nil
}

// Close is a no-op for memory repository since there are no resources to close
func (r *MemoryRepository) Close() error {
	return nil
}
