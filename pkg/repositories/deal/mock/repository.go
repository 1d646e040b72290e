package mock

import (
	"context"

	"github.com/fadedpez/frenchdeck/pkg/repositories/deal"
	"github.com/stretchr/testify/mock"
)

// Repository is a mock implementation of deal.Repository
type Repository struct {
	mock.Mock
}

// SaveDeal implements deal.Repository
func (m *Repository) SaveDeal(ctx context.Context, record *deal.DealRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

// GetSessionDeals implements deal.Repository
func (m *Repository) GetSessionDeals(ctx context.Context, sessionID string) ([]*deal.DealRecord, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*deal.DealRecord), args.Error(1)
}

// CountSessionDeals implements deal.Repository
func (m *Repository) CountSessionDeals(ctx context.Context, sessionID string) (int, error) {
	args := m.Called(ctx, sessionID)
	return args.Int(0), args.Error(1)
}

// Close implements deal.Repository
func (m *Repository) Close() error {
	args := m.Called()
	return args.Error(0)
}
