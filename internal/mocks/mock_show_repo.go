package mocks

import (
	"context"

	"github.com/metinatakli/planetarium-reservation-system/internal/domain"
)

type MockShowRepo struct {
	GetAllFunc  func(ctx context.Context, filters domain.ShowFilters) ([]*domain.Show, *domain.Metadata, error)
	GetByIdFunc func(ctx context.Context, id int) (*domain.Show, error)
	CreateFunc  func(ctx context.Context, show *domain.Show) error
}

func (m *MockShowRepo) GetAll(ctx context.Context, filters domain.ShowFilters) ([]*domain.Show, *domain.Metadata, error) {
	return m.GetAllFunc(ctx, filters)
}

func (m *MockShowRepo) GetById(ctx context.Context, id int) (*domain.Show, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockShowRepo) Create(ctx context.Context, show *domain.Show) error {
	return m.CreateFunc(ctx, show)
}
