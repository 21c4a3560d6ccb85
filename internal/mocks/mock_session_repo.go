package mocks

import (
	"context"

	"github.com/metinatakli/planetarium-reservation-system/internal/domain"
)

type MockSessionRepo struct {
	GetAllFunc                 func(ctx context.Context, filters domain.SessionFilters) ([]domain.SessionSummary, *domain.Metadata, error)
	GetByIdFunc                func(ctx context.Context, id int) (*domain.SessionDetail, error)
	GetSeatingBySessionIdsFunc func(ctx context.Context, sessionIDs []int) ([]domain.SessionSeating, error)
	CreateFunc                 func(ctx context.Context, session *domain.ShowSession) error
	UpdateFunc                 func(ctx context.Context, session *domain.ShowSession) error
	DeleteFunc                 func(ctx context.Context, id int) error
}

func (m *MockSessionRepo) GetAll(ctx context.Context, filters domain.SessionFilters) ([]domain.SessionSummary, *domain.Metadata, error) {
	return m.GetAllFunc(ctx, filters)
}

func (m *MockSessionRepo) GetById(ctx context.Context, id int) (*domain.SessionDetail, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockSessionRepo) GetSeatingBySessionIds(ctx context.Context, sessionIDs []int) ([]domain.SessionSeating, error) {
	return m.GetSeatingBySessionIdsFunc(ctx, sessionIDs)
}

func (m *MockSessionRepo) Create(ctx context.Context, session *domain.ShowSession) error {
	return m.CreateFunc(ctx, session)
}

func (m *MockSessionRepo) Update(ctx context.Context, session *domain.ShowSession) error {
	return m.UpdateFunc(ctx, session)
}

func (m *MockSessionRepo) Delete(ctx context.Context, id int) error {
	return m.DeleteFunc(ctx, id)
}
