package mocks

import (
	"context"

	"github.com/metinatakli/planetarium-reservation-system/internal/domain"
)

type MockDomeRepo struct {
	GetAllFunc  func(ctx context.Context) ([]domain.Dome, error)
	GetByIdFunc func(ctx context.Context, id int) (*domain.Dome, error)
	CreateFunc  func(ctx context.Context, dome *domain.Dome) error
	UpdateFunc  func(ctx context.Context, dome *domain.Dome) error
	DeleteFunc  func(ctx context.Context, id int) error
}

func (m *MockDomeRepo) GetAll(ctx context.Context) ([]domain.Dome, error) {
	return m.GetAllFunc(ctx)
}

func (m *MockDomeRepo) GetById(ctx context.Context, id int) (*domain.Dome, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockDomeRepo) Create(ctx context.Context, dome *domain.Dome) error {
	return m.CreateFunc(ctx, dome)
}

func (m *MockDomeRepo) Update(ctx context.Context, dome *domain.Dome) error {
	return m.UpdateFunc(ctx, dome)
}

func (m *MockDomeRepo) Delete(ctx context.Context, id int) error {
	return m.DeleteFunc(ctx, id)
}
