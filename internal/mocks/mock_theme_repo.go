package mocks

import (
	"context"

	"github.com/metinatakli/planetarium-reservation-system/internal/domain"
)

type MockThemeRepo struct {
	GetAllFunc  func(ctx context.Context) ([]domain.Theme, error)
	GetByIdFunc func(ctx context.Context, id int) (*domain.Theme, error)
	CreateFunc  func(ctx context.Context, theme *domain.Theme) error
	UpdateFunc  func(ctx context.Context, theme *domain.Theme) error
	DeleteFunc  func(ctx context.Context, id int) error
}

func (m *MockThemeRepo) GetAll(ctx context.Context) ([]domain.Theme, error) {
	return m.GetAllFunc(ctx)
}

func (m *MockThemeRepo) GetById(ctx context.Context, id int) (*domain.Theme, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockThemeRepo) Create(ctx context.Context, theme *domain.Theme) error {
	return m.CreateFunc(ctx, theme)
}

func (m *MockThemeRepo) Update(ctx context.Context, theme *domain.Theme) error {
	return m.UpdateFunc(ctx, theme)
}

func (m *MockThemeRepo) Delete(ctx context.Context, id int) error {
	return m.DeleteFunc(ctx, id)
}
