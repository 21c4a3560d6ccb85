package mocks

import (
	"context"

	"github.com/metinatakli/planetarium-reservation-system/internal/domain"
)

type MockReservationRepo struct {
	CreateFunc         func(ctx context.Context, reservation *domain.Reservation) error
	GetAllByUserIdFunc func(ctx context.Context, userId int, pagination domain.Pagination) ([]domain.ReservationSummary, *domain.Metadata, error)
}

func (m *MockReservationRepo) Create(ctx context.Context, reservation *domain.Reservation) error {
	return m.CreateFunc(ctx, reservation)
}

func (m *MockReservationRepo) GetAllByUserId(
	ctx context.Context,
	userId int,
	pagination domain.Pagination) ([]domain.ReservationSummary, *domain.Metadata, error) {

	return m.GetAllByUserIdFunc(ctx, userId, pagination)
}
