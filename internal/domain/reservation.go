package domain

import (
	"context"
	"time"
)

// Reservation is a user-owned atomic bundle of one or more tickets. It is
// immutable once created.
type Reservation struct {
	ID        int
	UserID    int
	CreatedAt time.Time
	Tickets   []Ticket
}

// ReservationTicket is the listing shape of a ticket: its session is expanded
// the same way the session listing expands it.
type ReservationTicket struct {
	ID      int
	Row     int
	Seat    int
	Session SessionSummary
}

type ReservationSummary struct {
	ID        int
	CreatedAt time.Time
	Tickets   []ReservationTicket
}

type ReservationRepository interface {
	Create(ctx context.Context, reservation *Reservation) error
	GetAllByUserId(ctx context.Context, userId int, pagination Pagination) ([]ReservationSummary, *Metadata, error)
}
