package domain

import (
	"context"
	"time"
)

// ShowSession schedules a show in a dome at a specific time.
type ShowSession struct {
	ID       int
	ShowID   int
	DomeID   int
	ShowTime time.Time
}

// SessionSummary is the listing shape: related names are flattened and
// tickets_available is derived in the query as capacity minus booked tickets.
type SessionSummary struct {
	ID               int
	ShowTime         time.Time
	ShowTitle        string
	DomeName         string
	DomeCapacity     int
	TicketsAvailable int
}

type SessionDetail struct {
	ID          int
	ShowTime    time.Time
	Show        Show
	Dome        Dome
	TakenPlaces []SeatPosition
}

type SeatPosition struct {
	Row  int
	Seat int
}

// SessionSeating carries just enough of a session to validate tickets against
// its dome's grid.
type SessionSeating struct {
	SessionID int
	Dome      Dome
}

type SessionFilters struct {
	Page     int
	PageSize int
	Date     *time.Time
	ShowID   int
}

func (f SessionFilters) Limit() int {
	return f.PageSize
}

func (f SessionFilters) Offset() int {
	return (f.Page - 1) * f.PageSize
}

type SessionRepository interface {
	GetAll(ctx context.Context, filters SessionFilters) ([]SessionSummary, *Metadata, error)
	GetById(ctx context.Context, id int) (*SessionDetail, error)
	GetSeatingBySessionIds(ctx context.Context, sessionIDs []int) ([]SessionSeating, error)
	Create(ctx context.Context, session *ShowSession) error
	Update(ctx context.Context, session *ShowSession) error
	Delete(ctx context.Context, id int) error
}
