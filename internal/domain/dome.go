package domain

import "context"

// Dome is a physical venue with a fixed rows x seats-per-row seating grid.
type Dome struct {
	ID          int
	Name        string
	Rows        int
	SeatsPerRow int
}

func (d Dome) Capacity() int {
	return d.Rows * d.SeatsPerRow
}

type DomeRepository interface {
	GetAll(ctx context.Context) ([]Dome, error)
	GetById(ctx context.Context, id int) (*Dome, error)
	Create(ctx context.Context, dome *Dome) error
	Update(ctx context.Context, dome *Dome) error
	Delete(ctx context.Context, id int) error
}
