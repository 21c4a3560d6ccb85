package domain

import "context"

type Theme struct {
	ID   int
	Name string
}

type ThemeRepository interface {
	GetAll(ctx context.Context) ([]Theme, error)
	GetById(ctx context.Context, id int) (*Theme, error)
	Create(ctx context.Context, theme *Theme) error
	Update(ctx context.Context, theme *Theme) error
	Delete(ctx context.Context, id int) error
}
