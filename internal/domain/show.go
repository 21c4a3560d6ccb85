package domain

import "context"

type Show struct {
	ID          int
	Title       string
	Description string
	Themes      []Theme
}

type ShowFilters struct {
	Page     int
	PageSize int
	Title    string
	ThemeIDs []int
}

func (f ShowFilters) Limit() int {
	return f.PageSize
}

func (f ShowFilters) Offset() int {
	return (f.Page - 1) * f.PageSize
}

type ShowRepository interface {
	GetAll(ctx context.Context, filters ShowFilters) ([]*Show, *Metadata, error)
	GetById(ctx context.Context, id int) (*Show, error)
	Create(ctx context.Context, show *Show) error
}
