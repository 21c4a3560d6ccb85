package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/planetarium-reservation-system/internal/domain"
)

type PostgresDomeRepository struct {
	db *pgxpool.Pool
}

func NewPostgresDomeRepository(db *pgxpool.Pool) *PostgresDomeRepository {
	return &PostgresDomeRepository{
		db: db,
	}
}

func (p *PostgresDomeRepository) GetAll(ctx context.Context) ([]domain.Dome, error) {
	query := `SELECT id, name, rows, seats_per_row FROM domes ORDER BY id`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	domes := make([]domain.Dome, 0)

	for rows.Next() {
		var dome domain.Dome

		err := rows.Scan(&dome.ID, &dome.Name, &dome.Rows, &dome.SeatsPerRow)
		if err != nil {
			return nil, err
		}

		domes = append(domes, dome)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return domes, nil
}

func (p *PostgresDomeRepository) GetById(ctx context.Context, id int) (*domain.Dome, error) {
	query := `SELECT id, name, rows, seats_per_row FROM domes WHERE id = $1`

	var dome domain.Dome

	err := p.db.QueryRow(ctx, query, id).Scan(&dome.ID, &dome.Name, &dome.Rows, &dome.SeatsPerRow)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &dome, nil
}

func (p *PostgresDomeRepository) Create(ctx context.Context, dome *domain.Dome) error {
	query := `INSERT INTO domes (name, rows, seats_per_row) VALUES ($1, $2, $3) RETURNING id`

	return p.db.QueryRow(ctx, query, dome.Name, dome.Rows, dome.SeatsPerRow).Scan(&dome.ID)
}

func (p *PostgresDomeRepository) Update(ctx context.Context, dome *domain.Dome) error {
	query := `UPDATE domes SET name = $1, rows = $2, seats_per_row = $3 WHERE id = $4`

	result, err := p.db.Exec(ctx, query, dome.Name, dome.Rows, dome.SeatsPerRow, dome.ID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func (p *PostgresDomeRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM domes WHERE id = $1`

	result, err := p.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}
