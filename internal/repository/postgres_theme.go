package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/planetarium-reservation-system/internal/domain"
)

type PostgresThemeRepository struct {
	db *pgxpool.Pool
}

func NewPostgresThemeRepository(db *pgxpool.Pool) *PostgresThemeRepository {
	return &PostgresThemeRepository{
		db: db,
	}
}

func (p *PostgresThemeRepository) GetAll(ctx context.Context) ([]domain.Theme, error) {
	query := `SELECT id, name FROM themes ORDER BY id`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	themes := make([]domain.Theme, 0)

	for rows.Next() {
		var theme domain.Theme

		err := rows.Scan(&theme.ID, &theme.Name)
		if err != nil {
			return nil, err
		}

		themes = append(themes, theme)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return themes, nil
}

func (p *PostgresThemeRepository) GetById(ctx context.Context, id int) (*domain.Theme, error) {
	query := `SELECT id, name FROM themes WHERE id = $1`

	var theme domain.Theme

	err := p.db.QueryRow(ctx, query, id).Scan(&theme.ID, &theme.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &theme, nil
}

func (p *PostgresThemeRepository) Create(ctx context.Context, theme *domain.Theme) error {
	query := `INSERT INTO themes (name) VALUES ($1) RETURNING id`

	return p.db.QueryRow(ctx, query, theme.Name).Scan(&theme.ID)
}

func (p *PostgresThemeRepository) Update(ctx context.Context, theme *domain.Theme) error {
	query := `UPDATE themes SET name = $1 WHERE id = $2`

	result, err := p.db.Exec(ctx, query, theme.Name, theme.ID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func (p *PostgresThemeRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM themes WHERE id = $1`

	result, err := p.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}
