package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/planetarium-reservation-system/internal/domain"
)

type PostgresSessionRepository struct {
	db *pgxpool.Pool
}

func NewPostgresSessionRepository(db *pgxpool.Pool) *PostgresSessionRepository {
	return &PostgresSessionRepository{
		db: db,
	}
}

func (p *PostgresSessionRepository) GetAll(ctx context.Context, filters domain.SessionFilters) ([]domain.SessionSummary, *domain.Metadata, error) {
	query := `
		SELECT
			count(*) OVER(),
			ss.id,
			ss.show_time,
			s.title,
			d.name,
			d.rows * d.seats_per_row,
			d.rows * d.seats_per_row - count(t.id)
		FROM show_sessions ss
		JOIN shows s ON ss.show_id = s.id
		JOIN domes d ON ss.dome_id = d.id
		LEFT JOIN tickets t ON t.session_id = ss.id
		WHERE ($1::date IS NULL OR ss.show_time::date = $1::date)
			AND ($2 = 0 OR ss.show_id = $2)
		GROUP BY ss.id, ss.show_time, s.title, d.name, d.rows, d.seats_per_row
		ORDER BY ss.show_time DESC
		LIMIT $3 OFFSET $4`

	var date pgtype.Date
	if filters.Date != nil {
		date = pgtype.Date{Time: *filters.Date, Valid: true}
	}

	rows, err := p.db.Query(ctx, query, date, filters.ShowID, filters.Limit(), filters.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	totalRecords := 0
	sessions := make([]domain.SessionSummary, 0)

	for rows.Next() {
		var session domain.SessionSummary

		err := rows.Scan(
			&totalRecords,
			&session.ID,
			&session.ShowTime,
			&session.ShowTitle,
			&session.DomeName,
			&session.DomeCapacity,
			&session.TicketsAvailable,
		)

		if err != nil {
			return nil, nil, err
		}

		sessions = append(sessions, session)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, filters.Page, filters.PageSize)

	return sessions, metadata, nil
}

func (p *PostgresSessionRepository) GetById(ctx context.Context, id int) (*domain.SessionDetail, error) {
	query := `
		SELECT
			ss.id,
			ss.show_time,
			s.id,
			s.title,
			s.description,
			d.id,
			d.name,
			d.rows,
			d.seats_per_row
		FROM show_sessions ss
		JOIN shows s ON ss.show_id = s.id
		JOIN domes d ON ss.dome_id = d.id
		WHERE ss.id = $1`

	var detail domain.SessionDetail
	var description pgtype.Text

	err := p.db.QueryRow(ctx, query, id).Scan(
		&detail.ID,
		&detail.ShowTime,
		&detail.Show.ID,
		&detail.Show.Title,
		&description,
		&detail.Dome.ID,
		&detail.Dome.Name,
		&detail.Dome.Rows,
		&detail.Dome.SeatsPerRow,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	detail.Show.Description = description.String

	themes, err := p.retrieveShowThemes(ctx, detail.Show.ID)
	if err != nil {
		return nil, err
	}
	detail.Show.Themes = themes

	takenPlaces, err := p.retrieveTakenPlaces(ctx, id)
	if err != nil {
		return nil, err
	}
	detail.TakenPlaces = takenPlaces

	return &detail, nil
}

func (p *PostgresSessionRepository) retrieveShowThemes(ctx context.Context, showID int) ([]domain.Theme, error) {
	query := `
		SELECT t.id, t.name
		FROM themes t
		JOIN show_themes st ON t.id = st.theme_id AND st.show_id = $1
		ORDER BY t.id`

	rows, err := p.db.Query(ctx, query, showID)
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

	return themes, rows.Err()
}

func (p *PostgresSessionRepository) retrieveTakenPlaces(ctx context.Context, sessionID int) ([]domain.SeatPosition, error) {
	query := `
		SELECT seat_row, seat_num
		FROM tickets
		WHERE session_id = $1
		ORDER BY seat_row, seat_num`

	rows, err := p.db.Query(ctx, query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	takenPlaces := make([]domain.SeatPosition, 0)

	for rows.Next() {
		var place domain.SeatPosition

		err := rows.Scan(&place.Row, &place.Seat)
		if err != nil {
			return nil, err
		}

		takenPlaces = append(takenPlaces, place)
	}

	return takenPlaces, rows.Err()
}

func (p *PostgresSessionRepository) GetSeatingBySessionIds(ctx context.Context, sessionIDs []int) ([]domain.SessionSeating, error) {
	query := `
		SELECT ss.id, d.id, d.name, d.rows, d.seats_per_row
		FROM show_sessions ss
		JOIN domes d ON ss.dome_id = d.id
		WHERE ss.id = ANY($1)`

	rows, err := p.db.Query(ctx, query, sessionIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seatings := make([]domain.SessionSeating, 0, len(sessionIDs))

	for rows.Next() {
		var seating domain.SessionSeating

		err := rows.Scan(
			&seating.SessionID,
			&seating.Dome.ID,
			&seating.Dome.Name,
			&seating.Dome.Rows,
			&seating.Dome.SeatsPerRow,
		)

		if err != nil {
			return nil, err
		}

		seatings = append(seatings, seating)
	}

	return seatings, rows.Err()
}

func (p *PostgresSessionRepository) Create(ctx context.Context, session *domain.ShowSession) error {
	query := `INSERT INTO show_sessions (show_id, dome_id, show_time)
		VALUES ($1, $2, $3)
		RETURNING id`

	err := p.db.QueryRow(ctx, query, session.ShowID, session.DomeID, session.ShowTime).Scan(&session.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return domain.ErrRecordNotFound
		}

		return err
	}

	return nil
}

func (p *PostgresSessionRepository) Update(ctx context.Context, session *domain.ShowSession) error {
	query := `UPDATE show_sessions SET show_id = $1, dome_id = $2, show_time = $3 WHERE id = $4`

	result, err := p.db.Exec(ctx, query, session.ShowID, session.DomeID, session.ShowTime, session.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return domain.ErrRecordNotFound
		}

		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func (p *PostgresSessionRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM show_sessions WHERE id = $1`

	result, err := p.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}
