package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/planetarium-reservation-system/internal/domain"
)

type PostgresReservationRepository struct {
	db *pgxpool.Pool
}

func NewPostgresReservationRepository(db *pgxpool.Pool) *PostgresReservationRepository {
	return &PostgresReservationRepository{
		db: db,
	}
}

// Create persists the reservation and all of its tickets in one transaction.
// The composite unique index on (session_id, seat_row, seat_num) is the
// authority on double-booking: two racing requests for the same seat both
// reach this insert, exactly one commits, the other surfaces
// ErrSeatAlreadyReserved.
func (p *PostgresReservationRepository) Create(ctx context.Context, reservation *domain.Reservation) error {
	err := runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `INSERT INTO reservations (user_id)
			VALUES ($1)
			RETURNING id, created_at`

		err := tx.QueryRow(ctx, query, reservation.UserID).Scan(&reservation.ID, &reservation.CreatedAt)
		if err != nil {
			return err
		}

		query = `INSERT INTO tickets (session_id, reservation_id, seat_row, seat_num)
			VALUES ($1, $2, $3, $4)
			RETURNING id`

		for i := range reservation.Tickets {
			ticket := &reservation.Tickets[i]

			err := tx.QueryRow(ctx, query, ticket.SessionID, reservation.ID, ticket.Row, ticket.Seat).Scan(&ticket.ID)
			if err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgerrcode.UniqueViolation:
				return domain.ErrSeatAlreadyReserved
			case pgerrcode.ForeignKeyViolation:
				return domain.ErrRecordNotFound
			}
		}

		return err
	}

	return nil
}

func runInTx(ctx context.Context, db *pgxpool.Pool, fn func(tx pgx.Tx) error) error {
	var txOptions pgx.TxOptions

	tx, err := db.BeginTx(ctx, txOptions)
	if err != nil {
		return err
	}

	err = fn(tx)
	if err == nil {
		return tx.Commit(ctx)
	}

	rollbackErr := tx.Rollback(ctx)
	if rollbackErr != nil {
		return errors.Join(err, rollbackErr)
	}

	return err
}

func (p *PostgresReservationRepository) GetAllByUserId(
	ctx context.Context,
	userId int,
	pagination domain.Pagination) ([]domain.ReservationSummary, *domain.Metadata, error) {

	query := `
		SELECT count(*) OVER(), id, created_at
		FROM reservations
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`

	rows, err := p.db.Query(ctx, query, userId, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	reservations := make([]domain.ReservationSummary, 0)
	totalRecords := 0

	for rows.Next() {
		var reservation domain.ReservationSummary

		err := rows.Scan(&totalRecords, &reservation.ID, &reservation.CreatedAt)
		if err != nil {
			return nil, nil, err
		}

		reservations = append(reservations, reservation)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	err = p.attachTickets(ctx, reservations)
	if err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, pagination.Page, pagination.PageSize)

	return reservations, metadata, nil
}

func (p *PostgresReservationRepository) attachTickets(ctx context.Context, reservations []domain.ReservationSummary) error {
	if len(reservations) == 0 {
		return nil
	}

	reservationIDs := make([]int, 0, len(reservations))
	byID := make(map[int]*domain.ReservationSummary, len(reservations))

	for i := range reservations {
		reservation := &reservations[i]
		reservation.Tickets = []domain.ReservationTicket{}
		reservationIDs = append(reservationIDs, reservation.ID)
		byID[reservation.ID] = reservation
	}

	// Each ticket carries its session expanded the same way the session
	// listing does, availability included.
	query := `
		SELECT
			t.reservation_id,
			t.id,
			t.seat_row,
			t.seat_num,
			ss.id,
			ss.show_time,
			s.title,
			d.name,
			d.rows * d.seats_per_row,
			d.rows * d.seats_per_row - (SELECT count(*) FROM tickets b WHERE b.session_id = ss.id)
		FROM tickets t
		JOIN show_sessions ss ON t.session_id = ss.id
		JOIN shows s ON ss.show_id = s.id
		JOIN domes d ON ss.dome_id = d.id
		WHERE t.reservation_id = ANY($1)
		ORDER BY t.seat_row, t.seat_num`

	rows, err := p.db.Query(ctx, query, reservationIDs)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var reservationID int
		var ticket domain.ReservationTicket

		err := rows.Scan(
			&reservationID,
			&ticket.ID,
			&ticket.Row,
			&ticket.Seat,
			&ticket.Session.ID,
			&ticket.Session.ShowTime,
			&ticket.Session.ShowTitle,
			&ticket.Session.DomeName,
			&ticket.Session.DomeCapacity,
			&ticket.Session.TicketsAvailable,
		)

		if err != nil {
			return err
		}

		reservation := byID[reservationID]
		reservation.Tickets = append(reservation.Tickets, ticket)
	}

	return rows.Err()
}
