package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/planetarium-reservation-system/internal/domain"
)

type PostgresUserRepository struct {
	db *pgxpool.Pool
}

func NewPostgresUserRepository(db *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{
		db: db,
	}
}

// CreateWithToken inserts the user and its activation token in one
// transaction, so a failed token insert never leaves an unactivatable user
// behind.
func (p *PostgresUserRepository) CreateWithToken(
	ctx context.Context,
	user *domain.User,
	tokenFn func(*domain.User) (*domain.Token, error)) (*domain.Token, error) {

	var token *domain.Token

	err := runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `INSERT INTO users (first_name, last_name, email, password_hash)
			VALUES ($1, $2, $3, $4)
			RETURNING id, created_at, activated, is_admin, version`

		err := tx.QueryRow(
			ctx,
			query,
			user.FirstName,
			user.LastName,
			user.Email,
			user.Password.Hash).Scan(&user.ID, &user.CreatedAt, &user.Activated, &user.IsAdmin, &user.Version)

		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
				return domain.ErrUserAlreadyExists
			}

			return err
		}

		token, err = tokenFn(user)
		if err != nil {
			return err
		}

		query = `INSERT INTO tokens (hash, user_id, expiry, scope)
			VALUES ($1, $2, $3, $4)`

		_, err = tx.Exec(ctx, query, token.Hash, token.UserId, token.Expiry, token.Scope)

		return err
	})

	if err != nil {
		return nil, err
	}

	return token, nil
}

func (p *PostgresUserRepository) GetByToken(ctx context.Context, tokenHash []byte, tokenScope string) (*domain.User, error) {
	query := `
		SELECT u.id, u.first_name, u.last_name, u.email, u.password_hash,
			u.created_at, u.updated_at, u.activated, u.is_admin, u.version
		FROM users u
		JOIN tokens t ON u.id = t.user_id
		WHERE t.hash = $1 AND t.scope = $2 AND t.expiry > $3`

	return p.scanUser(p.db.QueryRow(ctx, query, tokenHash, tokenScope, time.Now()))
}

func (p *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT id, first_name, last_name, email, password_hash,
			created_at, updated_at, activated, is_admin, version
		FROM users
		WHERE email = $1`

	return p.scanUser(p.db.QueryRow(ctx, query, email))
}

func (p *PostgresUserRepository) GetById(ctx context.Context, id int) (*domain.User, error) {
	query := `
		SELECT id, first_name, last_name, email, password_hash,
			created_at, updated_at, activated, is_admin, version
		FROM users
		WHERE id = $1`

	return p.scanUser(p.db.QueryRow(ctx, query, id))
}

func (p *PostgresUserRepository) scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User

	err := row.Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.Password.Hash,
		&user.CreatedAt,
		&user.UpdatedAt,
		&user.Activated,
		&user.IsAdmin,
		&user.Version,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &user, nil
}

// ActivateUser flips the activated flag and burns the user's remaining
// activation tokens. The version check guards against concurrent updates.
func (p *PostgresUserRepository) ActivateUser(ctx context.Context, user *domain.User) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `UPDATE users
			SET activated = true, updated_at = now(), version = version + 1
			WHERE id = $1 AND version = $2
			RETURNING version`

		err := tx.QueryRow(ctx, query, user.ID, user.Version).Scan(&user.Version)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrEditConflict
			}

			return err
		}

		user.Activated = true

		query = `DELETE FROM tokens WHERE user_id = $1 AND scope = $2`

		_, err = tx.Exec(ctx, query, user.ID, domain.UserActivationScope)

		return err
	})
}
