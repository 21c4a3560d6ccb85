package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/planetarium-reservation-system/internal/domain"
)

type PostgresShowRepository struct {
	db *pgxpool.Pool
}

// escapeLikePattern neutralizes LIKE metacharacters so a title filter of "50%"
// matches the literal string instead of acting as a wildcard.
var escapeLikePattern = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace

func NewPostgresShowRepository(db *pgxpool.Pool) *PostgresShowRepository {
	return &PostgresShowRepository{
		db: db,
	}
}

func (p *PostgresShowRepository) GetAll(ctx context.Context, filters domain.ShowFilters) ([]*domain.Show, *domain.Metadata, error) {
	// A show matching several of the requested themes must still appear once,
	// hence the DISTINCT before pagination.
	query := `
		SELECT count(*) OVER(), id, title, description
		FROM (
			SELECT DISTINCT s.id, s.title, s.description
			FROM shows s
			LEFT JOIN show_themes st ON st.show_id = s.id
			WHERE (s.title ILIKE '%' || $1 || '%' OR $1 = '')
				AND (st.theme_id = ANY($2) OR cardinality($2::int[]) = 0)
		) AS matched
		ORDER BY title
		LIMIT $3 OFFSET $4`

	themeIDs := filters.ThemeIDs
	if themeIDs == nil {
		themeIDs = []int{}
	}

	rows, err := p.db.Query(ctx, query, escapeLikePattern(filters.Title), themeIDs, filters.Limit(), filters.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	totalRecords := 0
	shows := []*domain.Show{}

	for rows.Next() {
		var show domain.Show
		var description pgtype.Text

		err := rows.Scan(
			&totalRecords,
			&show.ID,
			&show.Title,
			&description,
		)

		if err != nil {
			return nil, nil, err
		}

		show.Description = description.String
		shows = append(shows, &show)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	err = p.attachThemes(ctx, shows)
	if err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, filters.Page, filters.PageSize)

	return shows, metadata, nil
}

func (p *PostgresShowRepository) attachThemes(ctx context.Context, shows []*domain.Show) error {
	if len(shows) == 0 {
		return nil
	}

	showsById := make(map[int]*domain.Show, len(shows))
	showIDs := make([]int, 0, len(shows))

	for _, show := range shows {
		show.Themes = []domain.Theme{}
		showsById[show.ID] = show
		showIDs = append(showIDs, show.ID)
	}

	query := `
		SELECT st.show_id, t.id, t.name
		FROM show_themes st
		JOIN themes t ON t.id = st.theme_id
		WHERE st.show_id = ANY($1)
		ORDER BY t.id`

	rows, err := p.db.Query(ctx, query, showIDs)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var showID int
		var theme domain.Theme

		err := rows.Scan(&showID, &theme.ID, &theme.Name)
		if err != nil {
			return err
		}

		show := showsById[showID]
		show.Themes = append(show.Themes, theme)
	}

	return rows.Err()
}

func (p *PostgresShowRepository) GetById(ctx context.Context, id int) (*domain.Show, error) {
	query := `SELECT id, title, description FROM shows WHERE id = $1`

	var show domain.Show
	var description pgtype.Text

	err := p.db.QueryRow(ctx, query, id).Scan(&show.ID, &show.Title, &description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	show.Description = description.String

	err = p.attachThemes(ctx, []*domain.Show{&show})
	if err != nil {
		return nil, err
	}

	return &show, nil
}

func (p *PostgresShowRepository) Create(ctx context.Context, show *domain.Show) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `INSERT INTO shows (title, description) VALUES ($1, NULLIF($2, '')) RETURNING id`

		err := tx.QueryRow(ctx, query, show.Title, show.Description).Scan(&show.ID)
		if err != nil {
			return err
		}

		if len(show.Themes) == 0 {
			return nil
		}

		rows := make([][]any, 0, len(show.Themes))
		for _, theme := range show.Themes {
			rows = append(rows, []any{show.ID, theme.ID})
		}

		_, err = tx.CopyFrom(
			ctx,
			pgx.Identifier{"show_themes"},
			[]string{"show_id", "theme_id"},
			pgx.CopyFromRows(rows),
		)

		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return domain.ErrRecordNotFound
		}

		return err
	})
}
