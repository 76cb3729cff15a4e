package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"pet-registry-backend/internal/domains/cat"
	"pet-registry-backend/internal/domains/owner"
	"pet-registry-backend/pkg/database"
)

const codeForeignKeyViolation = "23503"

type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository returns the cat data access layer backed by
// PostgreSQL. Cats are not cached: the nested owner would go stale whenever
// the owner record changes.
func NewPostgresRepository(pool *pgxpool.Pool) cat.Repository {
	return &postgresRepository{pool: pool}
}

// Create inserts the cat and re-reads it with the owner joined, all in one
// transaction so the embedded owner matches the row the FK check saw.
func (r *postgresRepository) Create(ctx context.Context, c *cat.Cat) (*cat.Cat, error) {
	return database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*cat.Cat, error) {
		query := `
			INSERT INTO cats (nickname, age, description, vaccinated, owner_id, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id
		`

		var id int64
		err := tx.QueryRow(ctx, query,
			c.Nickname,
			c.Age,
			c.Description,
			c.Vaccinated,
			c.OwnerID,
			c.CreatedAt,
			c.UpdatedAt,
		).Scan(&id)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == codeForeignKeyViolation {
				return nil, cat.ErrOwnerNotExists
			}
			return nil, fmt.Errorf("create cat: %w", err)
		}

		stored, err := scanCatWithOwner(tx.QueryRow(ctx, findByIDQuery, id))
		if err != nil {
			return nil, fmt.Errorf("reload created cat: %w", err)
		}

		return stored, nil
	})
}

const findByIDQuery = `
	SELECT
		c.id, c.nickname, c.age, c.description, c.vaccinated, c.owner_id,
		c.created_at, c.updated_at,
		o.id, o.email, o.created_at, o.updated_at
	FROM cats c
	LEFT JOIN owners o ON o.id = c.owner_id
	WHERE c.id = $1
`

func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*cat.Cat, error) {
	c, err := scanCatWithOwner(r.pool.QueryRow(ctx, findByIDQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, cat.ErrCatNotFound
		}
		return nil, fmt.Errorf("find cat by id: %w", err)
	}
	return c, nil
}

func (r *postgresRepository) List(ctx context.Context, limit, offset int) ([]cat.Cat, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM cats`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count cats: %w", err)
	}

	query := `
		SELECT id, nickname, age, description, vaccinated, owner_id, created_at, updated_at
		FROM cats
		ORDER BY id
		LIMIT $1 OFFSET $2
	`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list cats: %w", err)
	}
	defer rows.Close()

	cats := make([]cat.Cat, 0, limit)
	for rows.Next() {
		var c cat.Cat
		err := rows.Scan(
			&c.ID,
			&c.Nickname,
			&c.Age,
			&c.Description,
			&c.Vaccinated,
			&c.OwnerID,
			&c.CreatedAt,
			&c.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("scan cat: %w", err)
		}
		cats = append(cats, c)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration: %w", err)
	}

	return cats, total, nil
}

// scanCatWithOwner reads one joined row; the owner columns are NULL for
// ownerless cats.
func scanCatWithOwner(row pgx.Row) (*cat.Cat, error) {
	var c cat.Cat
	var ownerID *int64
	var ownerEmail *string
	var ownerCreatedAt, ownerUpdatedAt *time.Time

	err := row.Scan(
		&c.ID,
		&c.Nickname,
		&c.Age,
		&c.Description,
		&c.Vaccinated,
		&c.OwnerID,
		&c.CreatedAt,
		&c.UpdatedAt,
		&ownerID,
		&ownerEmail,
		&ownerCreatedAt,
		&ownerUpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if ownerID != nil {
		c.Owner = &owner.Owner{
			ID:        *ownerID,
			Email:     *ownerEmail,
			CreatedAt: *ownerCreatedAt,
			UpdatedAt: *ownerUpdatedAt,
		}
	}

	return &c, nil
}
