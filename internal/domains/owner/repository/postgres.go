package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"pet-registry-backend/internal/domains/owner"
	"pet-registry-backend/pkg/cache"
	"pet-registry-backend/pkg/database"
)

const (
	// PostgreSQL error codes translated at the store boundary.
	codeUniqueViolation = "23505"

	ownerCacheTTL = 15 * time.Minute
)

type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

// NewPostgresRepository returns the owner data access layer backed by
// PostgreSQL with a cache-aside layer for by-id lookups.
func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) owner.Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

func ownerCacheKey(id int64) string {
	return fmt.Sprintf("owner:%d", id)
}

func (r *postgresRepository) Create(ctx context.Context, o *owner.Owner) (*owner.Owner, error) {
	query := `
		INSERT INTO owners (email, created_at, updated_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.pool.QueryRow(ctx, query, o.Email, o.CreatedAt, o.UpdatedAt).Scan(&o.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation {
			return nil, owner.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("create owner: %w", err)
	}

	return o, nil
}

// FindByID implements the cache-aside pattern: check Redis first, fall back
// to the database and populate the cache on a miss. A broken cache degrades
// to plain database reads.
func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*owner.Owner, error) {
	cacheKey := ownerCacheKey(id)

	var o owner.Owner
	found, err := r.cache.Get(ctx, cacheKey, &o)
	if err == nil && found {
		return &o, nil
	}

	query := `
		SELECT id, email, created_at, updated_at
		FROM owners
		WHERE id = $1
	`

	err = r.pool.QueryRow(ctx, query, id).Scan(
		&o.ID,
		&o.Email,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, owner.ErrOwnerNotFound
		}
		return nil, fmt.Errorf("find owner by id: %w", err)
	}

	// Ignore cache set failures; the request must not depend on Redis.
	_ = r.cache.Set(ctx, cacheKey, &o, ownerCacheTTL)

	return &o, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]owner.Owner, error) {
	query := `
		SELECT id, email, created_at, updated_at
		FROM owners
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list owners: %w", err)
	}
	defer rows.Close()

	owners := make([]owner.Owner, 0)
	for rows.Next() {
		var o owner.Owner
		if err := rows.Scan(&o.ID, &o.Email, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan owner: %w", err)
		}
		owners = append(owners, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}

	return owners, nil
}

// UpdateEmail runs the read-then-write sequence inside a transaction so a
// concurrent delete cannot slip between the existence check and the update.
func (r *postgresRepository) UpdateEmail(ctx context.Context, id int64, email string) (*owner.Owner, error) {
	updated, err := database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*owner.Owner, error) {
		var lockedID int64
		err := tx.QueryRow(ctx, `SELECT id FROM owners WHERE id = $1 FOR UPDATE`, id).Scan(&lockedID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, owner.ErrOwnerNotFound
			}
			return nil, fmt.Errorf("lock owner: %w", err)
		}

		query := `
			UPDATE owners
			SET email = $2, updated_at = NOW()
			WHERE id = $1
			RETURNING id, email, created_at, updated_at
		`

		var o owner.Owner
		err = tx.QueryRow(ctx, query, id, email).Scan(&o.ID, &o.Email, &o.CreatedAt, &o.UpdatedAt)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation {
				return nil, owner.ErrEmailAlreadyExists
			}
			return nil, fmt.Errorf("update owner email: %w", err)
		}

		return &o, nil
	})
	if err != nil {
		return nil, err
	}

	_ = r.cache.Delete(ctx, ownerCacheKey(id))

	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	// owner_id on cats is declared ON DELETE SET NULL, so dependents are
	// orphaned by the store in the same statement's transaction.
	query := `DELETE FROM owners WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete owner: %w", err)
	}

	if result.RowsAffected() == 0 {
		return owner.ErrOwnerNotFound
	}

	_ = r.cache.Delete(ctx, ownerCacheKey(id))

	return nil
}
