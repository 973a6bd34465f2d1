package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mauv0809/ip-portfolio/internal/models"
)

// ErrNotFound is returned when a setting does not exist.
var ErrNotFound = errors.New("not found")

// Repository handles database operations for dashboard settings.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// ListSettings returns every stored setting ordered by key.
func (r *Repository) ListSettings(ctx context.Context) ([]models.Setting, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT key, value, created_at, updated_at
		FROM settings
		ORDER BY key
	`)
	if err != nil {
		return nil, fmt.Errorf("querying settings: %w", err)
	}
	defer rows.Close()

	var settings []models.Setting
	for rows.Next() {
		var s models.Setting
		if err := rows.Scan(&s.Key, &s.Value, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning setting: %w", err)
		}
		settings = append(settings, s)
	}

	return settings, rows.Err()
}

// GetSetting returns a single setting, or ErrNotFound.
func (r *Repository) GetSetting(ctx context.Context, key string) (models.Setting, error) {
	var s models.Setting
	err := r.pool.QueryRow(ctx, `
		SELECT key, value, created_at, updated_at
		FROM settings
		WHERE key = $1
	`, key).Scan(&s.Key, &s.Value, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Setting{}, ErrNotFound
	}
	if err != nil {
		return models.Setting{}, fmt.Errorf("querying setting %s: %w", key, err)
	}

	return s, nil
}

// UpsertSetting inserts or updates one setting and returns the stored row.
func (r *Repository) UpsertSetting(ctx context.Context, key, value string) (models.Setting, error) {
	var s models.Setting
	err := r.pool.QueryRow(ctx, `
		INSERT INTO settings (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = NOW()
		RETURNING key, value, created_at, updated_at
	`, key, value).Scan(&s.Key, &s.Value, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return models.Setting{}, fmt.Errorf("upserting setting %s: %w", key, err)
	}

	return s, nil
}

// UpsertSettings inserts or updates several settings in one batch.
// Returns the number of rows written.
func (r *Repository) UpsertSettings(ctx context.Context, values map[string]string) (int, error) {
	if len(values) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for key, value := range values {
		batch.Queue(`
			INSERT INTO settings (key, value, updated_at)
			VALUES ($1, $2, NOW())
			ON CONFLICT (key) DO UPDATE SET
				value = EXCLUDED.value,
				updated_at = NOW()
		`, key, value)
	}

	br := r.pool.SendBatch(ctx, batch)
	defer br.Close()

	count := 0
	for range values {
		if _, err := br.Exec(); err != nil {
			return count, fmt.Errorf("upserting setting: %w", err)
		}
		count++
	}

	return count, nil
}

// DeleteSetting removes a setting. Returns ErrNotFound if it did not exist.
func (r *Repository) DeleteSetting(ctx context.Context, key string) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM settings WHERE key = $1", key)
	if err != nil {
		return fmt.Errorf("deleting setting %s: %w", key, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
