package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// DescriptionRepo implements taxonomy.Store using PostgreSQL.
type DescriptionRepo struct {
	db *DB
}

// NewDescriptionRepo creates a new PostgreSQL description repository.
func NewDescriptionRepo(db *DB) *DescriptionRepo {
	return &DescriptionRepo{db: db}
}

// Description is a stored row.
type Description struct {
	Identifier  string `db:"identifier"`
	Description string `db:"description"`
	Hits        int64  `db:"hits"`
}

// Get retrieves the description of a normalized identifier and counts the hit.
func (r *DescriptionRepo) Get(ctx context.Context, identifier string) (string, bool, error) {
	var d string
	err := r.db.GetContext(ctx, &d,
		`UPDATE rpc_error_descriptions SET hits = hits + 1, updated_at = now()
		 WHERE identifier = $1 RETURNING description`, identifier)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get description: %w", err)
	}
	return d, true, nil
}

// Set saves a description. An existing description is kept.
func (r *DescriptionRepo) Set(ctx context.Context, identifier, description string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO rpc_error_descriptions (identifier, description) VALUES ($1, $2)
		 ON CONFLICT (identifier) DO NOTHING`, identifier, description)
	if err != nil {
		return fmt.Errorf("failed to save description: %w", err)
	}
	return nil
}

// List returns every stored description ordered by identifier.
func (r *DescriptionRepo) List(ctx context.Context) ([]Description, error) {
	var rows []Description
	err := r.db.SelectContext(ctx, &rows,
		`SELECT identifier, description, hits FROM rpc_error_descriptions ORDER BY identifier`)
	if err != nil {
		return nil, fmt.Errorf("failed to list descriptions: %w", err)
	}
	return rows, nil
}
