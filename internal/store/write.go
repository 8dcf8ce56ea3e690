package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/roach88/squares/internal/geom"
)

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Add inserts a single point.
// The UNIQUE(x, y) constraint is the only duplicate check.
func (s *SQLite) Add(ctx context.Context, p geom.Point) (geom.StoredPoint, error) {
	return s.insert(ctx, s.db, p)
}

// Delete removes a point by ID.
func (s *SQLite) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM points WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete point: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete point: rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// AddBatch inserts every point inside one transaction.
// Any failure rolls the transaction back, so nothing from the batch is kept.
func (s *SQLite) AddBatch(ctx context.Context, ps []geom.Point) ([]geom.StoredPoint, error) {
	if len(ps) == 0 {
		return nil, ErrEmptyBatch
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("add batch: begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	added := make([]geom.StoredPoint, 0, len(ps))
	for _, p := range ps {
		sp, err := s.insert(ctx, tx, p)
		if err != nil {
			return nil, err
		}
		added = append(added, sp)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("add batch: commit: %w", err)
	}
	return added, nil
}

func (s *SQLite) insert(ctx context.Context, ex execer, p geom.Point) (geom.StoredPoint, error) {
	sp := geom.StoredPoint{ID: s.ids.Generate(), Point: p}

	_, err := ex.ExecContext(ctx, `
		INSERT INTO points (id, x, y)
		VALUES (?, ?, ?)
	`, sp.ID, sp.X, sp.Y)
	if err != nil {
		if isCoordinateConflict(err) {
			return geom.StoredPoint{}, &DuplicateError{Point: p}
		}
		return geom.StoredPoint{}, fmt.Errorf("insert point %s: %w", p, err)
	}
	return sp, nil
}

// errNoRows reports whether err means the lookup found nothing.
func errNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
