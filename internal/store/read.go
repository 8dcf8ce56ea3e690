package store

import (
	"context"
	"fmt"

	"github.com/roach88/squares/internal/geom"
)

// ListAll returns all points ordered by insertion sequence.
//
// Returns an empty slice (not nil) if the store is empty.
func (s *SQLite) ListAll(ctx context.Context) ([]geom.StoredPoint, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, x, y
		FROM points
		ORDER BY seq ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query points: %w", err)
	}
	defer rows.Close()

	points := []geom.StoredPoint{}
	for rows.Next() {
		var sp geom.StoredPoint
		if err := rows.Scan(&sp.ID, &sp.X, &sp.Y); err != nil {
			return nil, fmt.Errorf("scan point: %w", err)
		}
		points = append(points, sp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate points: %w", err)
	}

	return points, nil
}

// FindByCoordinates looks up a point by its coordinates.
func (s *SQLite) FindByCoordinates(ctx context.Context, x, y int) (geom.StoredPoint, bool, error) {
	var sp geom.StoredPoint
	err := s.db.QueryRowContext(ctx, `
		SELECT id, x, y
		FROM points
		WHERE x = ? AND y = ?
	`, x, y).Scan(&sp.ID, &sp.X, &sp.Y)
	if errNoRows(err) {
		return geom.StoredPoint{}, false, nil
	}
	if err != nil {
		return geom.StoredPoint{}, false, fmt.Errorf("find point (%d, %d): %w", x, y, err)
	}
	return sp, true, nil
}

// Count returns the number of stored points.
func (s *SQLite) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM points`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count points: %w", err)
	}
	return n, nil
}
