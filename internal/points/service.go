package points

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/roach88/squares/internal/geom"
	"github.com/roach88/squares/internal/squares"
	"github.com/roach88/squares/internal/store"
)

// Service exposes the point operations over a store.Repository.
type Service struct {
	repo   store.Repository
	logger *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		s.logger = l
	}
}

// NewService creates a Service backed by repo.
func NewService(repo store.Repository, opts ...Option) *Service {
	s := &Service{repo: repo, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddPoint stores (x, y).
// Returns an Error with CodeDuplicatePoint if the coordinate is taken.
func (s *Service) AddPoint(ctx context.Context, x, y int) (geom.StoredPoint, error) {
	sp, err := s.repo.Add(ctx, geom.Pt(x, y))
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return geom.StoredPoint{}, newDuplicateError("add", x, y, err)
		}
		return geom.StoredPoint{}, fmt.Errorf("add point (%d, %d): %w", x, y, err)
	}

	s.logger.DebugContext(ctx, "point added", "x", x, "y", y, "id", sp.ID)
	return sp, nil
}

// DeletePoint removes the point at (x, y).
// Callers address points by coordinates; the store ID is resolved here.
func (s *Service) DeletePoint(ctx context.Context, x, y int) error {
	sp, ok, err := s.repo.FindByCoordinates(ctx, x, y)
	if err != nil {
		return fmt.Errorf("delete point (%d, %d): %w", x, y, err)
	}
	if !ok {
		return newNotFoundError("delete", x, y)
	}

	if err := s.repo.Delete(ctx, sp.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return newNotFoundError("delete", x, y)
		}
		return fmt.Errorf("delete point (%d, %d): %w", x, y, err)
	}

	s.logger.DebugContext(ctx, "point deleted", "x", x, "y", y, "id", sp.ID)
	return nil
}

// ImportPoints adds a non-empty batch atomically.
// An empty batch is CodeInvalidInput. A collision with a stored point or
// within the batch is CodeDuplicatePoint and nothing is added.
func (s *Service) ImportPoints(ctx context.Context, ps []geom.Point) ([]geom.StoredPoint, error) {
	if len(ps) == 0 {
		return nil, NewInvalidInputError("import", "no points to import", nil)
	}

	added, err := s.repo.AddBatch(ctx, ps)
	if err != nil {
		var dupErr *store.DuplicateError
		switch {
		case errors.As(err, &dupErr):
			return nil, newDuplicateError("import", dupErr.Point.X, dupErr.Point.Y, err)
		case errors.Is(err, store.ErrDuplicate):
			return nil, &Error{Code: CodeDuplicatePoint, Op: "import", Message: "batch contains a stored point", Err: err}
		case errors.Is(err, store.ErrEmptyBatch):
			return nil, NewInvalidInputError("import", "no points to import", err)
		}
		return nil, fmt.Errorf("import points: %w", err)
	}

	s.logger.DebugContext(ctx, "points imported", "count", len(added))
	return added, nil
}

// ListPoints returns a snapshot of all stored points.
func (s *Service) ListPoints(ctx context.Context) ([]geom.StoredPoint, error) {
	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list points: %w", err)
	}
	return all, nil
}

// FindPoint looks up the point at (x, y).
func (s *Service) FindPoint(ctx context.Context, x, y int) (geom.StoredPoint, bool, error) {
	sp, ok, err := s.repo.FindByCoordinates(ctx, x, y)
	if err != nil {
		return geom.StoredPoint{}, false, fmt.Errorf("find point (%d, %d): %w", x, y, err)
	}
	return sp, ok, nil
}

// FindSquares enumerates every square in the current point set.
// The set is read once; squares are recomputed on every call.
func (s *Service) FindSquares(ctx context.Context) ([]geom.Square, error) {
	snapshot, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("find squares: %w", err)
	}

	found := squares.FindStored(snapshot)
	s.logger.DebugContext(ctx, "squares enumerated", "points", len(snapshot), "squares", len(found))
	return found, nil
}
