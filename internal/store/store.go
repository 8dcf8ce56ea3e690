package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/roach88/squares/internal/geom"
)

// Repository is the storage contract consumed by the points service.
type Repository interface {
	// Add inserts a point and returns it with its assigned ID.
	// Returns a *DuplicateError if a point with the same coordinates exists.
	Add(ctx context.Context, p geom.Point) (geom.StoredPoint, error)

	// Delete removes the point with the given ID.
	// Returns ErrNotFound if no such point exists.
	Delete(ctx context.Context, id string) error

	// AddBatch inserts all points or none of them.
	// Returns ErrEmptyBatch for an empty batch and a *DuplicateError if any
	// point collides with a stored point or with an earlier point in the batch.
	AddBatch(ctx context.Context, ps []geom.Point) ([]geom.StoredPoint, error)

	// ListAll returns a copy of every stored point in insertion order.
	ListAll(ctx context.Context) ([]geom.StoredPoint, error)

	// FindByCoordinates looks up a point by coordinates.
	// A missing point is reported with ok=false, not an error.
	FindByCoordinates(ctx context.Context, x, y int) (sp geom.StoredPoint, ok bool, err error)
}

var (
	// ErrDuplicate matches any *DuplicateError via errors.Is.
	ErrDuplicate = errors.New("duplicate point")

	// ErrNotFound is returned by Delete when the ID is unknown.
	ErrNotFound = errors.New("point not found")

	// ErrEmptyBatch is returned by AddBatch when given no points.
	ErrEmptyBatch = errors.New("empty batch")
)

// DuplicateError reports the coordinate that violated uniqueness.
type DuplicateError struct {
	Point geom.Point
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("point %s already exists", e.Point)
}

// Is makes errors.Is(err, ErrDuplicate) true for any DuplicateError.
func (e *DuplicateError) Is(target error) bool {
	return target == ErrDuplicate
}

// Option configures a store.
type Option func(*options)

type options struct {
	ids IDGenerator
}

// WithIDGenerator overrides the point ID generator.
// Defaults to UUIDv7Generator.
func WithIDGenerator(g IDGenerator) Option {
	return func(o *options) {
		o.ids = g
	}
}

func applyOptions(opts []Option) options {
	o := options{ids: UUIDv7Generator{}}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
