package store

import (
	"context"
	"slices"
	"sync"

	"github.com/roach88/squares/internal/geom"
)

var _ Repository = (*Memory)(nil)

// Memory is the in-memory reference Repository.
//
// The mutex only keeps snapshots consistent; callers still serialize writers
// themselves.
type Memory struct {
	mu     sync.RWMutex
	ids    IDGenerator
	points []geom.StoredPoint    // insertion order
	index  map[geom.Point]string // coordinate -> id
}

// NewMemory creates an empty in-memory store.
func NewMemory(opts ...Option) *Memory {
	o := applyOptions(opts)
	return &Memory{
		ids:   o.ids,
		index: make(map[geom.Point]string),
	}
}

// Add inserts a single point.
func (m *Memory) Add(ctx context.Context, p geom.Point) (geom.StoredPoint, error) {
	if err := ctx.Err(); err != nil {
		return geom.StoredPoint{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.index[p]; exists {
		return geom.StoredPoint{}, &DuplicateError{Point: p}
	}
	return m.insertLocked(p), nil
}

// Delete removes a point by ID.
func (m *Memory) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	i := slices.IndexFunc(m.points, func(sp geom.StoredPoint) bool { return sp.ID == id })
	if i < 0 {
		return ErrNotFound
	}
	delete(m.index, m.points[i].Point)
	m.points = slices.Delete(m.points, i, i+1)
	return nil
}

// AddBatch validates the whole batch before inserting anything.
func (m *Memory) AddBatch(ctx context.Context, ps []geom.Point) ([]geom.StoredPoint, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(ps) == 0 {
		return nil, ErrEmptyBatch
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Report the first collision in input order, whether it hits a stored
	// point or an earlier point of the batch.
	seen := make(map[geom.Point]struct{}, len(ps))
	for _, p := range ps {
		if _, exists := m.index[p]; exists {
			return nil, &DuplicateError{Point: p}
		}
		if _, dup := seen[p]; dup {
			return nil, &DuplicateError{Point: p}
		}
		seen[p] = struct{}{}
	}

	added := make([]geom.StoredPoint, 0, len(ps))
	for _, p := range ps {
		added = append(added, m.insertLocked(p))
	}
	return added, nil
}

// ListAll returns a copy of all points in insertion order.
func (m *Memory) ListAll(ctx context.Context) ([]geom.StoredPoint, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]geom.StoredPoint, len(m.points))
	copy(out, m.points)
	return out, nil
}

// FindByCoordinates looks up a point by its coordinates.
func (m *Memory) FindByCoordinates(ctx context.Context, x, y int) (geom.StoredPoint, bool, error) {
	if err := ctx.Err(); err != nil {
		return geom.StoredPoint{}, false, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	p := geom.Pt(x, y)
	id, ok := m.index[p]
	if !ok {
		return geom.StoredPoint{}, false, nil
	}
	return geom.StoredPoint{ID: id, Point: p}, true, nil
}

// Len returns the number of stored points.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.points)
}

func (m *Memory) insertLocked(p geom.Point) geom.StoredPoint {
	sp := geom.StoredPoint{ID: m.ids.Generate(), Point: p}
	m.points = append(m.points, sp)
	m.index[p] = sp.ID
	return sp
}
