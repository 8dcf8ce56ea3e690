package points

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/roach88/squares/internal/geom"
	"github.com/roach88/squares/internal/store"
)

var _ store.Repository = (*mockRepository)(nil)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Add(ctx context.Context, p geom.Point) (geom.StoredPoint, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(geom.StoredPoint), args.Error(1)
}

func (m *mockRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockRepository) AddBatch(ctx context.Context, ps []geom.Point) ([]geom.StoredPoint, error) {
	args := m.Called(ctx, ps)
	added, _ := args.Get(0).([]geom.StoredPoint)
	return added, args.Error(1)
}

func (m *mockRepository) ListAll(ctx context.Context) ([]geom.StoredPoint, error) {
	args := m.Called(ctx)
	all, _ := args.Get(0).([]geom.StoredPoint)
	return all, args.Error(1)
}

func (m *mockRepository) FindByCoordinates(ctx context.Context, x, y int) (geom.StoredPoint, bool, error) {
	args := m.Called(ctx, x, y)
	return args.Get(0).(geom.StoredPoint), args.Bool(1), args.Error(2)
}
