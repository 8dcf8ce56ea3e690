package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/squares/internal/geom"
)

func TestMemory_Len(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	assert.Equal(t, 0, m.Len())

	sp, err := m.Add(ctx, geom.Pt(1, 1))
	require.NoError(t, err)
	assert.Equal(t, 1, m.Len())

	require.NoError(t, m.Delete(ctx, sp.ID))
	assert.Equal(t, 0, m.Len())
}

func TestMemory_DefaultIDsAreUUIDs(t *testing.T) {
	m := NewMemory()

	sp, err := m.Add(context.Background(), geom.Pt(0, 0))
	require.NoError(t, err)
	assert.Len(t, sp.ID, 36)
}

func TestMemory_DeletePreservesOrder(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(WithIDGenerator(NewSequenceGenerator("")))

	added, err := m.AddBatch(ctx, []geom.Point{geom.Pt(0, 0), geom.Pt(1, 1), geom.Pt(2, 2), geom.Pt(3, 3)})
	require.NoError(t, err)
	require.NoError(t, m.Delete(ctx, added[1].ID))

	all, err := m.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []geom.Point{geom.Pt(0, 0), geom.Pt(2, 2), geom.Pt(3, 3)}, geom.Points(all))
}
