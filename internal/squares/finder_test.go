package squares

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/squares/internal/geom"
	"github.com/roach88/squares/internal/testutil"
)

func TestFind_UnitSquare(t *testing.T) {
	points := []geom.Point{geom.Pt(0, 0), geom.Pt(0, 1), geom.Pt(1, 0), geom.Pt(1, 1)}

	found := Find(points)

	require.Len(t, found, 1)
	assert.Equal(t, []string{"0,0;0,1;1,0;1,1"}, testutil.Keys(found))
}

func TestFind_CornersInDiscoveryOrder(t *testing.T) {
	points := []geom.Point{geom.Pt(0, 0), geom.Pt(0, 1), geom.Pt(1, 0), geom.Pt(1, 1)}

	found := Find(points)

	// First pair (0,0)-(0,1) has side (0,1); only the -90° completion exists.
	require.Len(t, found, 1)
	assert.Equal(t, [4]geom.Point{geom.Pt(0, 0), geom.Pt(0, 1), geom.Pt(1, 0), geom.Pt(1, 1)}, found[0].Corners)
}

func TestFind_RotatedSquare(t *testing.T) {
	points := []geom.Point{geom.Pt(0, 1), geom.Pt(1, 0), geom.Pt(2, 1), geom.Pt(1, 2)}

	found := Find(points)

	require.Len(t, found, 1)
	assert.Equal(t, []string{"0,1;1,0;1,2;2,1"}, testutil.Keys(found))
	assert.Equal(t, 2, found[0].SideSquared())
}

func TestFind_SeedBlock(t *testing.T) {
	found := Find(testutil.SeedBlock())

	// Three unit squares. (2,2) is absent so there is no 2x2 square, but the
	// four edge midpoints around (1,1) form a square rotated by 45°.
	assert.Equal(t, []string{
		"0,0;0,1;1,0;1,1",
		"0,1;0,2;1,1;1,2",
		"0,1;1,0;1,2;2,1",
		"1,0;1,1;2,0;2,1",
	}, testutil.Keys(found))

	unit := 0
	for _, sq := range found {
		if sq.SideSquared() == 1 {
			unit++
		}
	}
	assert.Equal(t, 3, unit)
}

func TestFind_GridCounts(t *testing.T) {
	tests := []struct {
		size int
		want int
	}{
		{1, 0},
		{2, 1},
		{3, 6},
		{4, 20},
		{5, 50},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%dx%d", tt.size, tt.size), func(t *testing.T) {
			assert.Equal(t, tt.want, Count(testutil.Grid(tt.size, tt.size)))
		})
	}
}

func TestFind_FewerThanFourPoints(t *testing.T) {
	inputs := [][]geom.Point{
		nil,
		{},
		{geom.Pt(0, 0)},
		{geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(0, 1)},
	}

	for _, in := range inputs {
		found := Find(in)
		assert.NotNil(t, found)
		assert.Empty(t, found)
	}
}

func TestFind_NoFalsePositives(t *testing.T) {
	tests := []struct {
		name   string
		points []geom.Point
	}{
		{"rectangle", []geom.Point{geom.Pt(0, 0), geom.Pt(2, 0), geom.Pt(0, 1), geom.Pt(2, 1)}},
		{"rhombus", []geom.Point{geom.Pt(0, 0), geom.Pt(2, 1), geom.Pt(4, 0), geom.Pt(2, -1)}},
		{"collinear", []geom.Point{geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(2, 0), geom.Pt(3, 0)}},
		{"three corners", []geom.Point{geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(0, 1), geom.Pt(5, 5)}},
		{"parallelogram", []geom.Point{geom.Pt(0, 0), geom.Pt(2, 0), geom.Pt(3, 1), geom.Pt(1, 1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, Find(tt.points))
		})
	}
}

func TestFind_NegativeCoordinates(t *testing.T) {
	points := []geom.Point{geom.Pt(-5, -5), geom.Pt(-3, -4), geom.Pt(-4, -2), geom.Pt(-6, -3)}

	found := Find(points)

	require.Len(t, found, 1)
	assert.Equal(t, 5, found[0].SideSquared())
}

func TestFind_PermutationInvariant(t *testing.T) {
	base := testutil.Grid(4, 4)
	want := testutil.Keys(Find(base))

	for seed := uint64(1); seed <= 10; seed++ {
		got := testutil.Keys(Find(testutil.Shuffled(base, seed)))
		assert.Equal(t, want, got, "seed %d", seed)
	}
}

func TestFind_NoDuplicateKeys(t *testing.T) {
	found := Find(testutil.Grid(5, 5))

	seen := make(map[geom.SquareKey]bool)
	for _, sq := range found {
		assert.False(t, seen[sq.Key()], "square %s reported twice", sq.Key())
		seen[sq.Key()] = true
	}
}

func TestFind_EverySquareValid(t *testing.T) {
	points := testutil.Grid(5, 5)
	for _, sq := range Find(points) {
		assert.True(t, sq.Valid(), "invalid square %v", sq.Corners)
	}
}

func TestFind_MatchesBruteForce(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		points := testutil.RandomPoints(12, 5, seed)
		assert.Equal(t, testutil.BruteForceKeys(points), testutil.Keys(Find(points)), "seed %d", seed)
	}
}

func TestFind_RepeatedInputPoints(t *testing.T) {
	points := []geom.Point{geom.Pt(0, 0), geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(0, 1), geom.Pt(1, 1)}

	found := Find(points)

	require.Len(t, found, 1)
	assert.True(t, found[0].Valid())
}

func TestFindStored(t *testing.T) {
	stored := []geom.StoredPoint{
		{ID: "a", Point: geom.Pt(0, 0)},
		{ID: "b", Point: geom.Pt(0, 1)},
		{ID: "c", Point: geom.Pt(1, 0)},
		{ID: "d", Point: geom.Pt(1, 1)},
	}

	assert.Len(t, FindStored(stored), 1)
}

func BenchmarkFind(b *testing.B) {
	points := testutil.Grid(20, 20)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Find(points)
	}
}
