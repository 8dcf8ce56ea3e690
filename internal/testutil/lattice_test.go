package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/squares/internal/geom"
)

func TestGrid(t *testing.T) {
	g := Grid(2, 2)
	assert.Equal(t, []geom.Point{geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(0, 1), geom.Pt(1, 1)}, g)
	assert.Empty(t, Grid(0, 5))
}

func TestShuffledIsDeterministicPermutation(t *testing.T) {
	g := Grid(4, 4)

	a := Shuffled(g, 7)
	b := Shuffled(g, 7)

	assert.Equal(t, a, b)
	assert.ElementsMatch(t, g, a)
	assert.Equal(t, Grid(4, 4), g, "input must not be modified")
}

func TestRandomPointsDistinct(t *testing.T) {
	pts := RandomPoints(10, 4, 3)

	assert.Len(t, pts, 10)
	seen := make(map[geom.Point]bool)
	for _, p := range pts {
		assert.False(t, seen[p])
		seen[p] = true
		assert.True(t, p.X >= 0 && p.X < 4 && p.Y >= 0 && p.Y < 4)
	}
}

func TestBruteForceKeysUnitSquare(t *testing.T) {
	assert.Equal(t, []string{"0,0;0,1;1,0;1,1"}, BruteForceKeys(Grid(2, 2)))
	assert.Empty(t, BruteForceKeys(Grid(3, 1)))
}

func TestKeysSorted(t *testing.T) {
	sqs := []geom.Square{
		geom.NewSquare(geom.Pt(1, 0), geom.Pt(2, 0), geom.Pt(1, 1), geom.Pt(2, 1)),
		geom.NewSquare(geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(0, 1), geom.Pt(1, 1)),
	}
	assert.Equal(t, []string{"0,0;0,1;1,0;1,1", "1,0;1,1;2,0;2,1"}, Keys(sqs))
}
