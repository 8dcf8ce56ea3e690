package geom

import (
	"slices"
	"strconv"
	"strings"
)

// Square is four lattice points forming a square. Corners are kept in the
// order they were discovered; use Key or Canonical for order-independent
// comparison.
type Square struct {
	Corners [4]Point `json:"corners"`
}

// NewSquare builds a square from four corners in discovery order.
// It does not check that the corners actually form a square.
func NewSquare(a, b, c, d Point) Square {
	return Square{Corners: [4]Point{a, b, c, d}}
}

// SquareKey is the canonical form of a square: its corners sorted by x then y.
// Two squares with the same corner set have equal keys regardless of corner
// order, so a SquareKey can be used directly as a map key for deduplication.
type SquareKey [4]Point

// Key returns the canonical key of the square.
func (s Square) Key() SquareKey {
	k := SquareKey(s.Corners)
	slices.SortFunc(k[:], func(a, b Point) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		default:
			return 0
		}
	})
	return k
}

// Canonical returns a copy of the square with corners in key order.
func (s Square) Canonical() Square {
	return Square{Corners: [4]Point(s.Key())}
}

// ID returns the content-addressed identifier of the square.
// See SquareID.
func (s Square) ID() string {
	return SquareID(s.Key())
}

// Contains reports whether p is one of the square's corners.
func (s Square) Contains(p Point) bool {
	return slices.Contains(s.Corners[:], p)
}

// SideSquared returns the squared side length, taken from the first two
// discovered corners (which always share a side).
func (s Square) SideSquared() int {
	d := s.Corners[1].Sub(s.Corners[0])
	return d.X*d.X + d.Y*d.Y
}

// Valid reports whether the corners form a non-degenerate square: four
// distinct points, four equal sides and two equal diagonals.
func (s Square) Valid() bool {
	k := s.Key()
	for i := 1; i < len(k); i++ {
		if k[i] == k[i-1] {
			return false
		}
	}

	// Collect the six pairwise squared distances. A square has four equal
	// sides s and two equal diagonals 2s.
	var dists []int
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			d := k[j].Sub(k[i])
			dists = append(dists, d.X*d.X+d.Y*d.Y)
		}
	}
	slices.Sort(dists)
	side := dists[0]
	return side > 0 &&
		dists[3] == side &&
		dists[4] == 2*side &&
		dists[5] == 2*side
}

// String renders the key as "x,y;x,y;x,y;x,y".
func (k SquareKey) String() string {
	var b strings.Builder
	for i, p := range k {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(strconv.Itoa(p.X))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(p.Y))
	}
	return b.String()
}
