package testutil

import (
	"slices"

	"github.com/roach88/squares/internal/geom"
)

// Keys returns the sorted string keys of squares, for order-independent
// comparison of results.
func Keys(squares []geom.Square) []string {
	out := make([]string, len(squares))
	for i, sq := range squares {
		out[i] = sq.Key().String()
	}
	slices.Sort(out)
	return out
}

// BruteForceKeys checks every 4-point subset with geom.Square.Valid and
// returns the sorted keys of the squares found. Exponentially slower than
// the finder; only for small cross-check inputs.
func BruteForceKeys(points []geom.Point) []string {
	out := []string{}
	n := len(points)
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			for c := b + 1; c < n; c++ {
				for d := c + 1; d < n; d++ {
					sq := geom.NewSquare(points[a], points[b], points[c], points[d])
					if sq.Valid() {
						out = append(out, sq.Key().String())
					}
				}
			}
		}
	}
	slices.Sort(out)
	return out
}
