// Package testutil provides point fixtures and comparison helpers shared by
// tests across packages.
package testutil

import (
	"math/rand/v2"
	"slices"

	"github.com/roach88/squares/internal/geom"
)

// Grid returns every lattice point with 0 <= x < w and 0 <= y < h,
// row by row.
func Grid(w, h int) []geom.Point {
	out := make([]geom.Point, 0, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out = append(out, geom.Pt(x, y))
		}
	}
	return out
}

// SeedBlock returns the default lattice block: a 3x2 grid plus (0,2) and
// (1,2), in the order the seed command inserts them.
func SeedBlock() []geom.Point {
	return []geom.Point{
		geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(0, 1), geom.Pt(1, 1),
		geom.Pt(2, 0), geom.Pt(2, 1), geom.Pt(0, 2), geom.Pt(1, 2),
	}
}

// Shuffled returns a copy of points in a permutation fixed by seed.
func Shuffled(points []geom.Point, seed uint64) []geom.Point {
	out := slices.Clone(points)
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	r.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// RandomPoints returns n distinct points inside [0, size) x [0, size),
// deterministic for a given seed. n must not exceed size*size.
func RandomPoints(n, size int, seed uint64) []geom.Point {
	return Shuffled(Grid(size, size), seed)[:n]
}
