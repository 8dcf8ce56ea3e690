package squares

import "github.com/roach88/squares/internal/geom"

// Find returns every distinct square whose corners are all in points.
//
// Squares are returned in discovery order, and each square's corners are in
// discovery order: the two points of the generating pair first, then the two
// completion points. Fewer than four points yields an empty, non-nil slice.
// Repeated input points are tolerated and never produce degenerate squares.
func Find(points []geom.Point) []geom.Square {
	found := []geom.Square{}
	if len(points) < 4 {
		return found
	}

	members := make(map[geom.Point]struct{}, len(points))
	for _, p := range points {
		members[p] = struct{}{}
	}
	has := func(p geom.Point) bool {
		_, ok := members[p]
		return ok
	}

	seen := make(map[geom.SquareKey]struct{})
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			p1, p2 := points[i], points[j]
			side := p2.Sub(p1)
			if side == (geom.Point{}) {
				continue
			}

			for _, rot := range rotations(side) {
				p3, p4 := p1.Add(rot), p2.Add(rot)
				if !has(p3) || !has(p4) {
					continue
				}

				sq := geom.NewSquare(p1, p2, p3, p4)
				key := sq.Key()
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}
				found = append(found, sq)
			}
		}
	}

	return found
}

// rotations returns the side vector (dx, dy) rotated +90° and -90°:
// (-dy, dx) then (dy, -dx).
func rotations(side geom.Point) [2]geom.Point {
	return [2]geom.Point{
		{X: -side.Y, Y: side.X},
		{X: side.Y, Y: -side.X},
	}
}

// FindStored runs Find over the coordinates of stored points.
func FindStored(stored []geom.StoredPoint) []geom.Square {
	return Find(geom.Points(stored))
}

// Count returns the number of distinct squares in points.
func Count(points []geom.Point) int {
	return len(Find(points))
}
