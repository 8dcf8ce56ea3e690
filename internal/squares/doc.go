// Package squares enumerates the squares whose four corners all belong to a
// set of lattice points.
//
// Find is a pure function over a snapshot. For every unordered pair of
// points it treats the pair as one side of a candidate square and tries both
// perpendicular completions (the side vector rotated +90° and -90°, applied
// to both endpoints). A completion whose two remaining corners are present is
// a square. Each square is reachable from each of its four sides, so
// candidates are deduplicated by their canonical key (geom.SquareKey) and the
// first discovery wins.
//
// Cost is O(n²) pair iterations with O(1) membership lookups. Nothing is
// cached between calls.
package squares
