// Package geom provides the lattice types shared by every other package.
//
// This package contains value types only. All other internal packages
// import geom; geom imports nothing internal.
//
// Key design constraints:
//   - Integer coordinates only; there is no float anywhere
//   - Point equality is coordinate equality (store IDs never participate)
//   - A square's identity is the sorted set of its four corners (SquareKey),
//     independent of the order in which the corners were discovered
package geom
