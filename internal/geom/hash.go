package geom

import (
	"crypto/sha256"
	"encoding/hex"
)

// DomainSquare is the domain prefix for square identifiers.
// The version suffix allows the encoding to change without colliding with
// older identifiers.
const DomainSquare = "squares/square/v1"

// hashWithDomain computes SHA-256 with domain separation.
// Format: SHA256(domain + 0x00 + data)
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// SquareID computes the content-addressed ID for a square key.
// The ID is stable across runs and does not depend on corner discovery order,
// since it is derived from the sorted key.
func SquareID(k SquareKey) string {
	return hashWithDomain(DomainSquare, []byte(k.String()))
}
