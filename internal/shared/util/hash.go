package util

import (
	"crypto/sha256"
	"encoding/binary"
)

// SeedFromString derives a stable int64 seed from an arbitrary string. The
// same string always maps to the same seed, independent of platform.
func SeedFromString(s string) int64 {
	sum := sha256.Sum256([]byte(s))
	return int64(binary.BigEndian.Uint64(sum[:8]))
}
