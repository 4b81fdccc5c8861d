package solver

import (
	"encoding/binary"
	"hash/fnv"
)

// deriveSeed produces a diameter-specific Monte Carlo seed from the
// project's base seed, so each diameter's random search explores its own
// shuffle trajectory while staying fully reproducible for a fixed
// (baseSeed, dia) pair. It is orthogonal to SEQUENTIAL vs MIXED — both
// strategies derive the same per-diameter seed from the same base seed.
func deriveSeed(baseSeed int64, dia int) int64 {
	h := fnv.New32a()
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, uint32(dia))
	_, _ = h.Write(b)
	return baseSeed*31 + int64(h.Sum32())
}
