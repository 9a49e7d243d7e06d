// Package session - RNG utilities for tray shuffles and initial rotations.
//
// Determinism mirrors the generation pipeline: the session seed (or one
// derived from the catalog seed) feeds independent substreams for the tray
// order and the rotation deal, so replays reproduce the exact same deal.
package session

import "math/rand"

// Substream identifiers for the session seed.
const (
	trayStream uint64 = 0x74726179 // "tray"
	spinStream uint64 = 0x7370696e // "spin"
)

// deriveSeed mixes a parent seed and a stream identifier with a
// SplitMix64-style finalizer (Vigna 2014) into a new 64-bit seed.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// rngFor returns the deterministic RNG of one substream.
func rngFor(seed int64, stream uint64) *rand.Rand {
	return rand.New(rand.NewSource(deriveSeed(seed, stream)))
}

// shuffleIntsInPlace performs an in-place Fisher–Yates shuffle of a.
func shuffleIntsInPlace(a []int, rng *rand.Rand) {
	for i := len(a) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
