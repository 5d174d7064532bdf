// Package names generates deterministic human-readable peer labels.
package names

import (
	"math/rand"
)

// Generate maps a seed to a two-word label, one word drawn from each
// dictionary by a seeded pseudo-random pick. The same seed always yields
// the same label, so a reconnecting peer keeps its name.
func Generate(seed int32) string {
	r := rand.New(rand.NewSource(int64(seed)))
	return prefixes[r.Intn(len(prefixes))] + " " + virtues[r.Intn(len(virtues))]
}

// Hash folds a string into a 32-bit seed: h = h*31 + codepoint with signed
// wraparound. It exists purely to make name assignment stable for a given
// peer id; it has no security property.
func Hash(s string) int32 {
	var h int32
	for _, r := range s {
		h = h*31 + int32(r)
	}
	return h
}
