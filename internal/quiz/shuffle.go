package quiz

import "math/rand"

// Shuffle returns a uniformly shuffled copy of in, leaving in untouched.
// The caller supplies the random source so tests can seed it.
func Shuffle[T any](in []T, rng *rand.Rand) []T {
	out := make([]T, len(in))
	copy(out, in)
	// Fisher-Yates, high index down.
	for i := len(out) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// BuildWorkingSet derives the ordered question list one session runs over.
// Shuffling happens first so a positive limit selects a random subset, not a
// fixed prefix. The input slice is never mutated; option slices are copied
// before any per-question shuffle.
func BuildWorkingSet(qs []Question, mode Mode, limit int, rng *rand.Rand) []Question {
	ws := qs
	switch mode {
	case ModeShuffle:
		ws = Shuffle(qs, rng)
	case ModeShuffleOptions:
		ws = Shuffle(qs, rng)
		for i := range ws {
			ws[i].Options = Shuffle(ws[i].Options, rng)
		}
	default:
		ws = make([]Question, len(qs))
		copy(ws, qs)
	}
	if limit > 0 && limit < len(ws) {
		ws = ws[:limit]
	}
	return ws
}
