package noise

import rand "math/rand/v2"

// Source adapts a Stream to the math/rand/v2 Source interface, so noise
// streams can drive rand.Rand consumers (shuffles, distributions) without
// reimplementing them. Each Uint64 consumes two cursor positions.
type Source struct {
	stream *Stream
}

// NewSource wraps an existing stream. The source shares the stream's cursor.
func NewSource(s *Stream) *Source {
	return &Source{stream: s}
}

// Uint64 returns two consecutive noise words packed into one 64-bit value.
func (s *Source) Uint64() uint64 {
	hi := uint64(s.stream.NextUint32())
	lo := uint64(s.stream.NextUint32())
	return hi<<32 | lo
}

// NewRand returns a *rand.Rand drawing from a fresh noise stream at
// position 0. Two rands built from the same seed produce identical
// sequences.
func NewRand(seed uint32) *rand.Rand {
	return rand.New(NewSource(NewStream(seed, 0)))
}
