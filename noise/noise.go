// Package noise implements a deterministic, seedable pseudorandom value
// generator built on a 32-bit integer avalanche hash. Unlike a stateful PRNG,
// every value is a pure function of (seed, position): the same inputs yield
// the same output across calls, goroutines, and process restarts, which makes
// it suitable for procedural generation where content must be regenerable
// from a world seed.
//
// The package has two layers. The Mix functions and their range adapters are
// stateless and safe for unlimited concurrent use. Stream wraps them behind
// an advancing cursor for sequential draws; a Stream is single-owner and not
// safe for concurrent use.
package noise

// Mixing constants. These are fixed magic values chosen for bit diffusion;
// changing any of them changes every output, so they must stay bit-for-bit
// stable for compatibility with previously generated content.
const (
	mixA = 0x68E31DA4
	mixB = 0x85297A4D
	mixC = 0x1B56C4E9
)

// Coordinate-folding constants. Each arity has its own set; they are large
// prime-ish multipliers that fold an N-tuple into a single 1D position with
// low collision rates. Not shared across arities.
const (
	fold2Y int32 = 27742151

	fold3Y int32 = 27833021
	fold3Z int32 = 317130731

	fold4Y int32 = 29399999
	fold4Z int32 = 325767523
	fold4W int32 = 1495052261
)

const twoPow32 = 1 << 32

// Mix1D hashes a position and seed into a well-distributed 32-bit word.
// All arithmetic wraps on overflow; wraparound is part of the mixing, not an
// error condition. Every (position, seed) pair is a valid input.
func Mix1D(position int32, seed uint32) uint32 {
	w := uint32(position)
	w *= mixA
	w += seed
	w ^= w >> 8
	w += mixB
	w ^= w << 8
	w *= mixC
	w ^= w >> 8
	return w
}

// Mix2D hashes 2D integer coordinates and a seed. The coordinates are folded
// into a single position with wraparound signed arithmetic before hashing.
func Mix2D(x, y int32, seed uint32) uint32 {
	return Mix1D(x+y*fold2Y, seed)
}

// Mix3D hashes 3D integer coordinates and a seed.
func Mix3D(x, y, z int32, seed uint32) uint32 {
	return Mix1D(x+y*fold3Y+z*fold3Z, seed)
}

// Mix4D hashes 4D integer coordinates and a seed.
func Mix4D(x, y, z, w int32, seed uint32) uint32 {
	return Mix1D(x+y*fold4Y+z*fold4Z+w*fold4W, seed)
}

// Int1D returns the 1D noise word reinterpreted as a signed 32-bit value.
func Int1D(position int32, seed uint32) int32 {
	return int32(Mix1D(position, seed))
}

// Int2D returns the 2D noise word reinterpreted as a signed 32-bit value.
func Int2D(x, y int32, seed uint32) int32 {
	return int32(Mix2D(x, y, seed))
}

// Int3D returns the 3D noise word reinterpreted as a signed 32-bit value.
func Int3D(x, y, z int32, seed uint32) int32 {
	return int32(Mix3D(x, y, z, seed))
}

// Int4D returns the 4D noise word reinterpreted as a signed 32-bit value.
func Int4D(x, y, z, w int32, seed uint32) int32 {
	return int32(Mix4D(x, y, z, w, seed))
}

// ZeroToOne1D returns 1D noise mapped into [0, 1). The 1D form subtracts one
// from the raw word before dividing; the multi-dimensional forms divide the
// raw word directly. Both formulas are kept as-is for output compatibility
// with existing generated content.
func ZeroToOne1D(position int32, seed uint32) float64 {
	return float64(Mix1D(position, seed)-1) / twoPow32
}

// ZeroToOne2D returns 2D noise mapped into [0, 1).
func ZeroToOne2D(x, y int32, seed uint32) float64 {
	return float64(Mix2D(x, y, seed)) / twoPow32
}

// ZeroToOne3D returns 3D noise mapped into [0, 1).
func ZeroToOne3D(x, y, z int32, seed uint32) float64 {
	return float64(Mix3D(x, y, z, seed)) / twoPow32
}

// ZeroToOne4D returns 4D noise mapped into [0, 1).
func ZeroToOne4D(x, y, z, w int32, seed uint32) float64 {
	return float64(Mix4D(x, y, z, w, seed)) / twoPow32
}

// SignedUnit1D returns 1D noise mapped into [-1, 1].
func SignedUnit1D(position int32, seed uint32) float64 {
	return float64(Mix1D(position, seed))/twoPow32*2 - 1
}

// SignedUnit2D returns 2D noise mapped into [-1, 1].
func SignedUnit2D(x, y int32, seed uint32) float64 {
	return float64(Mix2D(x, y, seed))/twoPow32*2 - 1
}

// SignedUnit3D returns 3D noise mapped into [-1, 1].
func SignedUnit3D(x, y, z int32, seed uint32) float64 {
	return float64(Mix3D(x, y, z, seed))/twoPow32*2 - 1
}

// SignedUnit4D returns 4D noise mapped into [-1, 1].
func SignedUnit4D(x, y, z, w int32, seed uint32) float64 {
	return float64(Mix4D(x, y, z, w, seed))/twoPow32*2 - 1
}
