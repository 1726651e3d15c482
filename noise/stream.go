package noise

import "math"

// DefaultSeed is the conventional seed for callers that do not care which
// stream they get. It is a named constant rather than an implicit default:
// Stream construction always takes an explicit seed.
const DefaultSeed uint32 = 0

// Stream is a sequential generator over the noise sequence for a single
// seed. Each generation method computes one sample at the current cursor
// position and advances the cursor by exactly one, so a Stream behaves like
// a traditional PRNG while remaining fully rewindable: SetPosition moves the
// cursor to any earlier or later point and the stream reproduces the exact
// same values from there.
//
// A Stream is owned by a single goroutine. Concurrent generation calls race
// on the cursor; callers that need sharing must serialize access or give
// each goroutine its own Stream.
type Stream struct {
	seed uint32
	pos  int32
}

// NewStream returns a stream over the given seed, starting at position.
func NewStream(seed uint32, position int32) *Stream {
	return &Stream{seed: seed, pos: position}
}

// ResetSeed rebinds the stream to a new seed and position, logically
// starting an unrelated stream in the same object.
func (s *Stream) ResetSeed(seed uint32, position int32) {
	s.seed = seed
	s.pos = position
}

// Seed returns the stream's seed. Reading never mutates the stream.
func (s *Stream) Seed() uint32 {
	return s.seed
}

// Position returns the current cursor position.
func (s *Stream) Position() int32 {
	return s.pos
}

// SetPosition moves the cursor. Rewinding to a previously visited position
// reproduces the exact sequence generated from there; it takes effect for
// the very next generation call.
func (s *Stream) SetPosition(position int32) {
	s.pos = position
}

// NextUint32 returns the raw noise word at the cursor and advances it.
func (s *Stream) NextUint32() uint32 {
	w := Mix1D(s.pos, s.seed)
	s.pos++
	return w
}

// NextInt32 returns the noise word at the cursor reinterpreted as signed.
func (s *Stream) NextInt32() int32 {
	return int32(s.NextUint32())
}

// ZeroToOne returns the next sample mapped into [0, 1).
func (s *Stream) ZeroToOne() float64 {
	v := ZeroToOne1D(s.pos, s.seed)
	s.pos++
	return v
}

// SignedUnit returns the next sample mapped into [-1, 1].
func (s *Stream) SignedUnit() float64 {
	v := SignedUnit1D(s.pos, s.seed)
	s.pos++
	return v
}

// IntBelow returns the next sample mapped into [0, bound) for positive
// bound. A zero bound short-circuits to 0 without consuming a cursor step.
// Negative bounds follow the same arithmetic with sign-following truncation,
// yielding values in (bound, 0].
func (s *Stream) IntBelow(bound int32) int32 {
	if bound == 0 {
		return 0
	}
	// The modulo guards against float rounding pushing the truncated
	// product to exactly bound.
	return int32(s.ZeroToOne()*float64(bound)) % bound
}

// IntInRange returns the next sample mapped into [lo, hi], inclusive of both
// ends. Inverted bounds are swapped.
func (s *Stream) IntInRange(lo, hi int32) int32 {
	if hi < lo {
		lo, hi = hi, lo
	}
	span := int64(hi) - int64(lo) + 1
	v := int64(s.ZeroToOne() * float64(span))
	if v >= span {
		v = span - 1
	}
	return int32(int64(lo) + v)
}

// FloatInRange returns the next sample mapped into [lo, hi]. Inverted bounds
// are swapped. Both ends are reachable up to float rounding.
func (s *Stream) FloatInRange(lo, hi float64) float64 {
	if hi < lo {
		lo, hi = hi, lo
	}
	return (s.SignedUnit()+1)*((hi-lo)/2) + lo
}

// Chance returns true with probability pTrue. A pTrue <= 0 never succeeds
// and a pTrue >= 1 always succeeds; either way one cursor step is consumed.
func (s *Stream) Chance(pTrue float64) bool {
	return s.ZeroToOne() < pTrue
}

// Direction2D returns a unit vector with uniformly distributed angle.
// Consumes exactly one cursor step.
func (s *Stream) Direction2D() (x, y float64) {
	theta := s.FloatInRange(0, 2*math.Pi)
	return math.Cos(theta), math.Sin(theta)
}

// InCircle returns a point uniformly distributed in the disk of the given
// radius, by rejection sampling from the bounding square. Each attempt
// consumes two cursor steps; acceptance probability is pi/4 per attempt, so
// the loop terminates almost surely but has no hard iteration cap. Callers
// needing a latency bound must impose it themselves.
func (s *Stream) InCircle(radius float64) (x, y float64) {
	for {
		x = s.FloatInRange(-radius, radius)
		y = s.FloatInRange(-radius, radius)
		if x*x+y*y <= radius*radius {
			return x, y
		}
	}
}
