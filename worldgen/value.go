// Package worldgen builds coherent 2D noise fields on top of the scalar
// noise core: smoothed value noise, fractal accumulation, and parallel
// heightmap generation. Like the core, everything here is a pure function of
// its inputs, so terrain regenerates identically from the same seed.
package worldgen

import (
	"math"

	"github.com/wildgrid/noisekit/noise"
)

// Octaves configures fractal noise accumulation.
type Octaves struct {
	// Count is the number of noise layers summed.
	Count int
	// Lacunarity is the per-octave frequency multiplier.
	Lacunarity float64
	// Persistence is the per-octave amplitude multiplier.
	Persistence float64
}

// DefaultOctaves returns the conventional terrain settings: four octaves,
// doubling frequency and halving amplitude each layer.
func DefaultOctaves() Octaves {
	return Octaves{Count: 4, Lacunarity: 2, Persistence: 0.5}
}

// ValueNoise2D returns smoothed value noise in [0, 1) at a continuous 2D
// point. Lattice values come from the integer noise hash at the four
// surrounding corners, blended with a smoothstep fade so the field has no
// visible grid discontinuities.
func ValueNoise2D(x, y float64, seed uint32) float64 {
	fx, fy := math.Floor(x), math.Floor(y)
	x0, y0 := int32(fx), int32(fy)
	tx, ty := fade(x-fx), fade(y-fy)

	c00 := noise.ZeroToOne2D(x0, y0, seed)
	c10 := noise.ZeroToOne2D(x0+1, y0, seed)
	c01 := noise.ZeroToOne2D(x0, y0+1, seed)
	c11 := noise.ZeroToOne2D(x0+1, y0+1, seed)

	return lerp(lerp(c00, c10, tx), lerp(c01, c11, tx), ty)
}

// Fractal2D sums octaves of value noise and normalizes the result to [0, 1).
// Each octave draws from a distinct seed so the layers are decorrelated.
func Fractal2D(x, y float64, seed uint32, o Octaves) float64 {
	if o.Count <= 1 {
		return ValueNoise2D(x, y, seed)
	}

	var total, maxAmp float64
	amp, freq := 1.0, 1.0
	for i := 0; i < o.Count; i++ {
		total += ValueNoise2D(x*freq, y*freq, seed+uint32(i)) * amp
		maxAmp += amp
		freq *= o.Lacunarity
		amp *= o.Persistence
	}
	return total / maxAmp
}

// fade is the quintic smoothstep 6t^5 - 15t^4 + 10t^3.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
