package noise

import (
	"testing"
)

// Golden values derived once from the defining formula. These pin the hash
// bit-for-bit: if any mixing constant or step changes, these fail.
func TestMix1DGoldenValues(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		position int32
		seed     uint32
		want     uint32
	}{
		{"origin seed 42", 0, 42, 0x8060BD12},
		{"position one", 1, 42, 0x966F67BE},
		{"negative position", -1, 42, 0x87A9380F},
		{"larger position", 1000, 42, 0x4CFE97C2},
		{"zero everything", 0, 0, 0x40B2BB5C},
		{"arbitrary pair", 123456, 99, 0xAAE6768D},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Mix1D(tt.position, tt.seed); got != tt.want {
				t.Errorf("Mix1D(%d, %d) = %#x, want %#x", tt.position, tt.seed, got, tt.want)
			}
		})
	}
}

func TestMix1DDeterminism(t *testing.T) {
	t.Parallel()
	seeds := []uint32{0, 1, 42, 0xDEADBEEF, 1<<32 - 1}
	positions := []int32{-1 << 31, -12345, -1, 0, 1, 7777, 1<<31 - 1}

	for _, seed := range seeds {
		for _, pos := range positions {
			first := Mix1D(pos, seed)
			second := Mix1D(pos, seed)
			if first != second {
				t.Fatalf("Mix1D(%d, %d) not deterministic: %#x != %#x", pos, seed, first, second)
			}
		}
	}
}

// The multi-dimensional variants must be exactly the 1D hash of the folded
// position, including when the fold wraps around int32.
func TestCoordinateFoldEquivalence(t *testing.T) {
	t.Parallel()
	coords := []int32{-1 << 31, -99999, -3, 0, 1, 4, 100000, 1<<31 - 1}
	const seed = 7

	for _, x := range coords {
		for _, y := range coords {
			if got, want := Mix2D(x, y, seed), Mix1D(x+y*27742151, seed); got != want {
				t.Fatalf("Mix2D(%d, %d) = %#x, want Mix1D of fold = %#x", x, y, got, want)
			}
			for _, z := range coords {
				if got, want := Mix3D(x, y, z, seed), Mix1D(x+y*27833021+z*317130731, seed); got != want {
					t.Fatalf("Mix3D(%d, %d, %d) = %#x, want %#x", x, y, z, got, want)
				}
			}
		}
	}

	// 4D spot checks; the full cross product is excessive.
	quads := [][4]int32{
		{0, 0, 0, 0},
		{1, 2, 3, 4},
		{-5, 17, -444, 9},
		{1<<31 - 1, -1 << 31, 123, -456},
	}
	for _, q := range quads {
		got := Mix4D(q[0], q[1], q[2], q[3], seed)
		want := Mix1D(q[0]+q[1]*29399999+q[2]*325767523+q[3]*1495052261, seed)
		if got != want {
			t.Fatalf("Mix4D(%v) = %#x, want %#x", q, got, want)
		}
	}
}

func TestSignedAdapterReinterpretsWord(t *testing.T) {
	t.Parallel()
	pairs := []struct {
		pos  int32
		seed uint32
	}{{0, 42}, {-1, 42}, {9999, 0}, {-777, 0xCAFEBABE}}

	for _, p := range pairs {
		if got, want := Int1D(p.pos, p.seed), int32(Mix1D(p.pos, p.seed)); got != want {
			t.Errorf("Int1D(%d, %d) = %d, want %d", p.pos, p.seed, got, want)
		}
		if got, want := Int2D(p.pos, p.pos, p.seed), int32(Mix2D(p.pos, p.pos, p.seed)); got != want {
			t.Errorf("Int2D mismatch at %+v: %d != %d", p, got, want)
		}
		if got, want := Int3D(p.pos, 1, 2, p.seed), int32(Mix3D(p.pos, 1, 2, p.seed)); got != want {
			t.Errorf("Int3D mismatch at %+v: %d != %d", p, got, want)
		}
		if got, want := Int4D(p.pos, 1, 2, 3, p.seed), int32(Mix4D(p.pos, 1, 2, 3, p.seed)); got != want {
			t.Errorf("Int4D mismatch at %+v: %d != %d", p, got, want)
		}
	}
}

// The 1D zero-to-one adapter subtracts one from the word before dividing;
// the 2D+ adapters divide the raw word. Both formulas are pinned here so
// neither is silently unified.
func TestZeroToOneFormulas(t *testing.T) {
	t.Parallel()
	if got, want := ZeroToOne1D(0, 42), 0.5014761129859835; got != want {
		t.Errorf("ZeroToOne1D(0, 42) = %v, want %v", got, want)
	}
	if got, want := ZeroToOne2D(3, 4, 7), float64(Mix2D(3, 4, 7))/(1<<32); got != want {
		t.Errorf("ZeroToOne2D(3, 4, 7) = %v, want %v", got, want)
	}
	if got, want := ZeroToOne3D(3, 4, 5, 7), float64(Mix3D(3, 4, 5, 7))/(1<<32); got != want {
		t.Errorf("ZeroToOne3D = %v, want %v", got, want)
	}
	if got, want := ZeroToOne4D(3, 4, 5, 6, 7), float64(Mix4D(3, 4, 5, 6, 7))/(1<<32); got != want {
		t.Errorf("ZeroToOne4D = %v, want %v", got, want)
	}
}

func TestFloatAdapterRanges(t *testing.T) {
	t.Parallel()
	seeds := []uint32{0, 42, 0xFFFFFFFF}
	for _, seed := range seeds {
		for pos := int32(0); pos < 1_000_000; pos++ {
			v := ZeroToOne1D(pos, seed)
			if v < 0 || v >= 1 {
				t.Fatalf("ZeroToOne1D(%d, %d) = %v out of [0,1)", pos, seed, v)
			}
			u := SignedUnit1D(pos, seed)
			if u < -1 || u > 1 {
				t.Fatalf("SignedUnit1D(%d, %d) = %v out of [-1,1]", pos, seed, u)
			}
		}
	}
}
