// Package rng provides the seeded pseudo-random source behind every jittered
// stroke.
//
// The generator is a 64-bit linear congruential generator. It is a plain value:
// there is no package-level state, and two generators created from the same
// seed always yield the same sequence. Callers create one generator per element
// (or per pass) and pass it by pointer into the jitter functions that consume it.
//
//	r := rng.New(el.Seed)
//	dx := r.Range(-1, 1)
package rng

const (
	// seedMix is xor-ed into the sign-extended seed before the first step.
	seedMix = 0x9E3779B97F4A7C15

	// zeroState replaces a mixed state of exactly 0, which would otherwise
	// collapse the sequence.
	zeroState = 0xDEADBEEFCAFEBABE

	multiplier = 6364136223846793005
	increment  = 1
)

// LCG is a deterministic linear congruential generator.
// The zero value is not useful; create generators with [New].
type LCG struct {
	state uint64
}

// New returns a generator seeded from an element seed.
// Negative seeds are sign-extended to 64 bits before mixing.
func New(seed int32) LCG {
	s := uint64(int64(seed)) ^ seedMix
	if s == 0 {
		s = zeroState
	}
	return LCG{state: s}
}

// Uint64 advances the generator and returns the raw 64-bit state.
func (r *LCG) Uint64() uint64 {
	r.state = r.state*multiplier + increment
	return r.state
}

// Float64 returns a uniformly distributed value in [0, 1) built from the top
// 53 bits of the next state.
func (r *LCG) Float64() float64 {
	return float64(r.Uint64()>>11) / (1 << 53)
}

// Range returns a value in [min, max). When min > max the interval is
// traversed backwards, which callers rely on for signed amplitudes.
func (r *LCG) Range(min, max float64) float64 {
	return min + (max-min)*r.Float64()
}

// Offset derives the seed for an additional pass. It wraps around on overflow
// so every int32 seed has a well-defined successor.
func Offset(seed int32, delta int32) int32 {
	return int32(uint32(seed) + uint32(delta))
}
