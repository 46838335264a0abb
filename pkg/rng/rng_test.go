package rng

import (
	"math"
	"testing"
)

func TestSameSeedSameSequence(t *testing.T) {
	a := New(7)
	b := New(7)
	for i := range 1000 {
		va, vb := a.Float64(), b.Float64()
		if va != vb {
			t.Fatalf("draw %d: %v != %v", i, va, vb)
		}
	}
}

func TestFloat64Bounds(t *testing.T) {
	for _, seed := range []int32{0, 1, -1, 42, math.MaxInt32, math.MinInt32} {
		r := New(seed)
		for range 500 {
			v := r.Float64()
			if v < 0 || v >= 1 {
				t.Fatalf("New(%d).Float64() = %v, want [0,1)", seed, v)
			}
		}
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a := New(1)
	b := New(2)
	same := 0
	for range 100 {
		if a.Float64() == b.Float64() {
			same++
		}
	}
	if same == 100 {
		t.Error("seeds 1 and 2 produced identical sequences")
	}
}

func TestFirstStep(t *testing.T) {
	r := New(0)
	state := uint64(seedMix)
	var mul uint64 = multiplier
	want := state*mul + increment
	if got := r.Uint64(); got != want {
		t.Errorf("New(0).Uint64() = %#x, want %#x", got, want)
	}
}

func TestNegativeSeedSignExtended(t *testing.T) {
	r := New(-1)
	if want := ^uint64(0) ^ seedMix; r.state != want {
		t.Errorf("New(-1).state = %#x, want %#x", r.state, want)
	}
}

func TestRange(t *testing.T) {
	tests := []struct {
		name     string
		min, max float64
	}{
		{"unit", 0, 1},
		{"symmetric", -2.5, 2.5},
		{"reversed", 3, -3},
		{"empty", 4, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(99)
			lo, hi := math.Min(tt.min, tt.max), math.Max(tt.min, tt.max)
			for range 200 {
				v := r.Range(tt.min, tt.max)
				if v < lo || v > hi {
					t.Fatalf("Range(%v, %v) = %v, out of bounds", tt.min, tt.max, v)
				}
			}
		})
	}
}

func TestOffsetWraps(t *testing.T) {
	tests := []struct {
		seed, delta, want int32
	}{
		{10, 1, 11},
		{math.MaxInt32, 1, math.MinInt32},
		{-1, 2, 1},
		{0, 0x55555555, 0x55555555},
	}
	for _, tt := range tests {
		if got := Offset(tt.seed, tt.delta); got != tt.want {
			t.Errorf("Offset(%d, %d) = %d, want %d", tt.seed, tt.delta, got, tt.want)
		}
	}
}
