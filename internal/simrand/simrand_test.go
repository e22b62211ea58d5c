package simrand

import "testing"

// The first outputs for seed 12345. These values pin the generator against
// the other language renditions of this benchmark; if they drift, every
// cross-engine comparison built on seed 12345 becomes invalid.
var seed12345Sequence = []float32{
	0.6551513671875,
	0.3048095703125,
	0.674957275390625,
	0.10675048828125,
	0.516571044921875,
	0.489654541015625,
	0.602447509765625,
	0.36993408203125,
	0.25665283203125,
	0.374176025390625,
	0.8255615234375,
	0.172698974609375,
}

func TestNextFloat32PinnedSequence(t *testing.T) {
	rng := New(12345)
	for i, want := range seed12345Sequence {
		got := rng.NextFloat32()
		if got != want {
			t.Fatalf("draw %d for seed 12345: got %v, want %v", i, got, want)
		}
	}
}

func TestNextFloat32Deterministic(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 1000; i++ {
		va, vb := a.NextFloat32(), b.NextFloat32()
		if va != vb {
			t.Fatalf("draw %d diverged: %v != %v", i, va, vb)
		}
	}
}

func TestNextFloat32Range(t *testing.T) {
	rng := New(987654321)
	for i := 0; i < 100000; i++ {
		v := rng.NextFloat32()
		if v < 0 || v >= 1 {
			t.Fatalf("draw %d out of [0,1): %v", i, v)
		}
	}
}

func TestNextFloat32ZeroSeed(t *testing.T) {
	// seed 0 advances to 12345, whose high bits are all below 2^16.
	rng := New(0)
	if v := rng.NextFloat32(); v != 0 {
		t.Fatalf("first draw for seed 0: got %v, want 0", v)
	}
}

func TestNextUint16Pinned(t *testing.T) {
	rng := New(12345)
	if v := rng.NextUint16(); v != 42935 {
		t.Fatalf("first uint16 for seed 12345: got %d, want 42935", v)
	}
}

func TestNextUint8Pinned(t *testing.T) {
	rng := New(12345)
	if v := rng.NextUint8(); v != 167 {
		t.Fatalf("first uint8 for seed 12345: got %d, want 167", v)
	}
}

func BenchmarkNextFloat32(b *testing.B) {
	rng := New(12345)
	var sink float32
	for i := 0; i < b.N; i++ {
		sink = rng.NextFloat32()
	}
	_ = sink
}
