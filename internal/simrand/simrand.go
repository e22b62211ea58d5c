// Package simrand provides the deterministic linear-congruential generator
// used for world generation and AI jitter. The recurrence and output scaling
// are fixed: for a given seed the sequence is bit-identical across runs and
// across ports of this benchmark, which is what makes cross-engine
// comparisons meaningful.
package simrand

// LCG is a 32-bit linear-congruential generator.
type LCG struct {
	seed uint32
}

// New returns a generator initialized with the given seed.
func New(seed uint32) *LCG {
	return &LCG{seed: seed}
}

// NextFloat32 advances the generator and returns a value in [0, 1).
func (r *LCG) NextFloat32() float32 {
	r.seed = r.seed*1103515245 + 12345
	return float32((r.seed/65536)%32768) / 32768.0
}

// NextUint16 scales the next float into [0, 65535].
func (r *LCG) NextUint16() uint16 {
	return uint16(r.NextFloat32() * 65535.0)
}

// NextUint8 scales the next float into [0, 255].
func (r *LCG) NextUint8() uint8 {
	return uint8(r.NextFloat32() * 255.0)
}
