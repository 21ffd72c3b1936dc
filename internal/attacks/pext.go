package attacks

import "golang.org/x/sys/cpu"

// pextAvailable reports whether the host CPU advertises BMI2, the
// instruction set family the hardware PEXT/PDEP bit-gather
// instructions belong to. Go exposes no PEXT intrinsic, so this only
// gates which lookup table (dense pext-indexed, or magic-hash indexed)
// Rook/Bishop read from; both tables are always populated at init time,
// and the gather itself is always done in software.
var pextAvailable = cpu.X86.HasBMI2

// pextGather performs a software bit-gather: the bits of src selected
// by mask are packed into the low bits of the result, in mask's
// bit order. This is the semantics of the x86 PEXT instruction,
// reimplemented without hardware support so the magic-table build
// and lookup paths can share one code shape regardless of platform.
func pextGather(src, mask bb) uint64 {
	var result uint64
	m := mask
	i := uint(0)
	for m != 0 {
		s := m.LSB()
		m &= m - 1
		if src.IsSet(s) {
			result |= 1 << i
		}
		i++
	}
	return result
}
