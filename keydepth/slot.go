package keydepth

// A trie slot is an int32 in one of three states (see the package doc):
//
//	zero      empty  - nothing has ever passed through here
//	positive  child  - arena handle of the next node
//	negative  branch - a compressed branch: one key suffix plus its value
//
// The two's-complement packing is confined to the helpers below; the
// traversal only ever sees the three states and the decoded fields.

// branchSuffixBits is how many bits of key suffix fit into a branch slot
// next to the 8-bit value and the sign bit.
const branchSuffixBits = 31 - 8

// branchSlot packs a key suffix and a value into a branch slot. The suffix
// must fit branchSuffixBits. The suffix is stored inverted: with the unused
// high bits of its inversion all ones, the result is always negative, and a
// zero suffix with a zero value stays distinct from an empty slot.
func branchSlot(suffix uint64, value byte) int32 {
	return int32(^uint32(suffix)<<8) | int32(value)
}

// branchSuffix decodes the key suffix kept in a branch slot.
func branchSuffix(s int32) uint64 {
	return uint64(^s >> 8)
}

// branchValue decodes the value kept in a branch slot.
func branchValue(s int32) byte {
	return byte(s)
}

// branchUpgrade returns the branch slot with its value replaced.
func branchUpgrade(s int32, value byte) int32 {
	return (s ^ int32(branchValue(s))) | int32(value)
}
