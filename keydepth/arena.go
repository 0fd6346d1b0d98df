package keydepth

const (
	blockShift = 16
	blockSize  = 1 << blockShift // slots per arena block
	blockMask  = blockSize - 1
)

// arena is an append-only pool of fixed-size blocks. Runs of slots are
// handed out by bumping a free pointer; nothing is ever freed. A run is
// addressed by a positive int32 handle: block<<blockShift | offset.
type arena[T int32 | byte] struct {
	blocks [][]T
	next   int // next free handle
	bound  int // first handle past the current block
}

// newArena returns an arena with its first block allocated and the first
// `reserve` slots claimed, so that handle 0 is never handed out and a zero
// slot can serve as the empty sentinel.
func newArena[T int32 | byte](reserve int) arena[T] {
	return arena[T]{
		blocks: [][]T{make([]T, blockSize)},
		next:   reserve,
		bound:  blockSize,
	}
}

// alloc claims a run of n slots and returns its handle. A run never
// straddles a block boundary: when n does not fit, the tail of the current
// block is abandoned and a fresh block is appended.
func (a *arena[T]) alloc(n int) int32 {
	if a.next+n > a.bound {
		a.blocks = append(a.blocks, make([]T, blockSize))
		a.next = a.bound
		a.bound += blockSize
	}

	h := a.next
	a.next += n

	return int32(h)
}

// block returns the block holding the given handle.
func (a *arena[T]) block(h int32) []T {
	return a.blocks[h>>blockShift]
}
