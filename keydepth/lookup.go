package keydepth

import (
	"math"

	"github.com/hideo55/go-popcount"
)

// noCell marks an obstacle position in the lookup tables. Obstacle
// positions must never appear in a key; the huge negative value makes a
// violation fail fast instead of silently corrupting a neighbour slot.
const noCell = math.MinInt32

// buildLookups derives the two per-position tables from the board geometry.
// For every non-obstacle position p:
//
//   - compact[p] is p renumbered with all obstacle cells removed, so that
//     trie fan-out covers exactly the usable cells;
//   - branchSize[p] is how many usable positions are greater than p, i.e.
//     the exact slot count a node reached through field value p needs.
//
// The obstacle predicate is consumed here and not retained.
func buildLookups(cells int, obstacle func(position int) bool) (branchSize, compact []int32) {
	words := make([]uint64, (cells+63)/64)

	for p := 0; p < cells; p++ {
		if obstacle(p) {
			words[p>>6] |= 1 << (uint(p) & 63)
		}
	}

	var (
		usable = cells - int(popcount.CountSlice(words))
		before = 0 // obstacles in the words preceding the current one
	)

	branchSize = make([]int32, cells)
	compact = make([]int32, cells)

	for p := 0; p < cells; p++ {
		var (
			bit  = uint(p) & 63
			word = words[p>>6]
		)

		if word>>bit&1 == 1 {
			branchSize[p] = noCell
			compact[p] = noCell
		} else {
			rank := before + int(popcount.Count(word&(1<<bit-1)))

			compact[p] = int32(p - rank)
			branchSize[p] = int32(usable - 1 - (p - rank))
		}

		if bit == 63 {
			before += int(popcount.Count(word))
		}
	}

	return branchSize, compact
}
