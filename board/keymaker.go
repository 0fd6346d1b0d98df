package board

// KeyMaker encodes the robot positions of one board state into the
// canonical integer key consumed by keydepth.Map.
//
// Every robot occupies one field of PositionBits bits. The non-goal robots
// are interchangeable for move generation, so their positions are sorted
// ascending into the low fields - any permutation of them yields the same
// key. The goal robot is not interchangeable; its position always goes into
// the highest field. Robot positions are pairwise distinct by construction
// (two robots never share a cell), which makes the fields of a key pairwise
// distinct as well.
type KeyMaker struct {
	bits    uint
	goal    int
	scratch []int
}

// NewKeyMaker returns a KeyMaker for the board's geometry and current goal
// robot. One KeyMaker serves all states of one search; it is not safe for
// concurrent use.
func NewKeyMaker(b *Board) *KeyMaker {
	return &KeyMaker{
		bits:    uint(b.PositionBits()),
		goal:    b.GoalRobot(),
		scratch: make([]int, b.NumRobots()-1),
	}
}

// Make64 encodes the given robot positions (robot -> position) into a
// 64-bit key. The positions must fit the board the KeyMaker was built for.
func (km *KeyMaker) Make64(robots []int) uint64 {
	sorted := km.scratch[:0]

	for i, p := range robots {
		if i == km.goal {
			continue
		}

		j := len(sorted)
		sorted = append(sorted, p)

		for ; j > 0 && sorted[j-1] > p; j-- {
			sorted[j] = sorted[j-1]
		}

		sorted[j] = p
	}

	var (
		key   uint64
		shift uint
	)

	for _, p := range sorted {
		key |= uint64(p) << shift
		shift += km.bits
	}

	return key | uint64(robots[km.goal])<<shift
}

// Make32 is Make64 for boards where all robot fields together fit into 32
// bits.
func (km *KeyMaker) Make32(robots []int) uint32 {
	return uint32(km.Make64(robots))
}
