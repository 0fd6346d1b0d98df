package keydepth

// Map maps canonical robot-configuration keys to the best search depth seen
// so far. The zero value is not usable; construct one with New for each
// search and discard it afterwards. A Map is not safe for concurrent use.
type Map struct {
	nodes  arena[int32]
	leaves arena[byte]

	fieldShift uint
	fieldMask  uint64

	// Interior levels consume one field each; the remaining last field is
	// split between a terminal node and a leaf run. The first `plain`
	// levels carry too many remaining key bits for a branch slot, so they
	// always materialize real nodes.
	interior int
	plain    int

	leafShift    uint
	leafNodeMask uint64
	leafMask     uint64
	leafNodeSize int
	leafSize     int

	branchSize []int32
	compact    []int32

	size int
}

// New builds an empty Map for a board with `cells` grid positions (obstacle
// cells included), `robots` robots and `posBits` key bits per position. The
// obstacle predicate is consumed once to size the trie levels.
//
// Supported geometry: at least two robots, cells <= 65536, posBits <= 23
// and robots*posBits <= 64.
func New(cells, robots, posBits int, obstacle func(position int) bool) *Map {
	branchSize, compact := buildLookups(cells, obstacle)

	var (
		leafShift = uint(posBits) / 2
		leafSize  = 1 << (uint(posBits) - leafShift)
		totalBits = robots * posBits
	)

	return &Map{
		nodes:  newArena[int32](cells),   // the root node spans [0, cells)
		leaves: newArena[byte](leafSize), // keep handle 0 as the empty sentinel

		fieldShift: uint(posBits),
		fieldMask:  1<<uint(posBits) - 1,

		interior: robots - 1,
		plain:    (totalBits - branchSuffixBits + posBits - 1) / posBits,

		leafShift:    leafShift,
		leafNodeMask: 1<<leafShift - 1,
		leafMask:     uint64(leafSize - 1),
		leafNodeSize: 1 << leafShift,
		leafSize:     leafSize,

		branchSize: branchSize,
		compact:    compact,
	}
}

// PutIfGreater64 associates value with key if the key has never been seen
// or its stored value is less than value. It reports whether the write took
// effect; false means the key was already known at an equal or greater
// value. The key must be canonical (see the package doc) - this is not
// validated here.
func (m *Map) PutIfGreater64(key uint64, value byte) bool {
	return m.putIfGreater(key, value)
}

// PutIfGreater32 is PutIfGreater64 for boards whose keys fit into 32 bits.
func (m *Map) PutIfGreater32(key uint32, value byte) bool {
	return m.putIfGreater(uint64(key), value)
}

// Len returns the number of distinct keys accepted so far. The count is
// advisory: a value of zero stored at the terminal leaf level is not
// distinguishable from an absent entry there.
func (m *Map) Len() int {
	return m.size
}

// AllocatedBytes returns the total size of the arena blocks backing the
// Map. It only ever grows.
func (m *Map) AllocatedBytes() int64 {
	return int64(len(m.nodes.blocks))*blockSize*4 + int64(len(m.leaves.blocks))*blockSize
}

func (m *Map) putIfGreater(key uint64, value byte) bool {
	var (
		blk   = m.nodes.blocks[0] // root node
		cur   = int(key & m.fieldMask)
		idx   = cur
		level = 1
	)

	// Leading levels: the remaining suffix plus the value does not fit a
	// branch slot yet, so a missing child is materialized right away.
	for ; level < m.plain; level++ {
		slot := blk[idx]
		key >>= m.fieldShift

		if slot == 0 {
			slot = m.nodes.alloc(int(m.branchSize[cur]))
			blk[idx] = slot
		}

		next := int(key & m.fieldMask)

		blk = m.nodes.block(slot)
		idx = int(slot)&blockMask + int(m.compact[next]-m.compact[cur]) - 1
		cur = next
	}

	// Remaining interior levels: a slot is either empty, a compressed
	// branch, or a child node.
	for ; level < m.interior; level++ {
		slot := blk[idx]
		key >>= m.fieldShift

		switch {
		case slot == 0:
			// First key ever through this slot: keep the whole suffix
			// here and be done.
			blk[idx] = branchSlot(key, value)
			m.size++

			return true

		case slot < 0:
			prev, prevVal := branchSuffix(slot), branchValue(slot)

			if prev == key {
				if value > prevVal {
					blk[idx] = branchUpgrade(slot, value)

					return true
				}

				return false
			}

			// A second key shares this prefix: expand into a real node
			// and push the old branch one level down.
			child := m.nodes.alloc(int(m.branchSize[cur]))
			blk[idx] = child
			blk = m.nodes.block(child)

			var (
				base     = int(child)&blockMask - int(m.compact[cur]) - 1
				prevNext = int(prev & m.fieldMask)
				next     = int(key & m.fieldMask)
			)

			blk[base+int(m.compact[prevNext])] = branchSlot(prev>>m.fieldShift, prevVal)
			idx = base + int(m.compact[next])
			cur = next

		default:
			next := int(key & m.fieldMask)

			blk = m.nodes.block(slot)
			idx = int(slot)&blockMask + int(m.compact[next]-m.compact[cur]) - 1
			cur = next
		}
	}

	// Terminal node level: the low half of the last field indexes a node
	// of fixed size, with the same three slot states.
	slot := blk[idx]
	key >>= m.fieldShift

	switch {
	case slot == 0:
		blk[idx] = branchSlot(key, value)
		m.size++

		return true

	case slot < 0:
		prev, prevVal := branchSuffix(slot), branchValue(slot)

		if prev == key {
			if value > prevVal {
				blk[idx] = branchUpgrade(slot, value)

				return true
			}

			return false
		}

		child := m.nodes.alloc(m.leafNodeSize)
		blk[idx] = child
		blk = m.nodes.block(child)
		blk[int(child)&blockMask+int(prev&m.leafNodeMask)] = branchSlot(prev>>m.leafShift, prevVal)
		slot = child

	default:
		blk = m.nodes.block(slot)
	}

	idx = int(slot)&blockMask + int(key&m.leafNodeMask)

	// Leaf level: the high half of the last field indexes a run of bare
	// value bytes.
	lslot := blk[idx]
	key >>= m.leafShift

	switch {
	case lslot == 0:
		blk[idx] = branchSlot(key, value)
		m.size++

		return true

	case lslot < 0:
		prev, prevVal := branchSuffix(lslot), branchValue(lslot)

		if prev == key {
			if value > prevVal {
				blk[idx] = branchUpgrade(lslot, value)

				return true
			}

			return false
		}

		leaf := m.leaves.alloc(m.leafSize)
		blk[idx] = leaf
		m.leaves.block(leaf)[int(leaf)&blockMask+int(prev&m.leafMask)] = prevVal
		lslot = leaf
	}

	var (
		run = m.leaves.block(lslot)
		li  = int(lslot)&blockMask + int(key&m.leafMask)
	)

	if value > run[li] {
		if run[li] == 0 {
			m.size++
		}

		run[li] = value

		return true
	}

	return false
}
