// Package keydepth defines a compact map from canonical robot-configuration
// keys to search depths, used by a sliding-robots solver to recognize board
// states that were already reached at an equal or shallower depth.
//
// The map is a trie (prefix tree) over the fixed-width position fields of a
// key. It is specialized for the keys produced by board.KeyMaker and relies
// on their properties:
//
//   - a key consists of N fields: the positions of the N robots on the board;
//   - all fields of a key are pairwise distinct (no two robots share a cell);
//   - fields 1...N-1 are sorted ascending (interchangeable robots collapse
//     to one canonical key);
//   - the goal robot's field comes last.
//
// Trie nodes live in an append-only arena of 65536-slot blocks and are
// addressed by a positive int32 handle (block<<16 | offset). One slot is an
// int32 in one of three states:
//
//   - Empty slot:
//
//     [   32:31-00   ]
//     <00000000...000>
//
//   - Child slot (positive: handle of the next node):
//
//     [ 1:31 ] [      31:30-00      ]
//     <0:chld> <HHHH...HHH:handle>
//
//   - Branch slot (negative: a compressed branch holding the one key suffix
//     that has ever passed through this slot, plus its value):
//
//     [ 1:31 ] [     23:30-08      ] [  8:07-00  ]
//     <1:brch> <SSS...SSS:^suffix>   <VVVV:value>
//
// The suffix is stored inverted, so a suffix of zero with a value of zero is
// still distinct from the empty sentinel. A branch slot expands into a real
// node only when a second, differing key needs to pass through it: until
// then a never-before-seen suffix costs one slot instead of a path of nodes.
//
// Interior nodes are sized from a per-position lookup table so that a node
// reached through field value v only has slots for the field values that can
// still follow v (fields are sorted and distinct, so values <= v can never
// appear again). Obstacle cells are removed from the numbering entirely. The
// last field of a key is split in half: the low bits index a small terminal
// node, the high bits a run of bare value bytes in a separate leaf arena.
//
// The sole mutation is update-if-greater: a write takes effect only if the
// key is new or its stored value is less than the new one. There is no
// deletion; a Map is built for one search and discarded. Nothing is
// synchronized: one goroutine owns a Map at a time.
package keydepth
