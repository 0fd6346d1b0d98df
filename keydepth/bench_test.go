package keydepth

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/buffetboy2001/DriftingDroids/board"
)

func BenchmarkGoMap_PutIfGreater(b *testing.B) {
	var (
		keys, values = getStates(b.N)
		m            = make(map[uint64]byte)
	)

	b.ResetTimer()

	for i, key := range keys {
		if values[i] > m[key] {
			m[key] = values[i]
		}
	}
}

func BenchmarkKeyDepthMap_PutIfGreater64(b *testing.B) {
	var (
		keys, values = getStates(b.N)
		m            = newBenchMap()
	)

	b.ResetTimer()

	for i, key := range keys {
		m.PutIfGreater64(key, values[i])
	}
}

func BenchmarkKeyDepthMap_PutIfGreater32(b *testing.B) {
	var (
		keys, values = getStates(b.N)
		m            = newBenchMap()
	)

	b.ResetTimer()

	for i, key := range keys {
		m.PutIfGreater32(uint32(key), values[i])
	}
}

func newBenchMap() *Map {
	b := benchBoard()

	return New(b.Size, b.NumRobots(), b.PositionBits(), b.IsObstacle)
}

func benchBoard() *board.Board {
	return board.New(16, 16, 4)
}

func getStates(total int) ([]uint64, []byte) {
	const seed = 1234567890

	var (
		faker = gofakeit.New(seed)

		b  = benchBoard()
		km = board.NewKeyMaker(b)

		keys   = make([]uint64, total)
		values = make([]byte, total)
	)

	for i := range keys {
		keys[i] = km.Make64(randomState(faker, b, 64))
		values[i] = byte(faker.Number(1, 255))
	}

	return keys, values
}
