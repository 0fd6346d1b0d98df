package keydepth

import (
	"fmt"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildLookups(t *testing.T) {
	t.Parallel()

	for _, tcase := range []*struct {
		Name          string
		Cells         int
		Obstacles     []int
		ExpBranchSize []int32
		ExpCompact    []int32
	}{
		{
			Name:          "no_obstacles",
			Cells:         4,
			ExpBranchSize: []int32{3, 2, 1, 0},
			ExpCompact:    []int32{0, 1, 2, 3},
		},
		{
			Name:          "two_obstacles",
			Cells:         8,
			Obstacles:     []int{2, 5},
			ExpBranchSize: []int32{5, 4, noCell, 3, 2, noCell, 1, 0},
			ExpCompact:    []int32{0, 1, noCell, 2, 3, noCell, 4, 5},
		},
		{
			Name:          "leading_obstacle",
			Cells:         3,
			Obstacles:     []int{0},
			ExpBranchSize: []int32{noCell, 1, 0},
			ExpCompact:    []int32{noCell, 0, 1},
		},
	} {
		tcase := tcase

		t.Run(tcase.Name, func(t *testing.T) {
			t.Parallel()

			obstacle := func(p int) bool {
				for _, o := range tcase.Obstacles {
					if p == o {
						return true
					}
				}

				return false
			}

			branchSize, compact := buildLookups(tcase.Cells, obstacle)

			assert.Equal(t, tcase.ExpBranchSize, branchSize)
			assert.Equal(t, tcase.ExpCompact, compact)
		})
	}
}

// Random obstacle layouts spanning several bitmap words, checked against a
// naive reference.
func TestBuildLookups_Random(t *testing.T) {
	t.Parallel()

	for _, cells := range []int{17, 64, 65, 256, 300} {
		var (
			cells = cells
			name  = fmt.Sprintf("cells=%d", cells)
		)

		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var (
				faker     = gofakeit.New(42 + int64(cells))
				obstacles = map[int]bool{}
			)

			for i := 0; i < cells/5; i++ {
				obstacles[faker.Number(0, cells-1)] = true
			}

			obstacle := func(p int) bool { return obstacles[p] }

			branchSize, compact := buildLookups(cells, obstacle)

			require.Len(t, branchSize, cells)
			require.Len(t, compact, cells)

			var (
				usable = cells - len(obstacles)
				rank   int
			)

			for p := 0; p < cells; p++ {
				if obstacles[p] {
					assert.Equal(t, int32(noCell), branchSize[p], "position %d", p)
					assert.Equal(t, int32(noCell), compact[p], "position %d", p)

					rank++

					continue
				}

				assert.Equal(t, int32(p-rank), compact[p], "position %d", p)
				assert.Equal(t, int32(usable-1-(p-rank)), branchSize[p], "position %d", p)
			}
		})
	}
}
