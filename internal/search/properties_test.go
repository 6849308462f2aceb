package search_test

import (
	"context"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/pathlab/internal/grid"
	"github.com/san-kum/pathlab/internal/search"
)

func run(s search.Strategy, g *grid.Grid, start, end grid.Pos) (int, int) {
	closed := 0
	length, err := s.Run(context.Background(), g, start, end, func(ev search.StepEvent) error {
		if ev.Kind == search.Expanded {
			closed++
		}
		return nil
	})
	Expect(err).NotTo(HaveOccurred())
	return length, closed
}

var _ = Describe("strategy properties", func() {
	start := grid.Pos{Row: 1, Col: 1}

	newBoard := func(rows int, density float64, seed int64) (*grid.Grid, grid.Pos) {
		g, err := grid.New(rows)
		Expect(err).NotTo(HaveOccurred())
		g.Scatter(rand.New(rand.NewSource(seed)), density)
		end := grid.Pos{Row: rows - 2, Col: rows - 2}
		g.SetWall(start, false)
		g.SetWall(end, false)
		return g, end
	}

	DescribeTable("across seeded random boards",
		func(rows int, density float64, seed int64) {
			g, end := newBoard(rows, density, seed)

			bfsLen, bfsClosed := run(search.NewBFS(), g, start, end)
			g.Reset()
			aLen, aClosed := run(search.NewAStar(), g, start, end)
			g.Reset()
			dLen, _ := run(search.NewDFS(), g, start, end)

			if bfsLen == search.Unreachable {
				// No path exists; every strategy must agree.
				Expect(aLen).To(Equal(search.Unreachable))
				Expect(dLen).To(Equal(search.Unreachable))
				return
			}

			// BFS is the shortest-path reference; A* must match it and
			// never close more cells, DFS may only be worse.
			Expect(aLen).To(Equal(bfsLen))
			Expect(aClosed).To(BeNumerically("<=", bfsClosed))
			Expect(dLen).To(BeNumerically(">=", bfsLen))
		},
		Entry("open 9x9", 9, 0.0, int64(1)),
		Entry("sparse 11x11", 11, 0.2, int64(2)),
		Entry("classic 15x15", 15, 0.35, int64(3)),
		Entry("classic 15x15, another seed", 15, 0.35, int64(7)),
		Entry("dense 15x15", 15, 0.5, int64(4)),
		Entry("dense 21x21", 21, 0.45, int64(5)),
		Entry("near-solid 11x11", 11, 0.8, int64(6)),
	)

	It("reports the open-board distance exactly", func() {
		g, err := grid.New(9)
		Expect(err).NotTo(HaveOccurred())
		end := grid.Pos{Row: 7, Col: 7}

		want := start.Manhattan(end)
		bfsLen, _ := run(search.NewBFS(), g, start, end)
		Expect(bfsLen).To(Equal(want))

		g.Reset()
		aLen, _ := run(search.NewAStar(), g, start, end)
		Expect(aLen).To(Equal(want))
	})
})
