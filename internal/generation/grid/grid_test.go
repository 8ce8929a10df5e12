package grid_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-dungeon/internal/entities/dungeon"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/generation/grid"
)

type GridTestSuite struct {
	suite.Suite
	grid *grid.Grid
}

func TestGridSuite(t *testing.T) {
	suite.Run(t, new(GridTestSuite))
}

func (s *GridTestSuite) SetupTest() {
	g, err := grid.New(6, 8)
	s.Require().NoError(err)
	s.grid = g
}

func (s *GridTestSuite) fillRoom(x0, z0, w, d int) {
	for x := x0; x < x0+w; x++ {
		for z := z0; z < z0+d; z++ {
			s.Require().NoError(s.grid.Set(dungeon.Coord{X: x, Z: z}, dungeon.TileRoom))
		}
	}
}

func (s *GridTestSuite) TestNewRejectsInvalidDimensions() {
	testCases := []struct {
		name       string
		rows, cols int
	}{
		{"zero rows", 0, 5},
		{"zero cols", 5, 0},
		{"negative", -1, -1},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			g, err := grid.New(tc.rows, tc.cols)
			s.Assert().Nil(g)
			s.Assert().True(errors.HasReason(err, errors.ReasonInvalidDimensions))
			s.Assert().True(errors.IsFatal(err))
		})
	}
}

func (s *GridTestSuite) TestNewIsAllEmpty() {
	for _, b := range s.grid.Bytes() {
		s.Assert().Equal(byte(dungeon.TileEmpty), b)
	}
	s.Assert().Equal(6, s.grid.Rows())
	s.Assert().Equal(8, s.grid.Cols())
	s.Assert().Len(s.grid.Snapshot(), 48)
}

func (s *GridTestSuite) TestGetSetBounds() {
	c := dungeon.Coord{X: 5, Z: 7}
	s.Require().NoError(s.grid.Set(c, dungeon.TileRoom))
	state, err := s.grid.Get(c)
	s.Require().NoError(err)
	s.Assert().Equal(dungeon.TileRoom, state)

	for _, bad := range []dungeon.Coord{{X: 6, Z: 0}, {X: 0, Z: 8}, {X: -1, Z: 0}, {X: 0, Z: -1}} {
		_, err := s.grid.Get(bad)
		s.Assert().True(errors.HasReason(err, errors.ReasonOutOfBounds), bad.String())
		err = s.grid.Set(bad, dungeon.TileRoom)
		s.Assert().True(errors.IsOutOfRange(err), bad.String())
	}
}

func (s *GridTestSuite) TestReset() {
	s.fillRoom(1, 1, 2, 2)
	s.Require().NoError(s.grid.SetExempt(dungeon.Coord{X: 0, Z: 0}))
	s.grid.ClassifyWalls()

	s.grid.Reset()

	s.Assert().Equal(make([]byte, 48), s.grid.Bytes())
	s.Assert().False(s.grid.IsExempt(dungeon.Coord{X: 0, Z: 0}))
	s.Assert().Empty(s.grid.ExemptTiles())
}

func (s *GridTestSuite) TestMarkCorridor() {
	empty := dungeon.Coord{X: 0, Z: 0}
	changed, err := s.grid.MarkCorridor(empty)
	s.Require().NoError(err)
	s.Assert().True(changed)

	changed, err = s.grid.MarkCorridor(empty)
	s.Require().NoError(err)
	s.Assert().False(changed, "already corridor")

	hub := dungeon.Coord{X: 0, Z: 1}
	s.Require().NoError(s.grid.SetExempt(hub))
	changed, err = s.grid.MarkCorridor(hub)
	s.Require().NoError(err)
	s.Assert().False(changed, "exempt tiles are skipped")
	state, _ := s.grid.Get(hub)
	s.Assert().Equal(dungeon.TileEmpty, state)

	room := dungeon.Coord{X: 3, Z: 3}
	s.Require().NoError(s.grid.Set(room, dungeon.TileRoom))
	changed, err = s.grid.MarkCorridor(room)
	s.Assert().False(changed)
	s.Assert().True(errors.HasReason(err, errors.ReasonTileConflict))
	state, _ = s.grid.Get(room)
	s.Assert().Equal(dungeon.TileRoom, state, "conflict leaves the tile untouched")

	_, err = s.grid.MarkCorridor(dungeon.Coord{X: 99, Z: 0})
	s.Assert().True(errors.IsOutOfRange(err))
}

func (s *GridTestSuite) TestClassifyWallsSingleRoom() {
	s.fillRoom(2, 3, 2, 2)

	promoted := s.grid.ClassifyWalls()

	// 4x4 ring around a 2x2 room
	s.Assert().Equal(12, promoted)
	s.Assert().Equal(
		"........\n"+
			"..####..\n"+
			"..#RR#..\n"+
			"..#RR#..\n"+
			"..####..\n"+
			"........\n",
		s.grid.Render(),
	)
}

func (s *GridTestSuite) TestClassifyWallsClipsAtEdges() {
	s.fillRoom(0, 0, 2, 2)

	promoted := s.grid.ClassifyWalls()

	s.Assert().Equal(5, promoted)
	s.Assert().Equal("RR#.....\nRR#.....\n###.....\n", s.grid.Render()[:27])
}

func (s *GridTestSuite) TestClassifyWallsIdempotent() {
	s.fillRoom(1, 1, 2, 3)
	_, err := s.grid.MarkCorridor(dungeon.Coord{X: 2, Z: 4})
	s.Require().NoError(err)
	_, err = s.grid.MarkCorridor(dungeon.Coord{X: 2, Z: 5})
	s.Require().NoError(err)

	s.grid.ClassifyWalls()
	once := s.grid.Bytes()

	s.Assert().Equal(0, s.grid.ClassifyWalls())
	s.Assert().Equal(once, s.grid.Bytes())
}

func (s *GridTestSuite) TestClassifyWallsSkipsExempt() {
	s.fillRoom(2, 2, 2, 2)
	hub := dungeon.Coord{X: 1, Z: 1}
	s.Require().NoError(s.grid.SetExempt(hub))

	s.grid.ClassifyWalls()

	state, err := s.grid.Get(hub)
	s.Require().NoError(err)
	s.Assert().Equal(dungeon.TileEmpty, state)
	s.Assert().Equal(byte('H'), s.grid.Render()[1*9+1])
}

func (s *GridTestSuite) TestHubIsEnclosed() {
	for _, c := range []dungeon.Coord{{X: 2, Z: 3}, {X: 2, Z: 4}, {X: 3, Z: 3}, {X: 3, Z: 4}} {
		s.Require().NoError(s.grid.SetExempt(c))
	}

	s.Assert().Equal(12, s.grid.ClassifyWalls())
	s.Assert().Equal(
		"........\n"+
			"..####..\n"+
			"..#HH#..\n"+
			"..#HH#..\n"+
			"..####..\n"+
			"........\n",
		s.grid.Render(),
	)

	byCoord := make(map[dungeon.Coord][]dungeon.Direction)
	for _, w := range s.grid.WallDescriptors() {
		byCoord[w.Coord] = w.Facing
	}
	s.Assert().Equal([]dungeon.Direction{dungeon.South}, byCoord[dungeon.Coord{X: 1, Z: 3}])
	s.Assert().Equal([]dungeon.Direction{dungeon.West}, byCoord[dungeon.Coord{X: 2, Z: 5}])
	s.Assert().Empty(byCoord[dungeon.Coord{X: 4, Z: 2}], "corner post")
}

func (s *GridTestSuite) TestCorridorIntoHubIsWalled() {
	s.Require().NoError(s.grid.SetExempt(dungeon.Coord{X: 2, Z: 2}))
	for z := 3; z < 6; z++ {
		_, err := s.grid.MarkCorridor(dungeon.Coord{X: 2, Z: z})
		s.Require().NoError(err)
	}

	s.grid.ClassifyWalls()

	s.Assert().Equal(
		"........\n"+
			".######.\n"+
			".#H+++#.\n"+
			".######.\n"+
			"........\n"+
			"........\n",
		s.grid.Render(),
	)
}

func (s *GridTestSuite) TestWallSoundness() {
	s.fillRoom(1, 1, 3, 2)
	for z := 3; z < 7; z++ {
		_, err := s.grid.MarkCorridor(dungeon.Coord{X: 2, Z: z})
		s.Require().NoError(err)
	}
	before := s.grid.Snapshot()

	s.grid.ClassifyWalls()
	after := s.grid.Snapshot()

	for i := range before {
		if before[i].IsOccupied() {
			s.Assert().Equal(before[i], after[i], "occupied tiles never change")
		}
	}
	for _, w := range s.grid.WallDescriptors() {
		occupied := false
		for dx := -1; dx <= 1; dx++ {
			for dz := -1; dz <= 1; dz++ {
				state, err := s.grid.Get(w.Coord.Add(dx, dz))
				if err == nil && state.IsOccupied() {
					occupied = true
				}
			}
		}
		s.Assert().True(occupied, w.Coord.String())
	}
}

func (s *GridTestSuite) TestWallDescriptors() {
	s.fillRoom(2, 3, 2, 2)
	s.grid.ClassifyWalls()

	walls := s.grid.WallDescriptors()
	s.Require().Len(walls, 12)

	byCoord := make(map[dungeon.Coord][]dungeon.Direction, len(walls))
	type pair struct {
		c dungeon.Coord
		d dungeon.Direction
	}
	seen := make(map[pair]bool)
	for _, w := range walls {
		byCoord[w.Coord] = w.Facing
		for _, d := range w.Facing {
			s.Assert().False(seen[pair{w.Coord, d}], "duplicate segment")
			seen[pair{w.Coord, d}] = true
		}
	}

	s.Assert().Empty(byCoord[dungeon.Coord{X: 1, Z: 2}], "corner post")
	s.Assert().Equal([]dungeon.Direction{dungeon.South}, byCoord[dungeon.Coord{X: 1, Z: 3}])
	s.Assert().Equal([]dungeon.Direction{dungeon.North}, byCoord[dungeon.Coord{X: 4, Z: 4}])
	s.Assert().Equal([]dungeon.Direction{dungeon.East}, byCoord[dungeon.Coord{X: 2, Z: 2}])
	s.Assert().Equal([]dungeon.Direction{dungeon.West}, byCoord[dungeon.Coord{X: 3, Z: 5}])
	s.Assert().Equal(dungeon.Coord{X: 1, Z: 2}, walls[0].Coord, "row-major order")
}

func (s *GridTestSuite) TestWallDescriptorsMultipleFacings() {
	// one wall tile squeezed between two rooms
	s.fillRoom(0, 0, 3, 2)
	s.fillRoom(0, 3, 3, 2)
	s.grid.ClassifyWalls()

	for _, w := range s.grid.WallDescriptors() {
		if w.Coord == (dungeon.Coord{X: 1, Z: 2}) {
			s.Assert().Equal([]dungeon.Direction{dungeon.West, dungeon.East}, w.Facing)
			return
		}
	}
	s.Fail("expected a wall at (1,2)")
}

func (s *GridTestSuite) TestFloorRegions() {
	regions, err := s.grid.FloorRegions()
	s.Require().NoError(err)
	s.Assert().Equal(0, regions)

	s.fillRoom(0, 0, 2, 2)
	s.fillRoom(0, 6, 2, 2)
	regions, err = s.grid.FloorRegions()
	s.Require().NoError(err)
	s.Assert().Equal(2, regions)

	// corridor pieces joined through the hub
	for _, z := range []int{2, 3, 5} {
		_, err := s.grid.MarkCorridor(dungeon.Coord{X: 1, Z: z})
		s.Require().NoError(err)
	}
	s.Require().NoError(s.grid.SetExempt(dungeon.Coord{X: 1, Z: 4}))
	// a hub nobody reaches
	s.Require().NoError(s.grid.SetExempt(dungeon.Coord{X: 4, Z: 4}))

	regions, err = s.grid.FloorRegions()
	s.Require().NoError(err)
	s.Assert().Equal(1, regions)
}

func (s *GridTestSuite) TestFromLayout() {
	s.fillRoom(1, 1, 2, 2)
	s.Require().NoError(s.grid.SetExempt(dungeon.Coord{X: 5, Z: 7}))
	s.grid.ClassifyWalls()

	layout := &dungeon.Layout{
		Rows:  s.grid.Rows(),
		Cols:  s.grid.Cols(),
		Tiles: s.grid.Snapshot(),
		Hub:   s.grid.ExemptTiles(),
	}

	restored, err := grid.FromLayout(layout)
	s.Require().NoError(err)
	s.Assert().Equal(s.grid.Render(), restored.Render())
	s.Assert().True(restored.IsExempt(dungeon.Coord{X: 5, Z: 7}))

	layout.Tiles = layout.Tiles[:3]
	_, err = grid.FromLayout(layout)
	s.Assert().True(errors.IsInvalidArgument(err))
}
