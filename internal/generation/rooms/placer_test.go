package rooms_test

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-dungeon/internal/entities/dungeon"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/generation/grid"
	"github.com/KirkDiggler/rpg-dungeon/internal/generation/rooms"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/rng"
	rngmock "github.com/KirkDiggler/rpg-dungeon/internal/pkg/rng/mock"
)

type PlacerTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockRoller *rngmock.MockRoller
	grid       *grid.Grid
	lastCall   *gomock.Call
}

func TestPlacerSuite(t *testing.T) {
	suite.Run(t, new(PlacerTestSuite))
}

func (s *PlacerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRoller = rngmock.NewMockRoller(s.ctrl)
	s.lastCall = nil

	g, err := grid.New(10, 10)
	s.Require().NoError(err)
	s.grid = g
}

func (s *PlacerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *PlacerTestSuite) newPlacer(minSize, maxSize int) *rooms.Placer {
	p, err := rooms.NewPlacer(&rooms.Config{
		Grid:    s.grid,
		Roller:  s.mockRoller,
		MinSize: minSize,
		MaxSize: maxSize,
	})
	s.Require().NoError(err)
	return p
}

func (s *PlacerTestSuite) expectRoll(size, result int) {
	call := s.mockRoller.EXPECT().Roll(size).Return(result, nil)
	if s.lastCall != nil {
		call.After(s.lastCall)
	}
	s.lastCall = call
}

// expectDraw scripts one 3x3 attempt landing at origin (x, z) on the 10x10 grid
func (s *PlacerTestSuite) expectDraw(x, z int) {
	s.expectRoll(1, 1)
	s.expectRoll(1, 1)
	s.expectRoll(8, x+1)
	s.expectRoll(8, z+1)
}

func (s *PlacerTestSuite) TestConfigValidation() {
	testCases := []struct {
		name string
		cfg  *rooms.Config
	}{
		{"nil config", nil},
		{"missing grid", &rooms.Config{Roller: s.mockRoller, MinSize: 3, MaxSize: 5}},
		{"missing roller", &rooms.Config{Grid: s.grid, MinSize: 3, MaxSize: 5}},
		{"zero min size", &rooms.Config{Grid: s.grid, Roller: s.mockRoller, MinSize: 0, MaxSize: 5}},
		{"max below min", &rooms.Config{Grid: s.grid, Roller: s.mockRoller, MinSize: 5, MaxSize: 3}},
		{"negative margin", &rooms.Config{Grid: s.grid, Roller: s.mockRoller, MinSize: 3, MaxSize: 5, MarginFactor: -1}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			p, err := rooms.NewPlacer(tc.cfg)
			s.Assert().Nil(p)
			s.Assert().True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *PlacerTestSuite) TestTryPlaceRoomMarksFootprint() {
	s.expectDraw(0, 0)
	p := s.newPlacer(3, 3)

	room, err := p.TryPlaceRoom(10)
	s.Require().NoError(err)
	s.Assert().Equal(0, room.ID)
	s.Assert().Equal(dungeon.Coord{X: 0, Z: 0}, room.Origin)
	s.Assert().Equal(3, room.Width)
	s.Assert().Equal(3, room.Depth)

	for _, c := range room.Tiles() {
		state, err := s.grid.Get(c)
		s.Require().NoError(err)
		s.Assert().Equal(dungeon.TileRoom, state)
	}
	state, _ := s.grid.Get(dungeon.Coord{X: 3, Z: 3})
	s.Assert().Equal(dungeon.TileEmpty, state)
}

func (s *PlacerTestSuite) TestTryPlaceRoomRetriesOnMarginConflict() {
	s.expectDraw(0, 0)
	// centers 1 apart on both axes: rejected
	s.expectDraw(1, 1)
	// 3 rows apart but same columns: still inside 3.75 on both axes
	s.expectDraw(3, 0)
	s.expectDraw(6, 6)
	p := s.newPlacer(3, 3)

	placed, err := p.PlaceRooms(2, 5)
	s.Require().NoError(err)
	s.Require().Len(placed, 2)
	s.Assert().Equal(1, placed[1].ID)
	s.Assert().Equal(dungeon.Coord{X: 6, Z: 6}, placed[1].Origin)
}

func (s *PlacerTestSuite) TestTryPlaceRoomExhaustion() {
	s.expectDraw(2, 2)
	for i := 0; i < 3; i++ {
		s.expectDraw(3, 3)
	}
	p := s.newPlacer(3, 3)

	_, err := p.TryPlaceRoom(1)
	s.Require().NoError(err)
	before := s.grid.Bytes()

	room, err := p.TryPlaceRoom(3)
	s.Assert().Nil(room)
	s.Assert().True(errors.HasReason(err, errors.ReasonRoomPlacementExhausted))
	s.Assert().False(errors.IsFatal(err))
	s.Assert().Equal(3, errors.GetMeta(err)["attempts"])
	s.Assert().Equal(1, errors.GetMeta(err)["rooms_placed"])
	s.Assert().Equal(before, s.grid.Bytes(), "failed attempts leave the grid untouched")
	s.Assert().Len(p.Rooms(), 1)
}

func (s *PlacerTestSuite) TestTryPlaceRoomRejectsInvalidBudget() {
	p := s.newPlacer(3, 3)
	_, err := p.TryPlaceRoom(0)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *PlacerTestSuite) TestTryPlaceRoomPropagatesRollerErrors() {
	s.mockRoller.EXPECT().Roll(1).Return(0, errors.Internal("dice jammed"))
	p := s.newPlacer(3, 3)

	_, err := p.TryPlaceRoom(5)
	s.Assert().True(errors.IsInternal(err))
}

func (s *PlacerTestSuite) TestRoomLargerThanMap() {
	g, err := grid.New(2, 2)
	s.Require().NoError(err)
	p, err := rooms.NewPlacer(&rooms.Config{
		Grid:    g,
		Roller:  rng.NewSeeded(42),
		MinSize: 5,
		MaxSize: 5,
	})
	s.Require().NoError(err)

	placed, err := p.PlaceRooms(3, rooms.DefaultAttemptBudget(3, 2, 2))
	s.Assert().Empty(placed)
	s.Assert().True(errors.HasReason(err, errors.ReasonRoomPlacementExhausted))
	s.Assert().Equal(make([]byte, 4), g.Bytes())
}

func (s *PlacerTestSuite) TestHubRingIsRespected() {
	reserved, err := rooms.ReserveHub(s.grid, dungeon.Coord{X: 5, Z: 5}, 1)
	s.Require().NoError(err)
	s.Require().Equal([]dungeon.Coord{{X: 5, Z: 5}}, reserved)

	// footprint rows 2-4, cols 2-4 touches (5,5) with its ring
	s.expectDraw(2, 2)
	s.expectDraw(0, 0)
	p := s.newPlacer(3, 3)

	room, err := p.TryPlaceRoom(2)
	s.Require().NoError(err)
	s.Assert().Equal(dungeon.Coord{X: 0, Z: 0}, room.Origin)
}

func (s *PlacerTestSuite) TestSeededPlacementHasNoOverlap() {
	g, err := grid.New(20, 20)
	s.Require().NoError(err)
	p, err := rooms.NewPlacer(&rooms.Config{
		Grid:    g,
		Roller:  rng.NewSeeded(42),
		MinSize: 3,
		MaxSize: 5,
	})
	s.Require().NoError(err)

	placed, err := p.PlaceRooms(4, rooms.DefaultAttemptBudget(4, 20, 20))
	s.Require().NoError(err)
	s.Require().Len(placed, 4)

	for i, a := range placed {
		s.Assert().Equal(i, a.ID)
		s.Assert().GreaterOrEqual(a.Width, 3)
		s.Assert().LessOrEqual(a.Width, 5)
		s.Assert().LessOrEqual(a.MaxX(), 19)
		s.Assert().LessOrEqual(a.MaxZ(), 19)
		for _, b := range placed[i+1:] {
			s.Assert().False(rooms.Conflicts(a, b, dungeon.DefaultMarginFactor), "rooms %d and %d", a.ID, b.ID)
			for _, c := range a.Tiles() {
				s.Assert().False(b.Contains(c))
			}
		}
	}
}

func (s *PlacerTestSuite) TestSeededPlacementIsDeterministic() {
	place := func() []dungeon.Room {
		g, err := grid.New(30, 30)
		s.Require().NoError(err)
		p, err := rooms.NewPlacer(&rooms.Config{Grid: g, Roller: rng.NewSeeded(7), MinSize: 3, MaxSize: 6})
		s.Require().NoError(err)
		placed, _ := p.PlaceRooms(6, rooms.DefaultAttemptBudget(6, 30, 30))
		return placed
	}

	s.Assert().Equal(place(), place())
}

func (s *PlacerTestSuite) TestConflicts() {
	a := dungeon.Room{Origin: dungeon.Coord{X: 0, Z: 0}, Width: 4, Depth: 4}
	testCases := []struct {
		name     string
		b        dungeon.Room
		factor   float64
		expected bool
	}{
		{"overlapping", dungeon.Room{Origin: dungeon.Coord{X: 1, Z: 1}, Width: 4, Depth: 4}, 1.25, true},
		{"touching rejected by margin", dungeon.Room{Origin: dungeon.Coord{X: 4, Z: 0}, Width: 4, Depth: 4}, 1.25, true},
		{"touching allowed at factor 1", dungeon.Room{Origin: dungeon.Coord{X: 5, Z: 0}, Width: 4, Depth: 4}, 1.0, false},
		{"far on one axis", dungeon.Room{Origin: dungeon.Coord{X: 0, Z: 6}, Width: 4, Depth: 4}, 1.25, false},
		{"at the threshold", dungeon.Room{Origin: dungeon.Coord{X: 5, Z: 0}, Width: 4, Depth: 4}, 1.25, true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Assert().Equal(tc.expected, rooms.Conflicts(a, tc.b, tc.factor))
			s.Assert().Equal(tc.expected, rooms.Conflicts(tc.b, a, tc.factor))
		})
	}
}

func (s *PlacerTestSuite) TestDefaultAttemptBudget() {
	s.Assert().Equal(400, rooms.DefaultAttemptBudget(4, 20, 20))
	s.Assert().Equal(2500, rooms.DefaultAttemptBudget(50, 5, 5))
	s.Assert().Equal(4, rooms.DefaultAttemptBudget(1, 2, 2))
}

func (s *PlacerTestSuite) TestReserveHub() {
	reserved, err := rooms.ReserveHub(s.grid, dungeon.Coord{X: 0, Z: 0}, 3)
	s.Require().NoError(err)
	s.Assert().Equal([]dungeon.Coord{{X: 0, Z: 0}, {X: 0, Z: 1}, {X: 1, Z: 0}, {X: 1, Z: 1}}, reserved, "clipped at the corner")

	reserved, err = rooms.ReserveHub(s.grid, dungeon.Coord{X: 5, Z: 5}, 0)
	s.Require().NoError(err)
	s.Assert().Empty(reserved)

	_, err = rooms.ReserveHub(s.grid, dungeon.Coord{X: 10, Z: 0}, 3)
	s.Assert().True(errors.HasReason(err, errors.ReasonOutOfBounds))

	_, err = rooms.ReserveHub(s.grid, dungeon.Coord{X: 1, Z: 1}, -1)
	s.Assert().True(errors.IsInvalidArgument(err))
}
