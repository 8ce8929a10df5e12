package dungeon_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	entities "github.com/KirkDiggler/rpg-dungeon/internal/entities/dungeon"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/orchestrators/dungeon"
	idgenmock "github.com/KirkDiggler/rpg-dungeon/internal/pkg/idgen/mock"
	"github.com/KirkDiggler/rpg-dungeon/internal/repositories/dungeons"
	dungeonsmock "github.com/KirkDiggler/rpg-dungeon/internal/repositories/dungeons/mock"
	"github.com/KirkDiggler/rpg-dungeon/internal/testutils"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctx          context.Context
	ctrl         *gomock.Controller
	mockRepo     *dungeonsmock.MockRepository
	mockIDGen    *idgenmock.MockGenerator
	orchestrator dungeon.Service
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = dungeonsmock.NewMockRepository(s.ctrl)
	s.mockIDGen = idgenmock.NewMockGenerator(s.ctrl)

	orch, err := dungeon.NewOrchestrator(&dungeon.Config{
		Repository:  s.mockRepo,
		IDGenerator: s.mockIDGen,
		TTL:         time.Hour,
	})
	s.Require().NoError(err)
	s.orchestrator = orch
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) TestNewOrchestratorValidation() {
	testCases := []struct {
		name string
		cfg  *dungeon.Config
	}{
		{"nil config", nil},
		{"missing repository", &dungeon.Config{IDGenerator: s.mockIDGen}},
		{"missing id generator", &dungeon.Config{Repository: s.mockRepo}},
		{"negative ttl", &dungeon.Config{Repository: s.mockRepo, IDGenerator: s.mockIDGen, TTL: -time.Second}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			orch, err := dungeon.NewOrchestrator(tc.cfg)
			s.Assert().Error(err)
			s.Assert().True(errors.IsInvalidArgument(err))
			s.Assert().Nil(orch)
		})
	}
}

func (s *OrchestratorTestSuite) TestGenerateDungeon() {
	params := testutils.CreateTestParams()

	s.mockIDGen.EXPECT().Generate().Return(testutils.TestDungeonID)
	s.mockRepo.EXPECT().
		Save(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input dungeons.SaveInput) (*dungeons.SaveOutput, error) {
			s.Assert().Equal(testutils.TestDungeonID, input.ID)
			s.Assert().Equal(time.Hour, input.TTL)
			s.Assert().Equal(params, input.Layout.Params)
			return &dungeons.SaveOutput{Record: &dungeons.Record{ID: input.ID, Layout: input.Layout}}, nil
		})

	out, err := s.orchestrator.GenerateDungeon(s.ctx, &dungeon.GenerateDungeonInput{Params: params})
	s.Require().NoError(err)
	s.Assert().Equal(testutils.TestDungeonID, out.ID)
	s.Assert().Len(out.Layout.Rooms, 4)
	s.Assert().Equal(params.Rows*params.Cols, len(out.Layout.Tiles))
}

func (s *OrchestratorTestSuite) TestGenerateDungeonRejectsBadParams() {
	params := testutils.CreateTestParams()
	params.Rows = 0

	out, err := s.orchestrator.GenerateDungeon(s.ctx, &dungeon.GenerateDungeonInput{Params: params})
	s.Require().Error(err)
	s.Assert().Nil(out)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().True(errors.HasReason(err, errors.ReasonInvalidDimensions))

	_, err = s.orchestrator.GenerateDungeon(s.ctx, nil)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestGenerateDungeonSaveFails() {
	s.mockIDGen.EXPECT().Generate().Return(testutils.TestDungeonID)
	s.mockRepo.EXPECT().Save(s.ctx, gomock.Any()).Return(nil, errors.Internal("redis down"))

	out, err := s.orchestrator.GenerateDungeon(s.ctx, &dungeon.GenerateDungeonInput{Params: testutils.CreateTestParams()})
	s.Require().Error(err)
	s.Assert().Nil(out)
	s.Assert().True(errors.IsInternal(err))
	s.Assert().Equal("failed to save dungeon", errors.GetMessage(err))
}

func (s *OrchestratorTestSuite) TestGetDungeon() {
	layout := testutils.CreateTwoRoomLayout(s.T())
	s.mockRepo.EXPECT().
		Get(s.ctx, dungeons.GetInput{ID: testutils.TestDungeonID}).
		Return(&dungeons.GetOutput{Record: &dungeons.Record{ID: testutils.TestDungeonID, Layout: layout}}, nil)

	out, err := s.orchestrator.GetDungeon(s.ctx, &dungeon.GetDungeonInput{ID: testutils.TestDungeonID})
	s.Require().NoError(err)
	s.Assert().Same(layout, out.Layout)
}

func (s *OrchestratorTestSuite) TestGetDungeonNotFound() {
	s.mockRepo.EXPECT().
		Get(s.ctx, dungeons.GetInput{ID: "missing"}).
		Return(nil, errors.NotFound("dungeon not found"))

	_, err := s.orchestrator.GetDungeon(s.ctx, &dungeon.GetDungeonInput{ID: "missing"})
	s.Assert().True(errors.IsNotFound(err))

	_, err = s.orchestrator.GetDungeon(s.ctx, &dungeon.GetDungeonInput{})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestDeleteDungeon() {
	s.mockRepo.EXPECT().
		Delete(s.ctx, dungeons.DeleteInput{ID: testutils.TestDungeonID}).
		Return(&dungeons.DeleteOutput{Deleted: true}, nil)

	out, err := s.orchestrator.DeleteDungeon(s.ctx, &dungeon.DeleteDungeonInput{ID: testutils.TestDungeonID})
	s.Require().NoError(err)
	s.Assert().True(out.Deleted)

	_, err = s.orchestrator.DeleteDungeon(s.ctx, nil)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestRenderDungeon() {
	layout := testutils.CreateTwoRoomLayout(s.T())
	s.mockRepo.EXPECT().
		Get(s.ctx, dungeons.GetInput{ID: testutils.TestDungeonID}).
		Return(&dungeons.GetOutput{Record: &dungeons.Record{ID: testutils.TestDungeonID, Layout: layout}}, nil)

	out, err := s.orchestrator.RenderDungeon(s.ctx, &dungeon.RenderDungeonInput{ID: testutils.TestDungeonID})
	s.Require().NoError(err)
	s.Assert().Equal(testutils.TwoRoomRender, out.ASCII)
	s.Assert().Equal(layout.Summary, out.Summary)
}

func (s *OrchestratorTestSuite) TestRenderDungeonCorruptLayout() {
	layout := &entities.Layout{Rows: 3, Cols: 3, Tiles: make([]entities.TileState, 4)}
	s.mockRepo.EXPECT().
		Get(s.ctx, dungeons.GetInput{ID: "corrupt"}).
		Return(&dungeons.GetOutput{Record: &dungeons.Record{ID: "corrupt", Layout: layout}}, nil)

	_, err := s.orchestrator.RenderDungeon(s.ctx, &dungeon.RenderDungeonInput{ID: "corrupt"})
	s.Require().Error(err)
	s.Assert().Equal(errors.CodeDataLoss, errors.GetCode(err))
}
