package testutils

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-dungeon/internal/entities/dungeon"
	"github.com/KirkDiggler/rpg-dungeon/internal/generation/grid"
)

// TestDungeonID is the default id for stored layout fixtures
const TestDungeonID = "dungeon_test_001"

// TwoRoomRender is the ASCII rendering of CreateTwoRoomLayout
const TwoRoomRender = "####.####\n" +
	"#RR###RR#\n" +
	"#RR+++RR#\n" +
	"#RR###RR#\n" +
	"####.####\n"

// CreateTestParams returns generation params for a small four room map
func CreateTestParams() dungeon.Params {
	return dungeon.Params{
		Rows:            20,
		Cols:            20,
		MinRoomSize:     3,
		MaxRoomSize:     5,
		TargetRoomCount: 4,
		EntryPoint:      dungeon.Coord{X: 2, Z: 10},
		Seed:            42,
	}
}

// CreateTwoRoomLayout builds a 5x9 layout by hand: two 3x2 rooms joined by a
// straight corridor along row 2, walled in.
func CreateTwoRoomLayout(t *testing.T) *dungeon.Layout {
	t.Helper()

	g, err := grid.New(5, 9)
	require.NoError(t, err)

	rooms := []dungeon.Room{
		{ID: 0, Origin: dungeon.Coord{X: 1, Z: 1}, Width: 3, Depth: 2},
		{ID: 1, Origin: dungeon.Coord{X: 1, Z: 6}, Width: 3, Depth: 2},
	}
	for _, r := range rooms {
		for _, c := range r.Tiles() {
			require.NoError(t, g.Set(c, dungeon.TileRoom))
		}
	}

	path := []dungeon.Coord{{X: 2, Z: 3}, {X: 2, Z: 4}, {X: 2, Z: 5}}
	for _, c := range path {
		_, err := g.MarkCorridor(c)
		require.NoError(t, err)
	}
	g.ClassifyWalls()

	edge := dungeon.CandidateEdge{A: 0, B: 1, Length: 5, Seq: 0}
	return &dungeon.Layout{
		Params: dungeon.Params{
			Rows:            5,
			Cols:            9,
			MinRoomSize:     2,
			MaxRoomSize:     3,
			TargetRoomCount: 2,
			EntryPoint:      dungeon.Coord{X: 2, Z: 4},
			Seed:            1,
		},
		Rows:       5,
		Cols:       9,
		Tiles:      g.Snapshot(),
		Rooms:      rooms,
		Candidates: []dungeon.CandidateEdge{edge},
		Corridors: []dungeon.Corridor{{
			From:   0,
			To:     1,
			Anchor: dungeon.Coord{X: 2, Z: 4},
			Path:   path,
			Weight: edge.Length,
		}},
		Walls: g.WallDescriptors(),
		Summary: dungeon.Summary{
			RoomsRequested:    2,
			RoomsPlaced:       2,
			CandidateEdges:    1,
			CorridorsSelected: 1,
			CorridorsCarved:   1,
			PartitionComplete: true,
			FloorRegions:      1,
			EntryRoomID:       0,
		},
	}
}
