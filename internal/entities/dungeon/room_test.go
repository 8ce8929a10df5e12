package dungeon_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-dungeon/internal/entities/dungeon"
)

func TestRoomGeometry(t *testing.T) {
	room := dungeon.Room{ID: 2, Origin: dungeon.Coord{X: 3, Z: 5}, Width: 4, Depth: 3}

	assert.Equal(t, "room_2", room.GetID())
	assert.Equal(t, "room", room.GetType())
	assert.Equal(t, dungeon.Vec2{X: 5, Z: 6.5}, room.Center())
	assert.Equal(t, 6, room.MaxX())
	assert.Equal(t, 7, room.MaxZ())

	assert.True(t, room.Contains(dungeon.Coord{X: 3, Z: 5}))
	assert.True(t, room.Contains(dungeon.Coord{X: 6, Z: 7}))
	assert.False(t, room.Contains(dungeon.Coord{X: 7, Z: 7}))
	assert.False(t, room.Contains(dungeon.Coord{X: 3, Z: 8}))

	tiles := room.Tiles()
	assert.Len(t, tiles, 12)
	assert.Equal(t, dungeon.Coord{X: 3, Z: 5}, tiles[0])
	assert.Equal(t, dungeon.Coord{X: 3, Z: 6}, tiles[1])
	assert.Equal(t, dungeon.Coord{X: 6, Z: 7}, tiles[11])
}

func TestVec2DistanceTo(t *testing.T) {
	a := dungeon.Vec2{X: 0, Z: 0}
	b := dungeon.Vec2{X: 3, Z: 4}
	assert.InDelta(t, 5.0, a.DistanceTo(b), 1e-12)
	assert.InDelta(t, 5.0, b.DistanceTo(a), 1e-12)
}

func TestTileState(t *testing.T) {
	assert.Equal(t, dungeon.TileState(0), dungeon.TileEmpty)
	assert.True(t, dungeon.TileRoom.IsOccupied())
	assert.True(t, dungeon.TileCorridor.IsOccupied())
	assert.False(t, dungeon.TileWall.IsOccupied())
	assert.False(t, dungeon.TileEmpty.IsOccupied())
	assert.Equal(t, "corridor", dungeon.TileCorridor.String())
}

func TestDirectionOffset(t *testing.T) {
	origin := dungeon.Coord{X: 5, Z: 5}
	expected := map[dungeon.Direction]dungeon.Coord{
		dungeon.North: {X: 4, Z: 5},
		dungeon.South: {X: 6, Z: 5},
		dungeon.West:  {X: 5, Z: 4},
		dungeon.East:  {X: 5, Z: 6},
	}
	for _, d := range dungeon.Directions {
		dx, dz := d.Offset()
		assert.Equal(t, expected[d], origin.Add(dx, dz), string(d))
	}
}

func TestCandidateEdgeOther(t *testing.T) {
	edge := dungeon.CandidateEdge{A: 1, B: 4}
	assert.Equal(t, 4, edge.Other(1))
	assert.Equal(t, 1, edge.Other(4))
}

func TestLayoutTile(t *testing.T) {
	layout := &dungeon.Layout{
		Rows:  2,
		Cols:  3,
		Tiles: []dungeon.TileState{0, 1, 0, 3, 2, 0},
	}
	assert.Equal(t, dungeon.TileRoom, layout.Tile(dungeon.Coord{X: 0, Z: 1}))
	assert.Equal(t, dungeon.TileCorridor, layout.Tile(dungeon.Coord{X: 1, Z: 1}))
	assert.Equal(t, dungeon.TileEmpty, layout.Tile(dungeon.Coord{X: 2, Z: 0}))
	assert.Equal(t, 1, layout.CountTiles(dungeon.TileWall))
	assert.Equal(t, 3, layout.CountTiles(dungeon.TileEmpty))
}
