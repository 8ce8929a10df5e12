// Package dungeon holds the data model shared by the layout generator, its
// storage and its transport.
package dungeon

import "fmt"

// TileState classifies a single grid tile
type TileState uint8

// Tile states
const (
	TileEmpty TileState = iota
	TileRoom
	TileCorridor
	TileWall
)

// String returns the lowercase name of the state
func (t TileState) String() string {
	switch t {
	case TileEmpty:
		return "empty"
	case TileRoom:
		return "room"
	case TileCorridor:
		return "corridor"
	case TileWall:
		return "wall"
	default:
		return fmt.Sprintf("tile(%d)", uint8(t))
	}
}

// IsOccupied reports whether the tile is walkable floor
func (t TileState) IsOccupied() bool {
	return t == TileRoom || t == TileCorridor
}

// Coord addresses a tile. X indexes rows and Z indexes columns.
type Coord struct {
	X int `json:"x"`
	Z int `json:"z"`
}

// Add returns c offset by dx rows and dz columns
func (c Coord) Add(dx, dz int) Coord {
	return Coord{X: c.X + dx, Z: c.Z + dz}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Z)
}

// Direction is one of the four cardinal directions on the grid
type Direction string

// Cardinal directions. North decreases X, West decreases Z.
const (
	North Direction = "north"
	South Direction = "south"
	West  Direction = "west"
	East  Direction = "east"
)

// Directions lists the cardinal directions in emission order
var Directions = []Direction{North, South, West, East}

// Offset returns the row and column step for the direction
func (d Direction) Offset() (dx, dz int) {
	switch d {
	case North:
		return -1, 0
	case South:
		return 1, 0
	case West:
		return 0, -1
	case East:
		return 0, 1
	default:
		return 0, 0
	}
}
