package dungeon

import (
	"fmt"
	"math"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// EntityTypeRoom is the rpg-toolkit entity type reported by rooms
const EntityTypeRoom = "room"

// Room is a rectangular footprint. Width spans rows (X), Depth spans columns (Z).
type Room struct {
	ID     int   `json:"id"`
	Origin Coord `json:"origin"`
	Width  int   `json:"width"`
	Depth  int   `json:"depth"`
}

// GetID returns the room's entity ID
func (r Room) GetID() string {
	return fmt.Sprintf("room_%d", r.ID)
}

// GetType returns the entity type for rpg-toolkit
func (r Room) GetType() string {
	return EntityTypeRoom
}

// Center is the geometric center of the footprint in grid space
func (r Room) Center() Vec2 {
	return Vec2{
		X: float64(r.Origin.X) + float64(r.Width)/2,
		Z: float64(r.Origin.Z) + float64(r.Depth)/2,
	}
}

// MaxX is the last row covered by the room
func (r Room) MaxX() int {
	return r.Origin.X + r.Width - 1
}

// MaxZ is the last column covered by the room
func (r Room) MaxZ() int {
	return r.Origin.Z + r.Depth - 1
}

// Contains reports whether c lies inside the footprint
func (r Room) Contains(c Coord) bool {
	return c.X >= r.Origin.X && c.X <= r.MaxX() &&
		c.Z >= r.Origin.Z && c.Z <= r.MaxZ()
}

// Tiles returns the footprint in row-major order
func (r Room) Tiles() []Coord {
	tiles := make([]Coord, 0, r.Width*r.Depth)
	for x := r.Origin.X; x <= r.MaxX(); x++ {
		for z := r.Origin.Z; z <= r.MaxZ(); z++ {
			tiles = append(tiles, Coord{X: x, Z: z})
		}
	}
	return tiles
}

// Vec2 is a point in continuous grid space
type Vec2 struct {
	X float64 `json:"x"`
	Z float64 `json:"z"`
}

// DistanceTo returns the Euclidean distance between two points
func (v Vec2) DistanceTo(o Vec2) float64 {
	return math.Hypot(v.X-o.X, v.Z-o.Z)
}

// Compile-time check that rooms can be handed to rpg-toolkit
var (
	_ core.Entity = Room{}
	_ core.Entity = (*Room)(nil)
)
