package rooms

import (
	"github.com/KirkDiggler/rpg-dungeon/internal/entities/dungeon"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/generation/grid"
)

// ReserveHub marks a size x size square centered on entry as exempt, clipped
// to the map. A size of zero reserves nothing.
func ReserveHub(g *grid.Grid, entry dungeon.Coord, size int) ([]dungeon.Coord, error) {
	if g == nil {
		return nil, errors.InvalidArgument("grid is required")
	}
	if size < 0 {
		return nil, errors.InvalidArgumentf("hub size must not be negative, got %d", size)
	}
	if !g.InBounds(entry) {
		return nil, errors.OutOfBoundsf("entry point %s outside %dx%d map", entry, g.Rows(), g.Cols())
	}

	var reserved []dungeon.Coord
	start := dungeon.Coord{X: entry.X - (size-1)/2, Z: entry.Z - (size-1)/2}
	for x := start.X; x < start.X+size; x++ {
		for z := start.Z; z < start.Z+size; z++ {
			c := dungeon.Coord{X: x, Z: z}
			if !g.InBounds(c) {
				continue
			}
			if err := g.SetExempt(c); err != nil {
				return nil, err
			}
			reserved = append(reserved, c)
		}
	}
	return reserved, nil
}
