package dungeon

import (
	entities "github.com/KirkDiggler/rpg-dungeon/internal/entities/dungeon"
)

// GenerateDungeonInput defines the request for generating a layout
type GenerateDungeonInput struct {
	Params entities.Params
}

// GenerateDungeonOutput defines the response for generating a layout
type GenerateDungeonOutput struct {
	ID     string
	Layout *entities.Layout
}

// GetDungeonInput defines the request for fetching a stored layout
type GetDungeonInput struct {
	ID string
}

// GetDungeonOutput defines the response for fetching a stored layout
type GetDungeonOutput struct {
	Layout *entities.Layout
}

// DeleteDungeonInput defines the request for deleting a stored layout
type DeleteDungeonInput struct {
	ID string
}

// DeleteDungeonOutput defines the response for deleting a stored layout
type DeleteDungeonOutput struct {
	Deleted bool
}

// RenderDungeonInput defines the request for drawing a stored layout
type RenderDungeonInput struct {
	ID string
}

// RenderDungeonOutput holds the ASCII drawing, one line per row
type RenderDungeonOutput struct {
	ASCII   string
	Summary entities.Summary
}
