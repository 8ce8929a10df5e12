package dungeon

// DefaultMarginFactor scales the half-extents two rooms must keep apart
const DefaultMarginFactor = 1.25

// Params are the inputs of one generation run
type Params struct {
	Rows            int     `json:"rows"`
	Cols            int     `json:"cols"`
	MinRoomSize     int     `json:"min_room_size"`
	MaxRoomSize     int     `json:"max_room_size"`
	TargetRoomCount int     `json:"target_room_count"`
	EntryPoint      Coord   `json:"entry_point"`
	Seed            int64   `json:"seed"`
	MarginFactor    float64 `json:"margin_factor,omitempty"`  // 0 means DefaultMarginFactor
	AttemptBudget   int     `json:"attempt_budget,omitempty"` // 0 means derived from map size
	HubSize         int     `json:"hub_size,omitempty"`       // 0 reserves no hub
}

// Summary reports what a run produced versus what was asked for
type Summary struct {
	RoomsRequested      int   `json:"rooms_requested"`
	RoomsPlaced         int   `json:"rooms_placed"`
	CandidateEdges      int   `json:"candidate_edges"`
	CorridorsSelected   int   `json:"corridors_selected"`
	CorridorsCarved     int   `json:"corridors_carved"`
	CorridorsAborted    int   `json:"corridors_aborted"`
	DegenerateTriangles int   `json:"degenerate_triangles"`
	EdgesPruned         int   `json:"edges_pruned"`
	PlacementExhausted  bool  `json:"placement_exhausted"`
	PartitionComplete   bool  `json:"partition_complete"`
	// FloorRegions counts 4-connected groups of floor tiles holding a room.
	// It is 1 when every placed room can be walked to from every other.
	FloorRegions        int   `json:"floor_regions"`
	UnreachedRooms      []int `json:"unreached_rooms,omitempty"`
	EntryRoomID         int   `json:"entry_room_id"`
}

// Layout is the finished, read-only result of a generation run
type Layout struct {
	Params     Params           `json:"params"`
	Rows       int              `json:"rows"`
	Cols       int              `json:"cols"`
	Tiles      []TileState      `json:"tiles"` // row-major
	Hub        []Coord          `json:"hub,omitempty"`
	Rooms      []Room           `json:"rooms"`
	Candidates []CandidateEdge  `json:"candidates"`
	Corridors  []Corridor       `json:"corridors"`
	Walls      []WallDescriptor `json:"walls"`
	Summary    Summary          `json:"summary"`
}

// Tile returns the state at c, or TileEmpty when c is outside the layout
func (l *Layout) Tile(c Coord) TileState {
	if c.X < 0 || c.X >= l.Rows || c.Z < 0 || c.Z >= l.Cols {
		return TileEmpty
	}
	return l.Tiles[c.X*l.Cols+c.Z]
}

// CountTiles returns how many tiles are in the given state
func (l *Layout) CountTiles(state TileState) int {
	n := 0
	for _, t := range l.Tiles {
		if t == state {
			n++
		}
	}
	return n
}
