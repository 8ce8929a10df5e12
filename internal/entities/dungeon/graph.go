package dungeon

// CandidateEdge is an unordered room pair produced by triangulation.
// A is always the lower id.
type CandidateEdge struct {
	A      int     `json:"a"`
	B      int     `json:"b"`
	Length float64 `json:"length"`
	// Seq is the discovery order, used to break weight ties
	Seq int `json:"seq"`
}

// Other returns the endpoint opposite id
func (e CandidateEdge) Other(id int) int {
	if e.A == id {
		return e.B
	}
	return e.A
}

// Corridor is a selected connection between two rooms
type Corridor struct {
	From   int     `json:"from"`
	To     int     `json:"to"`
	Anchor Coord   `json:"anchor"`
	Path   []Coord `json:"path,omitempty"`
	Weight float64 `json:"weight"`
}

// WallDescriptor tells a renderer which sides of a wall tile face floor.
// Corner posts have no facings.
type WallDescriptor struct {
	Coord  Coord       `json:"coord"`
	Facing []Direction `json:"facing,omitempty"`
}
