package pipeline

// Phase is a stage of generation. Phases run strictly in declaration order.
type Phase int

// Generation phases
const (
	PhasePlacingRooms Phase = iota
	PhaseTriangulating
	PhaseBuildingMST
	PhaseCarving
	PhaseClassifyingWalls
	PhaseDone
)

// String returns the snake_case name used in logs and span names
func (p Phase) String() string {
	switch p {
	case PhasePlacingRooms:
		return "placing_rooms"
	case PhaseTriangulating:
		return "triangulating"
	case PhaseBuildingMST:
		return "building_mst"
	case PhaseCarving:
		return "carving"
	case PhaseClassifyingWalls:
		return "classifying_walls"
	case PhaseDone:
		return "done"
	default:
		return "unknown"
	}
}
