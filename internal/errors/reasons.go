package errors

import "fmt"

// Reason narrows a Code to a specific failure of the dungeon generator
type Reason string

// Generation failure reasons
const (
	// ReasonInvalidDimensions means the map cannot be allocated. Fatal.
	ReasonInvalidDimensions Reason = "INVALID_DIMENSIONS"
	// ReasonRoomPlacementExhausted means the attempt budget ran out. Recoverable.
	ReasonRoomPlacementExhausted Reason = "ROOM_PLACEMENT_EXHAUSTED"
	// ReasonDegenerateGeometry means collinear or duplicate centers. Recoverable.
	ReasonDegenerateGeometry Reason = "DEGENERATE_GEOMETRY"
	// ReasonIncompletePartition means the spanning tree could not reach every room. Recoverable.
	ReasonIncompletePartition Reason = "INCOMPLETE_PARTITION"
	// ReasonTileConflict means a carve would overwrite an incompatible tile. Aborts one corridor.
	ReasonTileConflict Reason = "TILE_CONFLICT"
	// ReasonOutOfBounds means direct grid access outside the map. Fatal.
	ReasonOutOfBounds Reason = "OUT_OF_BOUNDS"
)

// String returns the string representation of the reason
func (r Reason) String() string {
	return string(r)
}

// Code returns the error code a reason is reported under
func (r Reason) Code() Code {
	switch r {
	case ReasonInvalidDimensions:
		return CodeInvalidArgument
	case ReasonRoomPlacementExhausted:
		return CodeResourceExhausted
	case ReasonDegenerateGeometry, ReasonIncompletePartition:
		return CodeFailedPrecondition
	case ReasonTileConflict:
		return CodeAborted
	case ReasonOutOfBounds:
		return CodeOutOfRange
	default:
		return CodeInternal
	}
}

// Recoverable reports whether generation continues with reduced scope after this reason
func (r Reason) Recoverable() bool {
	switch r {
	case ReasonRoomPlacementExhausted, ReasonDegenerateGeometry, ReasonIncompletePartition, ReasonTileConflict:
		return true
	default:
		return false
	}
}

// NewReason creates an error for a reason, using the reason's code
func NewReason(reason Reason, message string) *Error {
	return &Error{
		Code:    reason.Code(),
		Reason:  reason,
		Message: message,
	}
}

// NewReasonf creates an error for a reason with a formatted message
func NewReasonf(reason Reason, format string, args ...interface{}) *Error {
	return NewReason(reason, fmt.Sprintf(format, args...))
}

// InvalidDimensionsf creates an invalid dimensions error
func InvalidDimensionsf(format string, args ...interface{}) *Error {
	return NewReasonf(ReasonInvalidDimensions, format, args...)
}

// RoomPlacementExhaustedf creates a placement exhaustion error
func RoomPlacementExhaustedf(format string, args ...interface{}) *Error {
	return NewReasonf(ReasonRoomPlacementExhausted, format, args...)
}

// DegenerateGeometryf creates a degenerate geometry error
func DegenerateGeometryf(format string, args ...interface{}) *Error {
	return NewReasonf(ReasonDegenerateGeometry, format, args...)
}

// IncompletePartitionf creates an incomplete partition error
func IncompletePartitionf(format string, args ...interface{}) *Error {
	return NewReasonf(ReasonIncompletePartition, format, args...)
}

// TileConflictf creates a tile conflict error
func TileConflictf(format string, args ...interface{}) *Error {
	return NewReasonf(ReasonTileConflict, format, args...)
}

// OutOfBoundsf creates an out of bounds error
func OutOfBoundsf(format string, args ...interface{}) *Error {
	return NewReasonf(ReasonOutOfBounds, format, args...)
}
