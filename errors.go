package vardata

import (
	"errors"
	"fmt"
)

var (
	// ErrNotInitialized is returned by Insert when Init has not completed.
	ErrNotInitialized = errors.New("column not initialized")

	// ErrSegmentOverflow is returned when a record would push the active
	// segment's byte space past what a 32-bit offset can address.
	ErrSegmentOverflow = errors.New("active segment offset exceeds 32 bits")
)

// ErrUnknownSegment indicates a Get against a segment id the column has
// never created.
type ErrUnknownSegment struct {
	SegmentID uint32
	Known     uint32 // number of known segments, active included
}

func (e *ErrUnknownSegment) Error() string {
	return fmt.Sprintf("unknown segment %d (column has %d segments)", e.SegmentID, e.Known)
}
