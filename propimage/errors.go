package propimage

import "fmt"

// OutOfRangeError indicates a read or write that falls outside the image bounds.
type OutOfRangeError struct {
	// Pos is the requested byte offset
	Pos int

	// Width is the access width in bytes
	Width int

	// Size is the image size at the time of the access
	Size int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("access out of range: %d byte(s) at offset %d, image is %d bytes",
		e.Width, e.Pos, e.Size)
}

// IsOutOfRange returns true if the error is an OutOfRangeError.
func IsOutOfRange(err error) bool {
	_, ok := err.(*OutOfRangeError)
	return ok
}

// InvalidHeaderError indicates a structurally invalid image header.
type InvalidHeaderError struct {
	// Reason describes the failed structural check
	Reason string
}

func (e *InvalidHeaderError) Error() string {
	return fmt.Sprintf("invalid image header: %s", e.Reason)
}

// ChecksumMismatchError indicates that the stored checksum byte does not
// reduce the image sum to zero.
type ChecksumMismatchError struct {
	Expected byte
	Actual   byte
}

func (e *ChecksumMismatchError) Error() string {
	return fmt.Sprintf("checksum mismatch: expected 0x%02X, got 0x%02X",
		e.Expected, e.Actual)
}

// UnknownClockModeError indicates a clock mode byte outside the recognized set.
type UnknownClockModeError struct {
	Mode byte
}

func (e *UnknownClockModeError) Error() string {
	return fmt.Sprintf("unknown clock mode 0x%02X", e.Mode)
}
