package propimage

import (
	"errors"
	"strings"
	"testing"
)

func TestOutOfRangeError(t *testing.T) {
	err := &OutOfRangeError{
		Pos:   14,
		Width: 4,
		Size:  16,
	}

	errMsg := err.Error()

	if !strings.Contains(errMsg, "out of range") {
		t.Errorf("error message should contain 'out of range', got: %s", errMsg)
	}

	if !strings.Contains(errMsg, "offset 14") {
		t.Errorf("error message should contain the offset, got: %s", errMsg)
	}

	if !strings.Contains(errMsg, "4 byte(s)") {
		t.Errorf("error message should contain the access width, got: %s", errMsg)
	}

	if !strings.Contains(errMsg, "16 bytes") {
		t.Errorf("error message should contain the image size, got: %s", errMsg)
	}
}

func TestIsOutOfRange(t *testing.T) {
	if !IsOutOfRange(&OutOfRangeError{Pos: 0, Width: 1, Size: 0}) {
		t.Error("IsOutOfRange should be true for *OutOfRangeError")
	}

	if IsOutOfRange(nil) {
		t.Error("IsOutOfRange should be false for nil")
	}

	if IsOutOfRange(errors.New("access out of range")) {
		t.Error("IsOutOfRange should be false for other error types")
	}

	if IsOutOfRange(&InvalidHeaderError{Reason: "whatever"}) {
		t.Error("IsOutOfRange should be false for *InvalidHeaderError")
	}
}

func TestInvalidHeaderError(t *testing.T) {
	err := &InvalidHeaderError{
		Reason: "start of code is 0x0000, expected 0x0010",
	}

	errMsg := err.Error()

	if !strings.Contains(errMsg, "invalid image header") {
		t.Errorf("error message should contain 'invalid image header', got: %s", errMsg)
	}

	if !strings.Contains(errMsg, "start of code is 0x0000") {
		t.Errorf("error message should contain the reason, got: %s", errMsg)
	}
}

func TestChecksumMismatchErrorMessage(t *testing.T) {
	err := &ChecksumMismatchError{
		Expected: 0xAB,
		Actual:   0xCD,
	}

	errMsg := err.Error()

	if !strings.Contains(errMsg, "checksum mismatch") {
		t.Errorf("error message should contain 'checksum mismatch', got: %s", errMsg)
	}

	if !strings.Contains(errMsg, "0xAB") {
		t.Errorf("error message should contain expected checksum, got: %s", errMsg)
	}

	if !strings.Contains(errMsg, "0xCD") {
		t.Errorf("error message should contain actual checksum, got: %s", errMsg)
	}
}

func TestUnknownClockModeError(t *testing.T) {
	err := &UnknownClockModeError{
		Mode: 0x69,
	}

	errMsg := err.Error()

	if !strings.Contains(errMsg, "unknown clock mode") {
		t.Errorf("error message should contain 'unknown clock mode', got: %s", errMsg)
	}

	if !strings.Contains(errMsg, "0x69") {
		t.Errorf("error message should contain the mode byte, got: %s", errMsg)
	}
}

func TestErrorTypes(t *testing.T) {
	// Test that all error types implement error interface
	var _ error = &OutOfRangeError{}
	var _ error = &InvalidHeaderError{}
	var _ error = &ChecksumMismatchError{}
	var _ error = &UnknownClockModeError{}
}
