package propimage

import "fmt"

// validateStructure runs the header checks shared by Validate and the format
// conversions: everything except the checksum.
func (i *Image) validateStructure() error {
	if err := i.checkRange(0, HeaderSize); err != nil {
		return err
	}
	if len(i.data) > EEPROMSize {
		return &InvalidHeaderError{
			Reason: fmt.Sprintf("image is %d bytes, larger than the %d-byte EEPROM", len(i.data), EEPROMSize),
		}
	}

	soc, _ := i.StartOfCode()
	sov, _ := i.StartOfVariables()
	dbase, _ := i.StartOfStackSpace()

	if soc != StartOfCodeValue {
		return &InvalidHeaderError{
			Reason: fmt.Sprintf("start of code is 0x%04X, expected 0x%04X", soc, StartOfCodeValue),
		}
	}
	if sov < soc {
		return &InvalidHeaderError{
			Reason: fmt.Sprintf("start of variables 0x%04X precedes start of code 0x%04X", sov, soc),
		}
	}
	if dbase < sov {
		return &InvalidHeaderError{
			Reason: fmt.Sprintf("start of stack space 0x%04X precedes start of variables 0x%04X", dbase, sov),
		}
	}
	if int(dbase) > EEPROMSize {
		return &InvalidHeaderError{
			Reason: fmt.Sprintf("stack space at 0x%04X does not fit the %d-byte RAM", dbase, EEPROMSize),
		}
	}
	if int(sov) > len(i.data) {
		return &InvalidHeaderError{
			Reason: fmt.Sprintf("image is %d bytes but code ends at %d", len(i.data), sov),
		}
	}
	return nil
}

// Validate checks the image structurally and arithmetically, returning the
// first failure:
//
//  1. the buffer holds the full header (*OutOfRangeError otherwise)
//  2. the buffer does not exceed the EEPROM capacity
//  3. the start-of-code pointer equals StartOfCodeValue
//  4. the region pointers are ordered: code <= variables <= stack space
//  5. the stack space begins within the 32 KB RAM image
//  6. the buffer carries the whole code region
//  7. the checksum reduces the image sum to zero (*ChecksumMismatchError)
//
// Checks 2-6 fail with *InvalidHeaderError. A nil return means the image is
// a well-formed, loadable application image.
func (i *Image) Validate() error {
	if err := i.validateStructure(); err != nil {
		return err
	}
	if !i.ChecksumIsValid() {
		stored, _ := i.Checksum()
		return &ChecksumMismatchError{
			Expected: stored - i.checksumTotal(),
			Actual:   stored,
		}
	}
	return nil
}

// IsValid reports whether the image passes every Validate check.
func (i *Image) IsValid() bool {
	return i.Validate() == nil
}
