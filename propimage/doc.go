// Package propimage models the Parallax Propeller (P8X32A) application image.
//
// An application image is the binary payload loaded onto the chip. It packs
// an initialization header, the program code, global variable space, and
// stack space into one contiguous buffer. Two variants exist: binary images
// (usually .binary files) carry the header and code only, while EEPROM
// images (usually .eeprom files) are complete 32 KB payloads including the
// zero-filled variable/stack regions and the initial call frame.
//
// # Application Image Format
//
// The first 16 bytes form the initialization header. All multi-byte fields
// are little-endian:
//
//	[ClockFrequency(4)][ClockMode(1)][Checksum(1)][PBASE(2)][VBASE(2)][DBASE(2)][PCURR(2)][DCURR(2)]
//
// Where:
//   - ClockFrequency = target clock frequency in Hz
//   - ClockMode = encoded oscillator/PLL configuration (see ClockModeText)
//   - Checksum = byte chosen so the additive sum of the 32 KB RAM image is 0 mod 256
//   - PBASE = start of code pointer, always 0x0010
//   - VBASE = start of variables pointer
//   - DBASE = start of stack space pointer
//   - PCURR = initial program counter (first public method)
//   - DCURR = initial stack pointer (first usable stack location)
//
// # What Gets Downloaded
//
// Loaders do not transmit a full image to the chip. Only the bytes from
// offset 0 through the end of code (start-of-variables) are downloaded; the
// chip zero-fills the rest of RAM/EEPROM and inserts the initial call frame
// below the stack space itself. That is why a binary image ends at
// start-of-variables, and why its checksum convention folds in the
// call-frame constant for bytes it never stores.
//
// # Usage
//
// Wrap a buffer obtained from any source and inspect it:
//
//	img := propimage.New(buf, propimage.WithFileName("blink.binary"))
//
//	fmt.Printf("type:  %s\n", img.TypeText())
//	fmt.Printf("clock: %s\n", img.ClockModeText())
//
//	if err := img.Validate(); err != nil {
//	    log.Fatal(err)
//	}
//
// Retarget an image to different clock settings:
//
//	if err := img.SetClockFrequency(80000000); err != nil {
//	    log.Fatal(err)
//	}
//	if err := img.SetClockMode(0x6F); err != nil { // XTAL1+PLL16X
//	    log.Fatal(err)
//	}
//	if err := img.RecalculateChecksum(); err != nil {
//	    log.Fatal(err)
//	}
//
// Convert between the two variants in memory:
//
//	if err := img.ConvertToEeprom(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Error Handling
//
// Failures are recoverable values, never panics:
//   - *OutOfRangeError for reads/writes beyond the buffer
//   - *InvalidHeaderError for structural header problems
//   - *ChecksumMismatchError when the image sum is not zero
//   - *UnknownClockModeError for unrecognized clock mode codes
//
// Write failures leave the buffer unchanged. Writes never recalculate the
// checksum; callers invalidate and recalculate explicitly.
//
// An Image is not safe for concurrent use without external synchronization.
package propimage
