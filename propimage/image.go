package propimage

import (
	"encoding/binary"
	"fmt"
)

// ImageType classifies an application image buffer.
type ImageType int

// Image classifications.
const (
	// Invalid marks a buffer that is not a loadable application image
	Invalid ImageType = iota

	// Binary is a program image: header and code, ending at start-of-variables
	Binary

	// Eeprom is a complete 32 KB EEPROM image
	Eeprom
)

// String returns the display label for the image type.
func (t ImageType) String() string {
	switch t {
	case Binary:
		return "Program"
	case Eeprom:
		return "EEPROM"
	default:
		return "Invalid"
	}
}

// Image is a Propeller application image held in memory.
//
// The image owns its buffer exclusively: New, SetData, and Data all copy, so
// callers cannot bypass the write primitives. Image is not safe for
// concurrent use without external synchronization.
type Image struct {
	data     []byte
	fileName string
}

// Option is a functional option for constructing an Image.
type Option func(*Image)

// WithFileName attaches an origin label to the image, typically the name of
// the file or download source the buffer came from. The label carries no
// semantic weight for validation.
//
// Example:
//
//	img := propimage.New(buf, propimage.WithFileName("blink.binary"))
func WithFileName(name string) Option {
	return func(i *Image) {
		i.fileName = name
	}
}

// New creates an Image from a copy of data.
//
// Example:
//
//	img := propimage.New(buf)
//	if err := img.Validate(); err != nil {
//	    log.Fatal(err)
//	}
func New(data []byte, opts ...Option) *Image {
	i := &Image{data: make([]byte, len(data))}
	copy(i.data, data)
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// SetData replaces the image buffer with a copy of data.
func (i *Image) SetData(data []byte) {
	i.data = make([]byte, len(data))
	copy(i.data, data)
}

// Data returns a copy of the image buffer. Mutating the returned slice does
// not affect the image; modifications go through the write primitives.
func (i *Image) Data() []byte {
	out := make([]byte, len(i.data))
	copy(out, i.data)
	return out
}

// FileName returns the origin label supplied at construction, or "" if none.
func (i *Image) FileName() string {
	return i.fileName
}

// Size returns the image size in bytes.
func (i *Image) Size() int {
	return len(i.data)
}

// Type classifies the image from its current contents:
//   - Eeprom when the size is exactly EEPROMSize
//   - Binary when the size is smaller and the start-of-code pointer decodes
//     to StartOfCodeValue
//   - Invalid otherwise (too short to decode, wrong start-of-code pointer,
//     or larger than the EEPROM capacity)
//
// The classification is derived on every call, so it never goes stale after
// writes or SetData.
func (i *Image) Type() ImageType {
	if len(i.data) == EEPROMSize {
		return Eeprom
	}
	if len(i.data) > EEPROMSize {
		return Invalid
	}
	soc, err := i.ReadWord(StartOfCodeOffset)
	if err != nil || soc != StartOfCodeValue {
		return Invalid
	}
	return Binary
}

// TypeText returns the display label for the image type:
// "Program", "EEPROM", or "Invalid".
func (i *Image) TypeText() string {
	return i.Type().String()
}

// String returns a one-line summary of the image.
func (i *Image) String() string {
	label := i.fileName
	if label == "" {
		label = "image"
	}
	if i.Type() == Invalid {
		return fmt.Sprintf("%s: Invalid, %d bytes", label, len(i.data))
	}
	freq, _ := i.ClockFrequency()
	return fmt.Sprintf("%s: %s, %d bytes, %d Hz, %s",
		label, i.TypeText(), len(i.data), freq, i.ClockModeText())
}

// checkRange validates that width bytes at pos lie inside the buffer.
func (i *Image) checkRange(pos, width int) error {
	if pos < 0 || pos > len(i.data)-width {
		return &OutOfRangeError{Pos: pos, Width: width, Size: len(i.data)}
	}
	return nil
}

// ReadByte reads the byte at pos.
func (i *Image) ReadByte(pos int) (byte, error) {
	if err := i.checkRange(pos, 1); err != nil {
		return 0, err
	}
	return i.data[pos], nil
}

// ReadWord reads the 16-bit little-endian word at pos.
func (i *Image) ReadWord(pos int) (uint16, error) {
	if err := i.checkRange(pos, 2); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(i.data[pos:]), nil
}

// ReadLong reads the 32-bit little-endian long at pos.
func (i *Image) ReadLong(pos int) (uint32, error) {
	if err := i.checkRange(pos, 4); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(i.data[pos:]), nil
}

// WriteByte writes value at pos. The checksum is not recalculated; call
// RecalculateChecksum after structural edits.
func (i *Image) WriteByte(pos int, value byte) error {
	if err := i.checkRange(pos, 1); err != nil {
		return err
	}
	i.data[pos] = value
	return nil
}

// WriteWord writes a 16-bit little-endian word at pos. The checksum is not
// recalculated.
func (i *Image) WriteWord(pos int, value uint16) error {
	if err := i.checkRange(pos, 2); err != nil {
		return err
	}
	binary.LittleEndian.PutUint16(i.data[pos:], value)
	return nil
}

// WriteLong writes a 32-bit little-endian long at pos. The checksum is not
// recalculated.
func (i *Image) WriteLong(pos int, value uint32) error {
	if err := i.checkRange(pos, 4); err != nil {
		return err
	}
	binary.LittleEndian.PutUint32(i.data[pos:], value)
	return nil
}

// StartOfCode returns the start-of-code pointer (PBASE).
// A valid image always holds StartOfCodeValue here.
func (i *Image) StartOfCode() (uint16, error) {
	return i.ReadWord(StartOfCodeOffset)
}

// StartOfVariables returns the start-of-variables pointer (VBASE): the byte
// offset where global variable space begins.
func (i *Image) StartOfVariables() (uint16, error) {
	return i.ReadWord(StartOfVariablesOffset)
}

// StartOfStackSpace returns the start-of-stack-space pointer (DBASE): the
// byte offset where stack space begins.
func (i *Image) StartOfStackSpace() (uint16, error) {
	return i.ReadWord(StartOfStackSpaceOffset)
}

// ProgramPointer returns the initial program counter (PCURR), pointing at
// the first public method of the top object.
func (i *Image) ProgramPointer() (uint16, error) {
	return i.ReadWord(ProgramPointerOffset)
}

// StackPointer returns the initial stack pointer (DCURR), pointing at the
// first run-time usable space of the stack.
func (i *Image) StackPointer() (uint16, error) {
	return i.ReadWord(StackPointerOffset)
}

// ProgramSize returns the size of the code region in bytes
// (startOfVariables - startOfCode). A negative result means the header
// pointers are out of order; Validate reports that as an invalid header.
func (i *Image) ProgramSize() (int, error) {
	soc, err := i.StartOfCode()
	if err != nil {
		return 0, err
	}
	sov, err := i.StartOfVariables()
	if err != nil {
		return 0, err
	}
	return int(sov) - int(soc), nil
}

// VariableSize returns the size of the global variable region in bytes
// (startOfStackSpace - startOfVariables). May be negative for malformed
// headers, same as ProgramSize.
func (i *Image) VariableSize() (int, error) {
	sov, err := i.StartOfVariables()
	if err != nil {
		return 0, err
	}
	dbase, err := i.StartOfStackSpace()
	if err != nil {
		return 0, err
	}
	return int(dbase) - int(sov), nil
}

// StackSize returns the size of the stack region held in the buffer
// (imageSize - startOfStackSpace). Negative for binary images, whose stored
// bytes end at start-of-variables while the stack exists only in RAM.
func (i *Image) StackSize() (int, error) {
	dbase, err := i.StartOfStackSpace()
	if err != nil {
		return 0, err
	}
	return len(i.data) - int(dbase), nil
}
