package propimage

// Header field offsets per the Propeller application format.
// All offsets are byte positions into the image; multi-byte fields are little-endian.
const (
	// ClockFrequencyOffset is the 4-byte target clock frequency in Hz
	ClockFrequencyOffset = 0

	// ClockModeOffset is the 1-byte encoded oscillator/PLL configuration
	ClockModeOffset = 4

	// ChecksumOffset is the 1-byte additive checksum field
	ChecksumOffset = 5

	// StartOfCodeOffset is the 2-byte start-of-code pointer (PBASE)
	StartOfCodeOffset = 6

	// StartOfVariablesOffset is the 2-byte start-of-variables pointer (VBASE)
	StartOfVariablesOffset = 8

	// StartOfStackSpaceOffset is the 2-byte start-of-stack-space pointer (DBASE)
	StartOfStackSpaceOffset = 10

	// ProgramPointerOffset is the 2-byte initial program counter (PCURR)
	ProgramPointerOffset = 12

	// StackPointerOffset is the 2-byte initial stack pointer (DCURR)
	StackPointerOffset = 14

	// HeaderSize is the total size of the initialization header in bytes
	HeaderSize = 16
)

// Image geometry constants.
const (
	// EEPROMSize is the capacity of the boot EEPROM and of hub RAM (32 KB)
	EEPROMSize = 32768

	// StartOfCodeValue is the required value of the start-of-code pointer
	StartOfCodeValue = 0x0010
)

// InitialCallFrame holds the two longs ($FFF9FFFF $FFF9FFFF) that sit
// immediately below the stack space. EEPROM images store these bytes at
// startOfStackSpace-8; for binary images the chip inserts them at load time,
// so the checksum convention accounts for them arithmetically instead.
var InitialCallFrame = [8]byte{0xFF, 0xFF, 0xF9, 0xFF, 0xFF, 0xFF, 0xF9, 0xFF}

// initialCallFrameSum is the additive sum of the call frame bytes mod 256,
// folded into the checksum of binary images.
const initialCallFrameSum = 0xEC
