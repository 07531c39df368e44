package propimage

// ClockModeUnknown is the name returned for unrecognized clock mode bytes.
const ClockModeUnknown = "UNKNOWN"

// ClockModeText returns the descriptive name for a clock mode byte, such as
// "RCFAST" or "XTAL1+PLL16X". Unrecognized codes return ClockModeUnknown.
func ClockModeText(mode byte) string {
	switch mode {
	case 0x00:
		return "RCFAST"
	case 0x01:
		return "RCSLOW"
	case 0x22:
		return "XINPUT"
	case 0x2A:
		return "XTAL1"
	case 0x32:
		return "XTAL2"
	case 0x3A:
		return "XTAL3"
	case 0x63:
		return "XINPUT+PLL1X"
	case 0x64:
		return "XINPUT+PLL2X"
	case 0x65:
		return "XINPUT+PLL4X"
	case 0x66:
		return "XINPUT+PLL8X"
	case 0x67:
		return "XINPUT+PLL16X"
	case 0x6B:
		return "XTAL1+PLL1X"
	case 0x6C:
		return "XTAL1+PLL2X"
	case 0x6D:
		return "XTAL1+PLL4X"
	case 0x6E:
		return "XTAL1+PLL8X"
	case 0x6F:
		return "XTAL1+PLL16X"
	case 0x73:
		return "XTAL2+PLL1X"
	case 0x74:
		return "XTAL2+PLL2X"
	case 0x75:
		return "XTAL2+PLL4X"
	case 0x76:
		return "XTAL2+PLL8X"
	case 0x77:
		return "XTAL2+PLL16X"
	case 0x7B:
		return "XTAL3+PLL1X"
	case 0x7C:
		return "XTAL3+PLL2X"
	case 0x7D:
		return "XTAL3+PLL4X"
	case 0x7E:
		return "XTAL3+PLL8X"
	case 0x7F:
		return "XTAL3+PLL16X"
	default:
		return ClockModeUnknown
	}
}

// IsClockMode reports whether mode is one of the recognized clock mode codes.
func IsClockMode(mode byte) bool {
	return ClockModeText(mode) != ClockModeUnknown
}

// ClockFrequency returns the target clock frequency of the image in Hz.
func (i *Image) ClockFrequency() (uint32, error) {
	return i.ReadLong(ClockFrequencyOffset)
}

// SetClockFrequency assigns a new clock frequency to the image. The checksum
// is not recalculated.
func (i *Image) SetClockFrequency(frequency uint32) error {
	return i.WriteLong(ClockFrequencyOffset, frequency)
}

// ClockMode returns the raw clock mode byte of the image.
func (i *Image) ClockMode() (byte, error) {
	return i.ReadByte(ClockModeOffset)
}

// ClockModeText returns the descriptive name of the image's current clock
// mode, or ClockModeUnknown when the byte is unreadable or unrecognized.
func (i *Image) ClockModeText() string {
	mode, err := i.ClockMode()
	if err != nil {
		return ClockModeUnknown
	}
	return ClockModeText(mode)
}

// SetClockMode writes a validated clock mode byte. Fails with
// *UnknownClockModeError when mode is not a recognized code, leaving the
// buffer unchanged. The checksum is not recalculated.
func (i *Image) SetClockMode(mode byte) error {
	if !IsClockMode(mode) {
		return &UnknownClockModeError{Mode: mode}
	}
	return i.WriteByte(ClockModeOffset, mode)
}
