package propimage

// checksumTotal computes the additive sum of the whole buffer, adjusted by
// the call-frame constant for binary images. The checksum convention covers
// the full 32 KB RAM image the chip boots from: an EEPROM image stores every
// byte of it, while a binary image omits the zero fill (which sums to
// nothing) and the initial call frame (which sums to initialCallFrameSum).
func (i *Image) checksumTotal() byte {
	var sum byte
	for _, b := range i.data {
		sum += b
	}
	if i.Type() == Binary {
		sum += initialCallFrameSum
	}
	return sum
}

// Checksum returns the checksum byte stored at ChecksumOffset. It does not
// recompute anything; use ChecksumIsValid to verify the image sum.
func (i *Image) Checksum() (byte, error) {
	return i.ReadByte(ChecksumOffset)
}

// ChecksumIsValid recomputes the additive checksum and reports whether the
// image sums to zero mod 256, without mutating the buffer. Returns false
// when the image is too short to hold a checksum byte.
func (i *Image) ChecksumIsValid() bool {
	if len(i.data) <= ChecksumOffset {
		return false
	}
	return i.checksumTotal() == 0
}

// RecalculateChecksum writes a new checksum byte at ChecksumOffset so that
// the image sums to zero mod 256. Fails with an out-of-range error when the
// image is too short to hold the checksum byte, leaving the buffer unchanged.
func (i *Image) RecalculateChecksum() error {
	if err := i.checkRange(ChecksumOffset, 1); err != nil {
		return err
	}
	i.data[ChecksumOffset] = 0
	i.data[ChecksumOffset] = ^i.checksumTotal() + 1 // 2's complement
	return nil
}
