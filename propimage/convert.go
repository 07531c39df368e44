package propimage

// ConvertToEeprom expands a binary image in place into a complete EEPROM
// image: the buffer is zero-padded to EEPROMSize and the initial call frame
// is written immediately below the stack space, the same layout the chip
// produces in RAM at load time. Images that are already EEPROM-sized are
// left untouched.
//
// Fails with the structural validation error when the header does not
// describe a loadable program, leaving the buffer unchanged.
//
// A valid checksum stays valid: the call frame bytes now stored physically
// replace the arithmetic adjustment applied to binary images. The checksum
// is never recalculated here.
func (i *Image) ConvertToEeprom() error {
	if i.Type() == Eeprom {
		return nil
	}
	if err := i.validateStructure(); err != nil {
		return err
	}

	dbase, _ := i.StartOfStackSpace()

	grown := make([]byte, EEPROMSize)
	copy(grown, i.data)
	copy(grown[int(dbase)-len(InitialCallFrame):int(dbase)], InitialCallFrame[:])
	i.data = grown
	return nil
}

// ConvertToBinary truncates an EEPROM image in place to its program payload:
// everything from offset 0 up to start-of-variables, which is exactly what
// gets downloaded to the chip. Images already classified as binary are left
// untouched.
//
// Fails with the structural validation error when the header does not
// describe a loadable program, leaving the buffer unchanged.
//
// A valid checksum stays valid when the dropped tail holds only the zero
// fill and the call frame (the standard EEPROM layout); for images carrying
// extra data beyond start-of-variables, call RecalculateChecksum afterwards.
func (i *Image) ConvertToBinary() error {
	if i.Type() == Binary {
		return nil
	}
	if err := i.validateStructure(); err != nil {
		return err
	}

	sov, _ := i.StartOfVariables()

	trimmed := make([]byte, int(sov))
	copy(trimmed, i.data)
	i.data = trimmed
	return nil
}
