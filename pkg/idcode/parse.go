package idcode

// ParseIDCode splits a raw IDCODE into its fields.
func ParseIDCode(raw uint32) IDCode {
	return IDCode{
		Raw:              raw,
		Version:          uint8(raw >> 28 & 0xF),
		PartNumber:       uint16(raw >> 12 & 0xFFFF),
		ManufacturerCode: uint16(raw >> 1 & 0x7FF),
		HasIDCode:        raw&0x1 == 0x1,
	}
}

// WithoutVersion masks off the revision nibble. Chip families that differ
// only by stepping compare equal under it.
func WithoutVersion(raw uint32) uint32 {
	return raw & 0x0FFFFFFF
}
