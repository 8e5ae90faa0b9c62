package idcode

import "testing"

func TestParseIDCode(t *testing.T) {
	tests := []struct {
		raw     uint32
		version uint8
		part    uint16
		manuf   uint16
	}{
		{0x0535217F, 0, 0x5352, 0x0BF},
		{0x2535417F, 2, 0x5354, 0x0BF},
		{0x19277013, 1, 0x9277, 0x009},
		{0x0B52D02F, 0, 0xB52D, 0x017},
	}

	for _, tc := range tests {
		id := ParseIDCode(tc.raw)
		if id.Version != tc.version || id.PartNumber != tc.part || id.ManufacturerCode != tc.manuf || !id.HasIDCode {
			t.Fatalf("ParseIDCode(%08X) = %+v", tc.raw, id)
		}
	}
}

func TestLookupManufacturer(t *testing.T) {
	if m, ok := LookupManufacturer(0x0BF); !ok || m.Abbreviation != "BRCM" {
		t.Fatalf("Broadcom lookup = %+v, %v", m, ok)
	}
	if m, ok := LookupManufacturer(0x7FE); ok || m.Abbreviation != "Unknown" {
		t.Fatalf("unknown lookup = %+v, %v", m, ok)
	}
}

func TestFlashVendor(t *testing.T) {
	tests := map[uint16]string{
		0x00C2: "Macronix",
		0x017E: "AMD/Spansion",
		0xDA7E: "Winbond",
		0x0042: "Unknown (0x42)",
		0x00BF: "SST",
	}
	for vend, want := range tests {
		if got := FlashVendor(vend); got != want {
			t.Errorf("FlashVendor(%04X) = %q, want %q", vend, got, want)
		}
	}
}

func TestWithoutVersion(t *testing.T) {
	if WithoutVersion(0x3535417F) != 0x0535417F {
		t.Fatalf("version nibble not masked")
	}
}
