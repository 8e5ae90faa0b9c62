package chipdb

// Areas maps (chip size, area name) to a region of the flash window. Lookup
// takes the first match, so order matters where names repeat.
var Areas = []Area{
	{Size: Size1MB, Name: "CFE", Start: 0x1FC00000, Length: 0x40000},
	{Size: Size2MB, Name: "CFE", Start: 0x1FC00000, Length: 0x40000},
	{Size: Size4MB, Name: "CFE", Start: 0x1FC00000, Length: 0x40000},
	{Size: Size8MB, Name: "CFE", Start: 0x1C000000, Length: 0x40000},
	{Size: Size16MB, Name: "CFE", Start: 0x1F000000, Length: 0x40000},
	{Size: Size8MB, Name: "AR-CFE", Start: 0xA8000000, Length: 0x40000},
	{Size: Size16MB, Name: "AR-CFE", Start: 0xA8000000, Length: 0x40000},

	{Size: Size1MB, Name: "CFE128", Start: 0x1FC00000, Length: 0x20000},
	{Size: Size2MB, Name: "CFE128", Start: 0x1FC00000, Length: 0x20000},
	{Size: Size4MB, Name: "CFE128", Start: 0x1FC00000, Length: 0x20000},
	{Size: Size8MB, Name: "CFE128", Start: 0x1C000000, Length: 0x20000},
	{Size: Size16MB, Name: "CFE128", Start: 0x1C000000, Length: 0x20000},

	{Size: Size1MB, Name: "CF1", Start: 0x1FC00000, Length: 0x2000},
	{Size: Size2MB, Name: "CF1", Start: 0x1FC00000, Length: 0x2000},
	{Size: Size4MB, Name: "CF1", Start: 0x1FC00000, Length: 0x2000},
	{Size: Size8MB, Name: "CF1", Start: 0x1C000000, Length: 0x2000},
	{Size: Size16MB, Name: "CF1", Start: 0x1C000000, Length: 0x2000},

	{Size: Size1MB, Name: "KERNEL", Start: 0x1FC40000, Length: 0xB0000},
	{Size: Size2MB, Name: "KERNEL", Start: 0x1FC40000, Length: 0x1B0000},
	{Size: Size4MB, Name: "KERNEL", Start: 0x1FC40000, Length: 0x3B0000},
	{Size: Size8MB, Name: "KERNEL", Start: 0x1C040000, Length: 0x7A0000},
	{Size: Size16MB, Name: "KERNEL", Start: 0x1C040000, Length: 0x7A0000},
	{Size: Size8MB, Name: "AR-KERNEL", Start: 0xA8040000, Length: 0x7A0000},
	{Size: Size16MB, Name: "AR-KERNEL", Start: 0xA8040000, Length: 0x7A0000},

	{Size: Size1MB, Name: "NVRAM", Start: 0x1FCF0000, Length: 0x10000},
	{Size: Size2MB, Name: "NVRAM", Start: 0x1FDF0000, Length: 0x10000},
	{Size: Size4MB, Name: "NVRAM", Start: 0x1FFF0000, Length: 0x10000},
	{Size: Size8MB, Name: "NVRAM", Start: 0x1C7E0000, Length: 0x20000},
	{Size: Size16MB, Name: "NVRAM", Start: 0x1C7E0000, Length: 0x20000},
	{Size: Size8MB, Name: "AR-NVRAM", Start: 0xA87E0000, Length: 0x20000},
	{Size: Size16MB, Name: "AR-NVRAM", Start: 0xA87E0000, Length: 0x20000},

	{Size: Size2MB, Name: "WGRV9NVRAM", Start: 0x1FDFC000, Length: 0x4000},

	{Size: Size2MB, Name: "WGRV9BDATA", Start: 0x1FDFB000, Length: 0x1000},

	{Size: Size4MB, Name: "WGRV8BDATA", Start: 0x1FFE0000, Length: 0x10000},

	{Size: Size1MB, Name: "WHOLEFLASH", Start: 0x1FC00000, Length: 0x100000},
	{Size: Size2MB, Name: "WHOLEFLASH", Start: 0x1FC00000, Length: 0x200000},
	{Size: Size4MB, Name: "WHOLEFLASH", Start: 0x1FC00000, Length: 0x400000},
	{Size: Size8MB, Name: "WHOLEFLASH", Start: 0x1C000000, Length: 0x800000},
	{Size: Size16MB, Name: "WHOLEFLASH", Start: 0x1F000000, Length: 0x1000000},
	{Size: Size8MB, Name: "AR-WHOLEFLASH", Start: 0xA8000000, Length: 0x800000},
	{Size: Size16MB, Name: "AR-WHOLEFLASH", Start: 0xA8000000, Length: 0x1000000},

	{Size: Size1MB, Name: "BSP", Start: 0x1FC00000, Length: 0x50000},
	{Size: Size2MB, Name: "BSP", Start: 0x1FC00000, Length: 0x50000},
	{Size: Size4MB, Name: "BSP", Start: 0x1FC00000, Length: 0x50000},
	{Size: Size8MB, Name: "BSP", Start: 0x1C000000, Length: 0x50000},
	{Size: Size16MB, Name: "BSP", Start: 0x1C000000, Length: 0x50000},
	{Size: Size8MB, Name: "AR-BSP", Start: 0xA8000000, Length: 0x50000},
	{Size: Size16MB, Name: "AR-BSP", Start: 0xA8000000, Length: 0x50000},

	{Size: Size1MB, Name: "RED", Start: 0x50000000, Length: 0x50000},
	{Size: Size2MB, Name: "RED", Start: 0x50000000, Length: 0x50000},
	{Size: Size4MB, Name: "RED", Start: 0x50000000, Length: 0x50000},
	{Size: Size8MB, Name: "AR-RED", Start: 0xA8000000, Length: 0x30000},
	{Size: Size8MB, Name: "RED", Start: 0x50000000, Length: 0x50000},
	{Size: Size16MB, Name: "RED", Start: 0x50000000, Length: 0x50000},

	{Size: Size1MB, Name: "MTD2", Start: 0x90000000, Length: 0x10000},
	{Size: Size2MB, Name: "MTD2", Start: 0x90000000, Length: 0x10000},
	{Size: Size4MB, Name: "MTD2", Start: 0x90000000, Length: 0x10000},

	{Size: Size1MB, Name: "MTD3", Start: 0x90010000, Length: 0x10000},
	{Size: Size2MB, Name: "MTD3", Start: 0x90010000, Length: 0x10000},
	{Size: Size4MB, Name: "MTD3", Start: 0x90010000, Length: 0x10000},

	{Size: Size1MB, Name: "MTD4", Start: 0x90020000, Length: 0xE0000},
	{Size: Size2MB, Name: "MTD4", Start: 0x90020000, Length: 0x1E0000},
	{Size: Size4MB, Name: "MTD4", Start: 0x90020000, Length: 0x3E0000},

	{Size: Size1MB, Name: "FULL", Start: 0x90020000, Length: 0x100000},
	{Size: Size2MB, Name: "FULL", Start: 0x90020000, Length: 0x200000},
	{Size: Size4MB, Name: "FULL", Start: 0x90020000, Length: 0x400000},
}
