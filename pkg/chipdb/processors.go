package chipdb

// Processors lists every supported CPU by exact IDCODE.
var Processors = []Processor{
	{ID: 0x0471017F, IRLength: 5, Name: "Broadcom BCM4702 Rev 1 CPU"},
	{ID: 0x9470417F, IRLength: 8, Name: "Broadcom BCM4704 KPBG Rev 9 CPU"},
	{ID: 0x0470417F, IRLength: 8, Name: "Broadcom BCM4704 Rev 8 CPU"},
	{ID: 0x1471217F, IRLength: 8, Name: "Broadcom BCM4712 Rev 1 CPU"},
	{ID: 0x2471217F, IRLength: 8, Name: "Broadcom BCM4712 Rev 2 CPU"},
	{ID: 0x1471617F, IRLength: 8, Name: "Broadcom BCM4716 Rev 1 CPU"},
	{ID: 0x0478517F, IRLength: 8, Name: "Broadcom BCM4785 Rev 1 CPU"},
	{ID: 0x0535017F, IRLength: 8, Name: "Broadcom BCM5350 Rev 1 CPU"},
	{ID: 0x0535217F, IRLength: 8, Name: "Broadcom BCM5352 Rev 1 CPU"},
	{ID: 0x1535417F, IRLength: 8, Name: "Broadcom BCM5354 KFBG Rev 1 CPU"},
	{ID: 0x2535417F, IRLength: 8, Name: "Broadcom BCM5354 KFBG Rev 2 CPU"},
	{ID: 0x3535417F, IRLength: 8, Name: "Broadcom BCM5354 KFBG Rev 3 CPU"},
	{ID: 0x0334517F, IRLength: 5, Name: "Broadcom BCM3345 KPB Rev 1 CPU"},
	{ID: 0x0536517F, IRLength: 8, Name: "Broadcom BCM5365 Rev 1 CPU"},
	{ID: 0x1536517F, IRLength: 8, Name: "Broadcom BCM5365 Rev 1 CPU"},
	{ID: 0x0634517F, IRLength: 5, Name: "Broadcom BCM6345 Rev 1 CPU"},
	{ID: 0x0634817F, IRLength: 5, Name: "Broadcom BCM6348 Rev 1 CPU"},
	{ID: 0x0633817F, IRLength: 5, Name: "Broadcom BCM6338 Rev 1 CPU"},
	{ID: 0x0635817F, IRLength: 5, Name: "Broadcom BCM6358 Rev 1 CPU"},
	{ID: 0x0636817F, IRLength: 5, Name: "Broadcom BCM6368 Rev 1 CPU"},
	{ID: 0x1432117F, IRLength: 5, Name: "Broadcom BCM4321 RADIO STOP"},
	{ID: 0x3432117F, IRLength: 5, Name: "Broadcom BCM4321L RADIO STOP"},
	{ID: 0x0000100F, IRLength: 5, Name: "TI AR7 TNETD7x00 Rev 1 CPU"},
	{ID: 0x102002E1, IRLength: 5, Name: "BRECIS MSP2007-CA-A1 CPU"},
	{ID: 0x0B52D02F, IRLength: 5, Name: "TI TNETV1060GDW CPU"},
	{ID: 0x00217067, IRLength: 5, Name: "Linkstation 2 with RISC K4C chip"},
	{ID: 0x00000001, IRLength: 5, Name: "Atheros AR531X/231X CPU"},
	{ID: 0x19277013, IRLength: 7, Name: "XScale IXP42X 266mhz"},
	{ID: 0x19275013, IRLength: 7, Name: "XScale IXP42X 400mhz"},
	{ID: 0x19274013, IRLength: 7, Name: "XScale IXP42X 533mhz"},
	{ID: 0x10940027, IRLength: 4, Name: "ARM 940T"},
	{ID: 0x07926041, IRLength: 4, Name: "Marvell Feroceon 88F5181"},
	{ID: 0x1438000D, IRLength: 5, Name: "LX4380"},
}
