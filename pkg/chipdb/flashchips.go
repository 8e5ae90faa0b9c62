package chipdb

// FlashChips is the flash part table. Probe takes the first (vendor, device)
// match and /fc:N selects entry N counting from 1, so order is significant.
var FlashChips = []FlashChip{
	// AMD, Spansion
	{Vendor: 0x00C2, Device: 0x22DA, Size: Size1MB, CommandSet: AMD, Name: "MX29LV800BTC 512kx16 TopB  (1MB)", Regions: []Region{{15, Block32K}, {1, Block16K}, {2, Block4K}, {1, Block8K}}},
	{Vendor: 0x00C2, Device: 0x225B, Size: Size1MB, CommandSet: AMD, Name: "MX29LV800BTC 512kx16 BotB  (1MB)", Regions: []Region{{1, Block8K}, {2, Block4K}, {1, Block16K}, {15, Block32K}}},
	{Vendor: 0x0001, Device: 0x2249, Size: Size2MB, CommandSet: AMD, Name: "AMD 29lv160DB 1Mx16 BotB   (2MB)", Regions: []Region{{1, Block16K}, {2, Block8K}, {1, Block32K}, {31, Block64K}}},
	{Vendor: 0x0001, Device: 0x22C4, Size: Size2MB, CommandSet: AMD, Name: "AMD 29lv160DT 1Mx16 TopB   (2MB)", Regions: []Region{{31, Block64K}, {1, Block32K}, {2, Block8K}, {1, Block16K}}},
	{Vendor: 0x007F, Device: 0x2249, Size: Size2MB, CommandSet: AMD, Name: "EON EN29LV160A 1Mx16 BotB  (2MB)", Regions: []Region{{1, Block16K}, {2, Block8K}, {1, Block32K}, {31, Block64K}}},
	{Vendor: 0x007F, Device: 0x22C4, Size: Size2MB, CommandSet: AMD, Name: "EON EN29LV160A 1Mx16 TopB  (2MB)", Regions: []Region{{31, Block64K}, {1, Block32K}, {2, Block8K}, {1, Block16K}}},
	{Vendor: 0x0004, Device: 0x2249, Size: Size2MB, CommandSet: AMD, Name: "MBM29LV160B 1Mx16 BotB     (2MB)", Regions: []Region{{1, Block16K}, {2, Block8K}, {1, Block32K}, {31, Block64K}}},
	{Vendor: 0x0004, Device: 0x22C4, Size: Size2MB, CommandSet: AMD, Name: "MBM29LV160T 1Mx16 TopB     (2MB)", Regions: []Region{{31, Block64K}, {1, Block32K}, {2, Block8K}, {1, Block16K}}},
	{Vendor: 0x00C2, Device: 0x2249, Size: Size2MB, CommandSet: AMD, Name: "MX29LV160CB 1Mx16 BotB     (2MB)", Regions: []Region{{1, Block16K}, {2, Block8K}, {1, Block32K}, {31, Block64K}}},
	{Vendor: 0x00C2, Device: 0x22C4, Size: Size2MB, CommandSet: AMD, Name: "MX29LV160CT 1Mx16 TopB     (2MB)", Regions: []Region{{31, Block64K}, {1, Block32K}, {2, Block8K}, {1, Block16K}}},
	{Vendor: 0x00EC, Device: 0x2275, Size: Size2MB, CommandSet: AMD, Name: "K8D1716UTC  1Mx16 TopB     (2MB)", Regions: []Region{{31, Block64K}, {8, Block8K}}},
	{Vendor: 0x00EC, Device: 0x2277, Size: Size2MB, CommandSet: AMD, Name: "K8D1716UBC  1Mx16 BotB     (2MB)", Regions: []Region{{8, Block8K}, {31, Block64K}}},
	{Vendor: 0x0020, Device: 0x2249, Size: Size2MB, CommandSet: AMD, Name: "ST M29W160EB 1Mx16 BotB    (2MB)", Regions: []Region{{1, Block16K}, {2, Block8K}, {1, Block32K}, {31, Block64K}}},
	{Vendor: 0x0020, Device: 0x22C4, Size: Size2MB, CommandSet: AMD, Name: "ST M29W160ET 1Mx16 TopB    (2MB)", Regions: []Region{{31, Block64K}, {1, Block32K}, {2, Block8K}, {1, Block16K}}},
	{Vendor: 0x00C2, Device: 0x0014, Size: Size2MB, CommandSet: SPI, Name: "Macronix MX25L160A         (2MB) Serial", Regions: []Region{{32, Block64K}}},
	{Vendor: 0x001F, Device: 0x2600, Size: Size2MB, CommandSet: SPI, Name: "Atmel AT45DB161B           (2MB) Serial", Regions: []Region{{512, BlockA4K}}},
	{Vendor: 0x0040, Device: 0x0000, Size: Size2MB, CommandSet: SPI, Name: "Atmel AT45DB161B           (2MB) Serial", Regions: []Region{{512, BlockA4K}}},
	{Vendor: 0x00EC, Device: 0x22A0, Size: Size4MB, CommandSet: AMD, Name: "K8D3216UTC  2Mx16 TopB     (4MB)", Regions: []Region{{63, Block64K}, {8, Block8K}}},
	{Vendor: 0x00EC, Device: 0x22A2, Size: Size4MB, CommandSet: AMD, Name: "K8D3216UBC  2Mx16 BotB     (4MB)", Regions: []Region{{8, Block8K}, {63, Block64K}}},
	{Vendor: 0x00C2, Device: 0x2015, Size: Size2MB, CommandSet: SPI, Name: "Macronix MX25L1605D        (2MB) Serial", Regions: []Region{{32, Block64K}}},
	{Vendor: 0x00C2, Device: 0x2016, Size: Size4MB, CommandSet: SPI, Name: "Macronix MX25L3205D        (4MB) Serial", Regions: []Region{{64, Block64K}}},
	{Vendor: 0x00C2, Device: 0x2017, Size: Size8MB, CommandSet: SPI, Name: "Macronix MX25L6405D        (8MB) Serial", Regions: []Region{{128, Block64K}}},
	{Vendor: 0x0020, Device: 0x2015, Size: Size2MB, CommandSet: SPI, Name: "STMicro M25P16             (2MB) Serial", Regions: []Region{{32, Block64K}}},
	{Vendor: 0x0020, Device: 0x2016, Size: Size4MB, CommandSet: SPI, Name: "STMicro M25P32             (4MB) Serial", Regions: []Region{{64, Block64K}}},
	{Vendor: 0x0020, Device: 0x2017, Size: Size8MB, CommandSet: SPI, Name: "STMicro M25P64             (8MB) Serial", Regions: []Region{{128, Block64K}}},
	{Vendor: 0x0020, Device: 0x2018, Size: Size16MB, CommandSet: SPI, Name: "STMicro M25P128           (16MB) Serial", Regions: []Region{{32, Block256K}}},
	{Vendor: 0x0001, Device: 0x2200, Size: Size4MB, CommandSet: AMD, Name: "AMD 29lv320MB 2Mx16 BotB   (4MB)", Regions: []Region{{8, Block8K}, {63, Block64K}}},
	{Vendor: 0x0001, Device: 0x227E, Size: Size4MB, CommandSet: AMD, Name: "AMD 29lv320MT 2Mx16 TopB   (4MB)", Regions: []Region{{63, Block64K}, {8, Block8K}}},
	{Vendor: 0x0001, Device: 0x2201, Size: Size4MB, CommandSet: AMD, Name: "AMD 29lv320MT 2Mx16 TopB   (4MB)", Regions: []Region{{63, Block64K}, {8, Block8K}}},
	{Vendor: 0x0098, Device: 0x009C, Size: Size4MB, CommandSet: AMD, Name: "TC58FVB321 2Mx16 BotB      (4MB)", Regions: []Region{{1, Block16K}, {2, Block8K}, {1, Block32K}, {63, Block64K}}},
	{Vendor: 0x0098, Device: 0x009A, Size: Size4MB, CommandSet: AMD, Name: "TC58FVT321 2Mx16 TopB      (4MB)", Regions: []Region{{63, Block64K}, {1, Block32K}, {2, Block8K}, {1, Block16K}}},
	{Vendor: 0x001F, Device: 0x00C0, Size: Size4MB, CommandSet: AMD, Name: "AT49BV/LV16X 2Mx16 BotB    (4MB)", Regions: []Region{{8, Block8K}, {63, Block64K}}},
	{Vendor: 0x001F, Device: 0x00C2, Size: Size4MB, CommandSet: AMD, Name: "AT49BV/LV16XT 2Mx16 TopB   (4MB)", Regions: []Region{{63, Block64K}, {8, Block8K}}},
	{Vendor: 0x0004, Device: 0x2253, Size: Size4MB, CommandSet: AMD, Name: "MBM29DL323BE 2Mx16 BotB    (4MB)", Regions: []Region{{8, Block8K}, {63, Block64K}}},
	{Vendor: 0x0004, Device: 0x2250, Size: Size4MB, CommandSet: AMD, Name: "MBM29DL323TE 2Mx16 TopB    (4MB)", Regions: []Region{{63, Block64K}, {8, Block8K}}},
	{Vendor: 0x0001, Device: 0x22F9, Size: Size4MB, CommandSet: AMD, Name: "AMD 29lv320DB 2Mx16 BotB   (4MB)", Regions: []Region{{8, Block8K}, {63, Block64K}}},
	{Vendor: 0x0001, Device: 0x22F6, Size: Size4MB, CommandSet: AMD, Name: "AMD 29lv320DT 2Mx16 TopB   (4MB)", Regions: []Region{{63, Block64K}, {8, Block8K}}},
	{Vendor: 0x0004, Device: 0x22F9, Size: Size4MB, CommandSet: AMD, Name: "MBM29LV320BE 2Mx16 BotB    (4MB)", Regions: []Region{{1, Block16K}, {2, Block8K}, {1, Block32K}, {63, Block64K}}},
	{Vendor: 0x0004, Device: 0x22F6, Size: Size4MB, CommandSet: AMD, Name: "MBM29LV320TE 2Mx16 TopB    (4MB)", Regions: []Region{{63, Block64K}, {1, Block32K}, {2, Block8K}, {1, Block16K}}},
	{Vendor: 0x00C2, Device: 0x22A8, Size: Size4MB, CommandSet: AMD, Name: "MX29LV320B 2Mx16 BotB      (4MB)", Regions: []Region{{8, Block8K}, {63, Block64K}}},
	{Vendor: 0x00C2, Device: 0x00A8, Size: Size4MB, CommandSet: AMD, Name: "MX29LV320B 2Mx16 BotB      (4MB)", Regions: []Region{{8, Block8K}, {63, Block64K}}},
	{Vendor: 0x00C2, Device: 0x00A7, Size: Size4MB, CommandSet: AMD, Name: "MX29LV320T 2Mx16 TopB      (4MB)", Regions: []Region{{63, Block64K}, {8, Block8K}}},
	{Vendor: 0x00C2, Device: 0x22A7, Size: Size4MB, CommandSet: AMD, Name: "MX29LV320T 2Mx16 TopB      (4MB)", Regions: []Region{{63, Block64K}, {8, Block8K}}},
	{Vendor: 0x0020, Device: 0x22CB, Size: Size4MB, CommandSet: AMD, Name: "ST 29w320DB 2Mx16 BotB     (4MB)", Regions: []Region{{1, Block16K}, {2, Block8K}, {1, Block32K}, {63, Block64K}}},
	{Vendor: 0x0020, Device: 0x22CA, Size: Size4MB, CommandSet: AMD, Name: "ST 29w320DT 2Mx16 TopB     (4MB)", Regions: []Region{{63, Block64K}, {1, Block32K}, {2, Block8K}, {1, Block16K}}},
	{Vendor: 0x00C2, Device: 0x22C9, Size: Size16MB, CommandSet: AMD, Name: "MX29LV640B 4Mx16 TopB     (16MB)", Regions: []Region{{127, Block64K}, {8, Block8K}}},
	{Vendor: 0x00C2, Device: 0x22CB, Size: Size16MB, CommandSet: AMD, Name: "MX29LV640B 4Mx16 BotB     (16MB)", Regions: []Region{{8, Block8K}, {127, Block64K}}},
	{Vendor: 0x00DA, Device: 0x22BA, Size: Size4MB, CommandSet: AMD, Name: "W19B(L)320ST   2Mx16 TopB  (4MB)", Regions: []Region{{63, Block64K}, {8, Block8K}}},
	{Vendor: 0x00DA, Device: 0x222A, Size: Size4MB, CommandSet: AMD, Name: "W19B(L)320SB   2Mx16 BotB  (4MB)", Regions: []Region{{8, Block8K}, {63, Block64K}}},
	{Vendor: 0x22DA, Device: 0x222A, Size: Size4MB, CommandSet: AMD, Name: "W19B(L)320SB   2Mx16 BotB  (4MB)", Regions: []Region{{8, Block8K}, {63, Block64K}}},
	{Vendor: 0x0020, Device: 0x225C, Size: Size4MB, CommandSet: AMD, Name: "M29DW324DT 2Mx16 TopB      (4MB)", Regions: []Region{{63, Block64K}, {8, Block8K}}},
	{Vendor: 0x0020, Device: 0x225D, Size: Size4MB, CommandSet: AMD, Name: "M29DW324DB 2Mx16 BotB      (4MB)", Regions: []Region{{8, Block8K}, {63, Block64K}}},
	{Vendor: 0x0098, Device: 0x0057, Size: Size8MB, CommandSet: AMD, Name: "TC58FVM6T2A  4Mx16 TopB    (8MB)", Regions: []Region{{127, Block64K}, {8, Block8K}}},
	{Vendor: 0x0098, Device: 0x0058, Size: Size8MB, CommandSet: AMD, Name: "TC58FVM6B2A  4Mx16 BopB    (8MB)", Regions: []Region{{8, Block8K}, {127, Block64K}}},
	{Vendor: 0x00EC, Device: 0x22E0, Size: Size8MB, CommandSet: AMD, Name: "K8D6316UTM  4Mx16 TopB     (8MB)", Regions: []Region{{127, Block64K}, {8, Block8K}}},
	{Vendor: 0x00EC, Device: 0x22E2, Size: Size8MB, CommandSet: AMD, Name: "K8D6316UBM  4Mx16 BotB     (8MB)", Regions: []Region{{8, Block8K}, {127, Block64K}}},

	// BSC
	{Vendor: 0x0089, Device: 0x8891, Size: Size2MB, CommandSet: BSC, Name: "Intel 28F160B3 1Mx16 BotB  (2MB)", Regions: []Region{{8, Block8K}, {31, Block64K}}},
	{Vendor: 0x0089, Device: 0x8890, Size: Size2MB, CommandSet: BSC, Name: "Intel 28F160B3 1Mx16 TopB  (2MB)", Regions: []Region{{31, Block64K}, {8, Block8K}}},
	{Vendor: 0x0089, Device: 0x88C3, Size: Size2MB, CommandSet: BSC, Name: "Intel 28F160C3 1Mx16 BotB  (2MB)", Regions: []Region{{8, Block8K}, {31, Block64K}}},
	{Vendor: 0x0089, Device: 0x88C2, Size: Size2MB, CommandSet: BSC, Name: "Intel 28F160C3 1Mx16 TopB  (2MB)", Regions: []Region{{31, Block64K}, {8, Block8K}}},
	{Vendor: 0x0089, Device: 0x8897, Size: Size4MB, CommandSet: BSC, Name: "Intel 28F320B3 2Mx16 BotB  (4MB)", Regions: []Region{{8, Block8K}, {63, Block64K}}},
	{Vendor: 0x0089, Device: 0x8896, Size: Size4MB, CommandSet: BSC, Name: "Intel 28F320B3 2Mx16 TopB  (4MB)", Regions: []Region{{63, Block64K}, {8, Block8K}}},
	{Vendor: 0x0089, Device: 0x88C5, Size: Size4MB, CommandSet: BSC, Name: "Intel 28F320C3 2Mx16 BotB  (4MB)", Regions: []Region{{8, Block8K}, {63, Block64K}}},
	{Vendor: 0x0089, Device: 0x88C4, Size: Size4MB, CommandSet: BSC, Name: "Intel 28F320C3 2Mx16 TopB  (4MB)", Regions: []Region{{63, Block64K}, {8, Block8K}}},
	{Vendor: 0x00B0, Device: 0x00E3, Size: Size4MB, CommandSet: BSC, Name: "Sharp 28F320BJE 2Mx16 BotB (4MB)", Regions: []Region{{8, Block8K}, {63, Block64K}}},
	{Vendor: 0x0089, Device: 0x8899, Size: Size8MB, CommandSet: BSC, Name: "Intel 28F640B3 4Mx16 BotB  (8MB)", Regions: []Region{{8, Block8K}, {127, Block64K}}},
	{Vendor: 0x0089, Device: 0x8898, Size: Size8MB, CommandSet: BSC, Name: "Intel 28F640B3 4Mx16 TopB  (8MB)", Regions: []Region{{127, Block64K}, {8, Block8K}}},
	{Vendor: 0x0089, Device: 0x88CD, Size: Size8MB, CommandSet: BSC, Name: "Intel 28F640C3 4Mx16 BotB  (8MB)", Regions: []Region{{8, Block8K}, {127, Block64K}}},
	{Vendor: 0x0089, Device: 0x88CC, Size: Size8MB, CommandSet: BSC, Name: "Intel 28F640C3 4Mx16 TopB  (8MB)", Regions: []Region{{127, Block64K}, {8, Block8K}}},

	// SCS
	{Vendor: 0x00B0, Device: 0x00D0, Size: Size2MB, CommandSet: SCS, Name: "Intel 28F160S3/5 1Mx16     (2MB)", Regions: []Region{{32, Block64K}}},
	{Vendor: 0x0089, Device: 0x0016, Size: Size4MB, CommandSet: SCS, Name: "Intel 28F320J3 2Mx16       (4MB)", Regions: []Region{{32, Block128K}}},
	{Vendor: 0x0089, Device: 0x0014, Size: Size4MB, CommandSet: SCS, Name: "Intel 28F320J5 2Mx16       (4MB)", Regions: []Region{{32, Block128K}}},
	{Vendor: 0x00B0, Device: 0x00D4, Size: Size4MB, CommandSet: SCS, Name: "Intel 28F320S3/5 2Mx16     (4MB)", Regions: []Region{{64, Block64K}}},
	{Vendor: 0x0089, Device: 0x0017, Size: Size8MB, CommandSet: SCS, Name: "Intel 28F640J3 4Mx16       (8MB)", Regions: []Region{{64, Block128K}}},
	{Vendor: 0x0089, Device: 0x0015, Size: Size8MB, CommandSet: SCS, Name: "Intel 28F640J5 4Mx16       (8MB)", Regions: []Region{{64, Block128K}}},
	{Vendor: 0x0089, Device: 0x0018, Size: Size16MB, CommandSet: SCS, Name: "Intel 28F128J3 8Mx16      (16MB)", Regions: []Region{{128, Block128K}}},

	// SST
	{Vendor: 0x00BF, Device: 0x234B, Size: Size2MB, CommandSet: SST, Name: "SST39VF1601 1Mx16 BotB     (2MB)", Regions: []Region{{8, Block8K}, {31, Block64K}}},
	{Vendor: 0x00BF, Device: 0x234A, Size: Size2MB, CommandSet: SST, Name: "SST39VF1602 1Mx16 TopB     (2MB)", Regions: []Region{{31, Block64K}, {8, Block8K}}},
	{Vendor: 0x00BF, Device: 0x235B, Size: Size4MB, CommandSet: SST, Name: "SST39VF3201 2Mx16 BotB     (4MB)", Regions: []Region{{8, Block8K}, {63, Block64K}}},
	{Vendor: 0x00BF, Device: 0x235A, Size: Size4MB, CommandSet: SST, Name: "SST39VF3202 2Mx16 TopB     (4MB)", Regions: []Region{{63, Block64K}, {8, Block8K}}},
	{Vendor: 0x00BF, Device: 0x236B, Size: Size8MB, CommandSet: SST, Name: "SST39VF6401 4Mx16 BotB     (8MB)", Regions: []Region{{8, Block8K}, {127, Block64K}}},
	{Vendor: 0x00BF, Device: 0x236A, Size: Size8MB, CommandSet: SST, Name: "SST39VF6402 4Mx16 TopB     (8MB)", Regions: []Region{{127, Block64K}, {8, Block8K}}},
	{Vendor: 0x00BF, Device: 0x236D, Size: Size8MB, CommandSet: SST, Name: "SST39VF6401B 4Mx16 BotB    (8MB)", Regions: []Region{{8, Block8K}, {127, Block64K}}},
	{Vendor: 0x00BF, Device: 0x236C, Size: Size8MB, CommandSet: SST, Name: "SST39VF6402B 4Mx16 TopB    (8MB)", Regions: []Region{{127, Block64K}, {8, Block8K}}},
	{Vendor: 0x017E, Device: 0x1A00, Size: Size4MB, CommandSet: AMD, Name: "Spansion S29GL032M BotB    (4MB)", Regions: []Region{{8, Block8K}, {63, Block64K}}},
	{Vendor: 0x017E, Device: 0x1A01, Size: Size4MB, CommandSet: AMD, Name: "Spansion S29GL032M TopB    (4MB)", Regions: []Region{{63, Block64K}, {8, Block8K}}},
	{Vendor: 0x017E, Device: 0x1000, Size: Size8MB, CommandSet: AMD, Name: "Spansion S29GL064M BotB    (8MB)", Regions: []Region{{8, Block8K}, {127, Block64K}}},
	{Vendor: 0x017E, Device: 0x1001, Size: Size8MB, CommandSet: AMD, Name: "Spansion S29GL064M TopB    (8MB)", Regions: []Region{{127, Block64K}, {8, Block8K}}},
	{Vendor: 0x017E, Device: 0x1301, Size: Size8MB, CommandSet: AMD, Name: "Spansion S29GL064M U       (8MB)", Regions: []Region{{128, Block64K}}},
	{Vendor: 0x017E, Device: 0x2101, Size: Size16MB, CommandSet: AMD, Name: "Spansion S29GL128P U      (16MB)", Regions: []Region{{128, Block128K}}},
	{Vendor: 0x017E, Device: 0x1200, Size: Size16MB, CommandSet: AMD, Name: "Spansion S29GL128M U      (16MB)", Regions: []Region{{128, Block128K}}},
	{Vendor: 0x017E, Device: 0x2201, Size: Size32MB, CommandSet: AMD, Name: "Spansion S29GL256P U      (32MB)", Regions: []Region{{256, Block128K}}},
	{Vendor: 0x017E, Device: 0x2301, Size: Size64MB, CommandSet: AMD, Name: "Spansion S29GL512P U      (64MB)", Regions: []Region{{512, Block128K}}},
	{Vendor: 0x017E, Device: 0x2801, Size: Size128MB, CommandSet: AMD, Name: "Spansion S29GL01GP U     (128MB)", Regions: []Region{{1024, Block128K}}},
	{Vendor: 0x0001, Device: 0x0214, Size: Size2MB, CommandSet: SPI, Name: "Spansion S25FL016A         (2MB) Serial", Regions: []Region{{32, Block64K}}},
	{Vendor: 0x0001, Device: 0x0215, Size: Size4MB, CommandSet: SPI, Name: "Spansion S25FL032A         (4MB) Serial", Regions: []Region{{64, Block64K}}},
	{Vendor: 0x0001, Device: 0x0216, Size: Size8MB, CommandSet: SPI, Name: "Spansion S25FL064A         (8MB) Serial", Regions: []Region{{128, Block64K}}},
	{Vendor: 0xDA7E, Device: 0x0A00, Size: Size4MB, CommandSet: AMD, Name: "Winbond W19B320AB BotB     (4MB)", Regions: []Region{{8, Block8K}, {63, Block64K}}},
	{Vendor: 0xDA7E, Device: 0x0A01, Size: Size4MB, CommandSet: AMD, Name: "Winbond W19B320AT TopB     (4MB)", Regions: []Region{{63, Block64K}, {8, Block8K}}},
	{Vendor: 0x00EF, Device: 0x3016, Size: Size4MB, CommandSet: SPI, Name: "Winbond W25X32             (4MB) Serial", Regions: []Region{{64, Block64K}}},
	{Vendor: 0x00EF, Device: 0x3017, Size: Size8MB, CommandSet: SPI, Name: "Winbond W25X64             (8MB) Serial", Regions: []Region{{128, Block64K}}},
	{Vendor: 0x007F, Device: 0x22F9, Size: Size4MB, CommandSet: AMD, Name: "EON EN29LV320 2Mx16 BotB   (4MB)", Regions: []Region{{8, Block8K}, {63, Block64K}}},
	{Vendor: 0x007F, Device: 0x22F6, Size: Size4MB, CommandSet: AMD, Name: "EON EN29LV320 2Mx16 TopB   (4MB)", Regions: []Region{{63, Block64K}, {8, Block8K}}},
	{Vendor: 0x007F, Device: 0x22C9, Size: Size8MB, CommandSet: AMD, Name: "EON EN29LV640 4Mx16 TopB   (8MB)", Regions: []Region{{127, Block64K}, {8, Block8K}}},
	{Vendor: 0x007F, Device: 0x22CB, Size: Size8MB, CommandSet: AMD, Name: "EON EN29LV640 4Mx16 BotB   (8MB)", Regions: []Region{{8, Block8K}, {127, Block64K}}},
	{Vendor: 0x001F, Device: 0x00C8, Size: Size4MB, CommandSet: AMD, Name: "AT49BV322A 2Mx16 BotB      (4MB)", Regions: []Region{{8, Block8K}, {63, Block64K}}},
	{Vendor: 0x001F, Device: 0x00C9, Size: Size4MB, CommandSet: AMD, Name: "AT49BV322A(T) 2Mx16 TopB   (4MB)", Regions: []Region{{63, Block64K}, {8, Block8K}}},
}
