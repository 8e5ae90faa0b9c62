package ejtag

import (
	"fmt"
	"sort"
)

// Names of the built-in debug code modules.
const (
	ModuleReadWord        = "read-word"
	ModuleWriteWord       = "write-word"
	ModuleReadHalf        = "read-half"
	ModuleWriteHalf       = "write-half"
	ModuleReadByte        = "read-byte"
	ModuleWriteByte       = "write-byte"
	ModuleReturnFromDebug = "return-from-debug"
	ModuleReadDEPC        = "read-depc"
	ModuleWriteDEPC       = "write-depc"
	ModuleInitBCM5352     = "init-bcm5352"
)

// codeModules are MIPS32 snippets run from the debug vector. Each ends by
// branching back to the vector, which the executor treats as completion.
// Register $1 points at the virtual register pair, $2 holds the target
// address and $3 the data word.
var codeModules = map[string][]uint32{
	ModuleReadWord: {
		0x3C01FF20, // lui $1, 0xFF20
		0x34210000, // ori $1, 0x0000
		0x8C220000, // lw $2, 0($1)
		0x8C430000, // lw $3, 0($2)
		0xAC230004, // sw $3, 4($1)
		0x00000000,
		0x1000FFF9, // b vector
		0x00000000,
		0x00000000,
	},
	ModuleWriteWord: {
		0x3C01FF20,
		0x34210000,
		0x8C220000, // lw $2, 0($1)
		0x8C230004, // lw $3, 4($1)
		0xAC430000, // sw $3, 0($2)
		0x00000000,
		0x1000FFF9,
		0x00000000,
		0x00000000,
	},
	ModuleReadHalf: {
		0x3C01FF20,
		0x34210000,
		0x8C220000,
		0x94430000, // lhu $3, 0($2)
		0xAC230004,
		0x00000000,
		0x1000FFF9,
		0x00000000,
		0x00000000,
	},
	ModuleWriteHalf: {
		0x3C01FF20,
		0x34210000,
		0x8C220000,
		0x8C230004,
		0xA4430000, // sh $3, 0($2)
		0x00000000,
		0x1000FFF9,
		0x00000000,
		0x00000000,
	},
	// The byte read stores to offset 8, one word past the data register.
	ModuleReadByte: {
		0x3C01FF20,
		0x34210000,
		0x8C220000,
		0x90430000, // lbu $3, 0($2)
		0xAC230008,
		0x00000000,
		0x1000FFF9,
		0x00000000,
		0x00000000,
	},
	ModuleWriteByte: {
		0x3C01FF20,
		0x34210000,
		0x8C220000,
		0x8C230004,
		0xA0430000, // sb $3, 0($2)
		0x00000000,
		0x1000FFF9,
		0x00000000,
		0x00000000,
	},
	ModuleReturnFromDebug: {
		0x00000000,
		0x00000000,
		0x00000000,
		0x00000000,
		0x4200001F, // deret
		0x00000000,
		0x1000FFF9,
		0x00000000,
	},
	ModuleReadDEPC: {
		0x3C01FF20,
		0x34210000,
		0x4002C000, // mfc0 $2, DEPC
		0x00000000,
		0xAC220004, // sw $2, 4($1)
		0x00000000,
		0x1000FFF9,
		0x00000000,
	},
	ModuleWriteDEPC: {
		0x3C01FF20,
		0x34210000,
		0x8C220004, // lw $2, 4($1)
		0x4082C000, // mtc0 $2, DEPC
		0x00000000,
		0x00000000,
		0x1000FFF9,
		0x00000000,
	},
	ModuleInitBCM5352: {
		0x00000000,
		0x0000E021, // addu $28, $0, $0
		0x3C09FF40, // lui $9, 0xFF40
		0x3529000C, // ori $9, 0x000C
		0x40826000, // mtc0 $2, Status
		0x00000000,
		0x1000FFF9,
		0x00000000,
	},
}

// CodeModule returns a copy of the named code module.
func CodeModule(name string) ([]uint32, error) {
	m, ok := codeModules[name]
	if !ok {
		return nil, fmt.Errorf("ejtag: no code module %q", name)
	}
	return append([]uint32(nil), m...), nil
}

// ModuleNames lists the built-in code modules in sorted order.
func ModuleNames() []string {
	names := make([]string, 0, len(codeModules))
	for n := range codeModules {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
