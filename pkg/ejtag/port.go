package ejtag

// Port is the register-level view of the TAP that EJTAG needs: select an
// instruction and exchange 32 bits with the data register behind it.
// *tap.Controller satisfies it.
type Port interface {
	SetInstruction(instr uint32) error
	ReadWriteData(out uint32) (uint32, error)
}

// TAP adds the controls used during detection and shutdown.
type TAP interface {
	Port
	TestReset() error
	SetIRLength(n int) error
}

func readRegister(p Port, instr uint32) (uint32, error) {
	if err := p.SetInstruction(instr); err != nil {
		return 0, err
	}
	return p.ReadWriteData(0)
}

func writeRegister(p Port, instr, v uint32) error {
	if err := p.SetInstruction(instr); err != nil {
		return err
	}
	_, err := p.ReadWriteData(v)
	return err
}

// exchangeRegister selects instr and swaps v for the captured value.
func exchangeRegister(p Port, instr, v uint32) (uint32, error) {
	if err := p.SetInstruction(instr); err != nil {
		return 0, err
	}
	return p.ReadWriteData(v)
}
