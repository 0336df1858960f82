package cpu

import "fmt"

// UnknownOpcodeError is raised by Step when the fetched opcode has no
// instruction. PC is the address the opcode was fetched from.
type UnknownOpcodeError struct {
	Opcode uint8
	PC     uint16
}

func (e *UnknownOpcodeError) Error() string {
	return fmt.Sprintf("unknown opcode 0x%02X at 0x%04X", e.Opcode, e.PC)
}
