package cpu

import (
	"fmt"

	"github.com/thelolagemann/lr35902/internal/types"
)

// Operand describes where an instruction reads or writes its value. It is
// a closed set: Reg, Pair, Imm and Addr.
type Operand interface {
	fmt.Stringer
	operand()
}

// Reg is a named 8-bit register.
type Reg types.Name

// Pair is a register pair. As an 8-bit operand it refers to the byte
// at the address held in the pair, e.g. (HL).
type Pair types.PairName

// Imm is an 8-bit literal taken from the instruction stream.
type Imm uint8

// Addr is a fixed 16-bit memory address.
type Addr uint16

func (Reg) operand()  {}
func (Pair) operand() {}
func (Imm) operand()  {}
func (Addr) operand() {}

func (r Reg) String() string  { return types.Name(r).String() }
func (p Pair) String() string { return "(" + types.PairName(p).String() + ")" }
func (i Imm) String() string  { return fmt.Sprintf("$%02X", uint8(i)) }
func (a Addr) String() string { return fmt.Sprintf("($%04X)", uint16(a)) }

// read returns the 8-bit value of op.
func (c *CPU) read(op Operand) uint8 {
	switch o := op.(type) {
	case Reg:
		return c.Get(types.Name(o))
	case Pair:
		return c.readByte(c.Pair(types.PairName(o)).Uint16())
	case Imm:
		return uint8(o)
	case Addr:
		return c.readByte(uint16(o))
	}
	panic(fmt.Sprintf("invalid operand: %v", op))
}

// write stores value into op. Immediates cannot be written to.
func (c *CPU) write(op Operand, value uint8) {
	switch o := op.(type) {
	case Reg:
		c.Set(types.Name(o), value)
	case Pair:
		c.writeByte(c.Pair(types.PairName(o)).Uint16(), value)
	case Addr:
		c.writeByte(uint16(o), value)
	default:
		panic(fmt.Sprintf("operand %v is not writable", op))
	}
}

// imm8 fetches an 8-bit immediate operand.
func (c *CPU) imm8() Imm {
	return Imm(c.readOperand())
}

// addr16 fetches a 16-bit immediate address operand.
func (c *CPU) addr16() Addr {
	return Addr(c.readOperand16())
}

// high returns the operand at offset in the high page (0xFF00 + offset).
func high(offset uint8) Addr {
	return Addr(types.HighPage + uint16(offset))
}

// operands is the register encoding shared by the LD r, r' and ALU blocks,
// indexed by the low three bits of the opcode.
var operands = [8]Operand{
	Reg(types.B),
	Reg(types.C),
	Reg(types.D),
	Reg(types.E),
	Reg(types.H),
	Reg(types.L),
	Pair(types.HL),
	Reg(types.A),
}
