package cpu

import (
	"github.com/thelolagemann/lr35902/internal/ram"
	"github.com/thelolagemann/lr35902/internal/types"
)

// Bus is the memory the CPU reads instructions from and reads and writes
// data through. It must be total over the 16-bit address space.
type Bus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// CPU represents the Gameboy CPU. It is responsible for executing instructions.
type CPU struct {
	// PC is the program counter, it points to the next instruction to be executed.
	PC uint16
	// SP is the stack pointer, set by LD SP, d16.
	SP uint16
	// Registers contains the 8-bit registers, as well as the 16-bit register pairs.
	*types.Registers
	// Flags holds the condition flags set by the last arithmetic or logic instruction.
	Flags Flags

	b Bus
}

// NewCPU creates a new CPU instance with the given Bus, with all registers,
// flags and the program counter at zero.
func NewCPU(b Bus) *CPU {
	return &CPU{
		Registers: types.NewRegisters(),
		b:         b,
	}
}

// New creates a CPU attached to a fresh, zero-filled 64kB RAM.
func New() *CPU {
	return NewCPU(ram.NewRAM(types.AddressSpace))
}

// Bus returns the bus the CPU is attached to.
func (c *CPU) Bus() Bus {
	return c.b
}

// Step fetches, decodes and executes a single instruction. An opcode with
// no instruction panics with an *UnknownOpcodeError.
func (c *CPU) Step() {
	pc := c.PC
	opcode := c.readInstruction()

	instruction := InstructionSet[opcode]
	if instruction.fn == nil {
		panic(&UnknownOpcodeError{Opcode: opcode, PC: pc})
	}
	instruction.fn(c)
}

// Peek returns the instruction at the program counter without executing it.
func (c *CPU) Peek() Instruction {
	return InstructionSet[c.b.Read(c.PC)]
}

// readInstruction reads the next instruction from memory.
func (c *CPU) readInstruction() uint8 {
	value := c.b.Read(c.PC)
	c.PC++
	return value
}

// readOperand reads the next operand from memory. The same as
// readInstruction, but kept apart for readability at the call site.
func (c *CPU) readOperand() uint8 {
	value := c.b.Read(c.PC)
	c.PC++
	return value
}

// readOperand16 reads a little-endian 16-bit operand from memory.
func (c *CPU) readOperand16() uint16 {
	low := c.readOperand()
	high := c.readOperand()
	return uint16(high)<<8 | uint16(low)
}

// readByte reads a byte from memory.
func (c *CPU) readByte(addr uint16) uint8 {
	return c.b.Read(addr)
}

// writeByte writes the given value to the given address.
func (c *CPU) writeByte(addr uint16, val uint8) {
	c.b.Write(addr, val)
}

var _ types.Stater = (*CPU)(nil)

// Load restores the registers, flags and program counter from s.
func (c *CPU) Load(s *types.State) {
	c.A = s.Read8()
	c.F = s.Read8()
	c.B = s.Read8()
	c.C = s.Read8()
	c.D = s.Read8()
	c.E = s.Read8()
	c.H = s.Read8()
	c.L = s.Read8()
	c.Flags = FlagsFromByte(s.Read8())
	c.PC = s.Read16()
	c.SP = s.Read16()
}

// Save writes the registers, flags and program counter to s.
func (c *CPU) Save(s *types.State) {
	s.Write8(c.A)
	s.Write8(c.F)
	s.Write8(c.B)
	s.Write8(c.C)
	s.Write8(c.D)
	s.Write8(c.E)
	s.Write8(c.H)
	s.Write8(c.L)
	s.Write8(c.Flags.Byte())
	s.Write16(c.PC)
	s.Write16(c.SP)
}

// StateSize is the number of bytes written by Save.
const StateSize = 14
