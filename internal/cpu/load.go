package cpu

import (
	"fmt"

	"github.com/thelolagemann/lr35902/internal/types"
)

// load copies the value of src into dst. No flags are affected.
//
//	LD n, n
//	n = A, B, C, D, E, H, L, (BC), (DE), (HL), (a16), ($FF00+n), d8
func (c *CPU) load(dst, src Operand) {
	c.write(dst, c.read(src))
}

// loadRegister16 loads a 16-bit immediate value into the given Register pair.
//
//	LD nn, d16
//	nn = BC, DE, HL
//	d16 = 16-bit immediate value
func (c *CPU) loadRegister16(p Pair) {
	c.Pair(types.PairName(p)).SetUint16(c.readOperand16())
}

// loadHLStep performs the load and then moves HL by delta.
//
//	LD (HL+), A
//	LD (HL-), A
//	LD A, (HL+)
//	LD A, (HL-)
func (c *CPU) loadHLStep(dst, src Operand, delta uint16) {
	c.load(dst, src)
	c.HL.SetUint16(c.HL.Uint16() + delta)
}

func init() {
	for i, p := range []Pair{Pair(types.BC), Pair(types.DE), Pair(types.HL)} {
		p := p
		DefineInstruction(0x01+uint8(i)<<4, fmt.Sprintf("LD %s, d16", types.PairName(p)), func(c *CPU) {
			c.loadRegister16(p)
		})
	}
	DefineInstruction(0x31, "LD SP, d16", func(c *CPU) { c.SP = c.readOperand16() })

	// LD n, d8
	for i, dst := range operands {
		dst := dst
		name := fmt.Sprintf("LD %s, d8", dst)
		DefineInstruction(0x06+uint8(i)<<3, name, func(c *CPU) { c.load(dst, c.imm8()) })
	}

	// 0x40 - 0x7F - LD n, n (0x76 is HALT)
	for opcode := 0x40; opcode < 0x80; opcode++ {
		if opcode == 0x76 {
			continue
		}
		dst, src := operands[opcode>>3&0x7], operands[opcode&0x7]
		DefineInstruction(uint8(opcode), fmt.Sprintf("LD %s, %s", dst, src), func(c *CPU) { c.load(dst, src) })
	}

	a := Reg(types.A)
	bc, de, hl := Pair(types.BC), Pair(types.DE), Pair(types.HL)

	DefineInstruction(0x02, "LD (BC), A", func(c *CPU) { c.load(bc, a) })
	DefineInstruction(0x0A, "LD A, (BC)", func(c *CPU) { c.load(a, bc) })
	DefineInstruction(0x12, "LD (DE), A", func(c *CPU) { c.load(de, a) })
	DefineInstruction(0x1A, "LD A, (DE)", func(c *CPU) { c.load(a, de) })
	DefineInstruction(0x22, "LD (HL+), A", func(c *CPU) { c.loadHLStep(hl, a, 1) })
	DefineInstruction(0x2A, "LD A, (HL+)", func(c *CPU) { c.loadHLStep(a, hl, 1) })
	DefineInstruction(0x32, "LD (HL-), A", func(c *CPU) { c.loadHLStep(hl, a, 0xFFFF) })
	DefineInstruction(0x3A, "LD A, (HL-)", func(c *CPU) { c.loadHLStep(a, hl, 0xFFFF) })
	DefineInstruction(0xE0, "LDH (a8), A", func(c *CPU) { c.load(high(c.readOperand()), a) })
	DefineInstruction(0xF0, "LDH A, (a8)", func(c *CPU) { c.load(a, high(c.readOperand())) })
	DefineInstruction(0xE2, "LD (C), A", func(c *CPU) { c.load(high(c.C), a) })
	DefineInstruction(0xF2, "LD A, (C)", func(c *CPU) { c.load(a, high(c.C)) })
	DefineInstruction(0xEA, "LD (a16), A", func(c *CPU) { c.load(c.addr16(), a) })
	DefineInstruction(0xFA, "LD A, (a16)", func(c *CPU) { c.load(a, c.addr16()) })
}
