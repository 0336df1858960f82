package cpu

import "fmt"

// add n (plus the carry flag, when withCarry is set) to the A Register.
//
//	ADD A, n
//	ADC A, n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) add(n uint8, withCarry bool) {
	a, carry := c.A, c.carryIn(withCarry)
	sum := uint16(a) + uint16(n) + uint16(carry)

	c.A = uint8(sum)
	c.setFlags(c.A == 0, false, (a&0xF)+(n&0xF)+carry > 0xF, sum > 0xFF)
}

// sub subtracts n (plus the carry flag, when withCarry is set) from the A
// Register.
//
//	SUB n
//	SBC A, n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) sub(n uint8, withCarry bool) {
	c.A = c.subtract(n, c.carryIn(withCarry))
}

// compare compares n to the A Register. A is left untouched.
//
//	CP n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if A == n.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if A < n.
func (c *CPU) compare(n uint8) {
	c.subtract(n, 0)
}

// subtract computes A - n - carry and sets the flags accordingly.
func (c *CPU) subtract(n, carry uint8) uint8 {
	a := c.A
	result := a - n - carry
	c.setFlags(
		result == 0,
		true,
		uint16(a&0xF) < uint16(n&0xF)+uint16(carry),
		uint16(a) < uint16(n)+uint16(carry),
	)
	return result
}

// and performs a bitwise AND operation on n and the A Register.
//
//	AND n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set.
//	C - Reset.
func (c *CPU) and(n uint8) {
	c.A &= n
	c.setFlags(c.A == 0, false, true, false)
}

// or performs a bitwise OR operation on n and the A Register.
//
//	OR n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) or(n uint8) {
	c.A |= n
	c.setFlags(c.A == 0, false, false, false)
}

// xor performs a bitwise XOR operation on n and the A Register.
//
//	XOR n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) xor(n uint8) {
	c.A ^= n
	c.setFlags(c.A == 0, false, false, false)
}

// carryIn returns the carry flag as 0 or 1 for the carrying variants.
func (c *CPU) carryIn(withCarry bool) uint8 {
	if withCarry && c.Flags.Carry {
		return 1
	}
	return 0
}

// aluOp is one of the eight accumulator operations, in opcode order.
type aluOp struct {
	mnemonic string
	fn       func(c *CPU, n uint8)
}

var aluOps = [8]aluOp{
	{"ADD A,", func(c *CPU, n uint8) { c.add(n, false) }},
	{"ADC A,", func(c *CPU, n uint8) { c.add(n, true) }},
	{"SUB", func(c *CPU, n uint8) { c.sub(n, false) }},
	{"SBC A,", func(c *CPU, n uint8) { c.sub(n, true) }},
	{"AND", (*CPU).and},
	{"XOR", (*CPU).xor},
	{"OR", (*CPU).or},
	{"CP", (*CPU).compare},
}

func init() {
	for i, op := range aluOps {
		op := op
		// 0x80 - 0xBF - OP n
		for j, src := range operands {
			src := src
			DefineInstruction(0x80+uint8(i)<<3+uint8(j), fmt.Sprintf("%s %s", op.mnemonic, src), func(c *CPU) {
				op.fn(c, c.read(src))
			})
		}
		// 0xC6, 0xCE, ... 0xFE - OP d8
		DefineInstruction(0xC6+uint8(i)<<3, op.mnemonic+" d8", func(c *CPU) {
			op.fn(c, c.readOperand())
		})
	}
}
