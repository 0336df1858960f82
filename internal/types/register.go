package types

import "fmt"

// Register represents a GB Register which is used to hold an 8-bit value.
// The CPU has 8 registers: A, B, C, D, E, F, H, and L. The F register is
// reserved for the packed flags, but is stored here as a plain byte.
type Register = uint8

// Name identifies one of the eight 8-bit registers.
type Name uint8

const (
	A Name = iota
	B
	C
	D
	E
	F
	H
	L
)

var registerNames = [...]string{"A", "B", "C", "D", "E", "F", "H", "L"}

func (n Name) String() string {
	if int(n) < len(registerNames) {
		return registerNames[n]
	}
	return fmt.Sprintf("Name(%d)", uint8(n))
}

// PairName identifies one of the 16-bit register pairs.
type PairName uint8

const (
	BC PairName = iota
	DE
	HL
)

var pairNames = [...]string{"BC", "DE", "HL"}

func (p PairName) String() string {
	if int(p) < len(pairNames) {
		return pairNames[p]
	}
	return fmt.Sprintf("PairName(%d)", uint8(p))
}

// RegisterPair represents a pair of GB Registers which is used to hold a 16-bit
// value. It holds no storage of its own, reads and writes go straight through
// to the two registers it was built from.
type RegisterPair struct {
	High *Register
	Low  *Register
}

// Uint16 returns the value of the RegisterPair as an uint16.
func (r *RegisterPair) Uint16() uint16 {
	return uint16(*r.High)<<8 | uint16(*r.Low)
}

// SetUint16 sets the value of the RegisterPair to the given value.
func (r *RegisterPair) SetUint16(value uint16) {
	*r.High = uint8(value >> 8)
	*r.Low = uint8(value & 0xFF)
}

// Registers represents the GB CPU registers.
type Registers struct {
	A Register
	B Register
	C Register
	D Register
	E Register
	F Register
	H Register
	L Register

	BC *RegisterPair
	DE *RegisterPair
	HL *RegisterPair
}

// NewRegisters returns a zeroed register file with its pair views wired up.
func NewRegisters() *Registers {
	r := &Registers{}
	r.BC = &RegisterPair{&r.B, &r.C}
	r.DE = &RegisterPair{&r.D, &r.E}
	r.HL = &RegisterPair{&r.H, &r.L}
	return r
}

// Register returns a pointer to the named register.
func (r *Registers) Register(n Name) *Register {
	switch n {
	case A:
		return &r.A
	case B:
		return &r.B
	case C:
		return &r.C
	case D:
		return &r.D
	case E:
		return &r.E
	case F:
		return &r.F
	case H:
		return &r.H
	case L:
		return &r.L
	}
	panic(fmt.Sprintf("invalid register: %d", uint8(n)))
}

// Get returns the value of the named register.
func (r *Registers) Get(n Name) uint8 {
	return *r.Register(n)
}

// Set writes value to the named register.
func (r *Registers) Set(n Name, value uint8) {
	*r.Register(n) = value
}

// Pair returns the view for the given register pair.
func (r *Registers) Pair(p PairName) *RegisterPair {
	switch p {
	case BC:
		return r.BC
	case DE:
		return r.DE
	case HL:
		return r.HL
	}
	panic(fmt.Sprintf("invalid register pair: %d", uint8(p)))
}
