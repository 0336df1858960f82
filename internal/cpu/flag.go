package cpu

import "fmt"

// Flag is the bit position of a condition flag in the packed flag byte.
type Flag = uint8

const (
	FlagZero      Flag = 7
	FlagSubtract  Flag = 6
	FlagHalfCarry Flag = 5
	FlagCarry     Flag = 4
)

// Flags holds the four condition flags.
//
//	Bit 7: Z - Zero
//	Bit 6: N - Subtract
//	Bit 5: H - Half Carry
//	Bit 4: C - Carry
type Flags struct {
	Zero      bool
	Subtract  bool
	HalfCarry bool
	Carry     bool
}

// FlagsFromByte unpacks b, ignoring the low nibble.
func FlagsFromByte(b uint8) Flags {
	return Flags{
		Zero:      b&(1<<FlagZero) != 0,
		Subtract:  b&(1<<FlagSubtract) != 0,
		HalfCarry: b&(1<<FlagHalfCarry) != 0,
		Carry:     b&(1<<FlagCarry) != 0,
	}
}

// Byte packs the flags. The low nibble is always zero.
func (f Flags) Byte() uint8 {
	var b uint8
	if f.Zero {
		b |= 1 << FlagZero
	}
	if f.Subtract {
		b |= 1 << FlagSubtract
	}
	if f.HalfCarry {
		b |= 1 << FlagHalfCarry
	}
	if f.Carry {
		b |= 1 << FlagCarry
	}
	return b
}

// Get returns the value of the given flag.
func (f *Flags) Get(flag Flag) bool {
	switch flag {
	case FlagZero:
		return f.Zero
	case FlagSubtract:
		return f.Subtract
	case FlagHalfCarry:
		return f.HalfCarry
	case FlagCarry:
		return f.Carry
	}
	panic(fmt.Sprintf("invalid flag: %d", flag))
}

// Set sets the given flag to value.
func (f *Flags) Set(flag Flag, value bool) {
	switch flag {
	case FlagZero:
		f.Zero = value
	case FlagSubtract:
		f.Subtract = value
	case FlagHalfCarry:
		f.HalfCarry = value
	case FlagCarry:
		f.Carry = value
	default:
		panic(fmt.Sprintf("invalid flag: %d", flag))
	}
}

// String renders the flags as in a debugger, e.g. "Z-H-".
func (f Flags) String() string {
	out := []byte("----")
	if f.Zero {
		out[0] = 'Z'
	}
	if f.Subtract {
		out[1] = 'N'
	}
	if f.HalfCarry {
		out[2] = 'H'
	}
	if f.Carry {
		out[3] = 'C'
	}
	return string(out)
}

// setFlags replaces all four flags at once.
func (c *CPU) setFlags(zero, subtract, halfCarry, carry bool) {
	c.Flags = Flags{
		Zero:      zero,
		Subtract:  subtract,
		HalfCarry: halfCarry,
		Carry:     carry,
	}
}
