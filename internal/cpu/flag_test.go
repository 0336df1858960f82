package cpu

import "testing"

func TestFlags_Byte(t *testing.T) {
	for i := 0; i < 16; i++ {
		f := Flags{
			Zero:      i&8 != 0,
			Subtract:  i&4 != 0,
			HalfCarry: i&2 != 0,
			Carry:     i&1 != 0,
		}
		b := f.Byte()
		if b != uint8(i)<<4 {
			t.Errorf("expected %08b, got %08b", uint8(i)<<4, b)
		}
		if b&0x0F != 0 {
			t.Errorf("expected low nibble to be clear, got %08b", b)
		}
		if got := FlagsFromByte(b); got != f {
			t.Errorf("round trip of %+v gave %+v", f, got)
		}
	}
}

func TestFlagsFromByte(t *testing.T) {
	for b := 0; b < 256; b++ {
		f := FlagsFromByte(uint8(b))
		if f.Byte() != uint8(b)&0xF0 {
			t.Errorf("expected %08b, got %08b", uint8(b)&0xF0, f.Byte())
		}
	}
}

func TestFlags_GetSet(t *testing.T) {
	var f Flags
	for i := FlagCarry; i <= FlagZero; i++ {
		f.Set(i, true)
		if !f.Get(i) {
			t.Errorf("expected flag %d to be set, got unset", i)
		}
		if f.Byte()&(1<<i) == 0 {
			t.Errorf("expected bit %d to be set in %08b", i, f.Byte())
		}
	}
	for i := FlagCarry; i <= FlagZero; i++ {
		f.Set(i, false)
		if f.Get(i) {
			t.Errorf("expected flag %d to be unset, got set", i)
		}
	}
	if f != (Flags{}) {
		t.Errorf("expected all flags clear, got %v", f)
	}
}

func TestFlags_String(t *testing.T) {
	tests := []struct {
		f    Flags
		want string
	}{
		{Flags{}, "----"},
		{Flags{Zero: true, HalfCarry: true}, "Z-H-"},
		{Flags{Subtract: true, Carry: true}, "-N-C"},
		{FlagsFromByte(0xF0), "ZNHC"},
	}
	for _, tt := range tests {
		if got := tt.f.String(); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
	}
}
