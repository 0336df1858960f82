package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thelolagemann/lr35902/internal/types"
)

func TestOperand_String(t *testing.T) {
	tests := []struct {
		op   Operand
		want string
	}{
		{Reg(types.A), "A"},
		{Reg(types.L), "L"},
		{Pair(types.HL), "(HL)"},
		{Pair(types.BC), "(BC)"},
		{Imm(0x0F), "$0F"},
		{Addr(0xFF44), "($FF44)"},
		{high(0x01), "($FF01)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.op.String())
	}
}

func TestOperand_ReadWrite(t *testing.T) {
	assert := assert.New(t)
	c := New()
	c.HL.SetUint16(0xC000)

	c.write(Reg(types.E), 0x11)
	c.write(Pair(types.HL), 0x22)
	c.write(Addr(0xD000), 0x33)

	assert.Equal(uint8(0x11), c.E)
	assert.Equal(uint8(0x22), c.Bus().Read(0xC000))
	assert.Equal(uint8(0x33), c.Bus().Read(0xD000))

	assert.Equal(uint8(0x11), c.read(Reg(types.E)))
	assert.Equal(uint8(0x22), c.read(Pair(types.HL)))
	assert.Equal(uint8(0x33), c.read(Addr(0xD000)))
	assert.Equal(uint8(0x44), c.read(Imm(0x44)))

	assert.Panics(func() { c.write(Imm(0x00), 0x01) })
}
