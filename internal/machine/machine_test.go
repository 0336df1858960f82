package machine

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thelolagemann/lr35902/internal/cpu"
	"github.com/thelolagemann/lr35902/internal/types"
	"github.com/thelolagemann/lr35902/pkg/log"
)

// hello sends 'H' over the serial port, stages 'i' in SB and then hits an
// unknown opcode.
var hello = []byte{
	0x3E, 'H',  // LD A, 'H'
	0xE0, 0x01, // LDH (SB), A
	0x3E, 0x81, // LD A, $81
	0xE0, 0x02, // LDH (SC), A
	0x0E, 0x01, // LD C, $01
	0x3E, 'i',  // LD A, 'i'
	0xE2,       // LD (C), A
	0xFF,       // unknown
}

func TestMachine_Load(t *testing.T) {
	assert := assert.New(t)
	m := New()

	assert.NoError(m.Load(0x0100, []byte{0x01, 0x34, 0x12}))
	assert.Equal(uint16(0x0100), m.CPU.PC)
	assert.Equal(uint8(0x12), m.MMU.Read(0x0102))

	err := m.Load(0, make([]byte, types.AddressSpace+1))
	assert.ErrorIs(err, ErrImageTooLarge)
}

func TestMachine_LoadCartridge(t *testing.T) {
	image := make([]byte, 0x8000)
	copy(image[0x134:], "LR35902")
	var x uint8
	for _, b := range image[0x134:0x14D] {
		x = x - b - 1
	}
	image[0x14D] = x

	var buf bytes.Buffer
	m := New(WithLogger(log.NewDebug(&buf)))
	assert.NoError(t, m.Load(0, image))
	assert.Contains(t, buf.String(), "cartridge header: LR35902 Mode: DMG")

	buf.Reset()
	image[0x14D]++
	assert.NoError(t, m.Load(0, image))
	assert.NotContains(t, buf.String(), "cartridge header")
}

func TestMachine_Run(t *testing.T) {
	assert := assert.New(t)

	var out bytes.Buffer
	m := New(WithSerial(&out))
	assert.NoError(m.Load(0, hello))

	n, err := m.Run(100)
	assert.Equal(7, n)
	assert.Equal(uint64(7), m.Steps())

	var unknown *cpu.UnknownOpcodeError
	if assert.True(errors.As(err, &unknown)) {
		assert.Equal(uint8(0xFF), unknown.Opcode)
		assert.Equal(uint16(len(hello)-1), unknown.PC)
	}

	// only the first byte was sent, the second was written to SB
	assert.Equal("H", out.String())
	assert.Equal(uint8('i'), m.MMU.Read(types.SB))
	assert.Equal(1, m.Serial.Transfers())
}

func TestMachine_RunLimit(t *testing.T) {
	m := New()
	n, err := m.Run(10)

	assert.NoError(t, err)
	assert.Equal(t, 10, n)
	assert.Equal(t, uint16(10), m.CPU.PC)
}

type panicker struct{}

func (panicker) Read(uint16) uint8 { panic("bus fault") }
func (panicker) Write(uint16, uint8) {}

func TestMachine_StepRepanics(t *testing.T) {
	m := New(WithPeripheral(0x0000, 0x0000, panicker{}))
	assert.PanicsWithValue(t, "bus fault", func() { _ = m.Step() })
}

func TestMachine_Trace(t *testing.T) {
	var buf bytes.Buffer
	m := New(WithTrace(), WithLogger(log.NewDebug(&buf)))
	assert.NoError(t, m.Load(0, []byte{0x3E, 0x0F, 0xE6, 0xF0}))

	_, err := m.Run(2)
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "0000 LD A, d8")
	assert.Contains(t, buf.String(), "0002 AND d8")
	assert.Contains(t, buf.String(), "A:0F F:----")
}

func TestMachine_SaveRestore(t *testing.T) {
	assert := assert.New(t)

	m := New()
	assert.NoError(m.Load(0, []byte{0x21, 0x00, 0xC0, 0x36, 0x77, 0x3E, 0xFF, 0xC6, 0x01}))
	_, err := m.Run(4)
	assert.NoError(err)

	s := m.Save()
	digest := m.Digest()

	other := New()
	assert.NotEqual(digest, other.Digest())
	assert.NoError(other.Restore(types.StateFromBytes(s.Bytes())))

	assert.Equal(digest, other.Digest())
	assert.Equal(uint8(0x77), other.MMU.Read(0xC000))
	assert.Equal(cpu.Flags{Zero: true, HalfCarry: true, Carry: true}, other.CPU.Flags)
	assert.Equal(uint16(9), other.CPU.PC)

	assert.ErrorIs(other.Restore(types.StateFromBytes(s.Bytes()[:100])), types.ErrStateShort)
}

func TestMachine_SaveRestoreSerial(t *testing.T) {
	assert := assert.New(t)

	m := New()
	assert.NoError(m.Load(0, []byte{0x3E, 0x42, 0xE0, 0x01, 0x31, 0xFE, 0xFF}))
	_, err := m.Run(3)
	assert.NoError(err)
	assert.Equal(uint8(0x42), m.MMU.Read(types.SB))
	assert.Equal(uint16(0xFFFE), m.CPU.SP)

	other := New()
	assert.NoError(other.Load(0, []byte{0x3E, 0x42, 0xE0, 0x01, 0x31, 0xFE, 0xFF}))
	other.CPU.A, other.CPU.PC, other.CPU.SP = 0x42, 7, 0xFFFE
	assert.NotEqual(m.Digest(), other.Digest(), "SB should be part of the digest")

	assert.NoError(other.Restore(m.Save()))
	assert.Equal(uint8(0x42), other.MMU.Read(types.SB))
	assert.Equal(uint16(0xFFFE), other.CPU.SP)
	assert.Equal(m.Digest(), other.Digest())
}

func TestMachine_Digest(t *testing.T) {
	a, b := New(), New()
	assert.Equal(t, a.Digest(), b.Digest())

	b.CPU.A = 1
	assert.NotEqual(t, a.Digest(), b.Digest())
}
