package types

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestState(t *testing.T) {
	assert := assert.New(t)

	s := NewState()
	s.Write8(0x12)
	s.Write16(0xBEEF)
	s.Write32(0xDEADC0DE)
	s.WriteBool(true)
	s.WriteData([]byte{1, 2, 3})

	assert.Equal([]byte{0x12, 0xEF, 0xBE, 0xDE, 0xC0, 0xAD, 0xDE, 0x01, 1, 2, 3}, s.Bytes())

	r := StateFromBytes(s.Bytes())
	assert.Equal(11, r.Remaining())
	assert.Equal(uint8(0x12), r.Read8())
	assert.Equal(uint16(0xBEEF), r.Read16())
	assert.Equal(uint32(0xDEADC0DE), r.Read32())
	assert.True(r.ReadBool())
	data := make([]byte, 3)
	r.ReadData(data)
	assert.Equal([]byte{1, 2, 3}, data)
	assert.Equal(0, r.Remaining())
}

func TestState_File(t *testing.T) {
	s := NewState()
	s.Write16(0x0150)

	path := filepath.Join(t.TempDir(), "cpu.state")
	assert.NoError(t, s.SaveToFile(path))

	loaded, err := StateFromFile(path)
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x0150), loaded.Read16())

	_, err = StateFromFile(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
