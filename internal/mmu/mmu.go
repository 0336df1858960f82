// Package mmu provides the memory bus the CPU reads and writes through.
// The MMU is unaware of the CPU, it owns a flat 64kB RAM and lets
// peripherals take over address ranges via the IOBus interface.
package mmu

import (
	"fmt"

	"github.com/thelolagemann/lr35902/internal/ram"
	"github.com/thelolagemann/lr35902/internal/types"
)

// IOBus is the interface that the MMU uses to communicate with the other
// components.
type IOBus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// MMU is the memory management unit. It handles all memory reads and
// writes to the 64kB address space, and delegates to attached
// peripherals through the IOBus interface.
type MMU struct {
	// 64kB address space, nil entries fall through to mem
	raw [types.AddressSpace]*types.Address

	mem *ram.RAM
}

// NewMMU returns a new MMU backed by zero-filled RAM.
func NewMMU() *MMU {
	return &MMU{
		mem: ram.NewRAM(types.AddressSpace),
	}
}

// Attach maps dev over the inclusive range start - end. Attaching over
// an address that already belongs to a peripheral panics.
func (m *MMU) Attach(start, end uint16, dev IOBus) {
	if end < start {
		panic(fmt.Sprintf("invalid range %04X - %04X", start, end))
	}
	address := &types.Address{Read: dev.Read, Write: dev.Write}
	for i := uint32(start); i <= uint32(end); i++ {
		if m.raw[i] != nil {
			panic(fmt.Sprintf("address %04X has already been reserved", i))
		}
	}
	for i := uint32(start); i <= uint32(end); i++ {
		m.raw[i] = address
	}
}

// Attached reports whether address is served by a peripheral.
func (m *MMU) Attached(address uint16) bool {
	return m.raw[address] != nil
}

// Read returns the value at the given address.
func (m *MMU) Read(address uint16) uint8 {
	if a := m.raw[address]; a != nil {
		return a.Read(address)
	}
	return m.mem.Read(address)
}

// Write writes the value to the given address.
func (m *MMU) Write(address uint16, value uint8) {
	if a := m.raw[address]; a != nil {
		a.Write(address, value)
		return
	}
	m.mem.Write(address, value)
}

// Load copies data onto the bus starting at origin, wrapping past
// 0xFFFF. Bytes landing on a peripheral are written to it.
func (m *MMU) Load(origin uint16, data []byte) {
	for i, b := range data {
		m.Write(origin+uint16(i), b)
	}
}

// RAM returns the backing memory, bypassing any attached peripherals.
func (m *MMU) RAM() *ram.RAM {
	return m.mem
}
