// Package machine drives the CPU: it owns the CPU, the memory bus and the
// peripherals attached to it, loads program images and steps the CPU.
package machine

import (
	"errors"
	"fmt"

	"github.com/cespare/xxhash"

	"github.com/thelolagemann/lr35902/internal/cartridge"
	"github.com/thelolagemann/lr35902/internal/cpu"
	"github.com/thelolagemann/lr35902/internal/mmu"
	"github.com/thelolagemann/lr35902/internal/serial"
	"github.com/thelolagemann/lr35902/internal/types"
	"github.com/thelolagemann/lr35902/pkg/log"
)

// ErrImageTooLarge is returned by Load when an image does not fit in the
// address space.
var ErrImageTooLarge = errors.New("image larger than address space")

// Machine represents the CPU and everything attached to its bus.
type Machine struct {
	CPU    *cpu.CPU
	MMU    *mmu.MMU
	Serial *serial.Controller

	log.Logger

	trace bool
	steps uint64
}

// New returns a Machine with zeroed registers and memory, and the serial
// port attached at SB - SC.
func New(opts ...Opt) *Machine {
	memBus := mmu.NewMMU()
	link := serial.NewController()
	memBus.Attach(types.SB, types.SC, link)

	m := &Machine{
		CPU:    cpu.NewCPU(memBus),
		MMU:    memBus,
		Serial: link,
		Logger: log.NewNullLogger(),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Load writes image onto the bus at origin and points the program counter
// at it.
func (m *Machine) Load(origin uint16, image []byte) error {
	if len(image) > types.AddressSpace {
		return fmt.Errorf("loading %d bytes: %w", len(image), ErrImageTooLarge)
	}
	m.MMU.Load(origin, image)
	m.CPU.PC = origin
	m.Infof("loaded %d bytes at %04X", len(image), origin)

	// only images loaded at the bottom of memory are laid out like a cartridge
	if origin == 0 {
		if h, err := cartridge.ParseHeader(image); err == nil && h.Valid() {
			m.Infof("cartridge header: %s", h)
		}
	}
	return nil
}

// Step executes a single instruction. An unknown opcode stops the machine
// and is returned as a *cpu.UnknownOpcodeError.
func (m *Machine) Step() (err error) {
	defer func() {
		if r := recover(); r != nil {
			unknown, ok := r.(*cpu.UnknownOpcodeError)
			if !ok {
				panic(r)
			}
			m.Errorf("%v after %d instructions", unknown, m.steps)
			err = unknown
		}
	}()

	if m.trace {
		m.traceInstruction()
	}
	m.CPU.Step()
	m.steps++
	return nil
}

// Run executes up to limit instructions, stopping early on error. It
// returns the number of instructions executed.
func (m *Machine) Run(limit int) (int, error) {
	for i := 0; i < limit; i++ {
		if err := m.Step(); err != nil {
			return i, err
		}
	}
	return limit, nil
}

// Steps returns the number of instructions executed since New.
func (m *Machine) Steps() uint64 {
	return m.steps
}

func (m *Machine) traceInstruction() {
	c := m.CPU
	m.Debugf("%04X %-14s A:%02X F:%s B:%02X C:%02X D:%02X E:%02X H:%02X L:%02X SP:%04X",
		c.PC, c.Peek().Name(), c.A, c.Flags, c.B, c.C, c.D, c.E, c.H, c.L, c.SP)
}

// Save returns a snapshot of the CPU and the serial controller, followed by
// the full memory.
func (m *Machine) Save() *types.State {
	s := types.NewState()
	m.CPU.Save(s)
	m.Serial.Save(s)
	s.WriteData(m.MMU.RAM().Bytes())
	return s
}

// Restore loads a snapshot produced by Save.
func (m *Machine) Restore(s *types.State) error {
	if s.Remaining() < cpu.StateSize+serial.StateSize+types.AddressSpace {
		return types.ErrStateShort
	}
	m.CPU.Load(s)
	m.Serial.Load(s)
	s.ReadData(m.MMU.RAM().Bytes())
	return nil
}

// Digest returns a 64-bit hash of the snapshot returned by Save, for
// comparing runs.
func (m *Machine) Digest() uint64 {
	return xxhash.Sum64(m.Save().Bytes())
}
