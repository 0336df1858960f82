package machine

import (
	"io"

	"github.com/thelolagemann/lr35902/internal/mmu"
	"github.com/thelolagemann/lr35902/internal/serial"
	"github.com/thelolagemann/lr35902/pkg/log"
)

// Opt is a function that modifies a Machine instance.
type Opt func(m *Machine)

// WithLogger sets the logger used by the Machine.
func WithLogger(l log.Logger) Opt {
	return func(m *Machine) {
		m.Logger = l
	}
}

// WithTrace logs every instruction at debug level before it executes.
func WithTrace() Opt {
	return func(m *Machine) {
		m.trace = true
	}
}

// WithSerial copies every byte sent over the serial port to w.
func WithSerial(w io.Writer) Opt {
	return func(m *Machine) {
		m.Serial.Attach(&serial.Writer{W: w})
	}
}

// WithPeripheral attaches dev to the inclusive range start - end.
func WithPeripheral(start, end uint16, dev mmu.IOBus) Opt {
	return func(m *Machine) {
		m.MMU.Attach(start, end, dev)
	}
}
