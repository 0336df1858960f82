// Package serial provides the link port as a peripheral on the memory
// bus. Transfers complete as soon as they are requested.
package serial

import "github.com/thelolagemann/lr35902/internal/types"

// Controller is the serial controller. It owns the SB and SC hardware
// registers and exchanges SB with the attached device when a transfer is
// started with the internal clock.
type Controller struct {
	data    uint8 // SB
	control uint8 // SC

	InternalClock   bool // if true, this controller is the master.
	TransferRequest bool // if true, a transfer has been requested.

	AttachedDevice Device // the device that is attached to this controller.
	transfers      int
}

// NewController creates a new Controller attached to a nullDevice, which
// is the same as if nothing is plugged in. Use Controller.Attach to plug
// a device in.
func NewController() *Controller {
	return &Controller{
		AttachedDevice: nullDevice{},
	}
}

// Attach attaches a Device to the Controller.
func (c *Controller) Attach(d Device) {
	c.AttachedDevice = d
}

// Transfers returns the number of completed transfers.
func (c *Controller) Transfers() int {
	return c.transfers
}

// Read implements the bus interface for SB and SC.
func (c *Controller) Read(address uint16) uint8 {
	switch address {
	case types.SB:
		return c.data
	case types.SC:
		return c.control | 0x7E // bits 1-6 are always set
	}
	return 0xFF
}

// Write implements the bus interface for SB and SC.
func (c *Controller) Write(address uint16, value uint8) {
	switch address {
	case types.SB:
		c.data = value
	case types.SC:
		c.control = value & (types.Bit7 | types.Bit0)
		c.InternalClock = value&types.Bit0 == types.Bit0
		c.TransferRequest = value&types.Bit7 == types.Bit7

		// only the master drives the clock, so only it can complete a transfer
		if c.TransferRequest && c.InternalClock {
			c.data = c.AttachedDevice.Exchange(c.data)
			c.transfers++
			c.TransferRequest = false
			c.control &^= types.Bit7
		}
	}
}

var _ types.Stater = (*Controller)(nil)

// StateSize is the number of bytes written by Save.
const StateSize = 8

// Load restores SB, SC and the transfer count from s.
func (c *Controller) Load(s *types.State) {
	c.data = s.Read8()
	c.control = s.Read8()
	c.InternalClock = s.ReadBool()
	c.TransferRequest = s.ReadBool()
	c.transfers = int(s.Read32())
}

// Save writes SB, SC and the transfer count to s.
func (c *Controller) Save(s *types.State) {
	s.Write8(c.data)
	s.Write8(c.control)
	s.WriteBool(c.InternalClock)
	s.WriteBool(c.TransferRequest)
	s.Write32(uint32(c.transfers))
}
