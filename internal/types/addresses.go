package types

// Address represents a memory address on the bus, which can be read
// from or written to. Peripherals install one to take over a range.
type Address struct {
	// Read is a function that is called when the CPU reads from
	// the address.
	Read func(address uint16) uint8
	// Write is a function that is called when the CPU writes to
	// the address.
	Write func(address uint16, value uint8)
}

// HardwareAddress represents the address of a hardware register. The
// hardware registers are mapped onto the high page at 0xFF00 - 0xFF7F.
type HardwareAddress = uint16

const (
	// AddressSpace is the number of addressable bytes on the bus.
	AddressSpace = 0x10000

	// HighPage is the base of the page addressed by LDH and LD (C).
	HighPage HardwareAddress = 0xFF00

	// SB is the address of the SB hardware register. The SB
	// hardware register holds the byte to be sent over the
	// serial port.
	SB HardwareAddress = 0xFF01
	// SC is the address of the SC hardware register. The SC
	// hardware register is used to control the serial port.
	//
	//  Bit 7: Transfer Start Flag (1=Transfer in progress, or requested)
	//  Bit 0: Shift Clock (1=Internal Clock)
	SC HardwareAddress = 0xFF02
)
