// Package ram provides a flat, zero-filled block of RAM.
package ram

// RAM represents a block of RAM. Every address is valid: addresses
// beyond the size of the block mirror back onto it.
type RAM struct {
	data []uint8
}

// NewRAM returns a new zero-filled RAM of the given size.
func NewRAM(size uint32) *RAM {
	if size == 0 {
		panic("ram: size must be non-zero")
	}
	return &RAM{
		data: make([]uint8, size),
	}
}

// Read returns the value at the given address.
func (r *RAM) Read(address uint16) uint8 {
	return r.data[uint32(address)%uint32(len(r.data))]
}

// Write writes the value to the given address.
func (r *RAM) Write(address uint16, value uint8) {
	r.data[uint32(address)%uint32(len(r.data))] = value
}

// Size returns the number of bytes held by the RAM.
func (r *RAM) Size() int {
	return len(r.data)
}

// Bytes returns the backing storage. It is not a copy.
func (r *RAM) Bytes() []uint8 {
	return r.data
}
