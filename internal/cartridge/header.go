// Package cartridge reads the header that Game Boy program images carry at
// 0x0100 - 0x014F.
package cartridge

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoHeader is returned when an image is too short to hold a header.
var ErrNoHeader = errors.New("image too short for a cartridge header")

type Flag uint8

const (
	FlagOnlyDMG Flag = iota
	FlagSupportsCGB
	FlagOnlyCGB
)

var (
	ramMAP = map[uint8]uint{
		0x00: 0,
		0x02: 8 * 1024,
		0x03: 32 * 1024,
		0x04: 128 * 1024,
		0x05: 64 * 1024,
	}
)

const (
	headerStart = 0x0100
	headerEnd   = 0x0150
)

// Header represents the header of a cartridge, located at the address space
// 0x0100-0x014F. The header contains information about the cartridge itself,
// and the hardware it expects to run on.
type Header struct {
	// 0x0134-0x0143 - Title of the game
	Title string

	// 0x0143 - CartridgeGBMode of the game. In older cartridges this byte was part
	// of the title, but the Colour Game Boy and later models interpret this byte
	// to determine if the cartridge is compatible with the Colour Game Boy.
	CartridgeGBMode Flag

	CartridgeType  uint8
	ROMSize        uint
	RAMSize        uint
	HeaderChecksum uint8
	GlobalChecksum uint16

	computedChecksum uint8
}

// ParseHeader parses the header of the given ROM image.
func ParseHeader(rom []byte) (*Header, error) {
	if len(rom) < headerEnd {
		return nil, fmt.Errorf("%d bytes: %w", len(rom), ErrNoHeader)
	}
	header := rom[headerStart:headerEnd]
	h := &Header{}

	// parse the mode of the cartridge and parse the header accordingly
	switch header[0x43] {
	case 0x80:
		h.CartridgeGBMode = FlagSupportsCGB
	case 0xC0:
		h.CartridgeGBMode = FlagOnlyCGB
	default:
		h.CartridgeGBMode = FlagOnlyDMG
	}

	// parse the title
	title := header[0x34:0x44]
	if h.CartridgeGBMode != FlagOnlyDMG {
		title = header[0x34:0x43]
	}
	h.Title = strings.TrimRight(string(title), "\x00")

	h.CartridgeType = header[0x47]

	// parse the ROM size (calculated by 32kB x (1 << n))
	h.ROMSize = (32 * 1024) * (1 << (header[0x48] & 0x0F))
	h.RAMSize = ramMAP[header[0x49]]
	h.HeaderChecksum = header[0x4D]

	// the global checksum is stored big-endian
	h.GlobalChecksum = uint16(header[0x4E])<<8 | uint16(header[0x4F])

	for _, b := range header[0x34:0x4D] {
		h.computedChecksum = h.computedChecksum - b - 1
	}

	return h, nil
}

// Valid reports whether the header checksum matches the header contents.
func (h *Header) Valid() bool {
	return h.computedChecksum == h.HeaderChecksum
}

func (h *Header) Hardware() string {
	switch h.CartridgeGBMode {
	case FlagOnlyDMG:
		return "DMG"
	case FlagSupportsCGB, FlagOnlyCGB:
		return "CGB"
	default:
		return "Unknown"
	}
}

func (h *Header) String() string {
	return fmt.Sprintf("%s Mode: %s | ROM Size: %dkB | RAM Size: %dkB", h.Title, h.Hardware(), h.ROMSize/1024, h.RAMSize/1024)
}
