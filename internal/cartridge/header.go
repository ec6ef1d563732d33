package cartridge

import "fmt"

// Type is the cartridge-type byte at 0x0147.
type Type uint8

const (
	ROMOnly     Type = 0x00
	MBC1        Type = 0x01
	MBC1RAM     Type = 0x02
	MBC1RAMBatt Type = 0x03
)

// ramSizes maps the RAM-size code at 0x0149 to a byte count.
var ramSizes = map[uint8]int{
	0x00: 0,
	0x02: 8 * 1024,
	0x03: 32 * 1024,
	0x04: 128 * 1024,
	0x05: 64 * 1024,
}

// Header is the parsed cartridge header, bytes 0x0100-0x014F of the
// ROM image (spec.md §6).
type Header struct {
	Title         string
	CartridgeType Type
	ROMSize       int
	RAMSize       int
	Checksum      uint8
}

// parseHeader reads the header out of a full ROM image. rom must be at
// least 0x150 bytes long.
func parseHeader(rom []byte) (Header, error) {
	if len(rom) < 0x150 {
		return Header{}, fmt.Errorf("cartridge: ROM too short for header (%d bytes)", len(rom))
	}

	h := Header{
		Title:         string(trimTitle(rom[0x134:0x144])),
		CartridgeType: Type(rom[0x147]),
		ROMSize:       (32 * 1024) << rom[0x148],
		RAMSize:       ramSizes[rom[0x149]],
		Checksum:      rom[0x14D],
	}
	return h, nil
}

// trimTitle cuts the title at the first NUL byte; unused trailing
// bytes in the title field are typically zero-padded.
func trimTitle(b []byte) []byte {
	for i, c := range b {
		if c == 0 {
			return b[:i]
		}
	}
	return b
}

func (h Header) String() string {
	return fmt.Sprintf("%s (type=%#02x rom=%dKiB ram=%dKiB)", h.Title, h.CartridgeType, h.ROMSize/1024, h.RAMSize/1024)
}
