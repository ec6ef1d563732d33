// Package cartridge parses the ROM header and implements the two
// supported memory bank controllers (spec.md §4.2): ROM-only and
// MBC1. Cartridge types outside that set are an unimplemented-MBC
// error, fatal at load time (spec.md §7).
package cartridge

import (
	"fmt"

	"github.com/gogameboy/core/internal/types"
)

// MBC intercepts cartridge-region (0x0000-0x7FFF ROM, 0xA000-0xBFFF
// external RAM) reads and writes on behalf of the Bus.
type MBC interface {
	ReadROM(addr uint16) uint8
	WriteROM(addr uint16, value uint8)
	ReadRAM(addr uint16) uint8
	WriteRAM(addr uint16, value uint8)

	// RAM returns the backing external-RAM bytes, for battery-save
	// persistence. May be nil if the cartridge has none.
	RAM() []byte
	LoadRAM(data []byte)

	types.Stater
}

// Cartridge wraps a parsed Header and its MBC.
type Cartridge struct {
	Header Header
	MBC    MBC
}

// New parses rom's header and constructs the matching MBC. It returns
// an error for any cartridge type outside ROM-only/MBC1 — an
// unimplemented-MBC condition, fatal at load time per spec.md §7.
func New(rom []byte) (*Cartridge, error) {
	header, err := parseHeader(rom)
	if err != nil {
		return nil, err
	}

	var mbc MBC
	switch header.CartridgeType {
	case ROMOnly:
		mbc = newROMOnly(rom, header.RAMSize)
	case MBC1, MBC1RAM, MBC1RAMBatt:
		mbc = newMBC1(rom, header.RAMSize)
	default:
		return nil, fmt.Errorf("cartridge: unimplemented MBC type %#02x", header.CartridgeType)
	}

	return &Cartridge{Header: header, MBC: mbc}, nil
}
