package cartridge

import "github.com/gogameboy/core/internal/types"

// romOnly is the MBC for cartridge type 0x00: a single fixed 32KiB ROM
// image with no banking and, optionally, unbanked external RAM.
type romOnly struct {
	rom []byte
	ram []byte
}

func newROMOnly(rom []byte, ramSize int) *romOnly {
	return &romOnly{rom: rom, ram: make([]byte, ramSize)}
}

func (m *romOnly) ReadROM(addr uint16) uint8 {
	if int(addr) >= len(m.rom) {
		return 0xFF
	}
	return m.rom[addr]
}

// WriteROM is a no-op: ROM-only cartridges have no bank-select
// registers to write.
func (m *romOnly) WriteROM(addr uint16, value uint8) {}

func (m *romOnly) ReadRAM(addr uint16) uint8 {
	off := addr - 0xA000
	if int(off) >= len(m.ram) {
		return 0xFF
	}
	return m.ram[off]
}

func (m *romOnly) WriteRAM(addr uint16, value uint8) {
	off := addr - 0xA000
	if int(off) < len(m.ram) {
		m.ram[off] = value
	}
}

func (m *romOnly) RAM() []byte { return m.ram }

func (m *romOnly) LoadRAM(data []byte) { copy(m.ram, data) }

var _ types.Stater = (*romOnly)(nil)

func (m *romOnly) Save(s *types.State) {
	s.WriteData(m.ram)
}

func (m *romOnly) Load(s *types.State) {
	s.ReadData(m.ram)
}
