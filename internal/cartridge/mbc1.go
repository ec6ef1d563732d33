package cartridge

import "github.com/gogameboy/core/internal/types"

// mbc1 implements cartridge types 0x01-0x03 (spec.md §4.2): a 5-bit
// ROM bank-low register, a 2-bit upper register shared between the
// ROM bank's high bits and the RAM bank depending on mode, a RAM
// enable latch, and a mode bit that decides whether the low ROM
// region (0x0000-0x3FFF) and the RAM bank follow the upper register.
type mbc1 struct {
	rom []byte
	ram []byte

	ramEnabled bool
	romBankLo  uint8 // 5 bits, as programmed (0 is valid here; rewritten to 1 only when forming the selector)
	upper      uint8 // 2 bits: ROM bank high bits in mode 1, or RAM bank
	mode       uint8 // 0 or 1
}

func newMBC1(rom []byte, ramSize int) *mbc1 {
	return &mbc1{rom: rom, ram: make([]byte, ramSize)}
}

// romPages returns the cartridge's ROM size in 16KiB pages.
func (m *mbc1) romPages() uint32 {
	return uint32(len(m.rom)) / 0x4000
}

// effectiveHighBank computes the bank selector used for 0x4000-0x7FFF:
// (upper<<5) | (lo==0 ? 1 : lo).
func (m *mbc1) effectiveHighBank() uint32 {
	lo := m.romBankLo
	if lo == 0 {
		lo = 1
	}
	return (uint32(m.upper) << 5) | uint32(lo)
}

// effectiveLowBank computes the page used for 0x0000-0x3FFF: bank 0 in
// mode 0, (upper<<5) in mode 1.
func (m *mbc1) effectiveLowBank() uint32 {
	if m.mode == 0 {
		return 0
	}
	return uint32(m.upper) << 5
}

func (m *mbc1) ReadROM(addr uint16) uint8 {
	var page uint32
	var offset uint32
	if addr < 0x4000 {
		page = m.effectiveLowBank()
		offset = uint32(addr)
	} else {
		page = m.effectiveHighBank()
		offset = uint32(addr - 0x4000)
	}
	if pages := m.romPages(); pages > 0 {
		page %= pages
	}
	idx := page*0x4000 + offset
	if int(idx) >= len(m.rom) {
		return 0xFF
	}
	return m.rom[idx]
}

func (m *mbc1) WriteROM(addr uint16, value uint8) {
	switch {
	case addr <= 0x1FFF:
		m.ramEnabled = value&0x0F == 0x0A
	case addr <= 0x3FFF:
		m.romBankLo = value & 0x1F
	case addr <= 0x5FFF:
		m.upper = value & 0x03
	default: // 0x6000-0x7FFF
		m.mode = value & 0x01
	}
}

// ramBank is `upper` in mode 1, else 0 (spec.md §4.2).
func (m *mbc1) ramBank() uint32 {
	if m.mode == 1 {
		return uint32(m.upper)
	}
	return 0
}

func (m *mbc1) ReadRAM(addr uint16) uint8 {
	if !m.ramEnabled {
		return 0xFF
	}
	idx := m.ramBank()*0x2000 + uint32(addr-0xA000)
	if int(idx) >= len(m.ram) {
		return 0xFF
	}
	return m.ram[idx]
}

func (m *mbc1) WriteRAM(addr uint16, value uint8) {
	if !m.ramEnabled {
		return
	}
	idx := m.ramBank()*0x2000 + uint32(addr-0xA000)
	if int(idx) < len(m.ram) {
		m.ram[idx] = value
	}
}

func (m *mbc1) RAM() []byte { return m.ram }

func (m *mbc1) LoadRAM(data []byte) { copy(m.ram, data) }

var _ types.Stater = (*mbc1)(nil)

func (m *mbc1) Save(s *types.State) {
	s.WriteBool(m.ramEnabled)
	s.Write8(m.romBankLo)
	s.Write8(m.upper)
	s.Write8(m.mode)
	s.WriteData(m.ram)
}

func (m *mbc1) Load(s *types.State) {
	m.ramEnabled = s.ReadBool()
	m.romBankLo = s.Read8()
	m.upper = s.Read8()
	m.mode = s.Read8()
	s.ReadData(m.ram)
}
