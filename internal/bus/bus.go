// Package bus implements the Game Boy's 16-bit address space: memory
// region decoding, echo-RAM mirroring, boot ROM overlay, OAM DMA, and
// IO register dispatch to the timer, interrupt controller, and PPU.
// Bus imports ppu, timer, interrupts and cartridge; none of those
// packages import bus back (spec.md §9 Design Notes) — the CPU and
// FrameRunner hold a *Bus and drive it, rather than the PPU holding a
// bus reference.
package bus

import (
	"github.com/gogameboy/core/internal/cartridge"
	"github.com/gogameboy/core/internal/interrupts"
	"github.com/gogameboy/core/internal/ppu"
	"github.com/gogameboy/core/internal/timer"
	"github.com/gogameboy/core/internal/types"
	"github.com/gogameboy/core/pkg/log"
)

// Bus owns every byte of Game Boy address space that isn't cartridge
// ROM/RAM, plus handles to the peripherals it dispatches IO registers
// to.
type Bus struct {
	cart *cartridge.Cartridge

	vram [0x2000]byte
	wram [0x2000]byte
	oam  [0xA0]byte
	hram [0x7F]byte

	ppu  *ppu.PPU
	tim  *timer.Controller
	irq  *interrupts.Controller

	boot *bootROM
	log  log.Logger

	joyp uint8 // joypad register, not connected to any input source (spec.md Non-goals)

	vramBlocked bool
	oamBlocked  bool

	dma *dmaState
}

// New constructs a Bus over cart, wired to ppu/timer/irq for register
// dispatch. boot may be nil to skip the boot ROM overlay.
func New(cart *cartridge.Cartridge, p *ppu.PPU, tim *timer.Controller, irq *interrupts.Controller, boot []byte) *Bus {
	b := &Bus{
		cart: cart,
		ppu:  p,
		tim:  tim,
		irq:  irq,
		joyp: 0xCF,
		log:  log.Null(),
	}
	if boot != nil {
		b.boot = newBootROM(boot)
	}
	return b
}

// SetLogger injects the Logger used for the boot-overlay-teardown
// diagnostic (spec.md §7). Defaults to a no-op logger.
func (b *Bus) SetLogger(l log.Logger) { b.log = l }

// SetVRAMAccessible and SetOAMAccessible gate CPU-path reads/writes to
// those regions during Drawing/OAM-scan (spec.md §4.5). The PPU's own
// RenderScanline reads bypass this gate entirely, since it is called
// by the FrameRunner directly on b.VRAM()/b.OAM(), not through Read.
func (b *Bus) SetVRAMAccessible(ok bool) { b.vramBlocked = !ok }
func (b *Bus) SetOAMAccessible(ok bool)  { b.oamBlocked = !ok }

// VRAM and OAM expose the backing storage for the FrameRunner to pass
// into ppu.RenderScanline.
func (b *Bus) VRAM() []byte { return b.vram[:] }
func (b *Bus) OAM() []byte  { return b.oam[:] }

// PPU, Timer, Interrupts, Cartridge expose the peripherals the
// FrameRunner drives directly (mode transitions, cycle ticking,
// interrupt dispatch, save state).
func (b *Bus) PPU() *ppu.PPU                       { return b.ppu }
func (b *Bus) Timer() *timer.Controller            { return b.tim }
func (b *Bus) Interrupts() *interrupts.Controller  { return b.irq }
func (b *Bus) Cartridge() *cartridge.Cartridge     { return b.cart }

// Read dispatches a CPU-visible byte read across the full address
// space (spec.md §4.1 memory map).
func (b *Bus) Read(addr uint16) uint8 {
	if b.boot != nil && b.boot.active && addr < 0x0100 {
		return b.boot.data[addr]
	}

	switch {
	case addr <= types.ROMBankNEnd:
		return b.cart.MBC.ReadROM(addr)
	case addr <= types.VRAMEnd:
		if b.vramBlocked {
			return 0xFF
		}
		return b.vram[addr-types.VRAMStart]
	case addr <= types.ExtRAMEnd:
		return b.cart.MBC.ReadRAM(addr)
	case addr <= types.WRAMEnd:
		return b.wram[addr-types.WRAMStart]
	case addr <= types.EchoEnd:
		return b.wram[addr-types.EchoStart]
	case addr <= types.OAMEnd:
		if b.oamBlocked {
			return 0xFF
		}
		return b.oam[addr-types.OAMStart]
	case addr <= types.UnusedEnd:
		return 0xFF
	case addr <= types.IOEnd:
		return b.readIO(addr)
	case addr <= types.HRAMEnd:
		return b.hram[addr-types.HRAMStart]
	default: // types.IE
		return b.irq.ReadIE()
	}
}

// Write dispatches a CPU-visible byte write.
func (b *Bus) Write(addr uint16, v uint8) {
	switch {
	case addr <= types.ROMBankNEnd:
		b.cart.MBC.WriteROM(addr, v)
	case addr <= types.VRAMEnd:
		if !b.vramBlocked {
			b.vram[addr-types.VRAMStart] = v
		}
	case addr <= types.ExtRAMEnd:
		b.cart.MBC.WriteRAM(addr, v)
	case addr <= types.WRAMEnd:
		b.wram[addr-types.WRAMStart] = v
	case addr <= types.EchoEnd:
		b.wram[addr-types.EchoStart] = v
	case addr <= types.OAMEnd:
		if !b.oamBlocked {
			b.oam[addr-types.OAMStart] = v
		}
	case addr <= types.UnusedEnd:
		// writes silently dropped (spec.md §4.1)
	case addr <= types.IOEnd:
		b.writeIO(addr, v)
	case addr <= types.HRAMEnd:
		b.hram[addr-types.HRAMStart] = v
	default: // types.IE
		b.irq.WriteIE(v)
	}
}

// ReadWord/WriteWord are little-endian 16-bit helpers used by the CPU
// for SP/PC and 16-bit loads.
func (b *Bus) ReadWord(addr uint16) uint16 {
	lo := b.Read(addr)
	hi := b.Read(addr + 1)
	return uint16(lo) | uint16(hi)<<8
}

func (b *Bus) WriteWord(addr uint16, v uint16) {
	b.Write(addr, uint8(v))
	b.Write(addr+1, uint8(v>>8))
}

func (b *Bus) readIO(addr uint16) uint8 {
	switch addr {
	case types.DIV:
		return b.tim.ReadDIV()
	case types.TIMA:
		return b.tim.ReadTIMA()
	case types.TMA:
		return b.tim.ReadTMA()
	case types.TAC:
		return b.tim.ReadTAC()
	case types.IF:
		return b.irq.ReadIF()
	case types.LCDC:
		return b.ppu.ReadLCDC()
	case types.STAT:
		return b.ppu.ReadSTAT()
	case types.SCY:
		return b.ppu.ReadSCY()
	case types.SCX:
		return b.ppu.ReadSCX()
	case types.LY:
		return b.ppu.ReadLY()
	case types.LYC:
		return b.ppu.ReadLYC()
	case types.BGP:
		return b.ppu.ReadBGP()
	case types.OBP0:
		return b.ppu.ReadOBP0()
	case types.OBP1:
		return b.ppu.ReadOBP1()
	case types.WY:
		return b.ppu.ReadWY()
	case types.WX:
		return b.ppu.ReadWX()
	case 0xFF00: // joypad, no input source wired (spec.md Non-goals)
		return b.joyp | 0xCF
	default:
		return 0xFF
	}
}

func (b *Bus) writeIO(addr uint16, v uint8) {
	switch addr {
	case types.DIV:
		b.tim.WriteDIV(v)
	case types.TIMA:
		b.tim.WriteTIMA(v)
	case types.TMA:
		b.tim.WriteTMA(v)
	case types.TAC:
		b.tim.WriteTAC(v)
	case types.IF:
		b.irq.WriteIF(v)
	case types.LCDC:
		b.ppu.WriteLCDC(v)
	case types.STAT:
		b.ppu.WriteSTAT(v)
	case types.SCY:
		b.ppu.WriteSCY(v)
	case types.SCX:
		b.ppu.WriteSCX(v)
	case types.LYC:
		b.ppu.WriteLYC(v)
	case types.DMA:
		b.startDMA(v)
	case types.BGP:
		b.ppu.WriteBGP(v)
	case types.OBP0:
		b.ppu.WriteOBP0(v)
	case types.OBP1:
		b.ppu.WriteOBP1(v)
	case types.WY:
		b.ppu.WriteWY(v)
	case types.WX:
		b.ppu.WriteWX(v)
	case types.BootDisable:
		if b.boot != nil && b.boot.active && v&0x01 != 0 {
			b.boot.active = false
			b.log.Debugf("boot ROM overlay disabled")
		}
	case 0xFF00:
		b.joyp = v & 0x30
	default:
		// unmapped IO register, writes ignored
	}
}

var _ types.Stater = (*Bus)(nil)

func (b *Bus) Save(s *types.State) {
	s.WriteData(b.vram[:])
	s.WriteData(b.wram[:])
	s.WriteData(b.oam[:])
	s.WriteData(b.hram[:])
	s.Write8(b.joyp)
	s.WriteBool(b.vramBlocked)
	s.WriteBool(b.oamBlocked)
	if b.boot != nil {
		s.WriteBool(b.boot.active)
	}
}

func (b *Bus) Load(s *types.State) {
	s.ReadData(b.vram[:])
	s.ReadData(b.wram[:])
	s.ReadData(b.oam[:])
	s.ReadData(b.hram[:])
	b.joyp = s.Read8()
	b.vramBlocked = s.ReadBool()
	b.oamBlocked = s.ReadBool()
	if b.boot != nil {
		b.boot.active = s.ReadBool()
	}
}
