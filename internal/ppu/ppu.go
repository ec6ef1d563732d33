// Package ppu implements the DMG picture processing unit: its
// register file, the OAM-scan/Drawing/HBlank/VBlank mode state
// machine, and scanline-granularity background/window/object
// compositing into a 2-bit-shade framebuffer. Presentation (turning
// shades into colours and putting them on screen) is out of scope
// (spec.md §1); VRAM and OAM storage live on the bus and are passed
// into RenderScanline rather than held here, so this package never
// imports the bus package (spec.md §9 Design Notes).
package ppu

import "github.com/gogameboy/core/internal/interrupts"

// Mode is one of the four PPU states reported in STAT bits 1:0.
type Mode uint8

const (
	ModeHBlank Mode = 0
	ModeVBlank Mode = 1
	ModeOAMScan Mode = 2
	ModeDrawing Mode = 3
)

const (
	ScreenWidth  = 160
	ScreenHeight = 144
)

// LCDC bits (spec.md §3).
const (
	lcdcBGWinEnable   = 1 << 0
	lcdcObjEnable     = 1 << 1
	lcdcObjSize       = 1 << 2
	lcdcBGTileMap     = 1 << 3
	lcdcBGWinTileData = 1 << 4
	lcdcWindowEnable  = 1 << 5
	lcdcWindowTileMap = 1 << 6
	lcdcEnable        = 1 << 7
)

// PPU holds all LCD-related register and mode state. VRAM and OAM
// bytes are owned by the bus and passed in by reference at render
// time; the PPU never stores a pointer back to the bus.
type PPU struct {
	irq *interrupts.Controller

	lcdc uint8
	stat uint8
	scy  uint8
	scx  uint8
	ly   uint8
	lyc  uint8
	wy   uint8
	wx   uint8
	bgp  uint8
	obp0 uint8
	obp1 uint8

	mode       Mode
	windowLine uint8 // internal window line counter, increments only while the window is active

	Framebuffer [ScreenHeight][ScreenWidth]uint8
}

// New constructs a PPU wired to the interrupt controller it raises
// VBlank and STAT against.
func New(irq *interrupts.Controller) *PPU {
	return &PPU{irq: irq}
}

func (p *PPU) Enabled() bool { return p.lcdc&lcdcEnable != 0 }

// ReadLCDC/WriteLCDC etc. are the CPU-facing IO register accessors;
// the bus dispatches 0xFF40-0xFF4B here.
func (p *PPU) ReadLCDC() uint8 { return p.lcdc }
func (p *PPU) WriteLCDC(v uint8) {
	wasEnabled := p.Enabled()
	p.lcdc = v
	if wasEnabled && !p.Enabled() {
		p.mode = ModeHBlank
		p.ly = 0
	}
}

// ReadSTAT reports the current mode and coincidence flag in the low
// three bits plus the four interrupt-source-enable bits as written,
// with bit 7 always reading as 1.
func (p *PPU) ReadSTAT() uint8 {
	v := p.stat&0xF8 | uint8(p.mode)
	if p.ly == p.lyc {
		v |= 1 << 2
	}
	return v | 0x80
}

func (p *PPU) WriteSTAT(v uint8) { p.stat = v & 0x78 }

func (p *PPU) ReadSCY() uint8    { return p.scy }
func (p *PPU) WriteSCY(v uint8)  { p.scy = v }
func (p *PPU) ReadSCX() uint8    { return p.scx }
func (p *PPU) WriteSCX(v uint8)  { p.scx = v }
func (p *PPU) ReadLY() uint8     { return p.ly }
func (p *PPU) ReadLYC() uint8    { return p.lyc }
func (p *PPU) WriteLYC(v uint8)  { p.lyc = v }
func (p *PPU) ReadWY() uint8     { return p.wy }
func (p *PPU) WriteWY(v uint8)   { p.wy = v }
func (p *PPU) ReadWX() uint8     { return p.wx }
func (p *PPU) WriteWX(v uint8)   { p.wx = v }
func (p *PPU) ReadBGP() uint8    { return p.bgp }
func (p *PPU) WriteBGP(v uint8)  { p.bgp = v }
func (p *PPU) ReadOBP0() uint8   { return p.obp0 }
func (p *PPU) WriteOBP0(v uint8) { p.obp0 = v }
func (p *PPU) ReadOBP1() uint8   { return p.obp1 }
func (p *PPU) WriteOBP1(v uint8) { p.obp1 = v }

func (p *PPU) Mode() Mode { return p.mode }

// statInterruptSources, bits 3-6 of STAT: HBlank/VBlank/OAM/LYC==LY.
const (
	statHBlankInt = 1 << 3
	statVBlankInt = 1 << 4
	statOAMInt    = 1 << 5
	statLYCInt    = 1 << 6
)

// SetMode transitions to a new mode, raising STAT and VBlank
// interrupts exactly on the edges the hardware does (spec.md §4.5):
// entering HBlank/VBlank/OAMScan fires STAT if the matching enable bit
// is set, and entering VBlank additionally always fires the VBlank
// interrupt source.
func (p *PPU) SetMode(m Mode) {
	p.mode = m
	switch m {
	case ModeHBlank:
		if p.stat&statHBlankInt != 0 {
			p.irq.Request(interrupts.STAT)
		}
	case ModeVBlank:
		p.irq.Request(interrupts.VBlank)
		if p.stat&statVBlankInt != 0 {
			p.irq.Request(interrupts.STAT)
		}
	case ModeOAMScan:
		if p.stat&statOAMInt != 0 {
			p.irq.Request(interrupts.STAT)
		}
	}
}

// SetLY updates the scanline counter and fires the LYC STAT interrupt
// on the rising edge of coincidence.
func (p *PPU) SetLY(ly uint8) {
	p.ly = ly
	if p.ly == 0 {
		p.windowLine = 0
	}
	if p.ly == p.lyc && p.stat&statLYCInt != 0 {
		p.irq.Request(interrupts.STAT)
	}
}

// DrawingDots approximates the Drawing-phase dot cost for the
// scanline about to be rendered: the fixed 172-dot minimum, a
// fine-scroll penalty for the partial first tile, and a per-sprite
// fetch penalty, clamped to the hardware's documented [172,289]
// range (spec.md §4.4 — exact per-pixel FIFO timing is not modelled).
func (p *PPU) DrawingDots(numSprites int) int {
	dots := 172 + int(p.scx%8)
	dots += 6 * numSprites
	if dots > 289 {
		dots = 289
	}
	return dots
}

// RenderScanline composites background, window, and objects for the
// current LY into the framebuffer. vram is the full 8KiB VRAM region
// (0x8000-based addresses index directly via addr-0x8000) and oam is
// the 160-byte OAM region.
func (p *PPU) RenderScanline(vram, oam []byte) {
	if !p.Enabled() || int(p.ly) >= ScreenHeight {
		return
	}

	read := func(addr uint16) uint8 { return vram[addr-0x8000] }

	var bgRow [ScreenWidth]uint8  // colour index before palette, for object priority checks
	var shade [ScreenWidth]uint8

	unsignedMode := p.lcdc&lcdcBGWinTileData != 0
	bgHighMap := p.lcdc&lcdcBGTileMap != 0
	winHighMap := p.lcdc&lcdcWindowTileMap != 0
	windowActive := p.lcdc&lcdcWindowEnable != 0 && p.ly >= p.wy

	if p.lcdc&lcdcBGWinEnable != 0 {
		y := p.ly + p.scy
		tileRow := y / 8
		rowInTile := y % 8

		for screenX := 0; screenX < ScreenWidth; screenX++ {
			inWindow := windowActive && screenX+7 >= int(p.wx)

			var idxByte uint8
			var fineRow uint8
			var col uint8
			if inWindow {
				wx := uint8(screenX+7) - p.wx
				col = wx / 8
				idxByte = read(tileMapAddr(winHighMap, col, p.windowLine/8))
				fineRow = p.windowLine % 8
				_ = wx
			} else {
				x := uint8(screenX) + p.scx
				col = x / 8
				idxByte = read(tileMapAddr(bgHighMap, col, tileRow))
				fineRow = rowInTile
			}

			lo := read(tileDataAddr(idxByte, fineRow, unsignedMode))
			hi := read(tileDataAddr(idxByte, fineRow, unsignedMode) + 1)
			row := decodeRow(lo, hi)

			var px uint8
			if inWindow {
				px = row[(uint8(screenX+7)-p.wx)%8]
			} else {
				px = row[(uint8(screenX)+p.scx)%8]
			}
			bgRow[screenX] = px
			shade[screenX] = Apply(p.bgp, px)
		}
		if windowActive {
			p.windowLine++
		}
	}

	if p.lcdc&lcdcObjEnable != 0 {
		tall := p.lcdc&lcdcObjSize != 0
		objs := scanObjects(oam, p.ly, tall)
		// Lower X coordinate wins; ties broken by lower OAM index
		// (already the scan order, so a stable sort by X alone suffices).
		for i := 1; i < len(objs); i++ {
			for j := i; j > 0 && objs[j].X < objs[j-1].X; j-- {
				objs[j], objs[j-1] = objs[j-1], objs[j]
			}
		}

		height := uint8(8)
		if tall {
			height = 16
		}

		for oi := len(objs) - 1; oi >= 0; oi-- {
			o := objs[oi]
			row := p.ly - (o.Y - 16)
			if o.yFlip() {
				row = height - 1 - row
			}
			tile := o.Tile
			if tall {
				tile &^= 0x01
				if row >= 8 {
					tile |= 0x01
					row -= 8
				}
			}
			lo := vram[(0x8000+uint16(tile)*16+uint16(row)*2)-0x8000]
			hi := vram[(0x8000+uint16(tile)*16+uint16(row)*2+1)-0x8000]
			decoded := decodeRow(lo, hi)

			for px := 0; px < 8; px++ {
				screenX := int(o.X) - 8 + px
				if screenX < 0 || screenX >= ScreenWidth {
					continue
				}
				col := px
				if o.xFlip() {
					col = 7 - px
				}
				c := decoded[col]
				if c == 0 {
					continue // transparent
				}
				if o.priority() && bgRow[screenX] != 0 {
					continue // BG/Win over OBJ, and BG pixel is non-zero
				}
				pal := p.obp0
				if o.dmgPalette() == 1 {
					pal = p.obp1
				}
				shade[screenX] = Apply(pal, c)
			}
		}
	}

	p.Framebuffer[p.ly] = shade
}
