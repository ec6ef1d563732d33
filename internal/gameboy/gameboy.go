// Package gameboy is the composition root: it wires Bus, CPU, PPU,
// Timer, InterruptController, and Cartridge together and drives them
// in the interleaved lock-step spec.md §4.5 describes, rather than
// handing out cyclic back-references between components (spec.md §9
// Design Notes). A GameBoy is the only thing a host needs to hold.
package gameboy

import (
	"fmt"

	"github.com/gogameboy/core/internal/bus"
	"github.com/gogameboy/core/internal/cartridge"
	"github.com/gogameboy/core/internal/cpu"
	"github.com/gogameboy/core/internal/interrupts"
	"github.com/gogameboy/core/internal/ppu"
	"github.com/gogameboy/core/internal/timer"
	"github.com/gogameboy/core/internal/types"
	"github.com/gogameboy/core/pkg/log"
)

// DotsPerScanline and friends are the fixed timing constants spec.md
// §4.4/§4.5 and the GLOSSARY define: 456 dots per scanline, 154
// scanlines per frame (144 visible + 10 VBlank), 4 dots per M-cycle.
const (
	DotsPerScanline = 456
	OAMScanDots     = 80
	ScanlinesPerFrame = 154
	DotsPerFrame    = DotsPerScanline * ScanlinesPerFrame // 70224
)

// GameBoy owns every subsystem and is the sole mutable state a host
// needs to advance emulation and read back the framebuffer.
type GameBoy struct {
	Bus  *bus.Bus
	CPU  *cpu.CPU
	Timer *timer.Controller
	Interrupts *interrupts.Controller
	Cart *cartridge.Cartridge

	log log.Logger

	bootROM    []byte
	ramPreload []byte

	// carry holds dots consumed past the end of the previous
	// scanline phase, subtracted from the next phase's budget so a
	// long-running instruction doesn't silently stretch the frame
	// (spec.md §4.5: PPU and CPU exchange precise cycle counts).
	carry int
}

// New parses rom's header, builds the matching MBC, wires every
// subsystem, and returns a GameBoy positioned at the post-boot-ROM
// register state unless WithBootROM is supplied (spec.md §6
// gameboy.New).
func New(rom []byte, opts ...Option) (*GameBoy, error) {
	cart, err := cartridge.New(rom)
	if err != nil {
		return nil, fmt.Errorf("gameboy: %w", err)
	}

	g := &GameBoy{
		Cart:       cart,
		Interrupts: interrupts.NewController(),
		log:        log.Null(),
	}
	g.Timer = timer.NewController(g.Interrupts)
	p := ppu.New(g.Interrupts)

	for _, opt := range opts {
		opt.apply(g)
	}

	g.Bus = bus.New(cart, p, g.Timer, g.Interrupts, g.bootROM)
	g.Bus.SetLogger(g.log)
	if g.bootROM != nil {
		g.CPU = cpu.NewAtBootROM(g.Bus, g.Interrupts)
	} else {
		g.CPU = cpu.New(g.Bus, g.Interrupts)
	}
	g.CPU.SetLogger(g.log)

	if g.ramPreload != nil {
		cart.MBC.LoadRAM(g.ramPreload)
	}

	return g, nil
}

// PPU is a convenience accessor; the Bus owns the actual instance.
func (g *GameBoy) PPU() *ppu.PPU { return g.Bus.PPU() }

// Framebuffer returns the last fully rendered frame: 144 rows of 160
// 2-bit shade indices (spec.md §6 Framebuffer output).
func (g *GameBoy) Framebuffer() *[ppu.ScreenHeight][ppu.ScreenWidth]uint8 {
	return &g.Bus.PPU().Framebuffer
}

// runCPUForDots steps the CPU until it has consumed at least
// targetDots dots (4 per M-cycle), ticking the Timer and any in-flight
// OAM DMA after every instruction (spec.md §4.6, §4.1) so interrupts
// raised mid-phase are visible to the CPU's next fetch. Any dots
// consumed past targetDots are returned so the caller can charge them
// against the next phase's budget.
func (g *GameBoy) runCPUForDots(targetDots int) int {
	target := targetDots - g.carry
	g.carry = 0
	consumed := 0
	for consumed < target {
		m := g.CPU.Step()
		g.Timer.Tick(m)
		g.Bus.TickDMA(m)
		consumed += int(m) * 4
	}
	return consumed - target
}

// RunFrame advances exactly one 70224-dot frame: 144 visible
// scanlines, each OAM-scan/Drawing/HBlank, followed by 10 VBlank
// scanlines (spec.md §4.5 FrameRunner). It returns the freshly
// populated framebuffer.
func (g *GameBoy) RunFrame() *[ppu.ScreenHeight][ppu.ScreenWidth]uint8 {
	p := g.Bus.PPU()

	if !p.Enabled() {
		g.carry = g.runCPUForDots(DotsPerFrame)
		return g.Framebuffer()
	}

	for ly := uint8(0); ly < ppu.ScreenHeight; ly++ {
		p.SetLY(ly)

		p.SetMode(ppu.ModeOAMScan)
		g.Bus.SetOAMAccessible(false)
		g.Bus.SetVRAMAccessible(true)
		g.carry = g.runCPUForDots(OAMScanDots)

		tall := p.ReadLCDC()&types.Bit2 != 0
		numSprites := ppu.SpriteCount(g.Bus.OAM(), ly, tall)
		drawingDots := p.DrawingDots(numSprites)

		p.SetMode(ppu.ModeDrawing)
		g.Bus.SetOAMAccessible(false)
		g.Bus.SetVRAMAccessible(false)
		g.carry = g.runCPUForDots(drawingDots)

		p.RenderScanline(g.Bus.VRAM(), g.Bus.OAM())

		p.SetMode(ppu.ModeHBlank)
		g.Bus.SetOAMAccessible(true)
		g.Bus.SetVRAMAccessible(true)
		hblankDots := DotsPerScanline - OAMScanDots - drawingDots
		g.carry = g.runCPUForDots(hblankDots)
	}

	for ly := uint8(ppu.ScreenHeight); ly < ScanlinesPerFrame; ly++ {
		p.SetLY(ly)
		if ly == ppu.ScreenHeight {
			p.SetMode(ppu.ModeVBlank)
		}
		g.Bus.SetOAMAccessible(true)
		g.Bus.SetVRAMAccessible(true)
		g.carry = g.runCPUForDots(DotsPerScanline)
	}

	return g.Framebuffer()
}
