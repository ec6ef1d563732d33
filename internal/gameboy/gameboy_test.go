package gameboy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogameboy/core/internal/ppu"
)

func newTestROM() []byte {
	rom := make([]byte, 32*1024)
	rom[0x147] = 0x00 // ROM only
	rom[0x148] = 0x00
	rom[0x149] = 0x00
	return rom
}

func TestNewStartsAtPostBootState(t *testing.T) {
	g, err := New(newTestROM())
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0100), g.CPU.PC)
}

func TestNewWithBootROMStartsAtZero(t *testing.T) {
	boot := make([]byte, 256)
	g, err := New(newTestROM(), WithBootROM(boot))
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0000), g.CPU.PC)
}

// TestRunFrameAdvancesLYThroughAllScanlines exercises the FrameRunner
// loop against a cartridge whose code just spins on a single JR -2, so
// a frame boundary is reached purely on dot budget (spec.md §4.5).
func TestRunFrameAdvancesLYThroughAllScanlines(t *testing.T) {
	rom := newTestROM()
	rom[0x100] = 0x18 // JR -2 (infinite loop, 3 M-cycles/iteration)
	rom[0x101] = 0xFE

	g, err := New(rom)
	require.NoError(t, err)
	g.Bus.PPU().WriteLCDC(0x91) // LCD + BG enabled

	fb := g.RunFrame()
	require.NotNil(t, fb, "RunFrame returned nil framebuffer")
	assert.Equal(t, uint8(ppu.ScreenHeight+9), g.Bus.PPU().ReadLY(), "LY after frame, want last VBlank line")
	assert.Equal(t, ppu.ModeVBlank, g.Bus.PPU().Mode(), "mode after frame")
}

func TestRunFrameWithLCDOffJustBurnsDots(t *testing.T) {
	rom := newTestROM()
	rom[0x100] = 0x00 // NOP forever via falling through zeroed ROM
	g, err := New(rom)
	require.NoError(t, err)
	// LCDC defaults to 0: LCD disabled.
	fb := g.RunFrame()
	require.NotNil(t, fb, "RunFrame returned nil framebuffer")
}
