package bus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogameboy/core/internal/cartridge"
	"github.com/gogameboy/core/internal/interrupts"
	"github.com/gogameboy/core/internal/ppu"
	"github.com/gogameboy/core/internal/timer"
)

func newTestBus(t *testing.T, boot []byte) *Bus {
	t.Helper()
	rom := make([]byte, 32*1024)
	rom[0x147] = 0x00 // ROM only
	rom[0x148] = 0x00
	rom[0x149] = 0x00
	cart, err := cartridge.New(rom)
	require.NoError(t, err)
	irq := interrupts.NewController()
	tim := timer.NewController(irq)
	p := ppu.New(irq)
	return New(cart, p, tim, irq, boot)
}

func TestEchoMirrorsWRAM(t *testing.T) {
	b := newTestBus(t, nil)
	b.Write(0xC005, 0x42)
	assert.Equal(t, uint8(0x42), b.Read(0xE005), "echo read")
	b.Write(0xE010, 0x99)
	assert.Equal(t, uint8(0x99), b.Read(0xC010), "wram read after echo write")
}

func TestWordReadWriteRoundTrip(t *testing.T) {
	b := newTestBus(t, nil)
	b.WriteWord(0xC000, 0xBEEF)
	assert.Equal(t, uint16(0xBEEF), b.ReadWord(0xC000))
	lo, hi := b.Read(0xC000), b.Read(0xC001)
	assert.Equal(t, uint8(0xEF), lo, "little-endian low byte")
	assert.Equal(t, uint8(0xBE), hi, "little-endian high byte")
}

// TestBootROMOverlayAndDisable is seed scenario 5 from spec.md §8: the
// boot ROM is visible at 0x0000-0x00FF until a 1 is written to 0xFF50,
// after which cartridge ROM becomes visible there again.
func TestBootROMOverlayAndDisable(t *testing.T) {
	boot := make([]byte, 256)
	boot[0] = 0xAA
	b := newTestBus(t, boot)

	require.Equal(t, uint8(0xAA), b.Read(0x0000), "expected boot ROM byte")

	b.Write(0xFF50, 0x01)
	assert.NotEqual(t, uint8(0xAA), b.Read(0x0000), "expected cartridge ROM after boot disable")
}

func TestVRAMBlockedDuringDrawing(t *testing.T) {
	b := newTestBus(t, nil)
	b.Write(0x8000, 0x55)
	b.SetVRAMAccessible(false)
	assert.Equal(t, uint8(0xFF), b.Read(0x8000), "expected blocked VRAM read to return 0xFF")
	b.Write(0x8000, 0x77) // dropped, VRAM blocked
	b.SetVRAMAccessible(true)
	assert.Equal(t, uint8(0x55), b.Read(0x8000), "expected VRAM write during block to be dropped")
}

func TestOAMDMACopiesFullTransfer(t *testing.T) {
	b := newTestBus(t, nil)
	for i := 0; i < 0xA0; i++ {
		b.wram[i] = byte(i + 1)
	}
	// Source page 0xC0 -> physical WRAM 0xC000..0xC09F.
	b.Write(0xFF46, 0xC0)

	for i := 0; i < 0xA0; i++ {
		require.Equal(t, byte(i+1), b.oam[i], "oam[%d]", i)
	}
	require.True(t, b.DMAActive(), "expected DMA to still be charging cycles right after trigger")
	b.TickDMA(160)
	assert.False(t, b.DMAActive(), "expected DMA to be done after 160 M-cycles")
}

func TestUnmappedIOReadsAsAllOnes(t *testing.T) {
	b := newTestBus(t, nil)
	assert.Equal(t, uint8(0xFF), b.Read(0xFF03), "unmapped IO read")
}
