package cartridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeROM(size int, cartType byte, ramCode byte) []byte {
	rom := make([]byte, size)
	rom[0x147] = cartType
	rom[0x148] = 0 // 32KiB * (1<<0)
	rom[0x149] = ramCode
	return rom
}

func TestNewROMOnly(t *testing.T) {
	rom := makeROM(32*1024, byte(ROMOnly), 0)
	c, err := New(rom)
	require.NoError(t, err)
	_, ok := c.MBC.(*romOnly)
	assert.True(t, ok, "expected romOnly MBC, got %T", c.MBC)
}

func TestNewUnimplementedMBCErrors(t *testing.T) {
	rom := makeROM(32*1024, 0x05 /* MBC2, unimplemented */, 0)
	_, err := New(rom)
	assert.Error(t, err, "expected an error for an unimplemented cartridge type")
}

// TestMBC1BankSwitch is seed scenario 4 from spec.md §8: a 4-bank
// cartridge, write 0x02 to 0x2000, then read 0x4000 should return the
// first byte of physical ROM offset 0x8000 (bank 2 * 0x4000).
func TestMBC1BankSwitch(t *testing.T) {
	rom := makeROM(4*0x4000, byte(MBC1), 0)
	rom[0x8000] = 0xAB

	c, err := New(rom)
	require.NoError(t, err)

	c.MBC.WriteROM(0x2000, 0x02)
	assert.Equal(t, uint8(0xAB), c.MBC.ReadROM(0x4000), "expected 0xAB at bank 2 offset 0")
}

func TestMBC1BankZeroBecomesOne(t *testing.T) {
	rom := makeROM(4*0x4000, byte(MBC1), 0)
	rom[0x4000] = 0xCD // bank 1, offset 0

	c, err := New(rom)
	require.NoError(t, err)

	c.MBC.WriteROM(0x2000, 0x00) // programming 0 selects bank 1
	assert.Equal(t, uint8(0xCD), c.MBC.ReadROM(0x4000), "expected bank-0 write to read back as bank 1")
}

func TestMBC1Mode0LowRegionAlwaysBankZero(t *testing.T) {
	rom := makeROM(8*0x4000, byte(MBC1), 0)
	rom[0x4000*4] = 0x11 // bank 4, offset 0

	c, err := New(rom)
	require.NoError(t, err)

	c.MBC.WriteROM(0x2000, 0x01)
	c.MBC.WriteROM(0x4000, 0x01) // upper = 1 -> with mode 1 would select bank 32, which wraps to bank 0 on this 8-bank ROM
	c.MBC.WriteROM(0x6000, 0x00) // mode 0

	assert.Equal(t, rom[0], c.MBC.ReadROM(0x0000), "expected mode 0 low region to stay on bank 0")
}

func TestMBC1RAMGatedByEnable(t *testing.T) {
	rom := makeROM(2*0x4000, byte(MBC1RAMBatt), 0x02) // 8KiB RAM
	c, err := New(rom)
	require.NoError(t, err)

	c.MBC.WriteRAM(0xA000, 0x42)
	assert.Equal(t, uint8(0xFF), c.MBC.ReadRAM(0xA000), "expected disabled RAM to read back 0xFF")

	c.MBC.WriteROM(0x0000, 0x0A) // enable RAM
	c.MBC.WriteRAM(0xA000, 0x42)
	assert.Equal(t, uint8(0x42), c.MBC.ReadRAM(0xA000), "expected enabled RAM write to stick")
}
