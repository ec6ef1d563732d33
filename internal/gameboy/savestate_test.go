package gameboy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSaveLoadStateRoundTrip checks that CPU and PPU register state
// survives a SaveState/LoadState round trip unchanged.
func TestSaveLoadStateRoundTrip(t *testing.T) {
	rom := newTestROM()
	g, err := New(rom)
	require.NoError(t, err)
	g.CPU.A = 0x42
	g.CPU.PC = 0x1234
	g.Bus.PPU().WriteLCDC(0x91)
	g.Bus.PPU().WriteSCY(0x07)

	blob, err := g.SaveState()
	require.NoError(t, err)

	g2, err := New(rom)
	require.NoError(t, err)
	require.NoError(t, g2.LoadState(blob))

	assert.Equal(t, uint8(0x42), g2.CPU.A)
	assert.Equal(t, uint16(0x1234), g2.CPU.PC)
	assert.Equal(t, uint8(0x91), g2.Bus.PPU().ReadLCDC())
	assert.Equal(t, uint8(0x07), g2.Bus.PPU().ReadSCY())
}

func TestLoadStateRejectsCorruptChecksum(t *testing.T) {
	g, err := New(newTestROM())
	require.NoError(t, err)
	blob, err := g.SaveState()
	require.NoError(t, err)
	blob[0] ^= 0xFF // corrupt the checksum

	assert.Error(t, g.LoadState(blob), "expected checksum mismatch error")
}

func TestLoadStateRejectsShortBlob(t *testing.T) {
	g, err := New(newTestROM())
	require.NoError(t, err)
	assert.Error(t, g.LoadState([]byte{1, 2, 3}), "expected error for too-short blob")
}
