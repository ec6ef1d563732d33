package timer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogameboy/core/internal/interrupts"
)

func TestDIVIncrementsOncePer64MCycles(t *testing.T) {
	irq := interrupts.NewController()
	c := NewController(irq)

	c.Tick(63)
	require.Equal(t, uint8(0), c.ReadDIV(), "expected DIV to still read 0 after 63 M-cycles")
	c.Tick(1)
	assert.Equal(t, uint8(1), c.ReadDIV(), "expected DIV to read 1 after 64 M-cycles")
}

func TestWriteDIVResetsRegardlessOfValue(t *testing.T) {
	irq := interrupts.NewController()
	c := NewController(irq)
	c.Tick(128)
	require.NotZero(t, c.ReadDIV(), "expected DIV to have advanced")
	c.WriteDIV(0x42)
	assert.Equal(t, uint8(0), c.ReadDIV(), "expected DIV to reset to 0 on any write")
}

func TestTIMAOverflowReloadsFromTMAAndRaisesInterrupt(t *testing.T) {
	irq := interrupts.NewController()
	irq.Enable = interrupts.Timer
	c := NewController(irq)

	c.WriteTAC(0x05) // enabled, 01 = every 4 M-cycles
	c.WriteTMA(0x10)
	c.WriteTIMA(0xFF)

	c.Tick(4)

	assert.Equal(t, uint8(0x10), c.ReadTIMA(), "expected TIMA to reload to TMA")
	assert.NotZero(t, irq.Flag&interrupts.Timer, "expected Timer interrupt flag to be set on overflow")
}

func TestTIMADisabledByDefault(t *testing.T) {
	irq := interrupts.NewController()
	c := NewController(irq)
	c.Tick(255)
	assert.Equal(t, uint8(0), c.ReadTIMA(), "expected TIMA to stay 0 while TAC bit 2 is clear")
}
