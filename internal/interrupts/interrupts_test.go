package interrupts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorPriorityOrder(t *testing.T) {
	c := NewController()
	c.Enable = VBlank | Timer
	c.Flag = Timer | VBlank

	vec, ok := c.Vector()
	require.True(t, ok, "expected a dispatchable interrupt")
	assert.Equal(t, uint16(0x0040), vec, "expected VBlank vector")
	assert.Zero(t, c.Flag&VBlank, "expected VBlank bit cleared after dispatch")
	assert.NotZero(t, c.Flag&Timer, "expected Timer bit to remain set")
}

func TestVectorRequiresEnable(t *testing.T) {
	c := NewController()
	c.Flag = VBlank

	assert.False(t, c.Dispatchable(), "IME is false, should not be dispatchable")
	c.IME = true
	assert.False(t, c.Dispatchable(), "VBlank not enabled, should not be dispatchable")
	c.Enable = VBlank
	assert.True(t, c.Dispatchable(), "expected dispatchable once enabled with IME set")
}

func TestReadIFUpperBitsReadAsOne(t *testing.T) {
	c := NewController()
	c.WriteIF(0xFF)
	assert.Equal(t, uint8(0x1F), c.Flag, "expected Flag masked to 5 bits")
	assert.Equal(t, uint8(0xFF), c.ReadIF(), "expected ReadIF to read back upper bits set")
}

func TestPending5WakesHalt(t *testing.T) {
	c := NewController()
	assert.False(t, c.Pending5(), "expected no pending interrupts initially")
	c.Enable = Joypad
	c.Request(Joypad)
	assert.True(t, c.Pending5(), "expected Joypad request with matching enable to be pending")
}
