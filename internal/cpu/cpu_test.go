package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogameboy/core/internal/bus"
	"github.com/gogameboy/core/internal/cartridge"
	"github.com/gogameboy/core/internal/interrupts"
	"github.com/gogameboy/core/internal/ppu"
	"github.com/gogameboy/core/internal/timer"
)

// newTestCPU builds a CPU over a Bus backed by a ROM-only cartridge
// with prog loaded at 0x0100, the usual entry point.
func newTestCPU(t *testing.T, prog []byte) (*CPU, *bus.Bus, *interrupts.Controller) {
	t.Helper()
	rom := make([]byte, 32*1024)
	copy(rom[0x0100:], prog)
	cart, err := cartridge.New(rom)
	require.NoError(t, err)
	irq := interrupts.NewController()
	tim := timer.NewController(irq)
	p := ppu.New(irq)
	b := bus.New(cart, p, tim, irq, nil)
	return New(b, irq), b, irq
}

// TestLoadRegisterToRegister is seed scenario 1 from spec.md §8: LD B,A
// copies A into B without touching any flag.
func TestLoadRegisterToRegister(t *testing.T) {
	c, _, _ := newTestCPU(t, []byte{0x47}) // LD B,A
	c.A = 0x5A
	c.F = 0xF0
	c.Step()
	assert.Equal(t, uint8(0x5A), c.B)
	assert.Equal(t, uint8(0xF0), c.F, "F changed across LD r,r")
}

func TestLoadHLIndirect(t *testing.T) {
	c, b, _ := newTestCPU(t, []byte{0x70}) // LD (HL),B
	c.B = 0x99
	c.HL.SetUint16(0xC000)
	c.Step()
	assert.Equal(t, uint8(0x99), b.Read(0xC000))
}

// TestAddWithCarry is seed scenario 2 from spec.md §8: ADD A,B with a
// preexisting carry unset must not add it in, and must set H/C/Z per
// the 8-bit addition it actually performed.
func TestAddWithCarry(t *testing.T) {
	c, _, _ := newTestCPU(t, []byte{0x80}) // ADD A,B
	c.A = 0x0F
	c.B = 0x01
	c.Step()
	assert.Equal(t, uint8(0x10), c.A)
	assert.True(t, c.isFlagSet(FlagHalfCarry), "expected half carry set")
	assert.False(t, c.isFlagSet(FlagCarry), "unexpected carry")
	assert.False(t, c.isFlagSet(FlagZero), "unexpected zero")
	assert.False(t, c.isFlagSet(FlagSubtract), "unexpected subtract")
}

func TestAdcIncludesIncomingCarry(t *testing.T) {
	c, _, _ := newTestCPU(t, []byte{0x89}) // ADC A,C
	c.A = 0x01
	c.C = 0x01
	c.setFlag(FlagCarry)
	c.Step()
	assert.Equal(t, uint8(0x03), c.A)
}

func TestIncOverflowSetsZeroNotCarry(t *testing.T) {
	c, _, _ := newTestCPU(t, []byte{0x04}) // INC B
	c.B = 0xFF
	c.setFlag(FlagCarry)
	c.Step()
	assert.Equal(t, uint8(0x00), c.B)
	assert.True(t, c.isFlagSet(FlagZero), "expected zero flag set")
	assert.True(t, c.isFlagSet(FlagCarry), "INC must leave carry untouched")
}

// TestCallRetRoundTrip is seed scenario 3 from spec.md §8.
func TestCallRetRoundTrip(t *testing.T) {
	prog := []byte{
		0xCD, 0x07, 0x01, // CALL 0x0107
		0x00,             // NOP (landed on after RET)
		0x00, 0x00, 0x00, // padding up to 0x0107
		0xC9, // RET
	}
	c, _, _ := newTestCPU(t, prog)
	startSP := c.SP

	c.Step() // CALL
	assert.Equal(t, uint16(0x0107), c.PC)
	assert.Equal(t, startSP-2, c.SP)

	c.Step() // RET
	assert.Equal(t, uint16(0x0103), c.PC)
	assert.Equal(t, startSP, c.SP)
}

func TestConditionalJumpNotTakenFallsThrough(t *testing.T) {
	prog := []byte{0xCA, 0x00, 0x02} // JP Z,0x0200 (not taken)
	c, _, _ := newTestCPU(t, prog)
	c.clearFlag(FlagZero)
	m := c.Step()
	assert.Equal(t, uint16(0x0103), c.PC, "fallthrough")
	assert.Equal(t, uint8(3), m, "untaken JP cc,nn M-cycles")
}

func TestConditionalJumpTakenChargesExtraCycle(t *testing.T) {
	prog := []byte{0xCA, 0x00, 0x02} // JP Z,0x0200 (taken)
	c, _, _ := newTestCPU(t, prog)
	c.setFlag(FlagZero)
	m := c.Step()
	assert.Equal(t, uint16(0x0200), c.PC)
	assert.Equal(t, uint8(4), m, "taken JP cc,nn M-cycles")
}

// TestPushPopAFMasksLowNibble covers POP AF's hardware quirk: bits 3:0
// of F always read back zero regardless of what was pushed.
func TestPushPopAFMasksLowNibble(t *testing.T) {
	c, _, _ := newTestCPU(t, []byte{0xF5, 0xF1}) // PUSH AF; POP AF
	c.A = 0x12
	c.F = 0xFF
	c.Step() // PUSH AF
	c.A, c.F = 0, 0
	c.Step() // POP AF
	assert.Equal(t, uint8(0x12), c.A)
	assert.Equal(t, uint8(0xF0), c.F, "low nibble masked")
}

func TestPushPopBCRoundTrip(t *testing.T) {
	c, _, _ := newTestCPU(t, []byte{0xC5, 0xC1}) // PUSH BC; POP BC
	c.BC.SetUint16(0xBEEF)
	c.Step()
	c.BC.SetUint16(0)
	c.Step()
	assert.Equal(t, uint16(0xBEEF), c.BC.Uint16())
}

// TestVBlankInterruptDispatch is seed scenario 6 from spec.md §8: with
// IME and the VBlank enable bit both set and VBlank requested, the next
// Step must push PC and jump to the VBlank vector rather than execute
// the opcode at PC.
func TestVBlankInterruptDispatch(t *testing.T) {
	c, _, irq := newTestCPU(t, []byte{0x00}) // NOP, never reached
	irq.IME = true
	irq.WriteIE(0xFF)
	irq.Request(interrupts.VBlank)

	startPC := c.PC
	m := c.Step()

	assert.Equal(t, uint16(0x0040), c.PC)
	assert.False(t, irq.IME, "IME must be cleared on dispatch")
	assert.Equal(t, uint8(5), m, "dispatch M-cycles")
	assert.Equal(t, startPC, c.pop16(), "pushed PC")
}

func TestHaltWakesOnPendingInterruptWithIMEClear(t *testing.T) {
	c, _, irq := newTestCPU(t, []byte{0x76, 0x00}) // HALT; NOP
	c.Step()                                       // enters HALT
	require.True(t, c.Halted())

	irq.IME = false
	irq.WriteIE(0xFF)
	irq.Request(interrupts.VBlank)

	c.Step() // wakes, does not dispatch (IME clear)
	assert.False(t, c.Halted(), "expected CPU to resume out of HALT")
	assert.Equal(t, uint16(0x0102), c.PC, "NOP executed, no dispatch")
}

// TestDAAAfterBCDAddition exercises the documented add-correction case:
// 0x45 + 0x38 in binary is 0x7D but the BCD-valid result is 0x83.
func TestDAAAfterBCDAddition(t *testing.T) {
	prog := []byte{0x80, 0x27} // ADD A,B; DAA
	c, _, _ := newTestCPU(t, prog)
	c.A = 0x45
	c.B = 0x38
	c.Step() // ADD
	c.Step() // DAA
	assert.Equal(t, uint8(0x83), c.A)
	assert.False(t, c.isFlagSet(FlagCarry))
}

func TestSwapClearsCarry(t *testing.T) {
	prog := []byte{0xCB, 0x37} // SWAP A
	c, _, _ := newTestCPU(t, prog)
	c.A = 0xAB
	c.setFlag(FlagCarry)
	c.Step()
	assert.Equal(t, uint8(0xBA), c.A)
	assert.False(t, c.isFlagSet(FlagCarry), "SWAP must clear carry")
}

func TestBitInstructionLeavesCarryUntouched(t *testing.T) {
	prog := []byte{0xCB, 0x7F} // BIT 7,A
	c, _, _ := newTestCPU(t, prog)
	c.A = 0x7F
	c.setFlag(FlagCarry)
	c.Step()
	assert.True(t, c.isFlagSet(FlagZero), "bit 7 of 0x7F is clear")
	assert.True(t, c.isFlagSet(FlagCarry), "BIT must leave carry untouched")
}

// TestEIDelaysOneInstruction covers spec.md §4.3's interrupt-dispatch
// step 1: the instruction immediately after EI always executes, even
// with an interrupt already pending, and dispatch only happens from
// the step after that.
func TestEIDelaysOneInstruction(t *testing.T) {
	prog := []byte{0xFB, 0x00, 0x00} // EI; NOP; NOP
	c, _, irq := newTestCPU(t, prog)
	irq.WriteIE(0xFF)
	irq.Request(interrupts.VBlank)

	c.Step() // EI: latches Pending, does not enable IME yet
	assert.False(t, irq.IME, "IME must not be set until after the instruction following EI")
	assert.Equal(t, uint16(0x0101), c.PC)

	c.Step() // NOP: the latch-consuming step must still execute its
	// opcode rather than dispatch, even though IME becomes true and an
	// interrupt is already pending.
	assert.True(t, irq.IME, "IME must be set by the second Step after EI")
	assert.Equal(t, uint16(0x0102), c.PC, "opcode executed, not dispatched")

	c.Step() // now dispatch is free to happen instead of the second NOP.
	assert.Equal(t, uint16(0x0040), c.PC)
}
