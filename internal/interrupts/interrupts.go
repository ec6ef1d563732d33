// Package interrupts implements the Game Boy's interrupt controller:
// the IF/IE byte registers, IME, and the one-instruction-delayed EI
// latch.
package interrupts

import "github.com/gogameboy/core/internal/types"

// Source names the five interrupt bits, lowest-indexed (highest
// priority) first.
type Source = uint8

const (
	VBlank Source = types.Bit0
	STAT   Source = types.Bit1
	Timer  Source = types.Bit2
	Serial Source = types.Bit3
	Joypad Source = types.Bit4
)

// vectors maps each source bit's index to its fixed dispatch address.
var vectors = [5]uint16{0x0040, 0x0048, 0x0050, 0x0058, 0x0060}

// Controller holds IF/IE and IME. EI's effect on IME is delayed by
// exactly one instruction via Pending; the CPU is responsible for
// consuming Pending (setting IME) at the start of each step.
type Controller struct {
	Flag   uint8 // IF, bits 4:0 valid
	Enable uint8 // IE, bits 4:0 valid
	IME    bool

	Pending bool // set by EI, consumed by the CPU on the next step
}

// NewController returns a Controller with everything cleared.
func NewController() *Controller {
	return &Controller{}
}

// Request sets the given source's bit in IF. Called by the Timer, the
// PPU, and (out of scope here) serial/joypad peripherals.
func (c *Controller) Request(source Source) {
	c.Flag |= source
}

// ReadIF returns IF as the CPU/Bus would observe it: bits 7:5 read
// back as 1.
func (c *Controller) ReadIF() uint8 {
	return c.Flag&0x1F | 0xE0
}

// WriteIF sets IF from a CPU/Bus write; only the low 5 bits are kept.
func (c *Controller) WriteIF(v uint8) {
	c.Flag = v & 0x1F
}

// ReadIE returns IE.
func (c *Controller) ReadIE() uint8 {
	return c.Enable
}

// WriteIE sets IE.
func (c *Controller) WriteIE(v uint8) {
	c.Enable = v
}

// Pending5 reports whether any enabled interrupt source is currently
// requested, regardless of IME. Used to wake a Halted CPU.
func (c *Controller) Pending5() bool {
	return c.Flag&c.Enable&0x1F != 0
}

// Dispatchable reports whether IME is set and at least one enabled
// interrupt is requested.
func (c *Controller) Dispatchable() bool {
	return c.IME && c.Pending5()
}

// Vector finds the lowest-indexed requested-and-enabled source, clears
// its IF bit, and returns its fixed dispatch vector. Returns 0, false
// if nothing is dispatchable; callers must check Dispatchable first.
func (c *Controller) Vector() (uint16, bool) {
	active := c.Flag & c.Enable & 0x1F
	if active == 0 {
		return 0, false
	}
	for i := 0; i < 5; i++ {
		bit := uint8(1 << i)
		if active&bit != 0 {
			c.Flag &^= bit
			return vectors[i], true
		}
	}
	return 0, false
}

var _ types.Stater = (*Controller)(nil)

func (c *Controller) Save(s *types.State) {
	s.Write8(c.Flag)
	s.Write8(c.Enable)
	s.WriteBool(c.IME)
	s.WriteBool(c.Pending)
}

func (c *Controller) Load(s *types.State) {
	c.Flag = s.Read8()
	c.Enable = s.Read8()
	c.IME = s.ReadBool()
	c.Pending = s.ReadBool()
}
