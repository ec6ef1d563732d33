// Package timer implements the Game Boy's DIV/TIMA/TMA/TAC timer,
// ticked in M-cycles by the FrameRunner after every CPU instruction
// (spec.md §4.6).
package timer

import (
	"github.com/gogameboy/core/internal/interrupts"
	"github.com/gogameboy/core/internal/types"
)

// rates maps TAC bits 1:0 to the number of M-cycles between TIMA
// increments.
var rates = [4]uint16{256, 4, 16, 64}

// Controller owns DIV, TIMA, TMA and TAC and raises the Timer
// interrupt on overflow.
type Controller struct {
	div       uint16 // internal T-cycle divider; DIV is its high byte
	mCycles   uint16 // M-cycles elapsed since the last TIMA increment
	tima      uint8
	tma       uint8
	tac       uint8

	irq *interrupts.Controller
}

// NewController returns a Controller wired to irq for overflow
// requests.
func NewController(irq *interrupts.Controller) *Controller {
	return &Controller{irq: irq}
}

// Tick advances the timer by mCycles M-cycles (4 dots each). DIV
// advances every M-cycle regardless of TAC; TIMA advances at the rate
// TAC selects, only while TAC bit 2 is set.
func (c *Controller) Tick(mCycles uint8) {
	for i := uint8(0); i < mCycles; i++ {
		c.div += 4 // DIV is a T-cycle counter; 256 T-cycles == 64 M-cycles

		if c.enabled() {
			c.mCycles++
			if c.mCycles >= rates[c.tac&0x03] {
				c.mCycles = 0
				c.incrementTIMA()
			}
		}
	}
}

func (c *Controller) enabled() bool {
	return c.tac&0x04 != 0
}

func (c *Controller) incrementTIMA() {
	if c.tima == 0xFF {
		c.tima = c.tma
		c.irq.Request(interrupts.Timer)
	} else {
		c.tima++
	}
}

// ReadDIV returns the visible DIV register (high byte of the internal
// divider).
func (c *Controller) ReadDIV() uint8 {
	return uint8(c.div >> 8)
}

// WriteDIV resets the internal divider to 0 regardless of the written
// value, per spec.md §4.1/§4.6.
func (c *Controller) WriteDIV(uint8) {
	c.div = 0
}

func (c *Controller) ReadTIMA() uint8 { return c.tima }
func (c *Controller) WriteTIMA(v uint8) {
	c.tima = v
}

func (c *Controller) ReadTMA() uint8    { return c.tma }
func (c *Controller) WriteTMA(v uint8)  { c.tma = v }

func (c *Controller) ReadTAC() uint8   { return c.tac | 0xF8 }
func (c *Controller) WriteTAC(v uint8) { c.tac = v & 0x07 }

var _ types.Stater = (*Controller)(nil)

func (c *Controller) Save(s *types.State) {
	s.Write16(c.div)
	s.Write16(c.mCycles)
	s.Write8(c.tima)
	s.Write8(c.tma)
	s.Write8(c.tac)
}

func (c *Controller) Load(s *types.State) {
	c.div = s.Read16()
	c.mCycles = s.Read16()
	c.tima = s.Read8()
	c.tma = s.Read8()
	c.tac = s.Read8()
}
