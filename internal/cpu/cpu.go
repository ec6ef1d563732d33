// Package cpu implements the SM83 instruction set: registers, flags,
// the fetch/decode/execute loop, and interrupt dispatch (spec.md
// §4.3). A CPU holds a *bus.Bus and drives it; the ppu, timer and
// interrupts packages never import cpu back (spec.md §9 Design
// Notes) — the FrameRunner ticks the timer and PPU with the M-cycle
// count Step returns.
package cpu

import (
	"github.com/gogameboy/core/internal/bus"
	"github.com/gogameboy/core/internal/interrupts"
	"github.com/gogameboy/core/internal/types"
	"github.com/gogameboy/core/pkg/log"
)

// CPU executes SM83 machine code against a Bus.
type CPU struct {
	*Registers
	PC, SP uint16

	bus *bus.Bus
	irq *interrupts.Controller
	log log.Logger

	halted bool
	stopped bool

	cycles uint8 // M-cycles consumed by the instruction in progress
}

// SetLogger injects the Logger used for the unimplemented-opcode
// diagnostic (spec.md §7). Defaults to a no-op logger.
func (c *CPU) SetLogger(l log.Logger) { c.log = l }

// New constructs a CPU at the post-boot-ROM register state (spec.md
// §4.3), wired to bus for memory access and irq for interrupt
// dispatch. Callers using a boot ROM should instead leave registers
// zeroed and let the boot ROM itself initialize them, per real
// hardware; NewAtBootROM covers that case.
func New(b *bus.Bus, irq *interrupts.Controller) *CPU {
	c := &CPU{Registers: newRegisters(), bus: b, irq: irq, log: log.Null()}
	c.PC = 0x0100
	c.SP = 0xFFFE
	c.A, c.F = 0x01, 0xB0
	c.BC.SetUint16(0x0013)
	c.DE.SetUint16(0x00D8)
	c.HL.SetUint16(0x014D)
	return c
}

// NewAtBootROM constructs a CPU with PC at 0x0000 and all registers
// zeroed, letting the boot ROM's own code establish the post-boot
// register state before it hands off at 0x0100 (spec.md §4.1 boot ROM
// overlay, seed scenario 5 in spec.md §8).
func NewAtBootROM(b *bus.Bus, irq *interrupts.Controller) *CPU {
	return &CPU{Registers: newRegisters(), bus: b, irq: irq, log: log.Null()}
}

func (c *CPU) readByte(addr uint16) uint8 {
	c.cycles++
	return c.bus.Read(addr)
}

func (c *CPU) writeByte(addr uint16, v uint8) {
	c.cycles++
	c.bus.Write(addr, v)
	if addr == types.DMA {
		// OAM DMA is charged to the CPU as one lump of 160 M-cycles.
		c.cycles += 160
	}
}

func (c *CPU) fetch() uint8 {
	v := c.readByte(c.PC)
	c.PC++
	return v
}

func (c *CPU) fetch16() uint16 {
	lo := c.fetch()
	hi := c.fetch()
	return uint16(lo) | uint16(hi)<<8
}

// internalDelay charges one M-cycle for an internal operation with no
// bus access (16-bit ALU, some stack and jump instructions).
func (c *CPU) internalDelay() {
	c.cycles++
}

func (c *CPU) push16(v uint16) {
	c.SP--
	c.writeByte(c.SP, uint8(v>>8))
	c.SP--
	c.writeByte(c.SP, uint8(v))
}

func (c *CPU) pop16() uint16 {
	lo := c.readByte(c.SP)
	c.SP++
	hi := c.readByte(c.SP)
	c.SP++
	return uint16(lo) | uint16(hi)<<8
}

// Halted reports whether the CPU is in the HALT low-power state.
func (c *CPU) Halted() bool { return c.halted }

// Step executes exactly one instruction (or, if halted and no
// interrupt is pending, one cycle of idling) and returns the number of
// M-cycles it consumed. Interrupt dispatch, including waking from
// HALT, happens here before the next opcode is fetched (spec.md
// §4.3).
func (c *CPU) Step() uint8 {
	c.cycles = 0

	eiJustLatched := c.irq.Pending
	if eiJustLatched {
		c.irq.Pending = false
		c.irq.IME = true
	}

	if c.halted {
		if c.irq.Pending5() {
			c.halted = false
			if c.irq.IME {
				c.dispatchInterrupt()
				return c.cycles
			}
			// IME clear: CPU resumes without servicing the interrupt
			// (spec.md §4.3 HALT exit without dispatch).
		} else {
			c.internalDelay()
			return c.cycles
		}
	} else if !eiJustLatched && c.irq.Dispatchable() {
		// EI's IME enable is delayed exactly one instruction: the step
		// that consumes the latch always executes its opcode, even if
		// an interrupt is now dispatchable (spec.md §4.3).
		c.dispatchInterrupt()
		return c.cycles
	}

	opcode := c.fetch()
	if opcode == 0xCB {
		cb := c.fetch()
		InstructionSetCB[cb].fn(c)
	} else {
		InstructionSet[opcode].fn(c)
	}
	return c.cycles
}

// dispatchInterrupt pushes PC, jumps to the highest-priority pending
// vector, and clears IME. Costs 5 M-cycles on real hardware.
func (c *CPU) dispatchInterrupt() {
	vector, ok := c.irq.Vector()
	if !ok {
		return
	}
	c.irq.IME = false
	c.internalDelay()
	c.internalDelay()
	c.push16(c.PC)
	c.PC = vector
	c.internalDelay()
}

var _ types.Stater = (*CPU)(nil)

func (c *CPU) Save(s *types.State) {
	s.Write8(c.A)
	s.Write8(c.B)
	s.Write8(c.C)
	s.Write8(c.D)
	s.Write8(c.E)
	s.Write8(c.F)
	s.Write8(c.H)
	s.Write8(c.L)
	s.Write16(c.PC)
	s.Write16(c.SP)
	s.WriteBool(c.halted)
	s.WriteBool(c.stopped)
}

func (c *CPU) Load(s *types.State) {
	c.A = s.Read8()
	c.B = s.Read8()
	c.C = s.Read8()
	c.D = s.Read8()
	c.E = s.Read8()
	c.F = s.Read8()
	c.H = s.Read8()
	c.L = s.Read8()
	c.PC = s.Read16()
	c.SP = s.Read16()
	c.halted = s.ReadBool()
	c.stopped = s.ReadBool()
}
