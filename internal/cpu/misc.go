package cpu

// registerMiscInstructions wires NOP, STOP, HALT, DI, EI, CPL, SCF,
// CCF, and DAA (spec.md §4.3 Misc, DAA).
func registerMiscInstructions() {
	defineInstruction(0x00, "NOP", func(c *CPU) {})

	// STOP is a 2-byte opcode on real hardware (the second byte is
	// conventionally 0x00); with no joypad/serial wake source wired
	// (spec.md §1 Non-goals), there is nothing for it to stop waiting
	// on, so it's treated as a NOP for compatibility (spec.md §4.3
	// Misc allows this) rather than a dedicated low-power state.
	defineInstruction(0x10, "STOP", func(c *CPU) {
		c.fetch()
	})

	defineInstruction(0x76, "HALT", func(c *CPU) {
		c.halted = true
	})

	defineInstruction(0xF3, "DI", func(c *CPU) {
		c.irq.IME = false
		c.irq.Pending = false
	})
	defineInstruction(0xFB, "EI", func(c *CPU) {
		c.irq.Pending = true
	})

	defineInstruction(0x2F, "CPL", func(c *CPU) {
		c.A = ^c.A
		c.setFlag(FlagSubtract)
		c.setFlag(FlagHalfCarry)
	})
	defineInstruction(0x37, "SCF", func(c *CPU) {
		c.setFlag(FlagCarry)
		c.clearFlag(FlagSubtract)
		c.clearFlag(FlagHalfCarry)
	})
	defineInstruction(0x3F, "CCF", func(c *CPU) {
		c.setFlagIf(FlagCarry, !c.isFlagSet(FlagCarry))
		c.clearFlag(FlagSubtract)
		c.clearFlag(FlagHalfCarry)
	})

	// DAA: adjusts A after BCD arithmetic (spec.md §4.3 DAA), resolved
	// against original_source/core/.../CPU.java's daa() per DESIGN.md.
	defineInstruction(0x27, "DAA", func(c *CPU) {
		adjust := uint8(0)
		carry := c.isFlagSet(FlagCarry)

		if !c.isFlagSet(FlagSubtract) {
			if c.isFlagSet(FlagHalfCarry) || c.A&0x0F > 0x09 {
				adjust |= 0x06
			}
			if carry || c.A > 0x99 {
				adjust |= 0x60
				carry = true
			}
			c.A += adjust
		} else {
			if c.isFlagSet(FlagHalfCarry) {
				adjust |= 0x06
			}
			if carry {
				adjust |= 0x60
			}
			c.A -= adjust
		}

		c.setFlagIf(FlagZero, c.A == 0)
		c.clearFlag(FlagHalfCarry)
		c.setFlagIf(FlagCarry, carry)
	})
}
