package cpu

// registerControlFlowInstructions wires JP/JR/CALL/RET/RETI/RST
// (spec.md §4.3 Control flow). Conditional forms always read their
// operand (so PC advances past it regardless of the branch outcome)
// and pay the extra M-cycle only when the branch is taken.
func registerControlFlowInstructions() {
	defineInstruction(0xC3, "JP nn", func(c *CPU) {
		addr := c.fetch16()
		c.PC = addr
		c.internalDelay()
	})
	defineInstruction(0xE9, "JP HL", func(c *CPU) {
		c.PC = c.HL.Uint16()
	})

	jpConds := map[uint8]cond{0xC2: condNZ, 0xCA: condZ, 0xD2: condNC, 0xDA: condC}
	for opcode, cc := range jpConds {
		condition := cc
		defineInstruction(opcode, "JP cc,nn", func(c *CPU) {
			addr := c.fetch16()
			if c.condTrue(condition) {
				c.PC = addr
				c.internalDelay()
			}
		})
	}

	defineInstruction(0x18, "JR e", func(c *CPU) {
		offset := int8(c.fetch())
		c.PC = uint16(int32(c.PC) + int32(offset))
		c.internalDelay()
	})
	jrConds := map[uint8]cond{0x20: condNZ, 0x28: condZ, 0x30: condNC, 0x38: condC}
	for opcode, cc := range jrConds {
		condition := cc
		defineInstruction(opcode, "JR cc,e", func(c *CPU) {
			offset := int8(c.fetch())
			if c.condTrue(condition) {
				c.PC = uint16(int32(c.PC) + int32(offset))
				c.internalDelay()
			}
		})
	}

	defineInstruction(0xCD, "CALL nn", func(c *CPU) {
		addr := c.fetch16()
		c.internalDelay()
		c.push16(c.PC)
		c.PC = addr
	})
	callConds := map[uint8]cond{0xC4: condNZ, 0xCC: condZ, 0xD4: condNC, 0xDC: condC}
	for opcode, cc := range callConds {
		condition := cc
		defineInstruction(opcode, "CALL cc,nn", func(c *CPU) {
			addr := c.fetch16()
			if c.condTrue(condition) {
				c.internalDelay()
				c.push16(c.PC)
				c.PC = addr
			}
		})
	}

	defineInstruction(0xC9, "RET", func(c *CPU) {
		c.PC = c.pop16()
		c.internalDelay()
	})
	defineInstruction(0xD9, "RETI", func(c *CPU) {
		c.PC = c.pop16()
		c.internalDelay()
		c.irq.IME = true
	})
	retConds := map[uint8]cond{0xC0: condNZ, 0xC8: condZ, 0xD0: condNC, 0xD8: condC}
	for opcode, cc := range retConds {
		condition := cc
		defineInstruction(opcode, "RET cc", func(c *CPU) {
			c.internalDelay()
			if c.condTrue(condition) {
				c.PC = c.pop16()
				c.internalDelay()
			}
		})
	}

	for i := uint8(0); i < 8; i++ {
		vector := uint16(i) * 8
		defineInstruction(0xC7+i*8, "RST n", func(c *CPU) {
			c.internalDelay()
			c.push16(c.PC)
			c.PC = vector
		})
	}
}
