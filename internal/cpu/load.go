package cpu

// registerLoadInstructions wires every LD/LDH variant (spec.md §4.3
// Loads). The 0x40-0x7F grid (ld r8,r8 / ld r8,(HL) / ld (HL),r8) is
// generated from the r8 enum rather than hand-enumerated, keyed off
// the tagged enum instead of a register-name map.
func registerLoadInstructions() {
	for dst := r8(0); dst < 8; dst++ {
		for src := r8(0); src < 8; src++ {
			opcode := 0x40 + uint8(dst)*8 + uint8(src)
			if dst == r8HL && src == r8HL {
				continue // 0x76 is HALT, not LD (HL),(HL)
			}
			d, s := dst, src
			defineInstruction(opcode, "LD r,r'", func(c *CPU) {
				c.set8(d, c.get8(s))
			})
		}
	}

	// ld r8,n8 — one per non-(HL) register plus ld (HL),n8.
	ld8Immediate := map[uint8]r8{
		0x06: r8B, 0x0E: r8C, 0x16: r8D, 0x1E: r8E,
		0x26: r8H, 0x2E: r8L, 0x36: r8HL, 0x3E: r8A,
	}
	for opcode, reg := range ld8Immediate {
		dst := reg
		defineInstruction(opcode, "LD r,n", func(c *CPU) {
			c.set8(dst, c.fetch())
		})
	}

	// ld r16,n16
	ld16Immediate := map[uint8]r16{0x01: r16BC, 0x11: r16DE, 0x21: r16HL, 0x31: r16SP}
	for opcode, reg := range ld16Immediate {
		dst := reg
		defineInstruction(opcode, "LD rr,nn", func(c *CPU) {
			c.set16(dst, c.fetch16())
		})
	}

	defineInstruction(0x02, "LD (BC),A", func(c *CPU) { c.writeByte(c.BC.Uint16(), c.A) })
	defineInstruction(0x12, "LD (DE),A", func(c *CPU) { c.writeByte(c.DE.Uint16(), c.A) })
	defineInstruction(0x0A, "LD A,(BC)", func(c *CPU) { c.A = c.readByte(c.BC.Uint16()) })
	defineInstruction(0x1A, "LD A,(DE)", func(c *CPU) { c.A = c.readByte(c.DE.Uint16()) })

	defineInstruction(0x22, "LD (HL+),A", func(c *CPU) {
		hl := c.HL.Uint16()
		c.writeByte(hl, c.A)
		c.HL.SetUint16(hl + 1)
	})
	defineInstruction(0x32, "LD (HL-),A", func(c *CPU) {
		hl := c.HL.Uint16()
		c.writeByte(hl, c.A)
		c.HL.SetUint16(hl - 1)
	})
	defineInstruction(0x2A, "LD A,(HL+)", func(c *CPU) {
		hl := c.HL.Uint16()
		c.A = c.readByte(hl)
		c.HL.SetUint16(hl + 1)
	})
	defineInstruction(0x3A, "LD A,(HL-)", func(c *CPU) {
		hl := c.HL.Uint16()
		c.A = c.readByte(hl)
		c.HL.SetUint16(hl - 1)
	})

	defineInstruction(0x08, "LD (nn),SP", func(c *CPU) {
		addr := c.fetch16()
		c.writeByte(addr, uint8(c.SP))
		c.writeByte(addr+1, uint8(c.SP>>8))
	})

	defineInstruction(0xEA, "LD (nn),A", func(c *CPU) {
		addr := c.fetch16()
		c.writeByte(addr, c.A)
	})
	defineInstruction(0xFA, "LD A,(nn)", func(c *CPU) {
		addr := c.fetch16()
		c.A = c.readByte(addr)
	})

	defineInstruction(0xE0, "LDH (n),A", func(c *CPU) {
		c.writeByte(0xFF00|uint16(c.fetch()), c.A)
	})
	defineInstruction(0xF0, "LDH A,(n)", func(c *CPU) {
		c.A = c.readByte(0xFF00 | uint16(c.fetch()))
	})
	defineInstruction(0xE2, "LDH (C),A", func(c *CPU) {
		c.writeByte(0xFF00|uint16(c.C), c.A)
	})
	defineInstruction(0xF2, "LDH A,(C)", func(c *CPU) {
		c.A = c.readByte(0xFF00 | uint16(c.C))
	})

	defineInstruction(0xF9, "LD SP,HL", func(c *CPU) {
		c.SP = c.HL.Uint16()
		c.internalDelay()
	})
	defineInstruction(0xF8, "LD HL,SP+e", func(c *CPU) {
		c.HL.SetUint16(c.addSPSigned())
	})
}
