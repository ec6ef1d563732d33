package cpu

// addSPSigned computes SP + sign-extended e8, used by both `add
// SP,e8` and `ld HL,SP+e8`. H/C are derived from SP's low byte XORed
// against the signed offset and the result (unsigned low-byte carry
// detection), matching canonical hardware behaviour rather than a
// signed 16-bit add (DESIGN.md Open Question decisions).
func (c *CPU) addSPSigned() uint16 {
	e8 := c.fetch()
	offset := uint16(int16(int8(e8)))
	result := c.SP + offset

	tmp := c.SP ^ offset ^ result
	c.setFlags(false, false, tmp&0x10 != 0, tmp&0x100 != 0)
	c.internalDelay()
	return result
}

// registerALU16Instructions wires inc/dec r16 (no flags, spec.md §4.3
// Increments/decrements), add HL,r16, and add SP,e8 (spec.md 16-bit
// additions).
func registerALU16Instructions() {
	pairs := map[r16]uint8{r16BC: 0x00, r16DE: 0x10, r16HL: 0x20, r16SP: 0x30}
	for reg, base := range pairs {
		rr := reg
		defineInstruction(base+0x03, "INC rr", func(c *CPU) {
			c.set16(rr, c.get16(rr)+1)
			c.internalDelay()
		})
		defineInstruction(base+0x0B, "DEC rr", func(c *CPU) {
			c.set16(rr, c.get16(rr)-1)
			c.internalDelay()
		})
		defineInstruction(base+0x09, "ADD HL,rr", func(c *CPU) {
			hl := c.HL.Uint16()
			operand := c.get16(rr)
			sum := uint32(hl) + uint32(operand)
			c.clearFlag(FlagSubtract)
			c.setFlagIf(FlagHalfCarry, (hl&0x0FFF)+(operand&0x0FFF) > 0x0FFF)
			c.setFlagIf(FlagCarry, sum > 0xFFFF)
			c.HL.SetUint16(uint16(sum))
			c.internalDelay()
		})
	}

	defineInstruction(0xE8, "ADD SP,e", func(c *CPU) {
		c.SP = c.addSPSigned()
		c.internalDelay()
	})
}
