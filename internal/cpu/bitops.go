package cpu

// registerBitInstructions wires the CB-prefixed BIT/RES/SET group
// (spec.md §4.3 Bit ops): BIT only reads flags, RES/SET only write
// the register.
func registerBitInstructions() {
	for bit := uint8(0); bit < 8; bit++ {
		for reg := r8(0); reg < 8; reg++ {
			b, r := bit, reg
			mask := uint8(1) << b

			defineInstructionCB(0x40+b*8+uint8(r), "BIT n,r", func(c *CPU) {
				c.setFlagIf(FlagZero, c.get8(r)&mask == 0)
				c.clearFlag(FlagSubtract)
				c.setFlag(FlagHalfCarry)
			})
			defineInstructionCB(0x80+b*8+uint8(r), "RES n,r", func(c *CPU) {
				c.set8(r, c.get8(r)&^mask)
			})
			defineInstructionCB(0xC0+b*8+uint8(r), "SET n,r", func(c *CPU) {
				c.set8(r, c.get8(r)|mask)
			})
		}
	}
}
