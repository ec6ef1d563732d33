package cpu

// registerStackInstructions wires PUSH/POP for BC, DE, HL, AF
// (spec.md §4.3 Stack). POP AF forces F's low nibble to zero, handled
// in popPair.
func registerStackInstructions() {
	pairs := map[stackPair]uint8{stackBC: 0xC0, stackDE: 0xD0, stackHL: 0xE0, stackAF: 0xF0}
	for reg, base := range pairs {
		rr := reg
		defineInstruction(base+0x05, "PUSH rr", func(c *CPU) {
			c.internalDelay()
			c.pushPair(rr)
		})
		defineInstruction(base+0x01, "POP rr", func(c *CPU) {
			c.popPair(rr)
		})
	}
}
