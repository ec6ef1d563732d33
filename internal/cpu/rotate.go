package cpu

// rotateLeftCarry rotates n left one bit; bit 7 goes to both C and
// bit 0 (spec.md §4.3 Rotates/shifts, RLC).
func rotateLeftCarry(n uint8) (result uint8, carryOut bool) {
	carryOut = n&0x80 != 0
	result = n << 1
	if carryOut {
		result |= 0x01
	}
	return
}

// rotateRightCarry rotates n right one bit; bit 0 goes to both C and
// bit 7 (RRC).
func rotateRightCarry(n uint8) (result uint8, carryOut bool) {
	carryOut = n&0x01 != 0
	result = n >> 1
	if carryOut {
		result |= 0x80
	}
	return
}

// rotateLeftThroughCarry rotates n left one bit through C: C feeds
// bit 0, bit 7 feeds the new C (RL).
func (c *CPU) rotateLeftThroughCarry(n uint8) (result uint8, carryOut bool) {
	carryOut = n&0x80 != 0
	result = n << 1
	if c.isFlagSet(FlagCarry) {
		result |= 0x01
	}
	return
}

// rotateRightThroughCarry rotates n right one bit through C (RR).
func (c *CPU) rotateRightThroughCarry(n uint8) (result uint8, carryOut bool) {
	carryOut = n&0x01 != 0
	result = n >> 1
	if c.isFlagSet(FlagCarry) {
		result |= 0x80
	}
	return
}

func shiftLeftArithmetic(n uint8) (result uint8, carryOut bool) {
	return n << 1, n&0x80 != 0
}

// shiftRightArithmetic preserves bit 7 (SRA).
func shiftRightArithmetic(n uint8) (result uint8, carryOut bool) {
	return n>>1 | n&0x80, n&0x01 != 0
}

func shiftRightLogical(n uint8) (result uint8, carryOut bool) {
	return n >> 1, n&0x01 != 0
}

func swapNibbles(n uint8) uint8 {
	return n<<4 | n>>4
}

// registerRotateShiftInstructions wires the four A-specific
// non-prefixed rotates (RLCA/RRCA/RLA/RRA, always Z=0 per spec.md
// §4.3) and the eight CB-prefixed rotate/shift/swap groups over the
// full r8 operand space.
func registerRotateShiftInstructions() {
	defineInstruction(0x07, "RLCA", func(c *CPU) {
		result, carry := rotateLeftCarry(c.A)
		c.A = result
		c.setFlags(false, false, false, carry)
	})
	defineInstruction(0x0F, "RRCA", func(c *CPU) {
		result, carry := rotateRightCarry(c.A)
		c.A = result
		c.setFlags(false, false, false, carry)
	})
	defineInstruction(0x17, "RLA", func(c *CPU) {
		result, carry := c.rotateLeftThroughCarry(c.A)
		c.A = result
		c.setFlags(false, false, false, carry)
	})
	defineInstruction(0x1F, "RRA", func(c *CPU) {
		result, carry := c.rotateRightThroughCarry(c.A)
		c.A = result
		c.setFlags(false, false, false, carry)
	})

	type cbOp struct {
		name string
		fn   func(c *CPU, n uint8) (uint8, bool)
	}
	ops := [8]cbOp{
		{"RLC", func(c *CPU, n uint8) (uint8, bool) { return rotateLeftCarry(n) }},
		{"RRC", func(c *CPU, n uint8) (uint8, bool) { return rotateRightCarry(n) }},
		{"RL", func(c *CPU, n uint8) (uint8, bool) { return c.rotateLeftThroughCarry(n) }},
		{"RR", func(c *CPU, n uint8) (uint8, bool) { return c.rotateRightThroughCarry(n) }},
		{"SLA", func(c *CPU, n uint8) (uint8, bool) { return shiftLeftArithmetic(n) }},
		{"SRA", func(c *CPU, n uint8) (uint8, bool) { return shiftRightArithmetic(n) }},
		{"SWAP", func(c *CPU, n uint8) (uint8, bool) { return swapNibbles(n), false }},
		{"SRL", func(c *CPU, n uint8) (uint8, bool) { return shiftRightLogical(n) }},
	}

	for i, op := range ops {
		opFn := op.fn
		for reg := r8(0); reg < 8; reg++ {
			opcode := uint8(i)*8 + uint8(reg)
			r := reg
			defineInstructionCB(opcode, op.name+" r", func(c *CPU) {
				result, carry := opFn(c, c.get8(r))
				c.set8(r, result)
				c.setFlags(result == 0, false, false, carry)
			})
		}
	}
}
