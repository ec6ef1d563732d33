package cpu

// add8 implements ADD/ADC against A (spec.md §4.3 Arithmetic 8-bit).
// carryIn is the C flag's value when withCarry is true, 0 otherwise.
func (c *CPU) add8(operand uint8, withCarry bool) {
	var carryIn uint8
	if withCarry && c.isFlagSet(FlagCarry) {
		carryIn = 1
	}
	sum := uint16(c.A) + uint16(operand) + uint16(carryIn)
	half := (c.A & 0x0F) + (operand & 0x0F) + carryIn
	result := uint8(sum)
	c.setFlags(result == 0, false, half > 0x0F, sum > 0xFF)
	c.A = result
}

// sub8 implements SUB/SBC against A. When cmpOnly is true (CP), A is
// left unmodified.
func (c *CPU) sub8(operand uint8, withCarry, cmpOnly bool) {
	var carryIn uint8
	if withCarry && c.isFlagSet(FlagCarry) {
		carryIn = 1
	}
	diff := int16(c.A) - int16(operand) - int16(carryIn)
	half := int16(c.A&0x0F) - int16(operand&0x0F) - int16(carryIn)
	result := uint8(diff)
	c.setFlags(result == 0, true, half < 0, diff < 0)
	if !cmpOnly {
		c.A = result
	}
}

func (c *CPU) and8(operand uint8) {
	c.A &= operand
	c.setFlags(c.A == 0, false, true, false)
}

func (c *CPU) or8(operand uint8) {
	c.A |= operand
	c.setFlags(c.A == 0, false, false, false)
}

func (c *CPU) xor8(operand uint8) {
	c.A ^= operand
	c.setFlags(c.A == 0, false, false, false)
}

// inc8 implements INC r8/INC (HL): C is left untouched (spec.md §4.3
// Increments/decrements).
func (c *CPU) inc8(n uint8) uint8 {
	result := n + 1
	c.setFlagIf(FlagZero, result == 0)
	c.clearFlag(FlagSubtract)
	c.setFlagIf(FlagHalfCarry, n&0x0F == 0x0F)
	return result
}

func (c *CPU) dec8(n uint8) uint8 {
	result := n - 1
	c.setFlagIf(FlagZero, result == 0)
	c.setFlag(FlagSubtract)
	c.setFlagIf(FlagHalfCarry, n&0x0F == 0x00)
	return result
}

// registerALUInstructions wires add/adc/sub/sbc/and/xor/or/cp against
// A (r8, (HL), and n8 forms) plus inc/dec over the same r8 space
// (spec.md §4.3 Arithmetic 8-bit, Increments/decrements).
func registerALUInstructions() {
	type aluOp struct {
		name string
		fn   func(c *CPU, operand uint8)
	}
	ops := [8]aluOp{
		{"ADD", func(c *CPU, n uint8) { c.add8(n, false) }},
		{"ADC", func(c *CPU, n uint8) { c.add8(n, true) }},
		{"SUB", func(c *CPU, n uint8) { c.sub8(n, false, false) }},
		{"SBC", func(c *CPU, n uint8) { c.sub8(n, true, false) }},
		{"AND", func(c *CPU, n uint8) { c.and8(n) }},
		{"XOR", func(c *CPU, n uint8) { c.xor8(n) }},
		{"OR", func(c *CPU, n uint8) { c.or8(n) }},
		{"CP", func(c *CPU, n uint8) { c.sub8(n, false, true) }},
	}

	for i, op := range ops {
		opFn := op.fn
		for src := r8(0); src < 8; src++ {
			opcode := 0x80 + uint8(i)*8 + uint8(src)
			s := src
			defineInstruction(opcode, op.name+" A,r", func(c *CPU) {
				opFn(c, c.get8(s))
			})
		}
		immOpcode := 0xC6 + uint8(i)*8
		defineInstruction(immOpcode, op.name+" A,n", func(c *CPU) {
			opFn(c, c.fetch())
		})
	}

	for reg := r8(0); reg < 8; reg++ {
		r := reg
		defineInstruction(0x04+uint8(r)*8, "INC r", func(c *CPU) {
			c.set8(r, c.inc8(c.get8(r)))
		})
		defineInstruction(0x05+uint8(r)*8, "DEC r", func(c *CPU) {
			c.set8(r, c.dec8(c.get8(r)))
		})
	}
}
