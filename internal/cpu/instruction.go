package cpu

import "fmt"

// Instruction pairs a disassembly name (used only for the
// unimplemented-opcode diagnostic) with the closure that executes it.
// Built via defineInstruction/defineInstructionCB registration in
// init() into one dense array
// lookup per table (spec.md §9), built once.
type Instruction struct {
	name string
	fn   func(*CPU)
}

// InstructionSet and InstructionSetCB are the primary and
// 0xCB-prefixed dispatch tables; Step indexes directly into whichever
// one the fetched opcode selects.
var InstructionSet [256]Instruction
var InstructionSetCB [256]Instruction

func defineInstruction(opcode uint8, name string, fn func(*CPU)) {
	InstructionSet[opcode] = Instruction{name: name, fn: fn}
}

func defineInstructionCB(opcode uint8, name string, fn func(*CPU)) {
	InstructionSetCB[opcode] = Instruction{name: name, fn: fn}
}

// unimplementedOpcode panics with the PC and opcode, per spec.md §7:
// an unimplemented opcode is a fatal programmer error that should
// surface a diagnostic rather than silently corrupt state. It's only
// ever reached for the handful of SM83 opcodes the real hardware
// itself never defines.
func unimplementedOpcode(c *CPU) {
	opcode, pc := c.bus.Read(c.PC-1), c.PC-1
	c.log.Errorf("unimplemented opcode %#02x at PC=%#04x", opcode, pc)
	panic(fmt.Sprintf("cpu: unimplemented opcode %#02x at PC=%#04x", opcode, pc))
}

// undefinedOpcodes lists the primary-table byte values the SM83
// doesn't decode to anything (spec.md §7).
var undefinedOpcodes = []uint8{
	0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD,
}

func init() {
	for _, op := range undefinedOpcodes {
		defineInstruction(op, "undefined", unimplementedOpcode)
	}

	registerLoadInstructions()
	registerALUInstructions()
	registerALU16Instructions()
	registerStackInstructions()
	registerControlFlowInstructions()
	registerRotateShiftInstructions()
	registerBitInstructions()
	registerMiscInstructions()
}
