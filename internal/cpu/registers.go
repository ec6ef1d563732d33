package cpu

// Register holds an 8-bit value: one of A, B, C, D, E, H, L, or F.
type Register = uint8

// RegisterPair views two Registers as a single 16-bit value, high byte
// first (spec.md §3).
type RegisterPair struct {
	High *Register
	Low  *Register
}

// Uint16 returns the pair's combined value.
func (r *RegisterPair) Uint16() uint16 {
	return uint16(*r.High)<<8 | uint16(*r.Low)
}

// SetUint16 sets the pair from a combined 16-bit value.
func (r *RegisterPair) SetUint16(v uint16) {
	*r.High = uint8(v >> 8)
	*r.Low = uint8(v)
}

// Registers holds the eight 8-bit registers plus the four register
// pairs viewing them (spec.md §3). F's low nibble is always zero; the
// flag helpers in flags.go are responsible for that invariant.
type Registers struct {
	A, B, C, D, E, F, H, L Register

	AF, BC, DE, HL *RegisterPair
}

// newRegisters wires the four pairs onto the eight underlying fields.
// It returns a pointer so the pairs keep pointing at the fields the CPU
// actually uses.
func newRegisters() *Registers {
	r := &Registers{}
	r.AF = &RegisterPair{&r.A, &r.F}
	r.BC = &RegisterPair{&r.B, &r.C}
	r.DE = &RegisterPair{&r.D, &r.E}
	r.HL = &RegisterPair{&r.H, &r.L}
	return r
}
