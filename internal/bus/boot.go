package bus

// bootROM overlays the first 256 bytes of address space with the DMG
// boot ROM until the game writes a 1 to 0xFF50 (spec.md §4.1, seed
// scenario 5 in spec.md §8).
type bootROM struct {
	data   [256]byte
	active bool
}

func newBootROM(image []byte) *bootROM {
	b := &bootROM{active: true}
	copy(b.data[:], image)
	return b
}
