package ppu

// Apply maps a 2-bit colour index through a palette byte (BGP, OBP0,
// or OBP1) to the 2-bit shade the hardware would display. Presentation
// (turning a shade into an actual colour) is out of scope (spec.md §1)
// — the core's framebuffer stops at these 2-bit shades.
func Apply(paletteByte uint8, index uint8) uint8 {
	return (paletteByte >> (index * 2)) & 0x03
}
