package ppu

// Object is one OAM entry (4 bytes: Y, X, tile index, attributes),
// spec.md §3.
type Object struct {
	Y, X    uint8
	Tile    uint8
	Attrs   uint8
	oamIdx  uint8 // original OAM index, for priority tie-breaking
}

func (o Object) priority() bool   { return o.Attrs&0x80 != 0 } // bit 7: BG/Win over OBJ
func (o Object) yFlip() bool      { return o.Attrs&0x40 != 0 }
func (o Object) xFlip() bool      { return o.Attrs&0x20 != 0 }
func (o Object) dmgPalette() int  { return int((o.Attrs >> 4) & 0x01) } // 0=OBP0, 1=OBP1

// SpriteCount reports how many sprites scanObjects would select for
// scanline ly, for the FrameRunner's Drawing-phase dot-budget
// calculation (spec.md §4.4/§4.5).
func SpriteCount(oam []byte, ly uint8, tall bool) int {
	return len(scanObjects(oam, ly, tall))
}

// scanObjects scans oam (160 bytes, 40 entries of 4 bytes) for sprites
// visible on scanline ly, in OAM order, capped at 10 (spec.md §4.4).
// tall is true when LCDC bit 2 selects 8x16 sprites.
func scanObjects(oam []byte, ly uint8, tall bool) []Object {
	height := uint8(8)
	if tall {
		height = 16
	}

	var found []Object
	for i := 0; i < 40 && len(found) < 10; i++ {
		base := i * 4
		y := int(oam[base]) - 16
		x := oam[base+1]
		if int(ly) < y || int(ly) >= y+int(height) {
			continue
		}
		found = append(found, Object{
			Y:      oam[base],
			X:      x,
			Tile:   oam[base+2],
			Attrs:  oam[base+3],
			oamIdx: uint8(i),
		})
	}
	return found
}
