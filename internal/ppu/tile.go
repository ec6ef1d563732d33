package ppu

// decodeRow decodes one 8-pixel row of a 2bpp tile into eight 2-bit
// colour indices (0-3), low bit plane and high bit plane packed one
// byte each, MSB is the leftmost pixel (spec.md §3).
func decodeRow(lo, hi uint8) [8]uint8 {
	var row [8]uint8
	for x := 0; x < 8; x++ {
		bit := uint8(7 - x)
		l := (lo >> bit) & 1
		h := (hi >> bit) & 1
		row[x] = l | h<<1
	}
	return row
}

// tileDataAddr resolves the VRAM address of the tile-data row (lo byte;
// hi byte is at +1) for tile index idx, row within the tile, using the
// addressing mode selected by LCDC bit 4. unsignedMode selects the
// 0x8000 unsigned block; otherwise idx is interpreted as signed and
// based at 0x9000 (spec.md §4.4).
func tileDataAddr(idx uint8, row uint8, unsignedMode bool) uint16 {
	var base uint16
	if unsignedMode {
		base = 0x8000 + uint16(idx)*16
	} else {
		base = uint16(0x9000 + int(int8(idx))*16)
	}
	return base + uint16(row)*2
}

// tileMapAddr resolves the VRAM address of the tile index byte for
// tile-map column/row, given the tile-map base selected by an LCDC bit
// (0x9800 when clear, 0x9C00 when set).
func tileMapAddr(high bool, col, row uint8) uint16 {
	base := uint16(0x9800)
	if high {
		base = 0x9C00
	}
	return base + uint16(row)*32 + uint16(col)
}
