package ppu

import "github.com/gogameboy/core/internal/types"

var _ types.Stater = (*PPU)(nil)

func (p *PPU) Save(s *types.State) {
	s.Write8(p.lcdc)
	s.Write8(p.stat)
	s.Write8(p.scy)
	s.Write8(p.scx)
	s.Write8(p.ly)
	s.Write8(p.lyc)
	s.Write8(p.wy)
	s.Write8(p.wx)
	s.Write8(p.bgp)
	s.Write8(p.obp0)
	s.Write8(p.obp1)
	s.Write8(uint8(p.mode))
	s.Write8(p.windowLine)
}

func (p *PPU) Load(s *types.State) {
	p.lcdc = s.Read8()
	p.stat = s.Read8()
	p.scy = s.Read8()
	p.scx = s.Read8()
	p.ly = s.Read8()
	p.lyc = s.Read8()
	p.wy = s.Read8()
	p.wx = s.Read8()
	p.bgp = s.Read8()
	p.obp0 = s.Read8()
	p.obp1 = s.Read8()
	p.mode = Mode(s.Read8())
	p.windowLine = s.Read8()
}
