package gameboy

import "github.com/gogameboy/core/pkg/log"

// Option configures a GameBoy at construction time, mirroring the
// teacher's functional-options gameboy.Opt pattern (spec.md §2
// expansion, grounded on
// thelolagemann-gomeboy/internal/gameboy/options.go). The core takes
// no CLI flags — the front-end is out of scope (spec.md §1) — so
// there is nothing here for a flag-parsing library to do; options
// cover boot ROM bytes, cartridge RAM preload, and logger injection.
type Option interface {
	apply(*GameBoy)
}

type optionFunc func(*GameBoy)

func (f optionFunc) apply(g *GameBoy) { f(g) }

// WithBootROM overlays image (256 bytes) over cartridge addresses
// 0x0000-0x00FF until the game writes 1 to 0xFF50 (spec.md §4.1 boot
// ROM overlay). Without this option the GameBoy starts directly at
// the post-boot register state spec.md §4.3 documents.
func WithBootROM(image []byte) Option {
	return optionFunc(func(g *GameBoy) {
		g.bootROM = image
	})
}

// WithCartridgeRAM preloads the cartridge's external RAM from a prior
// save, e.g. a battery-backed .sav file the host read off disk —
// reading that file is the host's job, not the core's (spec.md §1).
func WithCartridgeRAM(data []byte) Option {
	return optionFunc(func(g *GameBoy) {
		g.ramPreload = data
	})
}

// WithLogger injects a Logger for the diagnostics the core itself
// raises (unimplemented opcode, boot overlay teardown). An
// unimplemented MBC is returned as an error from New, not logged.
// Without this option diagnostics are discarded.
func WithLogger(l log.Logger) Option {
	return optionFunc(func(g *GameBoy) {
		g.log = l
	})
}
