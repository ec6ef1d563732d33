package gameboy

import (
	"bytes"
	"fmt"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/cespare/xxhash"

	"github.com/gogameboy/core/internal/types"
)

// SaveState serializes every Stater component in a fixed walk order —
// CPU, Bus, Timer, InterruptController, Cartridge RAM, PPU (spec.md
// §4.8) — and returns an 8-byte xxhash checksum of the serialized
// bytes followed by their brotli compression. Host code is expected to
// persist this blob verbatim (e.g. to a save slot alongside the
// cartridge's battery RAM, spec.md §1).
func (g *GameBoy) SaveState() ([]byte, error) {
	s := types.NewState()
	g.CPU.Save(s)
	g.Bus.Save(s)
	g.Timer.Save(s)
	g.Interrupts.Save(s)
	g.Cart.MBC.Save(s)
	g.Bus.PPU().Save(s)

	raw := s.Bytes()
	sum := xxhash.Sum64(raw)

	var compressed bytes.Buffer
	w := brotli.NewWriter(&compressed)
	if _, err := w.Write(raw); err != nil {
		return nil, fmt.Errorf("gameboy: compress save state: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("gameboy: compress save state: %w", err)
	}

	out := make([]byte, 8, 8+compressed.Len())
	for i := 0; i < 8; i++ {
		out[i] = byte(sum >> (8 * i))
	}
	out = append(out, compressed.Bytes()...)
	return out, nil
}

// LoadState verifies blob's checksum, decompresses the payload, and
// restores every component SaveState walked, in the same order (spec.md
// §4.8). It returns an error without mutating any component if the
// checksum doesn't match or decompression fails.
func (g *GameBoy) LoadState(blob []byte) error {
	if len(blob) < 8 {
		return fmt.Errorf("gameboy: save state too short (%d bytes)", len(blob))
	}

	var want uint64
	for i := 0; i < 8; i++ {
		want |= uint64(blob[i]) << (8 * i)
	}

	r := brotli.NewReader(bytes.NewReader(blob[8:]))
	raw, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("gameboy: decompress save state: %w", err)
	}

	if got := xxhash.Sum64(raw); got != want {
		return fmt.Errorf("gameboy: save state checksum mismatch: got %#016x, want %#016x", got, want)
	}

	s := types.StateFromBytes(raw)
	g.CPU.Load(s)
	g.Bus.Load(s)
	g.Timer.Load(s)
	g.Interrupts.Load(s)
	g.Cart.MBC.Load(s)
	g.Bus.PPU().Load(s)
	return nil
}
