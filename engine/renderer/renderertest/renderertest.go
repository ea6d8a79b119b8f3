// Package renderertest provides in-memory Backend and Surface implementations for tests that
// exercise renderers without a GPU.
package renderertest

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-viewcube/engine/renderer"
)

// Backend records every call made by renderers sharing it.
type Backend struct {
	mu sync.Mutex

	width, height int

	// Configures lists every accepted Configure size in call order.
	Configures [][2]int

	// Passes lists every drawn pass since the last Reset.
	Passes []renderer.Pass

	// Presents counts Present calls that followed at least one Draw.
	Presents int

	// Released is set by Release.
	Released bool

	drawn bool
}

var _ renderer.Backend = &Backend{}

// NewBackend creates a Backend that reports the given physical size before its first Configure.
func NewBackend(width, height int) *Backend {
	return &Backend{width: width, height: height}
}

func (b *Backend) Configure(width, height int) error {
	if width <= 0 || height <= 0 {
		return nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.width, b.height = width, height
	b.Configures = append(b.Configures, [2]int{width, height})
	return nil
}

func (b *Backend) Size() (width, height int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.width, b.height
}

func (b *Backend) Draw(pass renderer.Pass) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Passes = append(b.Passes, pass)
	b.drawn = true
	return nil
}

func (b *Backend) Present() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.drawn {
		b.Presents++
		b.drawn = false
	}
}

func (b *Backend) Release() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Released = true
}

// Labels returns the labels of the recorded passes in draw order.
func (b *Backend) Labels() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.Passes))
	for i, p := range b.Passes {
		out[i] = p.Label
	}
	return out
}

// Reset forgets recorded passes.
func (b *Backend) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Passes = nil
}

// Surface is a fixed-size renderer.Surface.
type Surface struct {
	W, H  int
	Ratio float32
}

var _ renderer.Surface = &Surface{}

func (s *Surface) Width() int          { return s.W }
func (s *Surface) Height() int         { return s.H }
func (s *Surface) PixelRatio() float32 { return s.Ratio }
