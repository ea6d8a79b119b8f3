package renderer

import "sync"

// OverlayRegistry tracks overlay renderers by identifier so each identifier maps to exactly one
// overlay no matter how many times it is requested.
type OverlayRegistry struct {
	mu       sync.Mutex
	overlays map[string]Renderer
	order    []string
}

// NewOverlayRegistry creates an empty registry.
func NewOverlayRegistry() *OverlayRegistry {
	return &OverlayRegistry{overlays: make(map[string]Renderer)}
}

// Acquire returns the overlay registered under id, calling create to build and register it
// the first time.
//
// Parameters:
//   - id: the overlay identifier
//   - create: builds the overlay when none exists
//
// Returns:
//   - Renderer: the overlay for id
//   - bool: true if this call created the overlay
func (o *OverlayRegistry) Acquire(id string, create func() Renderer) (Renderer, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if r, ok := o.overlays[id]; ok {
		return r, false
	}
	r := create()
	o.overlays[id] = r
	o.order = append(o.order, id)
	return r, true
}

// Get returns the overlay registered under id.
func (o *OverlayRegistry) Get(id string) (Renderer, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	r, ok := o.overlays[id]
	return r, ok
}

// Len returns the number of registered overlays.
func (o *OverlayRegistry) Len() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.overlays)
}

// Overlays returns the registered overlays in registration order.
func (o *OverlayRegistry) Overlays() []Renderer {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]Renderer, 0, len(o.order))
	for _, id := range o.order {
		out = append(out, o.overlays[id])
	}
	return out
}
