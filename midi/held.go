package midi

import (
	"sync"
	"time"

	"github.com/bep/debounce"
)

// Held tracks the keys down on a live input. Bursts of presses and
// releases are collapsed so onChange sees a chord once it has settled.
type Held struct {
	mu        sync.Mutex
	pressed   map[uint8]bool
	debounced func(f func())
	onChange  func(keys []uint8)
}

func NewHeld(wait time.Duration, onChange func(keys []uint8)) *Held {
	return &Held{
		pressed:   make(map[uint8]bool),
		debounced: debounce.New(wait),
		onChange:  onChange,
	}
}

func (h *Held) Press(key uint8) {
	h.mu.Lock()
	h.pressed[key] = true
	h.mu.Unlock()
	h.debounced(h.fire)
}

func (h *Held) Release(key uint8) {
	h.mu.Lock()
	delete(h.pressed, key)
	h.mu.Unlock()
	h.debounced(h.fire)
}

func (h *Held) Keys() []uint8 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return HeldKeys(h.pressed)
}

func (h *Held) fire() {
	h.onChange(h.Keys())
}
