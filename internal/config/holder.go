package config

import "sync"

// Holder provides thread-safe, lazily initialized access to the resolved
// Settings. The first Get triggers resolution and caches the result;
// later calls return the cached instance without touching disk.
// Invalidate clears the cache so the next Get re-resolves, and Reload
// swaps in a freshly resolved instance rather than mutating the cached
// one in place.
type Holder struct {
	mu  sync.Mutex
	cur *Settings
}

// NewHolder creates an empty Holder. Resolution happens on first Get.
func NewHolder() *Holder {
	return &Holder{}
}

// Get returns the cached Settings, resolving them first if needed.
func (h *Holder) Get() (*Settings, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.cur == nil {
		s, err := Load()
		if err != nil {
			return nil, err
		}
		h.cur = s
	}
	return h.cur, nil
}

// Reload resolves a fresh Settings instance from scratch and makes it
// the cached value. On failure the previous instance stays cached.
func (h *Holder) Reload() (*Settings, error) {
	s, err := Load()
	if err != nil {
		return nil, err
	}

	h.mu.Lock()
	h.cur = s
	h.mu.Unlock()
	return s, nil
}

// Invalidate clears the cache so the next Get re-resolves from disk and
// environment.
func (h *Holder) Invalidate() {
	h.mu.Lock()
	h.cur = nil
	h.mu.Unlock()
}
