package state

import "time"

// SetNow replaces the holder's clock.
func SetNow(h *Holder, now func() time.Time) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.now = now
}
