package main

import (
	"time"

	"layerkit/internal/config"
)

// framePacer provides high-precision frame rate limiting using a hybrid
// sleep/spin approach for better precision on high FPS caps.
type framePacer struct {
	next time.Time
}

func newFramePacer() *framePacer {
	return &framePacer{}
}

// Wait blocks until the next frame should start, per config.GetFPSLimit.
func (f *framePacer) Wait() {
	limit := config.GetFPSLimit()
	if limit <= 0 {
		f.next = time.Time{}
		return
	}

	target := time.Second / time.Duration(limit)

	if f.next.IsZero() {
		f.next = time.Now().Add(target)
	} else {
		f.next = f.next.Add(target)
	}

	for {
		remaining := time.Until(f.next)
		if remaining <= 0 {
			break
		}
		if remaining > 200*time.Microsecond {
			time.Sleep(remaining - 200*time.Microsecond)
		}
		// busy-wait for the final few microseconds
		if time.Until(f.next) <= 0 {
			break
		}
	}

	// If we're significantly late (e.g., hitch), resync to avoid drift
	if late := -time.Until(f.next); late > target {
		f.next = time.Now().Add(target)
	}
}
