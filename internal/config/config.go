// Package config holds pipeline tuning knobs, with optional overrides
// from a TOML file.
package config

import (
	"fmt"
	"os"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
)

// Settings are the tunable values of the layer pipeline.
type Settings struct {
	// LayerPoolCapacity is the number of layer sizes the recycle pool
	// keeps before evicting.
	LayerPoolCapacity int `toml:"layer_pool_capacity"`
	// MaxLayerSize caps a layer's declared width and height.
	MaxLayerSize int `toml:"max_layer_size"`
	// FPSLimit caps the demo loop's frame rate; <= 0 disables the cap.
	FPSLimit int `toml:"fps_limit"`
	// DebugOverlay enables the per-frame profiling log line.
	DebugOverlay bool `toml:"debug_overlay"`
}

var (
	mu      sync.RWMutex
	current = defaults()
)

func defaults() Settings {
	return Settings{
		LayerPoolCapacity: 16,
		MaxLayerSize:      8192,
		FPSLimit:          120,
		DebugOverlay:      false,
	}
}

// Get returns a copy of the current settings.
func Get() Settings {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// GetLayerPoolCapacity returns the current layer pool capacity.
func GetLayerPoolCapacity() int {
	mu.RLock()
	defer mu.RUnlock()
	return current.LayerPoolCapacity
}

// SetLayerPoolCapacity sets the layer pool capacity.
func SetLayerPoolCapacity(n int) {
	mu.Lock()
	defer mu.Unlock()

	// Clamp to reasonable values
	if n < 1 {
		n = 1
	}
	if n > 256 {
		n = 256
	}
	current.LayerPoolCapacity = n
}

// GetMaxLayerSize returns the maximum layer dimension in pixels.
func GetMaxLayerSize() int {
	mu.RLock()
	defer mu.RUnlock()
	return current.MaxLayerSize
}

// SetMaxLayerSize sets the maximum layer dimension in pixels.
func SetMaxLayerSize(n int) {
	mu.Lock()
	defer mu.Unlock()

	if n < 1 {
		n = 1
	}
	if n > 16384 {
		n = 16384
	}
	current.MaxLayerSize = n
}

// GetFPSLimit returns the frame rate cap.
func GetFPSLimit() int {
	mu.RLock()
	defer mu.RUnlock()
	return current.FPSLimit
}

// SetFPSLimit sets the frame rate cap; <= 0 disables it.
func SetFPSLimit(n int) {
	mu.Lock()
	defer mu.Unlock()
	current.FPSLimit = n
}

// GetDebugOverlay reports whether the profiling overlay is enabled.
func GetDebugOverlay() bool {
	mu.RLock()
	defer mu.RUnlock()
	return current.DebugOverlay
}

// SetDebugOverlay toggles the profiling overlay.
func SetDebugOverlay(on bool) {
	mu.Lock()
	defer mu.Unlock()
	current.DebugOverlay = on
}

// Load merges settings from a TOML file over the defaults. A missing file
// leaves the defaults untouched and is not an error.
func Load(path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	return LoadFromBytes(data)
}

// LoadFromBytes merges TOML settings over the defaults, applying the same
// clamping as the setters.
func LoadFromBytes(data []byte) error {
	s := defaults()
	if err := toml.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	SetLayerPoolCapacity(s.LayerPoolCapacity)
	SetMaxLayerSize(s.MaxLayerSize)
	SetFPSLimit(s.FPSLimit)
	SetDebugOverlay(s.DebugOverlay)
	return nil
}

// Reset restores the defaults. Intended for tests.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	current = defaults()
}
