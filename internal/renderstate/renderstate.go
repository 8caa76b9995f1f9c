// Package renderstate holds the shared state of the rendering context:
// which texture is bound to which target, whether the context is alive,
// the set of live layers, and the task queue that marshals teardown work
// onto the rendering thread.
package renderstate

import (
	"log/slog"

	"layerkit/internal/driver"
)

// ContextListener is notified when the rendering context is destroyed.
// Implementations must drop driver handles without issuing driver calls.
type ContextListener interface {
	OnContextLost()
}

// RenderState is the authoritative view of the current rendering context.
// One instance is shared by every layer; it is injected at construction
// rather than reached through a global so tests can substitute drivers.
//
// Except for Post, all methods must be called on the rendering thread.
type RenderState struct {
	drv         driver.Driver
	initialized bool
	textures    *TextureState
	tasks       taskQueue

	listeners map[ContextListener]struct{}
}

// New creates a RenderState for a live context.
func New(drv driver.Driver) *RenderState {
	return &RenderState{
		drv:         drv,
		initialized: true,
		textures:    newTextureState(drv),
		listeners:   make(map[ContextListener]struct{}),
	}
}

// IsInitialized reports whether the rendering context is alive. Once the
// context is torn down this stays false until OnContextCreated. Callers
// must check it before any driver-affecting call during teardown.
func (rs *RenderState) IsInitialized() bool {
	return rs.initialized
}

// Driver returns the injected driver. Only valid while IsInitialized.
func (rs *RenderState) Driver() driver.Driver {
	return rs.drv
}

// TextureState returns the texture binding-slot cache.
func (rs *RenderState) TextureState() *TextureState {
	return rs.textures
}

// RegisterLayer adds l to the set notified on context destruction.
func (rs *RenderState) RegisterLayer(l ContextListener) {
	rs.listeners[l] = struct{}{}
}

// UnregisterLayer removes l. Safe to call for a layer never registered.
func (rs *RenderState) UnregisterLayer(l ContextListener) {
	delete(rs.listeners, l)
}

// OnContextDestroyed marks the context dead, tells every registered layer
// to drop its driver handles, and empties the slot cache so a stale
// identifier can never satisfy a future bind. Idempotent.
func (rs *RenderState) OnContextDestroyed() {
	if !rs.initialized {
		return
	}
	rs.initialized = false
	for l := range rs.listeners {
		l.OnContextLost()
	}
	rs.textures.reset()
	slog.Debug("rendering context destroyed", "layers", len(rs.listeners))
}

// OnContextCreated marks a fresh context usable. The slot cache starts
// empty; layers reallocate texture storage lazily on their next draw.
func (rs *RenderState) OnContextCreated() {
	rs.initialized = true
	rs.textures.reset()
	slog.Debug("rendering context created")
}
