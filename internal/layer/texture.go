package layer

import (
	"layerkit/internal/driver"
	"layerkit/internal/renderstate"
)

// Texture is the driver-level handle for a layer's GPU pixel storage. An
// identifier of 0 means no storage has been allocated. The identifier is
// assigned once by Generate and cleared exactly once by Release or
// Discard; the owning layer bounds its lifetime.
type Texture struct {
	id     uint32
	width  int
	height int
	target driver.Target
	state  *renderstate.RenderState
}

// ID returns the driver identifier, 0 if unallocated.
func (t *Texture) ID() uint32 { return t.id }

// Width returns the declared width in pixels.
func (t *Texture) Width() int { return t.width }

// Height returns the declared height in pixels.
func (t *Texture) Height() int { return t.height }

// Target returns the binding-target kind.
func (t *Texture) Target() driver.Target { return t.target }

// Generate requests a driver identifier if the texture has none yet.
// Idempotent: a second call with no intervening release keeps the same
// identifier and issues no driver call.
func (t *Texture) Generate() {
	if t.id != 0 {
		return
	}
	t.id = t.state.Driver().GenTexture()
}

// Release deletes the driver texture and clears the identifier.
// Idempotent: releasing an unallocated texture is a no-op.
func (t *Texture) Release() {
	if t.id == 0 {
		return
	}
	t.state.Driver().DeleteTexture(t.id)
	t.id = 0
}

// Discard clears the identifier without touching the driver. Used when
// the context is already gone and the identifier no longer names a live
// resource, so deleting it would be undefined.
func (t *Texture) Discard() {
	t.id = 0
}
