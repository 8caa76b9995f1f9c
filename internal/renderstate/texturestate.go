package renderstate

import "layerkit/internal/driver"

// TextureState tracks the identifier last bound to each texture target so
// redundant driver binds can be elided and disposed textures can be
// scrubbed from the slots. All access happens on the rendering thread.
type TextureState struct {
	drv   driver.Driver
	bound map[driver.Target]uint32
}

func newTextureState(drv driver.Driver) *TextureState {
	return &TextureState{
		drv:   drv,
		bound: make(map[driver.Target]uint32),
	}
}

// Bind records id as bound for target and issues the driver bind. A bind
// that matches the cached slot is skipped entirely.
func (ts *TextureState) Bind(target driver.Target, id uint32) {
	if ts.bound[target] == id {
		return
	}
	ts.drv.BindTexture(target, id)
	ts.bound[target] = id
}

// Unbind clears every slot currently holding id, binding 0 through the
// driver for each affected target. Unbinding an id that is not bound is a
// no-op.
func (ts *TextureState) Unbind(id uint32) {
	if id == 0 {
		return
	}
	for target, cur := range ts.bound {
		if cur == id {
			ts.drv.BindTexture(target, 0)
			delete(ts.bound, target)
		}
	}
}

// Bound returns the identifier cached for target, or 0.
func (ts *TextureState) Bound(target driver.Target) uint32 {
	return ts.bound[target]
}

// reset empties the slot cache without driver calls. Used on context
// creation and destruction, when cached identifiers are meaningless.
func (ts *TextureState) reset() {
	clear(ts.bound)
}
