package layer

import (
	"layerkit/internal/driver"
	"layerkit/internal/renderstate"
)

// GLLayer is an OpenGL-backed layer. It owns exactly one texture and
// registers itself with the render state so context destruction can
// invalidate its handle.
type GLLayer struct {
	base
	texture Texture
}

var _ Layer = (*GLLayer)(nil)

// NewGLLayer creates a layer with declared dimensions. Texture storage is
// not allocated until GenerateTexture.
func NewGLLayer(state *renderstate.RenderState, width, height int) *GLLayer {
	return newGLLayer(state, driver.Target2D, width, height)
}

// NewExternalGLLayer creates a layer bound on the external-image target,
// for content produced outside the pipeline.
func NewExternalGLLayer(state *renderstate.RenderState, width, height int) *GLLayer {
	return newGLLayer(state, driver.TargetExternal, width, height)
}

func newGLLayer(state *renderstate.RenderState, target driver.Target, width, height int) *GLLayer {
	l := &GLLayer{
		base: base{
			api:    APIOpenGL,
			state:  state,
			width:  width,
			height: height,
		},
	}
	l.texture = Texture{
		width:  width,
		height: height,
		target: target,
		state:  state,
	}
	state.RegisterLayer(l)
	return l
}

// Texture exposes the owned handle for the draw pass and for tests.
func (l *GLLayer) Texture() *Texture { return &l.texture }

// GenerateTexture allocates the texture identifier if the layer does not
// have one yet.
func (l *GLLayer) GenerateTexture() {
	l.texture.Generate()
}

// BindTexture binds the layer's texture through the render state's slot
// cache. A layer that has never been rendered into has identifier 0 and
// binds nothing.
func (l *GLLayer) BindTexture() {
	if id := l.texture.ID(); id != 0 {
		l.state.TextureState().Bind(l.texture.Target(), id)
	}
}

// OnContextLost drops the texture identifier without a driver deletion:
// the context the identifier belonged to is already invalid. Idempotent,
// valid in any state.
func (l *GLLayer) OnContextLost() {
	l.texture.Discard()
}

// Destroy releases the layer's texture on the rendering thread. The
// render state may already be torn down by the time a queued destroy
// runs; that is an expected race, and the identifier is then discarded
// without any driver call.
func (l *GLLayer) Destroy() {
	if l.state.IsInitialized() {
		l.state.TextureState().Unbind(l.texture.ID())
		l.texture.Release()
	} else {
		l.texture.Discard()
	}
	l.state.UnregisterLayer(l)
}

// DestroyDeferred queues Destroy onto the rendering thread. Callable from
// any goroutine. Whether the context is still alive is decided when the
// task runs, not now.
func (l *GLLayer) DestroyDeferred() {
	l.state.Post(l.Destroy)
}
