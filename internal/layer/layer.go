// Package layer implements GPU-backed offscreen render layers: lazy
// texture allocation, binding through the shared render state, and
// teardown that stays correct when the rendering context disappears
// before a queued destroy runs.
package layer

import (
	"layerkit/internal/renderstate"
	"layerkit/internal/scene"
)

// API tags the backing graphics API of a concrete layer.
type API int

const (
	APIOpenGL API = iota
)

func (a API) String() string {
	switch a {
	case APIOpenGL:
		return "opengl"
	default:
		return "unknown"
	}
}

// Layer is one offscreen drawing surface. Exactly one layer owns exactly
// one texture handle. All methods except DestroyDeferred must run on the
// rendering thread.
type Layer interface {
	renderstate.ContextListener

	API() API
	Width() int
	Height() int

	// Label resolves the scene-node back-reference for diagnostics.
	// Empty when no node is attached or the node is gone.
	Label() string
	// SetNode attaches the scene node this layer renders for. The
	// association is lookup-only and never extends the node's lifetime.
	SetNode(id scene.NodeID)

	// GenerateTexture lazily allocates texture storage. Idempotent.
	GenerateTexture()
	// BindTexture binds the texture through the render state. Binding a
	// layer that was never rendered into is a silent no-op.
	BindTexture()

	// Destroy releases the texture on the rendering thread.
	Destroy()
	// DestroyDeferred requests destruction from any goroutine.
	DestroyDeferred()
}

// base carries what every backing API shares: the API tag, the injected
// render state, dimensions, and the diagnostic node association.
type base struct {
	api    API
	state  *renderstate.RenderState
	node   scene.NodeID
	width  int
	height int
}

func (b *base) API() API    { return b.api }
func (b *base) Width() int  { return b.width }
func (b *base) Height() int { return b.height }

func (b *base) SetNode(id scene.NodeID) { b.node = id }

func (b *base) Label() string { return scene.Label(b.node) }
