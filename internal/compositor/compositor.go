// Package compositor drives the draw passes that consume layers. It owns
// the per-frame safe point where queued teardown tasks run.
package compositor

import (
	"github.com/go-gl/mathgl/mgl32"

	"layerkit/internal/profiling"
	"layerkit/internal/renderstate"
)

// Frame provides shared context for all passes of one frame.
type Frame struct {
	Proj   mgl32.Mat4
	DT     float64
	Width  int
	Height int
}

// Renderable is the lifecycle contract for a draw pass.
type Renderable interface {
	Init() error
	Render(f Frame)
	Dispose()
	SetViewport(width, height int)
}

// Compositor renders an ordered list of passes against one render state.
type Compositor struct {
	state  *renderstate.RenderState
	passes []Renderable
	width  int
	height int
}

// New initializes all passes in order. A pass that fails Init aborts
// construction; already-initialized passes are disposed again.
func New(state *renderstate.RenderState, width, height int, passes ...Renderable) (*Compositor, error) {
	for i, p := range passes {
		if err := p.Init(); err != nil {
			for j := i - 1; j >= 0; j-- {
				passes[j].Dispose()
			}
			return nil, err
		}
		p.SetViewport(width, height)
	}
	return &Compositor{
		state:  state,
		passes: passes,
		width:  width,
		height: height,
	}, nil
}

// Render draws one frame. Queued tasks (deferred layer destruction) are
// drained first: this is the safe point where no pass holds a binding.
func (c *Compositor) Render(dt float64) {
	defer profiling.Track("compositor.Render")()

	c.state.RunPendingTasks()

	if !c.state.IsInitialized() {
		return
	}

	f := Frame{
		Proj:   mgl32.Ortho2D(0, float32(c.width), float32(c.height), 0),
		DT:     dt,
		Width:  c.width,
		Height: c.height,
	}
	for _, p := range c.passes {
		p.Render(f)
	}
}

// SetViewport propagates a resize to every pass.
func (c *Compositor) SetViewport(width, height int) {
	c.width, c.height = width, height
	for _, p := range c.passes {
		p.SetViewport(width, height)
	}
}

// Dispose tears passes down in reverse order.
func (c *Compositor) Dispose() {
	for i := len(c.passes) - 1; i >= 0; i-- {
		c.passes[i].Dispose()
	}
}
