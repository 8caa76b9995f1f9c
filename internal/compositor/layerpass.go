package compositor

import (
	"github.com/go-gl/mathgl/mgl32"

	"layerkit/internal/layer"
)

// PlacedLayer is one layer with its destination rectangle in pixels.
type PlacedLayer struct {
	Layer *layer.GLLayer
	X, Y  float32
	W, H  float32
}

// QuadDrawer submits one textured quad for the texture currently bound on
// the active target. The GL implementation lives in glquad.go; tests
// substitute a recording implementation.
type QuadDrawer interface {
	Init() error
	Draw(mvp mgl32.Mat4)
	Dispose()
}

// LayerPass composites layers as textured quads. Each draw generates the
// layer's texture storage lazily and binds it through the render state.
type LayerPass struct {
	quad   QuadDrawer
	layers []PlacedLayer
}

var _ Renderable = (*LayerPass)(nil)

func NewLayerPass(quad QuadDrawer) *LayerPass {
	return &LayerPass{quad: quad}
}

// Add appends a placed layer to the pass. Draw order is insertion order.
func (p *LayerPass) Add(pl PlacedLayer) {
	p.layers = append(p.layers, pl)
}

// Remove drops every placement of l from the pass. The layer itself is
// untouched; destroying it is the owner's business.
func (p *LayerPass) Remove(l *layer.GLLayer) {
	kept := p.layers[:0]
	for _, pl := range p.layers {
		if pl.Layer != l {
			kept = append(kept, pl)
		}
	}
	p.layers = kept
}

func (p *LayerPass) Init() error {
	return p.quad.Init()
}

func (p *LayerPass) Render(f Frame) {
	for _, pl := range p.layers {
		pl.Layer.GenerateTexture()
		pl.Layer.BindTexture()

		model := mgl32.Translate3D(pl.X, pl.Y, 0).
			Mul4(mgl32.Scale3D(pl.W, pl.H, 1))
		p.quad.Draw(f.Proj.Mul4(model))
	}
}

func (p *LayerPass) SetViewport(width, height int) {}

func (p *LayerPass) Dispose() {
	p.quad.Dispose()
}
