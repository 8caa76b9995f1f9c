package layer

import (
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"

	"layerkit/internal/renderstate"
)

type sizeKey struct {
	width  int
	height int
}

// Pool recycles destroyed layers so a surface that churns through
// same-sized layers does not reallocate texture storage every frame. At
// most one layer is cached per size; least recently used sizes are
// evicted when the pool is full. All methods run on the rendering thread.
type Pool struct {
	state *renderstate.RenderState
	cache *lru.Cache[sizeKey, *GLLayer]

	// reusing suppresses the eviction callback while Get pulls a layer
	// out of the cache to hand it to a caller.
	reusing bool
}

// NewPool creates a pool caching up to capacity layer sizes.
func NewPool(state *renderstate.RenderState, capacity int) (*Pool, error) {
	p := &Pool{state: state}
	cache, err := lru.NewWithEvict(capacity, func(k sizeKey, l *GLLayer) {
		if p.reusing {
			return
		}
		slog.Debug("layer pool evict", "width", k.width, "height", k.height)
		l.DestroyDeferred()
	})
	if err != nil {
		return nil, err
	}
	p.cache = cache
	return p, nil
}

// Get returns a pooled layer of exactly the requested size, or a fresh
// one. Recycled layers keep their texture storage.
func (p *Pool) Get(width, height int) *GLLayer {
	k := sizeKey{width: width, height: height}
	if l, ok := p.cache.Peek(k); ok {
		p.reusing = true
		p.cache.Remove(k)
		p.reusing = false
		return l
	}
	return NewGLLayer(p.state, width, height)
}

// Put offers a layer back to the pool instead of destroying it. When a
// layer of the same size is already pooled, or the layer never allocated
// storage, it is destroyed instead.
func (p *Pool) Put(l *GLLayer) {
	k := sizeKey{width: l.Width(), height: l.Height()}
	if l.Texture().ID() == 0 || p.cache.Contains(k) {
		l.Destroy()
		return
	}
	p.cache.Add(k, l)
}

// Len reports how many layers are pooled.
func (p *Pool) Len() int {
	return p.cache.Len()
}

// Clear destroys every pooled layer via the deferred path. After context
// loss the queued destroys degrade to discarding identifiers, so Clear is
// safe in both worlds.
func (p *Pool) Clear() {
	p.cache.Purge()
}
