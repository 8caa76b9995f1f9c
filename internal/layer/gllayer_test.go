package layer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"layerkit/internal/driver"
	"layerkit/internal/driver/drivertest"
	"layerkit/internal/renderstate"
	"layerkit/internal/scene"
)

func newTestLayer(t *testing.T, w, h int) (*GLLayer, *drivertest.Recorder, *renderstate.RenderState) {
	t.Helper()
	rec := drivertest.NewRecorder()
	rs := renderstate.New(rec)
	return NewGLLayer(rs, w, h), rec, rs
}

func TestFreshLayerIsUnallocated(t *testing.T) {
	l, rec, _ := newTestLayer(t, 256, 256)

	assert.Equal(t, uint32(0), l.Texture().ID())
	assert.Equal(t, 256, l.Width())
	assert.Equal(t, 256, l.Height())
	assert.Equal(t, APIOpenGL, l.API())
	assert.Equal(t, 0, rec.Calls())
}

func TestGenerateThenBindPopulatesSlotCache(t *testing.T) {
	// Scenario: construct, generate, bind; the registry's slot for the
	// target must hold the driver-issued identifier.
	l, rec, rs := newTestLayer(t, 256, 256)

	l.GenerateTexture()
	v := l.Texture().ID()
	require.NotZero(t, v)
	assert.True(t, rec.Live(v))

	l.BindTexture()
	assert.Equal(t, v, rs.TextureState().Bound(driver.Target2D))
}

func TestGenerateTextureIsIdempotent(t *testing.T) {
	l, rec, _ := newTestLayer(t, 64, 64)

	l.GenerateTexture()
	v := l.Texture().ID()
	l.GenerateTexture()

	assert.Equal(t, v, l.Texture().ID())
	assert.Equal(t, 1, rec.Gens())
}

func TestBindUnallocatedLayerIsSilentNoOp(t *testing.T) {
	l, rec, rs := newTestLayer(t, 64, 64)

	l.BindTexture()

	assert.Equal(t, 0, rec.Calls())
	assert.Equal(t, uint32(0), rs.TextureState().Bound(driver.Target2D))
}

func TestDoubleReleaseDeletesOnce(t *testing.T) {
	l, rec, _ := newTestLayer(t, 64, 64)
	l.GenerateTexture()

	l.Texture().Release()
	l.Texture().Release()

	assert.Equal(t, uint32(0), l.Texture().ID())
	assert.Equal(t, 1, rec.Deletes())
}

func TestDestroyReleasesAndUnbinds(t *testing.T) {
	l, rec, rs := newTestLayer(t, 64, 64)
	l.GenerateTexture()
	v := l.Texture().ID()
	l.BindTexture()

	l.Destroy()

	assert.Equal(t, uint32(0), l.Texture().ID())
	assert.Equal(t, uint32(0), rs.TextureState().Bound(driver.Target2D))
	assert.Equal(t, []uint32{v}, rec.Deleted())

	// Destroying again is a no-op.
	l.Destroy()
	assert.Equal(t, 1, rec.Deletes())
}

func TestContextLossDropsHandleWithoutDriverCalls(t *testing.T) {
	// Scenario: layer bound in the registry, then a registry-level
	// context-loss broadcast.
	l, rec, rs := newTestLayer(t, 64, 64)
	l.GenerateTexture()
	l.BindTexture()
	before := rec.Calls()

	rs.OnContextDestroyed()

	assert.Equal(t, uint32(0), l.Texture().ID())
	assert.Equal(t, before, rec.Calls())
	assert.Equal(t, uint32(0), rs.TextureState().Bound(driver.Target2D))

	// A release after loss issues no further driver calls.
	l.Texture().Release()
	assert.Equal(t, 0, rec.Deletes())
}

func TestOnContextLostIsIdempotentFromAnyState(t *testing.T) {
	l, rec, _ := newTestLayer(t, 64, 64)

	// Unallocated.
	l.OnContextLost()
	assert.Equal(t, uint32(0), l.Texture().ID())

	// Allocated.
	l.GenerateTexture()
	l.OnContextLost()
	l.OnContextLost()
	assert.Equal(t, uint32(0), l.Texture().ID())
	assert.Equal(t, 0, rec.Deletes())
}

func TestDeferredDestroyAfterContextLossSkipsDriver(t *testing.T) {
	// Scenario: destruction is queued while the context is alive, the
	// context dies before the queue drains. The task must re-check at
	// run time and degrade to discarding the identifier.
	l, rec, rs := newTestLayer(t, 64, 64)
	l.GenerateTexture()
	require.NotZero(t, l.Texture().ID())

	done := make(chan struct{})
	go func() {
		l.DestroyDeferred()
		close(done)
	}()
	<-done

	rs.OnContextDestroyed()
	rs.RunPendingTasks()

	assert.Equal(t, 0, rec.Deletes())
	assert.Equal(t, uint32(0), l.Texture().ID())
}

func TestDeferredDestroyOnLiveContextDeletes(t *testing.T) {
	l, rec, rs := newTestLayer(t, 64, 64)
	l.GenerateTexture()
	v := l.Texture().ID()

	l.DestroyDeferred()
	assert.Equal(t, 0, rec.Deletes())

	rs.RunPendingTasks()
	assert.Equal(t, []uint32{v}, rec.Deleted())
	assert.Equal(t, uint32(0), l.Texture().ID())
}

func TestLastBindWinsAcrossLayers(t *testing.T) {
	// Scenario: two layers bound to the same target in sequence.
	rec := drivertest.NewRecorder()
	rs := renderstate.New(rec)
	l1 := NewGLLayer(rs, 64, 64)
	l2 := NewGLLayer(rs, 64, 64)
	l1.GenerateTexture()
	l2.GenerateTexture()

	l1.BindTexture()
	l2.BindTexture()

	assert.Equal(t, l2.Texture().ID(), rs.TextureState().Bound(driver.Target2D))
}

func TestExternalLayerUsesExternalTarget(t *testing.T) {
	rec := drivertest.NewRecorder()
	rs := renderstate.New(rec)
	l := NewExternalGLLayer(rs, 128, 128)
	l.GenerateTexture()
	l.BindTexture()

	assert.Equal(t, driver.TargetExternal, l.Texture().Target())
	assert.Equal(t, l.Texture().ID(), rs.TextureState().Bound(driver.TargetExternal))
	assert.Equal(t, uint32(0), rs.TextureState().Bound(driver.Target2D))
}

func TestLabelDegradesWhenNodeIsGone(t *testing.T) {
	l, _, _ := newTestLayer(t, 64, 64)
	assert.Equal(t, "", l.Label())

	id := scene.Register(&scene.Node{Name: "toolbar", Width: 64, Height: 64})
	l.SetNode(id)
	assert.Equal(t, "toolbar 64x64", l.Label())

	scene.Unregister(id)
	assert.Equal(t, "", l.Label())
}
