package renderstate

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"layerkit/internal/driver"
	"layerkit/internal/driver/drivertest"
)

type lossCounter struct {
	losses int
}

func (c *lossCounter) OnContextLost() { c.losses++ }

func TestNewStateIsInitialized(t *testing.T) {
	rs := New(drivertest.NewRecorder())
	assert.True(t, rs.IsInitialized())
}

func TestContextDestroyedStaysUninitialized(t *testing.T) {
	rs := New(drivertest.NewRecorder())

	rs.OnContextDestroyed()

	assert.False(t, rs.IsInitialized())
	// Stays false until explicit re-initialization.
	rs.OnContextDestroyed()
	assert.False(t, rs.IsInitialized())

	rs.OnContextCreated()
	assert.True(t, rs.IsInitialized())
}

func TestContextDestroyedNotifiesRegisteredLayers(t *testing.T) {
	rs := New(drivertest.NewRecorder())
	a := &lossCounter{}
	b := &lossCounter{}
	rs.RegisterLayer(a)
	rs.RegisterLayer(b)
	rs.UnregisterLayer(b)

	rs.OnContextDestroyed()
	// Idempotent: a second teardown does not re-broadcast.
	rs.OnContextDestroyed()

	assert.Equal(t, 1, a.losses)
	assert.Equal(t, 0, b.losses)
}

func TestContextDestroyedEmptiesSlotCache(t *testing.T) {
	rec := drivertest.NewRecorder()
	rs := New(rec)
	rs.TextureState().Bind(driver.Target2D, 5)

	rs.OnContextDestroyed()

	assert.Equal(t, uint32(0), rs.TextureState().Bound(driver.Target2D))

	// A stale identifier must not satisfy a bind on the next context:
	// rebinding 5 reaches the driver again.
	rs.OnContextCreated()
	before := len(rec.Binds())
	rs.TextureState().Bind(driver.Target2D, 5)
	assert.Len(t, rec.Binds(), before+1)
}

func TestPostedTasksRunInOrder(t *testing.T) {
	rs := New(drivertest.NewRecorder())

	var got []int
	for i := 0; i < 5; i++ {
		i := i
		rs.Post(func() { got = append(got, i) })
	}

	n := rs.RunPendingTasks()
	require.Equal(t, 5, n)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, got)

	// Queue is drained.
	assert.Equal(t, 0, rs.RunPendingTasks())
}

func TestPostIsSafeFromOtherGoroutines(t *testing.T) {
	rs := New(drivertest.NewRecorder())

	var wg sync.WaitGroup
	var mu sync.Mutex
	ran := 0
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rs.Post(func() {
				mu.Lock()
				ran++
				mu.Unlock()
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, 20, rs.RunPendingTasks())
	assert.Equal(t, 20, ran)
}

func TestTasksPostedDuringDrainRunNextDrain(t *testing.T) {
	rs := New(drivertest.NewRecorder())

	ran := false
	rs.Post(func() {
		rs.Post(func() { ran = true })
	})

	assert.Equal(t, 1, rs.RunPendingTasks())
	assert.False(t, ran)
	assert.Equal(t, 1, rs.RunPendingTasks())
	assert.True(t, ran)
}
