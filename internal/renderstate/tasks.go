package renderstate

import "sync"

// taskQueue hands work from arbitrary goroutines to the rendering thread.
// Posting only appends under the lock; execution happens when the
// rendering thread drains the queue at a safe point in its loop.
type taskQueue struct {
	mu    sync.Mutex
	tasks []func()
}

func (q *taskQueue) post(fn func()) {
	q.mu.Lock()
	q.tasks = append(q.tasks, fn)
	q.mu.Unlock()
}

func (q *taskQueue) drain() []func() {
	q.mu.Lock()
	tasks := q.tasks
	q.tasks = nil
	q.mu.Unlock()
	return tasks
}

// Post queues fn for execution on the rendering thread. Safe to call from
// any goroutine. fn must not assume the context that existed at enqueue
// time still exists when it runs; it has to re-check IsInitialized.
func (rs *RenderState) Post(fn func()) {
	rs.tasks.post(fn)
}

// RunPendingTasks executes every queued task in posting order and reports
// how many ran. Must be called on the rendering thread.
func (rs *RenderState) RunPendingTasks() int {
	tasks := rs.tasks.drain()
	for _, fn := range tasks {
		fn()
	}
	return len(tasks)
}
