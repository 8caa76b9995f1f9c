// Package drivertest provides a driver.Driver double that records every
// call, so lifecycle code can be exercised without a live GL context.
package drivertest

import (
	"sync"

	"layerkit/internal/driver"
)

// BindCall is one recorded BindTexture invocation.
type BindCall struct {
	Target driver.Target
	ID     uint32
}

// Recorder implements driver.Driver with sequential identifiers and
// per-call counters. Safe for concurrent use, though real drivers are not;
// tests that exercise cross-goroutine posting still funnel driver calls
// through one goroutine.
type Recorder struct {
	mu sync.Mutex

	nextID  uint32
	live    map[uint32]bool
	deleted []uint32
	binds   []BindCall

	gens    int
	deletes int
	uploads int
	actives int
}

func NewRecorder() *Recorder {
	return &Recorder{live: make(map[uint32]bool)}
}

func (r *Recorder) GenTexture() uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.gens++
	r.nextID++
	r.live[r.nextID] = true
	return r.nextID
}

func (r *Recorder) DeleteTexture(id uint32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deletes++
	delete(r.live, id)
	r.deleted = append(r.deleted, id)
}

func (r *Recorder) BindTexture(target driver.Target, id uint32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.binds = append(r.binds, BindCall{Target: target, ID: id})
}

func (r *Recorder) TexImage2D(target driver.Target, width, height int, pixels []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.uploads++
}

func (r *Recorder) ActiveTexture(unit int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.actives++
}

// Gens reports how many identifiers were handed out.
func (r *Recorder) Gens() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.gens
}

// Deletes reports how many DeleteTexture calls were made.
func (r *Recorder) Deletes() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.deletes
}

// Uploads reports how many TexImage2D calls were made.
func (r *Recorder) Uploads() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.uploads
}

// Deleted returns identifiers passed to DeleteTexture, in order.
func (r *Recorder) Deleted() []uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]uint32, len(r.deleted))
	copy(out, r.deleted)
	return out
}

// Binds returns all recorded BindTexture calls, in order.
func (r *Recorder) Binds() []BindCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]BindCall, len(r.binds))
	copy(out, r.binds)
	return out
}

// Live reports whether id has been generated and not yet deleted.
func (r *Recorder) Live(id uint32) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.live[id]
}

// Calls reports the total number of driver calls of any kind.
func (r *Recorder) Calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.gens + r.deletes + len(r.binds) + r.uploads + r.actives
}
