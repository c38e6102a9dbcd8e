package app

import (
	"sync"

	"github.com/go-drift/uitree/pkg/element"
	"github.com/go-drift/uitree/pkg/errors"
)

// Mutate runs fn as the frame's exclusive writer. Mutations are not allowed
// while ReadParallel is in flight.
func (a *Application) Mutate(fn func()) {
	a.writeMu.Lock()
	defer a.writeMu.Unlock()
	a.arena.AssertWritable("app.Mutate")
	fn()
}

// ReadParallel runs fn over ids on up to workers goroutines (zero means the
// configured default) and returns once every call has finished. The arena is
// marked read-only for the duration. A panic in fn is reported to the error
// handler and returned as a *errors.PanicError; the remaining calls still run.
func (a *Application) ReadParallel(ids []element.ID, workers int, fn func(element.ID)) error {
	if len(ids) == 0 {
		return nil
	}
	if workers <= 0 {
		workers = a.workers
	}
	workers = min(workers, len(ids))

	a.writeMu.Lock()
	defer a.writeMu.Unlock()
	a.arena.BeginRead()
	defer a.arena.EndRead()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	chunk := (len(ids) + workers - 1) / workers
	for start := 0; start < len(ids); start += chunk {
		part := ids[start:min(start+chunk, len(ids))]
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, id := range part {
				a.readOne(id, fn, func(pe *errors.PanicError) {
					mu.Lock()
					defer mu.Unlock()
					if firstErr == nil {
						firstErr = pe
					}
				})
			}
		}()
	}
	wg.Wait()
	return firstErr
}

func (a *Application) readOne(id element.ID, fn func(element.ID), onPanic func(*errors.PanicError)) {
	defer errors.Recover("app.ReadParallel", onPanic)
	fn(id)
}

// EndFrame clears the arena's per-frame enable bookkeeping.
func (a *Application) EndFrame() {
	a.Mutate(func() {
		enabled, disabled := len(a.arena.EnabledThisFrame()), len(a.arena.DisabledThisFrame())
		a.arena.CleanupFrame()
		if enabled+disabled > 0 {
			a.log.Debug("frame ended", "enabled_roots", enabled, "disabled_roots", disabled)
		}
	})
}
