// Package asynchook moves hook delivery off the Sync path.
//
// usage:
//
//	raw := sloghooks.New(slog.Default(), sloghooks.Options{BackendFailedEvery: 10})
//	hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
//	defer hooks.Close()
//
//	cache, _ := nscache.New(ctx, nscache.Options{
//	    Name:     "settings",
//	    Backends: backends,
//	    Hooks:    hooks,
//	})
//
// Events are dropped when the queue is full.
package asynchook

import (
	"sync"

	"github.com/unkn0wn-root/nscache"
	"github.com/unkn0wn-root/nscache/backend"
)

type Hooks struct {
	inner nscache.Hooks
	q     chan func()
	wg    sync.WaitGroup
	once  sync.Once
}

var _ nscache.Hooks = (*Hooks)(nil)

func New(inner nscache.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

// Close drains queued events and stops the workers. Hooks must not be
// called after Close.
func (h *Hooks) Close() {
	h.once.Do(func() {
		close(h.q)
		h.wg.Wait()
	})
}

func (h *Hooks) try(f func()) {
	select {
	case h.q <- f:
	default: // drop
	}
}

func (h *Hooks) BackendFailed(err *backend.Error) { h.try(func() { h.inner.BackendFailed(err) }) }
func (h *Hooks) LoadExhausted(ns string)          { h.try(func() { h.inner.LoadExhausted(ns) }) }
func (h *Hooks) SaveExhausted(ns string, err error) {
	h.try(func() { h.inner.SaveExhausted(ns, err) })
}
func (h *Hooks) Synced(ns, b string, n int) { h.try(func() { h.inner.Synced(ns, b, n) }) }
