// usage:
//
// import (
//
//	"log/slog"
//
//	"github.com/unkn0wn-root/jsontime"
//	"github.com/unkn0wn-root/jsontime/codec"
//	"github.com/unkn0wn-root/jsontime/hooks/async"
//	"github.com/unkn0wn-root/jsontime/sloghooks"
//
// )
//
//	raw := sloghooks.New(slog.Default(), sloghooks.Options{
//	    ParseFailedEvery:     10, // sample logs: ~every 10th parse failure
//	    PatternFallbackEvery: 100,
//	})
//
// hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
// defer hooks.Close()
//
//	eng, _ := jsontime.New(jsontime.Options{
//	    Document: codec.JSON{},
//	    Hooks:    hooks, // or `raw` if you don’t want async
//	})
package asynchook

import (
	"sync"
	"sync/atomic"

	"github.com/unkn0wn-root/jsontime"
)

type Hooks struct {
	inner   jsontime.Hooks
	q       chan func()
	wg      sync.WaitGroup
	once    sync.Once
	closed  atomic.Bool
	dropped atomic.Uint64
}

var _ jsontime.Hooks = (*Hooks)(nil)

func New(inner jsontime.Hooks, workers, qlen int) *Hooks {
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

// Close drains queued events and stops the workers. Events after Close are
// dropped.
func (h *Hooks) Close() {
	h.once.Do(func() {
		h.closed.Store(true)
		close(h.q)
		h.wg.Wait()
	})
}

// Dropped counts events lost to a full queue or a closed Hooks.
func (h *Hooks) Dropped() uint64 { return h.dropped.Load() }

func (h *Hooks) try(f func()) {
	if h.closed.Load() {
		h.dropped.Add(1)
		return
	}
	defer func() {
		// send raced with Close
		if recover() != nil {
			h.dropped.Add(1)
		}
	}()
	select {
	case h.q <- f:
	default: // drop
		h.dropped.Add(1)
	}
}

func (h *Hooks) BindRejected(k jsontime.Kind, field string, err error) {
	h.try(func() { h.inner.BindRejected(k, field, err) })
}
func (h *Hooks) ParseFailed(k jsontime.Kind, field, raw string, err error) {
	h.try(func() { h.inner.ParseFailed(k, field, raw, err) })
}
func (h *Hooks) PatternFallback(k jsontime.Kind, field, raw string) {
	h.try(func() { h.inner.PatternFallback(k, field, raw) })
}
func (h *Hooks) ZoneModifierIgnored(k jsontime.Kind) {
	h.try(func() { h.inner.ZoneModifierIgnored(k) })
}
