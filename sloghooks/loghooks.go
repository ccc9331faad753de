// Package sloghooks reports cache persistence events through log/slog.
package sloghooks

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/nscache"
	"github.com/unkn0wn-root/nscache/backend"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	BackendFailedEvery uint64
	SyncedEvery        uint64
	// Optional namespace redactor. Defaults to SHA-256 prefix.
	// Set to func(s string) string { return s } to log namespaces verbatim.
	Redact func(string) string
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	failedCtr atomic.Uint64
	syncedCtr atomic.Uint64
}

var _ nscache.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func (h *Hooks) redact(k string) string {
	if h.opts.Redact != nil {
		return h.opts.Redact(k)
	}
	sum := sha256.Sum256([]byte(k))
	return hex.EncodeToString(sum[:8])
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) BackendFailed(err *backend.Error) {
	if h.l == nil || err == nil || !sample(h.opts.BackendFailedEvery, &h.failedCtr) {
		return
	}
	h.l.Debug("nscache.backend_failed",
		"ns", h.redact(err.Namespace),
		"backend", err.Backend,
		"op", err.Op,
		"err", err.Err)
}

func (h *Hooks) LoadExhausted(ns string) {
	if h.l == nil {
		return
	}
	h.l.Warn("nscache.load_exhausted",
		"ns", h.redact(ns))
}

func (h *Hooks) SaveExhausted(ns string, err error) {
	if h.l == nil {
		return
	}
	h.l.Error("nscache.save_exhausted",
		"ns", h.redact(ns),
		"err", err)
}

func (h *Hooks) Synced(ns, backendName string, observers int) {
	if h.l == nil || !sample(h.opts.SyncedEvery, &h.syncedCtr) {
		return
	}
	h.l.Debug("nscache.synced",
		"ns", h.redact(ns),
		"backend", backendName,
		"observers", observers)
}
