package sloghooks

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/jsontime"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	ParseFailedEvery     uint64
	PatternFallbackEvery uint64
	ZoneIgnoredEvery     uint64
	// Optional raw-input redactor. Defaults to SHA-256 prefix. Set
	// ShowRaw to log raw input unchanged.
	Redact  func(string) string
	ShowRaw bool
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	parseFailedCtr atomic.Uint64
	fallbackCtr    atomic.Uint64
	zoneIgnoredCtr atomic.Uint64
}

var _ jsontime.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func (h *Hooks) redact(raw string) string {
	if h.opts.ShowRaw {
		return raw
	}
	if h.opts.Redact != nil {
		return h.opts.Redact(raw)
	}
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:8])
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) BindRejected(kind jsontime.Kind, field string, err error) {
	if h.l == nil {
		return
	}
	h.l.Warn("jsontime.bind_rejected",
		"kind", kind.String(),
		"field", field,
		"err", err)
}

func (h *Hooks) ParseFailed(kind jsontime.Kind, field, raw string, err error) {
	if h.l == nil || !sample(h.opts.ParseFailedEvery, &h.parseFailedCtr) {
		return
	}
	h.l.Info("jsontime.parse_failed",
		"kind", kind.String(),
		"field", field,
		"raw", h.redact(raw),
		"err", err)
}

func (h *Hooks) PatternFallback(kind jsontime.Kind, field, raw string) {
	if h.l == nil || !sample(h.opts.PatternFallbackEvery, &h.fallbackCtr) {
		return
	}
	h.l.Debug("jsontime.pattern_fallback",
		"kind", kind.String(),
		"field", field,
		"raw", h.redact(raw))
}

func (h *Hooks) ZoneModifierIgnored(kind jsontime.Kind) {
	if h.l == nil || !sample(h.opts.ZoneIgnoredEvery, &h.zoneIgnoredCtr) {
		return
	}
	h.l.Warn("jsontime.zone_modifier_ignored",
		"kind", kind.String(),
		"msg", "zone modifier returned nil; kept the value's own zone")
}
