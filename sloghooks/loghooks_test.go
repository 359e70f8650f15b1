package sloghooks

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/unkn0wn-root/jsontime"
)

func newBuffered(opts Options) (*Hooks, *bytes.Buffer) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return New(l, opts), &buf
}

func TestParseFailedRedactsRaw(t *testing.T) {
	h, buf := newBuffered(Options{})

	h.ParseFailed(jsontime.KindInstant, "at", `"secret-input"`, errors.New("no form matched"))

	out := buf.String()
	assert.Contains(t, out, "jsontime.parse_failed")
	assert.Contains(t, out, "kind=instant")
	assert.NotContains(t, out, "secret-input")
}

func TestShowRaw(t *testing.T) {
	h, buf := newBuffered(Options{ShowRaw: true})

	h.PatternFallback(jsontime.KindLocalDate, "day", "2023-12-23")

	assert.Contains(t, buf.String(), "raw=2023-12-23")
}

func TestSampling(t *testing.T) {
	h, buf := newBuffered(Options{PatternFallbackEvery: 3})

	for i := 0; i < 9; i++ {
		h.PatternFallback(jsontime.KindInstant, "at", "x")
	}

	assert.Equal(t, 3, strings.Count(buf.String(), "jsontime.pattern_fallback"))
}

func TestNilLogger(t *testing.T) {
	h := New(nil, Options{})
	assert.NotPanics(t, func() {
		h.BindRejected(jsontime.KindDate, "d", errors.New("x"))
		h.ZoneModifierIgnored(jsontime.KindDate)
	})
}
