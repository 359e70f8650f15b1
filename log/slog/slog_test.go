//go:build go1.21

package slog

import (
	"bytes"
	stdslog "log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/unkn0wn-root/jsontime"
)

func TestSlogLoggerSortsAttrs(t *testing.T) {
	var buf bytes.Buffer
	h := stdslog.NewTextHandler(&buf, &stdslog.HandlerOptions{Level: stdslog.LevelDebug})
	l := Logger{L: stdslog.New(h)}

	l.Info("codec bound", jsontime.Fields{"type": "jsontime.Instant", "field": "at", "kind": "instant"})

	line := buf.String()
	assert.Contains(t, line, "level=INFO")
	assert.Contains(t, line, `msg="codec bound"`)
	fi, ki, ti := strings.Index(line, "field="), strings.Index(line, "kind="), strings.Index(line, "type=")
	assert.True(t, fi < ki && ki < ti, line)
}

func TestSlogLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	h := stdslog.NewTextHandler(&buf, &stdslog.HandlerOptions{Level: stdslog.LevelWarn})
	l := Logger{L: stdslog.New(h)}

	l.Debug("hidden", nil)
	l.Warn("shown", nil)

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
