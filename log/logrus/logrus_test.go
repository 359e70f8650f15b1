package logrus

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unkn0wn-root/jsontime"
)

func TestLogrusLogger(t *testing.T) {
	base, hook := test.NewNullLogger()
	base.SetLevel(logrus.DebugLevel)
	l := LogrusLogger{E: logrus.NewEntry(base)}

	l.Warn("codec rejected", jsontime.Fields{"field": "at", "err": errors.New("boom")})

	require.Len(t, hook.Entries, 1)
	e := hook.LastEntry()
	assert.Equal(t, logrus.WarnLevel, e.Level)
	assert.Equal(t, "codec rejected", e.Message)
	assert.Equal(t, "at", e.Data["field"])
	assert.EqualError(t, e.Data[logrus.ErrorKey].(error), "boom")
}

func TestLogrusLoggerNoFields(t *testing.T) {
	base, hook := test.NewNullLogger()
	base.SetLevel(logrus.DebugLevel)
	l := LogrusLogger{E: logrus.NewEntry(base)}

	l.Debug("engine ready", nil)

	require.Len(t, hook.Entries, 1)
	assert.Empty(t, hook.LastEntry().Data)
}
