package logrus

import (
	"github.com/sirupsen/logrus"
	"github.com/unkn0wn-root/jsontime"
)

type LogrusLogger struct{ E *logrus.Entry }

var _ jsontime.Logger = LogrusLogger{}

func (l LogrusLogger) Debug(msg string, f jsontime.Fields) { l.entry(f).Debug(msg) }
func (l LogrusLogger) Info(msg string, f jsontime.Fields)  { l.entry(f).Info(msg) }
func (l LogrusLogger) Warn(msg string, f jsontime.Fields)  { l.entry(f).Warn(msg) }
func (l LogrusLogger) Error(msg string, f jsontime.Fields) { l.entry(f).Error(msg) }

// entry moves an "err" error field to logrus.ErrorKey.
func (l LogrusLogger) entry(f jsontime.Fields) *logrus.Entry {
	if len(f) == 0 {
		return l.E
	}
	fields := make(logrus.Fields, len(f))
	for k, v := range f {
		if err, ok := v.(error); ok && k == "err" {
			fields[logrus.ErrorKey] = err
			continue
		}
		fields[k] = v
	}
	return l.E.WithFields(fields)
}
