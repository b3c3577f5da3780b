package libemitter

import "github.com/sirupsen/logrus"

type logrusLogger struct {
	entry logrus.FieldLogger
}

// NewLogrusLogger adapts a logrus logger or entry to Logger.
func NewLogrusLogger(l logrus.FieldLogger) Logger {
	return logrusLogger{entry: l}
}

func (l logrusLogger) WithField(key string, value any) Logger {
	return logrusLogger{entry: l.entry.WithField(key, value)}
}

func (l logrusLogger) Debug(args ...any)                 { l.entry.Debug(args...) }
func (l logrusLogger) Debugf(format string, args ...any) { l.entry.Debugf(format, args...) }
func (l logrusLogger) Debugln(args ...any)               { l.entry.Debugln(args...) }
func (l logrusLogger) Info(args ...any)                  { l.entry.Info(args...) }
func (l logrusLogger) Infof(format string, args ...any)  { l.entry.Infof(format, args...) }
func (l logrusLogger) Infoln(args ...any)                { l.entry.Infoln(args...) }
func (l logrusLogger) Warn(args ...any)                  { l.entry.Warn(args...) }
func (l logrusLogger) Warnf(format string, args ...any)  { l.entry.Warnf(format, args...) }
func (l logrusLogger) Warnln(args ...any)                { l.entry.Warnln(args...) }
func (l logrusLogger) Error(args ...any)                 { l.entry.Error(args...) }
func (l logrusLogger) Errorf(format string, args ...any) { l.entry.Errorf(format, args...) }
func (l logrusLogger) Errorln(args ...any)               { l.entry.Errorln(args...) }
