package libemitter

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(&buf)

	logger.WithField("b", 2).WithField("a", 1).Warnf("listener %s failed", "x")
	logger.Infoln("plain")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	assert.Contains(t, string(lines[0]), "WARN [a=1, b=2]: listener x failed")
	assert.Contains(t, string(lines[1]), "INFO: plain")
}

func TestWriterLoggerWithFieldDoesNotLeak(t *testing.T) {
	var buf bytes.Buffer
	base := NewWriterLogger(&buf)

	base.WithField("event", "e1").Debug("first")
	base.Debug("second")

	assert.Contains(t, buf.String(), "DEBUG [event=e1]: first")
	assert.Contains(t, buf.String(), "DEBUG: second")
}

func TestLogrusLogger(t *testing.T) {
	l, hook := test.NewNullLogger()
	l.SetLevel(logrus.DebugLevel)

	emitter := NewEmitter[string, int, int](WithLogger(NewLogrusLogger(l)))
	emitter.On("event", noop[int, int]())

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.DebugLevel, entry.Level)
	assert.Equal(t, "listener added", entry.Message)
	assert.Equal(t, "emitter", entry.Data["component"])
	assert.Equal(t, "event", entry.Data["event"])
	assert.NotEmpty(t, entry.Data["listener"])
}

func TestNoopLoggerIsDefault(t *testing.T) {
	emitter := NewEmitter[string, int, int](WithLogger(nil))

	assert.IsType(t, noopLogger{}, emitter.logger)
}
