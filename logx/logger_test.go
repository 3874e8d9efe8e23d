package logx_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/amrmerge/logx"
	"github.com/stretchr/testify/assert"
)

func TestDefaultLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := logx.NewDefaultLogger(logx.LevelWarn, &buf)

	l.Info("should not appear")
	assert.Empty(t, buf.String())

	l.Warn("round %d stalled", 3)
	assert.Contains(t, buf.String(), "WARN")
	assert.Contains(t, buf.String(), "round 3 stalled")
}

func TestDefaultLogger_WithFieldsAccumulates(t *testing.T) {
	var buf bytes.Buffer
	l := logx.NewDefaultLogger(logx.LevelDebug, &buf)
	l2 := l.WithField("gid", 3).WithFields(map[string]interface{}{"round": 7})

	l2.Info("tick")
	out := buf.String()
	assert.True(t, strings.Contains(out, "gid=3"))
	assert.True(t, strings.Contains(out, "round=7"))
}

func TestNullLogger_DiscardsEverything(t *testing.T) {
	var l logx.Logger = logx.NullLogger{}
	assert.NotPanics(t, func() {
		l.Debug("x")
		l.WithField("a", 1).Info("y")
	})
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, logx.LevelDebug, logx.ParseLevel("debug"))
	assert.Equal(t, logx.LevelWarn, logx.ParseLevel("WARNING"))
	assert.Equal(t, logx.LevelInfo, logx.ParseLevel("bogus"))
}

func TestStdLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := logx.NewStdLogger(logx.LevelError, &buf)
	l.Warn("ignored")
	assert.Empty(t, buf.String())

	l.Error("boom")
	assert.Contains(t, buf.String(), "boom")
}
