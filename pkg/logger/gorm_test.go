package logger

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm/logger"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	prev := Log
	t.Cleanup(func() { Log = prev })

	var buf bytes.Buffer
	Log = slog.New(slog.NewTextHandler(&buf, nil))
	return &buf
}

func TestQueryLogger_Trace(t *testing.T) {
	buf := captureLog(t)
	l := NewQueryLogger(logger.Info)

	fc := func() (string, int64) { return "SELECT 1", 1 }

	l.Trace(context.Background(), time.Now(), fc, nil)
	assert.Contains(t, buf.String(), "query")
	assert.Contains(t, buf.String(), "SELECT 1")

	buf.Reset()
	l.Trace(context.Background(), time.Now(), fc, errors.New("boom"))
	assert.Contains(t, buf.String(), "query failed")
	assert.Contains(t, buf.String(), "boom")

	buf.Reset()
	slow := time.Now().Add(-time.Second)
	l.Trace(context.Background(), slow, fc, nil)
	assert.Contains(t, buf.String(), "slow query")
}

func TestQueryLogger_SilentSkipsTrace(t *testing.T) {
	buf := captureLog(t)
	l := NewQueryLogger(logger.Info).LogMode(logger.Silent)

	l.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 1 }, nil)
	assert.Empty(t, buf.String())
}
