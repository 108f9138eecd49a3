package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStartStop(t *testing.T) {
	now := time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)
	tm := New(func() time.Time { return now })

	h := tm.Start()
	assert.Equal(t, now, h.Started())
	now = now.Add(90 * time.Second)
	assert.InDelta(t, 1.5, tm.Stop(h), 1e-9)

	now = now.Add(-time.Hour)
	assert.Zero(t, tm.Stop(h))
	assert.Zero(t, tm.Stop(Handle{}))
}

func TestDefaultClock(t *testing.T) {
	tm := New(nil)
	h := tm.Start()
	assert.False(t, h.IsZero())
	assert.GreaterOrEqual(t, tm.Stop(h), 0.0)
}
