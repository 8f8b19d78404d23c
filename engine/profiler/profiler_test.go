package profiler

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfilerReportsProbes(t *testing.T) {
	logger, hook := test.NewNullLogger()
	p := NewProfiler(WithLogger(logger), WithInterval(time.Nanosecond))
	p.AddProbe("speed", func() any { return 12.5 })

	time.Sleep(time.Millisecond)
	require.True(t, p.Tick())

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, 12.5, entry.Data["speed"])
	assert.Contains(t, entry.Data, "tps")
	assert.Contains(t, entry.Data, "heap_mb")
}

func TestProfilerWaitsForInterval(t *testing.T) {
	logger, hook := test.NewNullLogger()
	p := NewProfiler(WithLogger(logger), WithInterval(time.Hour))

	for i := 0; i < 100; i++ {
		assert.False(t, p.Tick())
	}
	assert.Empty(t, hook.AllEntries())
}

func TestProfilerRemoveProbe(t *testing.T) {
	logger, hook := test.NewNullLogger()
	p := NewProfiler(WithLogger(logger), WithInterval(time.Nanosecond))
	p.AddProbe("pose", func() any { return "x" })
	p.RemoveProbe("pose")

	time.Sleep(time.Millisecond)
	require.True(t, p.Tick())
	assert.NotContains(t, hook.LastEntry().Data, "pose")
}
