package profiler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTickDoesNotLogBeforeInterval(t *testing.T) {
	p := NewProfiler()
	assert.False(t, p.Tick(1024), "first tick inside the interval must not log")
	assert.False(t, p.Tick(1024))
}

func TestTickLogsAfterInterval(t *testing.T) {
	p := NewProfiler()
	p.updateInterval = time.Millisecond

	p.Tick(512)
	time.Sleep(5 * time.Millisecond)
	assert.True(t, p.Tick(512), "an elapsed interval triggers a stats line")

	// Counters reset after logging.
	assert.False(t, p.Tick(512))
}
