package cache

import (
	"testing"
	"time"

	"github.com/juju/clock/testclock"
	"github.com/stretchr/testify/assert"
)

func TestTTLGetSet(t *testing.T) {
	clk := testclock.NewClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	c := NewTTL[string, int](clk, time.Minute)

	_, ok := c.Get("a")
	assert.False(t, ok)

	c.Set("a", 1)
	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, 1, c.Len())
}

func TestTTLFullFlushAfterWindow(t *testing.T) {
	clk := testclock.NewClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	c := NewTTL[string, int](clk, time.Minute)

	c.Set("old", 1)
	clk.Advance(50 * time.Second)
	c.Set("young", 2)

	clk.Advance(10 * time.Second)

	// The window is global: both entries go, including the one set 10s ago.
	_, ok := c.Get("old")
	assert.False(t, ok)
	_, ok = c.Get("young")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestTTLWindowRestartsAfterFlush(t *testing.T) {
	clk := testclock.NewClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	c := NewTTL[string, int](clk, time.Minute)

	clk.Advance(2 * time.Minute)
	c.Set("a", 1)
	clk.Advance(59 * time.Second)

	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestTTLDeleteAndFlush(t *testing.T) {
	c := NewTTL[int, string](nil, time.Hour)
	c.Set(1, "one")
	c.Set(2, "two")

	c.Delete(1)
	_, ok := c.Get(1)
	assert.False(t, ok)

	c.Flush()
	assert.Equal(t, 0, c.Len())
}
