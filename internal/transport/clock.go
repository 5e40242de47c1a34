package transport

import (
	"sync"
	"time"
)

// Clock supplies the chart tick of the current frame.
type Clock interface {
	Start(delay time.Duration) error
	Tick() int
	Pause()
	Paused() bool
	Close() error
}

// TickAt converts an audio position into a chart tick. The global offset is
// added to the position and the chart's audio offset removed.
func TickAt(position, offset time.Duration, audioOffset int) int {
	return int((position + offset).Milliseconds()) - audioOffset
}

// WallClock measures the chart from the system clock, for charts played
// without audio.
type WallClock struct {
	AudioOffset int
	Offset      time.Duration

	now      func() time.Time
	mu       sync.Mutex
	start    time.Time
	pausedAt time.Time
}

func (c *WallClock) clock() time.Time {
	if nil == c.now {
		return time.Now()
	}
	return c.now()
}

func (c *WallClock) Start(delay time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.start = c.clock().Add(delay)
	c.pausedAt = time.Time{}
	return nil
}

func (c *WallClock) position() time.Duration {
	if !c.pausedAt.IsZero() {
		return c.pausedAt.Sub(c.start)
	}
	return c.clock().Sub(c.start)
}

func (c *WallClock) Tick() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return TickAt(c.position(), c.Offset, c.AudioOffset)
}

// Pause toggles between paused and running.
func (c *WallClock) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.clock()
	if c.pausedAt.IsZero() {
		c.pausedAt = now
		return
	}
	c.start = c.start.Add(now.Sub(c.pausedAt))
	c.pausedAt = time.Time{}
}

func (c *WallClock) Paused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return !c.pausedAt.IsZero()
}

func (c *WallClock) Close() error {
	return nil
}
