package utils

import (
	"sync"
	"time"
)

type Clock interface {
	Now() time.Time
}

// RealClock reports wall time in UTC.
type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now().UTC()
}

// FakeClock advances by Step on every call so successive records get
// distinct, ordered timestamps in tests.
type FakeClock struct {
	mu      sync.Mutex
	current time.Time
	Step    time.Duration
}

func NewFakeClock(t time.Time) *FakeClock {
	return &FakeClock{current: t, Step: time.Second}
}

func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.current
	c.current = c.current.Add(c.Step)
	return now
}
