// Package commit coalesces a stream of state updates into debounced,
// deduplicated notifications.
//
// Every Push restarts a fixed-delay timer. When the timer fires the pending
// value is compared with the last emitted value and the callback runs only if
// they differ. At most one notification is pending at a time; a newer Push
// replaces it.
package commit

import (
	"sync"
	"time"
)

// DefaultDelay is the quiet period before a pushed value is emitted.
const DefaultDelay = 250 * time.Millisecond

// Timer is the subset of *time.Timer the committer needs.
type Timer interface {
	Stop() bool
}

// Clock schedules delayed callbacks.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// RealClock schedules callbacks with time.AfterFunc.
var RealClock Clock = realClock{}

// Committer debounces values of type T and emits them when they settle.
type Committer[T any] struct {
	mu      sync.Mutex
	delay   time.Duration
	clock   Clock
	equal   func(a, b T) bool
	emit    func(T)
	timer   Timer
	gen     uint64
	pending T
	waiting bool
	last    T
	hasLast bool
	closed  bool
}

// New creates a committer. equal decides whether two values are the same
// commit; emit receives settled values on the clock's goroutine.
func New[T any](delay time.Duration, clock Clock, equal func(a, b T) bool, emit func(T)) *Committer[T] {
	if clock == nil {
		clock = RealClock
	}
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Committer[T]{
		delay: delay,
		clock: clock,
		equal: equal,
		emit:  emit,
	}
}

// Push replaces the pending value and restarts the timer.
func (c *Committer[T]) Push(v T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.pending = v
	c.waiting = true
	c.gen++
	if c.timer != nil {
		c.timer.Stop()
	}
	gen := c.gen
	c.timer = c.clock.AfterFunc(c.delay, func() { c.fire(gen) })
}

// Flush emits the pending value immediately, if there is one.
func (c *Committer[T]) Flush() {
	c.mu.Lock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	gen := c.gen
	c.mu.Unlock()
	c.fire(gen)
}

// MarkEmitted records v as the last emitted value without notifying.
// Values equal to v will not be emitted until something else is.
func (c *Committer[T]) MarkEmitted(v T) {
	c.mu.Lock()
	c.last = v
	c.hasLast = true
	c.mu.Unlock()
}

// Cancel drops the pending value, if any, without emitting it.
func (c *Committer[T]) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.waiting = false
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

// Last returns the last emitted value.
func (c *Committer[T]) Last() (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last, c.hasLast
}

// Pending reports whether a pushed value is waiting for its timer.
func (c *Committer[T]) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.waiting
}

// Close cancels any pending emission. Nothing is emitted after Close.
func (c *Committer[T]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.waiting = false
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Committer[T]) fire(gen uint64) {
	c.mu.Lock()
	if c.closed || !c.waiting || gen != c.gen {
		c.mu.Unlock()
		return
	}
	c.waiting = false
	c.timer = nil
	v := c.pending
	if c.hasLast && c.equal != nil && c.equal(c.last, v) {
		c.mu.Unlock()
		return
	}
	c.last = v
	c.hasLast = true
	c.mu.Unlock()

	if c.emit != nil {
		c.emit(v)
	}
}
