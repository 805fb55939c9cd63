// Package debounce delays an action until its trigger has gone quiet.
package debounce

import (
	"sync"
	"time"
)

// Debouncer runs action once no Call has been made for delay. Each Call
// replaces the pending one, so only the latest argument is ever used.
type Debouncer[T any] struct {
	mu     sync.Mutex
	delay  time.Duration
	action func(T)
	timer  *time.Timer
	gen    uint64
}

// New creates a Debouncer wrapping action.
func New[T any](delay time.Duration, action func(T)) *Debouncer[T] {
	return &Debouncer[T]{delay: delay, action: action}
}

// Delay returns the quiet period.
func (d *Debouncer[T]) Delay() time.Duration {
	return d.delay
}

// Call cancels any pending call and schedules action(arg) after the delay.
func (d *Debouncer[T]) Call(arg T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.timer = time.AfterFunc(d.delay, func() { d.fire(gen, arg) })
}

// Cancel drops the pending call, reporting whether there was one.
func (d *Debouncer[T]) Cancel() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer == nil {
		return false
	}
	d.timer.Stop()
	d.timer = nil
	d.gen++
	return true
}

// Pending reports whether a call is scheduled.
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

func (d *Debouncer[T]) fire(gen uint64, arg T) {
	d.mu.Lock()
	// A timer that already fired cannot be stopped, so a superseded
	// generation has to be dropped here.
	if gen != d.gen {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	d.mu.Unlock()

	d.action(arg)
}
