package camera

import (
	"time"
)

type timer struct {
	name     string
	total    time.Duration
	elapsed  time.Duration
	callback func()
}

// Cooldown is a set of named one-shot timers advanced by frame delta
type Cooldown struct {
	timers []*timer
	byName map[string]*timer
}

// NewCooldown creates an empty timer set
func NewCooldown() *Cooldown {
	return &Cooldown{byName: make(map[string]*timer)}
}

// Timeout starts or restarts a named timer, callback may be nil
func (c *Cooldown) Timeout(name string, d time.Duration, callback func()) {
	if t, ok := c.byName[name]; ok {
		t.total = d
		t.elapsed = 0
		t.callback = callback
		return
	}
	t := &timer{name: name, total: d, callback: callback}
	c.timers = append(c.timers, t)
	c.byName[name] = t
}

// Update advances every timer, finished timers are removed then their callbacks fire in start order
func (c *Cooldown) Update(dt time.Duration) {
	var fired []func()
	kept := c.timers[:0]
	for _, t := range c.timers {
		t.elapsed += dt
		if t.elapsed >= t.total {
			delete(c.byName, t.name)
			if t.callback != nil {
				fired = append(fired, t.callback)
			}
			continue
		}
		kept = append(kept, t)
	}
	clear(c.timers[len(kept):])
	c.timers = kept

	for _, fn := range fired {
		fn()
	}
}

func (c *Cooldown) Has(name string) bool {
	_, ok := c.byName[name]
	return ok
}

// Ratio returns the remaining fraction of a timer, 1 when just started, 0 when absent
func (c *Cooldown) Ratio(name string) float64 {
	t, ok := c.byName[name]
	if !ok || t.total <= 0 {
		return 0
	}
	return 1 - float64(t.elapsed)/float64(t.total)
}

func (c *Cooldown) Remove(name string) {
	if _, ok := c.byName[name]; !ok {
		return
	}
	delete(c.byName, name)
	for i, t := range c.timers {
		if t.name == name {
			c.timers = append(c.timers[:i], c.timers[i+1:]...)
			return
		}
	}
}

func (c *Cooldown) RemoveAll() {
	clear(c.byName)
	c.timers = c.timers[:0]
}
