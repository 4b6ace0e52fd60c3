package socketio_utils

import (
	"sync"
	"time"
)

// Countdowns runs at most one reset countdown per room, ticking once per
// second. The game state machine only signals start/stop through its
// effects; the actual scheduling lives here so no timer handle ever sits
// inside a Game.
type Countdowns struct {
	mu       sync.Mutex
	interval time.Duration
	stops    map[string]chan struct{}
}

func NewCountdowns() *Countdowns {
	return &Countdowns{
		interval: time.Second,
		stops:    make(map[string]chan struct{}),
	}
}

// Start ticks fn once per interval until fn returns true or Cancel is
// called. A second Start for the same room while one is running is a no-op.
func (c *Countdowns) Start(roomID string, fn func() bool) {
	c.mu.Lock()
	if _, running := c.stops[roomID]; running {
		c.mu.Unlock()
		return
	}
	stop := make(chan struct{})
	c.stops[roomID] = stop
	c.mu.Unlock()

	go func() {
		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				if fn() {
					c.remove(roomID, stop)
					return
				}
			}
		}
	}()
}

// Cancel stops the room's countdown if one is pending. Safe to call when
// none is, so an explicit nextGame and the expiring timer can never
// double-reset.
func (c *Countdowns) Cancel(roomID string) {
	c.mu.Lock()
	stop, ok := c.stops[roomID]
	if ok {
		delete(c.stops, roomID)
	}
	c.mu.Unlock()
	if ok {
		close(stop)
	}
}

// remove clears the bookkeeping entry after fn reported completion, unless a
// Cancel already replaced it with a newer countdown.
func (c *Countdowns) remove(roomID string, stop chan struct{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if cur, ok := c.stops[roomID]; ok && cur == stop {
		delete(c.stops, roomID)
	}
}
