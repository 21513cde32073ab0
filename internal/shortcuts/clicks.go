package shortcuts

import "time"

// DefaultDoubleClickInterval is used when no interval is configured.
const DefaultDoubleClickInterval = 400 * time.Millisecond

// ClickTracker detects double-clicks for window systems that only report
// single button presses.
type ClickTracker struct {
	interval time.Duration
	last     time.Time
	armed    bool
}

// NewClickTracker creates a tracker; interval <= 0 selects the default.
func NewClickTracker(interval time.Duration) *ClickTracker {
	if interval <= 0 {
		interval = DefaultDoubleClickInterval
	}
	return &ClickTracker{interval: interval}
}

// Click records a press at the given time and reports whether it completes
// a double-click. A completed double-click resets the tracker so a third
// press starts a new pair.
func (c *ClickTracker) Click(at time.Time) bool {
	if c.armed {
		d := at.Sub(c.last)
		if d >= 0 && d <= c.interval {
			c.armed = false
			return true
		}
	}
	c.last = at
	c.armed = true
	return false
}

// Reset forgets any pending press.
func (c *ClickTracker) Reset() {
	c.armed = false
}
