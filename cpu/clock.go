package cpu

import "time"

const (
	defaultSliceMs = 16
	defaultBudget  = 35000 // cycles per slice, ~2.1 MHz at the default slice width
)

// clockState tracks the coarse real-time pacing used by ExecuteSlice: a
// configured per-slice cycle budget, a running count of cycles executed in
// the current slice, and when that slice began. Accuracy is best-effort;
// this paces to roughly the configured rate, nothing more.
type clockState struct {
	sliceMs    int
	budget     int
	executed   int
	sliceStart time.Time
	started    bool
}

func (cs *clockState) setDefaults() {
	cs.sliceMs = defaultSliceMs
	cs.budget = defaultBudget
}

// SetClockHz reconfigures the slice budget so that, paced over SliceMs
// windows, Step calls average out to hz cycles per second.
func (c *CPU) SetClockHz(hz float64) {
	c.clock.budget = int(hz * float64(c.clock.sliceMs) / 1000)
}

// SetSliceMs changes the pacing window without altering the configured
// clock rate; the budget is recomputed to preserve the current Hz.
func (c *CPU) SetSliceMs(ms int) {
	if c.clock.sliceMs <= 0 {
		c.clock.sliceMs = defaultSliceMs
	}
	hz := float64(c.clock.budget) * 1000 / float64(c.clock.sliceMs)
	c.clock.sliceMs = ms
	c.clock.budget = int(hz * float64(ms) / 1000)
}

// ExecuteSlice runs Step repeatedly, accumulating cycles, until either the
// halt latch stops progress or the configured per-slice cycle budget is
// reached; in either case it sleeps out the remainder of the slice window
// before returning, so that callers driving ExecuteSlice in a loop
// get roughly the configured clock rate. It returns the total cycles
// executed in this call.
func (c *CPU) ExecuteSlice() int {
	if !c.clock.started {
		c.clock.sliceStart = time.Now()
		c.clock.started = true
	}

	total := 0
	for c.clock.executed < c.clock.budget {
		if c.Halted {
			break
		}
		cycles := c.Step()
		total += cycles
		c.clock.executed += cycles
	}

	elapsed := time.Since(c.clock.sliceStart)
	window := time.Duration(c.clock.sliceMs) * time.Millisecond
	if remaining := window - elapsed; remaining > 0 {
		time.Sleep(remaining)
	}

	c.clock.executed = 0
	c.clock.sliceStart = time.Now()
	return total
}
