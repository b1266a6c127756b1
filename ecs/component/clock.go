package component

// Clock derives a per-frame delta from host timestamps in seconds.
type Clock struct {
	last float64
	dt   float64
}

// Tick records currentTime and returns the delta since the previous tick. The
// first tick has nothing to diff against and returns the held delta (0 for a
// new clock) instead of the full timestamp.
func (c *Clock) Tick(currentTime float64) float64 {
	if c.last > 0 {
		c.dt = currentTime - c.last
	}
	c.last = currentTime
	return c.dt
}

// DT returns the delta computed by the latest Tick.
func (c *Clock) DT() float64 {
	return c.dt
}

var ClockComponent = NewComponent[Clock]()
