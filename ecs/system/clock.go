package system

import (
	"github.com/milk9111/animateguy/ecs"
	"github.com/milk9111/animateguy/ecs/component"
)

// ClockSystem stamps the scene clock with the host time once per update.
type ClockSystem struct {
	now func() float64
}

func NewClockSystem(now func() float64) *ClockSystem {
	return &ClockSystem{now: now}
}

func (c *ClockSystem) Update(w *ecs.World) {
	if c == nil || c.now == nil || w == nil {
		return
	}
	currentTime := c.now()
	ecs.ForEach(w, component.ClockComponent.Kind(), func(_ ecs.Entity, clock *component.Clock) {
		clock.Tick(currentTime)
	})
}

// frameDelta returns the scene clock's current delta, or 0 without a clock.
func frameDelta(w *ecs.World) float64 {
	e, ok := w.First(component.ClockComponent.Kind())
	if !ok {
		return 0
	}
	clock, ok := ecs.Get(w, e, component.ClockComponent.Kind())
	if !ok {
		return 0
	}
	return clock.DT()
}
