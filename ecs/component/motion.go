package component

import "github.com/jakecoffman/cp"

// Integrate moves position by velocity over dt. It does not clamp; containment
// is the physics boundary's job.
func Integrate(position, velocity cp.Vector, dt float64) cp.Vector {
	return position.Add(velocity.Mult(dt))
}
