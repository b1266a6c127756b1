package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/animateguy/common"
)

// Body is the dynamic body a character drives. Implementations integrate
// velocity and resolve collisions on their own.
type Body interface {
	Position() cp.Vector
	SetPosition(p cp.Vector)
	Velocity() cp.Vector
	SetVelocity(v cp.Vector)
	ApplyImpulse(impulse cp.Vector)
}

// PhysicsWorld is the collision collaborator for a scene.
type PhysicsWorld interface {
	// AttachBoundary closes rect with a static edge loop.
	AttachBoundary(rect common.Rect) error
	// AttachBody adds a dynamic box of the given size.
	AttachBody(size cp.Vector, restitution float64) (Body, error)
	Step(dt float64)
}

// PhysicsBody links an entity to its body in the physics world.
type PhysicsBody struct {
	Body        Body
	Size        cp.Vector
	Restitution float64
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
