package system

import (
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/animateguy/common"
	"github.com/milk9111/animateguy/ecs"
	"github.com/milk9111/animateguy/ecs/component"
)

const (
	collisionTypeBoundary cp.CollisionType = iota + 1
	collisionTypeCharacter
)

const (
	boundaryThickness = 1.0
	// maxSubstep keeps a long frame from tunnelling through the boundary.
	maxSubstep = 1.0 / 60.0
)

var (
	ErrBoundaryAttached = errors.New("system: physics boundary already attached")
	ErrInvalidBodySize  = errors.New("system: physics body size must be positive")
)

type PhysicsConfig struct {
	Gravity  float64
	Mass     float64
	Friction float64
}

func DefaultPhysicsConfig() PhysicsConfig {
	return PhysicsConfig{Gravity: common.Gravity, Mass: 1, Friction: 0.8}
}

// PhysicsSystem owns the Chipmunk space: a static edge loop around the
// playable area and the dynamic bodies attached to it.
type PhysicsSystem struct {
	cfg      PhysicsConfig
	space    *cp.Space
	boundary []*cp.Shape
	bounds   common.Rect
	bodies   []*chipmunkBody
}

func NewPhysicsSystem(cfg PhysicsConfig) *PhysicsSystem {
	if cfg.Mass <= 0 {
		cfg.Mass = 1
	}
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: -cfg.Gravity})
	return &PhysicsSystem{cfg: cfg, space: space}
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

// AttachBoundary closes rect with four static segments.
func (ps *PhysicsSystem) AttachBoundary(rect common.Rect) error {
	if len(ps.boundary) > 0 {
		return ErrBoundaryAttached
	}
	ps.bounds = rect
	corners := rect.Corners()
	for i := range corners {
		a := corners[i]
		b := corners[(i+1)%len(corners)]
		shape := cp.NewSegment(ps.space.StaticBody, a, b, boundaryThickness)
		shape.SetFriction(ps.cfg.Friction)
		shape.SetElasticity(0)
		shape.SetCollisionType(collisionTypeBoundary)
		ps.space.AddShape(shape)
		ps.boundary = append(ps.boundary, shape)
	}
	return nil
}

// AttachBody adds a dynamic box that never rotates; visual spin is the
// animator's business.
func (ps *PhysicsSystem) AttachBody(size cp.Vector, restitution float64) (component.Body, error) {
	if size.X <= 0 || size.Y <= 0 {
		return nil, fmt.Errorf("%w: got %vx%v", ErrInvalidBodySize, size.X, size.Y)
	}
	body := cp.NewBody(ps.cfg.Mass, math.Inf(1))
	body.SetAngle(0)
	body.SetAngularVelocity(0)
	shape := cp.NewBox(body, size.X, size.Y, 0)
	shape.SetFriction(ps.cfg.Friction)
	shape.SetElasticity(restitution)
	shape.SetCollisionType(collisionTypeCharacter)
	ps.space.AddBody(body)
	ps.space.AddShape(shape)
	log.Printf("physics: attached body %vx%v mass=%v restitution=%v", size.X, size.Y, ps.cfg.Mass, restitution)
	b := &chipmunkBody{body: body, half: size.Mult(0.5)}
	ps.bodies = append(ps.bodies, b)
	return b, nil
}

// Step advances the space by dt seconds in equal substeps no longer than
// maxSubstep, then keeps every body inside the boundary.
func (ps *PhysicsSystem) Step(dt float64) {
	if ps == nil || ps.space == nil || dt <= 0 {
		return
	}
	n := substeps(dt)
	step := dt / float64(n)
	for i := 0; i < n; i++ {
		ps.space.Step(step)
	}
	if len(ps.boundary) > 0 {
		for _, b := range ps.bodies {
			b.contain(ps.bounds)
		}
	}
}

func substeps(dt float64) int {
	// frame deltas land a hair above maxSubstep after float subtraction
	n := int(math.Ceil(dt/maxSubstep - 1e-9))
	if n < 1 {
		return 1
	}
	return n
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}
	ps.Step(frameDelta(w))

	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, pb *component.PhysicsBody, t *component.Transform) {
		if pb.Body == nil {
			return
		}
		pos := pb.Body.Position()
		t.X = pos.X
		t.Y = pos.Y
	})
	ecs.ForEach(w, CharacterControllerComponent.Kind(), func(e ecs.Entity, ctrl *CharacterController) {
		ctrl.Sync()
		publishCharacterState(w, e, ctrl)
	})
}

type chipmunkBody struct {
	body *cp.Body
	half cp.Vector
}

func (b *chipmunkBody) Position() cp.Vector {
	return b.body.Position()
}

func (b *chipmunkBody) SetPosition(p cp.Vector) {
	b.body.SetPosition(p)
}

func (b *chipmunkBody) Velocity() cp.Vector {
	return b.body.Velocity()
}

func (b *chipmunkBody) SetVelocity(v cp.Vector) {
	b.body.SetVelocityVector(v)
}

func (b *chipmunkBody) ApplyImpulse(impulse cp.Vector) {
	b.body.ApplyImpulseAtLocalPoint(impulse, cp.Vector{})
}

// contain pulls a body that slipped past the edge loop back inside rect and
// drops its velocity into the wall it crossed.
func (b *chipmunkBody) contain(rect common.Rect) {
	pos := b.body.Position()
	vel := b.body.Velocity()
	minX, maxX := rect.MinX()+b.half.X, rect.MaxX()-b.half.X
	minY, maxY := rect.MinY()+b.half.Y, rect.MaxY()-b.half.Y

	clamped := pos
	switch {
	case pos.X < minX:
		clamped.X = minX
		vel.X = math.Max(vel.X, 0)
	case pos.X > maxX:
		clamped.X = maxX
		vel.X = math.Min(vel.X, 0)
	}
	switch {
	case pos.Y < minY:
		clamped.Y = minY
		vel.Y = math.Max(vel.Y, 0)
	case pos.Y > maxY:
		clamped.Y = maxY
		vel.Y = math.Min(vel.Y, 0)
	}
	if clamped != pos {
		b.body.SetPosition(clamped)
		b.body.SetVelocityVector(vel)
	}
}
