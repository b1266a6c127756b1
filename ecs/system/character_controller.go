package system

import (
	"errors"

	"github.com/milk9111/animateguy/ecs"
	"github.com/milk9111/animateguy/ecs/component"
)

var (
	ErrNilBody     = errors.New("system: character needs a physics body")
	ErrNilAnimator = errors.New("system: character needs an animator")
)

// CharacterController turns analog samples into velocity and jumps, and
// advances the character one tick at a time.
type CharacterController struct {
	cfg   component.CharacterConfig
	body  component.Body
	anim  *component.Animator
	state component.CharacterState
}

var CharacterControllerComponent = component.NewComponent[CharacterController]()

func NewCharacterController(cfg component.CharacterConfig, body component.Body, anim *component.Animator) (*CharacterController, error) {
	if body == nil {
		return nil, ErrNilBody
	}
	if anim == nil {
		return nil, ErrNilAnimator
	}
	return &CharacterController{
		cfg:   cfg,
		body:  body,
		anim:  anim,
		state: component.NewCharacterState(body.Position()),
	}, nil
}

// HandleInput applies the latest stick sample. Samples are not queued; each
// one overwrites the horizontal velocity immediately.
func (c *CharacterController) HandleInput(sample component.InputSample) {
	if sample.X == 0 {
		c.state.Velocity.X = 0
		c.state.Movement = component.MovementIdle
		c.anim.StopLoop()
	} else {
		c.state.Velocity.X = c.cfg.MoveSpeed * sample.X
		c.state.Movement = component.MovementMoving
		c.anim.StartLoop()
	}

	if !c.state.Jumping && sample.Y < c.cfg.JumpThreshold {
		c.jump()
	}
}

// PositionChanged lets the controller listen to an analog control directly.
func (c *CharacterController) PositionChanged(x, y float64) {
	c.HandleInput(component.InputSample{X: x, Y: y})
}

func (c *CharacterController) jump() {
	c.body.ApplyImpulse(c.cfg.JumpImpulse)
	c.anim.PlayJump(c.cfg.JumpDuration, c.state.Facing)
	c.state.Jumping = c.anim.Jumping()
}

// Update advances the character by dt seconds. Facing follows the last
// horizontal direction and is frozen mid-jump; horizontal velocity keeps
// applying during a jump.
func (c *CharacterController) Update(dt float64) {
	if !c.state.Jumping {
		switch {
		case c.state.Velocity.X < 0:
			c.state.Facing = -1
		case c.state.Velocity.X > 0:
			c.state.Facing = 1
		}
	}

	// Physics moves the body; Sync replaces this prediction after the step.
	c.state.Position = component.Integrate(c.body.Position(), c.state.Velocity, dt)
	vel := c.body.Velocity()
	vel.X = c.state.Velocity.X
	c.body.SetVelocity(vel)

	c.anim.Update(dt)
	if c.state.Jumping && !c.anim.Jumping() {
		c.state.Jumping = false
	}
}

// Sync refreshes the cached position from the body after physics has run.
func (c *CharacterController) Sync() {
	c.state.Position = c.body.Position()
}

func (c *CharacterController) State() component.CharacterState {
	return c.state
}

func (c *CharacterController) Animator() *component.Animator {
	return c.anim
}

func (c *CharacterController) Config() component.CharacterConfig {
	return c.cfg
}

// SetConfig swaps tunables without touching the running state.
func (c *CharacterController) SetConfig(cfg component.CharacterConfig) {
	c.cfg = cfg
}

// CharacterSystem ticks every character controller with the frame delta and
// publishes its state for the other systems.
type CharacterSystem struct{}

func NewCharacterSystem() *CharacterSystem {
	return &CharacterSystem{}
}

func (s *CharacterSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := frameDelta(w)
	ecs.ForEach(w, CharacterControllerComponent.Kind(), func(e ecs.Entity, ctrl *CharacterController) {
		ctrl.Update(dt)
		publishCharacterState(w, e, ctrl)
	})
}

func publishCharacterState(w *ecs.World, e ecs.Entity, ctrl *CharacterController) {
	if state, ok := ecs.Get(w, e, component.CharacterStateComponent.Kind()); ok {
		*state = ctrl.State()
	}
}
