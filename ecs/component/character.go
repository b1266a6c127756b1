package component

import (
	"math"

	"github.com/jakecoffman/cp"
)

// CharacterConfig holds the tunables of a character controller.
type CharacterConfig struct {
	// MoveSpeed maps a full-scale stick deflection to pixels per second.
	MoveSpeed float64
	// JumpThreshold is the stick Y value below which a jump is requested.
	JumpThreshold float64
	JumpImpulse   cp.Vector
	// JumpDuration is the length of the jump spin in seconds.
	JumpDuration float64
	// Scale is the sprite's resting scale.
	Scale float64
}

func DefaultCharacterConfig() CharacterConfig {
	return CharacterConfig{
		MoveSpeed:     500,
		JumpThreshold: -0.5,
		JumpImpulse:   cp.Vector{X: 0, Y: 1200},
		JumpDuration:  1.0,
		Scale:         0.5,
	}
}

type MovementState int

const (
	MovementIdle MovementState = iota
	MovementMoving
)

func (m MovementState) String() string {
	switch m {
	case MovementMoving:
		return "moving"
	default:
		return "idle"
	}
}

// CharacterState is the simulated state of the playable character.
type CharacterState struct {
	Position cp.Vector
	// Velocity.Y stays 0; vertical motion belongs to the physics body.
	Velocity cp.Vector
	// Facing is +1 for right and -1 for left.
	Facing   float64
	Jumping  bool
	Movement MovementState
}

func NewCharacterState(position cp.Vector) CharacterState {
	return CharacterState{Position: position, Facing: 1}
}

// FacingLeft reports whether the sprite is mirrored.
func (s CharacterState) FacingLeft() bool {
	return math.Signbit(s.Facing)
}

var CharacterStateComponent = NewComponent[CharacterState]()
