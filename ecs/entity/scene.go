package entity

import (
	"fmt"
	"log"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/animateguy/common"
	"github.com/milk9111/animateguy/ecs"
	"github.com/milk9111/animateguy/ecs/component"
	"github.com/milk9111/animateguy/ecs/system"
	"github.com/milk9111/animateguy/prefabs"
)

const (
	backgroundZ = 0
	characterZ  = 100
)

// Scene is what BuildScene put into a world.
type Scene struct {
	Clock      ecs.Entity
	Area       component.PlayableArea
	Background ecs.Entity
	Character  ecs.Entity
	Controller *system.CharacterController
	Debug      bool
}

// BuildScene populates w with the clock, playable area, background, and the
// character described by spec, attaching the boundary and body to physics.
func BuildScene(w *ecs.World, spec *prefabs.SceneSpec, physics component.PhysicsWorld) (*Scene, error) {
	if spec == nil {
		return nil, fmt.Errorf("scene: %w: nil spec", prefabs.ErrInvalidSpec)
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}

	scene := &Scene{Debug: spec.DebugDrawing}

	scene.Clock = w.CreateEntity()
	if err := ecs.Add(w, scene.Clock, component.ClockComponent.Kind(), &component.Clock{}); err != nil {
		return nil, fmt.Errorf("scene: add clock: %w", err)
	}

	scene.Area = component.PlayableArea{
		SceneWidth:  spec.Width,
		SceneHeight: spec.Height,
		Rect:        common.ComputePlayableRect(spec.Width, spec.Height),
	}
	areaEntity := w.CreateEntity()
	area := scene.Area
	if err := ecs.Add(w, areaEntity, component.PlayableAreaComponent.Kind(), &area); err != nil {
		return nil, fmt.Errorf("scene: add playable area: %w", err)
	}
	if err := physics.AttachBoundary(scene.Area.Rect); err != nil {
		return nil, fmt.Errorf("scene: attach boundary: %w", err)
	}

	background, err := newBackground(w, spec)
	if err != nil {
		return nil, err
	}
	scene.Background = background

	character, ctrl, err := NewCharacter(w, spec.Character, physics)
	if err != nil {
		return nil, err
	}
	scene.Character = character
	scene.Controller = ctrl

	if scene.Debug {
		log.Printf("scene: frame = %vx%v", spec.Width, spec.Height)
		log.Printf("scene: playableRect = %+v", scene.Area.Rect)
	}
	return scene, nil
}

func newBackground(w *ecs.World, spec *prefabs.SceneSpec) (ecs.Entity, error) {
	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.BackgroundTagComponent.Kind(), &component.BackgroundTag{}); err != nil {
		return 0, fmt.Errorf("background: add tag: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, fmt.Errorf("background: add transform: %w", err)
	}
	sprite := &component.Sprite{
		Texture:          spec.Background,
		AnchorBottomLeft: true,
		Width:            spec.Width,
		Height:           spec.Height,
		Z:                backgroundZ,
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), sprite); err != nil {
		return 0, fmt.Errorf("background: add sprite: %w", err)
	}
	return e, nil
}

// NewCharacter creates the playable character at its spawn point.
func NewCharacter(w *ecs.World, spec prefabs.CharacterSpec, physics component.PhysicsWorld) (ecs.Entity, *system.CharacterController, error) {
	anim, err := NewAnimator(spec.Animation)
	if err != nil {
		return 0, nil, fmt.Errorf("character: %w", err)
	}

	size := cp.Vector{X: spec.Body.Width, Y: spec.Body.Height}
	body, err := physics.AttachBody(size, spec.Restitution)
	if err != nil {
		return 0, nil, fmt.Errorf("character: attach body: %w", err)
	}
	spawn := cp.Vector{X: spec.Spawn.X, Y: spec.Spawn.Y}
	body.SetPosition(spawn)

	cfg := CharacterConfig(spec)
	ctrl, err := system.NewCharacterController(cfg, body, anim)
	if err != nil {
		return 0, nil, fmt.Errorf("character: %w", err)
	}

	e := w.CreateEntity()
	state := ctrl.State()
	adds := []func() error{
		func() error {
			return ecs.Add(w, e, component.CharacterTagComponent.Kind(), &component.CharacterTag{})
		},
		func() error {
			return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
				X: spawn.X, Y: spawn.Y, ScaleX: cfg.Scale, ScaleY: cfg.Scale,
			})
		},
		func() error {
			return ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Texture: anim.Texture(), Z: characterZ})
		},
		func() error {
			return ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
				Body: body, Size: size, Restitution: spec.Restitution,
			})
		},
		func() error {
			return ecs.Add(w, e, component.CharacterStateComponent.Kind(), &state)
		},
		func() error {
			return ecs.Add(w, e, system.CharacterControllerComponent.Kind(), ctrl)
		},
	}
	for _, add := range adds {
		if err := add(); err != nil {
			return 0, nil, fmt.Errorf("character: %w", err)
		}
	}
	return e, ctrl, nil
}

// NewAnimator builds a character animator from its prefab spec.
func NewAnimator(spec prefabs.AnimationSpec) (*component.Animator, error) {
	anim, err := component.NewAnimator(spec.Frames, spec.CycleDuration)
	if err != nil {
		return nil, err
	}
	if spec.JumpTurns > 0 {
		anim.JumpRotation = spec.JumpTurns * 2 * math.Pi
	}
	if spec.JumpSquash > 0 {
		anim.JumpSquash = spec.JumpSquash
	}
	return anim, nil
}

// CharacterConfig maps a prefab spec onto controller tunables, keeping the
// defaults for anything the spec leaves at zero.
func CharacterConfig(spec prefabs.CharacterSpec) component.CharacterConfig {
	cfg := component.DefaultCharacterConfig()
	if spec.MoveSpeed != 0 {
		cfg.MoveSpeed = spec.MoveSpeed
	}
	if spec.JumpThreshold != 0 {
		cfg.JumpThreshold = spec.JumpThreshold
	}
	if spec.JumpImpulse != 0 {
		cfg.JumpImpulse = cp.Vector{X: 0, Y: spec.JumpImpulse}
	}
	if spec.JumpDuration > 0 {
		cfg.JumpDuration = spec.JumpDuration
	}
	if spec.Scale > 0 {
		cfg.Scale = spec.Scale
	}
	return cfg
}

func PhysicsConfig(spec prefabs.PhysicsSpec) system.PhysicsConfig {
	cfg := system.DefaultPhysicsConfig()
	if spec.Gravity != 0 {
		cfg.Gravity = spec.Gravity
	}
	if spec.Mass > 0 {
		cfg.Mass = spec.Mass
	}
	if spec.Friction > 0 {
		cfg.Friction = spec.Friction
	}
	return cfg
}
