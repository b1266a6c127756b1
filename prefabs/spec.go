package prefabs

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const SceneFile = "scene.yaml"

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	return decodeSpec[T](filename, data)
}

// LoadSpecFile reads a spec from an explicit path instead of the prefab set.
func LoadSpecFile[T any](path string) (T, error) {
	var zero T
	data, err := os.ReadFile(path)
	if err != nil {
		return zero, fmt.Errorf("prefabs: read %s: %w", path, err)
	}
	return decodeSpec[T](path, data)
}

func decodeSpec[T any](name string, data []byte) (T, error) {
	var zero T
	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", name, err)
	}
	return spec, nil
}

type SceneSpec struct {
	Name         string        `yaml:"name"`
	Width        float64       `yaml:"width"`
	Height       float64       `yaml:"height"`
	Background   string        `yaml:"background"`
	DebugDrawing bool          `yaml:"debug_drawing"`
	Physics      PhysicsSpec   `yaml:"physics"`
	Character    CharacterSpec `yaml:"character"`
}

type PhysicsSpec struct {
	Gravity  float64 `yaml:"gravity"`
	Mass     float64 `yaml:"mass"`
	Friction float64 `yaml:"friction"`
}

type CharacterSpec struct {
	Spawn         PointSpec     `yaml:"spawn"`
	Scale         float64       `yaml:"scale"`
	Body          SizeSpec      `yaml:"body"`
	Restitution   float64       `yaml:"restitution"`
	MoveSpeed     float64       `yaml:"move_speed"`
	JumpThreshold float64       `yaml:"jump_threshold"`
	JumpImpulse   float64       `yaml:"jump_impulse"`
	JumpDuration  float64       `yaml:"jump_duration"`
	Animation     AnimationSpec `yaml:"animation"`
}

type AnimationSpec struct {
	Frames        []string `yaml:"frames"`
	CycleDuration float64  `yaml:"cycle_duration"`
	// JumpTurns is the number of full spins in one jump.
	JumpTurns  float64 `yaml:"jump_turns"`
	JumpSquash float64 `yaml:"jump_squash"`
}

type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type SizeSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

func LoadSceneSpec() (*SceneSpec, error) {
	spec, err := LoadSpec[SceneSpec](SceneFile)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", SceneFile, err)
	}
	return &spec, nil
}

func LoadSceneSpecFile(path string) (*SceneSpec, error) {
	spec, err := LoadSpecFile[SceneSpec](path)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", path, err)
	}
	return &spec, nil
}

// Validate rejects specs a scene cannot be built from.
func (s *SceneSpec) Validate() error {
	switch {
	case s.Width <= 0 || s.Height <= 0:
		return fmt.Errorf("%w: scene size %vx%v", ErrInvalidSpec, s.Width, s.Height)
	case len(s.Character.Animation.Frames) == 0:
		return fmt.Errorf("%w: character has no animation frames", ErrInvalidSpec)
	case s.Character.Animation.CycleDuration <= 0:
		return fmt.Errorf("%w: cycle_duration must be positive", ErrInvalidSpec)
	case s.Character.Body.Width <= 0 || s.Character.Body.Height <= 0:
		return fmt.Errorf("%w: character body %vx%v", ErrInvalidSpec, s.Character.Body.Width, s.Character.Body.Height)
	case s.Character.Scale <= 0:
		return fmt.Errorf("%w: character scale must be positive", ErrInvalidSpec)
	}
	return nil
}
