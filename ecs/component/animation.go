package component

import (
	"errors"
	"fmt"
	"math"

	"github.com/milk9111/animateguy/common"
)

// Action keys. An action runs until it finishes or is removed by key.
const (
	AnimationKey = "animation"
	JumpingKey   = "jumping"
)

const (
	defaultJumpRotation = 4 * math.Pi
	defaultJumpSquash   = 0.5
)

var (
	ErrNoFrames     = errors.New("component: animator needs at least one frame")
	ErrInvalidCycle = errors.New("component: animator cycle duration must be positive")
)

// Animator plays keyed visual actions over a fixed frame sequence: a
// repeating walk cycle and a one-shot jump spin with squash and stretch.
type Animator struct {
	Frames []string
	// CycleDuration is the time each frame stays on screen, in seconds.
	CycleDuration float64
	// JumpRotation is the spin magnitude of a jump in radians.
	JumpRotation float64
	// JumpSquash is the scale reached halfway through a jump.
	JumpSquash float64

	actions []keyedAction

	frame    int
	rotation float64
	scale    float64
}

type keyedAction struct {
	key    string
	action animatorAction
}

// animatorAction advances by dt and reports whether it has finished.
type animatorAction interface {
	step(a *Animator, dt float64) bool
}

var AnimatorComponent = NewComponent[Animator]()

func NewAnimator(frames []string, cycleDuration float64) (*Animator, error) {
	if len(frames) == 0 {
		return nil, ErrNoFrames
	}
	if cycleDuration <= 0 || math.IsNaN(cycleDuration) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidCycle, cycleDuration)
	}
	return &Animator{
		Frames:        append([]string(nil), frames...),
		CycleDuration: cycleDuration,
		JumpRotation:  defaultJumpRotation,
		JumpSquash:    defaultJumpSquash,
		scale:         1,
	}, nil
}

// Has reports whether an action is running under key.
func (a *Animator) Has(key string) bool {
	return a.find(key) >= 0
}

func (a *Animator) Looping() bool { return a.Has(AnimationKey) }
func (a *Animator) Jumping() bool { return a.Has(JumpingKey) }

// StartLoop begins the repeating frame cycle. Starting an already running
// loop does nothing.
func (a *Animator) StartLoop() {
	if a.Has(AnimationKey) {
		return
	}
	a.frame = 0
	a.run(AnimationKey, &loopAction{})
}

// StopLoop removes the frame cycle and returns to the rest pose.
func (a *Animator) StopLoop() {
	a.Remove(AnimationKey)
	a.frame = 0
}

// PlayJump spins the sprite against its facing over duration seconds while
// squashing it to JumpSquash at the midpoint and back to its starting scale.
func (a *Animator) PlayJump(duration, facing float64) {
	jump := &jumpAction{
		duration:      duration,
		rotateBy:      -common.Sign(facing) * a.JumpRotation,
		squash:        a.JumpSquash,
		startRotation: a.rotation,
		startScale:    a.scale,
	}
	if jump.squash <= 0 {
		jump.squash = defaultJumpSquash
	}
	a.Remove(JumpingKey)
	if duration <= 0 {
		jump.finish(a)
		return
	}
	a.run(JumpingKey, jump)
}

// Remove drops the action under key, leaving the visual where it is.
func (a *Animator) Remove(key string) bool {
	idx := a.find(key)
	if idx < 0 {
		return false
	}
	a.actions = append(a.actions[:idx], a.actions[idx+1:]...)
	return true
}

// Update advances every running action by dt seconds. Finished one-shot
// actions are removed on the tick they complete. The walk cycle holds its
// frame while a jump is running.
func (a *Animator) Update(dt float64) {
	if dt < 0 {
		dt = 0
	}
	frozen := a.Jumping()
	running := append([]keyedAction(nil), a.actions...)
	for _, ka := range running {
		if ka.key == AnimationKey && frozen {
			continue
		}
		if ka.action.step(a, dt) {
			a.Remove(ka.key)
		}
	}
}

// Texture returns the name of the frame currently shown.
func (a *Animator) Texture() string {
	return a.Frames[a.frame]
}

func (a *Animator) FrameIndex() int { return a.frame }

// Rotation is the visual rotation in radians, counter-clockwise.
func (a *Animator) Rotation() float64 { return a.rotation }

// ScaleFactor multiplies the sprite's resting scale.
func (a *Animator) ScaleFactor() float64 { return a.scale }

func (a *Animator) run(key string, action animatorAction) {
	a.actions = append(a.actions, keyedAction{key: key, action: action})
}

func (a *Animator) find(key string) int {
	for i, ka := range a.actions {
		if ka.key == key {
			return i
		}
	}
	return -1
}

type loopAction struct {
	elapsed float64
}

func (l *loopAction) step(a *Animator, dt float64) bool {
	period := a.CycleDuration * float64(len(a.Frames))
	l.elapsed = math.Mod(l.elapsed+dt, period)
	a.frame = int(l.elapsed/a.CycleDuration) % len(a.Frames)
	return false
}

type jumpAction struct {
	elapsed       float64
	duration      float64
	rotateBy      float64
	squash        float64
	startRotation float64
	startScale    float64
}

func (j *jumpAction) step(a *Animator, dt float64) bool {
	j.elapsed += dt
	if j.elapsed >= j.duration {
		j.finish(a)
		return true
	}

	a.rotation = j.startRotation + j.rotateBy*(j.elapsed/j.duration)

	half := j.duration / 2
	if j.elapsed < half {
		a.scale = j.startScale * common.Lerp(1, j.squash, j.elapsed/half)
	} else {
		a.scale = j.startScale * j.squash * common.Lerp(1, 1/j.squash, common.Clamp01((j.elapsed-half)/half))
	}
	return false
}

func (j *jumpAction) finish(a *Animator) {
	a.rotation = math.Mod(j.startRotation+j.rotateBy, 2*math.Pi)
	a.scale = j.startScale
}
