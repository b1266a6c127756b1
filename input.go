package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/animateguy/ecs/component"
)

// AnalogControl polls the first gamepad's left stick, falling back to the
// keyboard, and forwards changed samples to its listeners.
type AnalogControl struct {
	stick *component.AnalogStick
}

func NewAnalogControl(deadZone float64) *AnalogControl {
	return &AnalogControl{stick: component.NewAnalogStick(deadZone)}
}

func (a *AnalogControl) AddListener(l component.InputListener) {
	a.stick.AddListener(l)
}

func (a *AnalogControl) Update() {
	a.stick.Set(pollStick())
}

// Reset centres the stick, e.g. when the game is paused.
func (a *AnalogControl) Reset() {
	a.stick.Set(component.InputSample{})
}

func pollStick() component.InputSample {
	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]
		if ebiten.IsStandardGamepadLayoutAvailable(id) {
			s := component.InputSample{
				X: ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal),
				Y: ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical),
			}
			if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom) {
				s.Y = -1
			}
			if s != (component.InputSample{}) {
				return s
			}
		}
	}

	var s component.InputSample
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		s.X--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		s.X++
	}
	// stick up reads negative
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeySpace) {
		s.Y = -1
	}
	return s
}
