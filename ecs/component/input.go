package component

import "math"

// DefaultDeadZone is the stick radius below which input reads as centred.
const DefaultDeadZone = 0.2

// InputSample is one analog stick reading, each axis in [-1, 1].
type InputSample struct {
	X float64
	Y float64
}

// InputListener receives stick samples as they change.
type InputListener interface {
	PositionChanged(x, y float64)
}

// ApplyDeadZone zeroes samples inside the radial dead zone and clamps each
// axis to [-1, 1].
func ApplyDeadZone(s InputSample, deadZone float64) InputSample {
	if math.Hypot(s.X, s.Y) < deadZone {
		return InputSample{}
	}
	return InputSample{X: clampAxis(s.X), Y: clampAxis(s.Y)}
}

func clampAxis(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(-1, math.Min(1, v))
}

// AnalogStick filters raw readings and fans changes out to its listeners.
type AnalogStick struct {
	DeadZone  float64
	last      InputSample
	listeners []InputListener
}

func NewAnalogStick(deadZone float64) *AnalogStick {
	return &AnalogStick{DeadZone: deadZone}
}

func (s *AnalogStick) AddListener(l InputListener) {
	if l == nil {
		return
	}
	s.listeners = append(s.listeners, l)
}

// Set records a raw reading. Listeners are only notified when the filtered
// sample differs from the previous one; the return value reports that.
func (s *AnalogStick) Set(raw InputSample) bool {
	sample := ApplyDeadZone(raw, s.DeadZone)
	if sample == s.last {
		return false
	}
	s.last = sample
	for _, l := range s.listeners {
		l.PositionChanged(sample.X, sample.Y)
	}
	return true
}
