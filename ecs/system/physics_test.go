package system

import (
	"errors"
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/animateguy/common"
)

var testRect = common.ComputePlayableRect(800, 480)

func newTestPhysics(t *testing.T) *PhysicsSystem {
	t.Helper()
	ps := NewPhysicsSystem(DefaultPhysicsConfig())
	if err := ps.AttachBoundary(testRect); err != nil {
		t.Fatalf("AttachBoundary: %v", err)
	}
	return ps
}

func TestAttachBoundaryOnce(t *testing.T) {
	ps := newTestPhysics(t)
	if err := ps.AttachBoundary(testRect); !errors.Is(err, ErrBoundaryAttached) {
		t.Fatalf("expected ErrBoundaryAttached, got %v", err)
	}
	if len(ps.boundary) != 4 {
		t.Fatalf("expected 4 boundary segments, got %d", len(ps.boundary))
	}
}

func TestAttachBodyValidatesSize(t *testing.T) {
	ps := newTestPhysics(t)
	if _, err := ps.AttachBody(cp.Vector{X: 0, Y: 10}, 0); !errors.Is(err, ErrInvalidBodySize) {
		t.Fatalf("expected ErrInvalidBodySize, got %v", err)
	}
}

func TestBodyFallsOntoBoundary(t *testing.T) {
	ps := newTestPhysics(t)
	body, err := ps.AttachBody(cp.Vector{X: 40, Y: 60}, 0)
	if err != nil {
		t.Fatal(err)
	}
	body.SetPosition(cp.Vector{X: 400, Y: 240})

	for i := 0; i < 180; i++ {
		ps.Step(1.0 / 60.0)
	}

	pos := body.Position()
	floor := testRect.MinY() + 30
	if pos.Y < floor-2 || pos.Y > floor+3 {
		t.Fatalf("expected body resting near y=%v, got %v", floor, pos.Y)
	}
	if math.Abs(body.Velocity().Y) > 1 {
		t.Fatalf("expected body at rest, velocity %v", body.Velocity())
	}
	if math.Abs(pos.X-400) > 1e-6 {
		t.Fatalf("body drifted horizontally to %v", pos.X)
	}
}

func TestImpulseLaunchesBody(t *testing.T) {
	ps := newTestPhysics(t)
	body, err := ps.AttachBody(cp.Vector{X: 40, Y: 60}, 0)
	if err != nil {
		t.Fatal(err)
	}
	body.SetPosition(cp.Vector{X: 400, Y: 100})

	body.ApplyImpulse(cp.Vector{X: 0, Y: 600})
	if got := body.Velocity().Y; got != 600 {
		t.Fatalf("expected velocity 600 for unit mass, got %v", got)
	}

	ps.Step(0.1)
	if body.Position().Y <= 100 {
		t.Fatalf("expected body to rise, got y=%v", body.Position().Y)
	}
}

func TestStepIgnoresNonPositiveDelta(t *testing.T) {
	ps := newTestPhysics(t)
	body, err := ps.AttachBody(cp.Vector{X: 10, Y: 10}, 0)
	if err != nil {
		t.Fatal(err)
	}
	body.SetPosition(cp.Vector{X: 400, Y: 200})
	ps.Step(0)
	ps.Step(-1)
	if body.Position() != (cp.Vector{X: 400, Y: 200}) {
		t.Fatalf("body moved without time passing: %v", body.Position())
	}
}

func TestBodyRestsUnderClockDeltas(t *testing.T) {
	ps := newTestPhysics(t)
	body, err := ps.AttachBody(cp.Vector{X: 48, Y: 80}, 0)
	if err != nil {
		t.Fatal(err)
	}
	body.SetPosition(cp.Vector{X: 400, Y: 240})

	for i := 1; i <= 180; i++ {
		ps.Step(float64(i)/60 - float64(i-1)/60)
	}

	pos := body.Position()
	floor := testRect.MinY() + 40
	if !testRect.Contains(pos) || pos.Y < floor-2 || pos.Y > floor+3 {
		t.Fatalf("expected body resting near y=%v, got %v", floor, pos)
	}
}

func TestSubsteps(t *testing.T) {
	tests := []struct {
		dt   float64
		want int
	}{
		{1.0 / 60, 1},
		{2.0/60 - 1.0/60, 1},
		{0.02, 2},
		{0.1, 6},
		{1e-6, 1},
	}
	for _, tc := range tests {
		if got := substeps(tc.dt); got != tc.want {
			t.Fatalf("substeps(%v) = %d, want %d", tc.dt, got, tc.want)
		}
	}
}

func TestBoundaryHoldsDrivenBody(t *testing.T) {
	for _, dir := range []float64{-1, 1} {
		ps := newTestPhysics(t)
		body, err := ps.AttachBody(cp.Vector{X: 48, Y: 80}, 0)
		if err != nil {
			t.Fatal(err)
		}
		body.SetPosition(cp.Vector{X: 400, Y: 100})

		for i := 0; i < 600; i++ {
			v := body.Velocity()
			v.X = dir * 500
			body.SetVelocity(v)
			ps.Step(1.0 / 60)
		}

		pos := body.Position()
		if !testRect.Contains(pos) {
			t.Fatalf("dir %v: body escaped to %v", dir, pos)
		}
		wall := testRect.MinX() + 24
		if dir > 0 {
			wall = testRect.MaxX() - 24
		}
		if math.Abs(pos.X-wall) > 3 {
			t.Fatalf("dir %v: expected body against the wall at x=%v, got %v", dir, wall, pos.X)
		}
	}
}

func TestContainPullsEscapedBodyBack(t *testing.T) {
	ps := newTestPhysics(t)
	body, err := ps.AttachBody(cp.Vector{X: 48, Y: 80}, 0)
	if err != nil {
		t.Fatal(err)
	}
	body.SetPosition(cp.Vector{X: -100, Y: 100})
	body.SetVelocity(cp.Vector{X: -500, Y: 0})

	ps.Step(1.0 / 60)

	if pos := body.Position(); pos.X != testRect.MinX()+24 {
		t.Fatalf("expected body clamped to x=%v, got %v", testRect.MinX()+24, pos.X)
	}
	if v := body.Velocity(); v.X != 0 {
		t.Fatalf("expected velocity into the wall dropped, got %v", v)
	}
}
