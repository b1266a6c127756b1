package common

import "github.com/jakecoffman/cp"

type Rect struct {
	X, Y          float64
	Width, Height float64
}

// ComputePlayableRect returns the full-width band of a scene that keeps a
// MaxAspectRatio layout, centered vertically.
func ComputePlayableRect(sceneWidth, sceneHeight float64) Rect {
	playableHeight := sceneWidth / MaxAspectRatio
	margin := (sceneHeight - playableHeight) / 2
	return Rect{X: 0, Y: margin, Width: sceneWidth, Height: playableHeight}
}

func (r Rect) MinX() float64 { return r.X }
func (r Rect) MinY() float64 { return r.Y }
func (r Rect) MaxX() float64 { return r.X + r.Width }
func (r Rect) MaxY() float64 { return r.Y + r.Height }

func (r Rect) Contains(p cp.Vector) bool {
	return p.X >= r.MinX() && p.X <= r.MaxX() && p.Y >= r.MinY() && p.Y <= r.MaxY()
}

// Corners returns the rectangle's corners counter-clockwise from the origin.
func (r Rect) Corners() [4]cp.Vector {
	return [4]cp.Vector{
		{X: r.MinX(), Y: r.MinY()},
		{X: r.MaxX(), Y: r.MinY()},
		{X: r.MaxX(), Y: r.MaxY()},
		{X: r.MinX(), Y: r.MaxY()},
	}
}
