package common

const (
	// BaseWidth and BaseHeight are the logical scene size the game lays out to.
	BaseWidth  = 800
	BaseHeight = 480

	// MaxAspectRatio is the widest aspect the playable area is designed for.
	MaxAspectRatio = 16.0 / 9.0

	// Gravity in pixels per second squared, y-up.
	Gravity = 1470.0
)
