package component

import "github.com/milk9111/animateguy/common"

// PlayableArea is the scene singleton describing in-bounds space.
type PlayableArea struct {
	SceneWidth  float64
	SceneHeight float64
	Rect        common.Rect
}

var PlayableAreaComponent = NewComponent[PlayableArea]()
