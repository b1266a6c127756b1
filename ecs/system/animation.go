package system

import (
	"github.com/milk9111/animateguy/ecs"
	"github.com/milk9111/animateguy/ecs/component"
)

// AnimationSystem copies each character's animator pose and facing onto its
// sprite and transform. The animator itself is advanced by the controller.
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach3(w, CharacterControllerComponent.Kind(), component.SpriteComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, ctrl *CharacterController, sprite *component.Sprite, t *component.Transform) {
		anim := ctrl.Animator()
		state := ctrl.State()
		scale := ctrl.Config().Scale * anim.ScaleFactor()

		sprite.Texture = anim.Texture()
		t.ScaleX = state.Facing * scale
		t.ScaleY = scale
		t.Rotation = anim.Rotation()
	})
}
