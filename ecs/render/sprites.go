package render

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/animateguy/ecs"
	"github.com/milk9111/animateguy/ecs/component"
)

// DrawSprites draws every entity with a Transform and Sprite, lowest Z first.
// World y grows upward, so positions are flipped against sceneHeight.
func DrawSprites(w *ecs.World, screen *ebiten.Image, textures *Textures, sceneHeight float64) {
	if w == nil || screen == nil || textures == nil {
		return
	}

	entities := w.Query(component.TransformComponent.Kind(), component.SpriteComponent.Kind())
	sort.SliceStable(entities, func(i, j int) bool {
		si, _ := ecs.Get(w, entities[i], component.SpriteComponent.Kind())
		sj, _ := ecs.Get(w, entities[j], component.SpriteComponent.Kind())
		if si.Z != sj.Z {
			return si.Z < sj.Z
		}
		return uint64(entities[i]) < uint64(entities[j])
	})

	for _, e := range entities {
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		s, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
		img := textures.Get(s.Texture)
		if img == nil {
			continue
		}
		screen.DrawImage(img, spriteOptions(img, t, s, sceneHeight))
	}
}

func spriteOptions(img *ebiten.Image, t *component.Transform, s *component.Sprite, sceneHeight float64) *ebiten.DrawImageOptions {
	imgW := float64(img.Bounds().Dx())
	imgH := float64(img.Bounds().Dy())

	sx, sy := t.ScaleX, t.ScaleY
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	if s.Width > 0 {
		sx *= s.Width / imgW
	}
	if s.Height > 0 {
		sy *= s.Height / imgH
	}

	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterLinear
	if s.AnchorBottomLeft {
		op.GeoM.Translate(0, -imgH)
	} else {
		op.GeoM.Translate(-imgW/2, -imgH/2)
	}
	op.GeoM.Scale(sx, sy)
	// screen rotation runs clockwise
	op.GeoM.Rotate(-t.Rotation)
	op.GeoM.Translate(t.X, sceneHeight-t.Y)
	return op
}
