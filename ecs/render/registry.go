package render

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Textures maps texture names to GPU images.
type Textures struct {
	images map[string]*ebiten.Image
}

func NewTextures() *Textures {
	return &Textures{images: make(map[string]*ebiten.Image)}
}

// Register stores an image by name.
func (t *Textures) Register(name string, img *ebiten.Image) {
	if t == nil || name == "" || img == nil {
		return
	}
	t.images[name] = img
}

// Get returns a registered image by name.
func (t *Textures) Get(name string) *ebiten.Image {
	if t == nil || name == "" {
		return nil
	}
	return t.images[name]
}

// Require loads every name that is not registered yet.
func (t *Textures) Require(names ...string) error {
	for _, name := range names {
		if t.Get(name) != nil {
			continue
		}
		img, err := LoadImage(name)
		if err != nil {
			return fmt.Errorf("render: texture %q: %w", name, err)
		}
		t.Register(name, img)
	}
	return nil
}

func (t *Textures) Len() int {
	if t == nil {
		return 0
	}
	return len(t.images)
}
