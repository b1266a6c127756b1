package render

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/animateguy/assets"
)

var errEmptyName = errors.New("render: empty image name")

// LoadImage loads a texture from the embedded assets, falling back to the
// working directory so artists can drop in replacements.
func LoadImage(name string) (*ebiten.Image, error) {
	if name == "" {
		return nil, errEmptyName
	}
	if img, err := assets.LoadImage(name); err == nil {
		return ebiten.NewImageFromImage(img), nil
	}
	tried := []string{name, name + ".png", filepath.Join("assets", name+".png")}
	for _, p := range tried {
		b, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		if im, _, err := image.Decode(bytes.NewReader(b)); err == nil {
			return ebiten.NewImageFromImage(im), nil
		}
	}
	return nil, fmt.Errorf("render: failed to load image %s", name)
}
