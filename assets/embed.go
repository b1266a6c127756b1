package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed *.png
var assetsFS embed.FS

const imageExt = ".png"

// LoadImage decodes an embedded image. name may omit the .png extension.
func LoadImage(name string) (image.Image, error) {
	b, err := LoadFile(name)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", name, err)
	}
	return img, nil
}

// LoadFile loads an embedded asset by assets-relative path.
func LoadFile(name string) ([]byte, error) {
	clean := cleanAssetPath(name)
	if clean == "" {
		return nil, fmt.Errorf("assets: %w: empty name", fs.ErrNotExist)
	}
	if path.Ext(clean) == "" {
		clean += imageExt
	}
	b, err := assetsFS.ReadFile(clean)
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", clean, err)
	}
	return b, nil
}

// Names lists the embedded textures by name, without extension.
func Names() []string {
	entries, err := assetsFS.ReadDir(".")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != imageExt {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), imageExt))
	}
	sort.Strings(names)
	return names
}

func cleanAssetPath(p string) string {
	if p == "" {
		return ""
	}
	if filepath.IsAbs(p) {
		s := filepath.ToSlash(p)
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(p)
	}
	s := filepath.ToSlash(p)
	return strings.TrimPrefix(s, "assets/")
}
