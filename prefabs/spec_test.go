package prefabs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadSceneSpecDefaults(t *testing.T) {
	spec, err := LoadSceneSpec()
	if err != nil {
		t.Fatalf("LoadSceneSpec: %v", err)
	}
	if spec.Width != 800 || spec.Height != 480 {
		t.Fatalf("unexpected scene size %vx%v", spec.Width, spec.Height)
	}
	if spec.DebugDrawing {
		t.Fatalf("debug drawing must default to off")
	}
	c := spec.Character
	if c.MoveSpeed != 500 || c.JumpThreshold != -0.5 || c.JumpDuration != 1 {
		t.Fatalf("unexpected character tunables %+v", c)
	}
	if len(c.Animation.Frames) != 3 || c.Animation.Frames[0] != "man1" {
		t.Fatalf("unexpected frames %v", c.Animation.Frames)
	}
	if c.Spawn.X != 400 || c.Spawn.Y != 240 {
		t.Fatalf("unexpected spawn %+v", c.Spawn)
	}
}

func TestSceneSpecValidate(t *testing.T) {
	valid := func() SceneSpec {
		spec, err := LoadSpec[SceneSpec](SceneFile)
		if err != nil {
			t.Fatal(err)
		}
		return spec
	}

	tests := []struct {
		name   string
		mutate func(*SceneSpec)
	}{
		{"zero_width", func(s *SceneSpec) { s.Width = 0 }},
		{"no_frames", func(s *SceneSpec) { s.Character.Animation.Frames = nil }},
		{"zero_cycle", func(s *SceneSpec) { s.Character.Animation.CycleDuration = 0 }},
		{"flat_body", func(s *SceneSpec) { s.Character.Body.Height = 0 }},
		{"zero_scale", func(s *SceneSpec) { s.Character.Scale = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			spec := valid()
			tc.mutate(&spec)
			if err := spec.Validate(); !errors.Is(err, ErrInvalidSpec) {
				t.Fatalf("expected ErrInvalidSpec, got %v", err)
			}
		})
	}

	spec := valid()
	if err := spec.Validate(); err != nil {
		t.Fatalf("embedded spec should validate: %v", err)
	}
}

func TestLoadSceneSpecFile(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "scene.yaml")
	data, err := PrefabsFS.ReadFile(SceneFile)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(good, data, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSceneSpecFile(good); err != nil {
		t.Fatalf("expected file spec to load: %v", err)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("width: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSceneSpecFile(bad); err == nil {
		t.Fatalf("expected malformed yaml to fail")
	}

	if _, err := LoadSceneSpecFile(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestCleanPrefabPath(t *testing.T) {
	cases := map[string]string{
		"":                   "",
		"scene.yaml":         "scene.yaml",
		"prefabs/scene.yaml": "scene.yaml",
	}
	for in, want := range cases {
		if got := cleanPrefabPath(in); got != want {
			t.Fatalf("cleanPrefabPath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSpecWatcherReportsSettledWrites(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "scene.yaml")
	if err := os.WriteFile(target, []byte("width: 1"), 0o644); err != nil {
		t.Fatal(err)
	}
	sw, err := WatchSpec(target)
	if err != nil {
		t.Fatalf("WatchSpec: %v", err)
	}
	defer sw.Close()

	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1"), 0o644); err != nil {
		t.Fatal(err)
	}
	for _, body := range []string{"width: 2", "width: 3", "width: 4"} {
		if err := os.WriteFile(target, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	select {
	case name := <-sw.Changes:
		if name != sw.Path() {
			t.Fatalf("expected %s, got %s", sw.Path(), name)
		}
	case err := <-sw.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for a change")
	}

	select {
	case name := <-sw.Changes:
		t.Fatalf("a burst of writes should be reported once, got a second change for %s", name)
	case <-time.After(3 * settleDelay):
	}
}

func TestSpecWatcherCloseIsIdempotent(t *testing.T) {
	sw, err := WatchSpec(filepath.Join(t.TempDir(), "scene.yaml"))
	if err != nil {
		t.Fatalf("WatchSpec: %v", err)
	}
	if err := sw.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	_ = sw.Close()
	if _, ok := <-sw.Changes; ok {
		t.Fatalf("Changes should be closed")
	}
}

func TestWatchSpecMissingDir(t *testing.T) {
	if _, err := WatchSpec(filepath.Join(t.TempDir(), "missing", "scene.yaml")); err == nil {
		t.Fatalf("expected an error for a missing directory")
	}
}
