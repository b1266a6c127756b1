package main

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/animateguy/ecs"
	"github.com/milk9111/animateguy/ecs/component"
	"github.com/milk9111/animateguy/ecs/entity"
	"github.com/milk9111/animateguy/ecs/render"
	"github.com/milk9111/animateguy/ecs/system"
	"github.com/milk9111/animateguy/prefabs"
)

type Options struct {
	Debug      bool
	ConfigPath string
	Width      float64
	Height     float64
	Watch      bool
}

type Game struct {
	opts     Options
	spec     *prefabs.SceneSpec
	world    *ecs.World
	scene    *entity.Scene
	physics  *system.PhysicsSystem
	input    *AnalogControl
	textures *render.Textures
	watcher  *prefabs.SpecWatcher
	debug    bool

	start     time.Time
	pausedAt  time.Time
	pausedFor time.Duration
	paused    bool
	quit      bool
	pauseUI   *ebitenui.UI
}

func NewGame(opts Options) (*Game, error) {
	spec, err := loadSpec(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if opts.Width > 0 {
		spec.Width = opts.Width
	}
	if opts.Height > 0 {
		spec.Height = opts.Height
	}
	spec.DebugDrawing = spec.DebugDrawing || opts.Debug

	g := &Game{
		opts:     opts,
		spec:     spec,
		world:    ecs.NewWorld(),
		physics:  system.NewPhysicsSystem(entity.PhysicsConfig(spec.Physics)),
		input:    NewAnalogControl(component.DefaultDeadZone),
		textures: render.NewTextures(),
		start:    time.Now(),
	}

	g.scene, err = entity.BuildScene(g.world, spec, g.physics)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	g.debug = g.scene.Debug

	textures := append([]string{spec.Background}, spec.Character.Animation.Frames...)
	if err := g.textures.Require(textures...); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	g.world.AddSystem(system.NewClockSystem(g.now))
	g.world.AddSystem(system.NewCharacterSystem())
	g.world.AddSystem(g.physics)
	g.world.AddSystem(system.NewAnimationSystem())

	g.input.AddListener(g.scene.Controller)
	g.pauseUI = NewPauseUI(g)

	if opts.Watch {
		path := opts.ConfigPath
		if path == "" {
			path = filepath.Join("prefabs", prefabs.SceneFile)
		}
		g.watcher, err = prefabs.WatchSpec(path)
		if err != nil {
			log.Printf("game: hot reload disabled: %v", err)
		} else {
			log.Printf("game: watching %s for changes", g.watcher.Path())
		}
	}
	return g, nil
}

func loadSpec(path string) (*prefabs.SceneSpec, error) {
	if path == "" {
		return prefabs.LoadSceneSpec()
	}
	return prefabs.LoadSceneSpecFile(path)
}

// now is the scene clock in seconds, excluding time spent paused.
func (g *Game) now() float64 {
	return (time.Since(g.start) - g.pausedFor).Seconds()
}

func (g *Game) setPaused(paused bool) {
	if paused == g.paused {
		return
	}
	g.paused = paused
	if paused {
		g.pausedAt = time.Now()
		g.input.Reset()
		return
	}
	g.pausedFor += time.Since(g.pausedAt)
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	if pausePressed() {
		g.setPaused(!g.paused)
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.drainWatcher()
	g.input.Update()
	g.world.Update()
	return nil
}

func pausePressed() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		return true
	}
	for _, id := range ebiten.GamepadIDs() {
		if inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight) {
			return true
		}
	}
	return false
}

func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Changes:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(name)
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("game: watcher: %v", err)
			}
		default:
			return
		}
	}
}

// reload applies tunables from a changed spec. Geometry and textures stay as
// built; a bad file keeps the last good configuration.
func (g *Game) reload(changed string) {
	spec, err := prefabs.LoadSceneSpecFile(changed)
	if err != nil {
		log.Printf("game: reload %s: %v", changed, err)
		return
	}
	g.scene.Controller.SetConfig(entity.CharacterConfig(spec.Character))
	anim := g.scene.Controller.Animator()
	if tuned, err := entity.NewAnimator(spec.Character.Animation); err == nil {
		anim.CycleDuration = tuned.CycleDuration
		anim.JumpRotation = tuned.JumpRotation
		anim.JumpSquash = tuned.JumpSquash
	}
	g.debug = spec.DebugDrawing || g.opts.Debug
	log.Printf("game: reloaded %s", changed)
}

func (g *Game) Draw(screen *ebiten.Image) {
	h := g.spec.Height
	render.DrawSprites(g.world, screen, g.textures, h)

	if g.debug {
		render.DrawPlayableArea(screen, g.scene.Area.Rect, h)
		render.DrawPhysicsDebug(screen, g.physics.Space(), h)
		render.DrawCharacterState(screen, g.scene.Controller.State())
	}

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.SceneSize()
}

func (g *Game) SceneSize() (int, int) {
	return int(g.spec.Width), int(g.spec.Height)
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}
