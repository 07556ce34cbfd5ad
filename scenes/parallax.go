package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/parallax/assets"
	"github.com/automoto/parallax/components"
	cfg "github.com/automoto/parallax/config"
	"github.com/automoto/parallax/systems"
	"github.com/automoto/parallax/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// ParallaxScene shows a set of parallax layers driven by a pannable camera.
type ParallaxScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	source       Source
	watcher      *cfg.Watcher
	view         *systems.SavedView
	once         sync.Once
}

// NewParallaxScene creates a scene for src. view, when not nil, restores the
// camera. watcher, when not nil, triggers a reload on layer file changes.
func NewParallaxScene(sc SceneChanger, src Source, view *systems.SavedView, watcher *cfg.Watcher) *ParallaxScene {
	return &ParallaxScene{
		sceneChanger: sc,
		source:       src,
		view:         view,
		watcher:      watcher,
	}
}

func (ps *ParallaxScene) Update() error {
	ps.once.Do(ps.configure)
	ps.ecs.Update()

	if err := ps.watcher.Err(); err != nil {
		log.Printf("Warning: layer file watcher: %v", err)
	}
	if name, changed := ps.watcher.Poll(); changed {
		log.Printf("layer file %s changed, reloading", name)
		ps.reload()
		return nil
	}

	inputEntry, ok := components.Input.First(ps.ecs.World)
	if !ok {
		return nil
	}
	input := components.Input.Get(inputEntry)

	if systems.GetAction(input, cfg.ActionToggleDebug).JustPressed {
		cfg.Debug.ShowBounds = !cfg.Debug.ShowBounds
	}
	if systems.GetAction(input, cfg.ActionReload).JustPressed {
		ps.reload()
		return nil
	}
	if systems.GetAction(input, cfg.ActionQuit).JustPressed {
		_ = systems.SaveView(ps.View())
		return ebiten.Termination
	}
	return nil
}

func (ps *ParallaxScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

// View captures the current camera state.
func (ps *ParallaxScene) View() *systems.SavedView {
	if ps.ecs == nil {
		return ps.view
	}
	return systems.CaptureView(ps.ecs.World)
}

// ECS exposes the scene's world, mostly for tests.
func (ps *ParallaxScene) ECS() *ecs.ECS {
	ps.once.Do(ps.configure)
	return ps.ecs
}

// reload rebuilds the scene from its source, keeping the camera where it is.
func (ps *ParallaxScene) reload() {
	assets.ResetImages()
	ps.sceneChanger.ChangeScene(NewParallaxScene(ps.sceneChanger, ps.source, ps.View(), ps.watcher))
}

func (ps *ParallaxScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateCamera)
	// Must stay last: layers scroll against the camera's final position.
	ecs.AddSystem(systems.UpdateParallax)

	ecs.AddRenderer(cfg.Default, systems.DrawParallax)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)

	ps.ecs = ecs

	camera := factory.CreateCamera(ps.ecs, float64(cfg.C.Width)/2, float64(cfg.C.Height)/2)
	systems.ApplyView(ps.ecs.World, ps.view)

	factory.CreateParallax(ps.ecs, camera, ps.source.LoadSpecs())
}
