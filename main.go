package main

import (
	"flag"
	"log"

	cfg "github.com/automoto/parallax/config"
	"github.com/automoto/parallax/fonts"
	"github.com/automoto/parallax/scenes"
	"github.com/automoto/parallax/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return cfg.C.Width, cfg.C.Height
}

func main() {
	layers := flag.String("layers", "", "YAML layer file (.yaml/.yml)")
	tiledMap := flag.String("map", "", "Tiled map (.tmx) whose image layers become parallax layers")
	debug := flag.Bool("debug", false, "outline tiles and show the camera reference line")
	watch := flag.Bool("watch", false, "reload when the layer file changes")
	fresh := flag.Bool("fresh", false, "ignore the saved view")
	flag.Parse()

	cfg.Debug.ShowBounds = *debug

	src := scenes.Source{Path: *layers}
	if *tiledMap != "" {
		src.Path = *tiledMap
	}

	if err := fonts.LoadDefaults(cfg.UI.HUDFontSize); err != nil {
		log.Printf("Warning: Could not load HUD font: %v", err)
	}

	// Initialize persistence and load the saved view
	var view *systems.SavedView
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	} else if !*fresh {
		view = systems.LoadView()
	}

	var watcher *cfg.Watcher
	if *watch && src.Dir() != "" {
		w, err := cfg.NewWatcher(src.Dir())
		if err != nil {
			log.Printf("Warning: Could not watch %s: %v", src.Dir(), err)
		} else {
			watcher = w
			defer watcher.Close()
		}
	}

	g := &Game{}
	g.scene = scenes.NewParallaxScene(g, src, view, watcher)

	ebiten.SetWindowSize(cfg.C.Width*2, cfg.C.Height*2)
	ebiten.SetWindowTitle(cfg.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
