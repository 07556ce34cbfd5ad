package scenes

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/automoto/parallax/components"
	cfg "github.com/automoto/parallax/config"
	"github.com/automoto/parallax/systems"
	"github.com/automoto/parallax/tags"
	"github.com/yohamta/donburi"
)

type recordingChanger struct {
	scenes []interface{}
}

func (r *recordingChanger) ChangeScene(scene interface{}) {
	r.scenes = append(r.scenes, scene)
}

func TestSourceLoadSpecs(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "layers.yaml")
	data := []byte("layers:\n  - name: hills\n    scroll_factor: 0.5\n    template:\n      color: \"#0f0\"\n")
	if err := os.WriteFile(yamlPath, data, 0o644); err != nil {
		t.Fatal(err)
	}

	defaults := len(cfg.DefaultLayers())
	cases := []struct {
		name  string
		src   Source
		count int
		first string
	}{
		{"builtin", Source{}, defaults, "sky"},
		{"yaml", Source{Path: yamlPath}, 1, "hills"},
		{"tiled", Source{Path: filepath.Join("..", "assets", "testdata", "hills.tmx")}, 3, "sky"},
		{"missing_file_falls_back", Source{Path: filepath.Join(dir, "nope.yaml")}, defaults, "sky"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			specs := tc.src.LoadSpecs()
			if len(specs) != tc.count {
				t.Fatalf("expected %d specs, got %d", tc.count, len(specs))
			}
			if specs[0].Name != tc.first {
				t.Fatalf("expected first layer %q, got %q", tc.first, specs[0].Name)
			}
		})
	}
}

func TestSourceDir(t *testing.T) {
	if (Source{}).Dir() != "" {
		t.Fatalf("expected no dir for built-in layers")
	}
	if got := (Source{Path: filepath.Join("a", "b.yaml")}).Dir(); got != "a" {
		t.Fatalf("expected dir a, got %q", got)
	}
}

func TestParallaxSceneConfigure(t *testing.T) {
	ps := NewParallaxScene(&recordingChanger{}, Source{}, nil, nil)
	w := ps.ECS().World

	camera, ok := tags.MainCamera.First(w)
	if !ok {
		t.Fatalf("expected a main camera")
	}
	pos := components.Camera.Get(camera).Position
	if pos.X != float64(cfg.C.Width)/2 || pos.Y != float64(cfg.C.Height)/2 {
		t.Fatalf("unexpected camera position %v", pos)
	}

	tiles := 0
	tags.Tile.Each(w, func(*donburi.Entry) { tiles++ })
	if want := 2 * len(cfg.DefaultLayers()); tiles != want {
		t.Fatalf("expected %d tiles, got %d", want, tiles)
	}
}

func TestParallaxSceneRestoresView(t *testing.T) {
	ps := NewParallaxScene(&recordingChanger{}, Source{}, &systems.SavedView{CameraX: 2000, CameraY: 180}, nil)

	view := ps.View()
	if view.CameraX != 2000 {
		t.Fatalf("expected restored x 2000, got %v", view.CameraX)
	}

	// Templates are laid out around the restored camera, so the first
	// layer's primary tile covers the view.
	entry, _ := components.Parallax.First(ps.ECS().World)
	layer := components.Parallax.Get(entry).Controller.Layers()[0]
	left := layer.Primary.Position().X - layer.TileWidth/2
	if left > 2000-float64(cfg.C.Width)/2 {
		t.Fatalf("primary tile starts at %v, right of the view", left)
	}
}

func TestParallaxSceneReload(t *testing.T) {
	changer := &recordingChanger{}
	ps := NewParallaxScene(changer, Source{}, nil, nil)
	camera, _ := tags.MainCamera.First(ps.ECS().World)
	components.Camera.Get(camera).Target.X = 777

	ps.reload()

	if len(changer.scenes) != 1 {
		t.Fatalf("expected one scene change, got %d", len(changer.scenes))
	}
	next, ok := changer.scenes[0].(*ParallaxScene)
	if !ok {
		t.Fatalf("expected a parallax scene, got %T", changer.scenes[0])
	}
	if next.View().CameraX != 777 {
		t.Fatalf("expected reloaded scene to keep x 777, got %v", next.View().CameraX)
	}
}
