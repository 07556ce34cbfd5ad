package factory

import (
	"errors"
	"testing"

	"github.com/automoto/parallax/components"
	"github.com/automoto/parallax/config"
	"github.com/automoto/parallax/parallax"
	"github.com/automoto/parallax/systems"
	"github.com/automoto/parallax/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newTestECS() *ecs.ECS {
	return ecs.NewECS(donburi.NewWorld())
}

func countTiles(w donburi.World) int {
	n := 0
	tags.Tile.Each(w, func(*donburi.Entry) { n++ })
	return n
}

func width(w float64) *float64 {
	return &w
}

func TestCreateTemplate(t *testing.T) {
	e := newTestECS()
	off := false

	cases := []struct {
		name      string
		spec      config.LayerSpec
		nilEntry  bool
		hasSprite bool
		w, h      float64
	}{
		{"no_template", config.LayerSpec{Name: "a"}, true, false, 0, 0},
		{"colored", config.LayerSpec{Name: "b", Template: &config.TemplateSpec{Color: "#fff", Width: 5, Height: 3}}, false, true, 5, 3},
		{"not_renderable", config.LayerSpec{Name: "c", Template: &config.TemplateSpec{Renderable: &off, Width: 5}}, false, false, 5, 0},
		{"missing_image", config.LayerSpec{Name: "d", Template: &config.TemplateSpec{Image: "testdata/none.png"}}, false, false, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			entry := CreateTemplate(e, tc.spec, 0)
			if tc.nilEntry {
				if entry != nil {
					t.Fatalf("expected no template entity")
				}
				return
			}
			if got := entry.HasComponent(components.Sprite); got != tc.hasSprite {
				t.Fatalf("expected sprite=%v, got %v", tc.hasSprite, got)
			}
			o := components.Object.Get(entry)
			if o.W != tc.w || o.H != tc.h {
				t.Fatalf("expected %vx%v, got %vx%v", tc.w, tc.h, o.W, o.H)
			}
		})
	}
}

func TestCreateTemplateOffset(t *testing.T) {
	e := newTestECS()
	entry := CreateTemplate(e, config.LayerSpec{
		Name:     "hills",
		Template: &config.TemplateSpec{Color: "#fff", Width: 4, Height: 4, X: 10, Y: 20},
	}, 100)
	o := components.Object.Get(entry)
	if o.X != 110 || o.Y != 20 {
		t.Fatalf("expected (110, 20), got (%v, %v)", o.X, o.Y)
	}
}

func TestCreateParallax(t *testing.T) {
	e := newTestECS()
	CreateCamera(e, float64(config.C.Width)/2, float64(config.C.Height)/2)

	entry := CreateParallax(e, nil, []config.LayerSpec{
		{Name: "hills", ScrollFactor: 0.5, TileWidth: width(config.AutoTileWidth),
			Template: &config.TemplateSpec{Color: "#0f0", Width: 5, Height: 5}},
		{Name: "fixed", ScrollFactor: 1, TileWidth: width(64),
			Template: &config.TemplateSpec{Color: "#00f", Width: 5, Height: 5}},
		{Name: "missing", ScrollFactor: 0.2, TileWidth: width(config.AutoTileWidth)},
		{Name: "no_bounds", ScrollFactor: 0.2, TileWidth: width(config.AutoTileWidth),
			Template: &config.TemplateSpec{Renderable: new(bool)}},
	})

	ctrl := components.Parallax.Get(entry).Controller
	if !ctrl.Initialized() {
		t.Fatalf("expected controller to be initialized")
	}
	layers := ctrl.Layers()
	if len(layers) != 4 {
		t.Fatalf("expected 4 layers, got %d", len(layers))
	}
	if layers[0].TileWidth != 5 || !layers[0].Active() {
		t.Errorf("expected auto width 5, got %v", layers[0].TileWidth)
	}
	if layers[1].TileWidth != 64 {
		t.Errorf("expected explicit width 64, got %v", layers[1].TileWidth)
	}
	if !errors.Is(layers[2].Err(), parallax.ErrMissingTemplate) {
		t.Errorf("expected missing template, got %v", layers[2].Err())
	}
	if !errors.Is(layers[3].Err(), parallax.ErrMissingBounds) {
		t.Errorf("expected missing bounds, got %v", layers[3].Err())
	}

	// Three layers had templates; the missing one spawned nothing.
	if got := countTiles(e.World); got != 6 {
		t.Fatalf("expected 6 tiles, got %d", got)
	}
}

func TestCreateParallaxScrollsWithCamera(t *testing.T) {
	e := newTestECS()
	camera := CreateCamera(e, float64(config.C.Width)/2, 0)

	entry := CreateParallax(e, camera, []config.LayerSpec{
		{Name: "ground", ScrollFactor: 0, TileWidth: width(config.AutoTileWidth),
			Template: &config.TemplateSpec{Color: "#fff", Width: 10, Height: 10, X: 315}},
	})
	layer := components.Parallax.Get(entry).Controller.Layers()[0]
	start := layer.Primary.Position().X

	cam := components.Camera.Get(camera)
	for _, x := range []float64{cam.Position.X + 5, cam.Position.X + 11, cam.Position.X + 17} {
		cam.Position.X = x
		systems.UpdateParallax(e)

		p, s := layer.Primary.Position().X, layer.Secondary.Position().X
		if s-p != 10 {
			t.Fatalf("secondary not adjacent: primary %v secondary %v", p, s)
		}
	}

	// A static layer only moves by recycling.
	if got := layer.Primary.Position().X; got != start+10 {
		t.Fatalf("expected one recycle to %v, got %v", start+10, got)
	}
}

func TestCreateParallaxWithoutCamera(t *testing.T) {
	e := newTestECS()
	entry := CreateParallax(e, nil, config.DefaultLayers())

	ctrl := components.Parallax.Get(entry).Controller
	for _, layer := range ctrl.Layers() {
		if !layer.Active() {
			t.Fatalf("layer %s inactive: %v", layer.Name, layer.Err())
		}
	}
	// Without a camera nothing scrolls.
	before := ctrl.Layers()[0].Primary.Position()
	systems.UpdateParallax(e)
	if ctrl.Layers()[0].Primary.Position() != before {
		t.Fatalf("layer moved without a camera")
	}
}

func TestCreateParallaxFractionalWidths(t *testing.T) {
	e := newTestECS()
	camera := CreateCamera(e, float64(config.C.Width)/2+0.35, 0)

	entry := CreateParallax(e, camera, []config.LayerSpec{
		{Name: "clouds", ScrollFactor: 0.37, TileWidth: width(101 * 0.1),
			Template: &config.TemplateSpec{Color: "#fff", Width: 10, Height: 10, X: 315}},
		{Name: "haze", ScrollFactor: -0.2, TileWidth: width(6.3),
			Template: &config.TemplateSpec{Color: "#ccc", Width: 6, Height: 6, X: 317.15}},
	})
	ctrl := components.Parallax.Get(entry).Controller

	cam := components.Camera.Get(camera)
	for frame := 0; frame < 1000; frame++ {
		cam.Position.X += 0.173
		systems.UpdateParallax(e)

		for _, layer := range ctrl.Layers() {
			p, s := layer.Primary.Position().X, layer.Secondary.Position().X
			if s != p+layer.TileWidth {
				t.Fatalf("frame %d layer %s: secondary %v, want %v + %v", frame, layer.Name, s, p, layer.TileWidth)
			}
		}
	}
}
