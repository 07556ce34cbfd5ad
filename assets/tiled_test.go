package assets

import (
	"path/filepath"
	"testing"

	"github.com/automoto/parallax/config"
)

func TestLoadTiledLayers(t *testing.T) {
	specs, err := LoadTiledLayers(filepath.Join("testdata", "hills.tmx"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(specs) != 3 {
		t.Fatalf("expected 3 layers, got %d", len(specs))
	}

	sky, hills, empty := specs[0], specs[1], specs[2]

	t.Run("sky", func(t *testing.T) {
		if sky.Name != "sky" || sky.ScrollFactor != 0.9 || sky.Depth != 0 {
			t.Fatalf("unexpected sky spec %+v", sky)
		}
		if sky.ResolvedTileWidth() != config.AutoTileWidth {
			t.Fatalf("sky should use auto width")
		}
		if sky.Template == nil {
			t.Fatalf("sky should have a template")
		}
		if want := filepath.Join("testdata", "images", "sky.png"); sky.Template.Image != want {
			t.Fatalf("expected image %q, got %q", want, sky.Template.Image)
		}
		if sky.Template.Width != 640 || sky.Template.Height != 192 || sky.Template.Alpha != 0.5 {
			t.Fatalf("unexpected sky template %+v", sky.Template)
		}
	})

	t.Run("hills", func(t *testing.T) {
		if hills.ScrollFactor != 0.5 || hills.ResolvedTileWidth() != 300 || hills.Depth != 7 {
			t.Fatalf("unexpected hills spec %+v", hills)
		}
		if hills.Template.X != 16 || hills.Template.Y != 120 {
			t.Fatalf("expected offset (16,120), got (%v,%v)", hills.Template.X, hills.Template.Y)
		}
	})

	t.Run("empty", func(t *testing.T) {
		if empty.Template != nil {
			t.Fatalf("layer without image must have no template")
		}
		if empty.ScrollFactor != config.Parallax.MaxScrollFactor {
			t.Fatalf("scroll factor should be clamped, got %v", empty.ScrollFactor)
		}
	})
}

func TestLoadTiledLayersMissingFile(t *testing.T) {
	if _, err := LoadTiledLayers(filepath.Join("testdata", "nope.tmx")); err == nil {
		t.Fatalf("expected error")
	}
}
