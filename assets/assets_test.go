package assets

import (
	"image/color"
	"testing"

	"github.com/automoto/parallax/config"
)

func TestTemplateImage(t *testing.T) {
	off := false
	cases := []struct {
		name   string
		spec   *config.TemplateSpec
		ok     bool
		width  int
		height int
	}{
		{"nil_template", nil, false, 0, 0},
		{"not_renderable", &config.TemplateSpec{Renderable: &off, Width: 50}, false, 0, 0},
		{"colored", &config.TemplateSpec{Color: "#336699", Width: 5, Height: 4}, true, 5, 4},
		{"default_size", &config.TemplateSpec{Color: "#336699"}, true, config.Parallax.PlaceholderWidth, config.Parallax.PlaceholderHeight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			img, ok, err := TemplateImage(tc.spec)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ok != tc.ok {
				t.Fatalf("expected ok=%v, got %v", tc.ok, ok)
			}
			if !ok {
				if img != nil {
					t.Fatalf("expected no image")
				}
				return
			}
			if b := img.Bounds(); b.Dx() != tc.width || b.Dy() != tc.height {
				t.Fatalf("expected %dx%d, got %dx%d", tc.width, tc.height, b.Dx(), b.Dy())
			}
		})
	}
}

func TestTemplateImageMissingFile(t *testing.T) {
	_, ok, err := TemplateImage(&config.TemplateSpec{Image: "testdata/images/none.png"})
	if err == nil || ok {
		t.Fatalf("expected load error, got ok=%v err=%v", ok, err)
	}
}

func TestPlaceholderSize(t *testing.T) {
	img := Placeholder(12, 6, color.RGBA{10, 20, 30, 255})
	if b := img.Bounds(); b.Dx() != 12 || b.Dy() != 6 {
		t.Fatalf("unexpected size %v", b)
	}
}
