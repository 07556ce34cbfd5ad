package assets

import (
	"fmt"
	"image/color"
	_ "image/png"
	"sync"

	"github.com/automoto/parallax/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ImageLoader caches images read from disk by path.
type ImageLoader struct {
	mu    sync.Mutex
	cache map[string]*ebiten.Image
}

func NewImageLoader() *ImageLoader {
	return &ImageLoader{
		cache: make(map[string]*ebiten.Image),
	}
}

var imageLoader = NewImageLoader()

func (l *ImageLoader) LoadImage(path string) (*ebiten.Image, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if img, ok := l.cache[path]; ok {
		return img, nil
	}

	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("assets: load image %s: %w", path, err)
	}

	l.cache[path] = img
	return img, nil
}

// Reset drops every cached image so the next loads read the files again.
func (l *ImageLoader) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	clear(l.cache)
}

func LoadImage(path string) (*ebiten.Image, error) {
	return imageLoader.LoadImage(path)
}

func ResetImages() {
	imageLoader.Reset()
}

// Placeholder draws a flat tile with a darker seam on its left edge and a
// few stripes, so tile boundaries stay visible while scrolling.
func Placeholder(w, h int, fill color.RGBA) *ebiten.Image {
	if w <= 0 {
		w = config.Parallax.PlaceholderWidth
	}
	if h <= 0 {
		h = config.Parallax.PlaceholderHeight
	}
	img := ebiten.NewImage(w, h)
	img.Fill(fill)

	shade := color.RGBA{fill.R / 2, fill.G / 2, fill.B / 2, fill.A}
	vector.DrawFilledRect(img, 0, 0, 2, float32(h), shade, false)
	if step := w / 4; step > 0 {
		for x := step; x < w; x += step {
			vector.DrawFilledRect(img, float32(x), float32(h)/3, 1, float32(h)/3, shade, false)
		}
	}
	return img
}

// TemplateImage returns the sprite image a template describes. ok is false
// when the template has no renderable.
func TemplateImage(spec *config.TemplateSpec) (img *ebiten.Image, ok bool, err error) {
	if !spec.HasRenderable() {
		return nil, false, nil
	}
	if spec.Image != "" {
		img, err := LoadImage(spec.Image)
		if err != nil {
			return nil, false, err
		}
		return img, true, nil
	}
	fill, hasFill, err := spec.FillColor()
	if err != nil {
		return nil, false, err
	}
	if !hasFill {
		fill = color.RGBA{128, 128, 128, 255}
	}
	return Placeholder(int(spec.Width), int(spec.Height), fill), true, nil
}
