package parallax

import "fmt"

// LayerConfig describes one scrolling track.
type LayerConfig struct {
	Name     string
	Template Renderable

	// ScrollFactor scales the camera's x displacement applied to the layer.
	// 0 keeps the layer fixed in the world, 1 moves it with the camera.
	// Negative values scroll faster than the camera.
	ScrollFactor float64

	// TileWidth is the width of one tile, or AutoWidth.
	TileWidth float64
}

// Layer is the runtime state of a LayerConfig after Initialize.
type Layer struct {
	Name         string
	ScrollFactor float64
	TileWidth    float64

	Primary   Renderable
	Secondary Renderable

	template Renderable
	err      error
}

func newLayer(cfg LayerConfig) *Layer {
	return &Layer{
		Name:         cfg.Name,
		ScrollFactor: cfg.ScrollFactor,
		TileWidth:    cfg.TileWidth,
		template:     cfg.Template,
	}
}

// Err returns the configuration error that left the layer inert.
func (l *Layer) Err() error {
	return l.err
}

// Active reports whether the layer takes part in scrolling.
func (l *Layer) Active() bool {
	return l.err == nil && l.Primary != nil && l.Secondary != nil
}

// generate instantiates the tile pair and resolves the tile width.
func (l *Layer) generate(scene Scene) error {
	if l.template == nil {
		return ErrMissingTemplate
	}

	name := l.Name
	if name == "" {
		name = "layer"
	}
	l.Primary = scene.Instantiate(l.template, fmt.Sprintf("%s (Parallax Primary)", name))
	l.Secondary = scene.Instantiate(l.template, fmt.Sprintf("%s (Parallax Secondary)", name))

	if l.TileWidth == AutoWidth {
		width, ok := l.Primary.BoundsWidth()
		if !ok {
			return ErrMissingBounds
		}
		l.TileWidth = width
	}
	return nil
}

// scroll applies one frame of camera movement to the tile pair.
func (l *Layer) scroll(cameraX, deltaX float64) {
	pos := l.Primary.Position()
	pos.X += deltaX * l.ScrollFactor

	// The primary tile fell a whole tile behind the camera: move it forward
	// so the pair keeps covering the view.
	if cameraX-pos.X > l.TileWidth {
		pos.X += l.TileWidth
	}

	l.Primary.SetPosition(pos)

	pos.X += l.TileWidth
	l.Secondary.SetPosition(pos)
}
