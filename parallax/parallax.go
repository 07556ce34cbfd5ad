// Package parallax keeps pairs of recyclable background tiles scrolling at a
// fraction of the camera's horizontal movement.
//
// A Controller is built once from a list of LayerConfig values. Initialize
// instantiates two tiles per layer through the host Scene, and Update is
// called once per frame, after everything that moves the camera has run.
package parallax

import (
	"errors"

	"github.com/yohamta/donburi/features/math"
)

// AutoWidth asks Initialize to measure the tile width from the primary tile.
const AutoWidth = -1.0

var (
	ErrMissingTemplate = errors.New("parallax: layer template cannot be nil")
	ErrMissingBounds   = errors.New("parallax: layer needs a tile width or a template with a renderable")
)

// Renderable is a positioned object owned by the host scene.
type Renderable interface {
	Position() math.Vec2
	SetPosition(pos math.Vec2)
	// BoundsWidth reports the horizontal size of the object's visual bounds.
	// ok is false when the object has nothing to render.
	BoundsWidth() (width float64, ok bool)
}

// Scene creates independent copies of a template.
type Scene interface {
	Instantiate(template Renderable, name string) Renderable
}

// CameraProvider reports the world position of the camera driving the layers.
type CameraProvider interface {
	CameraPosition() math.Vec2
}

// CameraFunc adapts a function to CameraProvider.
type CameraFunc func() math.Vec2

func (f CameraFunc) CameraPosition() math.Vec2 {
	return f()
}
