package parallax

import (
	"fmt"
	"log"

	"github.com/yohamta/donburi/features/math"
)

// Controller owns the layers of one scene and scrolls them every frame.
type Controller struct {
	scene  Scene
	camera CameraProvider
	layers []*Layer

	previousCamera math.Vec2
	initialized    bool
}

// NewController creates a controller for the given layers. Nothing is
// instantiated until Initialize is called.
func NewController(scene Scene, camera CameraProvider, configs ...LayerConfig) *Controller {
	layers := make([]*Layer, 0, len(configs))
	for _, cfg := range configs {
		layers = append(layers, newLayer(cfg))
	}
	return &Controller{
		scene:  scene,
		camera: camera,
		layers: layers,
	}
}

// Initialize generates the tile pair of every layer in order. A layer that
// cannot be configured is logged and left inert; the others are unaffected.
// The camera position at this point is the reference for the first Update.
// Calling Initialize more than once has no effect.
func (c *Controller) Initialize() {
	if c.initialized {
		return
	}
	c.initialized = true
	if c.camera != nil {
		c.previousCamera = c.camera.CameraPosition()
	}

	for i, layer := range c.layers {
		if err := layer.generate(c.scene); err != nil {
			layer.err = fmt.Errorf("layer %d (%s): %w", i, layer.Name, err)
			log.Printf("Warning: %v", layer.err)
		}
	}
}

// Initialized reports whether Initialize has run.
func (c *Controller) Initialized() bool {
	return c.initialized
}

// Layers returns the layers in configuration order.
func (c *Controller) Layers() []*Layer {
	return c.layers
}

// PreviousCamera is the camera position observed by the last Update.
func (c *Controller) PreviousCamera() math.Vec2 {
	return c.previousCamera
}

// Update moves every active layer by the camera's horizontal displacement
// since the previous call. It must run after the camera has moved for the
// frame.
func (c *Controller) Update() {
	if !c.initialized || c.camera == nil {
		return
	}

	camera := c.camera.CameraPosition()
	deltaX := camera.X - c.previousCamera.X
	c.previousCamera = camera

	if deltaX == 0 {
		return
	}

	for _, layer := range c.layers {
		if !layer.Active() {
			continue
		}
		layer.scroll(camera.X, deltaX)
	}
}
