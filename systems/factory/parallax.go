package factory

import (
	"log"

	"github.com/automoto/parallax/archetypes"
	"github.com/automoto/parallax/assets"
	"github.com/automoto/parallax/components"
	"github.com/automoto/parallax/config"
	"github.com/automoto/parallax/parallax"
	"github.com/automoto/parallax/systems"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateTemplate spawns the hidden prototype a layer clones, shifted right
// by offsetX. It returns nil when spec.Template is nil. A template whose
// image cannot be loaded is kept without a sprite.
func CreateTemplate(ecs *ecs.ECS, spec config.LayerSpec, offsetX float64) *donburi.Entry {
	if spec.Template == nil {
		return nil
	}
	tmpl := spec.Template

	entry := archetypes.Template.Spawn(ecs)
	components.ParallaxTemplate.SetValue(entry, components.ParallaxTemplateData{
		Name:  spec.Name,
		Depth: spec.Depth,
	})

	w, h := tmpl.Width, tmpl.Height
	img, ok, err := assets.TemplateImage(tmpl)
	if err != nil {
		log.Printf("Warning: layer %s: %v", spec.Name, err)
	}
	if ok {
		entry.AddComponent(components.Sprite)
		sprite := components.SpriteData{Image: img, Alpha: tmpl.Alpha}
		// Scale the image to the requested size when one is given.
		b := img.Bounds()
		if tmpl.Width > 0 && b.Dx() > 0 {
			sprite.ScaleX = tmpl.Width / float64(b.Dx())
		}
		if tmpl.Height > 0 && b.Dy() > 0 {
			sprite.ScaleY = tmpl.Height / float64(b.Dy())
		}
		components.Sprite.SetValue(entry, sprite)
		w, h = sprite.Size()
	}

	components.Object.SetValue(entry, components.ObjectData{
		Object: resolv.NewObject(tmpl.X+offsetX, tmpl.Y, w, h),
	})
	return entry
}

// CreateParallax builds a template per spec and a controller scrolling them,
// then runs the controller's one-time setup. A nil camera falls back to the
// world's main camera. Template x positions are relative to the left edge of
// the camera's starting view.
func CreateParallax(ecs *ecs.ECS, camera *donburi.Entry, specs []config.LayerSpec) *donburi.Entry {
	var provider parallax.CameraProvider
	if camera != nil {
		provider = systems.CameraOf(camera)
	} else if main, ok := systems.MainCamera(ecs.World); ok {
		provider = main
	} else {
		log.Printf("Warning: parallax has no camera, layers will not scroll")
	}

	var offsetX float64
	if provider != nil {
		offsetX = provider.CameraPosition().X - float64(config.C.Width)/2
	}

	configs := make([]parallax.LayerConfig, 0, len(specs))
	for _, spec := range specs {
		configs = append(configs, parallax.LayerConfig{
			Name:         spec.Name,
			Template:     systems.Renderable(CreateTemplate(ecs, spec, offsetX)),
			ScrollFactor: spec.ScrollFactor,
			TileWidth:    spec.ResolvedTileWidth(),
		})
	}

	ctrl := parallax.NewController(systems.NewScene(ecs), provider, configs...)
	ctrl.Initialize()

	entry := archetypes.Controller.Spawn(ecs)
	components.Parallax.SetValue(entry, components.ParallaxData{
		Controller: ctrl,
	})
	return entry
}
