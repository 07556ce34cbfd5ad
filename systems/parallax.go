package systems

import (
	"log"

	"github.com/automoto/parallax/archetypes"
	"github.com/automoto/parallax/components"
	"github.com/automoto/parallax/parallax"
	"github.com/automoto/parallax/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// entryRenderable exposes an entity with an Object to the parallax package.
// Positions are the center of the object, matching a centered sprite pivot.
// Tiles keep that center on ParallaxTile so writes read back unchanged.
type entryRenderable struct {
	entry *donburi.Entry
}

// Renderable wraps entry for the parallax package. A nil entry yields a nil
// Renderable, which the controller reports as a missing template.
func Renderable(entry *donburi.Entry) parallax.Renderable {
	if entry == nil {
		return nil
	}
	return entryRenderable{entry: entry}
}

// EntryOf returns the entity behind a Renderable created by this package.
func EntryOf(r parallax.Renderable) (*donburi.Entry, bool) {
	er, ok := r.(entryRenderable)
	if !ok {
		return nil, false
	}
	return er.entry, true
}

func (r entryRenderable) Position() math.Vec2 {
	if r.entry.HasComponent(components.ParallaxTile) {
		return components.ParallaxTile.Get(r.entry).Center
	}
	o := components.Object.Get(r.entry)
	if o.Object == nil {
		return math.Vec2{}
	}
	return math.NewVec2(o.X+o.W/2, o.Y+o.H/2)
}

func (r entryRenderable) SetPosition(pos math.Vec2) {
	if r.entry.HasComponent(components.ParallaxTile) {
		components.ParallaxTile.Get(r.entry).Center = pos
	}
	o := components.Object.Get(r.entry)
	if o.Object == nil {
		return
	}
	o.X = pos.X - o.W/2
	o.Y = pos.Y - o.H/2
}

func (r entryRenderable) BoundsWidth() (float64, bool) {
	if !r.entry.HasComponent(components.Sprite) {
		return 0, false
	}
	w, _ := components.Sprite.Get(r.entry).Size()
	if w <= 0 {
		return 0, false
	}
	return w, true
}

// worldScene instantiates parallax tiles as entities of an ECS world.
type worldScene struct {
	ecs *ecs.ECS
}

// NewScene returns a parallax.Scene spawning tiles into e.
func NewScene(e *ecs.ECS) parallax.Scene {
	return worldScene{ecs: e}
}

func (s worldScene) Instantiate(template parallax.Renderable, name string) parallax.Renderable {
	tile := archetypes.Tile.Spawn(s.ecs)

	src, ok := EntryOf(template)
	if !ok {
		// Foreign templates only provide a position.
		pos := template.Position()
		components.Object.SetValue(tile, components.ObjectData{Object: resolv.NewObject(pos.X, pos.Y, 0, 0)})
		components.ParallaxTile.SetValue(tile, components.ParallaxTileData{Name: name, Center: pos})
		return entryRenderable{entry: tile}
	}

	var x, y, w, h float64
	if o := components.Object.Get(src); o.Object != nil {
		x, y, w, h = o.X, o.Y, o.W, o.H
	}
	components.Object.SetValue(tile, components.ObjectData{Object: resolv.NewObject(x, y, w, h)})

	if src.HasComponent(components.Sprite) {
		tile.AddComponent(components.Sprite)
		components.Sprite.SetValue(tile, *components.Sprite.Get(src))
	}

	data := components.ParallaxTileData{
		Name:   name,
		Center: Renderable(src).Position(),
	}
	if src.HasComponent(components.ParallaxTemplate) {
		tmpl := components.ParallaxTemplate.Get(src)
		data.Template = tmpl.Name
		data.Depth = tmpl.Depth
	}
	components.ParallaxTile.SetValue(tile, data)

	return entryRenderable{entry: tile}
}

// CameraOf reads the position of a specific camera entity. Once the entity
// is removed the last known position is reported.
func CameraOf(entry *donburi.Entry) parallax.CameraProvider {
	var last math.Vec2
	return parallax.CameraFunc(func() math.Vec2 {
		if entry.Valid() {
			last = components.Camera.Get(entry).Position
		}
		return last
	})
}

// MainCamera looks up the main camera of the world. ok is false when the
// world has none.
func MainCamera(w donburi.World) (parallax.CameraProvider, bool) {
	entry, ok := tags.MainCamera.First(w)
	if !ok {
		return nil, false
	}
	return CameraOf(entry), true
}

// UpdateParallax scrolls every parallax controller of the world. Register it
// after every system that moves the camera.
func UpdateParallax(e *ecs.ECS) {
	components.Parallax.Each(e.World, func(entry *donburi.Entry) {
		data := components.Parallax.Get(entry)
		if data.Controller == nil {
			return
		}
		if !data.Controller.Initialized() {
			log.Printf("Warning: parallax controller updated before setup, initializing now")
			data.Controller.Initialize()
		}
		data.Controller.Update()
	})
}
