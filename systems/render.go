package systems

import (
	"sort"

	"github.com/automoto/parallax/components"
	cfg "github.com/automoto/parallax/config"
	"github.com/automoto/parallax/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var drawOp = &ebiten.DrawImageOptions{}

// Reused between frames to avoid allocating the draw list
var tileDrawList []*donburi.Entry

// DrawParallax draws every tile back to front, relative to the main camera.
func DrawParallax(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := tags.MainCamera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	minX := camera.Position.X - float64(width)/2
	maxX := camera.Position.X + float64(width)/2
	minY := camera.Position.Y - float64(height)/2
	maxY := camera.Position.Y + float64(height)/2

	tileDrawList = tileDrawList[:0]
	tags.Tile.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Sprite) {
			return
		}
		o := components.Object.Get(e)
		if o.Object == nil {
			return
		}
		sprite := components.Sprite.Get(e)
		w, h := sprite.Size()

		// Viewport Culling
		if o.X+w < minX || o.X > maxX || o.Y+h < minY || o.Y > maxY {
			return
		}
		tileDrawList = append(tileDrawList, e)
	})

	sort.SliceStable(tileDrawList, func(i, j int) bool {
		return components.ParallaxTile.Get(tileDrawList[i]).Depth < components.ParallaxTile.Get(tileDrawList[j]).Depth
	})

	for _, e := range tileDrawList {
		o := components.Object.Get(e)
		sprite := components.Sprite.Get(e)

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()

		drawOp.GeoM.Scale(sprite.Scale())
		drawOp.GeoM.Translate(o.X, o.Y)
		drawOp.GeoM.Translate(float64(width)/2-camera.Position.X, float64(height)/2-camera.Position.Y)
		if sprite.Alpha > 0 && sprite.Alpha < 1 {
			drawOp.ColorScale.ScaleAlpha(float32(sprite.Alpha))
		}

		screen.DrawImage(sprite.Image, drawOp)
	}
}

// DrawDebug outlines tiles and marks the camera's reference line.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowBounds {
		return
	}
	cameraEntry, ok := tags.MainCamera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	offX := float64(width)/2 - camera.Position.X
	offY := float64(height)/2 - camera.Position.Y

	tags.Tile.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		if o.Object == nil {
			return
		}
		w, h := o.W, o.H
		if e.HasComponent(components.Sprite) {
			w, h = components.Sprite.Get(e).Size()
		}
		vector.StrokeRect(screen,
			float32(o.X+offX), float32(o.Y+offY),
			float32(w), float32(h),
			1, cfg.UI.BoundsColor, false)
	})

	vector.StrokeLine(screen, float32(width)/2, 0, float32(width)/2, float32(height), 1, cfg.UI.InertColor, false)
}
