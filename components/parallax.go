package components

import (
	"github.com/automoto/parallax/parallax"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ParallaxTemplateData marks a prototype entity that layers clone. Templates
// are never drawn.
type ParallaxTemplateData struct {
	Name  string
	Depth int
}

var ParallaxTemplate = donburi.NewComponentType[ParallaxTemplateData]()

// ParallaxTileData is carried by every instantiated tile.
type ParallaxTileData struct {
	Name     string // e.g. "hills (Parallax Primary)"
	Template string
	Depth    int // Draw order, lower first

	// Center is the position the controller works with. Object is kept in
	// sync for drawing but never read back.
	Center math.Vec2
}

var ParallaxTile = donburi.NewComponentType[ParallaxTileData]()

// ParallaxData holds the controller scrolling the scene's layers.
type ParallaxData struct {
	Controller *parallax.Controller
}

var Parallax = donburi.NewComponentType[ParallaxData]()
