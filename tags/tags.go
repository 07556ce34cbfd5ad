package tags

import "github.com/yohamta/donburi"

var (
	MainCamera = donburi.NewTag().SetName("MainCamera")
	Template   = donburi.NewTag().SetName("ParallaxTemplate")
	Tile       = donburi.NewTag().SetName("ParallaxTile")
)
