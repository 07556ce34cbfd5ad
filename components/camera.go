package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position math.Vec2
	Target   math.Vec2 // Point the camera eases toward
	AutoPan  bool      // Target follows the autopan tween instead of input
}

var Camera = donburi.NewComponentType[CameraData]()

// ScreenShakeData offsets the camera for a few frames.
type ScreenShakeData struct {
	Intensity float64 // pixels
	Duration  int     // frames
	Elapsed   int
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()
