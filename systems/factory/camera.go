package factory

import (
	"github.com/automoto/parallax/archetypes"
	"github.com/automoto/parallax/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera spawns the main camera centered on (x, y).
func CreateCamera(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	pos := math.NewVec2(x, y)
	components.Camera.SetValue(camera, components.CameraData{
		Position: pos,
		Target:   pos,
	})
	return camera
}
