package systems

import (
	"math"

	"github.com/automoto/parallax/components"
	cfg "github.com/automoto/parallax/config"
	"github.com/automoto/parallax/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera moves the main camera toward its target. The target follows
// the autopan tween or the pan actions.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := tags.MainCamera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	if inputEntry, ok := components.Input.First(e.World); ok {
		applyCameraInput(e, cameraEntry, camera, components.Input.Get(inputEntry))
	}

	if camera.AutoPan && cameraEntry.HasComponent(components.Tween) {
		tw := components.Tween.Get(cameraEntry)
		x, _, done := tw.Update(1 / float32(ebiten.TPS()))
		camera.Target.X = float64(x)
		if done {
			// Continue the sweep from where this leg ended.
			SetAutoPan(cameraEntry, true)
		}
	}

	camera.Position.X += (camera.Target.X - camera.Position.X) * cfg.Camera.FollowSmoothing
	camera.Position.Y += (camera.Target.Y - camera.Position.Y) * cfg.Camera.FollowSmoothing

	updateScreenShake(cameraEntry, camera)
}

func applyCameraInput(e *ecs.ECS, cameraEntry *donburi.Entry, camera *components.CameraData, input *components.InputData) {
	if GetAction(input, cfg.ActionToggleAutoPan).JustPressed {
		SetAutoPan(cameraEntry, !camera.AutoPan)
	}
	if GetAction(input, cfg.ActionShake).JustPressed {
		TriggerScreenShake(e, cfg.ScreenShake.Intensity, cfg.ScreenShake.Duration)
	}
	if GetAction(input, cfg.ActionTeleport).JustPressed {
		// Jump without smoothing; layers recycle at most one tile per frame.
		camera.Target.X += cfg.Camera.TeleportDistance
		camera.Position.X = camera.Target.X
	}

	if camera.AutoPan {
		return
	}
	if GetAction(input, cfg.ActionPanLeft).Pressed {
		camera.Target.X -= cfg.Camera.PanSpeed
	}
	if GetAction(input, cfg.ActionPanRight).Pressed {
		camera.Target.X += cfg.Camera.PanSpeed
	}
}

// SetAutoPan starts or stops the autopan sweep from the camera's current
// target.
func SetAutoPan(cameraEntry *donburi.Entry, enabled bool) {
	camera := components.Camera.Get(cameraEntry)
	camera.AutoPan = enabled
	if !enabled {
		return
	}

	from := float32(camera.Target.X)
	mid := from + float32(cfg.Camera.AutoPanDistance/2)
	to := from + float32(cfg.Camera.AutoPanDistance)
	half := float32(cfg.Camera.AutoPanSeconds / 2)

	// Layers only recycle rightward, so the sweep never turns back.
	tw := gween.NewSequence()
	tw.Add(
		gween.New(from, mid, half, ease.InQuad),
		gween.New(mid, to, half, ease.OutQuad),
	)
	if !cameraEntry.HasComponent(components.Tween) {
		cameraEntry.AddComponent(components.Tween)
	}
	components.Tween.Set(cameraEntry, tw)
}

// updateScreenShake applies screen shake offset to camera and decrements duration
func updateScreenShake(cameraEntry *donburi.Entry, camera *components.CameraData) {
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}

	shake := components.ScreenShake.Get(cameraEntry)
	shake.Elapsed++

	// Calculate decaying intensity
	progress := float64(shake.Duration-shake.Elapsed) / float64(shake.Duration)
	if progress < 0 {
		progress = 0
	}
	currentIntensity := shake.Intensity * progress

	camera.Position.X += math.Sin(float64(shake.Elapsed)*1.1) * currentIntensity
	camera.Position.Y += math.Cos(float64(shake.Elapsed)*1.3) * currentIntensity

	if shake.Elapsed >= shake.Duration {
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
}

// TriggerScreenShake starts a screen shake effect
func TriggerScreenShake(ecs *ecs.ECS, intensity float64, duration int) {
	cameraEntry, ok := tags.MainCamera.First(ecs.World)
	if !ok || duration <= 0 {
		return
	}

	if cameraEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(cameraEntry)
		// Only override if new shake is stronger
		if intensity > shake.Intensity {
			shake.Intensity = intensity
			shake.Duration = duration
			shake.Elapsed = 0
		}
		return
	}

	cameraEntry.AddComponent(components.ScreenShake)
	components.ScreenShake.Set(cameraEntry, &components.ScreenShakeData{
		Intensity: intensity,
		Duration:  duration,
	})
}
