package systems

import (
	"fmt"

	"github.com/automoto/parallax/components"
	cfg "github.com/automoto/parallax/config"
	"github.com/automoto/parallax/fonts"
	"github.com/automoto/parallax/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// HUDLine is one line of the status overlay.
type HUDLine struct {
	Text  string
	Error bool
}

// HUDLines describes the camera and layer state shown in the overlay.
func HUDLines(w donburi.World) []HUDLine {
	var lines []HUDLine

	if cameraEntry, ok := tags.MainCamera.First(w); ok {
		camera := components.Camera.Get(cameraEntry)
		autopan := "off"
		if camera.AutoPan {
			autopan = "on"
		}
		lines = append(lines, HUDLine{Text: fmt.Sprintf("camera x %.1f  autopan %s", camera.Position.X, autopan)})
	}

	components.Parallax.Each(w, func(entry *donburi.Entry) {
		ctrl := components.Parallax.Get(entry).Controller
		if ctrl == nil {
			return
		}
		active := 0
		for _, layer := range ctrl.Layers() {
			if layer.Active() {
				active++
			}
		}
		lines = append(lines, HUDLine{Text: fmt.Sprintf("layers %d/%d active", active, len(ctrl.Layers()))})
		for _, layer := range ctrl.Layers() {
			if err := layer.Err(); err != nil {
				lines = append(lines, HUDLine{Text: err.Error(), Error: true})
			}
		}
	})
	return lines
}

// DrawHUD renders the status overlay in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowHUD || !fonts.HUD.Loaded() {
		return
	}
	face := fonts.HUD.Get()
	y := cfg.UI.HUDMargin + cfg.UI.HUDLineHeight
	for _, line := range HUDLines(ecs.World) {
		clr := cfg.UI.HUDColor
		if line.Error {
			clr = cfg.UI.HUDErrorColor
		}
		text.Draw(screen, line.Text, face, cfg.UI.HUDMargin, y, clr)
		y += cfg.UI.HUDLineHeight
	}
}
