package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/parallax/components"
	cfg "github.com/automoto/parallax/config"
	"github.com/automoto/parallax/tags"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi"
)

// SavedView is the viewer state stored between runs
type SavedView struct {
	CameraX   float64 `json:"cameraX"`
	CameraY   float64 `json:"cameraY"`
	AutoPan   bool    `json:"autoPan"`
	ShowDebug bool    `json:"showDebug"`
}

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for view storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Persistence.AppName,
	})
	if err != nil {
		return err
	}
	gdataManager = m
	return nil
}

// LoadView loads the saved view. It returns nil when persistence is
// unavailable or nothing was saved yet.
func LoadView() *SavedView {
	if gdataManager == nil {
		return nil
	}

	data, err := gdataManager.LoadItem(cfg.Persistence.ViewItem)
	if err != nil {
		log.Printf("Warning: Could not load view: %v", err)
		return nil
	}
	if data == nil {
		return nil
	}

	var view SavedView
	if err := json.Unmarshal(data, &view); err != nil {
		log.Printf("Warning: Could not parse saved view: %v", err)
		return nil
	}
	return &view
}

// SaveView writes the view to disk
func SaveView(v *SavedView) error {
	if gdataManager == nil || v == nil {
		return nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("Warning: Could not serialize view: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(cfg.Persistence.ViewItem, data); err != nil {
		log.Printf("Warning: Could not save view: %v", err)
		return err
	}
	return nil
}

// CaptureView reads the current view from the world's main camera.
func CaptureView(w donburi.World) *SavedView {
	entry, ok := tags.MainCamera.First(w)
	if !ok {
		return nil
	}
	camera := components.Camera.Get(entry)
	return &SavedView{
		CameraX:   camera.Target.X,
		CameraY:   camera.Target.Y,
		AutoPan:   camera.AutoPan,
		ShowDebug: cfg.Debug.ShowBounds,
	}
}

// ApplyView places the main camera where the saved view left it. Call before
// the parallax controller is initialized so the restored position is the
// controller's starting reference.
func ApplyView(w donburi.World, v *SavedView) {
	if v == nil {
		return
	}
	entry, ok := tags.MainCamera.First(w)
	if !ok {
		return
	}
	camera := components.Camera.Get(entry)
	camera.Position.X, camera.Position.Y = v.CameraX, v.CameraY
	camera.Target = camera.Position
	if v.AutoPan {
		SetAutoPan(entry, true)
	}
	cfg.Debug.ShowBounds = cfg.Debug.ShowBounds || v.ShowDebug
}
