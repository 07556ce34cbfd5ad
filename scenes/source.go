package scenes

import (
	"log"
	"path/filepath"
	"strings"

	"github.com/automoto/parallax/assets"
	"github.com/automoto/parallax/config"
)

// Source tells the scene where its layers come from. An empty source uses
// the built-in demo layers.
type Source struct {
	Path string // .yaml/.yml layer file or .tmx Tiled map
}

// Dir is the directory to watch for changes, or "" for the built-in layers.
func (s Source) Dir() string {
	if s.Path == "" {
		return ""
	}
	return filepath.Dir(s.Path)
}

// LoadSpecs reads the layer specs. Load failures are logged and fall back to
// the built-in layers so the viewer keeps running.
func (s Source) LoadSpecs() []config.LayerSpec {
	if s.Path == "" {
		return config.DefaultLayers()
	}

	var (
		specs []config.LayerSpec
		err   error
	)
	if strings.EqualFold(filepath.Ext(s.Path), ".tmx") {
		specs, err = assets.LoadTiledLayers(s.Path)
	} else {
		var lf *config.LayerFile
		if lf, err = config.LoadLayerFile(s.Path); err == nil {
			specs = lf.Layers
		}
	}
	if err != nil {
		log.Printf("Warning: %v; using built-in layers", err)
		return config.DefaultLayers()
	}
	return specs
}
