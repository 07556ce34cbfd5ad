package assets

import (
	"fmt"
	"path/filepath"

	"github.com/automoto/parallax/config"
	"github.com/lafriks/go-tiled"
)

// LoadTiledLayers reads a Tiled map and returns one layer spec per image
// layer, in map order. Custom properties:
//
//	scrollFactor (float) scroll factor, default 0
//	tileWidth    (float) explicit tile width, default auto
//	depth        (int)   draw order, default the layer index
func LoadTiledLayers(path string) ([]config.LayerSpec, error) {
	levelMap, err := tiled.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("assets: load map %s: %w", path, err)
	}
	return layerSpecsFromMap(levelMap, filepath.Dir(path)), nil
}

func layerSpecsFromMap(levelMap *tiled.Map, dir string) []config.LayerSpec {
	specs := make([]config.LayerSpec, 0, len(levelMap.ImageLayers))
	for i, imgLayer := range levelMap.ImageLayers {
		name := imgLayer.Name
		if name == "" {
			name = fmt.Sprintf("image-layer-%d", i)
		}

		spec := config.LayerSpec{
			Name:         name,
			ScrollFactor: config.ClampScrollFactor(name, imgLayer.Properties.GetFloat("scrollFactor")),
			Depth:        i,
		}
		if len(imgLayer.Properties.Get("tileWidth")) > 0 {
			w := imgLayer.Properties.GetFloat("tileWidth")
			spec.TileWidth = &w
		}
		if len(imgLayer.Properties.Get("depth")) > 0 {
			spec.Depth = imgLayer.Properties.GetInt("depth")
		}

		// A layer without an image keeps a nil template, which leaves it inert.
		if imgLayer.Image != nil && imgLayer.Image.Source != "" {
			spec.Template = &config.TemplateSpec{
				Image:  filepath.Join(dir, imgLayer.Image.Source),
				Width:  float64(imgLayer.Image.Width),
				Height: float64(imgLayer.Image.Height),
				X:      float64(imgLayer.OffsetX),
				Y:      float64(imgLayer.OffsetY),
				Alpha:  float64(imgLayer.Opacity),
			}
		}
		specs = append(specs, spec)
	}
	return specs
}
