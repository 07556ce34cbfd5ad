package config

import (
	"fmt"
	"image/color"
	"log"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// AutoTileWidth mirrors parallax.AutoWidth for layer files.
const AutoTileWidth = -1.0

// LayerFile is the root of a YAML layer definition file.
type LayerFile struct {
	Layers []LayerSpec `yaml:"layers"`
}

// LayerSpec describes one parallax layer.
type LayerSpec struct {
	Name         string        `yaml:"name"`
	ScrollFactor float64       `yaml:"scroll_factor"`
	TileWidth    *float64      `yaml:"tile_width"`
	Depth        int           `yaml:"depth"`
	Template     *TemplateSpec `yaml:"template"`
}

// TemplateSpec describes the prototype tile a layer clones.
type TemplateSpec struct {
	Image      string  `yaml:"image"`
	Color      string  `yaml:"color"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	X          float64 `yaml:"x"`
	Y          float64 `yaml:"y"`
	Alpha      float64 `yaml:"alpha"`
	Renderable *bool   `yaml:"renderable"`
}

// ResolvedTileWidth returns the configured width or AutoTileWidth.
func (s LayerSpec) ResolvedTileWidth() float64 {
	if s.TileWidth == nil {
		return AutoTileWidth
	}
	return *s.TileWidth
}

// HasRenderable reports whether the template should carry a sprite.
func (t *TemplateSpec) HasRenderable() bool {
	if t == nil {
		return false
	}
	if t.Renderable != nil {
		return *t.Renderable
	}
	return true
}

// FillColor parses Color as #rgb, #rrggbb or #rrggbbaa. ok is false when
// no color is set.
func (t *TemplateSpec) FillColor() (c color.RGBA, ok bool, err error) {
	if t == nil || t.Color == "" {
		return color.RGBA{}, false, nil
	}
	hex := strings.TrimPrefix(t.Color, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.RGBA{}, false, fmt.Errorf("config: invalid color %q", t.Color)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, false, fmt.Errorf("config: invalid color %q: %w", t.Color, err)
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, true, nil
}

// LoadLayerFile reads and parses a YAML layer file from disk.
func LoadLayerFile(path string) (*LayerFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}
	lf, err := ParseLayerFile(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return lf, nil
}

// ParseLayerFile decodes YAML layer definitions. Scroll factors outside the
// allowed range are clamped.
func ParseLayerFile(data []byte) (*LayerFile, error) {
	var lf LayerFile
	if err := yaml.Unmarshal(data, &lf); err != nil {
		return nil, fmt.Errorf("unmarshal layers: %w", err)
	}
	for i := range lf.Layers {
		spec := &lf.Layers[i]
		if spec.Name == "" {
			spec.Name = fmt.Sprintf("layer-%d", i)
		}
		spec.ScrollFactor = ClampScrollFactor(spec.Name, spec.ScrollFactor)
		if _, _, err := spec.Template.FillColor(); err != nil {
			return nil, fmt.Errorf("layer %s: %w", spec.Name, err)
		}
	}
	return &lf, nil
}

// ClampScrollFactor keeps a factor inside the configured range.
func ClampScrollFactor(name string, factor float64) float64 {
	lo, hi := Parallax.MinScrollFactor, Parallax.MaxScrollFactor
	if factor < lo || factor > hi {
		clamped := max(lo, min(hi, factor))
		log.Printf("Warning: layer %s scroll factor %v outside [%v, %v], using %v", name, factor, lo, hi, clamped)
		return clamped
	}
	return factor
}

// DefaultLayers is the built-in demo used when no layer file is given.
func DefaultLayers() []LayerSpec {
	auto := AutoTileWidth
	return []LayerSpec{
		{Name: "sky", ScrollFactor: 0.95, TileWidth: &auto, Depth: 0,
			Template: &TemplateSpec{Color: "#1d2b53", Width: 640, Height: 360}},
		{Name: "mountains", ScrollFactor: 0.75, TileWidth: &auto, Depth: 1,
			Template: &TemplateSpec{Color: "#5f574f", Width: 720, Height: 140, Y: 140}},
		{Name: "hills", ScrollFactor: 0.5, TileWidth: &auto, Depth: 2,
			Template: &TemplateSpec{Color: "#008751", Width: 800, Height: 100, Y: 220}},
		{Name: "ground", ScrollFactor: 0, TileWidth: &auto, Depth: 3,
			Template: &TemplateSpec{Color: "#ab5236", Width: 960, Height: 60, Y: 300}},
		{Name: "grass", ScrollFactor: -0.5, TileWidth: &auto, Depth: 4,
			Template: &TemplateSpec{Color: "#00e436", Width: 640, Height: 16, Y: 344}},
	}
}
