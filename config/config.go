package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer of the viewer.
const Default ecs.LayerID = 0

// Config holds general viewer configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing  float64 // How fast camera follows its target (0.0-1.0)
	PanSpeed         float64 // Pixels per frame when panning manually
	AutoPanDistance  float64 // Distance covered by one autopan sweep
	AutoPanSeconds   float64 // Duration of one autopan sweep
	TeleportDistance float64 // Jump used to show the large-jump gap
}

// ScreenShakeConfig contains screen shake effect configuration
type ScreenShakeConfig struct {
	Intensity float64 // pixels
	Duration  int     // frames
}

// ParallaxConfig contains layer defaults
type ParallaxConfig struct {
	MinScrollFactor float64
	MaxScrollFactor float64
	// Size of generated placeholder textures when a template gives none
	PlaceholderWidth  int
	PlaceholderHeight int
	LayerFileExts     []string
}

// UIConfig contains HUD configuration
type UIConfig struct {
	HUDFontSize   float64
	HUDMargin     int
	HUDLineHeight int
	HUDColor      color.RGBA
	HUDErrorColor color.RGBA
	BoundsColor   color.RGBA
	InertColor    color.RGBA
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowBounds bool // Outline tiles and the camera reference line
	ShowHUD    bool
}

// PersistenceConfig contains gdata settings
type PersistenceConfig struct {
	AppName  string
	ViewItem string
}

var C *Config
var Camera CameraConfig
var ScreenShake ScreenShakeConfig
var Parallax ParallaxConfig
var UI UIConfig
var Debug DebugConfig
var Persistence PersistenceConfig

var (
	White = color.RGBA{255, 255, 255, 255}
	Red   = color.RGBA{220, 60, 60, 255}
	Green = color.RGBA{60, 220, 60, 255}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		Title:  "parallax",
	}

	Camera = CameraConfig{
		FollowSmoothing:  0.15,
		PanSpeed:         4.0,
		AutoPanDistance:  2400.0,
		AutoPanSeconds:   20.0,
		TeleportDistance: 1500.0,
	}

	ScreenShake = ScreenShakeConfig{
		Intensity: 6.0,
		Duration:  20,
	}

	Parallax = ParallaxConfig{
		MinScrollFactor:   -1.0,
		MaxScrollFactor:   1.0,
		PlaceholderWidth:  640,
		PlaceholderHeight: 120,
		LayerFileExts:     []string{".yaml", ".yml", ".tmx"},
	}

	UI = UIConfig{
		HUDFontSize:   10,
		HUDMargin:     8,
		HUDLineHeight: 12,
		HUDColor:      White,
		HUDErrorColor: Red,
		BoundsColor:   Green,
		InertColor:    Red,
	}

	Debug = DebugConfig{
		ShowBounds: false,
		ShowHUD:    true,
	}

	Persistence = PersistenceConfig{
		AppName:  "parallax",
		ViewItem: "view",
	}
}
