package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

type SpriteData struct {
	Image  *ebiten.Image
	ScaleX float64 // 0 is treated as 1
	ScaleY float64 // 0 is treated as 1
	Alpha  float64 // 0 is treated as fully opaque
}

// Scale returns the draw scale with unset axes treated as 1.
func (s *SpriteData) Scale() (x, y float64) {
	return orOne(s.ScaleX), orOne(s.ScaleY)
}

// Size returns the drawn size of the sprite in world units.
func (s *SpriteData) Size() (w, h float64) {
	if s == nil || s.Image == nil {
		return 0, 0
	}
	b := s.Image.Bounds()
	sx, sy := s.Scale()
	return float64(b.Dx()) * sx, float64(b.Dy()) * sy
}

func orOne(v float64) float64 {
	if v == 0 {
		return 1
	}
	return v
}

var Sprite = donburi.NewComponentType[SpriteData]()
