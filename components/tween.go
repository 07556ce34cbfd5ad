package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// Tween drives a scalar over time; the camera uses it for autopan.
var Tween = donburi.NewComponentType[gween.Sequence]()
