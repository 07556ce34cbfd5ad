package archetypes

import (
	"github.com/automoto/parallax/components"
	cfg "github.com/automoto/parallax/config"
	"github.com/automoto/parallax/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Camera = newArchetype(
		tags.MainCamera,
		components.Camera,
	)
	Template = newArchetype(
		tags.Template,
		components.ParallaxTemplate,
		components.Object,
	)
	Tile = newArchetype(
		tags.Tile,
		components.ParallaxTile,
		components.Object,
	)
	Controller = newArchetype(
		components.Parallax,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}

