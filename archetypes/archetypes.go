package archetypes

import (
	"github.com/automoto/folio/components"
	cfg "github.com/automoto/folio/config"
	"github.com/automoto/folio/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Page = newArchetype(
		components.Page,
		components.Input,
		components.Runtime,
	)
	Space = newArchetype(
		components.Space,
	)
	Section = newArchetype(
		tags.Section,
		components.Section,
		components.Box,
		components.Style,
		components.Reveal,
	)
	HeroCard = newArchetype(
		tags.HeroCard,
		components.Box,
		components.Style,
		components.Member,
		components.Text,
	)
	HeroImage = newArchetype(
		tags.HeroImage,
		components.Box,
		components.Style,
		components.Member,
	)
	Typed = newArchetype(
		tags.Typed,
		components.Box,
		components.Style,
		components.Member,
		components.Text,
	)
	Label = newArchetype(
		tags.Label,
		components.Box,
		components.Style,
		components.Member,
		components.Text,
	)
	RepoCard = newArchetype(
		tags.RepoCard,
		components.Repo,
		components.Box,
		components.Style,
		components.Member,
	)
	FlipCard = newArchetype(
		tags.FlipCard,
		components.FlipCard,
		components.Box,
		components.Style,
		components.Member,
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
