package factory

import (
	"math"

	"github.com/automoto/folio/archetypes"
	"github.com/automoto/folio/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Hit-test cell size in pixels
const spaceCellSize = 32

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	components.Space.Set(space, &components.SpaceData{Space: resolv.NewSpace(width, height, cellWidth, cellHeight)})
	return space
}

// rebuildSpace replaces the hit-test space with one covering the whole
// document and re-registers every flip card shape in it.
func rebuildSpace(ecs *ecs.ECS, docWidth, docHeight float64) {
	w := int(math.Ceil(docWidth))
	h := int(math.Ceil(docHeight))
	if w <= 0 || h <= 0 {
		return
	}

	entry, ok := components.Space.First(ecs.World)
	if !ok {
		entry = CreateSpace(ecs, w, h, spaceCellSize, spaceCellSize)
	} else {
		components.Space.Get(entry).Space = resolv.NewSpace(w, h, spaceCellSize, spaceCellSize)
	}
	space := components.Space.Get(entry).Space

	components.FlipCard.Each(ecs.World, func(card *donburi.Entry) {
		obj := components.FlipCard.Get(card).Object
		if obj == nil {
			return
		}
		box := components.Box.Get(card)
		obj.X, obj.Y, obj.W, obj.H = box.X, box.Y, box.W, box.H
		space.Add(obj)
	})
}
