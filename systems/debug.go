package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/folio/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines section boxes and flip card hit shapes
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(e)
	if !settings.Debug {
		return
	}
	page := GetPage(e)
	if page == nil {
		return
	}

	components.Section.Each(e.World, func(entry *donburi.Entry) {
		box := components.Box.Get(entry)
		y := box.Y - page.ScrollY
		if y+box.H < 0 || y > page.ViewportHeight {
			return
		}
		vector.StrokeRect(screen, float32(box.X), float32(y), float32(box.W), float32(box.H), 1, color.RGBA{255, 255, 0, 255}, false)
	})

	spaceEntry, ok := components.Space.First(e.World)
	if ok && components.Space.Get(spaceEntry).Space != nil {
		for _, obj := range components.Space.Get(spaceEntry).Objects() {
			y := obj.Y - page.ScrollY
			if y+obj.H < 0 || y > page.ViewportHeight {
				continue
			}
			vector.StrokeRect(screen, float32(obj.X), float32(y), float32(obj.W), float32(obj.H), 1, color.RGBA{0, 255, 255, 255}, false)
		}
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("scrollY %.0f / %.0f  anchor %q  TPS %.0f",
		page.ScrollY, page.DocHeight, page.Anchor, ebiten.ActualTPS()), 8, int(page.ViewportHeight)-18)
}
