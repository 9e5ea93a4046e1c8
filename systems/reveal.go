package systems

import (
	"github.com/automoto/folio/components"
	cfg "github.com/automoto/folio/config"
	"github.com/automoto/folio/shared/scrollmath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateReveal fades sections in once they come within the reveal margin of
// the viewport bottom. Reveals are one-way.
func UpdateReveal(e *ecs.ECS) {
	page := GetPage(e)
	if page == nil {
		return
	}

	components.Reveal.Each(e.World, func(entry *donburi.Entry) {
		reveal := components.Reveal.Get(entry)
		style := components.Style.Get(entry)

		if !reveal.Revealed {
			// Laid-out top, without the pre-reveal translateY
			top := components.Box.Get(entry).Y - page.ScrollY
			if !scrollmath.RevealTriggered(top, page.ViewportHeight, cfg.Reveal.Margin) {
				return
			}
			reveal.Revealed = true
			reveal.Tween = gween.New(0, 1, cfg.Reveal.Duration, ease.OutCubic)
		}

		if reveal.Tween == nil {
			return
		}
		p, done := reveal.Tween.Update(frameSeconds())
		applyReveal(style, float64(p))
		if done {
			applyReveal(style, 1)
			reveal.Tween = nil
		}
	})
}

func applyReveal(style *components.StyleData, progress float64) {
	style.Opacity = progress
	style.TranslateY = cfg.Reveal.InitialOffset * (1 - progress)
}

// HideForReveal puts a section in its pre-reveal state
func HideForReveal(entry *donburi.Entry) {
	applyReveal(components.Style.Get(entry), 0)
	components.Reveal.Get(entry).Revealed = false
}
