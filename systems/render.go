package systems

import (
	"image/color"
	"math"

	"github.com/automoto/folio/components"
	cfg "github.com/automoto/folio/config"
	"github.com/automoto/folio/fonts"
	"github.com/automoto/folio/parallax"
	"github.com/automoto/folio/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// fade scales a premultiplied color by opacity
func fade(c color.RGBA, opacity float64) color.RGBA {
	o := math.Max(0, math.Min(1, opacity))
	return color.RGBA{
		R: uint8(float64(c.R) * o),
		G: uint8(float64(c.G) * o),
		B: uint8(float64(c.B) * o),
		A: uint8(float64(c.A) * o),
	}
}

func visible(r parallax.Rect, viewportHeight float64) bool {
	return r.Top+r.Height >= 0 && r.Top <= viewportHeight
}

func fillRect(screen *ebiten.Image, r parallax.Rect, c color.RGBA, opacity float64) {
	if opacity <= 0 {
		return
	}
	vector.DrawFilledRect(screen, float32(r.Left), float32(r.Top), float32(r.Width), float32(r.Height), fade(c, opacity), false)
}

// DrawSections renders section panels with their title and body
func DrawSections(e *ecs.ECS, screen *ebiten.Image) {
	page := GetPage(e)
	if page == nil {
		return
	}
	heading := fonts.Heading.Get()
	body := fonts.Body.Get()

	components.Section.Each(e.World, func(entry *donburi.Entry) {
		r := viewportRect(entry, page.ScrollY)
		if !visible(r, page.ViewportHeight) {
			return
		}
		style := effectiveStyle(entry)
		section := components.Section.Get(entry)

		// Hero has no panel; its card and image carry it
		if entry.HasComponent(tags.Hero) {
			return
		}

		inset := parallax.Rect{Top: r.Top + 12, Left: r.Left + cfg.Page.Margin/2, Width: r.Width - cfg.Page.Margin, Height: r.Height - 24}
		fillRect(screen, inset, cfg.Page.SectionBG, style.Opacity)

		x := int(inset.Left + 24)
		y := int(inset.Top + 40)
		text.Draw(screen, section.Title, heading, x, y, fade(cfg.Page.Primary, style.Opacity)) //nolint:staticcheck // TODO: migrate to text/v2
		for i, line := range section.Body {
			text.Draw(screen, line, body, x, y+36+i*22, fade(cfg.Page.TextColor, style.Opacity)) //nolint:staticcheck // TODO: migrate to text/v2
		}
	})
}

// DrawHero renders the hero card and image at their parallax offsets
func DrawHero(e *ecs.ECS, screen *ebiten.Image) {
	page := GetPage(e)
	if page == nil {
		return
	}

	if entry, ok := tags.HeroImage.First(e.World); ok {
		r := viewportRect(entry, page.ScrollY)
		if visible(r, page.ViewportHeight) {
			style := effectiveStyle(entry)
			fillRect(screen, r, cfg.Page.ImageColor, style.Opacity)
			// Simple portrait placeholder
			head := parallax.Rect{Top: r.Top + r.Height*0.2, Left: r.Left + r.Width*0.35, Width: r.Width * 0.3, Height: r.Width * 0.3}
			fillRect(screen, head, cfg.Page.Background, style.Opacity*0.6)
		}
	}

	if entry, ok := tags.HeroCard.First(e.World); ok {
		r := viewportRect(entry, page.ScrollY)
		if visible(r, page.ViewportHeight) {
			fillRect(screen, r, cfg.Page.CardColor, effectiveStyle(entry).Opacity)
		}
	}
}

// DrawRepoCards renders the repository list
func DrawRepoCards(e *ecs.ECS, screen *ebiten.Image) {
	page := GetPage(e)
	if page == nil {
		return
	}
	heading := fonts.Body.Get()
	small := fonts.Small.Get()

	components.Repo.Each(e.World, func(entry *donburi.Entry) {
		r := viewportRect(entry, page.ScrollY)
		if !visible(r, page.ViewportHeight) {
			return
		}
		opacity := effectiveStyle(entry).Opacity
		repo := components.Repo.Get(entry)

		fillRect(screen, r, cfg.Page.Background, opacity)
		x := int(r.Left + 14)
		y := int(r.Top + 28)
		text.Draw(screen, repo.Name, heading, x, y, fade(cfg.White, opacity))                        //nolint:staticcheck // TODO: migrate to text/v2
		text.Draw(screen, "Language: "+repo.Lang, small, x, y+24, fade(cfg.Page.TextColor, opacity)) //nolint:staticcheck // TODO: migrate to text/v2
		text.Draw(screen, "View on GitHub", small, x, y+48, fade(cfg.Page.Primary, opacity))         //nolint:staticcheck // TODO: migrate to text/v2
	})
}

// DrawFlipCards renders flip cards mid-turn by narrowing them around their center
func DrawFlipCards(e *ecs.ECS, screen *ebiten.Image) {
	page := GetPage(e)
	if page == nil {
		return
	}
	face := fonts.Body.Get()

	components.FlipCard.Each(e.World, func(entry *donburi.Entry) {
		r := viewportRect(entry, page.ScrollY)
		if !visible(r, page.ViewportHeight) {
			return
		}
		opacity := effectiveStyle(entry).Opacity
		card := components.FlipCard.Get(entry)

		scale := math.Abs(math.Cos(float64(card.Turn) * math.Pi))
		w := r.Width * scale
		shown := parallax.Rect{Top: r.Top, Left: r.Left + (r.Width-w)/2, Width: w, Height: r.Height}

		label, bg := card.Front, cfg.Page.CardColor
		if card.Turn > 0.5 {
			label, bg = card.Back, cfg.Page.ImageColor
		}
		if page.FocusIndex == card.Index {
			ring := parallax.Rect{Top: r.Top - 3, Left: r.Left - 3, Width: r.Width + 6, Height: r.Height + 6}
			fillRect(screen, ring, cfg.Page.Primary, opacity)
		}
		fillRect(screen, shown, bg, opacity)
		if scale > 0.3 {
			bounds := text.BoundString(face, label) //nolint:staticcheck // TODO: migrate to text/v2
			x := int(r.Left + (r.Width-float64(bounds.Dx()))/2)
			y := int(r.Top + r.Height/2)
			text.Draw(screen, label, face, x, y, fade(cfg.White, opacity)) //nolint:staticcheck // TODO: migrate to text/v2
		}
	})
}

// DrawText renders text elements (hero title, typed line, labels)
func DrawText(e *ecs.ECS, screen *ebiten.Image) {
	page := GetPage(e)
	if page == nil {
		return
	}

	components.Text.Each(e.World, func(entry *donburi.Entry) {
		t := components.Text.Get(entry)
		if t.Value == "" && !entry.HasComponent(tags.Typed) {
			return
		}
		r := viewportRect(entry, page.ScrollY)
		if !visible(r, page.ViewportHeight) {
			return
		}
		opacity := effectiveStyle(entry).Opacity
		x := int(r.Left + t.OffsetX)
		y := int(r.Top + t.OffsetY)
		value := t.Value
		if entry.HasComponent(tags.Typed) {
			value += "|"
		}
		text.Draw(screen, value, t.Font.Get(), x, y, fade(t.Color, opacity)) //nolint:staticcheck // TODO: migrate to text/v2
	})
}
