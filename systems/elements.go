package systems

import (
	"github.com/automoto/folio/components"
	"github.com/automoto/folio/parallax"
	"github.com/yohamta/donburi"
)

// Owner chains are shallow (section > card > text); the cap guards against
// a malformed cycle.
const maxOwnerDepth = 8

// effectiveStyle folds an element's style with the styles of its owners:
// translations add up and opacities multiply.
func effectiveStyle(entry *donburi.Entry) components.StyleData {
	out := components.StyleData{Opacity: 1}
	for depth := 0; entry != nil && depth < maxOwnerDepth; depth++ {
		if entry.HasComponent(components.Style) {
			s := components.Style.Get(entry)
			out.TranslateX += s.TranslateX
			out.TranslateY += s.TranslateY
			out.Opacity *= s.Opacity
		}
		if !entry.HasComponent(components.Member) {
			break
		}
		entry = components.Member.Get(entry).Owner
	}
	return out
}

// viewportRect returns an element's rendered rectangle relative to the
// viewport, transforms included, like a bounding client rect.
func viewportRect(entry *donburi.Entry, scrollY float64) parallax.Rect {
	box := components.Box.Get(entry)
	style := effectiveStyle(entry)
	left := box.X + style.TranslateX
	return parallax.Rect{
		Top:    box.Y + style.TranslateY - scrollY,
		Left:   left,
		Right:  left + box.W,
		Width:  box.W,
		Height: box.H,
	}
}

// layoutRect is viewportRect without the element's own translateX
func layoutRect(entry *donburi.Entry, scrollY float64) parallax.Rect {
	box := components.Box.Get(entry)
	inherited := components.StyleData{Opacity: 1}
	if entry.HasComponent(components.Member) {
		inherited = effectiveStyle(components.Member.Get(entry).Owner)
	}
	translateY := inherited.TranslateY
	if entry.HasComponent(components.Style) {
		translateY += components.Style.Get(entry).TranslateY
	}
	left := box.X + inherited.TranslateX
	return parallax.Rect{
		Top:    box.Y + translateY - scrollY,
		Left:   left,
		Right:  left + box.W,
		Width:  box.W,
		Height: box.H,
	}
}

// elementTarget adapts an entity to parallax.Target
type elementTarget struct {
	entry *donburi.Entry
	page  *components.PageData
}

// Bounds leaves out the target's own translateX, which the engine writes.
// Owner translations and translateY still apply.
func (t *elementTarget) Bounds() parallax.Rect {
	return layoutRect(t.entry, t.page.ScrollY)
}

func (t *elementTarget) SetTranslateX(x float64) {
	components.Style.Get(t.entry).TranslateX = x
}

func (t *elementTarget) SetOpacity(o float64) {
	components.Style.Get(t.entry).Opacity = o
}

// pageViewport adapts the page singleton to parallax.Viewport
type pageViewport struct {
	page *components.PageData
}

func (v pageViewport) Width() float64  { return v.page.ViewportWidth }
func (v pageViewport) Height() float64 { return v.page.ViewportHeight }

// textSink adapts a text entity to typing.TextSink
type textSink struct {
	entry *donburi.Entry
}

func (s textSink) SetText(text string) {
	components.Text.Get(s.entry).Value = text
}
