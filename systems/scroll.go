package systems

import (
	"log"
	"strings"

	"github.com/automoto/folio/components"
	cfg "github.com/automoto/folio/config"
	"github.com/automoto/folio/shared/scrollmath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateScroll applies wheel and keyboard scrolling, advances a smooth anchor
// scroll and notifies the parallax engine when the scroll position moved.
func UpdateScroll(e *ecs.ECS) {
	page := GetPage(e)
	if page == nil {
		return
	}
	input := getOrCreateInput(e)
	before := page.ScrollY

	delta := manualScrollDelta(input, page.ViewportHeight)
	if delta != 0 {
		// User scrolling takes over from an anchor scroll in progress
		page.ScrollTween = nil
		page.ScrollY += delta
	}

	if GetAction(input, cfg.ActionHome).JustPressed {
		page.ScrollTween = nil
		page.ScrollY = 0
	}
	if GetAction(input, cfg.ActionEnd).JustPressed {
		page.ScrollTween = nil
		page.ScrollY = page.DocHeight
	}

	if page.ScrollTween != nil {
		y, done := page.ScrollTween.Update(frameSeconds())
		page.ScrollY = float64(y)
		if done {
			page.ScrollTween = nil
		}
	}

	page.ScrollY = scrollmath.ClampScroll(page.ScrollY, page.DocHeight, page.ViewportHeight)
	if page.ScrollY != before {
		notifyScroll(e)
	}
}

func manualScrollDelta(input *components.InputData, viewportHeight float64) float64 {
	delta := -input.WheelY * cfg.Scroll.WheelStep
	if GetAction(input, cfg.ActionScrollDown).Pressed {
		delta += cfg.Scroll.KeyStep
	}
	if GetAction(input, cfg.ActionScrollUp).Pressed {
		delta -= cfg.Scroll.KeyStep
	}
	if GetAction(input, cfg.ActionPageDown).JustPressed {
		delta += viewportHeight * 0.9
	}
	if GetAction(input, cfg.ActionPageUp).JustPressed {
		delta -= viewportHeight * 0.9
	}
	return delta
}

func notifyScroll(e *ecs.ECS) {
	if rt := getOrCreateRuntime(e); rt.Parallax != nil {
		rt.Parallax.OnScroll()
	}
}

// Resize records a new viewport size. The scene calls it from Layout.
func Resize(e *ecs.ECS, width, height int) {
	page := GetPage(e)
	if page == nil {
		return
	}
	w, h := float64(width), float64(height)
	if w == page.ViewportWidth && h == page.ViewportHeight {
		return
	}
	page.ViewportWidth = w
	page.ViewportHeight = h
	page.Resized = true
}

// NewUpdateResize creates the resize system. relayout lays the document out
// again for the new viewport width.
func NewUpdateResize(relayout func(e *ecs.ECS)) ecs.System {
	return func(e *ecs.ECS) {
		page := GetPage(e)
		if page == nil || !page.Resized {
			return
		}
		page.Resized = false

		if relayout != nil {
			relayout(e)
		}
		UpdateScrollOffset(e)
		page.ScrollY = scrollmath.ClampScroll(page.ScrollY, page.DocHeight, page.ViewportHeight)

		if rt := getOrCreateRuntime(e); rt.Parallax != nil {
			rt.Parallax.OnResize()
		}
	}
}

// UpdateScrollOffset keeps anchored sections clear of the fixed header
func UpdateScrollOffset(e *ecs.ECS) {
	page := GetPage(e)
	if page == nil {
		return
	}
	offset := scrollmath.ScrollOffset(cfg.Nav.Height, cfg.Nav.Enabled, cfg.Nav.Gap, cfg.Nav.FallbackOffset)
	page.ScrollOffset = offset

	components.Section.Each(e.World, func(entry *donburi.Entry) {
		components.Section.Get(entry).ScrollMarginTop = offset
	})
}

// RequestNavigation queues an anchor navigation for the next frame
func RequestNavigation(e *ecs.ECS, anchor string) {
	if page := GetPage(e); page != nil {
		page.PendingAnchor = anchor
	}
}

// UpdateNavigation handles queued anchor navigation and number-key anchors
func UpdateNavigation(e *ecs.ECS) {
	page := GetPage(e)
	if page == nil {
		return
	}
	input := getOrCreateInput(e)
	if input.AnchorIndex >= 0 {
		components.Section.Each(e.World, func(entry *donburi.Entry) {
			if s := components.Section.Get(entry); s.Index == input.AnchorIndex {
				page.PendingAnchor = "#" + s.ID
			}
		})
	}

	if page.PendingAnchor == "" {
		return
	}
	anchor := page.PendingAnchor
	page.PendingAnchor = ""
	NavigateTo(e, anchor)
}

// NavigateTo starts a smooth scroll that brings the anchored section to the
// header offset. Empty, bare "#" and unknown anchors are ignored.
func NavigateTo(e *ecs.ECS, anchor string) bool {
	page := GetPage(e)
	if page == nil {
		return false
	}
	id := strings.TrimPrefix(anchor, "#")
	if id == "" || !strings.HasPrefix(anchor, "#") {
		return false
	}

	target, ok := findSection(e, id)
	if !ok {
		return false
	}

	top := viewportRect(target, page.ScrollY).Top
	y := scrollmath.AnchorScrollTarget(top, page.ScrollY, page.ScrollOffset)
	y = scrollmath.ClampScroll(y, page.DocHeight, page.ViewportHeight)

	page.ScrollTween = gween.New(float32(page.ScrollY), float32(y), cfg.Scroll.SmoothScrollDuration, ease.InOutQuad)
	page.Anchor = anchor
	log.Printf("[nav] %s -> scrollY %.0f", anchor, y)
	return true
}

func findSection(e *ecs.ECS, id string) (*donburi.Entry, bool) {
	var found *donburi.Entry
	components.Section.Each(e.World, func(entry *donburi.Entry) {
		if found == nil && components.Section.Get(entry).ID == id {
			found = entry
		}
	})
	return found, found != nil
}
