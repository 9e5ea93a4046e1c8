package factory

import (
	"testing"
	"time"

	"github.com/automoto/folio/components"
	cfg "github.com/automoto/folio/config"
	"github.com/automoto/folio/systems"
	"github.com/automoto/folio/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func newPage(t *testing.T, width, height int) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	CreatePage(e, width, height)
	return e
}

func sectionBox(t *testing.T, e *ecs.ECS, id string) *components.BoxData {
	t.Helper()
	entry, ok := findSection(e, id)
	if !ok {
		t.Fatalf("section %q not created", id)
	}
	return components.Box.Get(entry)
}

func flipCards(e *ecs.ECS) []*components.FlipCardData {
	cards := make([]*components.FlipCardData, len(cfg.Page.FlipCards))
	components.FlipCard.Each(e.World, func(entry *donburi.Entry) {
		card := components.FlipCard.Get(entry)
		cards[card.Index] = card
	})
	return cards
}

func step(e *ecs.ECS, system ecs.System, frames int) {
	for i := 0; i < frames; i++ {
		system(e)
	}
}

func TestCreatePageStacksSections(t *testing.T) {
	e := newPage(t, 960, 600)
	page := systems.GetPage(e)

	y := 0.0
	for _, spec := range cfg.Page.Sections {
		box := sectionBox(t, e, spec.ID)
		if box.Y != y || box.W != 960 || box.H != spec.Height {
			t.Errorf("section %q at %+v, want y=%v w=960 h=%v", spec.ID, *box, y, spec.Height)
		}
		y += spec.Height
	}
	if page.DocHeight != y {
		t.Errorf("expected doc height %v, got %v", y, page.DocHeight)
	}
	if page.FocusIndex != -1 {
		t.Errorf("expected no focused card, got %d", page.FocusIndex)
	}
}

func TestSectionsStartHidden(t *testing.T) {
	e := newPage(t, 960, 600)
	components.Reveal.Each(e.World, func(entry *donburi.Entry) {
		style := components.Style.Get(entry)
		if style.Opacity != 0 || style.TranslateY != cfg.Reveal.InitialOffset {
			t.Errorf("section %q not hidden: %+v", components.Section.Get(entry).ID, *style)
		}
	})
}

func TestLoadReposOnce(t *testing.T) {
	e := newPage(t, 960, 600)

	if n := LoadRepos(e, cfg.Page.Repos); n != len(cfg.Page.Repos) {
		t.Fatalf("expected %d repos loaded, got %d", len(cfg.Page.Repos), n)
	}
	if n := LoadRepos(e, cfg.Page.Repos); n != 0 {
		t.Errorf("expected second load to be a no-op, got %d", n)
	}

	repos := sectionBox(t, e, "repos")
	count := 0
	components.Repo.Each(e.World, func(entry *donburi.Entry) {
		box := components.Box.Get(entry)
		if box.Y != repos.Y+sectionHeaderH {
			t.Errorf("repo card at y=%v, want %v", box.Y, repos.Y+sectionHeaderH)
		}
		count++
	})
	if count != len(cfg.Page.Repos) {
		t.Errorf("expected %d repo cards, got %d", len(cfg.Page.Repos), count)
	}
}

func TestInitPageScrollOffset(t *testing.T) {
	e := newPage(t, 960, 600)
	systems.InitPage(e)

	want := cfg.Nav.Height + cfg.Nav.Gap
	if got := systems.GetPage(e).ScrollOffset; got != want {
		t.Errorf("expected scroll offset %v, got %v", want, got)
	}
	components.Section.Each(e.World, func(entry *donburi.Entry) {
		if s := components.Section.Get(entry); s.ScrollMarginTop != want {
			t.Errorf("section %q margin %v, want %v", s.ID, s.ScrollMarginTop, want)
		}
	})
}

func TestNavigateToSection(t *testing.T) {
	e := newPage(t, 960, 600)
	systems.InitPage(e)
	page := systems.GetPage(e)

	if !systems.NavigateTo(e, "#about") {
		t.Fatal("expected navigation to #about")
	}
	if page.Anchor != "#about" {
		t.Errorf("expected anchor #about, got %q", page.Anchor)
	}

	// Hidden sections keep their pre-reveal translateY in their bounds
	about := sectionBox(t, e, "about")
	want := about.Y + cfg.Reveal.InitialOffset - page.ScrollOffset

	step(e, systems.UpdateScroll, 40)
	if page.ScrollY != want {
		t.Errorf("expected scrollY %v after the smooth scroll, got %v", want, page.ScrollY)
	}
	if page.ScrollTween != nil {
		t.Error("expected the scroll tween to be finished")
	}
}

func TestNavigateToIgnoresBadAnchors(t *testing.T) {
	e := newPage(t, 960, 600)
	for _, anchor := range []string{"", "#", "#missing", "about"} {
		if systems.NavigateTo(e, anchor) {
			t.Errorf("expected %q to be ignored", anchor)
		}
	}
	if systems.GetPage(e).ScrollTween != nil {
		t.Error("expected no scroll tween")
	}
}

func TestRequestNavigation(t *testing.T) {
	e := newPage(t, 960, 600)
	systems.RequestNavigation(e, "#contact")
	systems.UpdateNavigation(e)

	page := systems.GetPage(e)
	if page.Anchor != "#contact" || page.PendingAnchor != "" {
		t.Errorf("expected #contact consumed, got anchor=%q pending=%q", page.Anchor, page.PendingAnchor)
	}
}

func TestRevealOnScroll(t *testing.T) {
	e := newPage(t, 960, 600)
	page := systems.GetPage(e)
	hero, _ := tags.Hero.First(e.World)
	about, _ := findSection(e, "about")

	step(e, systems.UpdateReveal, 60)
	if style := components.Style.Get(hero); style.Opacity != 1 || style.TranslateY != 0 {
		t.Errorf("expected hero revealed, got %+v", *style)
	}
	if components.Reveal.Get(about).Revealed {
		t.Error("about should not reveal before it nears the viewport")
	}

	// About's top moves to 400, inside the 100px margin above the bottom
	page.ScrollY = 200
	systems.UpdateReveal(e)
	if !components.Reveal.Get(about).Revealed {
		t.Fatal("expected about to reveal")
	}

	// One-way: scrolling back up keeps it revealed
	page.ScrollY = 0
	step(e, systems.UpdateReveal, 60)
	if style := components.Style.Get(about); style.Opacity != 1 {
		t.Errorf("expected about to stay revealed, got %+v", *style)
	}
}

func TestClickFlipsCard(t *testing.T) {
	e := newPage(t, 960, 600)
	page := systems.GetPage(e)
	input := components.Input.Get(components.Input.MustFirst(e.World))

	page.ScrollY = 1000
	// First card spans x 48..320 and sits 40px lower while its section is hidden
	projects := sectionBox(t, e, "projects")
	y := projects.Y + sectionHeaderH + cfg.Reveal.InitialOffset + 50
	input.Clicked = true
	input.Cursor = math.NewVec2(100, y-page.ScrollY)
	systems.UpdateFlipCards(e)

	cards := flipCards(e)
	if !cards[0].Flipped || !cards[0].Pressed {
		t.Errorf("expected first card flipped and pressed, got %+v", *cards[0])
	}
	if page.FocusIndex != 0 {
		t.Errorf("expected focus on first card, got %d", page.FocusIndex)
	}
	for _, c := range cards[1:] {
		if c.Flipped {
			t.Errorf("card %d should not flip", c.Index)
		}
	}

	// A click in the gutter between cards hits nothing
	input.Cursor = math.NewVec2(48+272+cardGap/2, y-page.ScrollY)
	systems.UpdateFlipCards(e)
	if !cards[0].Flipped || cards[1].Flipped {
		t.Error("gutter click should not toggle any card")
	}
}

func TestAutoFlipLeavesPressedAlone(t *testing.T) {
	e := newPage(t, 960, 600)
	systems.InitPage(e)
	clk := systems.GetRuntime(e).Clock

	clk.Tick(cfg.FlipCard.AutoFlipDelay)
	for _, c := range flipCards(e) {
		if !c.Flipped || c.Pressed {
			t.Errorf("card %d after auto flip: flipped=%t pressed=%t", c.Index, c.Flipped, c.Pressed)
		}
	}

	clk.Tick(cfg.FlipCard.AutoFlipRevert)
	for _, c := range flipCards(e) {
		if c.Flipped || c.Pressed {
			t.Errorf("card %d after revert: flipped=%t pressed=%t", c.Index, c.Flipped, c.Pressed)
		}
	}
}

func TestInitPageStartsTyping(t *testing.T) {
	e := newPage(t, 960, 600)
	systems.InitPage(e)
	typed, _ := tags.Typed.First(e.World)

	if v := components.Text.Get(typed).Value; v != "" {
		t.Fatalf("expected empty text at load, got %q", v)
	}
	systems.GetRuntime(e).Clock.Tick(cfg.Typing.TypeSpeed)
	want := string([]rune(cfg.Typing.Phrases[0])[:1])
	if v := components.Text.Get(typed).Value; v != want {
		t.Errorf("expected %q after one step, got %q", want, v)
	}
}

func TestParallaxFollowsScroll(t *testing.T) {
	e := newPage(t, 960, 600)
	systems.InitPage(e)
	rt := systems.GetRuntime(e)
	card, _ := tags.HeroCard.First(e.World)

	if x := components.Style.Get(card).TranslateX; x != 0 {
		t.Fatalf("expected card at rest on load, got translateX %v", x)
	}

	systems.GetPage(e).ScrollY = 300
	rt.Parallax.OnScroll()
	rt.Parallax.OnScroll()
	rt.Clock.Tick(16 * time.Millisecond)

	if rt.Parallax.Recomputes() != 2 {
		t.Errorf("expected load plus one coalesced frame, got %d recomputes", rt.Parallax.Recomputes())
	}
	style := components.Style.Get(card)
	if style.TranslateX >= 0 || style.Opacity >= 1 {
		t.Errorf("expected card shifted left and faded, got %+v", *style)
	}
}

func TestResizeRelayout(t *testing.T) {
	e := newPage(t, 960, 600)
	systems.InitPage(e)
	page := systems.GetPage(e)
	page.ScrollY = page.DocHeight

	systems.Resize(e, 640, 800)
	systems.NewUpdateResize(LayoutPage)(e)

	if page.Resized {
		t.Error("expected resize to be consumed")
	}
	if box := sectionBox(t, e, "about"); box.W != 640 {
		t.Errorf("expected sections relaid at width 640, got %v", box.W)
	}
	if limit := page.DocHeight - 800; page.ScrollY != limit {
		t.Errorf("expected scroll clamped to %v, got %v", limit, page.ScrollY)
	}
	image, _ := tags.HeroImage.First(e.World)
	if box := components.Box.Get(image); box.X+box.W != 640-cfg.Page.Margin {
		t.Errorf("expected hero image flush with the right margin, got %+v", *box)
	}
}

func TestParallaxRecomputeIsStable(t *testing.T) {
	e := newPage(t, 960, 600)
	systems.InitPage(e)
	page := systems.GetPage(e)
	rt := systems.GetRuntime(e)
	card, _ := tags.HeroCard.First(e.World)

	// Hero fully scrolled past, the case where a translated card drifted most
	page.ScrollY = 640
	first := rt.Parallax.Update()
	if first.CardX >= 0 {
		t.Fatalf("expected card shifted left, got %+v", first)
	}
	for i := 0; i < 4; i++ {
		if f := rt.Parallax.Update(); f != first {
			t.Fatalf("recompute %d at the same scroll changed the frame: %+v, want %+v", i+2, f, first)
		}
	}
	if x := components.Style.Get(card).TranslateX; x != first.CardX {
		t.Errorf("expected card translateX %v, got %v", first.CardX, x)
	}

	rt.Parallax.OnResize()
	systems.UpdateClock(e)
	if rt.Parallax.Last() != first {
		t.Errorf("expected an unchanged frame after a same-size resize, got %+v, want %+v", rt.Parallax.Last(), first)
	}
}

func TestParallaxIgnoresScrollHistory(t *testing.T) {
	e := newPage(t, 960, 600)
	systems.InitPage(e)
	page := systems.GetPage(e)
	rt := systems.GetRuntime(e)

	page.ScrollY = 300
	want := rt.Parallax.Update()

	for _, y := range []float64{600, 120, 900, 300} {
		page.ScrollY = y
		rt.Parallax.OnScroll()
		systems.UpdateClock(e)
	}
	if got := rt.Parallax.Last(); got != want {
		t.Errorf("expected %+v back at scrollY 300, got %+v", want, got)
	}
}

func TestWheelScrollDrivesParallax(t *testing.T) {
	e := newPage(t, 960, 600)
	systems.InitPage(e)
	page := systems.GetPage(e)
	rt := systems.GetRuntime(e)
	card, _ := tags.HeroCard.First(e.World)
	input := components.Input.Get(components.Input.MustFirst(e.World))

	input.WheelY = -2
	systems.UpdateScroll(e)
	if want := 2 * cfg.Scroll.WheelStep; page.ScrollY != want {
		t.Fatalf("expected scrollY %v after two wheel notches, got %v", want, page.ScrollY)
	}
	if !rt.Parallax.Pending() {
		t.Fatal("expected the scroll to request a parallax frame")
	}

	systems.UpdateClock(e)
	if rt.Parallax.Pending() {
		t.Error("expected the frame to run on the next clock tick")
	}
	if n := rt.Parallax.Recomputes(); n != 2 {
		t.Errorf("expected load plus one frame, got %d recomputes", n)
	}
	if x := components.Style.Get(card).TranslateX; x >= 0 {
		t.Errorf("expected card shifted left, got translateX %v", x)
	}
}

func TestResizeRequestsParallaxFrame(t *testing.T) {
	e := newPage(t, 960, 600)
	systems.InitPage(e)
	rt := systems.GetRuntime(e)
	before := rt.Parallax.Recomputes()

	systems.Resize(e, 1280, 600)
	systems.NewUpdateResize(LayoutPage)(e)
	if !rt.Parallax.Pending() {
		t.Fatal("expected the resize to request a parallax frame")
	}

	systems.UpdateClock(e)
	if n := rt.Parallax.Recomputes(); n != before+1 {
		t.Errorf("expected one recompute after the resize, got %d", n-before)
	}
	image, _ := tags.HeroImage.First(e.World)
	if box := components.Box.Get(image); box.X+box.W != 1280-cfg.Page.Margin {
		t.Errorf("expected hero image relaid for width 1280, got %+v", *box)
	}
}
