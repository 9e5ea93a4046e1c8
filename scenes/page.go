package scenes

import (
	"log"
	"sync"

	cfg "github.com/automoto/folio/config"
	"github.com/automoto/folio/systems"
	"github.com/automoto/folio/systems/factory"
	"github.com/automoto/folio/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PageScene is the scrolling portfolio page with its fixed header
type PageScene struct {
	ecs    *ecs.ECS
	nav    *ui.NavUI
	once   sync.Once
	width  int
	height int
}

// NewPageScene creates the page scene for an initial viewport size
func NewPageScene(width, height int) *PageScene {
	return &PageScene{width: width, height: height}
}

func (ps *PageScene) Update() {
	ps.once.Do(ps.configure)

	// Header clicks queue navigation consumed by the ECS this frame
	if ps.nav != nil {
		ps.nav.Update()
	}
	ps.ecs.Update()
}

func (ps *PageScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Page.Background)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)

	if ps.nav != nil {
		ps.nav.UI.Draw(screen)
	}
}

// Resize forwards a new window size to the page
func (ps *PageScene) Resize(width, height int) {
	ps.width, ps.height = width, height
	if ps.ecs == nil {
		return
	}
	systems.Resize(ps.ecs, width, height)
}

func (ps *PageScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Input first, every system below reads it
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.NewUpdateResize(factory.LayoutPage))
	ecs.AddSystem(systems.UpdateNavigation)
	ecs.AddSystem(systems.UpdateScroll)
	// Clock after scroll so a scroll's parallax frame lands in the same tick
	ecs.AddSystem(systems.UpdateClock)
	ecs.AddSystem(systems.UpdateReveal)
	ecs.AddSystem(systems.UpdateFlipCards)

	ecs.AddRenderer(cfg.Default, systems.DrawSections)
	ecs.AddRenderer(cfg.Default, systems.DrawRepoCards)
	ecs.AddRenderer(cfg.Default, systems.DrawFlipCards)
	ecs.AddRenderer(cfg.Default, systems.DrawHero)
	ecs.AddRenderer(cfg.Default, systems.DrawText)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	ps.ecs = ecs

	ps.nav = ps.createNav()
	if ps.nav == nil {
		cfg.Nav.Enabled = false
	}

	factory.CreatePage(ps.ecs, ps.width, ps.height)
	factory.LoadRepos(ps.ecs, cfg.Page.Repos)
	systems.InitPage(ps.ecs)
}

func (ps *PageScene) createNav() *ui.NavUI {
	if !cfg.Nav.Enabled {
		return nil
	}
	links := make([]ui.NavLink, 0, len(cfg.Page.Sections))
	for _, s := range cfg.Page.Sections {
		links = append(links, ui.NavLink{Label: s.Title, Anchor: "#" + s.ID})
	}

	nav, err := ui.NewNavUI(cfg.Page.Name, links, func(anchor string) {
		systems.RequestNavigation(ps.ecs, anchor)
	})
	if err != nil {
		log.Printf("[page] header disabled: %v", err)
		return nil
	}
	return nav
}
