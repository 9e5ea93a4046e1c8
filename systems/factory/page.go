package factory

import (
	"log"
	"math"
	"sort"

	"github.com/automoto/folio/archetypes"
	"github.com/automoto/folio/components"
	cfg "github.com/automoto/folio/config"
	"github.com/automoto/folio/fonts"
	"github.com/automoto/folio/systems"
	"github.com/automoto/folio/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

// Hero and card geometry
const (
	heroCardWidth   = 420.0
	heroCardHeight  = 240.0
	heroImageWidth  = 300.0
	heroImageHeight = 320.0
	heroTopPadding  = 48.0
	cardGap         = 24.0
	flipCardHeight  = 170.0
	repoCardHeight  = 96.0
	sectionHeaderH  = 90.0
)

// CreatePage spawns the page singleton, every configured section with its
// content and the hit-test space, then lays the document out for width.
func CreatePage(ecs *ecs.ECS, width, height int) *donburi.Entry {
	page := archetypes.Page.Spawn(ecs)
	components.Page.SetValue(page, components.PageData{
		ViewportWidth:  float64(width),
		ViewportHeight: float64(height),
		FocusIndex:     -1,
	})
	components.Input.SetValue(page, components.InputData{AnchorIndex: -1})

	var projects *donburi.Entry
	for i, spec := range cfg.Page.Sections {
		section := createSection(ecs, spec, i)
		switch spec.ID {
		case "hero":
			createHero(ecs, section)
		case "projects":
			projects = section
		}
	}

	if projects != nil {
		for i, spec := range cfg.Page.FlipCards {
			CreateFlipCard(ecs, projects, spec, i)
		}
	}

	LayoutPage(ecs)
	return page
}

func createSection(ecs *ecs.ECS, spec cfg.SectionSpec, index int) *donburi.Entry {
	var section *donburi.Entry
	if spec.ID == "hero" {
		section = archetypes.Section.Spawn(ecs, tags.Hero)
	} else {
		section = archetypes.Section.Spawn(ecs)
	}
	components.Section.SetValue(section, components.SectionData{
		ID:    spec.ID,
		Title: spec.Title,
		Body:  spec.Body,
		Index: index,
	})
	components.Box.SetValue(section, components.BoxData{H: spec.Height})
	systems.HideForReveal(section)
	return section
}

func createHero(ecs *ecs.ECS, hero *donburi.Entry) {
	card := archetypes.HeroCard.Spawn(ecs)
	components.Style.SetValue(card, components.StyleData{Opacity: 1})
	components.Member.SetValue(card, components.MemberData{Owner: hero})
	components.Text.SetValue(card, components.TextData{
		Value:   cfg.Page.Name,
		Font:    fonts.Title,
		Color:   cfg.White,
		OffsetX: 24,
		OffsetY: 56,
	})

	typed := archetypes.Typed.Spawn(ecs)
	components.Style.SetValue(typed, components.StyleData{Opacity: 1})
	components.Member.SetValue(typed, components.MemberData{Owner: card})
	components.Text.SetValue(typed, components.TextData{
		Font:    fonts.Typed,
		Color:   cfg.Page.TextColor,
		OffsetY: 22,
	})

	hint := archetypes.Label.Spawn(ecs)
	components.Style.SetValue(hint, components.StyleData{Opacity: 1})
	components.Member.SetValue(hint, components.MemberData{Owner: card})
	components.Text.SetValue(hint, components.TextData{
		Value:   "1-5 jump to a section, Tab and Enter flip the cards",
		Font:    fonts.Small,
		Color:   cfg.Page.TextColor,
		OffsetY: 14,
	})

	image := archetypes.HeroImage.Spawn(ecs)
	components.Style.SetValue(image, components.StyleData{Opacity: 1})
	components.Member.SetValue(image, components.MemberData{Owner: hero})
}

// CreateFlipCard spawns a flip card nested in section, with its hit shape
func CreateFlipCard(ecs *ecs.ECS, section *donburi.Entry, spec cfg.FlipCardSpec, index int) *donburi.Entry {
	card := archetypes.FlipCard.Spawn(ecs)
	components.Style.SetValue(card, components.StyleData{Opacity: 1})
	components.Member.SetValue(card, components.MemberData{Owner: section})

	object := resolv.NewObject(0, 0, 1, 1, tags.ResolvFlipCard)
	object.Data = card
	components.FlipCard.SetValue(card, components.FlipCardData{
		Front:  spec.Front,
		Back:   spec.Back,
		Index:  index,
		Object: object,
	})
	return card
}

// LoadRepos renders the repository list into the repos section. It runs once;
// later calls are no-ops.
func LoadRepos(ecs *ecs.ECS, repos []cfg.Repo) int {
	if donburi.NewQuery(filter.Contains(components.Repo)).Count(ecs.World) > 0 {
		return 0
	}
	section, ok := findSection(ecs, "repos")
	if !ok {
		log.Printf("[repos] no repos section, skipping %d repos", len(repos))
		return 0
	}

	for _, repo := range repos {
		card := archetypes.RepoCard.Spawn(ecs)
		components.Repo.SetValue(card, components.RepoData{Name: repo.Name, Lang: repo.Lang})
		components.Style.SetValue(card, components.StyleData{Opacity: 1})
		components.Member.SetValue(card, components.MemberData{Owner: section})
	}
	LayoutPage(ecs)
	log.Printf("[repos] loaded %d repos", len(repos))
	return len(repos)
}

// LayoutPage stacks the sections for the current viewport width and places
// every nested element. It also rebuilds the hit-test space.
func LayoutPage(ecs *ecs.ECS) {
	page := systems.GetPage(ecs)
	if page == nil {
		return
	}
	width := page.ViewportWidth
	margin := cfg.Page.Margin

	y := 0.0
	for _, entry := range sectionsInOrder(ecs) {
		box := components.Box.Get(entry)
		box.X = 0
		box.Y = y
		box.W = width
		y += box.H
	}
	page.DocHeight = y

	if hero, ok := tags.Hero.First(ecs.World); ok {
		layoutHero(ecs, components.Box.Get(hero), width, margin)
	}

	if section, ok := findSection(ecs, "projects"); ok {
		layoutRow(ecs, components.Box.Get(section), components.FlipCard, flipCardHeight, width, margin)
	}
	if section, ok := findSection(ecs, "repos"); ok {
		layoutRow(ecs, components.Box.Get(section), components.Repo, repoCardHeight, width, margin)
	}

	rebuildSpace(ecs, width, page.DocHeight)
}

func layoutHero(ecs *ecs.ECS, hero *components.BoxData, width, margin float64) {
	top := hero.Y + cfg.Nav.Height + heroTopPadding

	var cardBox components.BoxData
	if card, ok := tags.HeroCard.First(ecs.World); ok {
		w := math.Min(heroCardWidth, width*0.5-margin)
		cardBox = components.BoxData{X: margin, Y: top, W: w, H: heroCardHeight}
		components.Box.SetValue(card, cardBox)
	}
	if typed, ok := tags.Typed.First(ecs.World); ok {
		components.Box.SetValue(typed, components.BoxData{
			X: cardBox.X + 24,
			Y: cardBox.Y + 84,
			W: cardBox.W - 48,
			H: 30,
		})
	}
	tags.Label.Each(ecs.World, func(label *donburi.Entry) {
		components.Box.SetValue(label, components.BoxData{
			X: cardBox.X + 24,
			Y: cardBox.Y + cardBox.H - 40,
			W: cardBox.W - 48,
			H: 20,
		})
	})
	if image, ok := tags.HeroImage.First(ecs.World); ok {
		w := math.Min(heroImageWidth, width*0.3)
		components.Box.SetValue(image, components.BoxData{
			X: width - margin - w,
			Y: top - 20,
			W: w,
			H: heroImageHeight,
		})
	}
}

// layoutRow spreads the members carrying component across one row of section
func layoutRow[T any](ecs *ecs.ECS, section *components.BoxData, component *donburi.ComponentType[T], height, width, margin float64) {
	n := donburi.NewQuery(filter.Contains(component)).Count(ecs.World)
	if n == 0 {
		return
	}
	w := (width - 2*margin - float64(n-1)*cardGap) / float64(n)
	w = math.Max(w, 0)

	i := 0
	component.Each(ecs.World, func(entry *donburi.Entry) {
		components.Box.SetValue(entry, components.BoxData{
			X: margin + float64(i)*(w+cardGap),
			Y: section.Y + sectionHeaderH,
			W: w,
			H: height,
		})
		i++
	})
}

// sectionsInOrder returns sections in document order. Query order follows
// archetypes, and the hero carries an extra tag.
func sectionsInOrder(ecs *ecs.ECS) []*donburi.Entry {
	var out []*donburi.Entry
	components.Section.Each(ecs.World, func(entry *donburi.Entry) {
		out = append(out, entry)
	})
	sort.Slice(out, func(i, j int) bool {
		return components.Section.Get(out[i]).Index < components.Section.Get(out[j]).Index
	})
	return out
}

func findSection(ecs *ecs.ECS, id string) (*donburi.Entry, bool) {
	var found *donburi.Entry
	components.Section.Each(ecs.World, func(entry *donburi.Entry) {
		if found == nil && components.Section.Get(entry).ID == id {
			found = entry
		}
	})
	return found, found != nil
}
